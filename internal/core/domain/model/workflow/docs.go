// Package workflow provides the graph entities a Screen is built from.
//
// The package includes:
//   - Screen: a named workflow container
//   - Step: a node of a Screen's graph, the current location of orders
//   - Transition: a directed edge between two Steps of the same Screen
//
// Key business rules:
//   - A Step belongs to exactly one Screen
//   - Both endpoints of a Transition belong to the Transition's Screen
//   - A source Step has at most one default (non-custom) outgoing Transition;
//     custom Transitions are unlimited and only used by direct-step approvals
//
// The structural rules that involve more than one entity are checked by CheckTransition,
// which graph administration calls before a Transition is stored.
package workflow
