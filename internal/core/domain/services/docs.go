// Package services provides the domain services of the workflow routing engine.
//
// The package includes:
//   - WorkflowRouter: resolves the next step of a source step, either along its single
//     default transition or as a caller-requested direct step that must be reachable
//   - OriginKey: the order attribute a direct step is checked against
//   - GroupOrdersByStep: partitions an approval batch by current step
//
// Routing never mutates the graph or the orders. A malformed graph (zero or several default
// transitions from one step) is reported with DefaultTransitionCountError and never repaired.
package services
