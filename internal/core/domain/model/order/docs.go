// Package order provides the Order aggregate, the unit of work routed through a Screen's
// workflow graph.
//
// The package includes:
//   - Order: the aggregate root located at exactly one Step
//   - Status: Active or the terminal Rejected state
//   - Type: the order category (Standard, Priority)
//
// Key business rules:
//   - Orders are created on an initial Step and only move through MoveToStep, which the
//     approval use case calls after the workflow router resolved the destination
//   - Rejected is terminal: a rejected order never moves again
//   - Rejecting an already rejected order is a no-op
package order
