// Package order contains the order aggregate and its lifecycle rules.
//
// An order moves through a fixed fulfillment pipeline (Processing, Prepared,
// OutForDelivery, Delivered) or ends in Cancelled. Status is modeled as an
// explicit state machine with a transition table, so an illegal move is a
// single checked operation rather than scattered string comparisons.
//
// Layered on top of the status is the cancellation workflow: a customer files
// a CancellationRequest while the order is still in the kitchen, and an admin
// later approves or rejects it. Approval cancels the order in the same
// aggregate mutation, so the two can never diverge. Delivered and Cancelled
// orders are terminal and reject all further mutations.
package order
