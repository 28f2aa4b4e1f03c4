// Package order provides domain entities and business logic for the order
// lifecycle. It implements the Order aggregate root together with the state
// machine that governs it.
//
// The package includes:
//   - Order: the aggregate root carrying order attributes and lifecycle state
//   - State and Event: closed value sets describing lifecycle positions and triggers
//   - The transition table and NextState validator (the lifecycle graph)
//
// Key business rules:
//   - Orders are only ever created in the Submitted state
//   - Legal moves: Submitted -> Paid -> Fulfilled, and Submitted/Paid -> Cancelled
//   - Fulfilled and Cancelled are terminal; no event is accepted on them
//   - Any (state, event) pair outside the table is rejected with
//     InvalidTransitionError and no side effects
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
