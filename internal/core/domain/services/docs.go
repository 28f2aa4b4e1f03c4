// Package services provides domain services that orchestrate business operations
// across domain entities in the order lifecycle engine. It implements workflows
// that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - MachineManager: opens short-lived state machine instances anchored at an
//     order's stored state
//   - Machine: a single-use instance that accepts exactly one event, persists
//     the outcome through a hook before mutating the aggregate, and is closed
//   - PersistenceHook: the write-before-success callback fired on every
//     accepted transition
//
// Domain services coordinate between aggregates and persistence, implementing
// business logic that spans boundaries following Domain-Driven Design principles.
package services
