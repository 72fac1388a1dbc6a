// Package services provides domain services that implement business rules
// spanning multiple aggregates in the operations console.
//
// The package includes:
//   - AccessPolicy: role-based visibility and mutation rules for orders
//
// Domain services coordinate between aggregates, implementing business logic
// that doesn't naturally belong to a single aggregate root.
package services
