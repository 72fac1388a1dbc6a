// Package order provides the domain model for the order lifecycle engine.
// It implements the Order aggregate root together with its value objects and
// the status state machine governing lifecycle transitions.
//
// The package includes:
//   - Order: the aggregate root holding identity, customer snapshot, addresses,
//     line items, financial totals, status and timestamps
//   - Status: a state machine with an explicit transition table
//   - Item, Address, Customer: immutable value objects
//   - PricingConfig / CalculateTotals: the pricing computation that runs exactly
//     once per order, at creation time
//
// Key business rules:
//   - Every order starts in pending status; delivered and cancelled are terminal
//   - Content edits are allowed only while pending or processing, and never touch
//     status, totals or the order number
//   - Deletion is allowed only while pending
//   - Totals always satisfy total = subtotal + tax + shipping - discount as of
//     creation time; later edits never recompute them
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
