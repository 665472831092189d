// Package order provides the Order aggregate root and its OrderItem value objects.
//
// The package includes:
//   - Order: the aggregate root that owns an ordered list of items and derives its total
//   - OrderItem: an immutable line of an order (product reference, unit price, quantity)
//
// Key business rules, enforced at construction and before every mutation:
//   - id is non-empty
//   - customerId is non-empty
//   - there is at least one item
//   - every item has a quantity greater than 0
//
// Rules are checked in that order and the first violation wins, so every failure
// maps to exactly one sentinel error. The total is never stored on the aggregate:
// Total() recomputes it from the current items on every call.
package order
