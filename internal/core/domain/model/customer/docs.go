// Package customer provides the Customer entity, its Address value object and
// the events raised when a customer is created or moves.
//
// Key business rules:
//   - A customer always has a non-empty id and name
//   - Reward points never decrease
//   - A customer cannot be activated without an address
package customer
