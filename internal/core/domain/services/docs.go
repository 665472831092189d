// Package services provides domain services that span more than one aggregate
// of the ordering domain.
//
// The package includes:
//   - OrderService: places orders for a customer (crediting reward points) and
//     totals a set of orders
package services
