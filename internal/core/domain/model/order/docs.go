// Package order implements the Order aggregate: an order for one customer composed of
// immutable line items, with a derived total and a lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root, created only through NewOrder or RestoreOrder
//   - Item: an order line with product, quantity and unit price
//   - Status: the lifecycle states and their allowed transitions
//   - CreatedEvent: the domain event recorded when a new order is created
//
// Key business rules:
//   - Status follows Draft -> Submitted -> Paid -> Shipped -> Delivered
//   - Items may be added only in Draft; an order without items cannot be submitted
//   - Cancellation is allowed until the order ships and is idempotent
//   - Money amounts use github.com/shopspring/decimal; the total is never cached
package order
