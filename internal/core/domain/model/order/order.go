package order

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the ordering domain. It owns its line items and enforces
// the order lifecycle.
//
// Order follows these invariants:
//   - Belongs to exactly one customer (non-nil customer ID)
//   - Items can only be added while the order is in Draft status
//   - Cannot be submitted without items
//   - Cannot be cancelled once shipped
//   - The total is always derived from the items and never stored
//
// Orders are never deleted; Cancel is the terminal business outcome.
type Order struct {
	id kernel.UUID

	customerID kernel.UUID

	createdAtUTC time.Time

	status Status

	items []*Item

	events kernel.EventRecorder

	isConstructed bool
}

// NewOrder creates a Draft order for a customer and records a CreatedEvent.
//
// Parameters:
//   - customerID: owning customer (must be a constructed UUID)
//   - createdAtUTC: creation instant, normally taken from the injected clock
//
// Returns:
//   - *Order: the new order with a generated identifier and no items
//   - error: ValueIsRequiredError when the customer ID is missing
//
// Example:
//
//	o, err := order.NewOrder(customerID, clock.Now())
//	if err != nil {
//	    return err
//	}
//	_ = o.AddItem(productID, 2, decimal.RequireFromString("45.50"))
//	_ = o.Submit() // o.Total() == 91.00
func NewOrder(customerID kernel.UUID, createdAtUTC time.Time) (*Order, error) {
	order := &Order{
		status:        Draft,
		items:         make([]*Item, 0),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(kernel.NewUUID()),
		order.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}
	order.createdAtUTC = createdAtUTC.UTC()

	order.events.RecordEvent(CreatedEvent{
		OrderID:    order.id,
		OccurredOn: order.createdAtUTC,
	})

	return order, nil
}

// RestoreOrder rebuilds an order from storage. No events are recorded and no lifecycle
// rules are replayed; only structural validity is checked.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	createdAtUTC time.Time,
	status Status,
	items []*Item,
) (*Order, error) {
	order := &Order{
		createdAtUTC:  createdAtUTC.UTC(),
		items:         make([]*Item, 0, len(items)),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setStatus(status),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) CreatedAtUTC() time.Time {
	return o.createdAtUTC
}

func (o *Order) Status() Status {
	return o.status
}

// Items returns the lines in insertion order. The slice is a copy; items are immutable.
func (o *Order) Items() []*Item {
	out := make([]*Item, len(o.items))
	copy(out, o.items)
	return out
}

// Total is the sum of all line totals, recomputed on every call.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// AddItem appends a new line. The status is checked before the arguments, so a
// non-Draft order reports InvalidState even for malformed input. Repeated product IDs
// produce separate lines.
func (o *Order) AddItem(productID kernel.UUID, quantity int, unitPrice decimal.Decimal) error {
	if !o.status.AcceptsItems() {
		return errs.NewInvalidStateError("items can only be added to an order in Draft status, current status is " +
			o.status.String())
	}

	item, err := NewItem(productID, quantity, unitPrice)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

// Submit moves a Draft order with at least one item to Submitted. Calling it again on a
// Submitted order with items leaves the order unchanged.
func (o *Order) Submit() error {
	if len(o.items) == 0 {
		return errs.NewInvalidStateError("cannot submit an order without items")
	}

	newStatus, err := o.status.Submit()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel moves the order to Cancelled. It is a no-op on a Cancelled order and fails
// for Shipped or Delivered orders.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) MarkPaid() error {
	newStatus, err := o.status.MarkPaid()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []kernel.DomainEvent {
	return o.events.DomainEvents()
}

func (o *Order) ClearDomainEvents() {
	o.events.ClearDomainEvents()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []*Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		o.items = append(o.items, item)
	}
	return nil
}
