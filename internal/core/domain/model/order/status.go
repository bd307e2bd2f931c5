package order

import (
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Workflow: Draft -> Submitted -> Paid -> Shipped -> Delivered. Draft, Submitted and Paid
// orders can be cancelled; Shipped and Delivered orders cannot.
type Status int

const (
	// Unknown is the zero value and never a valid persisted state.
	Unknown Status = iota

	Draft

	Submitted

	Paid

	Shipped

	Delivered

	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Submitted: "Submitted",
		Paid:      "Paid",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	return map[Status]string{
		Draft:     "Draft",
		Submitted: "Submitted",
		Paid:      "Paid",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// ParseStatus matches s against the status names, ignoring case and surrounding spaces.
func ParseStatus(s string) (Status, error) {
	trimmed := strings.TrimSpace(s)
	for status, name := range getValidStatusStrings() {
		if strings.EqualFold(trimmed, name) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// AcceptsItems reports whether line items may still be added.
func (s Status) AcceptsItems() bool {
	return s == Draft
}

// Submit moves Draft to Submitted. Submitting an already submitted order keeps it Submitted.
func (s Status) Submit() (Status, error) {
	if s != Draft && s != Submitted {
		return 0, invalidTransition("submit", s)
	}
	return Submitted, nil
}

// Cancel is refused once fulfilment reached Shipped. Cancelled stays Cancelled.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Shipped, Delivered:
		return 0, invalidTransition("cancel", s)
	case Unknown:
		return 0, s.Validate()
	default:
		return Cancelled, nil
	}
}

func (s Status) MarkPaid() (Status, error) {
	if s != Submitted {
		return 0, invalidTransition("mark as paid", s)
	}
	return Paid, nil
}

func (s Status) Ship() (Status, error) {
	if s != Paid {
		return 0, invalidTransition("ship", s)
	}
	return Shipped, nil
}

func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return 0, invalidTransition("deliver", s)
	}
	return Delivered, nil
}

func invalidTransition(action string, from Status) error {
	return errs.NewInvalidStateError(fmt.Sprintf("cannot %s an order in %s status", action, from))
}
