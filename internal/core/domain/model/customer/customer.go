// Package customer implements the Customer aggregate of the ordering service.
package customer

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

const (
	MaxFullNameLength       = 200
	MaxEmailLength          = 200
	MaxDocumentNumberLength = 50
	MaxPhoneNumberLength    = 30
	MaxCustomerTypeLength   = 30
	MaxAddressFieldLength   = 200
	MaxNotesLength          = 1000
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Profile carries the customer attributes supplied on registration. Required: FullName,
// Email, DocumentNumber and PhoneNumber. Blank optional fields are stored as empty.
type Profile struct {
	FullName       string
	Email          string
	DocumentNumber string
	PhoneNumber    string
	CustomerType   string
	BirthDate      *time.Time
	Street         string
	City           string
	State          string
	PostalCode     string
	Country        string
	Notes          string
}

// Customer owns orders. Email and document number are unique across customers;
// uniqueness is enforced by the store.
type Customer struct {
	id           kernel.UUID
	profile      Profile
	isActive     bool
	createdAtUTC time.Time

	isConstructed bool
}

// NewCustomer validates the profile and creates an active customer.
// Email is lowercased; all text fields are trimmed.
func NewCustomer(profile Profile, createdAtUTC time.Time) (*Customer, error) {
	return RestoreCustomer(kernel.NewUUID(), profile, true, createdAtUTC)
}

// RestoreCustomer rebuilds a customer from storage.
func RestoreCustomer(id kernel.UUID, profile Profile, isActive bool, createdAtUTC time.Time) (*Customer, error) {
	c := &Customer{
		isActive:      isActive,
		createdAtUTC:  createdAtUTC.UTC(),
		isConstructed: true,
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	c.id = id

	if err := c.setProfile(profile); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Profile returns a copy of the customer attributes.
func (c *Customer) Profile() Profile {
	p := c.profile
	if p.BirthDate != nil {
		birthDate := *p.BirthDate
		p.BirthDate = &birthDate
	}
	return p
}

func (c *Customer) FullName() string {
	return c.profile.FullName
}

func (c *Customer) Email() string {
	return c.profile.Email
}

func (c *Customer) IsActive() bool {
	return c.isActive
}

func (c *Customer) CreatedAtUTC() time.Time {
	return c.createdAtUTC
}

func (c *Customer) setProfile(p Profile) error {
	p.FullName = strings.TrimSpace(p.FullName)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.DocumentNumber = strings.TrimSpace(p.DocumentNumber)
	p.PhoneNumber = strings.TrimSpace(p.PhoneNumber)
	p.CustomerType = strings.TrimSpace(p.CustomerType)
	p.Street = strings.TrimSpace(p.Street)
	p.City = strings.TrimSpace(p.City)
	p.State = strings.TrimSpace(p.State)
	p.PostalCode = strings.TrimSpace(p.PostalCode)
	p.Country = strings.TrimSpace(p.Country)
	p.Notes = strings.TrimSpace(p.Notes)

	if err := errors.Join(
		required("fullName", p.FullName, MaxFullNameLength),
		validateEmail(p.Email),
		required("documentNumber", p.DocumentNumber, MaxDocumentNumberLength),
		required("phoneNumber", p.PhoneNumber, MaxPhoneNumberLength),
		maxLength("customerType", p.CustomerType, MaxCustomerTypeLength),
		maxLength("street", p.Street, MaxAddressFieldLength),
		maxLength("city", p.City, MaxAddressFieldLength),
		maxLength("state", p.State, MaxAddressFieldLength),
		maxLength("postalCode", p.PostalCode, MaxAddressFieldLength),
		maxLength("country", p.Country, MaxAddressFieldLength),
		maxLength("notes", p.Notes, MaxNotesLength),
	); err != nil {
		return err
	}

	if p.BirthDate != nil {
		birthDate := p.BirthDate.UTC()
		p.BirthDate = &birthDate
	}

	c.profile = p
	return nil
}

func validateEmail(email string) error {
	if err := required("email", email, MaxEmailLength); err != nil {
		return err
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	return nil
}

func required(param, value string, limit int) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return maxLength(param, value, limit)
}

func maxLength(param, value string, limit int) error {
	if n := utf8.RuneCountInString(value); n > limit {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("length %d exceeds %d", n, limit))
	}
	return nil
}
