package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand registers a customer. Presence of the required fields is checked
// here; format and length rules belong to the aggregate.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	profile customer.Profile

	guard guard.ConstructorGuard
}

func NewCreateCustomerCommand(profile customer.Profile) (CreateCustomerCommand, error) {
	if err := errors.Join(
		requireText("fullName", profile.FullName),
		requireText("email", profile.Email),
		requireText("documentNumber", profile.DocumentNumber),
		requireText("phoneNumber", profile.PhoneNumber),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return CreateCustomerCommand{
		profile: profile,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) Profile() customer.Profile {
	return c.profile
}

func requireText(param, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
