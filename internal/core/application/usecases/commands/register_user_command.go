package commands

import (
	"errors"
	"net/mail"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand creates a login. The password policy is enforced by the identity provider.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	username string
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(username, email, password string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUsername(username),
		cmd.setEmail(email),
		requireText("password", password),
	); err != nil {
		return RegisterUserCommand{}, err
	}
	cmd.password = password

	return cmd, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Username() string {
	return c.username
}

func (c RegisterUserCommand) Email() string {
	return c.email
}

func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c *RegisterUserCommand) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	if strings.Contains(username, "@") {
		return errs.NewValueIsInvalidErrorWithCause("username", errors.New("must not contain '@'"))
	}

	c.username = username
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}

	c.email = strings.ToLower(email)
	return nil
}
