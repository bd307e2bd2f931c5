package commands

import (
	"errors"

	"ordering/internal/core/domain/model/refreshtoken"
	"ordering/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New("LoginCommand must be created via NewLoginCommand constructor")

// LoginCommand carries credentials and the audit metadata of the calling client.
// The login is a user name, or an email when it contains '@'.
type LoginCommand struct { //nolint:recvcheck //using for validation
	login    string
	password string
	client   refreshtoken.ClientInfo

	guard guard.ConstructorGuard
}

func NewLoginCommand(login, password string, client refreshtoken.ClientInfo) (LoginCommand, error) {
	if err := errors.Join(
		requireText("username", login),
		requireText("password", password),
	); err != nil {
		return LoginCommand{}, err
	}

	return LoginCommand{
		login:    login,
		password: password,
		client:   client,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) Login() string {
	return c.login
}

func (c LoginCommand) Password() string {
	return c.password
}

func (c LoginCommand) Client() refreshtoken.ClientInfo {
	return c.client
}
