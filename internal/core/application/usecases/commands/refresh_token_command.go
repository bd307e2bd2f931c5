package commands

import (
	"errors"

	"ordering/internal/core/domain/model/refreshtoken"
	"ordering/internal/pkg/guard"
)

var ErrRefreshTokenCommandIsNotConstructed = errors.New(
	"RefreshTokenCommand must be created via NewRefreshTokenCommand constructor",
)

// RefreshTokenCommand exchanges a raw refresh token for a new token pair.
type RefreshTokenCommand struct { //nolint:recvcheck //using for validation
	refreshToken string
	client       refreshtoken.ClientInfo

	guard guard.ConstructorGuard
}

func NewRefreshTokenCommand(refreshToken string, client refreshtoken.ClientInfo) (RefreshTokenCommand, error) {
	if err := requireText("refreshToken", refreshToken); err != nil {
		return RefreshTokenCommand{}, err
	}

	return RefreshTokenCommand{
		refreshToken: refreshToken,
		client:       client,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RefreshTokenCommand) Validate() error {
	return c.guard.Validate(ErrRefreshTokenCommandIsNotConstructed)
}

func (c RefreshTokenCommand) RefreshToken() string {
	return c.refreshToken
}

func (c RefreshTokenCommand) Client() refreshtoken.ClientInfo {
	return c.client
}
