package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/refreshtoken"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrRevokeTokenCommandIsNotConstructed = errors.New(
	"RevokeTokenCommand must be created via NewRevokeTokenCommand constructor",
)

// RevokeTokenCommand logs a user out. Without an explicit refresh token the caller's most
// recent active token is revoked.
type RevokeTokenCommand struct { //nolint:recvcheck //using for validation
	callerUserID string
	refreshToken string
	client       refreshtoken.ClientInfo

	guard guard.ConstructorGuard
}

func NewRevokeTokenCommand(callerUserID, refreshToken string, client refreshtoken.ClientInfo) (RevokeTokenCommand, error) {
	callerUserID = strings.TrimSpace(callerUserID)
	if callerUserID == "" {
		return RevokeTokenCommand{}, errs.NewUnauthenticatedError("caller is not identified")
	}

	return RevokeTokenCommand{
		callerUserID: callerUserID,
		refreshToken: strings.TrimSpace(refreshToken),
		client:       client,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RevokeTokenCommand) Validate() error {
	return c.guard.Validate(ErrRevokeTokenCommandIsNotConstructed)
}

func (c RevokeTokenCommand) CallerUserID() string {
	return c.callerUserID
}

// RefreshToken returns the raw token to revoke, or "" to revoke the latest active one.
func (c RevokeTokenCommand) RefreshToken() string {
	return c.refreshToken
}

func (c RevokeTokenCommand) Client() refreshtoken.ClientInfo {
	return c.client
}
