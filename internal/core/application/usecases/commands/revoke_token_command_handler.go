package commands

import (
	"context"

	"ordering/internal/core/domain/model/refreshtoken"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// RevokeTokenCommandHandler revokes one refresh token of the caller without a successor.
type RevokeTokenCommandHandler struct {
	uowFactory RefreshTokenUoWFactory
	tokens     ports.TokenService
	clock      ports.Clock
}

func NewRevokeTokenCommandHandler(
	uowFactory RefreshTokenUoWFactory,
	tokens ports.TokenService,
	clock ports.Clock,
) RevokeTokenCommandHandler {
	return RevokeTokenCommandHandler{
		uowFactory: uowFactory,
		tokens:     tokens,
		clock:      clock,
	}
}

// Handle fails with errs.UnauthenticatedError when no token is found, the token is no
// longer active or it belongs to another user.
func (h *RevokeTokenCommandHandler) Handle(ctx context.Context, cmd RevokeTokenCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.clock.Now()
	repo := uow.RefreshTokenRepository()

	var (
		token *refreshtoken.RefreshToken
		err   error
	)
	if cmd.RefreshToken() != "" {
		token, err = repo.GetByHash(ctx, h.tokens.HashRefreshToken(cmd.RefreshToken()))
	} else {
		token, err = repo.GetLatestActiveForUser(ctx, cmd.CallerUserID(), now)
	}
	if err != nil {
		return unauthenticatedIfMissing(err, "no refresh token to revoke")
	}

	if !token.IsActive(now) {
		return errs.NewUnauthenticatedError("refresh token is not active")
	}

	if !token.IsOwnedBy(cmd.CallerUserID()) {
		return errs.NewUnauthenticatedError("refresh token belongs to another user")
	}

	token.Revoke(now, "", cmd.Client())

	if err = repo.Update(ctx, token); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
