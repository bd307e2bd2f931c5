package commands

import (
	"context"

	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// RefreshTokenCommandHandler rotates a refresh token: the presented token is revoked and
// chained to its successor, and a new access token is issued.
type RefreshTokenCommandHandler struct {
	uowFactory RefreshTokenUoWFactory
	identity   ports.IdentityProvider
	tokens     ports.TokenService
	clock      ports.Clock
	rotator    services.RefreshTokenRotator
}

func NewRefreshTokenCommandHandler(
	uowFactory RefreshTokenUoWFactory,
	identity ports.IdentityProvider,
	tokens ports.TokenService,
	clock ports.Clock,
) RefreshTokenCommandHandler {
	return RefreshTokenCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		tokens:     tokens,
		clock:      clock,
		rotator:    services.NewRefreshTokenRotator(),
	}
}

// Handle fails with errs.UnauthenticatedError when the token is unknown, revoked, expired
// or belongs to a user that no longer exists. Presenting an already rotated token fails
// the same way.
func (h *RefreshTokenCommandHandler) Handle(ctx context.Context, cmd RefreshTokenCommand) (AuthTokensResponse, error) {
	if err := cmd.Validate(); err != nil {
		return AuthTokensResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AuthTokensResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.RefreshTokenRepository()
	current, err := repo.GetByHash(ctx, h.tokens.HashRefreshToken(cmd.RefreshToken()))
	if err != nil {
		return AuthTokensResponse{}, unauthenticatedIfMissing(err, "unknown refresh token")
	}

	now := h.clock.Now()
	if !current.IsActive(now) {
		return AuthTokensResponse{}, errs.NewUnauthenticatedError("refresh token is not active")
	}

	user, err := h.identity.FindByID(ctx, current.UserID())
	if err != nil {
		return AuthTokensResponse{}, unauthenticatedIfMissing(err, "refresh token owner does not exist")
	}

	rawRefreshToken, err := h.tokens.GenerateRefreshToken()
	if err != nil {
		return AuthTokensResponse{}, err
	}

	successor, err := h.rotator.Rotate(
		current,
		h.tokens.HashRefreshToken(rawRefreshToken),
		now.Add(h.tokens.RefreshTokenLifetime()),
		now,
		cmd.Client(),
	)
	if err != nil {
		return AuthTokensResponse{}, err
	}

	accessToken, err := h.tokens.IssueAccessToken(user.UserID, user.Username, user.Roles)
	if err != nil {
		return AuthTokensResponse{}, err
	}

	if err = repo.Update(ctx, current); err != nil {
		return AuthTokensResponse{}, err
	}

	if err = repo.Add(ctx, successor); err != nil {
		return AuthTokensResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AuthTokensResponse{}, err
	}

	return newAuthTokensResponse(accessToken, rawRefreshToken), nil
}
