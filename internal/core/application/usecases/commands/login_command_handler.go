package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/refreshtoken"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

const TokenTypeBearer = "Bearer"

// AuthTokensResponse is returned by login and refresh. RefreshToken is the raw value and
// is handed to the client only; the store keeps its hash.
type AuthTokensResponse struct {
	AccessToken      string
	RefreshToken     string
	TokenType        string
	ExpiresInSeconds int
}

// LoginCommandHandler verifies credentials with the identity provider and issues an access
// token together with a persisted refresh token.
type LoginCommandHandler struct {
	uowFactory RefreshTokenUoWFactory
	identity   ports.IdentityProvider
	tokens     ports.TokenService
	clock      ports.Clock
}

func NewLoginCommandHandler(
	uowFactory RefreshTokenUoWFactory,
	identity ports.IdentityProvider,
	tokens ports.TokenService,
	clock ports.Clock,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		tokens:     tokens,
		clock:      clock,
	}
}

// Handle fails with errs.UnauthenticatedError for unknown users and wrong passwords alike.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (AuthTokensResponse, error) {
	if err := cmd.Validate(); err != nil {
		return AuthTokensResponse{}, err
	}

	user, err := h.identity.VerifyCredentials(ctx, cmd.Login(), cmd.Password())
	if err != nil {
		return AuthTokensResponse{}, unauthenticatedIfMissing(err, "invalid credentials")
	}

	now := h.clock.Now()
	accessToken, err := h.tokens.IssueAccessToken(user.UserID, user.Username, user.Roles)
	if err != nil {
		return AuthTokensResponse{}, err
	}

	rawRefreshToken, err := h.tokens.GenerateRefreshToken()
	if err != nil {
		return AuthTokensResponse{}, err
	}

	token, err := refreshtoken.NewRefreshToken(
		user.UserID,
		h.tokens.HashRefreshToken(rawRefreshToken),
		now.Add(h.tokens.RefreshTokenLifetime()),
		now,
		cmd.Client(),
	)
	if err != nil {
		return AuthTokensResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return AuthTokensResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RefreshTokenRepository().Add(ctx, token); err != nil {
		return AuthTokensResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AuthTokensResponse{}, err
	}

	return newAuthTokensResponse(accessToken, rawRefreshToken), nil
}

func newAuthTokensResponse(accessToken ports.AccessToken, rawRefreshToken string) AuthTokensResponse {
	return AuthTokensResponse{
		AccessToken:      accessToken.Value,
		RefreshToken:     rawRefreshToken,
		TokenType:        TokenTypeBearer,
		ExpiresInSeconds: int(accessToken.ExpiresIn.Seconds()),
	}
}

// unauthenticatedIfMissing hides lookups that found nothing behind an authentication failure.
func unauthenticatedIfMissing(err error, reason string) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewUnauthenticatedErrorWithCause(reason, err)
	}
	return err
}
