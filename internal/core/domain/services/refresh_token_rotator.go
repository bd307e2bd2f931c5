package services

import (
	"time"

	"ordering/internal/core/domain/model/refreshtoken"
	"ordering/internal/pkg/errs"
)

// RefreshTokenRotator replaces a refresh token with a successor and chains the two records.
type RefreshTokenRotator struct{}

func NewRefreshTokenRotator() RefreshTokenRotator {
	return RefreshTokenRotator{}
}

// Rotate creates the successor token and revokes current with the successor's hash.
//
// Returns:
//   - *refreshtoken.RefreshToken: the new active token, owned by the same user
//   - error: UnauthenticatedError when current is not active at now, or a validation
//     error from the successor's constructor; current is left untouched in both cases
func (r RefreshTokenRotator) Rotate(
	current *refreshtoken.RefreshToken,
	newTokenHash string,
	expiresAtUTC time.Time,
	now time.Time,
	client refreshtoken.ClientInfo,
) (*refreshtoken.RefreshToken, error) {
	if err := current.Validate(); err != nil {
		return nil, err
	}

	if !current.IsActive(now) {
		return nil, errs.NewUnauthenticatedError("refresh token is not active")
	}

	successor, err := refreshtoken.NewRefreshToken(current.UserID(), newTokenHash, expiresAtUTC, now, client)
	if err != nil {
		return nil, err
	}

	if !current.Revoke(now, successor.TokenHash(), client) {
		return nil, errs.NewUnauthenticatedError("refresh token is already revoked")
	}

	return successor, nil
}
