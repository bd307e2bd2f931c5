package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/refreshtoken"
)

// RefreshTokenStats counts stored refresh tokens by state at a given instant.
type RefreshTokenStats struct {
	Active  int
	Revoked int
	Expired int
}

// RefreshTokenRepository defines the persistence contract for refresh token records.
// Records are never deleted.
type RefreshTokenRepository interface {
	// Add persists a new token. The hash column is unique; a duplicate fails with
	// errs.PersistenceFailureError.
	Add(ctx context.Context, token *refreshtoken.RefreshToken) error

	// Update persists the revocation fields of an existing token.
	Update(ctx context.Context, token *refreshtoken.RefreshToken) error

	// GetByHash looks a token up by its hash, compared case-insensitively.
	// Returns errs.ObjectNotFoundError when absent.
	GetByHash(ctx context.Context, tokenHash string) (*refreshtoken.RefreshToken, error)

	// GetLatestActiveForUser returns the most recently created token of userID that is
	// active at now. Returns errs.ObjectNotFoundError when there is none.
	GetLatestActiveForUser(ctx context.Context, userID string, now time.Time) (*refreshtoken.RefreshToken, error)

	// Stats counts tokens by state at now. Revoked wins over expired.
	Stats(ctx context.Context, now time.Time) (RefreshTokenStats, error)
}
