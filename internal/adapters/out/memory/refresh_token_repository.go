package memory

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/domain/model/refreshtoken"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// ErrTokenAlreadyRevoked is the cause of a revoking update that lost the race to another
// unit of work.
var ErrTokenAlreadyRevoked = errors.New("refresh token already revoked")

type refreshTokenRepository struct {
	uow *UnitOfWork
}

func (r *refreshTokenRepository) Add(_ context.Context, token *refreshtoken.RefreshToken) error {
	if err := token.Validate(); err != nil {
		return err
	}
	stored, err := cloneToken(token)
	if err != nil {
		return err
	}

	return r.uow.exec(func(s *state) error {
		if _, exists := s.tokens[stored.ID()]; exists {
			return errs.NewPersistenceFailureError("add refresh token", errors.New("duplicate token id"))
		}
		for _, other := range s.tokens {
			if other.TokenHash() == stored.TokenHash() {
				return errs.NewPersistenceFailureError("add refresh token", errors.New("duplicate token hash"))
			}
		}
		s.tokens[stored.ID()] = stored
		return nil
	}, token)
}

// Update replaces the stored token. A revoking write over a row that is already revoked fails
// with errs.PersistenceFailureError, here or at commit.
func (r *refreshTokenRepository) Update(_ context.Context, token *refreshtoken.RefreshToken) error {
	if err := token.Validate(); err != nil {
		return err
	}
	stored, err := cloneToken(token)
	if err != nil {
		return err
	}

	revoking := stored.IsRevoked()
	return r.uow.exec(func(s *state) error {
		current, exists := s.tokens[stored.ID()]
		if !exists {
			return errs.NewObjectNotFoundError("refreshTokenId", stored.ID().String())
		}
		if revoking && current.IsRevoked() {
			return errs.NewPersistenceFailureError("update refresh token", ErrTokenAlreadyRevoked)
		}
		s.tokens[stored.ID()] = stored
		return nil
	}, token)
}

func (r *refreshTokenRepository) GetByHash(_ context.Context, tokenHash string) (*refreshtoken.RefreshToken, error) {
	hash := refreshtoken.NormalizeHash(tokenHash)
	if hash == "" {
		return nil, errs.NewValueIsRequiredError("tokenHash")
	}

	for _, t := range r.uow.view().tokens {
		if t.TokenHash() == hash {
			return cloneToken(t)
		}
	}
	return nil, errs.NewObjectNotFoundError("tokenHash", "<redacted>")
}

func (r *refreshTokenRepository) GetLatestActiveForUser(
	_ context.Context,
	userID string,
	now time.Time,
) (*refreshtoken.RefreshToken, error) {
	var latest *refreshtoken.RefreshToken
	for _, t := range r.uow.view().tokens {
		if !t.IsOwnedBy(userID) || !t.IsActive(now) {
			continue
		}
		if latest == nil || newer(t, latest) {
			latest = t
		}
	}

	if latest == nil {
		return nil, errs.NewObjectNotFoundError("userId", userID)
	}
	return cloneToken(latest)
}

func (r *refreshTokenRepository) Stats(_ context.Context, now time.Time) (ports.RefreshTokenStats, error) {
	var stats ports.RefreshTokenStats
	for _, t := range r.uow.view().tokens {
		switch {
		case t.IsRevoked():
			stats.Revoked++
		case t.IsActive(now):
			stats.Active++
		default:
			stats.Expired++
		}
	}
	return stats, nil
}

func newer(a, b *refreshtoken.RefreshToken) bool {
	if c := a.CreatedAtUTC().Compare(b.CreatedAtUTC()); c != 0 {
		return c > 0
	}
	return a.ID().Compare(b.ID()) > 0
}
