// Package userrepo stores identity users in PostgreSQL. Users live outside the unit of work:
// every call runs on its own connection.
package userrepo

import (
	"context"
	"errors"

	"ordering/internal/adapters/out/identity"
	"ordering/internal/adapters/out/postgres/pgerr"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

var _ identity.UserStore = (*GormUserStore)(nil)

func (s *GormUserStore) FindByID(ctx context.Context, id string) (identity.User, error) {
	parsed, err := kernel.UUIDFromString(id)
	if err != nil {
		return identity.User{}, errs.NewObjectNotFoundErrorWithCause("userId", id, err)
	}
	return s.first(ctx, "userId", id, "id = ?", parsed.String())
}

func (s *GormUserStore) FindByUsername(ctx context.Context, username string) (identity.User, error) {
	return s.first(ctx, "username", username, "normalized_username = ?", identity.Normalize(username))
}

func (s *GormUserStore) FindByEmail(ctx context.Context, email string) (identity.User, error) {
	return s.first(ctx, "email", email, "normalized_email = ?", identity.Normalize(email))
}

func (s *GormUserStore) Create(ctx context.Context, user identity.User) error {
	dto := fromDomain(user)
	if err := s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("create user", err)
	}
	return nil
}

func (s *GormUserStore) first(ctx context.Context, param string, key any, query string, args ...any) (identity.User, error) {
	var dto UserDTO
	err := s.db.WithContext(ctx).Where(query, args...).First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return identity.User{}, errs.NewObjectNotFoundError(param, key)
		}
		return identity.User{}, err
	}
	return toDomain(dto), nil
}
