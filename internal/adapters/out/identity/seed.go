package identity

import (
	"context"
	"errors"

	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// SeedUser is a user created at start-up when missing.
type SeedUser struct {
	Username string
	Email    string
	Password string
	Roles    []string
}

// DefaultSeedUsers returns the administrator and the sales demo account.
func DefaultSeedUsers() []SeedUser {
	return []SeedUser{
		{
			Username: "admin",
			Email:    "admin@ordering.local",
			Password: "Admin123!",
			Roles:    ports.AllRoles(),
		},
		{
			Username: "sales",
			Email:    "sales@ordering.local",
			Password: "Sales123!",
			Roles:    []string{ports.RoleSales, ports.RoleViewer},
		},
	}
}

// Seed creates every user that does not exist yet. Existing users are left untouched.
func (p *Provider) Seed(ctx context.Context, users []SeedUser) error {
	for _, u := range users {
		_, err := p.store.FindByUsername(ctx, u.Username)
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		if _, err = p.Register(ctx, u.Username, u.Email, u.Password, u.Roles); err != nil {
			return err
		}
		p.logger.InfoContext(ctx, "seeded user", "username", u.Username)
	}
	return nil
}
