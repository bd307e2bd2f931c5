// Package identity implements ports.IdentityProvider on top of a user store, with bcrypt
// password hashes and role assignment.
package identity

import (
	"context"
	"strings"
	"time"
)

// User is a stored login. Roles are role names as known to the access policies.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Roles        []string
	CreatedAtUTC time.Time
}

// UserStore persists users. Lookups by user name and email are case-insensitive and
// return errs.ObjectNotFoundError when nothing matches.
type UserStore interface {
	FindByID(ctx context.Context, id string) (User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	// Create fails with errs.PersistenceFailureError when the user name or email is taken.
	Create(ctx context.Context, user User) error
}

// Normalize is the case-insensitive key used for user names and emails.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
