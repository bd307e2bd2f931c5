package ports

import "context"

const (
	RoleAdmin          = "admin"
	RoleSales          = "sales"
	RoleViewer         = "viewer"
	RoleCatalogManager = "catalog-manager"
)

// AllRoles lists every role known to the service.
func AllRoles() []string {
	return []string{RoleAdmin, RoleSales, RoleViewer, RoleCatalogManager}
}

// Identity is an authenticated user as reported by the identity provider.
type Identity struct {
	UserID   string
	Username string
	Email    string
	Roles    []string
}

// IdentityProvider owns users, credentials and roles.
type IdentityProvider interface {
	// VerifyCredentials accepts a user name, or an email when the login contains '@'.
	// Unknown users and wrong passwords both fail with errs.UnauthenticatedError.
	VerifyCredentials(ctx context.Context, login, password string) (Identity, error)

	// FindByID returns errs.ObjectNotFoundError when the user does not exist.
	FindByID(ctx context.Context, userID string) (Identity, error)

	// Register creates a user with the given roles. A taken user name or email fails with
	// errs.ValueIsInvalidError.
	Register(ctx context.Context, username, email, password string, roles []string) (Identity, error)
}
