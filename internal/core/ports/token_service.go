package ports

import "time"

// AccessToken is a signed, short-lived bearer token.
type AccessToken struct {
	Value     string
	ExpiresIn time.Duration
}

// AccessTokenClaims is what an access token asserts about its bearer.
type AccessTokenClaims struct {
	UserID   string
	Username string
	Roles    []string
	TokenID  string
}

// TokenService issues and verifies token material. Raw refresh tokens leave it only to be
// returned to the client; everything else sees their hash.
type TokenService interface {
	// IssueAccessToken signs an access token for the identity.
	IssueAccessToken(userID, username string, roles []string) (AccessToken, error)

	// ParseAccessToken verifies signature and lifetime. Failures are errs.UnauthenticatedError.
	ParseAccessToken(raw string) (AccessTokenClaims, error)

	// GenerateRefreshToken returns a new high-entropy raw refresh token.
	GenerateRefreshToken() (string, error)

	// HashRefreshToken returns the one-way hash that is stored and looked up.
	HashRefreshToken(raw string) string

	// RefreshTokenLifetime is how long a newly issued refresh token stays valid.
	RefreshTokenLifetime() time.Duration
}
