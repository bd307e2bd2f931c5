// Package security issues HS256 access tokens and refresh token material.
package security

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	DefaultAccessTokenLifetime  = 60 * time.Minute
	DefaultRefreshTokenLifetime = 7 * 24 * time.Hour

	refreshTokenBytes = 64
	clockSkew         = 30 * time.Second
)

type Config struct {
	Secret               string
	Issuer               string
	Audience             string
	AccessTokenLifetime  time.Duration
	RefreshTokenLifetime time.Duration
}

// claims is the access token payload. Roles travel as a string array.
type claims struct {
	UniqueName string   `json:"unique_name"`
	Roles      []string `json:"roles"`
	jwt.RegisteredClaims
}

// JWTTokenService implements ports.TokenService.
type JWTTokenService struct {
	cfg   Config
	key   []byte
	clock ports.Clock
}

func NewJWTTokenService(cfg Config, clock ports.Clock) (*JWTTokenService, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	if cfg.AccessTokenLifetime <= 0 {
		cfg.AccessTokenLifetime = DefaultAccessTokenLifetime
	}
	if cfg.RefreshTokenLifetime <= 0 {
		cfg.RefreshTokenLifetime = DefaultRefreshTokenLifetime
	}

	return &JWTTokenService{
		cfg:   cfg,
		key:   []byte(cfg.Secret),
		clock: clock,
	}, nil
}

var _ ports.TokenService = (*JWTTokenService)(nil)

func (s *JWTTokenService) IssueAccessToken(userID, username string, roles []string) (ports.AccessToken, error) {
	now := s.clock.Now()
	c := claims{
		UniqueName: username,
		Roles:      roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			Issuer:    s.cfg.Issuer,
			Audience:  jwt.ClaimStrings{s.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenLifetime)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.key)
	if err != nil {
		return ports.AccessToken{}, err
	}

	return ports.AccessToken{
		Value:     signed,
		ExpiresIn: s.cfg.AccessTokenLifetime,
	}, nil
}

func (s *JWTTokenService) ParseAccessToken(raw string) (ports.AccessTokenClaims, error) {
	var c claims
	token, err := jwt.ParseWithClaims(raw, &c,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return s.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithAudience(s.cfg.Audience),
		jwt.WithLeeway(clockSkew),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return ports.AccessTokenClaims{}, errs.NewUnauthenticatedErrorWithCause("invalid access token", err)
	}
	if !token.Valid || c.Subject == "" {
		return ports.AccessTokenClaims{}, errs.NewUnauthenticatedErrorWithCause("invalid access token",
			errors.New("missing subject"))
	}

	return ports.AccessTokenClaims{
		UserID:   c.Subject,
		Username: c.UniqueName,
		Roles:    c.Roles,
		TokenID:  c.ID,
	}, nil
}

// GenerateRefreshToken returns 64 random bytes, base64 encoded.
func (s *JWTTokenService) GenerateRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

// HashRefreshToken returns the upper-case hex SHA-256 of the raw token.
func (s *JWTTokenService) HashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

func (s *JWTTokenService) RefreshTokenLifetime() time.Duration {
	return s.cfg.RefreshTokenLifetime
}
