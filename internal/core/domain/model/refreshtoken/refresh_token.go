package refreshtoken

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var ErrRefreshTokenIsNotConstructed = errors.New("RefreshToken must be created via NewRefreshToken constructor")

// ClientInfo is the optional audit metadata of the client that created or revoked a token.
type ClientInfo struct {
	IP        string
	UserAgent string
}

func (c ClientInfo) normalized() ClientInfo {
	return ClientInfo{
		IP:        strings.TrimSpace(c.IP),
		UserAgent: strings.TrimSpace(c.UserAgent),
	}
}

// RefreshToken is the persisted record of an issued refresh token. Only the hash of the
// raw token is kept. A token is revoked at most once; revoked and expired tokens are
// retained for audit and replay detection.
type RefreshToken struct {
	id           kernel.UUID
	userID       string
	tokenHash    string
	expiresAtUTC time.Time
	createdAtUTC time.Time
	createdBy    ClientInfo

	revokedAtUTC        *time.Time
	revokedBy           ClientInfo
	replacedByTokenHash string

	isConstructed bool
}

// NewRefreshToken creates an active token record.
//
// Parameters:
//   - userID: owner of the token, trimmed, must not be blank
//   - tokenHash: hash of the raw token, stored uppercase, must not be blank
//   - expiresAtUTC: must be strictly after nowUTC
//   - nowUTC: creation instant from the injected clock
//   - createdBy: optional client metadata
func NewRefreshToken(
	userID, tokenHash string,
	expiresAtUTC, nowUTC time.Time,
	createdBy ClientInfo,
) (*RefreshToken, error) {
	t := &RefreshToken{
		id:            kernel.NewUUID(),
		createdAtUTC:  nowUTC.UTC(),
		createdBy:     createdBy.normalized(),
		isConstructed: true,
	}

	if err := errors.Join(
		t.setUserID(userID),
		t.setTokenHash(tokenHash),
		t.setExpiresAt(expiresAtUTC, nowUTC),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Snapshot is the storage shape of a refresh token.
type Snapshot struct {
	ID                  kernel.UUID
	UserID              string
	TokenHash           string
	ExpiresAtUTC        time.Time
	CreatedAtUTC        time.Time
	CreatedBy           ClientInfo
	RevokedAtUTC        *time.Time
	RevokedBy           ClientInfo
	ReplacedByTokenHash string
}

// RestoreRefreshToken rebuilds a token from storage. Expired tokens are valid records.
func RestoreRefreshToken(s Snapshot) (*RefreshToken, error) {
	t := &RefreshToken{
		expiresAtUTC:        s.ExpiresAtUTC.UTC(),
		createdAtUTC:        s.CreatedAtUTC.UTC(),
		createdBy:           s.CreatedBy.normalized(),
		revokedBy:           s.RevokedBy.normalized(),
		replacedByTokenHash: NormalizeHash(s.ReplacedByTokenHash),
		isConstructed:       true,
	}

	if err := errors.Join(
		s.ID.Validate(),
		t.setUserID(s.UserID),
		t.setTokenHash(s.TokenHash),
	); err != nil {
		return nil, err
	}
	t.id = s.ID

	if s.RevokedAtUTC != nil {
		revokedAt := s.RevokedAtUTC.UTC()
		t.revokedAtUTC = &revokedAt
	}

	return t, nil
}

// NormalizeHash trims and uppercases a token hash for case-insensitive comparison.
func NormalizeHash(hash string) string {
	return strings.ToUpper(strings.TrimSpace(hash))
}

func (t *RefreshToken) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrRefreshTokenIsNotConstructed
	}
	return nil
}

// IsActive is true iff the token is not revoked and expires strictly after now.
func (t *RefreshToken) IsActive(now time.Time) bool {
	return t.revokedAtUTC == nil && t.expiresAtUTC.After(now)
}

func (t *RefreshToken) IsRevoked() bool {
	return t.revokedAtUTC != nil
}

// Revoke stamps the revocation. It returns false and changes nothing when the token was
// already revoked. replacementHash is empty for an explicit logout and set to the
// successor's hash on rotation.
func (t *RefreshToken) Revoke(now time.Time, replacementHash string, revokedBy ClientInfo) bool {
	if t.revokedAtUTC != nil {
		return false
	}

	revokedAt := now.UTC()
	t.revokedAtUTC = &revokedAt
	t.replacedByTokenHash = NormalizeHash(replacementHash)
	t.revokedBy = revokedBy.normalized()
	return true
}

// IsOwnedBy compares trimmed user IDs exactly, the way the user_id column is matched.
func (t *RefreshToken) IsOwnedBy(userID string) bool {
	return t.userID == strings.TrimSpace(userID)
}

func (t *RefreshToken) ID() kernel.UUID {
	return t.id
}

func (t *RefreshToken) UserID() string {
	return t.userID
}

func (t *RefreshToken) TokenHash() string {
	return t.tokenHash
}

func (t *RefreshToken) ExpiresAtUTC() time.Time {
	return t.expiresAtUTC
}

func (t *RefreshToken) CreatedAtUTC() time.Time {
	return t.createdAtUTC
}

func (t *RefreshToken) CreatedBy() ClientInfo {
	return t.createdBy
}

// RevokedAtUTC is nil while the token has not been revoked.
func (t *RefreshToken) RevokedAtUTC() *time.Time {
	if t.revokedAtUTC == nil {
		return nil
	}
	revokedAt := *t.revokedAtUTC
	return &revokedAt
}

func (t *RefreshToken) RevokedBy() ClientInfo {
	return t.revokedBy
}

// ReplacedByTokenHash is the hash of the successor token, empty unless rotated.
func (t *RefreshToken) ReplacedByTokenHash() string {
	return t.replacedByTokenHash
}

// Snapshot exports the token for persistence.
func (t *RefreshToken) Snapshot() Snapshot {
	return Snapshot{
		ID:                  t.id,
		UserID:              t.userID,
		TokenHash:           t.tokenHash,
		ExpiresAtUTC:        t.expiresAtUTC,
		CreatedAtUTC:        t.createdAtUTC,
		CreatedBy:           t.createdBy,
		RevokedAtUTC:        t.RevokedAtUTC(),
		RevokedBy:           t.revokedBy,
		ReplacedByTokenHash: t.replacedByTokenHash,
	}
}

func (t *RefreshToken) setUserID(userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	t.userID = userID
	return nil
}

func (t *RefreshToken) setTokenHash(tokenHash string) error {
	tokenHash = NormalizeHash(tokenHash)
	if tokenHash == "" {
		return errs.NewValueIsRequiredError("tokenHash")
	}
	t.tokenHash = tokenHash
	return nil
}

func (t *RefreshToken) setExpiresAt(expiresAtUTC, nowUTC time.Time) error {
	if !expiresAtUTC.After(nowUTC) {
		return errs.NewValueIsInvalidErrorWithCause(
			"expiresAtUtc",
			fmt.Errorf("%s is not after %s", expiresAtUTC.UTC().Format(time.RFC3339), nowUTC.UTC().Format(time.RFC3339)),
		)
	}
	t.expiresAtUTC = expiresAtUTC.UTC()
	return nil
}
