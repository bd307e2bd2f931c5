// Package refreshtokenrepo persists refresh token records with GORM.
package refreshtokenrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/refreshtoken"

	"github.com/google/uuid"
)

// RefreshTokenDTO is the refresh_tokens row. Only the hash of the raw token is stored.
type RefreshTokenDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID              string     `gorm:"type:varchar(64);not null;index"`
	TokenHash           string     `gorm:"type:varchar(256);not null;uniqueIndex"`
	ExpiresAtUTC        time.Time  `gorm:"column:expires_at_utc;not null"`
	CreatedAtUTC        time.Time  `gorm:"column:created_at_utc;not null"`
	CreatedByIP         string     `gorm:"column:created_by_ip;type:varchar(64)"`
	CreatedByUserAgent  string     `gorm:"type:varchar(512)"`
	RevokedAtUTC        *time.Time `gorm:"column:revoked_at_utc"`
	RevokedByIP         string     `gorm:"column:revoked_by_ip;type:varchar(64)"`
	RevokedByUserAgent  string     `gorm:"type:varchar(512)"`
	ReplacedByTokenHash string     `gorm:"type:varchar(256)"`
}

func (RefreshTokenDTO) TableName() string {
	return "refresh_tokens"
}

func fromDomain(t *refreshtoken.RefreshToken) RefreshTokenDTO {
	s := t.Snapshot()
	return RefreshTokenDTO{
		ID:                  s.ID.Bytes(),
		UserID:              s.UserID,
		TokenHash:           s.TokenHash,
		ExpiresAtUTC:        s.ExpiresAtUTC,
		CreatedAtUTC:        s.CreatedAtUTC,
		CreatedByIP:         s.CreatedBy.IP,
		CreatedByUserAgent:  s.CreatedBy.UserAgent,
		RevokedAtUTC:        s.RevokedAtUTC,
		RevokedByIP:         s.RevokedBy.IP,
		RevokedByUserAgent:  s.RevokedBy.UserAgent,
		ReplacedByTokenHash: s.ReplacedByTokenHash,
	}
}

func toDomain(dto RefreshTokenDTO) (*refreshtoken.RefreshToken, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return refreshtoken.RestoreRefreshToken(refreshtoken.Snapshot{
		ID:           id,
		UserID:       dto.UserID,
		TokenHash:    dto.TokenHash,
		ExpiresAtUTC: dto.ExpiresAtUTC,
		CreatedAtUTC: dto.CreatedAtUTC,
		CreatedBy: refreshtoken.ClientInfo{
			IP:        dto.CreatedByIP,
			UserAgent: dto.CreatedByUserAgent,
		},
		RevokedAtUTC: dto.RevokedAtUTC,
		RevokedBy: refreshtoken.ClientInfo{
			IP:        dto.RevokedByIP,
			UserAgent: dto.RevokedByUserAgent,
		},
		ReplacedByTokenHash: dto.ReplacedByTokenHash,
	})
}
