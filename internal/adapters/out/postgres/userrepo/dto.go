package userrepo

import (
	"time"

	"ordering/internal/adapters/out/identity"

	"github.com/lib/pq"
)

type UserDTO struct {
	ID                 string         `gorm:"type:uuid;primaryKey"`
	Username           string         `gorm:"type:varchar(64);not null"`
	NormalizedUsername string         `gorm:"type:varchar(64);not null;uniqueIndex"`
	Email              string         `gorm:"type:varchar(256);not null"`
	NormalizedEmail    string         `gorm:"type:varchar(256);not null;uniqueIndex"`
	PasswordHash       string         `gorm:"type:varchar(256);not null"`
	Roles              pq.StringArray `gorm:"type:text[];not null"`
	CreatedAtUTC       time.Time      `gorm:"column:created_at_utc;not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(user identity.User) UserDTO {
	return UserDTO{
		ID:                 user.ID,
		Username:           user.Username,
		NormalizedUsername: identity.Normalize(user.Username),
		Email:              user.Email,
		NormalizedEmail:    identity.Normalize(user.Email),
		PasswordHash:       user.PasswordHash,
		Roles:              pq.StringArray(user.Roles),
		CreatedAtUTC:       user.CreatedAtUTC.UTC(),
	}
}

func toDomain(dto UserDTO) identity.User {
	return identity.User{
		ID:           dto.ID,
		Username:     dto.Username,
		Email:        dto.Email,
		PasswordHash: dto.PasswordHash,
		Roles:        []string(dto.Roles),
		CreatedAtUTC: dto.CreatedAtUTC.UTC(),
	}
}
