package refreshtokenrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"ordering/internal/adapters/out/postgres/pgerr"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/refreshtoken"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// ErrTokenAlreadyRevoked is the cause of a revoking update whose row was revoked by another
// transaction first.
var ErrTokenAlreadyRevoked = errors.New("refresh token already revoked")

type GormRefreshTokenRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRefreshTokenRepository(db *gorm.DB, tracker aggregateTracker) *GormRefreshTokenRepository {
	return &GormRefreshTokenRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a token. A duplicate hash surfaces as errs.PersistenceFailureError, either
// here or at commit.
func (r *GormRefreshTokenRepository) Add(ctx context.Context, token *refreshtoken.RefreshToken) error {
	if err := token.Validate(); err != nil {
		return err
	}

	dto := fromDomain(token)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("add refresh token", err)
	}

	r.tracker.TrackAggregate(token.ID(), token)
	return nil
}

// Update writes the revocation columns. A revoking write only applies to a row that is
// still unrevoked; losing that race to another transaction fails with
// errs.PersistenceFailureError.
func (r *GormRefreshTokenRepository) Update(ctx context.Context, token *refreshtoken.RefreshToken) error {
	if err := token.Validate(); err != nil {
		return err
	}

	dto := fromDomain(token)
	revoking := dto.RevokedAtUTC != nil

	query := r.db.WithContext(ctx).
		Model(&RefreshTokenDTO{}).
		Where("id = ?", dto.ID)
	if revoking {
		query = query.Where("revoked_at_utc IS NULL")
	}

	result := query.Updates(map[string]any{
			"revoked_at_utc":         dto.RevokedAtUTC,
			"revoked_by_ip":          dto.RevokedByIP,
			"revoked_by_user_agent":  dto.RevokedByUserAgent,
			"replaced_by_token_hash": dto.ReplacedByTokenHash,
		})
	if result.Error != nil {
		return pgerr.Classify("update refresh token", result.Error)
	}

	if result.RowsAffected == 0 {
		return r.missingRow(ctx, token.ID(), revoking)
	}

	r.tracker.TrackAggregate(token.ID(), token)
	return nil
}

func (r *GormRefreshTokenRepository) missingRow(ctx context.Context, id kernel.UUID, revoking bool) error {
	if !revoking {
		return errs.NewObjectNotFoundError("refreshTokenId", id.String())
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&RefreshTokenDTO{}).Where("id = ?", id.String()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("refreshTokenId", id.String())
	}
	return errs.NewPersistenceFailureError("update refresh token", ErrTokenAlreadyRevoked)
}

func (r *GormRefreshTokenRepository) GetByHash(ctx context.Context, tokenHash string) (*refreshtoken.RefreshToken, error) {
	hash := refreshtoken.NormalizeHash(tokenHash)
	if hash == "" {
		return nil, errs.NewValueIsRequiredError("tokenHash")
	}

	var dto RefreshTokenDTO
	if err := r.db.WithContext(ctx).First(&dto, "token_hash = ?", hash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tokenHash", "<redacted>")
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormRefreshTokenRepository) GetLatestActiveForUser(
	ctx context.Context,
	userID string,
	now time.Time,
) (*refreshtoken.RefreshToken, error) {
	userID = strings.TrimSpace(userID)

	var dto RefreshTokenDTO
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND revoked_at_utc IS NULL AND expires_at_utc > ?", userID, now.UTC()).
		Order("created_at_utc DESC, id DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("userId", userID)
		}
		return nil, err
	}

	return toDomain(dto)
}

type statsRow struct {
	Active  int
	Revoked int
	Expired int
}

func (r *GormRefreshTokenRepository) Stats(ctx context.Context, now time.Time) (ports.RefreshTokenStats, error) {
	var row statsRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE revoked_at_utc IS NULL AND expires_at_utc > @now) AS active,
			COUNT(*) FILTER (WHERE revoked_at_utc IS NOT NULL) AS revoked,
			COUNT(*) FILTER (WHERE revoked_at_utc IS NULL AND expires_at_utc <= @now) AS expired
		FROM refresh_tokens
	`, map[string]any{"now": now.UTC()}).Scan(&row).Error
	if err != nil {
		return ports.RefreshTokenStats{}, err
	}

	return ports.RefreshTokenStats(row), nil
}
