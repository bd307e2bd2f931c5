package queries

import (
	"context"
	"time"

	"ordering/internal/core/ports"
	"ordering/internal/pkg/guard"
)

// GetRefreshTokenStatsQuery counts refresh tokens by state. It backs the token audit job.
type GetRefreshTokenStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetRefreshTokenStatsQuery() GetRefreshTokenStatsQuery {
	return GetRefreshTokenStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetRefreshTokenStatsQuery) Validate() error {
	return q.guard.Validate(nil)
}

type RefreshTokenStatsResponse struct {
	ports.RefreshTokenStats
	AsOfUTC time.Time
}

type GetRefreshTokenStatsQueryHandler struct {
	tokens RefreshTokenStatsReader
	clock  ports.Clock
}

func NewGetRefreshTokenStatsQueryHandler(tokens RefreshTokenStatsReader, clock ports.Clock) GetRefreshTokenStatsQueryHandler {
	return GetRefreshTokenStatsQueryHandler{
		tokens: tokens,
		clock:  clock,
	}
}

func (h GetRefreshTokenStatsQueryHandler) Handle(
	ctx context.Context,
	query GetRefreshTokenStatsQuery,
) (RefreshTokenStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return RefreshTokenStatsResponse{}, err
	}

	now := h.clock.Now()
	stats, err := h.tokens.Stats(ctx, now)
	if err != nil {
		return RefreshTokenStatsResponse{}, err
	}

	return RefreshTokenStatsResponse{
		RefreshTokenStats: stats,
		AsOfUTC:           now,
	}, nil
}
