package cmd

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() Config {
	var cfg Config
	cfg.HTTP.Addr = ":0"
	cfg.Database.Driver = StorageMemory
	cfg.Idempotency.TTL = time.Hour
	cfg.Security.JWTSecret = "composition-root-test-secret"
	cfg.Security.Issuer = "ordering"
	cfg.Security.Audience = "ordering-clients"
	cfg.Security.AccessTokenMinutes = 60
	cfg.Security.RefreshTokenDays = 7
	cfg.Security.BcryptCost = 4
	cfg.Jobs.TokenAuditSchedule = "@every 1h"
	return cfg
}

func newMemoryRoot(t *testing.T) *CompositionRoot {
	t.Helper()

	root, err := NewCompositionRoot(
		t.Context(),
		memoryConfig(),
		clock.NewFixed(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })

	require.NoError(t, root.SeedUsers(t.Context()))
	return root
}

func Test_CompositionRootServesLoginOnMemoryStorage(t *testing.T) {
	root := newMemoryRoot(t)
	router, err := root.CreateRouter()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"username":"admin","password":"Admin123!"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string `json:"accessToken"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Data.AccessToken)
}

func Test_CompositionRootSeedingIsRepeatable(t *testing.T) {
	root := newMemoryRoot(t)

	assert.NoError(t, root.SeedUsers(t.Context()))
}

func Test_CompositionRootRefreshTokenStatsSeeIssuedTokens(t *testing.T) {
	root := newMemoryRoot(t)
	router, err := root.CreateRouter()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"username":"sales","password":"Sales123!"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(httptest.NewRecorder(), req)

	stats, err := root.CreateGetRefreshTokenStatsQueryHandler().Handle(t.Context(), queries.NewGetRefreshTokenStatsQuery())

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Active)
}

func Test_CompositionRootJobManagerStartsAndStops(t *testing.T) {
	root := newMemoryRoot(t)

	manager, err := root.CreateJobManager()
	require.NoError(t, err)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
