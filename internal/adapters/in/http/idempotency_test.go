package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"ordering/internal/adapters/out/memory"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/clock"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
)

type idempotencyFixture struct {
	echo   *echo.Echo
	calls  int
	status int
	panics bool
}

func newIdempotencyFixture() *idempotencyFixture {
	f := &idempotencyFixture{status: http.StatusCreated}
	store := memory.NewIdempotencyStore(time.Hour, clock.NewFixed(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))

	f.echo = echo.New()
	f.echo.Use(middleware.Recover())
	f.echo.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if user := c.Request().Header.Get("X-User"); user != "" {
				c.Set(principalContextKey, ports.AccessTokenClaims{UserID: user})
			}
			return next(c)
		}
	})
	f.echo.Use(Idempotency(store, slog.New(slog.NewTextHandler(io.Discard, nil)), "POST /orders"))
	f.echo.POST("/orders", func(c echo.Context) error {
		f.calls++
		if f.panics {
			panic("handler failed")
		}
		return c.JSON(f.status, map[string]string{"call": strconv.Itoa(f.calls)})
	})
	f.echo.POST("/other", func(c echo.Context) error {
		f.calls++
		return c.NoContent(http.StatusOK)
	})
	return f
}

func (f *idempotencyFixture) post(path, key, user string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if key != "" {
		req.Header.Set(HeaderIdempotencyKey, key)
	}
	if user != "" {
		req.Header.Set("X-User", user)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func Test_IdempotencyReplaysCompletedRequest(t *testing.T) {
	f := newIdempotencyFixture()

	first := f.post("/orders", "k-1", "u-1")
	second := f.post("/orders", "k-1", "u-1")

	assert.Equal(t, 1, f.calls)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get(HeaderIdempotentReplayed))
	assert.Empty(t, first.Header().Get(HeaderIdempotentReplayed))
}

func Test_IdempotencyKeysAreScopedPerCaller(t *testing.T) {
	f := newIdempotencyFixture()

	f.post("/orders", "k-1", "u-1")
	rec := f.post("/orders", "k-1", "u-2")

	assert.Equal(t, 2, f.calls)
	assert.Empty(t, rec.Header().Get(HeaderIdempotentReplayed))
}

func Test_IdempotencyReleasesKeyOnFailure(t *testing.T) {
	f := newIdempotencyFixture()
	f.status = http.StatusBadRequest

	f.post("/orders", "k-1", "u-1")
	f.status = http.StatusCreated
	rec := f.post("/orders", "k-1", "u-1")

	assert.Equal(t, 2, f.calls)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func Test_IdempotencyReleasesKeyWhenHandlerPanics(t *testing.T) {
	f := newIdempotencyFixture()
	f.panics = true

	failed := f.post("/orders", "k-1", "u-1")
	f.panics = false
	retry := f.post("/orders", "k-1", "u-1")

	assert.Equal(t, http.StatusInternalServerError, failed.Code)
	assert.Equal(t, 2, f.calls)
	assert.Equal(t, http.StatusCreated, retry.Code)
	assert.Empty(t, retry.Header().Get(HeaderIdempotentReplayed))
}

func Test_IdempotencyPassesThroughWithoutKeyOrOnOtherRoutes(t *testing.T) {
	f := newIdempotencyFixture()

	f.post("/orders", "", "u-1")
	f.post("/orders", "", "u-1")
	f.post("/other", "k-1", "u-1")
	f.post("/other", "k-1", "u-1")

	assert.Equal(t, 4, f.calls)
}
