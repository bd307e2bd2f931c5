package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"ordering/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const (
	HeaderIdempotencyKey     = "Idempotency-Key"
	HeaderIdempotentReplayed = "Idempotent-Replayed"
	maxIdempotencyKeyLength  = 128
)

type storedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type bodyRecorder struct {
	http.ResponseWriter
	body bytes.Buffer
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// Idempotency replays the stored response of a completed request that carried the same
// Idempotency-Key, and rejects a concurrent duplicate with 409. Keys are scoped per route and
// caller. Only successful responses are stored; after a failure the key can be retried.
func Idempotency(store ports.IdempotencyStore, logger *slog.Logger, routes ...string) echo.MiddlewareFunc {
	logger = logger.With("component", "idempotency")
	guarded := make(map[string]struct{}, len(routes))
	for _, r := range routes {
		guarded[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := strings.TrimSpace(c.Request().Header.Get(HeaderIdempotencyKey))
			if key == "" {
				return next(c)
			}
			if _, ok := guarded[routeKey(c)]; !ok {
				return next(c)
			}
			if len(key) > maxIdempotencyKeyLength {
				return newRequestValidationError("Idempotency-Key must be at most 128 characters")
			}

			ctx := c.Request().Context()
			scope := idempotencyScope(c)

			if replayed, err := replay(c, store, scope, key); replayed || err != nil {
				return err
			}

			locked, err := store.TryLock(ctx, scope, key)
			if err != nil {
				return err
			}
			if !locked {
				return echo.NewHTTPError(http.StatusConflict, "A request with the same Idempotency-Key is in progress.")
			}

			// The lock is released on every path that does not store a response, including a
			// panic unwinding to the Recover middleware.
			remembered := false
			defer func() {
				if remembered {
					return
				}
				if err := store.Release(context.WithoutCancel(ctx), scope, key); err != nil {
					logger.WarnContext(ctx, "failed to release idempotency key", "key", key, "error", err)
				}
			}()

			rec := &bodyRecorder{ResponseWriter: c.Response().Writer}
			c.Response().Writer = rec

			if err := next(c); err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			if status < http.StatusOK || status >= http.StatusMultipleChoices {
				return nil
			}

			value, err := json.Marshal(storedResponse{Status: status, Body: rec.body.Bytes()})
			if err == nil {
				err = store.Remember(ctx, scope, key, string(value))
			}
			if err != nil {
				logger.WarnContext(ctx, "failed to remember idempotent response", "key", key, "error", err)
				return nil
			}
			remembered = true
			return nil
		}
	}
}

func replay(c echo.Context, store ports.IdempotencyStore, scope, key string) (bool, error) {
	value, ok, err := store.Recall(c.Request().Context(), scope, key)
	if err != nil || !ok {
		return false, err
	}

	var stored storedResponse
	if err := json.Unmarshal([]byte(value), &stored); err != nil {
		return false, err
	}

	c.Response().Header().Set(HeaderIdempotentReplayed, "true")
	return true, c.JSONBlob(stored.Status, stored.Body)
}

func idempotencyScope(c echo.Context) string {
	scope := routeKey(c)
	if claims, ok := Principal(c); ok {
		scope += ":" + claims.UserID
	}
	return scope
}
