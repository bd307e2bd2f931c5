package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ordering/internal/generated/servers"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ClassifyMapsErrorKinds(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"required", errs.NewValueIsRequiredError("name"), http.StatusBadRequest, CodeBadRequest},
		{"invalid", errs.NewValueIsInvalidError("email"), http.StatusBadRequest, CodeBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("quantity", 0, 1, 100), http.StatusBadRequest, CodeBadRequest},
		{"invalid state", errs.NewInvalidStateError("order is shipped"), http.StatusBadRequest, CodeBusinessRuleViolation},
		{"not found", errs.NewObjectNotFoundError("orderId", "42"), http.StatusNotFound, CodeNotFound},
		{"unauthenticated", errs.NewUnauthenticatedError("expired"), http.StatusUnauthorized, CodeUnauthorized},
		{"persistence", errs.NewPersistenceFailureError("commit", errors.New("duplicate key")), http.StatusConflict, CodeConflict},
		{"forbidden", echo.NewHTTPError(http.StatusForbidden, "no"), http.StatusForbidden, CodeForbidden},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, CodeInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)

			assert.Equal(t, tt.status, got.status)
			assert.Equal(t, tt.code, got.code)
		})
	}
}

func Test_ClassifySplitsJoinedValidationErrors(t *testing.T) {
	err := errors.Join(errs.NewValueIsRequiredError("sku"), errs.NewValueIsRequiredError("name"))

	got := classify(err)

	assert.Equal(t, CodeBadRequest, got.code)
	assert.Equal(t, []string{"value is required: sku", "value is required: name"}, got.details)
}

func Test_ClassifyHidesUnauthenticatedReason(t *testing.T) {
	got := classify(errs.NewUnauthenticatedError("refresh token reuse detected"))

	assert.Empty(t, got.details)
	assert.NotContains(t, got.message, "reuse")
}

func Test_ErrorHandlerWritesEnvelopeWithTraceID(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Response().Header().Set(echo.HeaderXRequestID, "trace-123")

	e.HTTPErrorHandler(errs.NewObjectNotFoundError("orderId", "42"), c)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body servers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, CodeNotFound, body.ErrorCode)
	assert.Equal(t, http.StatusNotFound, body.StatusCode)
	assert.Equal(t, "trace-123", body.TraceId)
	assert.NotEmpty(t, body.Errors)
}
