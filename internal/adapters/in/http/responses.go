package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"ordering/internal/generated/servers"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	CodeBadRequest            = "BadRequest"
	CodeBusinessRuleViolation = "BusinessRuleViolation"
	CodeNotFound              = "NotFound"
	CodeUnauthorized          = "Unauthorized"
	CodeForbidden             = "Forbidden"
	CodeConflict              = "Conflict"
	CodeMethodNotAllowed      = "MethodNotAllowed"
	CodeInternalServerError   = "InternalServerError"
)

type apiError struct {
	status  int
	code    string
	message string
	details []string
}

// requestValidationError carries the findings of the OpenAPI request validator.
type requestValidationError struct {
	details []string
}

func newRequestValidationError(details ...string) *requestValidationError {
	return &requestValidationError{details: details}
}

func (e *requestValidationError) Error() string {
	return fmt.Sprintf("%s: %s", errs.ErrValueIsInvalid, strings.Join(e.details, "; "))
}

func (e *requestValidationError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

func classify(err error) apiError {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return classifyHTTPError(httpErr)
	case errs.IsInvalidArgument(err):
		return apiError{
			status:  http.StatusBadRequest,
			code:    CodeBadRequest,
			message: "One or more validation errors occurred.",
			details: details(err),
		}
	case errors.Is(err, errs.ErrInvalidState):
		return apiError{
			status:  http.StatusBadRequest,
			code:    CodeBusinessRuleViolation,
			message: "The request violates a business rule.",
			details: details(err),
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		return apiError{
			status:  http.StatusNotFound,
			code:    CodeNotFound,
			message: "The requested resource was not found.",
			details: details(err),
		}
	case errors.Is(err, errs.ErrUnauthenticated):
		return apiError{
			status:  http.StatusUnauthorized,
			code:    CodeUnauthorized,
			message: "Authentication failed.",
		}
	case errors.Is(err, errs.ErrPersistenceFailure):
		return apiError{
			status:  http.StatusConflict,
			code:    CodeConflict,
			message: "The request conflicts with existing data.",
		}
	default:
		return apiError{
			status:  http.StatusInternalServerError,
			code:    CodeInternalServerError,
			message: "An unexpected error occurred.",
		}
	}
}

func classifyHTTPError(he *echo.HTTPError) apiError {
	message := fmt.Sprint(he.Message)
	e := apiError{status: he.Code, message: message}

	switch he.Code {
	case http.StatusBadRequest:
		e.code = CodeBadRequest
		e.message = "One or more validation errors occurred."
		e.details = []string{message}
	case http.StatusUnauthorized:
		e.code = CodeUnauthorized
	case http.StatusForbidden:
		e.code = CodeForbidden
	case http.StatusNotFound:
		e.code = CodeNotFound
	case http.StatusMethodNotAllowed:
		e.code = CodeMethodNotAllowed
	case http.StatusConflict:
		e.code = CodeConflict
	default:
		if he.Code >= http.StatusInternalServerError {
			e.code = CodeInternalServerError
			e.message = "An unexpected error occurred."
		} else {
			e.code = strings.ReplaceAll(http.StatusText(he.Code), " ", "")
		}
	}
	return e
}

func details(err error) []string {
	var validation *requestValidationError
	if errors.As(err, &validation) {
		return validation.details
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, details(e)...)
		}
		return out
	}
	return []string{err.Error()}
}

func traceID(c echo.Context) string {
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, servers.Envelope{
		Success: true,
		Message: message,
		Data:    data,
		TraceId: traceID(c),
	})
}

// ErrorHandler renders every error returned along the echo chain as an ErrorResponse.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		e := classify(err)
		if e.status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"error", err,
				"request_id", traceID(c),
				"method", c.Request().Method,
				"route", c.Path(),
			)
		} else if e.status == http.StatusUnauthorized {
			logger.InfoContext(c.Request().Context(), "request rejected",
				"reason", err.Error(),
				"request_id", traceID(c),
			)
		}

		body := servers.ErrorResponse{
			Success:    false,
			ErrorCode:  e.code,
			Message:    e.message,
			StatusCode: e.status,
			Errors:     e.details,
			TraceId:    traceID(c),
		}
		if body.Errors == nil {
			body.Errors = []string{}
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(e.status)
		} else {
			writeErr = c.JSON(e.status, body)
		}
		if writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}
