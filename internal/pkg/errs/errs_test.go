package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	orderID := "0b9f3c1e-6a0d-4f43-9d55-2f6a1c7d8e90"

	t.Run("without cause the message names only the id", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", orderID)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, orderID, err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: "+orderID, err.Error())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("with cause the message names param, id and cause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("productId", "SKU-001", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: productId, ID is: SKU-001 (cause: record not found)",
			err.Error())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.False(t, errs.IsInvalidArgument(err))
	})

	t.Run("non string ids are formatted verbatim", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("page", 7)
		assert.Equal(t, "object not found: %!s(int=7)", err.Error())
	})
}

func TestInvalidArgumentErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "invalid customer email",
			err:      errs.NewValueIsInvalidError("email"),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: email",
		},
		{
			name:     "invalid sort direction with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("sortDirection", errors.New(`unknown direction "up"`)),
			sentinel: errs.ErrValueIsInvalid,
			message:  `value is invalid: sortDirection (cause: unknown direction "up")`,
		},
		{
			name:     "missing order items",
			err:      errs.NewValueIsRequiredError("items"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: items",
		},
		{
			name:     "missing customer id with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("customerId", errors.New("nil uuid")),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: customerId (cause: nil uuid)",
		},
		{
			name:     "item quantity below range",
			err:      errs.NewValueIsOutOfRangeError("quantity", 0, 1, 10000),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 0 is quantity, min value is 1, max value is 10000",
		},
		{
			name: "page size above range with cause",
			err: errs.NewValueIsOutOfRangeErrorWithCause("pageSize", 500, 1, 100,
				errors.New("clamped")),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 500 is pageSize, min value is 1, max value is 100 (cause: clamped)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.True(t, errs.IsInvalidArgument(tt.err))
			assert.True(t, errs.IsInvalidArgument(fmt.Errorf("create order: %w", tt.err)))
		})
	}

	t.Run("out of range keeps its bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", -2, 1, 10000)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, -2, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 10000, err.Max)
		require.NoError(t, err.Cause)
	})

	t.Run("newlines in values are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("notes", "line one\nline two", 0, 500)
		assert.Contains(t, err.Error(), "line one line two")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := errs.NewInvalidStateError("cannot submit an order without items")

		assert.Equal(t, "cannot submit an order without items", err.Reason)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid state: cannot submit an order without items", err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})

	t.Run("NewInvalidStateErrorWithCause", func(t *testing.T) {
		cause := errors.New("Shipped")
		err := errs.NewInvalidStateErrorWithCause("cannot cancel", cause)

		assert.Equal(t, "invalid state: cannot cancel (cause: Shipped)", err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})
}

func TestUnauthenticatedError(t *testing.T) {
	err := errs.NewUnauthenticatedError("refresh token is not active")

	assert.Equal(t, "unauthenticated: refresh token is not active", err.Error())
	assert.Equal(t, errs.ErrUnauthenticated, err.Unwrap())
}

func TestPersistenceFailureError(t *testing.T) {
	t.Run("keeps the driver error reachable", func(t *testing.T) {
		cause := errors.New("duplicate key value violates unique constraint")
		err := errs.NewPersistenceFailureError("commit", cause)

		assert.Equal(t,
			"persistence failure: commit (cause: duplicate key value violates unique constraint)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrPersistenceFailure)
		require.ErrorIs(t, err, cause)
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewPersistenceFailureError("commit", nil)

		assert.Equal(t, "persistence failure: commit", err.Error())
		require.ErrorIs(t, err, errs.ErrPersistenceFailure)
	})
}

func TestIsInvalidArgument(t *testing.T) {
	assert.True(t, errs.IsInvalidArgument(errs.NewValueIsRequiredError("customerId")))
	assert.True(t, errs.IsInvalidArgument(errs.NewValueIsInvalidError("quantity")))
	assert.True(t, errs.IsInvalidArgument(errs.NewValueIsOutOfRangeError("pageSize", 0, 1, 100)))
	assert.True(t, errs.IsInvalidArgument(
		errors.Join(errs.NewValueIsRequiredError("email"), errs.NewValueIsRequiredError("phone"))))
	assert.False(t, errs.IsInvalidArgument(errs.NewInvalidStateError("cancelled")))
	assert.False(t, errs.IsInvalidArgument(errs.NewObjectNotFoundError("order", "1")))
}

func TestSentinelMessages(t *testing.T) {
	sentinels := map[error]string{
		errs.ErrObjectNotFound:     "object not found",
		errs.ErrValueIsInvalid:     "value is invalid",
		errs.ErrValueIsOutOfRange:  "value is out of range",
		errs.ErrValueIsRequired:    "value is required",
		errs.ErrInvalidState:       "invalid state",
		errs.ErrUnauthenticated:    "unauthenticated",
		errs.ErrPersistenceFailure: "persistence failure",
	}

	for sentinel, message := range sentinels {
		assert.Equal(t, message, sentinel.Error())
	}
}

func TestErrorsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("refresh token: %w", errs.NewUnauthenticatedError("unknown token"))

	var unauthenticated *errs.UnauthenticatedError
	require.ErrorAs(t, wrapped, &unauthenticated)
	assert.Equal(t, "unknown token", unauthenticated.Reason)
	assert.ErrorIs(t, wrapped, errs.ErrUnauthenticated)

	cancelled := fmt.Errorf("cancel order: %w", errs.NewInvalidStateError("order is shipped"))
	var invalidState *errs.InvalidStateError
	require.ErrorAs(t, cancelled, &invalidState)
	assert.Equal(t, "order is shipped", invalidState.Reason)

	var notFound *errs.ObjectNotFoundError
	assert.False(t, errors.As(cancelled, &notFound))
}
