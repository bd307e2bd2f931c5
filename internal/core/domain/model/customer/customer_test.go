package customer_test

import (
	"strings"
	"testing"
	"time"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)

func validProfile() customer.Profile {
	return customer.Profile{
		FullName:       "  Ana Souza ",
		Email:          " Ana.Souza@Example.COM ",
		DocumentNumber: "123.456.789-00",
		PhoneNumber:    "+55 11 99999-0000",
		City:           "São Paulo",
	}
}

func TestNewCustomer(t *testing.T) {
	t.Run("should create active customer with normalized fields", func(t *testing.T) {
		c, err := customer.NewCustomer(validProfile(), now)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.NoError(t, c.ID().Validate())
		assert.Equal(t, "Ana Souza", c.FullName())
		assert.Equal(t, "ana.souza@example.com", c.Email())
		assert.Equal(t, "São Paulo", c.Profile().City)
		assert.True(t, c.IsActive())
		assert.Equal(t, now, c.CreatedAtUTC())
	})

	t.Run("should report every missing required field", func(t *testing.T) {
		_, err := customer.NewCustomer(customer.Profile{}, now)

		require.Error(t, err)
		assert.True(t, errs.IsInvalidArgument(err))
		for _, field := range []string{"fullName", "email", "documentNumber", "phoneNumber"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("should reject malformed email", func(t *testing.T) {
		p := validProfile()
		p.Email = "not-an-email"

		_, err := customer.NewCustomer(p, now)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject overlong name", func(t *testing.T) {
		p := validProfile()
		p.FullName = strings.Repeat("a", customer.MaxFullNameLength+1)

		_, err := customer.NewCustomer(p, now)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCustomer_ProfileIsACopy(t *testing.T) {
	birthDate := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
	p := validProfile()
	p.BirthDate = &birthDate
	c, err := customer.NewCustomer(p, now)
	require.NoError(t, err)

	got := c.Profile()
	*got.BirthDate = got.BirthDate.AddDate(1, 0, 0)

	assert.Equal(t, birthDate, *c.Profile().BirthDate)
}

func TestRestoreCustomer(t *testing.T) {
	id := kernel.NewUUID()

	c, err := customer.RestoreCustomer(id, validProfile(), false, now)

	require.NoError(t, err)
	assert.True(t, c.ID().IsEqual(id))
	assert.False(t, c.IsActive())

	_, err = customer.RestoreCustomer(kernel.UUID{}, validProfile(), true, now)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
