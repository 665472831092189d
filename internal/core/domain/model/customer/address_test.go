package customer_test

import (
	"testing"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should create valid address", func(t *testing.T) {
		a, err := customer.NewAddress("Street 1", 1, "Zipcode 1", "City 1")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "Street 1", a.Street())
		assert.Equal(t, 1, a.Number())
		assert.Equal(t, "Zipcode 1", a.Zip())
		assert.Equal(t, "City 1", a.City())
	})

	t.Run("should report every missing component", func(t *testing.T) {
		_, err := customer.NewAddress("", 0, " ", "")

		require.Error(t, err)
		require.ErrorIs(t, err, customer.ErrStreetIsRequired)
		require.ErrorIs(t, err, customer.ErrZipIsRequired)
		require.ErrorIs(t, err, customer.ErrCityIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var a customer.Address

		require.ErrorIs(t, a.Validate(), customer.ErrAddressIsNotConstructed)
	})
}

func TestAddress_String(t *testing.T) {
	a, err := customer.NewAddress("Street 1", 1, "Zipcode 1", "City 1")
	require.NoError(t, err)

	assert.Equal(t, "Street 1, 1, Zipcode 1, City 1", a.String())
}

func TestAddress_IsEqual(t *testing.T) {
	a1, _ := customer.NewAddress("Street 1", 1, "Zipcode 1", "City 1")
	a2, _ := customer.NewAddress("Street 1", 1, "Zipcode 1", "City 1")
	a3, _ := customer.NewAddress("Street 2", 2, "Zipcode 2", "City 2")

	assert.True(t, a1.IsEqual(a2))
	assert.False(t, a1.IsEqual(a3))
}
