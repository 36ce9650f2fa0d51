package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCurrency_NormalizesCharCode(t *testing.T) {
	c, err := NewCurrency("840", " usd ", "US Dollar", 90.5, 1)

	require.NoError(t, err)
	require.Equal(t, "USD", c.CharCode)
	require.Equal(t, "840", c.NumCode)
	require.Zero(t, c.ID)
}

func TestNewCurrency_RejectsShortCharCode(t *testing.T) {
	_, err := NewCurrency("840", "US", "US Dollar", 90.5, 1)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "char_code", vErr.Field)
}

func TestNewCurrency_RejectsNonLetterCharCode(t *testing.T) {
	_, err := NewCurrency("840", "U5D", "US Dollar", 90.5, 1)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "char_code", vErr.Field)
}

func TestNewCurrency_RejectsZeroNominal(t *testing.T) {
	_, err := NewCurrency("840", "USD", "US Dollar", 90.5, 0)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "nominal", vErr.Field)
}

func TestNewCurrency_RejectsNegativeValue(t *testing.T) {
	_, err := NewCurrency("840", "USD", "US Dollar", -1, 1)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "value", vErr.Field)
}

func TestNewCurrency_RejectsShortName(t *testing.T) {
	_, err := NewCurrency("840", "USD", "U", 90.5, 1)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "name", vErr.Field)
}

func TestCurrency_PerUnit(t *testing.T) {
	c, err := NewCurrency("392", "JPY", "Japanese Yen", 61.0, 100)

	require.NoError(t, err)
	require.InDelta(t, 0.61, c.PerUnit(), 1e-9)
}

func TestNewUser_Validates(t *testing.T) {
	_, err := NewUser("A")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	u, err := NewUser("  Alice  ")
	require.NoError(t, err)
	require.Equal(t, "Alice", u.Name)
}
