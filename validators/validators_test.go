package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount("25000")
	require.NoError(t, err)
	require.Equal(t, "25000", amount.String())

	amount, err = ParseAmount("49.99")
	require.NoError(t, err)
	require.Equal(t, "49.99", amount.String())

	_, err = ParseAmount("0")
	require.Error(t, err)
	_, err = ParseAmount("-10")
	require.Error(t, err)
	_, err = ParseAmount("abc")
	require.Error(t, err)
	_, err = ParseAmount("")
	require.Error(t, err)
}

func TestParseDate(t *testing.T) {
	for _, input := range []string{
		"2025-08-15T10:30:00+07:00",
		"2025-08-15T10:30:00",
		"2025-08-15",
	} {
		parsed, err := ParseDate(input)
		require.NoError(t, err, input)
		require.Equal(t, 2025, parsed.Year())
		require.Equal(t, time.August, parsed.Month())
		require.Equal(t, 15, parsed.Day())
	}

	_, err := ParseDate("15/08/2025")
	require.Error(t, err)
}

func TestStructFieldErrors(t *testing.T) {
	type sample struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required,max=5"`
		Type  string `validate:"omitempty,oneof=INCOME EXPENSE"`
	}

	errs := Struct(&sample{Email: "not-an-email", Name: "toolongname", Type: "OTHER"})
	require.Len(t, errs, 3)
	require.Contains(t, errs["email"], "valid email")
	require.Contains(t, errs["name"], "at most 5")
	require.Contains(t, errs["type"], "INCOME EXPENSE")

	require.Nil(t, Struct(&sample{Email: "a@b.co", Name: "ok", Type: "INCOME"}))

	errs = Struct(&sample{})
	require.Equal(t, "This field is required!", errs["email"])
}
