package money_test

import (
	"encoding/json"
	"testing"

	"github.com/ksuvorov/bankledger/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want money.Amount
	}{
		{"0", 0},
		{"0.01", 1},
		{"1", 100},
		{"150.00", 15000},
		{"50.5", 5050},
		{"-20.25", -2025},
		{"1.100", 110},
	}
	for _, tt := range tests {
		got, err := money.Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "10,5", "1.0.0"} {
		_, err := money.Parse(in)
		assert.ErrorIs(t, err, money.ErrInvalidAmount, in)
	}
}

func TestParse_TooManyDecimals(t *testing.T) {
	for _, in := range []string{"0.001", "12.345", "99.999"} {
		_, err := money.Parse(in)
		assert.ErrorIs(t, err, money.ErrTooManyDecimals, in)
	}
}

func TestParsePositive(t *testing.T) {
	got, err := money.ParsePositive("50.00")
	require.NoError(t, err)
	assert.Equal(t, money.Amount(5000), got)

	for _, in := range []string{"0", "0.00", "-1", "-0.01"} {
		_, err := money.ParsePositive(in)
		assert.ErrorIs(t, err, money.ErrAmountNotPositive, in)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "150.00", money.Amount(15000).String())
	assert.Equal(t, "0.00", money.Amount(0).String())
	assert.Equal(t, "0.05", money.Amount(5).String())
	assert.Equal(t, "-20.25", money.Amount(-2025).String())
}

func TestJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(money.Amount(5050))
	require.NoError(t, err)
	assert.Equal(t, `"50.50"`, string(b))

	var a money.Amount
	require.NoError(t, json.Unmarshal([]byte(`"150.00"`), &a))
	assert.Equal(t, money.Amount(15000), a)
}
