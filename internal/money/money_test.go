package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAmount(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"$1,234.56", true},
		{"1,234.56", true},
		{"1234.56", true},
		{"$50.00", true},
		{"50", true},
		{"$5", true},
		{"1,23.45", false},
		{"12.345", false},
		{"12.3", false},
		{"TOTAL", false},
		{"$", false},
		{"", false},
		{"1.234,56", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsAmount(tc.in), "input %q", tc.in)
	}
}

func TestParse(t *testing.T) {
	d, ok := Parse("$1,234.56")
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.RequireFromString("1234.56")))

	d, ok = Parse(" 8.50 ")
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.RequireFromString("8.50")))

	_, ok = Parse("1.234,56")
	assert.False(t, ok, "ambiguous separators must yield no value")

	_, ok = Parse("abc")
	assert.False(t, ok)
}

func TestRound2(t *testing.T) {
	d := decimal.RequireFromString("3.7599")
	assert.Equal(t, "3.76", Round2(d).StringFixed(2))
}
