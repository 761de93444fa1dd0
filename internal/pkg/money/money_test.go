package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRound2_HalfAwayFromZero(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"833.325", "833.33"},
		{"833.335", "833.34"},
		{"0.005", "0.01"},
		{"-0.005", "-0.01"},
		{"605", "605.00"},
		{"419.999", "420.00"},
	}

	for _, c := range cases {
		got := Round2(decimal.RequireFromString(c.in))
		assert.Equal(t, c.want, got.StringFixed(2), "Round2(%s)", c.in)
	}
}

func TestFormat_TwoDecimalPlaces(t *testing.T) {
	assert.Equal(t, "600.00", Format(decimal.NewFromInt(600)))
	assert.Equal(t, "5.00", Format(decimal.NewFromInt(5)))
	assert.Equal(t, "833.33", Format(decimal.RequireFromString("833.325").Round(2)))
}
