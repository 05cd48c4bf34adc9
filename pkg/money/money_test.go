package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "already rounded", in: "21.00", want: "21"},
		{name: "half goes up", in: "0.125", want: "0.13"},
		{name: "half goes up not to even", in: "0.135", want: "0.14"},
		{name: "below half goes down", in: "2.344999", want: "2.34"},
		{name: "quantity product", in: "3.3345", want: "3.33"},
		{name: "large value stays exact", in: "99999999999999.995", want: "100000000000000"},
		{name: "no float artifacts", in: "1.005", want: "1.01"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Round2(decimal.RequireFromString(tc.in))
			assert.True(t, decimal.RequireFromString(tc.want).Equal(got), "got %s", got)
		})
	}
}

func TestHasMaxPlaces(t *testing.T) {
	cases := []struct {
		in     string
		places int32
		want   bool
	}{
		{in: "10.5", places: MoneyPlaces, want: true},
		{in: "10.50", places: MoneyPlaces, want: true},
		{in: "10.500", places: MoneyPlaces, want: true},
		{in: "10.505", places: MoneyPlaces, want: false},
		{in: "1.255", places: QuantityPlaces, want: true},
		{in: "1.2555", places: QuantityPlaces, want: false},
		{in: "7", places: QuantityPlaces, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, HasMaxPlaces(decimal.RequireFromString(tc.in), tc.places))
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "21.00", Format(decimal.NewFromInt(21)))
	assert.Equal(t, "101.83", Format(decimal.RequireFromString("101.8333")))
	assert.Equal(t, "0.00", Format(decimal.Zero))
	assert.Equal(t, "2.000", FormatQuantity(decimal.NewFromInt(2)))
	assert.Equal(t, "0.125", FormatQuantity(decimal.RequireFromString("0.125")))
}
