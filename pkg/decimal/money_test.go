package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	m := NewMoney(12.345)
	assert.Equal(t, "12.35", m.String())

	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	assert.True(t, m2.Decimal.Equal(d))
}

func TestRounding(t *testing.T) {
	cases := []struct {
		in     string
		places int32
		out    string
	}{
		{"2.344", 2, "2.34"},
		{"2.345", 2, "2.35"},
		{"1234.5", 0, "1235.00"},
		{"0.125", 1, "0.10"},
	}
	for _, c := range cases {
		m := NewMoneyFromDecimal(stddec.RequireFromString(c.in))
		assert.Equal(t, c.out, m.RoundTo(c.places).String(), "round(%s, %d)", c.in, c.places)
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		unit  float64
		want  string
	}{
		{"Crore", 12345678, 1e7, "1.23"},
		{"Lakh", 250000, 1e5, "2.50"},
		{"Man", 150000, 1e4, "15.00"},
		{"Unit one", 42.5, 1, "42.50"},
		{"Zero unit is identity", 42.5, 0, "42.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewMoney(tt.value).Scale(tt.unit).String())
		})
	}
}

func TestSum(t *testing.T) {
	values := []float64{0.1, 0.2, 0.3}
	assert.Equal(t, "0.60", Sum(values).String())
	assert.True(t, Sum(values).Decimal.Equal(stddec.RequireFromString("0.6")))
	assert.True(t, Sum(nil).Decimal.IsZero())
}

func TestArithmeticAndComparisons(t *testing.T) {
	a := NewMoney(10.10)
	b := NewMoney(5.05)
	assert.Equal(t, "5.05", a.Sub(b).String())

	assert.True(t, a.GreaterThan(b))
	assert.False(t, b.GreaterThan(a))
	assert.False(t, a.GreaterThan(a))
	assert.InDelta(t, 10.10, a.Float64(), 1e-12)
}
