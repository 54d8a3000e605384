package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestINR(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "₹0.00"},
		{1, "₹1.00"},
		{99.5, "₹99.50"},
		{100, "₹100.00"},
		{999, "₹999.00"},
		{1000, "₹1,000.00"},
		{12345, "₹12,345.00"},
		{100000, "₹1,00,000.00"},
		{1234567.5, "₹12,34,567.50"},
		{12345678, "₹1,23,45,678.00"},
		{123456789, "₹12,34,56,789.00"},
		{999.999, "₹1,000.00"}, // half-up rounding at the display boundary
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, INR(tc.in), "INR(%v)", tc.in)
	}
}

func TestINR_Negative(t *testing.T) {
	// Totals never go negative in the draft, but the formatter stays sane.
	assert.Equal(t, "-₹1,00,000.00", INR(-100000))
}

func TestGroupIndian(t *testing.T) {
	assert.Equal(t, "0", groupIndian("0"))
	assert.Equal(t, "123", groupIndian("123"))
	assert.Equal(t, "1,234", groupIndian("1234"))
	assert.Equal(t, "12,34,567", groupIndian("1234567"))
	assert.Equal(t, "1,23,45,67,890", groupIndian("1234567890"))
}

func TestQty(t *testing.T) {
	assert.Equal(t, "5", Qty(5))
	assert.Equal(t, "2.5", Qty(2.5))
	assert.Equal(t, "0", Qty(0))
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "14/03/2025", DisplayDate("2025-03-14"))
	assert.Equal(t, "01/01/2026", DisplayDate("2026-01-01"))

	// Best-effort: unparseable input passes through unchanged.
	assert.Equal(t, "not-a-date", DisplayDate("not-a-date"))
	assert.Equal(t, "", DisplayDate(""))
}
