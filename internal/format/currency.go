// Package format holds display formatting for the invoice document:
// Indian-convention currency amounts and localized dates. Formatting is
// a display concern only; computed values keep full float precision.
package format

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Qty formats a quantity without trailing zeros (5 → "5", 2.5 → "2.5").
func Qty(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// INR formats an amount with the rupee symbol, Indian lakh/crore digit
// grouping, and exactly two fractional digits: 100000 → "₹1,00,000.00".
func INR(v float64) string {
	d := decimal.NewFromFloat(v)
	negative := d.IsNegative()
	if negative {
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	parts := strings.SplitN(fixed, ".", 2)
	out := "₹" + groupIndian(parts[0]) + "." + parts[1]
	if negative {
		out = "-" + out
	}
	return out
}

// groupIndian inserts Indian-convention separators into an unsigned
// integer digit string: the last three digits form one group, the rest
// groups of two (12,34,567).
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(groups, ",") + "," + tail
}
