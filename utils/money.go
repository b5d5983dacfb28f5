package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RoundMoney rounds an amount to cents, half away from zero.
// 1.005 rounds to 1.01 because the amount is taken at its shortest decimal form.
func RoundMoney(amount float64) float64 {
	f, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return f
}

// FormatUSD formats an amount as a US dollar string like "$1,234.56".
// Uses comma as thousands separator and always prints two decimals.
func FormatUSD(amount float64) string {
	s := decimal.NewFromFloat(amount).StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	// Pre-allocate: digits + separators + sign + $ + fraction
	b.Grow(len(intPart) + len(intPart)/3 + len(frac) + 3)
	if neg && s != "0.00" {
		b.WriteString("-$")
	} else {
		b.WriteString("$")
	}

	// Insert separators from the left.
	rem := len(intPart) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(intPart[:rem])
	for i := rem; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	b.WriteByte('.')
	b.WriteString(frac)

	return b.String()
}
