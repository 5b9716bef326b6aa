// Package money parses currency-amount fragments out of OCR text without ever
// raising an error: text that does not match a recognized shape yields no
// value rather than a parse failure.
package money

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// reAmount is the currency-amount shape: optional $ sign, grouped or plain
// digits, optional 2-decimal fraction.
var reAmount = regexp.MustCompile(`^\$?\d{1,3}(,\d{3})*(\.\d{2})?$|^\$?\d+(\.\d{2})?$`)

// IsAmount reports whether s matches the currency-amount shape.
func IsAmount(s string) bool {
	return reAmount.MatchString(strings.TrimSpace(s))
}

// Parse converts a currency-amount-shaped fragment into a decimal, stripping
// the currency sign and thousands separators first. The boolean is false for
// any input that does not match the shape.
func Parse(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if !reAmount.MatchString(s) {
		return decimal.Zero, false
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Round2 rounds to two fraction digits, the precision of every monetary field
// in the output record.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
