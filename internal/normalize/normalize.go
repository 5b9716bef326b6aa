// Package normalize repairs systematic OCR character confusions before field
// extraction runs. Every rule is confined to numeric or identifier-shaped
// fragments so ordinary words pass through untouched.
package normalize

import (
	"regexp"
	"strings"
)

var (
	// 3-4 uppercase letters, a 6-char digit run that may contain misread O,
	// then an optional alphanumeric suffix (tax-id shape).
	reTaxIDFrag = regexp.MustCompile(`\b([A-Z]{3,4})([0-9O]{6})([A-Z0-9]{0,3})\b`)

	// currency-amount shape where O/I may appear inside the digit runs
	reAmountFrag = regexp.MustCompile(`\$[0-9OI][0-9OI,]*(?:\.[0-9OI]{1,2})?\b|\b[0-9][0-9OI,]*(?:\.[0-9OI]{1,2})?\b`)

	reDashDateDMY = regexp.MustCompile(`\b(\d{2})-(\d{2})-(\d{4})\b`)
	reDashDateYMD = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)

	// tax-id split by stray whitespace between the letter and digit groups
	reTaxIDSplit = regexp.MustCompile(`\b([A-Z]{3,4})\s+(\d{6}[A-Z0-9]{0,3})\b`)
)

// Text applies the correction rules in order and returns the repaired text.
// It never fails; input that matches no rule comes back unchanged.
func Text(s string) string {
	if s == "" {
		return s
	}
	s = reTaxIDFrag.ReplaceAllStringFunc(s, func(m string) string {
		sub := reTaxIDFrag.FindStringSubmatch(m)
		return sub[1] + strings.ReplaceAll(sub[2], "O", "0") + sub[3]
	})
	s = reAmountFrag.ReplaceAllStringFunc(s, func(m string) string {
		m = strings.ReplaceAll(m, "O", "0")
		return strings.ReplaceAll(m, "I", "1")
	})
	s = reDashDateDMY.ReplaceAllString(s, "$1/$2/$3")
	s = reDashDateYMD.ReplaceAllString(s, "$1/$2/$3")
	s = reTaxIDSplit.ReplaceAllString(s, "$1$2")
	return s
}
