package extract

import (
	"regexp"
	"strings"

	"github.com/facturaia/receipt-engine/internal/entity"
	"github.com/facturaia/receipt-engine/internal/money"
)

const (
	vendorScanLines = 6
	vendorMaxLines  = 3
)

var (
	reLongDigitRun = regexp.MustCompile(`\d{7,}`)
	reAddressWord  = regexp.MustCompile(`\b(tel|telefono|calle|av|avenida|col|colonia|cp|c\.p\.?|rfc|no\.)\b`)
)

// Vendor joins up to three of the first non-trivial header lines. Lines that
// look like addresses, dates or phone numbers are skipped, and the scan stops
// at the
// first line that belongs to the detail or totals section; merchant names sit
// at the top of a receipt above the contact block.
func Vendor(s entity.TokenStream) *string {
	var picked []string
	for i, ln := range s.Lines {
		if i >= vendorScanLines || len(picked) >= vendorMaxLines {
			break
		}
		if startsBody(ln) {
			break
		}
		text := strings.TrimSpace(ln.Text())
		if len(text) <= 3 {
			continue
		}
		if looksLikeAddress(text) {
			continue
		}
		picked = append(picked, text)
	}
	if len(picked) == 0 {
		return nil
	}
	v := strings.Join(picked, " ")
	return &v
}

// startsBody reports whether a line opens the detail table or the totals
// block rather than the header.
func startsBody(ln entity.Line) bool {
	for _, tok := range ln.Tokens {
		if money.IsAmount(tok.Text) {
			return true
		}
		if matchesAny(tok.Text, itemHeaderKeywords) || matchesAny(tok.Text, totalKeywords) {
			return true
		}
	}
	return false
}

func looksLikeAddress(line string) bool {
	folded := fold(line)
	if reAddressWord.MatchString(folded) {
		return true
	}
	if reDate.MatchString(folded) {
		return true
	}
	return reLongDigitRun.MatchString(folded)
}
