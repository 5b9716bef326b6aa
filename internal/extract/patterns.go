package extract

import (
	"regexp"

	"github.com/facturaia/receipt-engine/internal/entity"
)

var (
	// RFC shape: 3 letters for companies or 4 for individuals, birth/founding
	// date digits, then the 3-char homoclave.
	reTaxID = regexp.MustCompile(`\b[A-ZÑ&]{3,4}\d{6}[A-Z0-9]{3}\b`)

	// separators are already normalized to slashes
	reDate = regexp.MustCompile(`\b\d{2}/\d{2}/\d{4}\b|\b\d{4}/\d{2}/\d{2}\b`)
)

// TaxID returns the first tax-id-shaped fragment in the document text.
// Unlike the keyword-anchored strategies it searches the whole text at once:
// tax ids rarely sit next to a label the OCR preserves.
func TaxID(s entity.TokenStream) *string {
	if m := reTaxID.FindString(s.SearchText()); m != "" {
		return &m
	}
	return nil
}

// Date returns the first date-shaped fragment in the document text.
func Date(s entity.TokenStream) *string {
	if m := reDate.FindString(s.SearchText()); m != "" {
		return &m
	}
	return nil
}
