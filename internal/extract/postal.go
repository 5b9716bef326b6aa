package extract

import (
	"regexp"

	"github.com/facturaia/receipt-engine/internal/entity"
)

var (
	postalKeywords = []string{"c.p.", "c.p", "cp"}
	rePostal       = regexp.MustCompile(`^\d{5}$`)
)

// PostalCode finds a 5-digit postal code next to a C.P. keyword, falling back
// to the first 5-digit token within the first third of the stream (addresses
// sit in the header of a receipt, not the detail section).
func PostalCode(s entity.TokenStream) *string {
	if raw, ok := anchoredValue(s, postalKeywords, rePostal.MatchString); ok {
		return &raw
	}

	flat := s.Flatten()
	limit := len(flat) / 3
	for i := 0; i < limit; i++ {
		if rePostal.MatchString(flat[i].Token.Text) {
			v := flat[i].Token.Text
			return &v
		}
	}
	return nil
}
