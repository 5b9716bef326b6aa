package extract

import (
	"github.com/shopspring/decimal"

	"github.com/facturaia/receipt-engine/internal/entity"
	"github.com/facturaia/receipt-engine/internal/money"
)

// totalKeywords anchors the grand-total search.
var totalKeywords = []string{"total", "importe", "monto"}

// Total finds the document total: a currency amount in the same line as a
// total keyword, or, when no keyword appears anywhere, the last
// currency-shaped token in the whole stream.
func Total(s entity.TokenStream) *decimal.Decimal {
	if raw, ok := anchoredValue(s, totalKeywords, money.IsAmount); ok {
		if d, ok := money.Parse(raw); ok {
			d = money.Round2(d)
			return &d
		}
	}

	if hasKeyword(s, totalKeywords) {
		// A keyword exists but no amount shares its line; the backward
		// fallback is reserved for keyword-less documents.
		return nil
	}

	flat := s.Flatten()
	for i := len(flat) - 1; i >= 0; i-- {
		if d, ok := money.Parse(flat[i].Token.Text); ok {
			d = money.Round2(d)
			return &d
		}
	}
	return nil
}

func hasKeyword(s entity.TokenStream, keywords []string) bool {
	for _, it := range s.Flatten() {
		if matchesAny(it.Token.Text, keywords) {
			return true
		}
	}
	return false
}
