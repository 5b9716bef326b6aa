package extract

import (
	"strings"

	"github.com/facturaia/receipt-engine/internal/entity"
	"github.com/facturaia/receipt-engine/internal/layout"
	"github.com/facturaia/receipt-engine/internal/money"
)

var (
	itemHeaderKeywords = []string{"cant", "cantidad", "descripcion", "articulo", "producto", "item"}
	itemFooterKeywords = []string{"subtotal", "total", "iva", "descuento"}
)

// Detail section defaults when no header/footer keyword bounds it.
const (
	detailDefaultStart = 0.15
	detailDefaultEnd   = 0.80
)

// LineItems reconstructs the purchased articles. The detail section is
// bounded by the first header keyword and the first footer keyword after it
// (proportional defaults otherwise); the tokens in between are regrouped into
// candidate rows, and each row contributes its rightmost currency-shaped
// token as the price with everything before it as the description.
func LineItems(s entity.TokenStream, rowThreshold float64) []entity.LineItem {
	flat := s.Flatten()
	n := len(flat)
	if n == 0 {
		return nil
	}

	start := int(float64(n) * detailDefaultStart)
	for i, it := range flat {
		if matchesAny(it.Token.Text, itemHeaderKeywords) {
			start = i + 1
			break
		}
	}

	end := int(float64(n) * detailDefaultEnd)
	for i := start; i < n; i++ {
		if matchesAny(flat[i].Token.Text, itemFooterKeywords) {
			end = i
			break
		}
	}
	if end > n {
		end = n
	}
	if start >= end {
		return nil
	}

	var items []entity.LineItem
	for _, row := range layout.Regroup(flat[start:end], rowThreshold) {
		if len(row.Tokens) < 2 {
			continue
		}
		price := -1
		for i := len(row.Tokens) - 1; i >= 0; i-- {
			if money.IsAmount(row.Tokens[i].Text) {
				price = i
				break
			}
		}
		if price < 0 {
			continue
		}
		d, ok := money.Parse(row.Tokens[price].Text)
		if !ok {
			continue
		}
		desc := strings.TrimSpace(entity.Line{Tokens: row.Tokens[:price]}.Text())
		if desc == "" {
			continue
		}
		items = append(items, entity.LineItem{
			Description: desc,
			Price:       money.Round2(d),
		})
	}
	return items
}
