package extract

import (
	"strings"

	"github.com/facturaia/receipt-engine/constants"
)

// categoryConfidence is the fixed score assigned to any keyword-group match.
const categoryConfidence = 0.9

// Category classifies the extracted vendor name against the fixed keyword
// groups, in group order. No match yields Unclassified with zero confidence.
func Category(vendor string) (constants.Category, float64) {
	name := fold(vendor)
	if name == "" {
		return constants.Unclassified, 0
	}
	for _, cat := range constants.CategoryOrder {
		for _, kw := range constants.CategoryKeywords[cat] {
			if strings.Contains(name, kw) {
				return cat, categoryConfidence
			}
		}
	}
	return constants.Unclassified, 0
}
