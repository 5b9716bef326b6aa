// Package validate reconciles the independently extracted monetary figures
// using the domain arithmetic subtotal + tax = total.
package validate

import (
	"github.com/shopspring/decimal"

	"github.com/facturaia/receipt-engine/internal/entity"
	"github.com/facturaia/receipt-engine/internal/money"
)

// DefaultTaxRate is the IVA rate applied when deriving the missing figures.
// Single-jurisdiction assumption carried over from the business domain.
var DefaultTaxRate = decimal.NewFromFloat(0.16)

// mismatchTolerance is the accepted relative deviation between the line-item
// sum and the extracted total before the reconciliation flag is raised.
var mismatchTolerance = decimal.NewFromFloat(0.20)

// Config holds the validator's single domain constant.
type Config struct {
	TaxRate decimal.Decimal
}

// Result carries the reconciled figures and any non-fatal quality flags.
type Result struct {
	Subtotal  *decimal.Decimal
	TaxAmount *decimal.Decimal
	Flags     []string
}

// Reconcile derives subtotal and tax from the line items when present, and
// from the extracted total otherwise. The line-item path takes precedence:
// the extractor's total, when it disagrees, is still reported as-is but a
// deviation beyond the tolerance is flagged rather than repaired.
func Reconcile(cfg Config, items []entity.LineItem, total *decimal.Decimal) Result {
	rate := cfg.TaxRate
	if rate.IsZero() {
		rate = DefaultTaxRate
	}

	var res Result
	switch {
	case len(items) > 0:
		sum := decimal.Zero
		for _, it := range items {
			sum = sum.Add(it.Price)
		}
		subtotal := money.Round2(sum)
		tax := money.Round2(subtotal.Mul(rate))
		res.Subtotal = &subtotal
		res.TaxAmount = &tax

		if total != nil && total.IsPositive() {
			deviation := sum.Sub(*total).Abs()
			if deviation.GreaterThan(total.Mul(mismatchTolerance)) {
				res.Flags = append(res.Flags, entity.FlagReconciliationMismatch)
			}
		}

	case total != nil:
		subtotal := money.Round2(total.Div(decimal.NewFromInt(1).Add(rate)))
		tax := money.Round2(total.Sub(subtotal))
		res.Subtotal = &subtotal
		res.TaxAmount = &tax
	}
	return res
}
