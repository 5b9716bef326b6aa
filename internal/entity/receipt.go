package entity

import (
	"github.com/shopspring/decimal"

	"github.com/facturaia/receipt-engine/constants"
)

// LineItem is one purchased article reconstructed from the detail section.
// Price carries exactly two fraction digits.
type LineItem struct {
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// StructuredReceipt is the terminal, immutable result of one extraction run.
// Absent fields are nil; FieldsDetected and FieldsFailed partition the full
// extractable field set. Monetary values are rounded to 2 decimal places.
type StructuredReceipt struct {
	Vendor     *string `json:"vendor"`
	TaxID      *string `json:"tax_id"`
	Date       *string `json:"date"`
	PostalCode *string `json:"postal_code"`

	Total     *decimal.Decimal `json:"total"`
	Subtotal  *decimal.Decimal `json:"subtotal"`
	TaxAmount *decimal.Decimal `json:"tax_amount"`

	PaymentMethod *constants.PaymentMethod `json:"payment_method"`
	CardLast4     *string                  `json:"card_last4,omitempty"`

	DocumentType *constants.DocumentType `json:"document_type"`

	Category           *constants.Category `json:"category"`
	CategoryConfidence float64             `json:"category_confidence"`

	LineItems []LineItem `json:"line_items"`

	FieldsDetected []string `json:"fields_detected"`
	FieldsFailed   []string `json:"fields_failed"`
	Flags          []string `json:"flags,omitempty"`
	Confidence     float64  `json:"confidence"`
}

// FlagReconciliationMismatch records that the line-item sum deviates from the
// extracted total by more than the accepted tolerance.
const FlagReconciliationMismatch = "reconciliation_mismatch"
