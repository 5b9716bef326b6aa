package pipeline

import (
	"github.com/facturaia/receipt-engine/constants"
	"github.com/facturaia/receipt-engine/internal/entity"
)

// reportCoverage fills fields_detected / fields_failed so that the two sets
// partition the full extractable field set, and records the run confidence.
func reportCoverage(rec *entity.StructuredReceipt, confidence float64) {
	detected := map[constants.Field]bool{
		constants.FieldVendor:        rec.Vendor != nil,
		constants.FieldTaxID:         rec.TaxID != nil,
		constants.FieldDate:          rec.Date != nil,
		constants.FieldPostalCode:    rec.PostalCode != nil,
		constants.FieldTotal:         rec.Total != nil,
		constants.FieldSubtotal:      rec.Subtotal != nil,
		constants.FieldTaxAmount:     rec.TaxAmount != nil,
		constants.FieldPaymentMethod: rec.PaymentMethod != nil,
		constants.FieldDocumentType:  rec.DocumentType != nil,
		constants.FieldCategory:      rec.Category != nil && rec.CategoryConfidence > 0,
		constants.FieldLineItems:     len(rec.LineItems) > 0,
	}

	all := constants.AllFields()
	rec.FieldsDetected = make([]string, 0, len(all))
	rec.FieldsFailed = make([]string, 0, len(all))
	for _, f := range all {
		if detected[f] {
			rec.FieldsDetected = append(rec.FieldsDetected, string(f))
			continue
		}
		rec.FieldsFailed = append(rec.FieldsFailed, string(f))
	}
	rec.Confidence = confidence
}
