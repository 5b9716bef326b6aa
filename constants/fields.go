package constants

// Field is the canonical name of one extractable receipt field.
type Field string

// Stable values (serialized into fields_detected / fields_failed).
const (
	FieldVendor        Field = "vendor"
	FieldTaxID         Field = "tax_id"
	FieldDate          Field = "date"
	FieldPostalCode    Field = "postal_code"
	FieldTotal         Field = "total"
	FieldSubtotal      Field = "subtotal"
	FieldTaxAmount     Field = "tax_amount"
	FieldPaymentMethod Field = "payment_method"
	FieldDocumentType  Field = "document_type"
	FieldCategory      Field = "category"
	FieldLineItems     Field = "line_items"
)

var allFields = []Field{
	FieldVendor,
	FieldTaxID,
	FieldDate,
	FieldPostalCode,
	FieldTotal,
	FieldSubtotal,
	FieldTaxAmount,
	FieldPaymentMethod,
	FieldDocumentType,
	FieldCategory,
	FieldLineItems,
}

// AllFields returns every extractable field name in a fixed order.
func AllFields() []Field {
	out := make([]Field, len(allFields))
	copy(out, allFields)
	return out
}
