package constants

// DocumentType classifies the fiscal nature of a receipt.
type DocumentType string

const (
	DocTypeIncome     DocumentType = "income"
	DocTypeCreditNote DocumentType = "creditnote"
	DocTypeTransfer   DocumentType = "transfer"
	DocTypePayroll    DocumentType = "payroll"
	DocTypePayment    DocumentType = "payment"
)

// PaymentMethod is the normalized payment method found on a receipt.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentDebit    PaymentMethod = "debit"
	PaymentCredit   PaymentMethod = "credit"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentCheck    PaymentMethod = "check"
	PaymentVouchers PaymentMethod = "vouchers"
)
