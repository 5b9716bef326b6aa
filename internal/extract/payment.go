package extract

import (
	"regexp"
	"strings"

	"github.com/facturaia/receipt-engine/constants"
	"github.com/facturaia/receipt-engine/internal/entity"
)

// paymentKeywords is evaluated in order; the first phrase contained in the
// document text wins. Keywords are accent-folded ASCII.
var paymentKeywords = []struct {
	phrase string
	method constants.PaymentMethod
}{
	{"efectivo", constants.PaymentCash},
	{"tarjeta de debito", constants.PaymentDebit},
	{"tarjeta debito", constants.PaymentDebit},
	{"tarjeta de credito", constants.PaymentCredit},
	{"tarjeta credito", constants.PaymentCredit},
	{"transferencia", constants.PaymentTransfer},
	{"cheque", constants.PaymentCheck},
	{"vales", constants.PaymentVouchers},
}

var reCardLast4 = regexp.MustCompile(`(?:tarjeta|card)[^0-9]{0,24}([0-9]{4})\b`)

// PaymentMethod returns the first payment keyword found in the document text.
func PaymentMethod(s entity.TokenStream) *constants.PaymentMethod {
	text := fold(s.Text())
	for _, kw := range paymentKeywords {
		if strings.Contains(text, kw.phrase) {
			m := kw.method
			return &m
		}
	}
	return nil
}

// CardLast4 looks for a 4-digit sequence shortly after a card mention,
// independent of whether a payment method keyword matched.
func CardLast4(s entity.TokenStream) *string {
	m := reCardLast4.FindStringSubmatch(fold(s.Text()))
	if m == nil {
		return nil
	}
	return &m[1]
}
