package extract

import (
	"strings"

	"github.com/facturaia/receipt-engine/constants"
	"github.com/facturaia/receipt-engine/internal/entity"
)

// docTypeClasses is checked in fixed priority order; income is the default
// when nothing matches.
var docTypeClasses = []struct {
	docType  constants.DocumentType
	keywords []string
}{
	{constants.DocTypeCreditNote, []string{"nota de credito", "devolucion"}},
	{constants.DocTypeTransfer, []string{"traslado"}},
	{constants.DocTypePayroll, []string{"nomina", "recibo de pago"}},
	{constants.DocTypePayment, []string{"complemento de pago", "parcialidad", "parcialidades"}},
}

// DocumentType classifies the fiscal document kind from keyword presence.
func DocumentType(s entity.TokenStream) constants.DocumentType {
	text := fold(s.SearchText())
	for _, class := range docTypeClasses {
		for _, kw := range class.keywords {
			if strings.Contains(text, kw) {
				return class.docType
			}
		}
	}
	return constants.DocTypeIncome
}
