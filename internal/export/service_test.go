package export

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/facturaia/receipt-engine/constants"
	"github.com/facturaia/receipt-engine/internal/entity"
)

func TestReceiptsXLSX(t *testing.T) {
	vendor := "SUPER GIGANTE SA DE CV"
	taxID := "XAXX010101000"
	total := decimal.RequireFromString("27.26")
	subtotal := decimal.RequireFromString("23.50")
	tax := decimal.RequireFromString("3.76")
	method := constants.PaymentCash
	docType := constants.DocTypeIncome
	cat := constants.FoodRetail

	recs := []*entity.StructuredReceipt{
		{
			Vendor:        &vendor,
			TaxID:         &taxID,
			Total:         &total,
			Subtotal:      &subtotal,
			TaxAmount:     &tax,
			PaymentMethod: &method,
			DocumentType:  &docType,
			Category:      &cat,
			LineItems: []entity.LineItem{
				{Description: "COLA 2", Price: decimal.RequireFromString("15.00")},
				{Description: "PAN", Price: decimal.RequireFromString("8.50")},
			},
			Confidence: 0.93,
		},
		{
			Flags:      []string{entity.FlagReconciliationMismatch},
			Confidence: 0.70,
		},
	}

	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
	out, err := svc.ReceiptsXLSX(recs)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	cell := func(ref string) string {
		v, err := f.GetCellValue("Receipts", ref)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Vendor", cell("A1"))
	assert.Equal(t, "Total", cell("H1"))

	assert.Equal(t, vendor, cell("A2"))
	assert.Equal(t, taxID, cell("B2"))
	assert.Equal(t, "income", cell("D2"))
	assert.Equal(t, "FoodRetail", cell("E2"))
	assert.Equal(t, "23.50", cell("F2"))
	assert.Equal(t, "3.76", cell("G2"))
	assert.Equal(t, "27.26", cell("H2"))
	assert.Equal(t, "cash", cell("I2"))
	assert.Equal(t, "2", cell("J2"))

	assert.Empty(t, cell("A3"))
	assert.Equal(t, entity.FlagReconciliationMismatch, cell("L3"))
}

func TestReceiptsXLSXEmptyBatch(t *testing.T) {
	svc := NewService(nil)
	out, err := svc.ReceiptsXLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Receipts", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Vendor", v)
}
