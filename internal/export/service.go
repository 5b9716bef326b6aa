// Package export renders batches of structured receipts as XLSX workbooks for
// the downstream bookkeeping collaborator.
package export

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/facturaia/receipt-engine/internal/entity"
)

// Service produces XLSX bytes for extraction results.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ReceiptsXLSX returns an XLSX workbook (as bytes) with one row per receipt.
func (s *Service) ReceiptsXLSX(recs []*entity.StructuredReceipt) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Receipts"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Vendor",
		"Tax ID",
		"Date",
		"Document Type",
		"Category",
		"Subtotal",
		"Tax",
		"Total",
		"Payment Method",
		"Items",
		"Confidence",
		"Flags",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, strOrEmpty(r.Vendor))
		write(2, strOrEmpty(r.TaxID))
		write(3, strOrEmpty(r.Date))
		if r.DocumentType != nil {
			write(4, string(*r.DocumentType))
		}
		if r.Category != nil {
			write(5, string(*r.Category))
		}
		write(6, moneyOrEmpty(r.Subtotal))
		write(7, moneyOrEmpty(r.TaxAmount))
		write(8, moneyOrEmpty(r.Total))
		if r.PaymentMethod != nil {
			write(9, string(*r.PaymentMethod))
		}
		write(10, len(r.LineItems))
		write(11, r.Confidence)
		write(12, strings.Join(r.Flags, ","))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 36) // vendor
	_ = f.SetColWidth(sheet, "B", "C", 16) // tax id, date
	_ = f.SetColWidth(sheet, "D", "E", 18) // type, category
	_ = f.SetColWidth(sheet, "F", "H", 12) // amounts
	_ = f.SetColWidth(sheet, "L", "L", 28) // flags

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func moneyOrEmpty(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}
