// Package pipeline wires the normalizer, the layout adapters, the field
// extractors and the arithmetic validator into one stateless engine. Every
// run builds its model fresh from the input document; there is no cross-run
// state.
package pipeline

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/facturaia/receipt-engine/internal/entity"
	"github.com/facturaia/receipt-engine/internal/extract"
	"github.com/facturaia/receipt-engine/internal/layout"
	"github.com/facturaia/receipt-engine/internal/normalize"
	"github.com/facturaia/receipt-engine/internal/validate"
)

// Config holds the engine's tunable constants.
type Config struct {
	// TaxRate drives the arithmetic validator. Zero selects the fixed
	// 16% business default.
	TaxRate decimal.Decimal
	// RowThreshold is the vertical clustering distance for the geometric
	// adapter. Zero selects layout.DefaultRowThreshold.
	RowThreshold float64
	// DefaultConfidence is reported when the caller supplies no OCR-engine
	// confidence score.
	DefaultConfidence float64
}

// Options carry per-document caller input.
type Options struct {
	// OCRConfidence is the recognition engine's own confidence in (0, 1];
	// zero means unknown.
	OCRConfidence float64
}

// Engine is the shared extraction core behind both input adapters.
type Engine struct {
	logger *slog.Logger
	cfg    Config
}

// NewEngine builds an engine, filling config zero-values with the fixed
// defaults.
func NewEngine(logger *slog.Logger, cfg Config) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.RowThreshold <= 0 {
		cfg.RowThreshold = layout.DefaultRowThreshold
	}
	if cfg.TaxRate.IsZero() {
		cfg.TaxRate = validate.DefaultTaxRate
	}
	if cfg.DefaultConfidence <= 0 {
		cfg.DefaultConfidence = 0.70
	}
	return &Engine{logger: logger, cfg: cfg}
}

// ExtractTokens runs the geometric adapter: unordered tokens with bounding
// polygons, the first conventionally being the full-document transcript.
func (e *Engine) ExtractTokens(tokens []entity.Token, opts Options) *entity.StructuredReceipt {
	cleaned := make([]entity.Token, len(tokens))
	for i, t := range tokens {
		cleaned[i] = entity.Token{Text: normalize.Text(t.Text), Geometry: t.Geometry}
	}
	return e.run(layout.FromTokens(cleaned, e.cfg.RowThreshold), opts)
}

// ExtractLines runs the linear adapter: plain text lines already in reading
// order.
func (e *Engine) ExtractLines(lines []string, opts Options) *entity.StructuredReceipt {
	cleaned := make([]string, len(lines))
	for i, l := range lines {
		cleaned[i] = normalize.Text(l)
	}
	return e.run(layout.FromLines(cleaned), opts)
}

func (e *Engine) run(stream entity.TokenStream, opts Options) *entity.StructuredReceipt {
	runID := uuid.New()

	if stream.Empty() {
		e.logger.Warn("extract.empty_input", "run_id", runID)
		rec := &entity.StructuredReceipt{}
		reportCoverage(rec, e.confidence(opts))
		return rec
	}

	e.logger.Debug("extract.start",
		"run_id", runID,
		"lines", len(stream.Lines),
		"tokens", stream.TokenCount(),
	)

	rec := &entity.StructuredReceipt{
		Vendor:     extract.Vendor(stream),
		TaxID:      extract.TaxID(stream),
		Date:       extract.Date(stream),
		PostalCode: extract.PostalCode(stream),
		Total:      extract.Total(stream),
		LineItems:  extract.LineItems(stream, e.cfg.RowThreshold),
	}
	rec.PaymentMethod = extract.PaymentMethod(stream)
	rec.CardLast4 = extract.CardLast4(stream)

	docType := extract.DocumentType(stream)
	rec.DocumentType = &docType

	vendorName := ""
	if rec.Vendor != nil {
		vendorName = *rec.Vendor
	}
	cat, catConfidence := extract.Category(vendorName)
	rec.Category = &cat
	rec.CategoryConfidence = catConfidence

	v := validate.Reconcile(validate.Config{TaxRate: e.cfg.TaxRate}, rec.LineItems, rec.Total)
	rec.Subtotal = v.Subtotal
	rec.TaxAmount = v.TaxAmount
	rec.Flags = v.Flags
	if len(v.Flags) > 0 {
		e.logger.Warn("extract.reconciliation_mismatch", "run_id", runID, "flags", v.Flags)
	}

	reportCoverage(rec, e.confidence(opts))

	e.logger.Info("extract.ok",
		"run_id", runID,
		"detected", len(rec.FieldsDetected),
		"failed", len(rec.FieldsFailed),
		"line_items", len(rec.LineItems),
		"document_type", string(docType),
		"confidence", rec.Confidence,
	)
	return rec
}

func (e *Engine) confidence(opts Options) float64 {
	if opts.OCRConfidence > 0 && opts.OCRConfidence <= 1 {
		return opts.OCRConfidence
	}
	return e.cfg.DefaultConfidence
}
