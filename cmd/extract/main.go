// Command extract runs the field-extraction engine over a single OCR payload
// and prints the structured receipt as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/shopspring/decimal"

	"github.com/facturaia/receipt-engine/internal/common"
	"github.com/facturaia/receipt-engine/internal/entity"
	"github.com/facturaia/receipt-engine/internal/ingest"
	"github.com/facturaia/receipt-engine/internal/pipeline"
)

func main() {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("extract")
	var (
		input  = fs.StringLong("input", "-", "OCR payload file ('-' for stdin)")
		pretty = fs.BoolLong("pretty", "Indent the JSON output")
	)
	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("EXTRACT")); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	data, err := readInput(*input)
	if err != nil {
		logger.Error("read payload", "input", *input, "error", err)
		os.Exit(1)
	}

	doc, err := ingest.Decode(data)
	if err != nil {
		logger.Error("decode payload", "error", err)
		os.Exit(1)
	}

	engine := pipeline.NewEngine(logger, pipeline.Config{
		TaxRate:           decimal.NewFromFloat(cfg.Engine.TaxRate),
		RowThreshold:      cfg.Engine.RowThreshold,
		DefaultConfidence: cfg.Engine.DefaultConfidence,
	})

	opts := pipeline.Options{OCRConfidence: doc.Confidence}
	var rec *entity.StructuredReceipt
	if doc.Geometric() {
		rec = engine.ExtractTokens(doc.Tokens, opts)
	} else {
		rec = engine.ExtractLines(doc.Lines, opts)
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(rec); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func logLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
