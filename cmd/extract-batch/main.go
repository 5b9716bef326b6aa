// Command extract-batch runs the engine over every payload file in a
// directory using the worker pool and writes one XLSX summary workbook.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/shopspring/decimal"

	"github.com/facturaia/receipt-engine/internal/async"
	"github.com/facturaia/receipt-engine/internal/common"
	"github.com/facturaia/receipt-engine/internal/entity"
	"github.com/facturaia/receipt-engine/internal/export"
	"github.com/facturaia/receipt-engine/internal/ingest"
	"github.com/facturaia/receipt-engine/internal/pipeline"
)

func main() {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("extract-batch")
	var (
		dir = fs.StringLong("dir", ".", "Directory of OCR payload *.json files")
		out = fs.StringLong("out", "receipts.xlsx", "Output XLSX path")
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

	paths, err := filepath.Glob(filepath.Join(*dir, "*.json"))
	if err != nil || len(paths) == 0 {
		logger.Error("no payload files found", "dir", *dir, "error", err)
		os.Exit(1)
	}
	sort.Strings(paths)

	engine := pipeline.NewEngine(logger, pipeline.Config{
		TaxRate:           decimal.NewFromFloat(cfg.Engine.TaxRate),
		RowThreshold:      cfg.Engine.RowThreshold,
		DefaultConfidence: cfg.Engine.DefaultConfidence,
	})

	var (
		mu      sync.Mutex
		results = make(map[string]*entity.StructuredReceipt, len(paths))
	)
	pool := async.NewPool(logger, cfg.Engine.BatchWorkers, func(_ context.Context, job async.Job) error {
		doc, err := ingest.Decode(job.Payload)
		if err != nil {
			return err
		}
		opts := pipeline.Options{OCRConfidence: doc.Confidence}
		var rec *entity.StructuredReceipt
		if doc.Geometric() {
			rec = engine.ExtractTokens(doc.Tokens, opts)
		} else {
			rec = engine.ExtractLines(doc.Lines, opts)
		}
		mu.Lock()
		results[job.Path] = rec
		mu.Unlock()
		return nil
	})

	ctx := context.Background()
	start := time.Now()
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("read payload", "path", path, "error", err)
			continue
		}
		if err := pool.Enqueue(ctx, async.Job{Path: path, Payload: data}); err != nil {
			logger.Error("enqueue payload", "path", path, "error", err)
		}
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()
	pool.Shutdown(shutdownCtx)

	// Stable row order regardless of worker scheduling.
	recs := make([]*entity.StructuredReceipt, 0, len(results))
	for _, path := range paths {
		if rec, ok := results[path]; ok {
			recs = append(recs, rec)
		}
	}

	xlsx, err := export.NewService(logger).ReceiptsXLSX(recs)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsx, 0o644); err != nil {
		logger.Error("write workbook", "path", *out, "error", err)
		os.Exit(1)
	}

	logger.Info("batch extraction OK",
		"payloads", len(paths),
		"extracted", len(recs),
		"out", *out,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

func logLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
