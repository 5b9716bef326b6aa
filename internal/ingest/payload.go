// Package ingest decodes OCR provider payloads at the input boundary.
// Payloads are schema-validated before decoding so malformed provider output
// is rejected with a precise error instead of surfacing deep inside the
// extraction core.
package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/facturaia/receipt-engine/internal/common"
	"github.com/facturaia/receipt-engine/internal/entity"
)

// Document is one decoded OCR result: either geometric tokens or pre-ordered
// plain text lines, never both. Confidence is the recognition engine's own
// score when the provider reports one.
type Document struct {
	Tokens     []entity.Token `json:"tokens,omitempty"`
	Lines      []string       `json:"lines,omitempty"`
	Confidence float64        `json:"confidence,omitempty"`
}

// Geometric reports whether the document came from the geometric adapter path.
func (d *Document) Geometric() bool {
	return len(d.Tokens) > 0
}

// buildPayloadSchema returns the JSON-Schema for provider payloads. Exactly
// one of tokens / lines must be present and non-empty.
func buildPayloadSchema() map[string]any {
	point := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"x": map[string]any{"type": "number"},
			"y": map[string]any{"type": "number"},
		},
		"required": []string{"x", "y"},
	}
	token := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"text":    map[string]any{"type": "string"},
			"polygon": map[string]any{"type": "array", "items": point},
		},
		"required": []string{"text"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"tokens":     map[string]any{"type": "array", "items": token, "minItems": 1},
			"lines":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 1},
			"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"oneOf": []any{
			map[string]any{"required": []string{"tokens"}},
			map[string]any{"required": []string{"lines"}},
		},
	}
}

var payloadSchema = mustCompile(buildPayloadSchema())

func mustCompile(schemaMap map[string]any) *jsonschema.Schema {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		panic(fmt.Sprintf("marshal payload schema: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("payload.json", bytes.NewReader(b)); err != nil {
		panic(fmt.Sprintf("add payload schema: %v", err))
	}
	schema, err := compiler.Compile("payload.json")
	if err != nil {
		panic(fmt.Sprintf("compile payload schema: %v", err))
	}
	return schema
}

// Decode validates data against the payload schema and unmarshals it.
func Decode(data []byte) (*Document, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, common.NewAppError("PAYLOAD_DECODE", "payload is not valid JSON", err)
	}
	if err := payloadSchema.Validate(v); err != nil {
		return nil, common.NewAppError("PAYLOAD_SCHEMA", "payload does not match the OCR schema", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, common.NewAppError("PAYLOAD_DECODE", "payload decode failed", err)
	}
	return &doc, nil
}
