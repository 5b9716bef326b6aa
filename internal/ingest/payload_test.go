package ingest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturaia/receipt-engine/internal/common"
)

func TestDecodeTokensPayload(t *testing.T) {
	doc, err := Decode([]byte(`{
		"tokens": [
			{"text": "TOTAL $50.00"},
			{"text": "TOTAL", "polygon": [{"x": 10, "y": 100}, {"x": 40, "y": 100}, {"x": 40, "y": 110}, {"x": 10, "y": 110}]}
		],
		"confidence": 0.93
	}`))

	require.NoError(t, err)
	assert.True(t, doc.Geometric())
	require.Len(t, doc.Tokens, 2)
	assert.Equal(t, "TOTAL", doc.Tokens[1].Text)
	assert.Len(t, doc.Tokens[1].Geometry, 4)
	assert.Equal(t, 0.93, doc.Confidence)
}

func TestDecodeLinesPayload(t *testing.T) {
	doc, err := Decode([]byte(`{"lines": ["SUPER GIGANTE", "TOTAL $50.00"]}`))

	require.NoError(t, err)
	assert.False(t, doc.Geometric())
	assert.Equal(t, []string{"SUPER GIGANTE", "TOTAL $50.00"}, doc.Lines)
	assert.Zero(t, doc.Confidence)
}

func TestDecodeRejections(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		wantCode string
	}{
		{"not json", `{`, "PAYLOAD_DECODE"},
		{"both shapes", `{"tokens": [{"text": "A"}], "lines": ["A"]}`, "PAYLOAD_SCHEMA"},
		{"neither shape", `{"confidence": 0.5}`, "PAYLOAD_SCHEMA"},
		{"empty tokens", `{"tokens": []}`, "PAYLOAD_SCHEMA"},
		{"token without text", `{"tokens": [{"polygon": []}]}`, "PAYLOAD_SCHEMA"},
		{"malformed point", `{"tokens": [{"text": "A", "polygon": [{"x": 1}]}]}`, "PAYLOAD_SCHEMA"},
		{"confidence out of range", `{"lines": ["A"], "confidence": 1.5}`, "PAYLOAD_SCHEMA"},
		{"unknown top-level key", `{"lines": ["A"], "pages": 2}`, "PAYLOAD_SCHEMA"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Decode([]byte(tc.payload))
			require.Error(t, err)
			assert.Nil(t, doc)

			var appErr *common.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tc.wantCode, appErr.Code)
		})
	}
}
