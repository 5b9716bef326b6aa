package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturaia/receipt-engine/internal/entity"
)

func boxToken(text string, x, y float64) entity.Token {
	return entity.Token{
		Text: text,
		Geometry: []entity.Point{
			{X: x, Y: y}, {X: x + 20, Y: y}, {X: x + 20, Y: y + 10}, {X: x, Y: y + 10},
		},
	}
}

func TestGroupTokensOrdersRowsAndColumns(t *testing.T) {
	tokens := []entity.Token{
		boxToken("TOTAL", 10, 100),
		boxToken("$50.00", 120, 100),
		boxToken("ABC", 10, 40),
	}
	lines := GroupTokens(tokens, DefaultRowThreshold)

	require.Len(t, lines, 2)
	assert.Equal(t, "ABC", lines[0].Text())
	assert.Equal(t, "TOTAL $50.00", lines[1].Text())
}

func TestGroupTokensRowMembershipThreshold(t *testing.T) {
	tokens := []entity.Token{
		boxToken("A", 10, 100),
		boxToken("B", 40, 112), // within 15 of A's center
		boxToken("C", 10, 140), // beyond
	}
	lines := GroupTokens(tokens, DefaultRowThreshold)

	require.Len(t, lines, 2)
	assert.Equal(t, "A B", lines[0].Text())
	assert.Equal(t, "C", lines[1].Text())
}

func TestFromTokensKeepsTranscriptAside(t *testing.T) {
	tokens := []entity.Token{
		{Text: "SUPER GIGANTE\nTOTAL $50.00"},
		boxToken("SUPER", 10, 20),
		boxToken("GIGANTE", 80, 20),
		boxToken("TOTAL", 10, 100),
		boxToken("$50.00", 120, 100),
	}
	stream := FromTokens(tokens, 0)

	assert.Equal(t, "SUPER GIGANTE\nTOTAL $50.00", stream.Transcript)
	require.Len(t, stream.Lines, 2)
	assert.Equal(t, "SUPER GIGANTE", stream.Lines[0].Text())
	assert.Equal(t, "TOTAL $50.00", stream.Lines[1].Text())
}

func TestFromTokensEmpty(t *testing.T) {
	stream := FromTokens(nil, 0)
	assert.True(t, stream.Empty())
}

func TestFromLines(t *testing.T) {
	stream := FromLines([]string{"TOTAL $1,234.56", "", "GRACIAS"})

	require.Len(t, stream.Lines, 2)
	assert.Equal(t, []string{"TOTAL", "$1,234.56"}, tokenTexts(stream.Lines[0]))
	assert.Empty(t, stream.Transcript)
}

func TestRegroupWithoutGeometryUsesSourceLines(t *testing.T) {
	stream := FromLines([]string{"COLA 2 $15.00", "PAN $8.50"})
	rows := Regroup(stream.Flatten(), DefaultRowThreshold)

	require.Len(t, rows, 2)
	assert.Equal(t, "COLA 2 $15.00", rows[0].Text())
	assert.Equal(t, "PAN $8.50", rows[1].Text())
}

func TestRegroupWithGeometryReclusters(t *testing.T) {
	flat := []entity.IndexedToken{
		{Token: boxToken("PAN", 10, 60), LineIndex: 0},
		{Token: boxToken("$8.50", 150, 62), LineIndex: 0},
		{Token: boxToken("COLA", 10, 30), LineIndex: 0},
		{Token: boxToken("$15.00", 150, 31), LineIndex: 0},
	}
	rows := Regroup(flat, DefaultRowThreshold)

	require.Len(t, rows, 2)
	assert.Equal(t, "COLA $15.00", rows[0].Text())
	assert.Equal(t, "PAN $8.50", rows[1].Text())
}

func tokenTexts(l entity.Line) []string {
	out := make([]string, len(l.Tokens))
	for i, tok := range l.Tokens {
		out[i] = tok.Text
	}
	return out
}
