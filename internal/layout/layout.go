// Package layout rebuilds reading order from loosely-ordered OCR tokens and
// normalizes both provider shapes (geometric tokens, plain text lines) into
// the single token-stream structure the extractors consume.
package layout

import (
	"sort"
	"strings"

	"github.com/facturaia/receipt-engine/internal/entity"
)

// DefaultRowThreshold is the maximum vertical-center distance, in pixels,
// for two tokens to share a visual row.
const DefaultRowThreshold = 15.0

// GroupTokens clusters tokens into visual rows. A token joins the first
// existing row whose anchor (its first grouped token) lies within threshold of
// the token's vertical center, otherwise it starts a new row. Rows are then
// ordered top-to-bottom and tokens within a row left-to-right.
//
// This is a single pass with no re-clustering: skewed or rotated documents can
// land tokens in the wrong row, which is an accepted limitation.
func GroupTokens(tokens []entity.Token, threshold float64) []entity.Line {
	if threshold <= 0 {
		threshold = DefaultRowThreshold
	}

	type row struct {
		anchorY float64
		tokens  []entity.Token
	}
	var rows []*row
	for _, tok := range tokens {
		y := tok.CenterY()
		var home *row
		for _, r := range rows {
			if abs(y-r.anchorY) <= threshold {
				home = r
				break
			}
		}
		if home == nil {
			rows = append(rows, &row{anchorY: y, tokens: []entity.Token{tok}})
			continue
		}
		home.tokens = append(home.tokens, tok)
	}

	lines := make([]entity.Line, 0, len(rows))
	for _, r := range rows {
		sort.SliceStable(r.tokens, func(i, j int) bool {
			return r.tokens[i].CenterX() < r.tokens[j].CenterX()
		})
		lines = append(lines, entity.Line{Tokens: r.tokens})
	}
	sort.SliceStable(lines, func(i, j int) bool {
		return lineCenterY(lines[i]) < lineCenterY(lines[j])
	})
	return lines
}

// FromTokens is the geometric adapter. By provider convention the first token
// of a multi-token input is the full-document transcript; it is kept aside for
// whole-document pattern searches and excluded from row reconstruction.
func FromTokens(tokens []entity.Token, threshold float64) entity.TokenStream {
	if len(tokens) == 0 {
		return entity.TokenStream{}
	}
	transcript := ""
	rest := tokens
	if len(tokens) > 1 {
		transcript = tokens[0].Text
		rest = tokens[1:]
	}
	return entity.TokenStream{
		Lines:      GroupTokens(rest, threshold),
		Transcript: transcript,
	}
}

// FromLines is the linear adapter: pre-ordered plain text lines, split on
// whitespace, with no geometry math.
func FromLines(raw []string) entity.TokenStream {
	lines := make([]entity.Line, 0, len(raw))
	for _, l := range raw {
		fields := strings.Fields(l)
		if len(fields) == 0 {
			continue
		}
		tokens := make([]entity.Token, len(fields))
		for i, f := range fields {
			tokens[i] = entity.Token{Text: f}
		}
		lines = append(lines, entity.Line{Tokens: tokens})
	}
	return entity.TokenStream{Lines: lines}
}

// Regroup re-runs row grouping over a flattened sub-range of the stream.
// When every token carries geometry the geometric grouping is reused;
// otherwise tokens are regrouped by the line they originally belonged to.
func Regroup(tokens []entity.IndexedToken, threshold float64) []entity.Line {
	if len(tokens) == 0 {
		return nil
	}
	geometric := true
	for _, it := range tokens {
		if !it.Token.HasGeometry() {
			geometric = false
			break
		}
	}
	if geometric {
		plain := make([]entity.Token, len(tokens))
		for i, it := range tokens {
			plain[i] = it.Token
		}
		return GroupTokens(plain, threshold)
	}

	var lines []entity.Line
	last := -1
	for _, it := range tokens {
		if it.LineIndex != last {
			lines = append(lines, entity.Line{})
			last = it.LineIndex
		}
		lines[len(lines)-1].Tokens = append(lines[len(lines)-1].Tokens, it.Token)
	}
	return lines
}

func lineCenterY(l entity.Line) float64 {
	if len(l.Tokens) == 0 {
		return 0
	}
	var sum float64
	for _, t := range l.Tokens {
		sum += t.CenterY()
	}
	return sum / float64(len(l.Tokens))
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
