package entity

import "strings"

// Point is one polygon vertex in image-pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Token is a single OCR-recognized text fragment. Geometry is the bounding
// polygon reported by the recognition provider; an empty polygon means the
// token carries no spatial information. Tokens are read-only input and are
// never mutated after construction.
type Token struct {
	Text     string  `json:"text"`
	Geometry []Point `json:"polygon,omitempty"`
}

// HasGeometry reports whether the token carries a usable bounding polygon.
func (t Token) HasGeometry() bool {
	return len(t.Geometry) > 0
}

// CenterY returns the mean of the polygon vertex y-values.
func (t Token) CenterY() float64 {
	if len(t.Geometry) == 0 {
		return 0
	}
	var sum float64
	for _, p := range t.Geometry {
		sum += p.Y
	}
	return sum / float64(len(t.Geometry))
}

// CenterX returns the mean of the polygon vertex x-values.
func (t Token) CenterX() float64 {
	if len(t.Geometry) == 0 {
		return 0
	}
	var sum float64
	for _, p := range t.Geometry {
		sum += p.X
	}
	return sum / float64(len(t.Geometry))
}

// Line is a reconstructed visual row. It is a derived grouping over the
// shared input tokens, rebuilt on every run and never persisted.
type Line struct {
	Tokens []Token
}

// Text joins the row's token texts with single spaces.
func (l Line) Text() string {
	parts := make([]string, len(l.Tokens))
	for i, t := range l.Tokens {
		parts[i] = t.Text
	}
	return strings.Join(parts, " ")
}

// TokenStream is the layout-ordered sequence of lines consumed by every field
// extractor. Transcript, when non-empty, is the provider's full-document text
// fragment; it feeds whole-document pattern searches but is excluded from the
// line-by-line heuristics.
type TokenStream struct {
	Lines      []Line
	Transcript string
}

// Empty reports whether the stream holds no tokens at all.
func (s TokenStream) Empty() bool {
	for _, ln := range s.Lines {
		if len(ln.Tokens) > 0 {
			return false
		}
	}
	return true
}

// TokenCount returns the number of tokens across all lines.
func (s TokenStream) TokenCount() int {
	n := 0
	for _, ln := range s.Lines {
		n += len(ln.Tokens)
	}
	return n
}

// Flatten returns every token in reading order together with the index of the
// line it belongs to.
func (s TokenStream) Flatten() []IndexedToken {
	out := make([]IndexedToken, 0, s.TokenCount())
	for li, ln := range s.Lines {
		for _, t := range ln.Tokens {
			out = append(out, IndexedToken{Token: t, LineIndex: li})
		}
	}
	return out
}

// IndexedToken pairs a token with the line it was grouped into.
type IndexedToken struct {
	Token     Token
	LineIndex int
}

// SearchText returns the text used for whole-document pattern searches:
// the transcript when the provider supplied one, otherwise the joined lines.
func (s TokenStream) SearchText() string {
	if s.Transcript != "" {
		return s.Transcript
	}
	return s.Text()
}

// Text joins all lines with newlines.
func (s TokenStream) Text() string {
	parts := make([]string, len(s.Lines))
	for i, ln := range s.Lines {
		parts[i] = ln.Text()
	}
	return strings.Join(parts, "\n")
}
