// Package extract holds one independent strategy per receipt field. Every
// strategy reads only the immutable token stream and returns nil when its
// heuristics find nothing; extraction failures never surface as errors.
package extract

import (
	"strings"

	"github.com/facturaia/receipt-engine/internal/entity"
)

// forwardWindow caps the same-line forward search after a keyword anchor,
// bounding worst-case extractor cost.
const forwardWindow = 10

var accentFolder = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U", "Ü", "U", "Ñ", "N",
)

// fold lowercases and strips Spanish accents so keyword tables can stay plain
// ASCII.
func fold(s string) string {
	return strings.ToLower(accentFolder.Replace(s))
}

// tokenEquals matches a token against a keyword, case-insensitively and
// ignoring a trailing colon ("TOTAL:" anchors the same as "TOTAL").
func tokenEquals(tok, keyword string) bool {
	return strings.TrimSuffix(fold(tok), ":") == keyword
}

func matchesAny(tok string, keywords []string) bool {
	for _, k := range keywords {
		if tokenEquals(tok, k) {
			return true
		}
	}
	return false
}

// anchoredValue implements the shared keyword-anchored strategy: find the
// first token matching any keyword, then search forward within the same line
// only, up to forwardWindow tokens, for the first token accepted by match.
// Scanning stops the moment a token belongs to a different line.
func anchoredValue(s entity.TokenStream, keywords []string, match func(string) bool) (string, bool) {
	flat := s.Flatten()
	for i, it := range flat {
		if !matchesAny(it.Token.Text, keywords) {
			continue
		}
		for j := i + 1; j < len(flat) && j <= i+forwardWindow; j++ {
			if flat[j].LineIndex != it.LineIndex {
				break
			}
			if match(flat[j].Token.Text) {
				return flat[j].Token.Text, true
			}
		}
	}
	return "", false
}
