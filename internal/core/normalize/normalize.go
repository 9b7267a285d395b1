// Package normalize provides a deterministic text normalizer used before screening
// Pipeline order
// 1 Sanitize control characters and repair UTF-8
// 2 Unicode NFKC normalization
// 3 Case folding
// 4 Remove format characters and combining marks
// 5 Width fold fullwidth to ASCII
// 6 Fold typographic apostrophes to '
// 7 Trim edges; inner whitespace is kept so rule gap lengths see the text as typed
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalizer is safe for concurrent use
type Normalizer struct{}

var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Mn)),
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
			runes.Map(foldApostrophe),
		)
	},
}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

var std = New()

// String normalizes s with the shared Normalizer
func String(s string) string { return std.Normalize(s) }

// Normalize returns the normalized form of s
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToValidUTF8(Sanitize(s), "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		// transformers here never fail on valid UTF-8; fall back to a plain lower
		ns = strings.ToLower(s)
	}

	return strings.TrimSpace(ns)
}

func foldApostrophe(r rune) rune {
	switch r {
	case '\u2019', '\u2018', '\u02BC', '\u2032':
		return '\''
	}
	return r
}
