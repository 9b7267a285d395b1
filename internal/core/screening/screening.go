// Package screening classifies journal text for expressions of self-harm risk.
// It is pure: no I/O, no logging, no shared mutable state
package screening

import (
	"strings"
	"sync"
	"unicode/utf8"

	"sayitanyway/internal/core/normalize"
	"sayitanyway/internal/core/rulepack"
)

// Confidence is the highest tier matched
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Reasons reported on Result
const (
	ReasonTooShort      = "Text too short to analyze"
	ReasonThirdPerson   = "Content appears to be about someone else, not the user"
	ReasonNoFirstPerson = "No first-person language detected"
)

// MinLength is the shortest trimmed input, in runes, that is analyzed
const MinLength = 3

// Result is the verdict for one text
type Result struct {
	IsFlagged       bool       `json:"isFlagged"`
	Confidence      Confidence `json:"confidence"`
	MatchedPatterns []string   `json:"matchedPatterns"`
	Reason          string     `json:"reason,omitempty"`
}

// Screener is anything that can produce a verdict for text
type Screener interface {
	Screen(text string) Result
}

// Engine evaluates a compiled rule pack
type Engine struct {
	p *rulepack.Pack
	n *normalize.Normalizer
}

var _ Screener = (*Engine)(nil)

// New builds an Engine over p
func New(p *rulepack.Pack) *Engine {
	return &Engine{p: p, n: normalize.New()}
}

var (
	defaultOnce sync.Once
	defaultEng  *Engine
)

// Default returns the engine over the embedded rule pack
func Default() *Engine {
	defaultOnce.Do(func() { defaultEng = New(rulepack.MustLoad()) })
	return defaultEng
}

// Screen runs the default engine
func Screen(text string) Result { return Default().Screen(text) }

// Screen returns the verdict for text. Exclusions veto first, then missing
// first person language; otherwise every rule is tested and confidence only rises
func (e *Engine) Screen(text string) Result {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < MinLength {
		return notFlagged(ReasonTooShort)
	}

	s := e.n.Normalize(text)

	for _, r := range e.p.Exclusions {
		if r.Re.MatchString(s) {
			return notFlagged(ReasonThirdPerson)
		}
	}
	if !e.p.FirstPerson.MatchString(s) {
		return notFlagged(ReasonNoFirstPerson)
	}

	res := Result{Confidence: ConfidenceLow, MatchedPatterns: []string{}}
	top := rulepack.TierLow
	for _, r := range e.p.Rules {
		if !r.Re.MatchString(s) {
			continue
		}
		res.MatchedPatterns = append(res.MatchedPatterns, r.Tier.Label()+": "+r.Description)
		top = max(top, r.Tier)
	}
	res.Confidence = confidenceOf(top)

	res.IsFlagged = len(res.MatchedPatterns) > 0 && res.Confidence != ConfidenceLow
	if res.IsFlagged {
		res.Reason = "Detected " + string(res.Confidence) + "-risk mental health concerns"
	}
	return res
}

func notFlagged(reason string) Result {
	return Result{Confidence: ConfidenceLow, MatchedPatterns: []string{}, Reason: reason}
}

func confidenceOf(t rulepack.Tier) Confidence {
	switch t {
	case rulepack.TierHigh:
		return ConfidenceHigh
	case rulepack.TierMedium:
		return ConfidenceMedium
	}
	return ConfidenceLow
}
