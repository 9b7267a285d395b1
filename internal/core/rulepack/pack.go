// Package rulepack loads and compiles the screening rules from the embedded rules.yaml.
// Rules are ordered high tier first, keeping file order within a tier
package rulepack

import (
	_ "embed"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var embedded []byte

// Tier is the severity a matching rule contributes
type Tier int

const (
	TierLow Tier = iota + 1
	TierMedium
	TierHigh
)

var tierNames = map[string]Tier{"low": TierLow, "medium": TierMedium, "high": TierHigh}

// String returns the lowercase tier name
func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	case TierHigh:
		return "high"
	}
	return "unknown"
}

// Label is the prefix used when reporting a match of this tier
func (t Tier) Label() string { return strings.ToUpper(t.String()) + " RISK" }

type rawRule struct {
	ID          string   `yaml:"id"`
	Tier        string   `yaml:"tier"`
	Pattern     string   `yaml:"pattern"`
	Description string   `yaml:"description"`
	Examples    []string `yaml:"examples"`
}

type rawPack struct {
	Version     int                 `yaml:"version"`
	Slots       map[string][]string `yaml:"slots"`
	FirstPerson struct {
		Pattern string `yaml:"pattern"`
	} `yaml:"first_person"`
	Exclusions []rawRule `yaml:"exclusions"`
	Rules      []rawRule `yaml:"rules"`
}

// Rule is one compiled pattern
type Rule struct {
	ID          string
	Tier        Tier // zero for exclusions
	Description string
	Pattern     string // slot expanded source
	Re          *regexp.Regexp
	Examples    []string
}

// Pack is a compiled rule set
type Pack struct {
	Version     int
	FirstPerson *regexp.Regexp
	Exclusions  []Rule
	Rules       []Rule
}

// Load returns the compiled pack from the embedded rules.yaml
func Load() (*Pack, error) { return Parse(embedded) }

// MustLoad is Load for package init paths; the embedded pack is covered by tests
func MustLoad() *Pack {
	p, err := Load()
	if err != nil {
		panic(err)
	}
	return p
}

// Parse compiles a pack from yaml
func Parse(b []byte) (*Pack, error) {
	var rp rawPack
	if err := yaml.Unmarshal(b, &rp); err != nil {
		return nil, fmt.Errorf("rulepack: parse: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("rulepack: unsupported version %d (want 1)", rp.Version)
	}
	if strings.TrimSpace(rp.FirstPerson.Pattern) == "" {
		return nil, fmt.Errorf("rulepack: first_person.pattern is required")
	}

	p := &Pack{Version: rp.Version}
	var err error
	if p.FirstPerson, err = compile(rp.FirstPerson.Pattern, rp.Slots); err != nil {
		return nil, fmt.Errorf("rulepack: first_person: %w", err)
	}

	seen := map[string]struct{}{}
	build := func(r rawRule, needTier bool) (Rule, error) {
		id := strings.TrimSpace(r.ID)
		if id == "" {
			return Rule{}, fmt.Errorf("rulepack: rule with empty id")
		}
		if _, dup := seen[id]; dup {
			return Rule{}, fmt.Errorf("rulepack: duplicate rule id %q", id)
		}
		seen[id] = struct{}{}

		out := Rule{ID: id, Description: strings.TrimSpace(r.Description)}
		if needTier {
			t, ok := tierNames[strings.ToLower(strings.TrimSpace(r.Tier))]
			if !ok {
				return Rule{}, fmt.Errorf("rulepack: rule %q: unknown tier %q", id, r.Tier)
			}
			if out.Description == "" {
				return Rule{}, fmt.Errorf("rulepack: rule %q: description is required", id)
			}
			out.Tier = t
		}
		re, err := compile(r.Pattern, rp.Slots)
		if err != nil {
			return Rule{}, fmt.Errorf("rulepack: rule %q: %w", id, err)
		}
		out.Re = re
		out.Pattern = re.String()
		for _, ex := range r.Examples {
			if ex = strings.TrimSpace(ex); ex != "" {
				out.Examples = append(out.Examples, ex)
			}
		}
		return out, nil
	}

	for _, r := range rp.Exclusions {
		rule, err := build(r, false)
		if err != nil {
			return nil, err
		}
		p.Exclusions = append(p.Exclusions, rule)
	}
	for _, r := range rp.Rules {
		rule, err := build(r, true)
		if err != nil {
			return nil, err
		}
		p.Rules = append(p.Rules, rule)
	}

	sort.SliceStable(p.Rules, func(i, j int) bool { return p.Rules[i].Tier > p.Rules[j].Tier })
	return p, nil
}

// ExampleMiss is an example sentence its own rule failed to match
type ExampleMiss struct {
	RuleID  string `json:"ruleId"`
	Example string `json:"example"`
}

// CheckExamples matches every rule's examples against that rule alone
func (p *Pack) CheckExamples() []ExampleMiss {
	var out []ExampleMiss
	for _, set := range [][]Rule{p.Rules, p.Exclusions} {
		for _, r := range set {
			for _, ex := range r.Examples {
				if !r.Re.MatchString(strings.ToLower(ex)) {
					out = append(out, ExampleMiss{RuleID: r.ID, Example: ex})
				}
			}
		}
	}
	return out
}

// compile expands slots and compiles case-insensitively
func compile(pattern string, slots map[string][]string) (*regexp.Regexp, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, fmt.Errorf("empty pattern")
	}
	exp, err := expandSlots(pattern, slots)
	if err != nil {
		return nil, err
	}
	return regexp.Compile("(?i)" + exp)
}

// expandSlots replaces {NAME} with a non-capturing group of regex-quoted values.
// Braces that are not a known slot name (such as {0,20}) are left alone
func expandSlots(pattern string, slots map[string][]string) (string, error) {
	var b strings.Builder
	rest := pattern
	for {
		i := strings.IndexByte(rest, '{')
		if i < 0 {
			b.WriteString(rest)
			break
		}
		j := strings.IndexByte(rest[i:], '}')
		if j < 0 {
			b.WriteString(rest)
			break
		}
		j += i
		name := rest[i+1 : j]
		if !isSlotName(name) {
			b.WriteString(rest[:j+1])
			rest = rest[j+1:]
			continue
		}
		values, ok := slots[name]
		if !ok || len(values) == 0 {
			return "", fmt.Errorf("unknown slot {%s}", name)
		}
		parts := make([]string, 0, len(values))
		for _, v := range values {
			if v = strings.TrimSpace(v); v != "" {
				parts = append(parts, regexp.QuoteMeta(v))
			}
		}
		b.WriteString(rest[:i])
		b.WriteString("(?:" + strings.Join(parts, "|") + ")")
		rest = rest[j+1:]
	}
	return b.String(), nil
}

// isSlotName accepts upper case identifiers only so quantifiers never expand
func isSlotName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && r != '_' && (r < '0' || r > '9') {
			return false
		}
	}
	return s[0] >= 'A' && s[0] <= 'Z'
}
