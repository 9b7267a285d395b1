// Package langhint guesses the writing script of a message and, when it is
// unambiguous, its language. The screening rules only cover Latin text, so
// callers use this to note messages the rules cannot read
package langhint

import "unicode"

// Hint is the detected script and an optional BCP-47 language
type Hint struct {
	Script string `json:"script,omitempty"`
	Lang   string `json:"lang,omitempty"`
}

// MinLetters is how many letters are needed before a language is named
const MinLetters = 20

type script struct {
	name  string
	table *unicode.RangeTable
	lang  string // empty when the script is shared by many languages
}

// order doubles as the tie-break: earlier entries win equal counts, Latin is last
var scripts = []script{
	{"Hiragana", unicode.Hiragana, "ja"},
	{"Katakana", unicode.Katakana, "ja"},
	{"Hangul", unicode.Hangul, "ko"},
	{"Han", unicode.Han, ""},
	{"Arabic", unicode.Arabic, "ar"},
	{"Hebrew", unicode.Hebrew, "he"},
	{"Thai", unicode.Thai, "th"},
	{"Greek", unicode.Greek, "el"},
	{"Cyrillic", unicode.Cyrillic, ""},
	{"Georgian", unicode.Georgian, ""},
	{"Armenian", unicode.Armenian, ""},
	{"Devanagari", unicode.Devanagari, ""},
	{"Latin", unicode.Latin, ""},
}

// Detect counts letters per script and picks the predominant one
func Detect(s string) Hint {
	counts := make([]int, len(scripts))
	letters := 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		for i, sc := range scripts {
			if unicode.Is(sc.table, r) {
				counts[i]++
				break
			}
		}
	}

	best := -1
	for i, n := range counts {
		if n > 0 && (best < 0 || n > counts[best]) {
			best = i
		}
	}
	if best < 0 {
		return Hint{}
	}

	h := Hint{Script: scripts[best].name}
	if letters < MinLetters {
		return h
	}
	// kana anywhere marks Japanese even when Han dominates
	if counts[0] > 0 || counts[1] > 0 {
		h.Lang = "ja"
		return h
	}
	for i, sc := range scripts {
		if sc.lang != "" && counts[i] > 0 {
			h.Lang = sc.lang
			break
		}
	}
	return h
}

// Latin reports whether the text is predominantly Latin script or has no letters
func (h Hint) Latin() bool { return h.Script == "" || h.Script == "Latin" }
