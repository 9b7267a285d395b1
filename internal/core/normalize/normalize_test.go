package normalize

import (
	"strings"
	"testing"
)

func TestNormalize_Table(t *testing.T) {
	n := New()

	tests := []struct {
		name string
		in   string
		out  string
	}{
		{"identity ascii", "hello world", "hello world"},
		{"utf8 repair drops invalid bytes", string([]byte{0xff, 'f', 'o', 'o', 0x80, ' ', 'b', 'a', 'r'}), "foo bar"},
		{"case fold", "I AM Tired", "i am tired"},
		{"remove zero-widths", "my\u200Bse\u200Dlf\uFEFF", "myself"},
		{"width fold fullwidth", "\uFF29\uFF2D here", "im here"},
		{"nfkc ligature", "oﬃce", "office"},
		{"digits untouched", "3am and 1000 things", "3am and 1000 things"},
		{"curly apostrophe", "I\u2019m done", "i'm done"},
		{"left quote apostrophe", "can\u2018t", "can't"},
		{"modifier apostrophe", "I\u02BCve", "i've"},
		{"keeps space runs", "a\t\tb   c", "a\t\tb   c"},
		{"keeps line breaks", "dear mom,\r\n\r\n  i miss you", "dear mom,\r\n\r\n  i miss you"},
		{"trims edges", "  \n hi \t\n", "hi"},
		{"controls dropped", "a\x00b\x07c\u0085d", "abcd"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := n.Normalize(tc.in)
			if got != tc.out {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.out)
			}
			if again := n.Normalize(got); again != got {
				t.Fatalf("Normalize not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestString_UsesSharedNormalizer(t *testing.T) {
	if got := String("  HELLO  "); got != "hello" {
		t.Fatalf("String = %q", got)
	}
	if String("") != "" {
		t.Fatalf("empty input should stay empty")
	}
}

func TestSanitize_CleanInputUnchanged(t *testing.T) {
	in := "line one\nline two\tcafé"
	if got := Sanitize(in); got != in {
		t.Fatalf("Sanitize altered clean input: %q", got)
	}
}

func TestNormalize_InnerWhitespaceKept(t *testing.T) {
	in := " \t a \n b   c \r\n "
	if got := New().Normalize(in); got != "a \n b   c" {
		t.Fatalf("Normalize(%q) = %q", in, got)
	}
}

func TestNormalize_LargeInput(t *testing.T) {
	in := strings.Repeat("I AM ok ", 10000)
	got := New().Normalize(in)
	if !strings.HasPrefix(got, "i am ok i am ok") || strings.HasSuffix(got, " ") {
		t.Fatalf("unexpected large output prefix/suffix")
	}
}
