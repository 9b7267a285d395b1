package strings

import "testing"

func TestIsBlank(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{" x ", false},
	}
	for _, c := range cases {
		if got := IsBlank(c.in); got != c.want {
			t.Errorf("IsBlank(%q)=%v want %v", c.in, got, c.want)
		}
	}
}

func TestContainsAny(t *testing.T) {
	t.Parallel()

	screen := "support-resources/index"
	if !ContainsAny(screen, "compose-message", "support-resources") {
		t.Fatalf("expected match")
	}
	if ContainsAny(screen, "recipient", "") {
		t.Fatalf("unexpected match")
	}
	if ContainsAny(screen) {
		t.Fatalf("no subs should not match")
	}
}
