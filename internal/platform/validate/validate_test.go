package validate

import (
	"testing"

	perr "sayitanyway/internal/platform/errors"
)

type sample struct {
	Name   string `json:"name" validate:"notblank,max=5"`
	Age    int    `json:"age" validate:"min=1"`
	Gender string `json:"gender,omitempty" validate:"omitempty,oneof=Male Female"`
}

func TestStruct_OK(t *testing.T) {
	if err := Struct(sample{Name: "ana", Age: 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStruct_Failures(t *testing.T) {
	cases := []struct {
		name      string
		in        sample
		wantField string
		wantMsg   string
	}{
		{"blank name", sample{Name: "   ", Age: 3}, "name", "name must not be blank"},
		{"long name", sample{Name: "abcdefg", Age: 3}, "name", "name must be at most 5"},
		{"min age", sample{Name: "ana", Age: 0}, "age", "age must be at least 1"},
		{"bad enum", sample{Name: "ana", Age: 2, Gender: "x"}, "gender", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Struct(c.in)
			if !perr.IsCode(err, perr.ErrorCodeValidation) {
				t.Fatalf("code = %v, want validation (%v)", perr.CodeOf(err), err)
			}
			e, _ := perr.As(err)
			if e.Field() != c.wantField {
				t.Fatalf("field = %q, want %q", e.Field(), c.wantField)
			}
			if c.wantMsg != "" && err.Error() != c.wantMsg {
				t.Fatalf("message = %q, want %q", err.Error(), c.wantMsg)
			}
		})
	}
}

func TestStruct_NonStructIsSetupError(t *testing.T) {
	if err := Struct(42); !perr.IsCode(err, perr.ErrorCodeUnknown) {
		t.Fatalf("want unknown code for invalid validation input, got %v", err)
	}
}
