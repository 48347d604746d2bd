package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type sample struct {
	Date  string  `validate:"omitempty,civildate"`
	Start string  `validate:"omitempty,hhmm"`
	End   *string `validate:"omitempty,hhmm"`
}

func TestCustomTags(t *testing.T) {
	v := validator.New()
	if err := RegisterOn(v); err != nil {
		t.Fatalf("register: %v", err)
	}

	bad := "24:00"
	tests := []struct {
		name  string
		in    sample
		valid bool
	}{
		{name: "valid", in: sample{Date: "2025-03-10", Start: "09:30"}, valid: true},
		{name: "empty", in: sample{}, valid: true},
		{name: "loose date", in: sample{Date: "2025-3-10"}, valid: false},
		{name: "impossible date", in: sample{Date: "2025-02-30"}, valid: false},
		{name: "single digit hour", in: sample{Start: "9:30"}, valid: false},
		{name: "pointer out of range", in: sample{End: &bad}, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if tt.valid && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
