package generator

import (
	"errors"
	"reflect"
	"testing"
)

func TestFromFlags(t *testing.T) {
	tests := []struct {
		name                          string
		upper, lower, digits, symbols bool
		want                          ClassSet
	}{
		{"none", false, false, false, false, 0},
		{"all", true, true, true, true, AllClasses},
		{"upper only", true, false, false, false, NewClassSet(Uppercase)},
		{"digits and symbols", false, false, true, true, NewClassSet(Digits, Symbols)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromFlags(tt.upper, tt.lower, tt.digits, tt.symbols); got != tt.want {
				t.Errorf("FromFlags() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassSetMembers(t *testing.T) {
	s := NewClassSet(Symbols, Uppercase, Symbols)

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if !s.Has(Symbols) || !s.Has(Uppercase) || s.Has(Digits) || s.Has(Lowercase) {
		t.Errorf("Has() reports wrong membership for %q", s)
	}
	if got := s.Classes(); !reflect.DeepEqual(got, []Class{Uppercase, Symbols}) {
		t.Errorf("Classes() = %v, want [uppercase symbols]", got)
	}
	if s.String() != "uppercase,symbols" {
		t.Errorf("String() = %q, want %q", s.String(), "uppercase,symbols")
	}
	if !ClassSet(0).Empty() || s.Empty() {
		t.Error("Empty() reports wrong value")
	}
}

func TestParseClasses(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    ClassSet
		wantErr error
	}{
		{name: "nil", in: nil, want: 0},
		{name: "long names", in: []string{"digits", "uppercase", "lowercase", "symbols"}, want: AllClasses},
		{name: "aliases and case", in: []string{"Numbers", "UPPER", " lower "}, want: NewClassSet(Digits, Uppercase, Lowercase)},
		{name: "comma separated", in: []string{"special,digits"}, want: NewClassSet(Symbols, Digits)},
		{name: "blank entries skipped", in: []string{"", "digits,,"}, want: NewClassSet(Digits)},
		{name: "unknown", in: []string{"digits", "emoji"}, wantErr: ErrUnknownClass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClasses(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseClasses() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClasses() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseClasses() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassString(t *testing.T) {
	if Digits.String() != "digits" {
		t.Errorf("Digits.String() = %q", Digits.String())
	}
	if Class(12).String() != "Class(12)" {
		t.Errorf("Class(12).String() = %q", Class(12).String())
	}
}
