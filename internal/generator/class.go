package generator

import (
	"fmt"
	"math/bits"
	"strings"
)

// Character tables. These are ASCII only, so byte length equals character count.
const (
	digitChars     = "0123456789"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	symbolChars    = "!'^+%&/()=?_#$[]{}|;:><.*-@~,"
)

// Class is a named subset of allowed password characters.
type Class int

// The declaration order is the order in which tables are concatenated.
const (
	Digits Class = iota
	Uppercase
	Lowercase
	Symbols

	numClasses
)

var classTables = [numClasses]string{
	Digits:    digitChars,
	Uppercase: uppercaseChars,
	Lowercase: lowercaseChars,
	Symbols:   symbolChars,
}

var classNames = [numClasses]string{
	Digits:    "digits",
	Uppercase: "uppercase",
	Lowercase: "lowercase",
	Symbols:   "symbols",
}

// Chars returns the fixed character table for the class.
func (c Class) Chars() string {
	return classTables[c]
}

func (c Class) String() string {
	if c < 0 || c >= numClasses {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return classNames[c]
}

// ClassSet is a set of character classes.
type ClassSet uint8

// AllClasses contains every character class.
const AllClasses ClassSet = 1<<numClasses - 1

// NewClassSet returns a set containing the given classes.
func NewClassSet(classes ...Class) ClassSet {
	var s ClassSet
	for _, c := range classes {
		s = s.With(c)
	}
	return s
}

// FromFlags builds a set from the four include flags a UI exposes.
func FromFlags(uppercase, lowercase, digits, symbols bool) ClassSet {
	var s ClassSet
	if digits {
		s = s.With(Digits)
	}
	if uppercase {
		s = s.With(Uppercase)
	}
	if lowercase {
		s = s.With(Lowercase)
	}
	if symbols {
		s = s.With(Symbols)
	}
	return s
}

// With returns a copy of s that also contains c.
func (s ClassSet) With(c Class) ClassSet {
	return s | 1<<c
}

// Has reports whether c is in the set.
func (s ClassSet) Has(c Class) bool {
	return s&(1<<c) != 0
}

// Len returns the number of classes in the set.
func (s ClassSet) Len() int {
	return bits.OnesCount8(uint8(s & AllClasses))
}

// Empty reports whether no class is selected.
func (s ClassSet) Empty() bool {
	return s.Len() == 0
}

// Classes returns the members of the set in table order.
func (s ClassSet) Classes() []Class {
	out := make([]Class, 0, s.Len())
	for c := Digits; c < numClasses; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the class names in table order.
func (s ClassSet) Names() []string {
	classes := s.Classes()
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.String()
	}
	return names
}

func (s ClassSet) String() string {
	return strings.Join(s.Names(), ",")
}

// ParseClass resolves a class name. Matching is case-insensitive and accepts
// the short aliases used on the command line.
func ParseClass(name string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "digits", "digit", "numbers", "number":
		return Digits, nil
	case "uppercase", "upper":
		return Uppercase, nil
	case "lowercase", "lower":
		return Lowercase, nil
	case "symbols", "symbol", "special":
		return Symbols, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownClass, name)
}

// ParseClasses resolves a list of class names into a set. Elements may
// themselves be comma separated; blank names are skipped.
func ParseClasses(names []string) (ClassSet, error) {
	var s ClassSet
	for _, name := range names {
		for _, part := range strings.Split(name, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			c, err := ParseClass(part)
			if err != nil {
				return 0, err
			}
			s = s.With(c)
		}
	}
	return s, nil
}
