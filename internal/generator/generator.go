// Package generator builds random passwords from a set of character classes
// and scores the configuration that produced them.
package generator

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultMinLength = 5
	DefaultMaxLength = 50

	// DefaultLength is used by front ends when the caller gives no length.
	DefaultLength = 26
)

var (
	ErrNoCharacterClassSelected = errors.New("at least one character class must be selected")
	ErrLengthOutOfRange         = errors.New("password length out of range")
	ErrInvalidPolicy            = errors.New("invalid length policy")
	ErrUnknownClass             = errors.New("unknown character class")
)

// Config describes one generation request.
type Config struct {
	Length  int
	Classes ClassSet
}

// Policy holds the accepted password length bounds, inclusive.
type Policy struct {
	MinLength int
	MaxLength int
}

// DefaultPolicy returns the [5, 50] length policy.
func DefaultPolicy() Policy {
	return Policy{MinLength: DefaultMinLength, MaxLength: DefaultMaxLength}
}

func (p Policy) check() error {
	if p.MinLength < 1 || p.MaxLength < p.MinLength {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidPolicy, p.MinLength, p.MaxLength)
	}
	return nil
}

// Validate checks cfg against the policy. The class check runs first, so an
// empty selection is reported even when the length is also wrong.
func (p Policy) Validate(cfg Config) error {
	if err := p.check(); err != nil {
		return err
	}
	if cfg.Classes.Empty() {
		return ErrNoCharacterClassSelected
	}
	if cfg.Length < p.MinLength || cfg.Length > p.MaxLength {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrLengthOutOfRange, cfg.Length, p.MinLength, p.MaxLength)
	}
	return nil
}

// ClampLength caps length at MaxLength, the way a bounded input control
// would. Lengths below MinLength are left for Validate to reject.
func (p Policy) ClampLength(length int) (int, bool) {
	if length > p.MaxLength {
		return p.MaxLength, true
	}
	return length, false
}

// BuildAlphabet concatenates the tables of the selected classes in table
// order. Characters shared between tables are kept twice.
func BuildAlphabet(classes ClassSet) string {
	var sb strings.Builder
	for _, c := range classes.Classes() {
		sb.WriteString(c.Chars())
	}
	return sb.String()
}

// Generate validates cfg and draws cfg.Length characters from its alphabet.
// A nil src uses CryptoSource.
func (p Policy) Generate(cfg Config, src Source) (string, error) {
	if err := p.Validate(cfg); err != nil {
		return "", err
	}
	if src == nil {
		src = CryptoSource{}
	}

	alphabet := BuildAlphabet(cfg.Classes)
	if alphabet == "" {
		panic("generator: empty alphabet for non-empty class set " + cfg.Classes.String())
	}

	var sb strings.Builder
	sb.Grow(cfg.Length)
	for i := 0; i < cfg.Length; i++ {
		sb.WriteByte(alphabet[index(src.Float64(), len(alphabet))])
	}
	return sb.String(), nil
}

// Generate is Policy.Generate under DefaultPolicy.
func Generate(cfg Config, src Source) (string, error) {
	return DefaultPolicy().Generate(cfg, src)
}

// index maps a uniform draw in [0, 1) to a position in [0, n). Draws outside
// that interval, including NaN, are clamped to the nearest end.
func index(u float64, n int) int {
	if !(u > 0) {
		return 0
	}
	if u >= 1 {
		return n - 1
	}
	idx := int(u * float64(n))
	if idx >= n {
		idx = n - 1
	}
	return idx
}
