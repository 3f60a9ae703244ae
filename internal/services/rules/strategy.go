package rules

import (
	"fmt"

	"github.com/mcoot/linea/internal/model"
)

// WinLength is the number of aligned pieces every variant needs
const WinLength = 4

// Variant is the single-character code selecting a win rule
type Variant rune

const (
	VariantA Variant = 'A' // horizontal or vertical lines
	VariantB Variant = 'B' // diagonal lines
	VariantC Variant = 'C' // lines in any direction
)

// Strategy decides whether a color has reached a winning configuration
type Strategy interface {
	// CheckWin reports whether color has a winning configuration on board
	CheckWin(board *model.Board, color model.Color) bool
	// Variant returns the code this strategy was selected with
	Variant() Variant
}

// New returns the strategy for the given variant code
func New(v Variant) (Strategy, error) {
	switch v {
	case VariantA:
		return &StrategyA{}, nil
	case VariantB:
		return &StrategyB{}, nil
	case VariantC:
		return &StrategyC{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidVariant, rune(v))
	}
}

// ParseVariant converts a one-character code into a Variant
func ParseVariant(s string) (Variant, error) {
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidVariant, s)
	}
	v := Variant(r[0])
	if !v.IsValid() {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidVariant, s)
	}
	return v, nil
}

// Variants returns all known variant codes
func Variants() []Variant {
	return []Variant{VariantA, VariantB, VariantC}
}

// IsValid returns true for the known variant codes
func (v Variant) IsValid() bool {
	return v == VariantA || v == VariantB || v == VariantC
}

// String returns the variant code as a string
func (v Variant) String() string {
	return string(rune(v))
}

// Description returns a human-readable summary of the rule
func (v Variant) Description() string {
	switch v {
	case VariantA:
		return fmt.Sprintf("%d in a row horizontally or vertically", WinLength)
	case VariantB:
		return fmt.Sprintf("%d in a row diagonally", WinLength)
	case VariantC:
		return fmt.Sprintf("%d in a row in any direction", WinLength)
	default:
		return "unknown"
	}
}
