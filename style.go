package hueseek

import (
	"fmt"
	"strings"
)

// Style positions the ring stroke relative to the wheel radius.
type Style int

const (
	// StyleInset draws the stroke inside the widget edge.
	StyleInset Style = iota
	// StyleCentered centers the stroke on the widget edge.
	StyleCentered
	// StyleOutset pushes the stroke half a bar width past the edge.
	StyleOutset
)

// DefaultStyle is used when no style is configured.
const DefaultStyle = StyleCentered

var styleNames = [...]string{
	StyleInset:    "inset",
	StyleCentered: "centered",
	StyleOutset:   "outset",
}

// String returns the lower-case style name.
func (s Style) String() string {
	if s.valid() {
		return styleNames[s]
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

func (s Style) valid() bool {
	return s >= StyleInset && s <= StyleOutset
}

// offset returns the radius adjustment for a stroke of half-width half.
func (s Style) offset(half int) int {
	switch s {
	case StyleInset:
		return -half
	case StyleOutset:
		return half
	default:
		return 0
	}
}

// ParseStyle parses a style name or its numeric attribute value
// (0 inset, 1 centered, 2 outset). Matching is case-insensitive.
func ParseStyle(text string) (Style, error) {
	t := strings.ToLower(strings.TrimSpace(text))
	for i, name := range styleNames {
		if t == name || t == fmt.Sprint(i) {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStyle, text)
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStyle, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(text []byte) error {
	v, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Variant selects between the two behaviours of the engine.
//
// The revised variant restricts dragging to the right half-plane and uses a
// hit box enlarged by SelectorMargin. The legacy variant accepts any angle
// while the pointer stays near the ring, uses the bare selector radius as the
// hit box and ignores moves that leave the widget.
type Variant int

const (
	// VariantRevised is the default engine.
	VariantRevised Variant = iota
	// VariantLegacy reproduces the first generation of the control.
	VariantLegacy
)

var variantNames = [...]string{
	VariantRevised: "revised",
	VariantLegacy:  "legacy",
}

// String returns the lower-case variant name.
func (v Variant) String() string {
	if v.valid() {
		return variantNames[v]
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

func (v Variant) valid() bool {
	return v == VariantRevised || v == VariantLegacy
}

// ParseVariant parses a variant name, case-insensitively.
func ParseVariant(text string) (Variant, error) {
	t := strings.ToLower(strings.TrimSpace(text))
	for i, name := range variantNames {
		if t == name {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidVariant, text)
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	if !v.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVariant, int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(text []byte) error {
	p, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = p
	return nil
}
