package hueseek

import "errors"

var (
	// ErrInvalidBarWidth is returned when the ring stroke width is not positive.
	ErrInvalidBarWidth = errors.New("hueseek: bar width must be positive")

	// ErrInvalidStyle is returned for an unknown ring style.
	ErrInvalidStyle = errors.New("hueseek: invalid style")

	// ErrInvalidVariant is returned for an unknown engine variant.
	ErrInvalidVariant = errors.New("hueseek: invalid variant")

	// ErrInvalidColor is returned by ParseColor for malformed color strings.
	ErrInvalidColor = errors.New("hueseek: invalid color")
)
