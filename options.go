package hueseek

import (
	"fmt"
	"log/slog"
)

// Option configures a SeekBar during creation.
//
// Example:
//
//	bar, err := hueseek.New(
//	    hueseek.WithBarWidth(32),
//	    hueseek.WithStyle(hueseek.StyleInset),
//	    hueseek.WithListener(l),
//	)
type Option func(*options)

// options holds the construction-time configuration of a SeekBar.
type options struct {
	barWidth    int
	style       Style
	variant     Variant
	listener    Listener
	invalidator func()
	logger      *slog.Logger
}

// defaultOptions returns the default SeekBar options.
func defaultOptions() options {
	return options{
		barWidth: DefaultBarWidth,
		style:    DefaultStyle,
		variant:  VariantRevised,
	}
}

func (o options) validate() error {
	if o.barWidth <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBarWidth, o.barWidth)
	}
	if !o.style.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidStyle, int(o.style))
	}
	if !o.variant.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidVariant, int(o.variant))
	}
	return nil
}

// WithBarWidth sets the ring stroke width in pixels. Must be positive.
func WithBarWidth(w int) Option {
	return func(o *options) {
		o.barWidth = w
	}
}

// WithStyle sets how the ring stroke sits relative to the wheel radius.
func WithStyle(s Style) Option {
	return func(o *options) {
		o.style = s
	}
}

// WithVariant selects the revised or legacy engine behaviour.
func WithVariant(v Variant) Option {
	return func(o *options) {
		o.variant = v
	}
}

// WithListener registers the initial drag listener.
// It is equivalent to calling SetListener after New.
func WithListener(l Listener) Option {
	return func(o *options) {
		o.listener = l
	}
}

// WithInvalidator sets the function called when the selector needs to be
// repainted. The host UI is responsible for actually redrawing.
func WithInvalidator(fn func()) Option {
	return func(o *options) {
		o.invalidator = fn
	}
}

// WithLogger gives the SeekBar its own logger instead of the package-wide
// one returned by Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
