package design

import "errors"

// Errors returned by designers and Apply. They are wrapped with details, so
// compare with errors.Is.
var (
	ErrInvalidTapCount         = errors.New("design: tap count must be > 0")
	ErrInvalidCutoff           = errors.New("design: cutoff out of range")
	ErrInvalidShape            = errors.New("design: invalid shape parameter")
	ErrDegenerateNormalization = errors.New("design: coefficient sum is zero")
	ErrMalformedSignal         = errors.New("design: malformed input signal")
	ErrUnknownMethod           = errors.New("design: unknown method")
)
