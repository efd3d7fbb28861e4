package triplet

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognizedTriplet is returned when the input does not decompose into
	// the known axes.
	ErrUnrecognizedTriplet = errors.New("unmatchable platform string")

	// ErrInvalidCxxAbiHint is returned for a C++ ABI hint other than "0", "1" or "".
	ErrInvalidCxxAbiHint = errors.New("invalid C++ ABI hint")

	// ErrAmbiguousVersionHint is returned when a non-empty compiler version hint
	// contains no digits to take a major version from.
	ErrAmbiguousVersionHint = errors.New("no version number in compiler version hint")

	// ErrUnsupportedPlatform is returned by HostTriplet for GOOS/GOARCH pairs
	// with no triplet spelling.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// Error carries the offending input alongside one of the sentinel errors.
type Error struct {
	Kind  error
	Input string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v %q", e.Kind, e.Input)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, input string) error {
	return &Error{Kind: kind, Input: input}
}
