package compound

import (
	"errors"
	"fmt"
)

var (
	// ErrArgumentCount is returned when a command line does not hold the expected number of fields.
	ErrArgumentCount = errors.New("wrong number of arguments")
	// ErrOverflow is returned when a value cannot be represented in 64 bits.
	ErrOverflow = errors.New("arithmetic overflow")
	// ErrNoNumber is returned when a text does not start with a decimal integer.
	ErrNoNumber = errors.New("no leading integer")
	// ErrUnknownFrequency is returned for a frequency name outside the allowed set.
	ErrUnknownFrequency = errors.New("unknown frequency")
)

// ParseError reports the input field that could not be parsed.
type ParseError struct {
	Field string // human name of the field, e.g. "interest rate"
	Text  string // the offending input
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("couldn't parse %s %q: %v", e.Field, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
