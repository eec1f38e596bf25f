package tennis

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport marks failures to obtain a response from upstream.
	ErrTransport = errors.New("upstream transport failure")
	ErrDecoding  = errors.New("upstream decoding failure")
)

// DecodingError reports a required upstream field that was missing or had no
// acceptable representation.
type DecodingError struct {
	Record string
	Field  string
	Err    error
}

func (e *DecodingError) Error() string {
	msg := fmt.Sprintf("decode %s: field %q is missing or malformed", e.Record, e.Field)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}

func (e *DecodingError) Is(target error) bool {
	return target == ErrDecoding
}
