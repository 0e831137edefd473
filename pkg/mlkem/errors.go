package mlkem

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength indicates a byte buffer did not match the exact
	// length the parameter set requires.
	ErrInvalidLength = errors.New("mlkem: invalid buffer length")

	// ErrInvalidEncoding indicates a 12-bit encoded coefficient was >= q
	// during ByteDecode_12 — the buffer cannot be a valid t-hat or s-hat.
	ErrInvalidEncoding = errors.New("mlkem: invalid encoding, coefficient out of range")

	// ErrRandomSource indicates the caller-supplied io.Reader failed or
	// returned fewer bytes than requested.
	ErrRandomSource = errors.New("mlkem: random source failure")
)

// opError wraps an underlying error with the operation that produced it.
type opError struct {
	Op  string
	Err error
}

func (e *opError) Error() string {
	return fmt.Sprintf("mlkem.%s: %v", e.Op, e.Err)
}

func (e *opError) Unwrap() error {
	return e.Err
}

func errorf(op string, err error) error {
	return &opError{Op: op, Err: err}
}
