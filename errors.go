package newsdata

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceRead is matched by every *SourceReadError.
	ErrSourceRead = errors.New("source read failed")

	// ErrSchema is matched by every *SchemaError.
	ErrSchema = errors.New("schema violation")

	// ErrIndexOutOfRange is matched by every *IndexError.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidThreshold is returned when the votes threshold is NaN.
	ErrInvalidThreshold = errors.New("invalid votes threshold")
)

// SourceReadError indicates the source is missing, unreadable or not
// parseable as a table.
//
// The original underlying error can be accessed via errors.Unwrap.
type SourceReadError struct {
	Source string
	cause  error
}

func (e *SourceReadError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("read source %q", e.Source)
	}
	return fmt.Sprintf("read source %q: %v", e.Source, e.cause)
}

func (e *SourceReadError) Unwrap() error { return e.cause }

// Is reports whether target is ErrSourceRead.
func (e *SourceReadError) Is(target error) bool { return target == ErrSourceRead }

// SchemaError indicates a required column is missing or a value in it
// cannot be used. Row is the 1-based data row; 0 means the header.
type SchemaError struct {
	Source string
	Column string
	Row    int
	Value  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("source %q: column %q: %s", e.Source, e.Column, e.Reason)
	}
	return fmt.Sprintf("source %q: column %q row %d: %s (value %q)", e.Source, e.Column, e.Row, e.Reason, e.Value)
}

// Is reports whether target is ErrSchema.
func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

// IndexError indicates Get was called outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }

func sourceReadError(source string, err error) error {
	var sre *SourceReadError
	if errors.As(err, &sre) {
		return err
	}
	var se *SchemaError
	if errors.As(err, &se) {
		return err
	}
	return &SourceReadError{Source: source, cause: err}
}
