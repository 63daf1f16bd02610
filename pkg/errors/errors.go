// Package errors provides structured error handling for chili components.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindParsing indicates malformed attribute or style input.
	KindParsing
	// KindRange indicates an index outside a sequence.
	KindRange
	// KindRender indicates a drawing failure.
	KindRender
	// KindConfig indicates an unreadable style or configuration source.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindParsing:
		return "parsing"
	case KindRange:
		return "range"
	case KindRender:
		return "render"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ErrOutOfRange is matched by every *RangeError via errors.Is.
var ErrOutOfRange = stderrors.New("index out of range")

// Error represents a structured error reported by a chili component.
type Error struct {
	// Op is the operation that failed (e.g., "shadowlayout.New").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// RangeError reports an index outside [0, Len).
type RangeError struct {
	// Op is the accessor that was called (e.g., "RemoveBackgroundShadow").
	Op    string
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0,%d)", e.Op, e.Index, e.Len)
}

// Is reports whether target is ErrOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// CheckIndex returns a *RangeError if i is not a valid index into a
// sequence of length n.
func CheckIndex(op string, i, n int) error {
	if i < 0 || i >= n {
		return &RangeError{Op: op, Index: i, Len: n}
	}
	return nil
}

// ParseError represents a failure to parse an attribute value.
type ParseError struct {
	// Attr is the attribute name (e.g., "shadow_array").
	Attr string
	// Value is the raw input.
	Value string
	// Err is the underlying error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s %q: %v", e.Attr, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "shadowlayout.Draw").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by chili components.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
