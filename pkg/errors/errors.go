// Package errors provides structured error reporting for failures
// that have no caller to return to: background task panics, theme
// watch failures, layout faults discovered mid-frame.
package errors

import (
	"fmt"
	"time"
)

// Kind categorizes an error.
type Kind int

const (
	// KindUnknown is an error of unknown category.
	KindUnknown Kind = iota
	// KindTask is a failure in a background task.
	KindTask
	// KindTheme is a theme load or watch failure.
	KindTheme
	// KindLayout is a layout solver failure.
	KindLayout
	// KindPanic is a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindTask:
		return "task"
	case KindTheme:
		return "theme"
	case KindLayout:
		return "layout"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error is a categorized error with the operation that produced it.
type Error struct {
	// Op names the failing operation, e.g. "theme.Watch".
	Op        string
	Kind      Kind
	Err       error
	Timestamp time.Time
}

// New builds an Error.
func New(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s [%s]", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError carries a recovered panic value and its stack.
type PanicError struct {
	// Op names the operation that panicked.
	Op    string
	Value any
	Stack string
}

func (e *PanicError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("panic: %v", e.Value)
	}
	return fmt.Sprintf("%s: panic: %v", e.Op, e.Value)
}
