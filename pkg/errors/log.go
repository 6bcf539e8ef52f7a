package errors

import (
	"fmt"
	"os"
)

// LogHandler writes reports to stderr.
type LogHandler struct {
	// Verbose includes stack traces in panic reports.
	Verbose bool
}

// HandleError logs an Error.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "[helio error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Op != "" {
		fmt.Fprintf(os.Stderr, "[helio panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(os.Stderr, "[helio panic] %v\n", err.Value)
	}
	if h.Verbose && err.Stack != "" {
		fmt.Fprintf(os.Stderr, "%s\n", err.Stack)
	}
}
