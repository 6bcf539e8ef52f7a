package errors

import (
	"runtime"
	"sync"
	"time"
)

// Handler receives reported errors. Implementations must be safe for
// concurrent use; reports arrive from task goroutines.
type Handler interface {
	HandleError(err *Error)
	HandlePanic(err *PanicError)
}

var (
	handlerMu sync.RWMutex
	handler   Handler = &LogHandler{}
)

// SetHandler replaces the global handler. Passing nil restores the
// default LogHandler.
func SetHandler(h Handler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		handler = &LogHandler{}
	} else {
		handler = h
	}
}

func getHandler() Handler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report sends an error to the global handler, stamping the time if
// unset.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	getHandler().HandleError(err)
}

// ReportPanic sends a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	getHandler().HandlePanic(err)
}

// Recover reports a panic in progress and resumes. Use it as
//
//	defer errors.Recover("task.worker")
//
// at the top of goroutines that must not take the process down.
func Recover(op string) {
	if v := recover(); v != nil {
		buf := make([]byte, 16<<10)
		n := runtime.Stack(buf, false)
		ReportPanic(&PanicError{Op: op, Value: v, Stack: string(buf[:n])})
	}
}
