// Package errors provides structured error reporting for the patchbay
// library.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindScene indicates a scene bookkeeping error, such as a lookup
	// of an unknown group or port.
	KindScene
	// KindTheme indicates a theme parsing or validation error.
	KindTheme
	// KindSource indicates a resource stream error.
	KindSource
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindScene:
		return "scene"
	case KindTheme:
		return "theme"
	case KindSource:
		return "source"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// PatchError represents a structured error in the patchbay library.
type PatchError struct {
	// Op is the operation that failed (e.g., "patch.Scene.FullPortName").
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

func (e *PatchError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *PatchError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "patch.EventQueue.Flush").
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

// ErrorHandler receives errors reported by the patchbay library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *PatchError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
