// Package result provides a compact success/failure value with an
// attached message.
//
// Result suits APIs whose callers branch on a single outcome value
// rather than a Go error chain, which keeps patch-model call sites
// uniform:
//
//	if res := scene.Connect(id, groupOut, portOut, groupIn, portIn); res.Failed() {
//	    fmt.Println("connect failed:", res.Message())
//	}
//
// Err bridges back into the error world when a caller needs one.
package result

import (
	"errors"
	"fmt"
)

// Result is the outcome of an operation: success, or failure with a
// message. The zero value is a success.
type Result struct {
	message string
}

// Ok returns a successful result.
func Ok() Result {
	return Result{}
}

// Fail returns a failure carrying the given message. A blank message is
// replaced with a default, so a failure is always distinguishable from
// a success.
func Fail(message string) Result {
	if message == "" {
		message = "unknown error"
	}
	return Result{message: message}
}

// Failf returns a failure with a formatted message.
func Failf(format string, args ...any) Result {
	return Fail(fmt.Sprintf(format, args...))
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r.message == ""
}

// Failed reports whether the operation failed.
func (r Result) Failed() bool {
	return r.message != ""
}

// Message returns the failure message, or the empty string for a
// success.
func (r Result) Message() string {
	return r.message
}

// Err returns nil for a success and an error wrapping the message for a
// failure.
func (r Result) Err() error {
	if r.message == "" {
		return nil
	}
	return errors.New(r.message)
}

// String implements fmt.Stringer.
func (r Result) String() string {
	if r.message == "" {
		return "ok"
	}
	return "failed: " + r.message
}
