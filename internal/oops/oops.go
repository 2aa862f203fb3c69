// Package oops defines the decoder's error kinds and an error type that
// records the call stack where a decode failure was raised.
package oops

import (
	"errors"
	"fmt"

	"github.com/go-stack/stack"
	"github.com/rs/zerolog"
)

// Error kinds. Every error returned by the decoder matches exactly one of
// these with errors.Is.
var (
	// ErrUnexpectedEOF means the input ran out in the middle of a structure.
	ErrUnexpectedEOF = errors.New("unexpected end of file")

	// ErrInvalidFormat covers malformed or unsupported headers, palettes
	// and scanline data.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrChecksumMismatch is recoverable: the offending chunk is dropped.
	ErrChecksumMismatch = errors.New("chunk checksum mismatch")

	// ErrInflate is a failure of the DEFLATE stream.
	ErrInflate = errors.New("inflate failure")
)

type Error struct {
	Message string
	Wrapped error
	Stack   CallStack
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Wrapped.Error()
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

type CallStack []StackFrame

func (s CallStack) MarshalZerologArray(a *zerolog.Array) {
	for _, frame := range s {
		a.Object(frame)
	}
}

type StackFrame struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Function string `json:"function"`
}

func (f StackFrame) MarshalZerologObject(e *zerolog.Event) {
	e.
		Str("file", f.File).
		Int("line", f.Line).
		Str("function", f.Function)
}

// ZerologStackMarshaler is meant for zerolog.ErrorStackMarshaler.
var ZerologStackMarshaler = func(err error) interface{} {
	var asOops *Error
	if errors.As(err, &asOops) {
		return asOops.Stack
	}
	return nil
}

// New wraps kind (usually one of the Err* kinds, possibly already joined
// with an underlying cause) with a formatted message and the caller's stack.
func New(kind error, format string, args ...interface{}) error {
	trace := stack.Trace().TrimRuntime()
	if len(trace) > 0 {
		// drop the frame for New itself
		trace = trace[1:]
	}
	frames := make(CallStack, len(trace))
	for i, call := range trace {
		callFrame := call.Frame()
		frames[i] = StackFrame{
			File:     callFrame.File,
			Line:     callFrame.Line,
			Function: callFrame.Function,
		}
	}

	return &Error{
		Message: fmt.Sprintf(format, args...),
		Wrapped: kind,
		Stack:   frames,
	}
}

// Wrap joins kind with cause so that errors.Is matches both, then records
// the stack like New.
func Wrap(kind, cause error, format string, args ...interface{}) error {
	if cause == nil {
		return New(kind, format, args...)
	}
	return New(fmt.Errorf("%w: %w", kind, cause), format, args...)
}
