// Package errors annotates errors with structured [slog.Attr] and the call site that produced them.
//
// It re-exports the standard library helpers so callers only need to import one errors package.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
)

type annotatedError struct {
	msg   string
	err   error
	attrs []slog.Attr
	pc    uintptr
}

func (e *annotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.err
}

// NewSentinel creates an error meant to be compared with [Is]. It carries no call site.
func NewSentinel(msg string) error {
	return errors.New(msg) //nolint:err113 // sentinel constructor
}

// New creates an error annotated with the caller's location and the given attributes.
func New(msg string, attrs ...slog.Attr) error {
	return &annotatedError{msg: msg, err: nil, attrs: attrs, pc: callerPC(3)} //nolint:mnd // skip New and Callers
}

// Wrap annotates err with a message, attributes and the caller's location. Wrapping nil returns nil.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	return &annotatedError{msg: msg, err: err, attrs: attrs, pc: callerPC(3)} //nolint:mnd // skip Wrap and Callers
}

// DecoratePanic converts a recovered value into an error pointing at the frame that panicked.
// It returns nil when excp is nil.
func DecoratePanic(excp any) error {
	if excp == nil {
		return nil
	}
	if e, ok := excp.(error); ok {
		return &annotatedError{msg: "panic", err: e, attrs: nil, pc: panicPC()}
	}
	return &annotatedError{msg: fmt.Sprintf("panic: %v", excp), err: nil, attrs: nil, pc: panicPC()}
}

// SlogError converts err into an "error" group with its message, the annotations collected from the whole chain and
// the source location of the innermost annotated error.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("message", "<nil>"))
	}

	var (
		annotations []any
		pc          uintptr
	)
	collect(err, &annotations, &pc)

	args := []any{slog.String("message", err.Error())}
	if len(annotations) > 0 {
		args = append(args, slog.Group("annotations", annotations...))
	}
	if pc != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
		args = append(args, slog.String("source", frame.File+":"+strconv.Itoa(frame.Line)))
	}
	return slog.Group("error", args...)
}

// collect walks the error tree depth first. Annotations are gathered outermost first and pc ends up pointing at the
// deepest annotated error.
func collect(err error, annotations *[]any, pc *uintptr) {
	if err == nil {
		return
	}
	if ae, ok := err.(*annotatedError); ok { //nolint:errorlint // walking the tree by hand
		for _, a := range ae.attrs {
			*annotations = append(*annotations, a)
		}
		if ae.pc != 0 {
			*pc = ae.pc
		}
	}
	switch x := err.(type) { //nolint:errorlint // walking the tree by hand
	case interface{ Unwrap() []error }:
		for _, e := range x.Unwrap() {
			collect(e, annotations, pc)
		}
	case interface{ Unwrap() error }:
		collect(x.Unwrap(), annotations, pc)
	}
}

func callerPC(skip int) uintptr {
	var pcs [1]uintptr
	if runtime.Callers(skip, pcs[:]) == 0 {
		return 0
	}
	return pcs[0]
}

// panicPC finds the first frame after runtime.gopanic, i.e. the code that panicked.
func panicPC() uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:]) //nolint:mnd // skip Callers and panicPC
	frames := runtime.CallersFrames(pcs[:n])
	var (
		afterPanic bool
		fallback   uintptr
	)
	for {
		frame, more := frames.Next()
		if fallback == 0 && frame.Function != "" {
			fallback = frame.PC
		}
		if afterPanic {
			return frame.PC
		}
		if frame.Function == "runtime.gopanic" {
			afterPanic = true
		}
		if !more {
			return fallback
		}
	}
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join returns an error that wraps the given errors. It returns nil if every error is nil.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
