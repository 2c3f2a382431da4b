// Package errors defines the coded errors starchart returns.
//
// Every failure a caller can act on carries a [Code]: a bad viewport is
// INVALID_VIEWPORT, an unknown preset is NOT_FOUND, a field of view wider
// than an optic chart can draw is FOV_TOO_LARGE. The CLI prints
// [UserMessage] and tests match on [Is]:
//
//	_, err := chart.NewMap(chart.MapOptions{Viewport: viewport.Viewport{RAMin: 7, RAMax: 4}})
//	if errors.Is(err, errors.ErrCodeInvalidViewport) {
//	    // ...
//	}
//
// Causes are kept with [Wrap], so the standard library's errors.Is and
// errors.As still see the underlying error.
package errors

import (
	"errors"
	"fmt"
)

// Code names a class of failure.
type Code string

const (
	// Bad input, reported before anything is drawn.
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidViewport   Code = "INVALID_VIEWPORT"
	ErrCodeInvalidProjection Code = "INVALID_PROJECTION"
	ErrCodeInvalidShape      Code = "INVALID_SHAPE"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle      Code = "INVALID_STYLE"
	ErrCodeInvalidOptic      Code = "INVALID_OPTIC"
	ErrCodeInvalidObserver   Code = "INVALID_OBSERVER"
	ErrCodeInvalidPath       Code = "INVALID_PATH"

	// The optic cannot show the target from here and now.
	ErrCodeFOVTooLarge  Code = "FOV_TOO_LARGE"
	ErrCodeBelowHorizon Code = "BELOW_HORIZON"

	// Unknown preset, body, target or file.
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a coded failure. Message is what the user sees.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap is New with a cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether the first *Error in err's chain has code.
func Is(err error, code Code) bool { return GetCode(err) == code && code != "" }

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	if e := find(err); e != nil {
		return e.Code
	}
	return ""
}

// UserMessage drops the code prefix from coded errors.
func UserMessage(err error) string {
	if e := find(err); e != nil {
		return e.Message
	}
	return err.Error()
}

func find(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
