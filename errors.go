package zonetime

import (
	"errors"
	"fmt"

	"darvaza.org/core"
)

// Code is a member of the closed error taxonomy every zonetime operation
// reports through. The numeric values are fixed for wire compatibility
// with the reference engine this package implements.
type Code int

// The closed set of failure modes a Zone operation can report.
const (
	// NoSuchSystem is returned when a system tag names a zone that was
	// never constructed or registered.
	NoSuchSystem Code = -4000
	// SystemsDoNotMatch is returned by Diff when its two endpoints carry
	// different system tags.
	SystemsDoNotMatch Code = -3999
	// NotMySystem is returned when a Calendar's system tag does not match
	// the zone (or the zone's lower zone) an operation was called on.
	NotMySystem Code = -3998
	// UndefinedDate is returned for a date in the 1582 Julian/Gregorian
	// cutover gap (1582-10-05 through 1582-10-14); later jurisdictional
	// cutovers up to 1752 are not modelled and are not rejected.
	UndefinedDate Code = -3997
	// InitFailed is returned when a zone constructor's delegate
	// construction failed; the partially built zone is discarded.
	InitFailed Code = -3996
	// BadSystem is returned for an unrecognised or malformed system tag.
	BadSystem Code = -3995
	// InvalidArgument is returned when a field (or constructor parameter)
	// falls outside its permitted range.
	InvalidArgument Code = -3994
	// InternalError marks a reached-the-unreachable condition, e.g. the
	// summer-time decision procedure falling through every case.
	InternalError Code = -3993
	// CannotConvert is returned by LowerTo when no ancestor of the zone
	// carries the requested target system.
	CannotConvert Code = -3992
)

// String names a Code the way the reference engine's error table does.
func (c Code) String() string {
	switch c {
	case NoSuchSystem:
		return "NoSuchSystem"
	case SystemsDoNotMatch:
		return "SystemsDoNotMatch"
	case NotMySystem:
		return "NotMySystem"
	case UndefinedDate:
		return "UndefinedDate"
	case InitFailed:
		return "InitFailed"
	case BadSystem:
		return "BadSystem"
	case InvalidArgument:
		return "InvalidArgument"
	case InternalError:
		return "InternalError"
	case CannotConvert:
		return "CannotConvert"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// Error is the concrete error type every zonetime operation returns on
// failure. It always carries a Code from the closed taxonomy, and may
// additionally carry the record that triggered it and a wrapped cause.
type Error struct {
	Code Code
	// Op names the operation that failed, e.g. "UTCZone.Op".
	Op string
	// Record is the offending Calendar, when relevant; the zero Calendar
	// otherwise.
	Record Calendar
	cause  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("zonetime: %s: %s", e.Op, e.Code)
	if e.cause != nil {
		return msg + ": " + e.cause.Error()
	}
	return msg
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// newError builds an *Error with no wrapped cause.
func newError(op string, code Code, rec Calendar) *Error {
	return &Error{Code: code, Op: op, Record: rec}
}

// wrapError builds an *Error that wraps a delegate failure, using
// core.Wrapf the way darvaza.org/x wraps delegate errors throughout its
// net and tls packages.
func wrapError(op string, code Code, cause error) *Error {
	return &Error{Code: code, Op: op, cause: core.Wrapf(cause, "%s", op)}
}

// CodeOf extracts the Code carried by err, if err is (or wraps) a
// *zonetime.Error. The second return is false for any other error,
// including nil.
func CodeOf(err error) (Code, bool) {
	var ze *Error
	if errors.As(err, &ze) {
		return ze.Code, true
	}
	return 0, false
}
