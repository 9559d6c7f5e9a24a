// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Every error returned by this package is marked with exactly one of these
// kinds, except for parse failures, which are reported as a *ParseError. Use
// [errors.Is] to classify an error.
var (
	// ErrInvalidValue marks a field value outside of its legal range, such
	// as month 13 or February 30.
	ErrInvalidValue = errors.New("invalid value")
	// ErrOutOfRange marks a result that lies outside of the supported range,
	// although all inputs were valid.
	ErrOutOfRange = errors.New("out of range")
	// ErrOverflow marks a 64-bit (or, for Period, 32-bit) integer overflow in
	// an intermediate computation.
	ErrOverflow = errors.New("arithmetic overflow")
	// ErrUnsupported marks a field or unit that a type does not support.
	ErrUnsupported = errors.New("unsupported field or unit")
	// ErrTypeMismatch marks a temporal that cannot be converted to the
	// required type.
	ErrTypeMismatch = errors.New("type mismatch")
)

func invalidValuef(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidValue)
}

func outOfRangef(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrOutOfRange)
}

func overflowf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrOverflow)
}

func unsupportedf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrUnsupported)
}

func unsupportedField(f Field) error {
	return errors.Mark(errors.Newf("unsupported field: %s", f), ErrUnsupported)
}

func unsupportedUnit(u Unit) error {
	return errors.Mark(errors.Newf("unsupported unit: %s", u), ErrUnsupported)
}

func typeMismatch(target string, t TemporalAccessor) error {
	return errors.Mark(errors.Newf("unable to obtain %s from %v of type %T", target, t, t), ErrTypeMismatch)
}

// ParseError describes a problem parsing ISO-8601 text.
type ParseError struct {
	// Kind names the type being parsed, e.g. "date" or "instant".
	Kind string
	// Value is the complete input.
	Value string
	// Offset is the index into Value at which parsing failed.
	Offset int
	// Message describes the failure.
	Message string
	// Err is the validation error for syntactically correct input that
	// describes an invalid value, if any.
	Err error
}

// Error returns the string representation of a ParseError.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing %s %q: %v", e.Kind, e.Value, e.Err)
	}
	return fmt.Sprintf("parsing %s %q: %s at offset %d", e.Kind, e.Value, e.Message, e.Offset)
}

// Unwrap returns the validation error, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}
