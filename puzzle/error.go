// sudoku - a Sudoku solving, generating, and serving toolkit.
// Copyright (C) 2025-2026 Build Labs Studio.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

package puzzle

import (
	"fmt"
)

/*

Errors

*/

// An Error describes a problem with a puzzle or a requested
// operation.  It can produce an error message in English, but it
// mainly tells the caller "this thing failed to meet this
// condition" in a form that survives JSON encoding, so clients
// of the HTTP surface can do their own messaging.
type Error struct {
	Kind      ErrorKind      `json:"kind"`
	Condition ErrorCondition `json:"condition,omitempty"`
	Cell      int            `json:"cell,omitempty"`
	Digit     int            `json:"digit,omitempty"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorKind says which family the error belongs to.  Format
// errors come from malformed puzzle text, argument errors from
// out-of-range caller input, contradictions from assignments the
// constraint state forbids, and internal errors from logic
// failures that should never happen.
type ErrorKind int

// Constants for the error kinds.
const (
	UnknownKind ErrorKind = iota
	FormatKind
	ArgumentKind
	ContradictionKind
	InternalKind
	MaxKind
)

// The ErrorCondition is the predicate the input or the grid
// state failed to satisfy.
type ErrorCondition int

// Constants for the error conditions.
const (
	UnknownCondition ErrorCondition = iota
	GeneralCondition
	NotEnoughDataCondition
	TooMuchDataCondition
	InvalidCharacterCondition
	WrongRowCountCondition
	WrongColumnCountCondition
	TooSmallCondition
	TooLargeCondition
	ForbiddenValueCondition
	NoCandidatesCondition
	MaxCondition
)

// The ErrorData carries details about the failing value and the
// predicate, such as the offending character or the permitted
// bound.  Every item must be JSON-serializable; there is no good
// way to have the compiler check that, so implementors just have
// to do the right thing.
type ErrorData []interface{}

// Return an error string from an Error.  If the Error has a
// pre-canned message, this will use it, otherwise it will
// produce an appropriate (English, non-localized) message.
func (e Error) Error() string {
	es := e.Message
	if len(es) > 0 {
		return es
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	switch e.Kind {
	case FormatKind:
		es = "Bad input: "
	case ArgumentKind:
		es = "Invalid argument: "
	case ContradictionKind:
		es = fmt.Sprintf("Contradiction at (%d, %d): ", rowOf(e.Cell), colOf(e.Cell))
	case InternalKind:
		es = "Internal logic error: "
	default:
		es = "Unknown error: "
	}
	switch e.Condition {
	case GeneralCondition:
		es += fmt.Sprint(nextVal())
	case NotEnoughDataCondition:
		es += "not enough data"
	case TooMuchDataCondition:
		es += "too much data"
	case InvalidCharacterCondition:
		es += fmt.Sprintf("invalid character: %v", nextVal())
	case WrongRowCountCondition:
		es += fmt.Sprintf("expected %d rows, got %v", Side, nextVal())
	case WrongColumnCountCondition:
		es += fmt.Sprintf("expected %d columns, got %v", Side, nextVal())
	case TooSmallCondition:
		es += fmt.Sprintf("%v must be at least %v", nextVal(), nextVal())
	case TooLargeCondition:
		es += fmt.Sprintf("%v must be at most %v", nextVal(), nextVal())
	case ForbiddenValueCondition:
		es += fmt.Sprintf("digit %d is not among the remaining candidates", e.Digit)
	case NoCandidatesCondition:
		es += fmt.Sprintf("no candidate remains after removing %d", e.Digit)
	default:
		es += fmt.Sprintf("supplemental data is %v", values)
	}
	return es
}

// IsContradiction reports whether err is a contradiction Error.
func IsContradiction(err error) bool {
	e, ok := err.(Error)
	return ok && e.Kind == ContradictionKind
}

// IsFormat reports whether err is a format Error.
func IsFormat(err error) bool {
	e, ok := err.(Error)
	return ok && e.Kind == FormatKind
}

// formatError returns an Error describing malformed puzzle text.
func formatError(cond ErrorCondition, values ...interface{}) Error {
	return Error{Kind: FormatKind, Condition: cond, Values: values}
}

// rangeError returns an Error describing an out-of-range
// argument.
func rangeError(name string, val, min, max int) Error {
	err := Error{
		Kind:      ArgumentKind,
		Condition: TooLargeCondition,
		Values:    ErrorData{name, max, val},
	}
	if val < min {
		err.Condition = TooSmallCondition
		err.Values[1] = min
	}
	return err
}

// contradictionError returns an Error from an assignment or
// elimination the current grid state forbids.  The grid has
// already been modified when this error is returned.
func contradictionError(cell, digit int, cond ErrorCondition) Error {
	return Error{Kind: ContradictionKind, Condition: cond, Cell: cell, Digit: digit}
}
