// SPDX-License-Identifier: MIT
// Package: trinoise/digits
//
// errors.go — sentinel errors shared by every trinoise package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach method context with %w, never by rewording
//     the sentinel.
//   • Validation happens before any computation; no operation returns a
//     default value alongside an error.

package digits

import "errors"

// ErrInvalidBase indicates a base smaller than MinBase.
var ErrInvalidBase = errors.New("digits: base must be at least 2")

// ErrInvalidIndex indicates a negative, nil or malformed natural number, or a
// reduced index that is not below the period.
var ErrInvalidIndex = errors.New("digits: index must be a natural number")

// ErrOverflow indicates that N^N exceeds the int64 range.
var ErrOverflow = errors.New("digits: period overflows int64")

// ErrBadDigits indicates a digit array of the wrong length or with a digit
// outside [0, base).
var ErrBadDigits = errors.New("digits: malformed digit array")

// Method names used as error context prefixes.
const (
	methodPeriod     = "Period"
	methodReduce     = "Reduce"
	methodReduceBig  = "ReduceBig"
	methodParseIndex = "ParseIndex"
	methodToDigits   = "ToDigits"
	methodFromDigits = "FromDigits"
	methodOdometer   = "NewOdometer"
)
