// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the date/time conversion
//              packages and the configuration layer, together with their
//              categories and libjodycode error numbers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-14 v0.2.0: Date/time codes and libjodycode numbering

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Date/time conversion
	CodeNullInput         Code = "NULL_INPUT"
	CodeMalformedDateTime Code = "MALFORMED_DATETIME"
	CodeHostNormalization Code = "HOST_NORMALIZATION"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// libjodycode error numbers (JC_E* in libjodycode.h)
const (
	numNoError  = 0
	numNull     = 1
	numBadErr   = 5
	numBadArgv  = 6
	numDateTime = 11
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeNullInput, CodeMalformedDateTime, CodeHostNormalization:
		return "datetime"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// Number returns the libjodycode error number for the code. Codes without a
// counterpart in the C table report JC_EBADERR, or JC_EBADARGV for input and
// configuration problems.
func (c Code) Number() int {
	switch c {
	case "":
		return numNoError
	case CodeNullInput:
		return numNull
	case CodeMalformedDateTime:
		return numDateTime
	case CodeInvalidInput, CodeInvalidConfig, CodeConfigError, CodeNotFound:
		return numBadArgv
	default:
		return numBadErr
	}
}
