// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so that the logger can pick
//              an appropriate level when reporting them.
// Author: msto63
// Version: v0.1.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad caller input such as a malformed date string
	SeverityLow Severity = iota

	// SeverityMedium indicates a failure with a workaround, e.g. a missing config file
	SeverityMedium

	// SeverityHigh indicates the host could not complete an operation
	SeverityHigh

	// SeverityCritical indicates a broken installation or internal invariant
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeHostNormalization:
		return SeverityHigh
	case CodeNullInput, CodeMalformedDateTime, CodeInvalidInput:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
