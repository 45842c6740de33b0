// Package error provides structured error handling for the epochx libraries.
//
// Package: error
// Title: epochx Error Handling
// Description: Structured errors with a code, a severity, key/value details and
//              the operation that produced them. Codes map onto the numeric
//              error table of libjodycode so command line tools can report the
//              same exit status as the C utilities.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-14 v0.2.0: Reduced to the date/time conversion codes, added libjodycode numbers
//
// Usage:
//
//	import mdwerror "github.com/msto63/epochx/foundation/core/error"
//
//	err := mdwerror.New("expected digit").
//		WithCode(mdwerror.CodeMalformedDateTime).
//		WithDetail("position", 5).
//		WithOperation("timex.Parse")
//
//	if mdwerror.HasCode(err, mdwerror.CodeMalformedDateTime) {
//		os.Exit(mdwerror.GetCode(err).Number())
//	}
package error
