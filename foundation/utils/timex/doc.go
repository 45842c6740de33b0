// Package timex converts date and date-time literals into seconds since the
// Unix epoch.
//
// Package: timex
// Title: Date/Time Literal to Epoch Conversion
// Description: A fixed-grammar parser for "YYYY-MM-DD" and
//              "YYYY-MM-DD HH:MM:SS", a pluggable calendar normalization
//              step, and a Converter that runs both.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial time utilities
// - 2026-10-14 v0.2.0: Replaced by the strict literal parser and epoch converter
//
// # Grammar
//
// Only two shapes are accepted, byte for byte:
//
//	YYYY-MM-DD
//	YYYY-MM-DD HH:MM:SS
//
// Every digit position must hold 0-9 and every separator must sit at its
// fixed offset. The input ends at the end of the slice or at the first NUL
// byte. Anything after the seconds field is an error.
//
// # Calendar overflow
//
// The parser does not check field ranges. "2023-13-01" parses to month index
// 12 and normalizes to 2024-01-01; "2023-02-30" becomes 2023-03-02. Month
// "00" rolls back to December of the previous year. Callers that need strict
// calendar validation must check the fields themselves.
//
// # Multiply strategies
//
// Field digits are accumulated through a Multiplier. PlainMultiplier uses
// the * operator, ShiftMultiplier uses shifts and adds. Both give identical
// results; DefaultMultiplier is plain unless built with -tags shiftmul.
//
// # Results
//
// Conversions return (int64, error). Negative results are valid epochs for
// dates before 1970 and never signal failure. Errors carry one of the codes
// CodeNullInput, CodeMalformedDateTime or CodeHostNormalization from
// foundation/core/error.
//
// # Usage
//
//	secs, err := timex.StringToEpoch("2023-12-25 15:30:45")
//
//	utc := timex.NewConverter(
//		timex.WithParser(timex.NewParser(timex.WithMultiplier(timex.ShiftMultiplier{}))),
//		timex.WithNormalizer(timex.LocationNormalizer{Location: time.UTC}),
//	)
//	secs, err = utc.StringToEpoch("2023-12-25")
//
// # Thread Safety
//
// Parsers, normalizers and converters hold no mutable state and can be
// shared between goroutines.
package timex
