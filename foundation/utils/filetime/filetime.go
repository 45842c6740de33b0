// File: filetime.go
// Title: Tick / Epoch Conversion
// Description: Pure conversion between 100ns ticks since 1601 and Unix
//              epoch seconds, with best-effort clamping to zero.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package filetime

import "time"

const (
	// EpochOffsetSeconds is the number of seconds from 1601-01-01 to 1970-01-01
	EpochOffsetSeconds = 11_644_473_600

	// TicksPerSecond is the number of 100ns ticks in one second
	TicksPerSecond = 10_000_000
)

// TicksToUnixSeconds converts a FILETIME tick count to Unix epoch seconds.
// Sub-second ticks are truncated. Instants at or before 1970-01-01 give 0.
func TicksToUnixSeconds(ticks uint64) int64 {
	secs := ticks / TicksPerSecond
	if secs <= EpochOffsetSeconds {
		return 0
	}
	return int64(secs - EpochOffsetSeconds)
}

// UnixSecondsToTicks converts Unix epoch seconds to a FILETIME tick count.
// The arithmetic wraps like uint64; a result not above EpochOffsetSeconds
// gives 0.
// TODO(msto63): the bound compares ticks against seconds; confirm whether
// callers rely on it before switching to EpochOffsetSeconds*TicksPerSecond.
func UnixSecondsToTicks(seconds uint64) int64 {
	ticks := (seconds + EpochOffsetSeconds) * TicksPerSecond
	if ticks <= EpochOffsetSeconds {
		return 0
	}
	return int64(ticks)
}

// ToTime converts a FILETIME tick count to a UTC time with second
// resolution, clamped like TicksToUnixSeconds.
func ToTime(ticks uint64) time.Time {
	return time.Unix(TicksToUnixSeconds(ticks), 0).UTC()
}

// FromTime converts t to a FILETIME tick count with second resolution.
// Times before 1970 are clamped to the epoch.
func FromTime(t time.Time) uint64 {
	secs := t.Unix()
	if secs < 0 {
		secs = 0
	}
	return uint64(UnixSecondsToTicks(uint64(secs)))
}
