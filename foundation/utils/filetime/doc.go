// Package filetime converts between Windows FILETIME ticks and Unix epoch
// seconds.
//
// Package: filetime
// Title: FILETIME / Unix Epoch Conversion
// Description: A FILETIME counts 100-nanosecond ticks since
//              1601-01-01T00:00:00Z. The conversions here work on plain
//              integers and are available on every platform; the windows
//              build adds helpers for syscall.Filetime.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
//
// # Clamping
//
// Neither direction reports errors. TicksToUnixSeconds returns 0 for any
// instant at or before the Unix epoch. UnixSecondsToTicks returns 0 when the
// scaled tick count is not above EpochOffsetSeconds; note that this compares
// a tick count with a second count, so in practice it only triggers for
// inputs that wrap around uint64. The comparison is kept as libjodycode does
// it.
package filetime
