//go:build windows

package filetime

import "syscall"

// FromFiletime converts a native FILETIME to Unix epoch seconds
func FromFiletime(ft syscall.Filetime) int64 {
	return TicksToUnixSeconds(uint64(ft.HighDateTime)<<32 | uint64(ft.LowDateTime))
}

// ToFiletime converts Unix epoch seconds to a native FILETIME. Negative
// seconds are read as their unsigned bit pattern.
func ToFiletime(seconds int64) syscall.Filetime {
	ticks := uint64(UnixSecondsToTicks(uint64(seconds)))
	return syscall.Filetime{
		LowDateTime:  uint32(ticks),
		HighDateTime: uint32(ticks >> 32),
	}
}
