//go:build !shiftmul

package timex

// DefaultMultiplier is the strategy used when no other is configured.
// Build with -tags shiftmul to switch it to ShiftMultiplier.
var DefaultMultiplier Multiplier = PlainMultiplier{}
