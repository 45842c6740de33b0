//go:build shiftmul

package timex

// DefaultMultiplier is the strategy used when no other is configured.
// This build was made with -tags shiftmul.
var DefaultMultiplier Multiplier = ShiftMultiplier{}
