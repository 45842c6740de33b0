// File: multiply.go
// Title: Digit Accumulation Strategies
// Description: The two interchangeable ways of scaling a decimal digit by 10
//              and 100 while assembling date fields: plain multiplication and
//              a shift/add decomposition for targets where multiply
//              instructions are expensive. Both produce identical results.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package timex

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/epochx/foundation/core/error"
)

// Multiplier scales accumulated digit values while a field is assembled
type Multiplier interface {
	Mul10(a int) int
	Mul100(a int) int
	Name() string
}

// PlainMultiplier uses the multiply operator
type PlainMultiplier struct{}

// Mul10 returns a*10
func (PlainMultiplier) Mul10(a int) int { return a * 10 }

// Mul100 returns a*100
func (PlainMultiplier) Mul100(a int) int { return a * 100 }

// Name returns "plain"
func (PlainMultiplier) Name() string { return "plain" }

// ShiftMultiplier decomposes the multiplications into shifts and adds:
// x*10 = x*8 + x + x and x*100 = x*64 + x*32 + x*4.
type ShiftMultiplier struct{}

// Mul10 returns (a<<3) + a + a
func (ShiftMultiplier) Mul10(a int) int { return (a << 3) + a + a }

// Mul100 returns (a<<6) + (a<<5) + (a<<2)
func (ShiftMultiplier) Mul100(a int) int { return (a << 6) + (a << 5) + (a << 2) }

// Name returns "shift"
func (ShiftMultiplier) Name() string { return "shift" }

// ParseMultiplier returns the strategy with the given name. "default" and the
// empty string select DefaultMultiplier.
func ParseMultiplier(name string) (Multiplier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return DefaultMultiplier, nil
	case "plain", "mul":
		return PlainMultiplier{}, nil
	case "shift", "shiftadd":
		return ShiftMultiplier{}, nil
	default:
		return nil, mdwerror.New(fmt.Sprintf("unknown multiply strategy %q (want plain, shift or default)", name)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("timex.ParseMultiplier")
	}
}
