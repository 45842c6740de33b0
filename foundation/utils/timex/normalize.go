// File: normalize.go
// Title: Calendar Normalization Backends
// Description: Turns a broken-down time into seconds since the Unix epoch.
//              Out-of-range fields roll into the next unit (day 32 of a
//              31-day month is day 1 of the next month); this is the intended
//              behavior, the parser does no calendar validation of its own.
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
	"math"
	"time"

	mdwerror "github.com/msto63/epochx/foundation/core/error"
)

// Normalizer resolves a broken-down time into epoch seconds
type Normalizer interface {
	Normalize(bt BrokenDownTime) (int64, error)
}

// NormalizerFunc adapts a function to the Normalizer interface
type NormalizerFunc func(bt BrokenDownTime) (int64, error)

// Normalize calls f(bt)
func (f NormalizerFunc) Normalize(bt BrokenDownTime) (int64, error) {
	return f(bt)
}

// LocationNormalizer interprets broken-down times as wall clock time in
// Location, time.Local when nil.
type LocationNormalizer struct {
	Location *time.Location
}

// Normalize resolves bt with time.Date. With DSTUnknown an ambiguous or
// skipped wall clock is resolved by the zone database; DSTOn or DSTOff pick
// the matching side of an ambiguous wall clock when there is one.
func (n LocationNormalizer) Normalize(bt BrokenDownTime) (int64, error) {
	loc := n.Location
	if loc == nil {
		loc = time.Local
	}

	t := time.Date(bt.TmYear()+tmYearBase, time.Month(bt.Month+1), bt.Day,
		bt.Hour, bt.Minute, bt.Second, 0, loc)

	if bt.DST != DSTUnknown {
		t = preferDST(t, bt.DST == DSTOn)
	}
	return t.Unix(), nil
}

// preferDST returns the instant with the same wall clock as t whose DST state
// is want, or t if the wall clock is not ambiguous. The shift is the offset
// change at the zone transition next to t, which is not always one hour
// (Australia/Lord_Howe moves by 30 minutes).
func preferDST(t time.Time, want bool) time.Time {
	if t.IsDST() == want {
		return t
	}

	_, offset := t.Zone()
	start, end := t.ZoneBounds()
	var neighbors []time.Time
	if !start.IsZero() {
		neighbors = append(neighbors, start.Add(-time.Nanosecond))
	}
	if !end.IsZero() {
		neighbors = append(neighbors, end)
	}

	for _, n := range neighbors {
		_, other := n.Zone()
		alt := t.Add(time.Duration(offset-other) * time.Second)
		if alt.IsDST() == want && sameWallClock(t, alt) {
			return alt
		}
	}
	return t
}

func sameWallClock(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd &&
		a.Hour() == b.Hour() && a.Minute() == b.Minute() && a.Second() == b.Second()
}

// Bounds of a signed 32-bit time_t
const (
	TimeT32Min int64 = math.MinInt32
	TimeT32Max int64 = math.MaxInt32
)

// BoundedNormalizer rejects results of Next outside [Min, Max] with
// CodeHostNormalization, the way a host with a narrow time_t fails.
type BoundedNormalizer struct {
	Next Normalizer
	Min  int64
	Max  int64
}

// TimeT32 bounds next to the range of a signed 32-bit time_t
func TimeT32(next Normalizer) BoundedNormalizer {
	return BoundedNormalizer{Next: next, Min: TimeT32Min, Max: TimeT32Max}
}

// Normalize delegates to Next and checks the result range
func (n BoundedNormalizer) Normalize(bt BrokenDownTime) (int64, error) {
	next := n.Next
	if next == nil {
		next = LocationNormalizer{}
	}

	secs, err := next.Normalize(bt)
	if err != nil {
		return 0, err
	}

	if secs < n.Min || secs > n.Max {
		return 0, mdwerror.New(fmt.Sprintf("%s is outside the representable range", bt)).
			WithCode(mdwerror.CodeHostNormalization).
			WithOperation("timex.Normalize").
			WithDetail("epoch", secs).
			WithDetail("min", n.Min).
			WithDetail("max", n.Max)
	}
	return secs, nil
}
