// File: normalize_test.go
// Title: Normalization Backend Tests
// Description: Calendar overflow, negative epochs, time zones, DST
//              preference and range-bounded backends.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package timex

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	mdwerror "github.com/msto63/epochx/foundation/core/error"
)

func mustParse(t *testing.T, s string) BrokenDownTime {
	t.Helper()
	bt, err := NewParser().ParseString(s)
	if err != nil {
		t.Fatalf("ParseString(%q) unexpected error: %v", s, err)
	}
	return bt
}

func TestLocationNormalizerUTC(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  int64
	}{
		{"epoch", "1970-01-01", 0},
		{"new year 2023", "2023-01-01", 1672531200},
		{"with time", "2023-12-25 15:30:45", 1703518245},
		{"one second before epoch", "1969-12-31 23:59:59", -1},
		{"month 13 rolls into next year", "2023-13-01", 1704067200},
		{"month 00 rolls back to december", "2023-00-01", 1669852800},
		{"day 32 of january is february 1", "2023-01-32", 1675209600},
		{"february 30 is march 2", "2023-02-30", 1677715200},
		{"hour 24 is next day", "2023-01-01 24:00:00", 1672617600},
		{"second 60 is next minute", "2023-01-01 00:00:60", 1672531260},
	}

	n := LocationNormalizer{Location: time.UTC}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := n.Normalize(mustParse(t, tc.input))
			if err != nil {
				t.Fatalf("Normalize(%q) unexpected error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("Normalize(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestLocationNormalizerFixedZone(t *testing.T) {
	n := LocationNormalizer{Location: time.FixedZone("UTC+1", 3600)}

	got, err := n.Normalize(mustParse(t, "2023-01-01"))
	if err != nil {
		t.Fatalf("Normalize() unexpected error: %v", err)
	}
	if want := int64(1672531200 - 3600); got != want {
		t.Errorf("Normalize() = %d, want %d", got, want)
	}
}

func TestLocationNormalizerDefaultsToLocal(t *testing.T) {
	bt := mustParse(t, "2023-06-15 12:00:00")

	got, err := LocationNormalizer{}.Normalize(bt)
	if err != nil {
		t.Fatalf("Normalize() unexpected error: %v", err)
	}
	want := time.Date(2023, time.June, 15, 12, 0, 0, 0, time.Local).Unix()
	if got != want {
		t.Errorf("Normalize() = %d, want %d", got, want)
	}
}

func TestLocationNormalizerDSTPreference(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("time zone database unavailable: %v", err)
	}
	n := LocationNormalizer{Location: ny}

	// 01:30 occurs twice on 2023-11-05: 05:30Z in EDT and 06:30Z in EST
	bt := mustParse(t, "2023-11-05 01:30:00")

	unknown, err := n.Normalize(bt)
	if err != nil {
		t.Fatalf("Normalize() unexpected error: %v", err)
	}
	if unknown != 1699162200 && unknown != 1699165800 {
		t.Errorf("Normalize(DSTUnknown) = %d, want one of the two local instants", unknown)
	}

	bt.DST = DSTOn
	if got, _ := n.Normalize(bt); got != 1699162200 {
		t.Errorf("Normalize(DSTOn) = %d, want 1699162200", got)
	}

	bt.DST = DSTOff
	if got, _ := n.Normalize(bt); got != 1699165800 {
		t.Errorf("Normalize(DSTOff) = %d, want 1699165800", got)
	}

	// not ambiguous: the flag has no effect
	summer := mustParse(t, "2023-07-01 12:00:00")
	base, _ := n.Normalize(summer)
	summer.DST = DSTOff
	if got, _ := n.Normalize(summer); got != base {
		t.Errorf("Normalize(DSTOff) on a summer time = %d, want %d", got, base)
	}

	// Lord Howe Island leaves DST by 30 minutes: 01:45 on 2023-04-02 is
	// 14:45Z under +11:00 and 15:15Z under +10:30
	lhi, err := time.LoadLocation("Australia/Lord_Howe")
	if err != nil {
		t.Skipf("time zone database unavailable: %v", err)
	}
	lh := LocationNormalizer{Location: lhi}
	twice := mustParse(t, "2023-04-02 01:45:00")

	testCases := []struct {
		dst  DSTFlag
		want int64
	}{
		{DSTOn, 1680360300},
		{DSTOff, 1680362100},
	}
	for _, tc := range testCases {
		t.Run("Lord_Howe "+tc.dst.String(), func(t *testing.T) {
			bt := twice
			bt.DST = tc.dst
			got, err := lh.Normalize(bt)
			if err != nil {
				t.Fatalf("Normalize() unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Normalize(%s) = %d, want %d", tc.dst, got, tc.want)
			}
		})
	}
}

func TestBoundedNormalizer(t *testing.T) {
	n := TimeT32(LocationNormalizer{Location: time.UTC})

	testCases := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"max 32-bit", "2038-01-19 03:14:07", 2147483647, false},
		{"past max 32-bit", "2038-01-19 03:14:08", 0, true},
		{"min 32-bit", "1901-12-13 20:45:52", -2147483648, false},
		{"before min 32-bit", "1901-12-13 20:45:51", 0, true},
		{"far future", "9999-12-31", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := n.Normalize(mustParse(t, tc.input))
			if tc.wantErr {
				if !mdwerror.HasCode(err, mdwerror.CodeHostNormalization) {
					t.Errorf("Normalize(%q) error = %v, want code %s", tc.input, err, mdwerror.CodeHostNormalization)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize(%q) unexpected error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("Normalize(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestBoundedNormalizerPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	n := BoundedNormalizer{
		Next: NormalizerFunc(func(BrokenDownTime) (int64, error) { return 0, boom }),
		Min:  TimeT32Min,
		Max:  TimeT32Max,
	}

	if _, err := n.Normalize(BrokenDownTime{}); !errors.Is(err, boom) {
		t.Errorf("Normalize() error = %v, want %v", err, boom)
	}
}

func TestNormalizerFunc(t *testing.T) {
	var seen BrokenDownTime
	f := NormalizerFunc(func(bt BrokenDownTime) (int64, error) {
		seen = bt
		return 42, nil
	})

	got, err := f.Normalize(mustParse(t, "2023-01-01"))
	if err != nil || got != 42 {
		t.Errorf("Normalize() = %d, %v, want 42, nil", got, err)
	}
	if seen.DST != DSTUnknown {
		t.Errorf("parser DST flag = %v, want %v", seen.DST, DSTUnknown)
	}
}
