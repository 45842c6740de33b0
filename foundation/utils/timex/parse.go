// File: parse.go
// Title: Fixed-Grammar Date/Time Parser
// Description: Parses "YYYY-MM-DD" and "YYYY-MM-DD HH:MM:SS" literals into a
//              broken-down time record. Every position of the grammar is
//              checked exactly; field ranges are not, overflow is left to the
//              normalizer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package timex

import (
	"bytes"
	"fmt"

	mdwerror "github.com/msto63/epochx/foundation/core/error"
)

// DSTFlag tells the normalizer whether daylight saving time is in effect
type DSTFlag int

const (
	// DSTUnknown lets the normalization backend decide
	DSTUnknown DSTFlag = -1
	// DSTOff requests standard time where the wall clock is ambiguous
	DSTOff DSTFlag = 0
	// DSTOn requests daylight saving time where the wall clock is ambiguous
	DSTOn DSTFlag = 1
)

// String returns the string representation of the flag
func (d DSTFlag) String() string {
	switch d {
	case DSTUnknown:
		return "unknown"
	case DSTOff:
		return "off"
	case DSTOn:
		return "on"
	default:
		return fmt.Sprintf("DSTFlag(%d)", int(d))
	}
}

// tmYearBase is the year origin of broken-down host times
const tmYearBase = 1900

// BrokenDownTime is a calendar time split into fields, before normalization.
// Month is zero based; Day, Hour, Minute and Second are not range checked.
type BrokenDownTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
	DST    DSTFlag
}

// TmYear returns the year as an offset from 1900, the form host calendar
// primitives expect.
func (b BrokenDownTime) TmYear() int {
	return b.Year - tmYearBase
}

// String formats the record in the input grammar, with the month shown one based
func (b BrokenDownTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", b.Year, b.Month+1, b.Day, b.Hour, b.Minute, b.Second)
}

// Byte offsets of the grammar "YYYY-MM-DD HH:MM:SS"
const (
	offYear     = 0
	offDateSep1 = 4
	offMonth    = 5
	offDateSep2 = 7
	offDay      = 8
	offTimeSep  = 10
	offHour     = 11
	offClock1   = 13
	offMinute   = 14
	offClock2   = 16
	offSecond   = 17
	offEnd      = 19
)

// Parser parses date/time literals. The zero value is not usable; create one
// with NewParser. A Parser is immutable and safe for concurrent use.
type Parser struct {
	mul Multiplier
}

// ParserOption configures a Parser
type ParserOption func(*Parser)

// WithMultiplier selects the digit accumulation strategy
func WithMultiplier(m Multiplier) ParserOption {
	return func(p *Parser) {
		if m != nil {
			p.mul = m
		}
	}
}

// NewParser creates a parser using DefaultMultiplier unless overridden
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{mul: DefaultMultiplier}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Multiplier returns the accumulation strategy of the parser
func (p *Parser) Multiplier() Multiplier {
	return p.mul
}

// ParseString parses s. See Parse.
func (p *Parser) ParseString(s string) (BrokenDownTime, error) {
	return p.Parse([]byte(s))
}

// Parse parses "YYYY-MM-DD" or "YYYY-MM-DD HH:MM:SS". The input ends at the
// end of the slice or at the first NUL byte. Nil or empty input fails with
// CodeNullInput; any grammar violation fails with CodeMalformedDateTime and
// reports the offending byte offset.
func (p *Parser) Parse(input []byte) (BrokenDownTime, error) {
	if len(input) == 0 || input[0] == 0 {
		return BrokenDownTime{}, mdwerror.New("date/time string is empty").
			WithCode(mdwerror.CodeNullInput).
			WithOperation("timex.Parse")
	}

	if n := bytes.IndexByte(input, 0); n >= 0 {
		input = input[:n]
	}
	s := scanner{buf: input}
	var bt BrokenDownTime

	d0, d1, d2, d3 := s.digit(offYear), s.digit(offYear+1), s.digit(offYear+2), s.digit(offYear+3)
	s.literal(offDateSep1, '-')
	bt.Year = p.mul.Mul10(p.mul.Mul100(d0)) + p.mul.Mul100(d1) + p.mul.Mul10(d2) + d3

	bt.Month = s.pair(p.mul, offMonth) - 1
	s.literal(offDateSep2, '-')
	bt.Day = s.pair(p.mul, offDay)
	if s.err != nil {
		return BrokenDownTime{}, s.err
	}

	bt.DST = DSTUnknown
	if s.end(offTimeSep) {
		return bt, nil
	}

	s.literal(offTimeSep, ' ')
	bt.Hour = s.pair(p.mul, offHour)
	s.literal(offClock1, ':')
	bt.Minute = s.pair(p.mul, offMinute)
	s.literal(offClock2, ':')
	bt.Second = s.pair(p.mul, offSecond)
	if s.err == nil && !s.end(offEnd) {
		s.fail(offEnd, "end of input")
	}
	if s.err != nil {
		return BrokenDownTime{}, s.err
	}
	return bt, nil
}

// scanner reads fixed offsets of the input and keeps the first failure.
// Reads after a failure return zero.
type scanner struct {
	buf []byte
	err error
}

// at returns the byte at offset i, or 0 past the end
func (s *scanner) at(i int) byte {
	if i >= len(s.buf) {
		return 0
	}
	return s.buf[i]
}

func (s *scanner) end(i int) bool {
	return s.at(i) == 0
}

func (s *scanner) digit(i int) int {
	if s.err != nil {
		return 0
	}
	c := s.at(i)
	if c < '0' || c > '9' {
		s.fail(i, "digit")
		return 0
	}
	return int(c - '0')
}

func (s *scanner) pair(m Multiplier, i int) int {
	hi := s.digit(i)
	lo := s.digit(i + 1)
	return m.Mul10(hi) + lo
}

func (s *scanner) literal(i int, want byte) {
	if s.err != nil {
		return
	}
	if s.at(i) != want {
		s.fail(i, fmt.Sprintf("%q", want))
	}
}

func (s *scanner) fail(i int, expected string) {
	found := "end of input"
	if c := s.at(i); c != 0 {
		found = describeByte(c)
	}
	s.err = mdwerror.New(fmt.Sprintf("malformed date/time at offset %d: expected %s, found %s", i, expected, found)).
		WithCode(mdwerror.CodeMalformedDateTime).
		WithOperation("timex.Parse").
		WithDetail("position", i).
		WithDetail("expected", expected).
		WithDetail("found", found)
}

// describeByte quotes printable ASCII and shows any other byte in hex
func describeByte(c byte) string {
	if c < 0x20 || c >= 0x7f {
		return fmt.Sprintf("0x%02x", c)
	}
	return fmt.Sprintf("%q", rune(c))
}
