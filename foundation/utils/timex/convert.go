// File: convert.go
// Title: Date/Time String to Epoch Conversion
// Description: Runs the parser and a normalization backend in sequence and
//              returns seconds since the Unix epoch with an explicit error,
//              so negative epochs are never confused with failures.
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

	mdwerror "github.com/msto63/epochx/foundation/core/error"
	mdwlog "github.com/msto63/epochx/foundation/core/log"
)

// Converter converts date/time literals to epoch seconds. It is immutable
// and safe for concurrent use.
type Converter struct {
	parser     *Parser
	normalizer Normalizer
	logger     *mdwlog.Logger
}

// Option configures a Converter
type Option func(*Converter)

// WithParser sets the parser
func WithParser(p *Parser) Option {
	return func(c *Converter) {
		if p != nil {
			c.parser = p
		}
	}
}

// WithNormalizer sets the normalization backend
func WithNormalizer(n Normalizer) Option {
	return func(c *Converter) {
		if n != nil {
			c.normalizer = n
		}
	}
}

// WithLogger enables debug logging of every conversion
func WithLogger(l *mdwlog.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewConverter creates a converter. Without options it uses the default
// multiplier and local time.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		parser:     NewParser(),
		normalizer: LocationNormalizer{},
		logger:     mdwlog.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Parser returns the parser used by the converter
func (c *Converter) Parser() *Parser {
	return c.parser
}

// StringToEpoch converts "YYYY-MM-DD" or "YYYY-MM-DD HH:MM:SS" to seconds
// since the Unix epoch.
func (c *Converter) StringToEpoch(s string) (int64, error) {
	return c.BytesToEpoch([]byte(s))
}

// BytesToEpoch is StringToEpoch for a byte slice, which may be NUL terminated
func (c *Converter) BytesToEpoch(b []byte) (int64, error) {
	bt, err := c.parser.Parse(b)
	if err != nil {
		c.debug("parse failed", string(b), 0, err)
		return 0, err
	}

	secs, err := c.normalizer.Normalize(bt)
	if err != nil {
		if !mdwerror.HasCode(err, mdwerror.CodeHostNormalization) {
			err = mdwerror.Wrap(err, "calendar normalization failed").
				WithCode(mdwerror.CodeHostNormalization).
				WithOperation("timex.StringToEpoch").
				WithDetail("fields", bt.String())
		}
		c.debug("normalization failed", string(b), 0, err)
		return 0, err
	}

	c.debug("converted", string(b), secs, nil)
	return secs, nil
}

func (c *Converter) debug(msg, input string, secs int64, err error) {
	if !c.logger.IsLevelEnabled(mdwlog.LevelDebug) {
		return
	}
	fields := mdwlog.Fields{"input": input, "multiply": c.parser.Multiplier().Name()}
	if err != nil {
		fields["error_code"] = mdwerror.GetCode(err)
		fields["error"] = err.Error()
		var mdwErr *mdwerror.Error
		if errors.As(err, &mdwErr) {
			if pos, ok := mdwErr.Detail("position"); ok {
				fields["position"] = pos
			}
		}
	} else {
		fields["epoch"] = secs
	}
	c.logger.Debug(msg, fields)
}

var defaultConverter = NewConverter()

// StringToEpoch converts s with the default converter (local time, default
// multiply strategy).
func StringToEpoch(s string) (int64, error) {
	return defaultConverter.StringToEpoch(s)
}
