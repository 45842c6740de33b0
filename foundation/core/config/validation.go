// File: validation.go
// Title: Settings Validation
// Description: Checks loaded settings and resolves them into the
//              converter, multiplier and logger they describe.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial rule-based validation
// - 2026-10-14 v0.2.0: Fixed rules for the epochx settings, builders

package config

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	mdwerror "github.com/msto63/epochx/foundation/core/error"
	mdwlog "github.com/msto63/epochx/foundation/core/log"
	"github.com/msto63/epochx/foundation/utils/timex"
)

// ValidationResult contains the results of settings validation
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// structValidator checks the validate tags, reporting fields by their
// config key (general.time_t_bits)
var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Check validates every setting and collects all problems
func (s *Settings) Check() ValidationResult {
	result := ValidationResult{Valid: true}
	add := func(format string, args ...interface{}) {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf(format, args...))
	}

	var failed map[string]bool
	if err := structValidator.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			add("%v", err)
			return result
		}
		failed = make(map[string]bool, len(verrs))
		for _, fe := range verrs {
			key := fe.Namespace()
			if i := strings.IndexByte(key, '.'); i >= 0 {
				key = key[i+1:]
			}
			failed[key] = true
			switch fe.Tag() {
			case "required":
				add("%s: must be set", key)
			case "oneof":
				add("%s: must be one of %s, got %v", key, fe.Param(), fe.Value())
			default:
				add("%s: failed %s check", key, fe.Tag())
			}
		}
	}

	if _, err := s.Location(); err != nil && !failed["general.timezone"] {
		add("general.timezone: unknown time zone %q", s.General.Timezone)
	}
	if _, err := timex.ParseMultiplier(s.General.Multiply); err != nil && !failed["general.multiply"] {
		add("general.multiply: must be plain, shift or default, got %q", s.General.Multiply)
	}
	if _, err := mdwlog.ParseLevel(s.Log.Level); err != nil && !failed["log.level"] {
		add("log.level: unknown level %q", s.Log.Level)
	}
	if _, err := mdwlog.ParseFormat(s.Log.Format); err != nil && !failed["log.format"] {
		add("log.format: must be json or text, got %q", s.Log.Format)
	}
	return result
}

// Validate returns a CodeInvalidConfig error listing every problem
func (s *Settings) Validate() error {
	result := s.Check()
	if result.Valid {
		return nil
	}
	return mdwerror.New("invalid configuration: "+strings.Join(result.Errors, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", result.Errors).
		WithDetail("source", s.source)
}

// Location resolves general.timezone
func (s *Settings) Location() (*time.Location, error) {
	switch strings.ToLower(s.General.Timezone) {
	case "", "local":
		return time.Local, nil
	case "utc":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(s.General.Timezone)
	if err != nil {
		return nil, mdwerror.Wrap(err, "unknown time zone").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Location").
			WithDetail("timezone", s.General.Timezone)
	}
	return loc, nil
}

// Multiplier resolves general.multiply
func (s *Settings) Multiplier() (timex.Multiplier, error) {
	return timex.ParseMultiplier(s.General.Multiply)
}

// Normalizer builds the calendar backend, bounded to 32-bit time_t when
// general.time_t_bits is 32
func (s *Settings) Normalizer() (timex.Normalizer, error) {
	loc, err := s.Location()
	if err != nil {
		return nil, err
	}
	var n timex.Normalizer = timex.LocationNormalizer{Location: loc}
	if s.General.TimeTBits == 32 {
		n = timex.TimeT32(n)
	}
	return n, nil
}

// Logger builds a logger writing to output per the log section
func (s *Settings) Logger(output io.Writer) (*mdwlog.Logger, error) {
	level, err := mdwlog.ParseLevel(s.Log.Level)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log level").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Logger").
			WithDetail("level", s.Log.Level)
	}
	format, err := mdwlog.ParseFormat(s.Log.Format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log format").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Logger").
			WithDetail("format", s.Log.Format)
	}
	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   "epochx",
	}), nil
}

// Converter builds the converter described by the settings. A nil logger
// disables conversion logging.
func (s *Settings) Converter(logger *mdwlog.Logger) (*timex.Converter, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	mul, err := s.Multiplier()
	if err != nil {
		return nil, err
	}
	norm, err := s.Normalizer()
	if err != nil {
		return nil, err
	}
	opts := []timex.Option{
		timex.WithParser(timex.NewParser(timex.WithMultiplier(mul))),
		timex.WithNormalizer(norm),
	}
	if logger != nil {
		opts = append(opts, timex.WithLogger(logger))
	}
	return timex.NewConverter(opts...), nil
}
