// Package config loads the epochx settings file.
//
// Package: config
// Title: epochx Configuration
// Description: Typed settings read from TOML or YAML, completed with
//              defaults, overridden from EPOCHX_* environment variables and
//              validated before use. Settings build the converter and
//              logger used by the command line tool.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-14 v0.2.0: Typed settings for the epoch converter
//
// Example epochx.toml:
//
//	[general]
//	timezone    = "Europe/Berlin"   # IANA name, "Local" or "UTC"
//	multiply    = "shift"           # plain, shift or default
//	time_t_bits = 64                # 32 emulates a host with a 32-bit time_t
//
//	[log]
//	level  = "warn"
//	format = "text"
//
// The same keys are accepted in YAML. Environment variables override the
// file: EPOCHX_TIMEZONE, EPOCHX_MULTIPLY, EPOCHX_TIME_T_BITS,
// EPOCHX_LOG_LEVEL and EPOCHX_LOG_FORMAT.
package config
