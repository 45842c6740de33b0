// Package log provides structured logging for the epochx tools.
//
// Package: log
// Title: epochx Structured Logging
// Description: Leveled logger with persistent context fields, JSON and text
//              output, and integration with the structured error package.
//              Loggers are immutable: every With* call returns a new logger.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-14 v0.2.0: Reduced to synchronous JSON/text output
//
// Usage:
//
//	logger := log.New().WithName("epochx").WithFormat(log.FormatText)
//	logger.Debug("converted", log.Fields{"input": s, "epoch": secs})
//	logger.LogError(err)
package log
