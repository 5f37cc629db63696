// Package logging provides structured logging configuration for seedgen.
//
// This package wraps log/slog so that every command logs the same way.
// Logs are diagnostics only: they go to stderr and never mix with the
// generated records written to stdout.
//
// # Usage
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatJSON,
//	})
//	logger, runID := logging.WithRun(logger)
//
//	logger.Debug("calling model", "provider", "gemini")
//
// # Output Formats
//
//   - Text: Human-readable format for terminals
//   - JSON: Structured format for CI pipelines and log collectors
//
// If no logger is provided, use logging.Nop() for a no-op logger.
package logging
