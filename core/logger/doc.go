// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) for a command-line sync tool.
//
// # Run Correlation
//
// Every sync invocation is tagged with a run id. The WithRunID helper attaches
// a freshly generated UUID to the log entry, ensuring that all logs belonging
// to one push or pull can be correlated even when output from several runs is
// collected in one place.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithRunID(log)
//	log.Info("Push started")
package logger
