// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides a structured logging abstraction built on top of slog.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	logutil.Info("cluster url resolved", "source", "primary")
//	logutil.Warn("invalid BULK_CONCURRENCY, using default", "value", raw)
//
// # Component Loggers
//
// Startup code logs through a component logger:
//
//	log := logutil.NewLogger("bonsai")
//	log.Info("initializing default client", "url", redacted)
//
// Component loggers are muted when APP_ENV or GO_ENV is "test", so test
// suites that run the initializer do not print connection details.
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set BONSAI_DEBUG=true environment variable
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are output as JSON:
//
//	{"time":"2024-01-15T10:30:00Z","level":"INFO","msg":"cluster url resolved","source":"primary"}
//
// Otherwise, logs use a human-readable text format:
//
//	time=2024-01-15T10:30:00Z level=INFO msg="cluster url resolved" source=primary
package logutil
