// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import "log/slog"

// ComponentLogger provides component-scoped structured logging.
// Records are sent to whatever global logger is current at call time, so a
// ComponentLogger created before SetupLogger still honours the new settings.
type ComponentLogger struct {
	component string
	fields    []any
	muted     bool
}

// NewLogger creates a Logger scoped to a named component. The logger is
// muted when IsTestEnvironment reports true.
func NewLogger(component string) *ComponentLogger {
	return &ComponentLogger{
		component: component,
		fields:    []any{"component", component},
		muted:     IsTestEnvironment(),
	}
}

// WithFields returns a new Logger with additional fields.
// Fields are provided as alternating key-value pairs.
func (l *ComponentLogger) WithFields(fields ...any) *ComponentLogger {
	merged := make([]any, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)
	return &ComponentLogger{
		component: l.component,
		fields:    merged,
		muted:     l.muted,
	}
}

// Muted returns a copy of the logger with muting switched on or off.
func (l *ComponentLogger) Muted(muted bool) *ComponentLogger {
	return &ComponentLogger{
		component: l.component,
		fields:    l.fields,
		muted:     muted,
	}
}

// IsMuted reports whether the logger drops all records.
func (l *ComponentLogger) IsMuted() bool {
	return l.muted
}

// Component returns the component name for this logger.
func (l *ComponentLogger) Component() string {
	return l.component
}

func (l *ComponentLogger) slogger() *slog.Logger {
	return Logger().With(l.fields...)
}

// Debug logs a message at debug level.
func (l *ComponentLogger) Debug(msg string, args ...any) {
	if l.muted || !IsDebugEnabled() {
		return
	}
	l.slogger().Debug(msg, args...)
}

// Info logs a message at info level.
func (l *ComponentLogger) Info(msg string, args ...any) {
	if l.muted {
		return
	}
	l.slogger().Info(msg, args...)
}

// Warn logs a message at warn level.
func (l *ComponentLogger) Warn(msg string, args ...any) {
	if l.muted {
		return
	}
	l.slogger().Warn(msg, args...)
}

// Error logs a message at error level.
func (l *ComponentLogger) Error(msg string, args ...any) {
	if l.muted {
		return
	}
	l.slogger().Error(msg, args...)
}
