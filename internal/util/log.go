package util

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go-dexprobe/internal/common"
)

// Logger provides utility functions for consistent logging.
type Logger struct{}

// NewLogger creates a new Logger instance.
func NewLogger() *Logger {
	return &Logger{}
}

// withFields attaches optional key-value pairs to an event.
func withFields(event *zerolog.Event, fields []interface{}) *zerolog.Event {
	for i := 0; i+1 < len(fields); i += 2 {
		event = event.Interface(fields[i].(string), fields[i+1])
	}
	return event
}

// Error logs an error with the specified error code, message, and optional fields.
func (l *Logger) Error(err error, errorCode common.ErrorCode, errorMsg common.ErrorMessage, msg string, fields ...interface{}) {
	event := log.Error().
		Err(err).
		Str("error_code", errorCode.String()).
		Str("error_message", errorMsg.String())

	withFields(event, fields).Msg(msg)
}

// Warn logs a warning with the specified error code, message, and optional fields.
func (l *Logger) Warn(errorCode common.ErrorCode, errorMsg common.ErrorMessage, msg string, fields ...interface{}) {
	event := log.Warn().
		Str("error_code", errorCode.String()).
		Str("error_message", errorMsg.String())

	withFields(event, fields).Msg(msg)
}

// Info logs an info message with optional fields.
func (l *Logger) Info(msg string, fields ...interface{}) {
	withFields(log.Info(), fields).Msg(msg)
}

// Debug logs a debug message with optional fields.
func (l *Logger) Debug(msg string, fields ...interface{}) {
	withFields(log.Debug(), fields).Msg(msg)
}
