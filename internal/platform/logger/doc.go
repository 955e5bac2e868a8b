// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels, an optional rotating file sink, request-scoped
// loggers carried in context, and a bridge that routes gorm's SQL logging
// through the same handler.
package logger
