// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels, and carries request-scoped loggers (tagged with the
// request trace ID) through context.Context so that outbound calls and orchestration
// steps log under the inbound request that caused them.
package logger
