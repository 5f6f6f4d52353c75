// Package logger provides structured logging for passgen using zerolog.
//
// It supports JSON and console output, level configuration from config or
// environment, and component-scoped loggers with structured fields.
// Generated passwords are never written to a log line.
//
// # Usage
//
//	log := logger.NewFromEnv("passgen").WithComponent("generator")
//	log.Info("password generated", logger.Fields(logger.FieldLength, 16))
package logger
