// Package main is the passgen command line tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbukum/passgen/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps usage and configuration errors to 2, everything else to 1.
func exitCode(err error) int {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		return 1
	}
	switch appErr.Code {
	case errors.ErrCodeInvalidConfiguration, errors.ErrCodeInvalidArgument, errors.ErrCodeLengthTooShort:
		return 2
	default:
		return 1
	}
}
