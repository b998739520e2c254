// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Plot Labs

package commands

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

const loggerKey ctxKey = 0

// applyLogger attaches a logger to the command's context, honoring the
// persistent --verbose flag.
func applyLogger(cmd *cobra.Command) {
	level := log.WarnLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = log.DebugLevel
	}
	logger := newLogger(os.Stderr, level)
	cmd.SetContext(context.WithValue(cmd.Context(), loggerKey, logger))
}

// loggerFromCommand retrieves the logger from the command's context.
// If no logger is attached, it returns log.Default().
func loggerFromCommand(cmd *cobra.Command) *log.Logger {
	if l, ok := cmd.Context().Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
