// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the command tree of the isocal calculator.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"gonih.org/chrono"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Clock is sampled by the now command.
	Clock chrono.Clock
	// Logger is set up by the root command before any subcommand runs.
	Logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command of isocal, reading the system
// clock.
func NewRootCommand() *cobra.Command {
	return newRootCommand(chrono.SystemClockUTC())
}

func newRootCommand(clock chrono.Clock) *cobra.Command {
	opts := &RootOptions{Clock: clock}

	cmd := &cobra.Command{
		Use:   "isocal",
		Short: "isocal - ISO 8601 calendar calculator",
		Long: `A calculator for ISO 8601 dates, times and periods.

All arithmetic uses the proleptic Gregorian calendar and fixed UTC offsets.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			opts.Logger = newLogger(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewBetweenCommand(opts))
	cmd.AddCommand(NewUntilCommand(opts))
	cmd.AddCommand(NewPlusCommand(opts))
	cmd.AddCommand(NewNowCommand(opts))

	return cmd
}

// newLogger returns a text logger on w. Diagnostics are only shown with
// --verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format: o.Format,
		Writer: cmd.OutOrStdout(),
	}
}

func (o *RootOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}
