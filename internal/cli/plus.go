// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/spf13/cobra"

	"gonih.org/chrono"
)

// PlusOptions holds flags for the plus command.
type PlusOptions struct {
	Subtract bool
}

// PlusResult is the JSON payload of the plus command.
type PlusResult struct {
	Date   chrono.LocalDate `json:"date"`
	Period chrono.Period    `json:"period"`
	Result chrono.LocalDate `json:"result"`
}

// NewPlusCommand creates the plus command.
func NewPlusCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlusOptions{}

	cmd := &cobra.Command{
		Use:   "plus <date> <period>",
		Short: "Add a period to a date",
		Long: `Add an ISO 8601 period such as P1M or P1Y2M-3D to a date.

The years and months are added first, clamping the day of month to the end
of a shorter month, followed by the days.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlus(rootOpts, opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Subtract, "minus", false, "subtract the period instead")

	return cmd
}

func runPlus(rootOpts *RootOptions, opts *PlusOptions, date, period string, cmd *cobra.Command) error {
	out := rootOpts.formatter(cmd)
	d, err := chrono.ParseLocalDate(date)
	if err != nil {
		return out.Fail("invalid date", err)
	}
	p, err := chrono.ParsePeriod(period)
	if err != nil {
		return out.Fail("invalid period", err)
	}
	var r chrono.LocalDate
	if opts.Subtract {
		r, err = d.MinusPeriod(p)
	} else {
		r, err = d.PlusPeriod(p)
	}
	if err != nil {
		return out.Fail("cannot add period", err)
	}
	rootOpts.logger().Debug("added period", "date", d, "period", p, "minus", opts.Subtract, "result", r)
	return out.Success(r.String(), PlusResult{Date: d, Period: p, Result: r})
}
