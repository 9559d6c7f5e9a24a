// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/spf13/cobra"

	"gonih.org/chrono"
)

// BetweenResult is the JSON payload of the between command.
type BetweenResult struct {
	Start  chrono.LocalDate `json:"start"`
	End    chrono.LocalDate `json:"end"`
	Period chrono.Period    `json:"period"`
	Years  int              `json:"years"`
	Months int              `json:"months"`
	Days   int              `json:"days"`
}

// NewBetweenCommand creates the between command.
func NewBetweenCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "between <start> <end>",
		Short: "Print the period between two dates",
		Long: `Print the period from start (inclusive) to end (exclusive) in years,
months and days, such as P1Y2M3D. The period is negative if end is before
start.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBetween(rootOpts, args[0], args[1], cmd)
		},
	}
	return cmd
}

func runBetween(opts *RootOptions, start, end string, cmd *cobra.Command) error {
	out := opts.formatter(cmd)
	s, err := chrono.ParseLocalDate(start)
	if err != nil {
		return out.Fail("invalid start", err)
	}
	e, err := chrono.ParseLocalDate(end)
	if err != nil {
		return out.Fail("invalid end", err)
	}
	p := chrono.PeriodBetween(s, e)
	opts.logger().Debug("computed period", "start", s, "end", e, "period", p)
	return out.Success(p.String(), BetweenResult{
		Start:  s,
		End:    e,
		Period: p,
		Years:  p.Years(),
		Months: p.Months(),
		Days:   p.Days(),
	})
}
