// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// UntilOptions holds flags for the until command.
type UntilOptions struct {
	Unit string
}

// UntilResult is the JSON payload of the until command.
type UntilResult struct {
	Kind   string `json:"kind"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Unit   string `json:"unit"`
	Amount int64  `json:"amount"`
}

// NewUntilCommand creates the until command.
func NewUntilCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &UntilOptions{}

	cmd := &cobra.Command{
		Use:   "until <start> <end>",
		Short: "Print the number of whole units between two values",
		Long: `Print the number of complete units from start to end.

The kind of the arguments is inferred from start: an instant (ending in Z),
an offset date-time, a date-time, a date, a year-month, an offset time or a
time. End is converted to the kind of start.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUntil(rootOpts, opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Unit, "unit", "u", "Days", "unit to measure in (Nanos..Eras)")

	return cmd
}

func runUntil(rootOpts *RootOptions, opts *UntilOptions, start, end string, cmd *cobra.Command) error {
	out := rootOpts.formatter(cmd)
	log := rootOpts.logger()

	u, err := parseUnit(opts.Unit)
	if err != nil {
		return out.Fail("invalid unit", err)
	}
	k, s, err := inferKind(start)
	if err != nil {
		return out.Fail("invalid start", err)
	}
	log.Debug("inferred kind", "kind", k.name, "start", s)
	e, err := k.parse(end)
	if err != nil {
		return out.Fail(fmt.Sprintf("invalid end (expected %s)", k.name), err)
	}
	n, err := s.Until(e, u)
	if err != nil {
		return out.Fail("cannot measure", err)
	}
	log.Debug("measured", "unit", u, "amount", n)
	return out.Success(strconv.FormatInt(n, 10), UntilResult{
		Kind:   k.name,
		Start:  fmt.Sprint(s),
		End:    fmt.Sprint(e),
		Unit:   u.String(),
		Amount: n,
	})
}
