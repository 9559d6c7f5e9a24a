// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/spf13/cobra"

	"gonih.org/chrono"
)

// NowOptions holds flags for the now command.
type NowOptions struct {
	Offset string
}

// NowResult is the JSON payload of the now command.
type NowResult struct {
	DateTime    chrono.OffsetDateTime `json:"dateTime"`
	Instant     chrono.Instant        `json:"instant"`
	EpochSecond int64                 `json:"epochSecond"`
}

// NewNowCommand creates the now command.
func NewNowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &NowOptions{}

	cmd := &cobra.Command{
		Use:           "now",
		Short:         "Print the current date-time",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNow(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Offset, "offset", "Z", "offset to observe the clock at, such as +01:00")

	return cmd
}

func runNow(rootOpts *RootOptions, opts *NowOptions, cmd *cobra.Command) error {
	out := rootOpts.formatter(cmd)
	off, err := chrono.ParseZoneOffset(opts.Offset)
	if err != nil {
		return out.Fail("invalid offset", err)
	}
	now, err := chrono.OffsetDateTimeNow(chrono.ClockAt(rootOpts.Clock, off))
	if err != nil {
		return out.Fail("cannot read clock", err)
	}
	rootOpts.logger().Debug("sampled clock", "clock", rootOpts.Clock, "offset", off)
	return out.Success(now.String(), NowResult{
		DateTime:    now,
		Instant:     now.ToInstant(),
		EpochSecond: now.ToEpochSecond(),
	})
}
