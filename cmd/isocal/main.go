// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command isocal is a calculator for ISO 8601 dates, times and periods.
//
// Usage:
//
//	isocal between 2023-01-15 2024-03-20
//	isocal until --unit Hours 2007-12-03T10:15:30Z 2007-12-04T00:00:00Z
//	isocal plus 2023-01-31 P1M
//	isocal now --offset +01:00
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"gonih.org/chrono/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Commands report their own failures; anything else is a usage error.
		var exit *cli.ExitError
		if !errors.As(err, &exit) {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(cli.ExitCommandError)
		}
		os.Exit(exit.Code)
	}
}
