// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	prune_service "code.gitea.io/transprune/services/prune"

	"github.com/urfave/cli/v2"
)

func cmdVerify() *cli.Command {
	return &cli.Command{
		Name:        "verify",
		Usage:       "Report placeholder records without changing any file",
		Description: `Runs the same matching as "clean" in memory. Use "--exit-code" to fail when placeholder records are found, eg: in a CI job.`,
		ArgsUsage:   "[FILE|GLOB]...",
		Flags: append(pruneFlags(),
			&cli.BoolFlag{
				Name:  "exit-code",
				Usage: "Exit with 1 when any file holds placeholder records",
			},
		),
		Action: runVerify,
	}
}

func runVerify(c *cli.Context) error {
	opts, entries, err := newPruneOptions(c)
	if err != nil {
		return err
	}

	summary, err := prune_service.Verify(c.Context, opts, entries)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if err := writeReports(c, summary); err != nil {
		return err
	}
	if c.Bool("exit-code") && summary.HasPlaceholders() {
		return cli.Exit(fmt.Sprintf("%d placeholder record(s) found", summary.TotalRemoved), 1)
	}
	return nil
}
