// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"slices"

	prune_module "code.gitea.io/transprune/modules/prune"
	"code.gitea.io/transprune/modules/setting"
	"code.gitea.io/transprune/modules/util"
	prune_service "code.gitea.io/transprune/services/prune"

	"github.com/urfave/cli/v2"
)

// pruneFlags are shared by "clean" and "verify"
func pruneFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "strategy",
			Usage: "Matching strategy: " + prune_module.StrategyNames() + " (defaults to [prune].STRATEGY)",
		},
		&cli.StringFlag{
			Name:  "attribute",
			Usage: "Attribute holding the placeholder (defaults to [prune].ATTRIBUTE)",
		},
		&cli.StringFlag{
			Name:  "marker",
			Usage: "Placeholder value (defaults to [prune].MARKER)",
		},
		&cli.IntFlag{
			Name:  "sample",
			Usage: "Number of removed keys printed per file, -1 prints all (defaults to [prune].SAMPLE_SIZE)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: `Glob of files to skip, "**" crosses directories (may be repeated, replaces [prune].EXCLUDE)`,
		},
		&cli.BoolFlag{
			Name:  "allow-charset-conversion",
			Usage: "Convert non UTF-8 files to UTF-8 instead of failing them",
		},
		&cli.BoolFlag{
			Name:  "diff",
			Usage: "Print the removed lines of every changed file",
		},
		&cli.StringFlag{
			Name:  "report",
			Usage: `Write a JSON report to the file, "-" writes it to stdout`,
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Only log errors",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Log debug information",
		},
	}
}

func cmdClean() *cli.Command {
	return &cli.Command{
		Name:  "clean",
		Usage: "Remove placeholder records from translation files",
		Description: `Removes every record whose attribute is set to the placeholder marker and rewrites the file.
Files are taken from the arguments, or from [prune].FILES when no argument is given.
Arguments may be globs like "lib/**/*_translations.dart". A file which can't be read or decoded
is reported and skipped, the other files are still processed.`,
		ArgsUsage: "[FILE|GLOB]...",
		Flags: append(pruneFlags(),
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"n"},
				Usage:   "Show what would be removed without writing any file",
			},
		),
		Action: runClean,
	}
}

// newPruneOptions merges the command flags over the loaded settings
func newPruneOptions(c *cli.Context) (*prune_service.Options, []string, error) {
	if c.IsSet("exclude") {
		if err := setting.SetPruneExclude(c.StringSlice("exclude")); err != nil {
			return nil, nil, err
		}
	}

	strategyName := setting.Prune.Strategy
	if c.IsSet("strategy") {
		strategyName = c.String("strategy")
	}
	strategy, err := prune_module.ParseStrategy(strategyName)
	if err != nil {
		return nil, nil, err
	}

	rule := prune_module.Rule{Attribute: setting.Prune.Attribute, Marker: setting.Prune.Marker}
	if c.IsSet("attribute") {
		rule.Attribute = c.String("attribute")
	}
	if c.IsSet("marker") {
		rule.Marker = c.String("marker")
	}

	opts := &prune_service.Options{
		Filter:                 prune_module.Options{Strategy: strategy, Rule: rule},
		DryRun:                 c.Bool("dry-run"),
		ShowDiff:               c.Bool("diff"),
		SampleSize:             setting.Prune.SampleSize,
		AllowCharsetConversion: setting.Prune.AllowCharsetConversion || c.Bool("allow-charset-conversion"),
		AnsiCharset:            setting.Prune.AnsiCharset,
		IsExcluded:             setting.IsPruneExcluded,
		Out:                    c.App.Writer,
	}
	if c.IsSet("sample") {
		opts.SampleSize = c.Int("sample")
	}

	entries := slices.Clone(c.Args().Slice())
	if len(entries) == 0 {
		entries = slices.Clone(setting.Prune.Files)
	}
	if len(entries) == 0 {
		return nil, nil, util.NewInvalidArgumentErrorf("no files given, pass them as arguments or set [prune].FILES in %s", setting.CustomConf)
	}
	for i := range entries {
		entries[i] = setting.ResolvePath(entries[i])
	}
	return opts, entries, nil
}

func writeReports(c *cli.Context, summary *prune_service.Summary) error {
	prune_service.WriteSummary(c.App.Writer, summary)
	if report := c.String("report"); report != "" {
		if report != "-" {
			report = setting.ResolvePath(report)
		}
		if err := prune_service.WriteJSONReport(c.App.Writer, report, summary); err != nil {
			return err
		}
	}
	return nil
}

func runClean(c *cli.Context) error {
	opts, entries, err := newPruneOptions(c)
	if err != nil {
		return err
	}

	summary, err := prune_service.Run(c.Context, opts, entries)
	if err != nil {
		if summary != nil {
			_ = writeReports(c, summary)
		}
		return fmt.Errorf("clean: %w", err)
	}
	return writeReports(c, summary)
}
