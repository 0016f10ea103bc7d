// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package prune

import (
	"context"
	"errors"
	"fmt"
	"io"

	"code.gitea.io/transprune/modules/charset"
	"code.gitea.io/transprune/modules/log"
	prune_module "code.gitea.io/transprune/modules/prune"
	"code.gitea.io/transprune/modules/util"
)

// ErrUndecodable is returned for files which are not UTF-8 when charset conversion is disabled
var ErrUndecodable = errors.New("content is not valid UTF-8")

// writeFile stores the filtered content, it is replaced in tests
var writeFile = util.WriteFileKeepMode

// Options configures a batch run
type Options struct {
	Filter prune_module.Options

	// DryRun filters in memory only, no file is written
	DryRun bool
	// ShowDiff prints the removed lines of every changed file
	ShowDiff bool
	// SampleSize is the number of removed keys printed per file, negative means all
	SampleSize int

	AllowCharsetConversion bool
	AnsiCharset            string

	// IsExcluded drops matching files from the targets
	IsExcluded func(p string) bool

	// Out receives the human-readable progress, nil discards it
	Out io.Writer
}

func (opts *Options) out() io.Writer {
	if opts.Out == nil {
		return io.Discard
	}
	return opts.Out
}

// Run applies the filter to every target in order. A failing file is logged and recorded in
// the summary, the other files are still processed.
func Run(ctx context.Context, opts *Options, entries []string) (*Summary, error) {
	if err := opts.Filter.Rule.Validate(); err != nil {
		return nil, err
	}
	if _, err := prune_module.ParseStrategy(opts.Filter.Strategy.String()); err != nil {
		return nil, err
	}

	summary := &Summary{
		Strategy:   opts.Filter.Strategy,
		Assignment: opts.Filter.Rule.Assignment(),
		DryRun:     opts.DryRun,
		UniqueKeys: []string{},
	}
	for _, target := range ExpandTargets(entries, opts.IsExcluded) {
		if err := ctx.Err(); err != nil {
			log.Warn("Stopped before %s: %v", target.Path, err)
			return summary, err
		}

		var res *FileResult
		if target.Err != nil {
			res = (&FileResult{Path: target.Path}).fail(target.Err)
		} else {
			res = processFile(opts, target.Path)
		}
		if res.err != nil {
			log.Error("Error processing %s: %v", res.Path, res.err)
		}
		summary.add(res)
	}
	return summary, nil
}

// loadDocument reads the file and returns its content as UTF-8
func loadDocument(opts *Options, path string) (string, string, error) {
	data, err := util.ReadFile(path)
	if err != nil {
		return "", "", err
	}

	convertOpts := charset.ConvertOpts{KeepBOM: true, AnsiCharset: opts.AnsiCharset}
	label, err := charset.DetectEncoding(data, convertOpts)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	if label == "UTF-8" {
		return string(data), label, nil
	}
	if !opts.AllowCharsetConversion {
		return "", label, fmt.Errorf("%w (detected %s)", ErrUndecodable, label)
	}
	content, label, err := charset.ToUTF8(data, convertOpts)
	if err != nil {
		return "", label, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	log.Info("Converted %s from %s to UTF-8", path, label)
	return content, label, nil
}

func processFile(opts *Options, path string) *FileResult {
	w := opts.out()
	res := &FileResult{Path: path}
	assignment := opts.Filter.Rule.Assignment()

	_, _ = fmt.Fprintf(w, "Processing %s...\n", path)
	content, label, err := loadDocument(opts, path)
	res.Charset = label
	if err != nil {
		return res.fail(err)
	}
	res.SizeBefore = int64(len(content))

	filtered, err := prune_module.Filter(content, opts.Filter)
	if err != nil {
		return res.fail(err)
	}
	res.Found = filtered.Found
	res.Removed = filtered.Removed
	res.Keys = filtered.Keys
	res.Remaining = filtered.Remaining
	res.SizeAfter = int64(len(filtered.Content))
	_, _ = fmt.Fprintf(w, "Found %d entries with %s\n", res.Found, assignment)
	log.Debug("%s: %s strategy removed %d of %d", path, opts.Filter.Strategy, res.Removed, res.Found)

	if opts.ShowDiff && filtered.Changed() {
		_, _ = io.WriteString(w, LineDiff(content, filtered.Content))
	}

	if !opts.DryRun && filtered.Changed() {
		if err := writeFile(path, []byte(filtered.Content)); err != nil {
			return res.fail(fmt.Errorf("write: %w", err))
		}
		res.Written = true

		// read the file back so that the remaining count reflects what is on disk
		written, err := util.ReadFile(path)
		if err != nil {
			return res.fail(fmt.Errorf("verify: %w", err))
		}
		res.Remaining = opts.Filter.Rule.CountAssignments(string(written))
		res.SizeAfter = int64(len(written))
	}

	writeFileReport(w, res, assignment, opts.SampleSize, opts.DryRun)
	return res
}
