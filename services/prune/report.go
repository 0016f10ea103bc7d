// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package prune

import (
	"fmt"
	"io"
	"os"

	"code.gitea.io/transprune/modules/json"
	prune_module "code.gitea.io/transprune/modules/prune"
	"code.gitea.io/transprune/modules/util"

	"github.com/dustin/go-humanize"
)

// FileResult is the outcome of processing one file
type FileResult struct {
	Path    string `json:"path"`
	Charset string `json:"charset,omitempty"`

	Found     int      `json:"found"`
	Removed   int      `json:"removed"`
	Remaining int      `json:"remaining"`
	Keys      []string `json:"keys"`

	SizeBefore int64 `json:"size_before"`
	SizeAfter  int64 `json:"size_after"`
	Written    bool  `json:"written"`

	Error string `json:"error,omitempty"`
	err   error
}

// Err returns the error which stopped the processing of the file
func (r *FileResult) Err() error {
	return r.err
}

func (r *FileResult) fail(err error) *FileResult {
	r.err = err
	r.Error = err.Error()
	return r
}

// Summary aggregates the results of a batch
type Summary struct {
	Strategy   prune_module.Strategy `json:"strategy"`
	Assignment string                `json:"assignment"`
	DryRun     bool                  `json:"dry_run"`

	Files        []*FileResult `json:"files"`
	TotalRemoved int           `json:"total_removed"`
	UniqueKeys   []string      `json:"unique_keys"`
	Failed       int           `json:"failed"`
}

func (s *Summary) add(r *FileResult) {
	s.Files = append(s.Files, r)
	if r.err != nil {
		s.Failed++
		return
	}
	s.TotalRemoved += r.Removed
	s.UniqueKeys = util.SliceUniqueKeepOrder(append(s.UniqueKeys, r.Keys...))
}

// TotalFound sums the placeholder assignments found in all processed files
func (s *Summary) TotalFound() int {
	total := 0
	for _, r := range s.Files {
		total += r.Found
	}
	return total
}

// writeFileReport prints the per-file statistics after filtering
func writeFileReport(w io.Writer, r *FileResult, assignment string, sampleSize int, dryRun bool) {
	verb := "Removed"
	if dryRun {
		verb = "Would remove"
	}
	_, _ = fmt.Fprintf(w, "%s %d entries with %s\n", verb, r.Removed, assignment)
	if r.Removed > 0 {
		_, _ = fmt.Fprintf(w, "%s words: %s\n", verb, util.JoinWithEllipsis(r.Keys, sampleSize, ", "))
	}
	if r.SizeAfter != r.SizeBefore {
		_, _ = fmt.Fprintf(w, "Size: %s -> %s\n", humanize.Bytes(uint64(r.SizeBefore)), humanize.Bytes(uint64(r.SizeAfter)))
	}
	_, _ = fmt.Fprintf(w, "Remaining %s entries: %d\n", assignment, r.Remaining)
	if dryRun {
		_, _ = fmt.Fprintln(w, "(dry run, file left unchanged)")
	}
}

// WriteSummary prints the aggregate block at the end of a batch
func WriteSummary(w io.Writer, s *Summary) {
	_, _ = fmt.Fprintf(w, "\n=== SUMMARY ===\n")
	if s.DryRun {
		_, _ = fmt.Fprintf(w, "Total entries to remove: %d\n", s.TotalRemoved)
		_, _ = fmt.Fprintf(w, "Total unique words to remove: %d\n", len(s.UniqueKeys))
	} else {
		_, _ = fmt.Fprintf(w, "Total entries removed: %d\n", s.TotalRemoved)
		_, _ = fmt.Fprintf(w, "Total unique words removed: %d\n", len(s.UniqueKeys))
	}
	if s.Failed == 0 {
		_, _ = fmt.Fprintln(w, "Files processed successfully!")
	} else {
		_, _ = fmt.Fprintf(w, "%d of %d file(s) failed\n", s.Failed, len(s.Files))
	}
}

// WriteJSONReport writes the summary as indented JSON to the file, "-" means w
func WriteJSONReport(w io.Writer, file string, s *Summary) error {
	bs, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	bs = append(bs, '\n')
	if file == "-" {
		_, err = w.Write(bs)
		return err
	}
	if err := os.WriteFile(file, bs, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", file, err)
	}
	return nil
}
