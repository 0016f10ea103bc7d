// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package prune

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"code.gitea.io/transprune/modules/json"
	"code.gitea.io/transprune/modules/log"
	prune_module "code.gitea.io/transprune/modules/prune"
	"code.gitea.io/transprune/modules/setting"
	"code.gitea.io/transprune/modules/test"
	"code.gitea.io/transprune/modules/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wordTable = `const wordTranslations = {
  'dar': { 'translation': 'Unknown' },
  'bahar': { 'translation': 'sea' },
  'genn': {
    'translation': 'Unknown',
  },
  'xita': { 'translation': 'Unknown', 'note': 'rain' },
};
`

const completeTable = `const completeTranslations = {
  'dar': { 'translation': 'Unknown' },
  'ktieb': { 'translation': 'book' },
};
`

func newTestOptions(strategy prune_module.Strategy) (*Options, *strings.Builder) {
	out := &strings.Builder{}
	return &Options{
		Filter:     prune_module.Options{Strategy: strategy, Rule: prune_module.DefaultRule()},
		SampleSize: 10,
		Out:        out,
	}, out
}

func TestRunBatch(t *testing.T) {
	dir := t.TempDir()
	test.WriteTestFiles(t, dir, map[string]string{
		"word_translations.dart":          wordTable,
		"word_translations_complete.dart": completeTable,
	})
	first := filepath.Join(dir, "word_translations.dart")
	second := filepath.Join(dir, "word_translations_complete.dart")
	missing := filepath.Join(dir, "missing.dart")

	opts, out := newTestOptions(prune_module.StrategyLenient)
	opts.SampleSize = 2
	summary, err := Run(context.Background(), opts, []string{first, missing, second})
	require.NoError(t, err)

	require.Len(t, summary.Files, 3)
	assert.Equal(t, 4, summary.TotalRemoved)
	assert.Equal(t, []string{"dar", "genn", "xita"}, summary.UniqueKeys)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 4, summary.TotalFound())

	assert.Equal(t, []string{"dar", "genn", "xita"}, summary.Files[0].Keys)
	assert.True(t, summary.Files[0].Written)
	assert.ErrorIs(t, summary.Files[1].Err(), util.ErrNotExist)
	assert.Contains(t, summary.Files[1].Error, "missing.dart")
	assert.Equal(t, []string{"dar"}, summary.Files[2].Keys)

	assert.Equal(t, "const wordTranslations = {\n  'bahar': { 'translation': 'sea' },\n};\n", test.ReadTestFile(t, first))
	assert.Equal(t, "const completeTranslations = {\n  'ktieb': { 'translation': 'book' },\n};\n", test.ReadTestFile(t, second))

	output := out.String()
	assert.Contains(t, output, "Processing "+first+"...\n")
	assert.Contains(t, output, "Found 3 entries with 'translation': 'Unknown'\n")
	assert.Contains(t, output, "Removed 3 entries with 'translation': 'Unknown'\n")
	assert.Contains(t, output, "Removed words: dar, genn ...\n")
	assert.Contains(t, output, "Removed words: dar\n")
	assert.Contains(t, output, "Remaining 'translation': 'Unknown' entries: 0\n")
	assert.Contains(t, output, "Processing "+missing+"...\n")

	summaryOut := &strings.Builder{}
	WriteSummary(summaryOut, summary)
	assert.Equal(t, "\n=== SUMMARY ===\nTotal entries removed: 4\nTotal unique words removed: 3\n1 of 3 file(s) failed\n", summaryOut.String())
}

func TestRunWriteFailure(t *testing.T) {
	dir := t.TempDir()
	test.WriteTestFiles(t, dir, map[string]string{
		"locked.dart": completeTable,
		"words.dart":  completeTable,
	})
	locked := filepath.Join(dir, "locked.dart")
	words := filepath.Join(dir, "words.dart")

	defer test.MockVariableValue(&writeFile, func(path string, content []byte) error {
		if path == locked {
			return util.NewPermissionDeniedErrorf("open %s: read-only file system", path)
		}
		return util.WriteFileKeepMode(path, content)
	})()
	logBuf := &strings.Builder{}
	log.SetConsoleLogger(log.DEFAULT, logBuf, log.WriterMode{Level: log.INFO, Flags: -1})
	defer log.SetConsoleLogger(log.DEFAULT, os.Stderr, log.WriterMode{Level: log.INFO, Flags: log.LconsoleFlags})

	opts, out := newTestOptions(prune_module.StrategyLenient)
	summary, err := Run(context.Background(), opts, []string{locked, words})
	require.NoError(t, err)

	require.Len(t, summary.Files, 2)
	assert.Equal(t, 1, summary.Failed)
	assert.ErrorIs(t, summary.Files[0].Err(), util.ErrPermissionDenied)
	assert.False(t, summary.Files[0].Written)
	assert.Contains(t, logBuf.String(), "Error processing "+locked+": write: open "+locked)
	assert.Equal(t, completeTable, test.ReadTestFile(t, locked))

	assert.True(t, summary.Files[1].Written)
	assert.Equal(t, 1, summary.TotalRemoved)
	assert.Contains(t, out.String(), "Processing "+words+"...\n")
	assert.Equal(t, "const completeTranslations = {\n  'ktieb': { 'translation': 'book' },\n};\n", test.ReadTestFile(t, words))
}

func TestRunStrictKeepsExtraAttributes(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "words.dart")
	test.WriteTestFiles(t, dir, map[string]string{"words.dart": wordTable})

	opts, out := newTestOptions(prune_module.StrategyStrict)
	summary, err := Run(context.Background(), opts, []string{p})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalRemoved)
	assert.Zero(t, summary.Failed)
	assert.Equal(t, 1, summary.Files[0].Remaining)
	assert.Contains(t, test.ReadTestFile(t, p), "'xita'")
	assert.Contains(t, out.String(), "Remaining 'translation': 'Unknown' entries: 1\n")

	summaryOut := &strings.Builder{}
	WriteSummary(summaryOut, summary)
	assert.Contains(t, summaryOut.String(), "Files processed successfully!\n")
}

func TestRunDryRunWithDiff(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "words.dart")
	test.WriteTestFiles(t, dir, map[string]string{"words.dart": completeTable})

	opts, out := newTestOptions(prune_module.StrategyLenient)
	opts.DryRun = true
	opts.ShowDiff = true
	summary, err := Run(context.Background(), opts, []string{p})
	require.NoError(t, err)

	assert.Equal(t, completeTable, test.ReadTestFile(t, p))
	assert.False(t, summary.Files[0].Written)
	assert.Equal(t, 1, summary.TotalRemoved)
	output := out.String()
	assert.Contains(t, output, "-  'dar': { 'translation': 'Unknown' },\n")
	assert.Contains(t, output, "Would remove 1 entries with 'translation': 'Unknown'\n")
	assert.Contains(t, output, "(dry run, file left unchanged)\n")

	summaryOut := &strings.Builder{}
	WriteSummary(summaryOut, summary)
	assert.Contains(t, summaryOut.String(), "Total entries to remove: 1\n")
}

func TestRunUnchangedFileIsNotWritten(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "clean.dart")
	content := "const t = {\r\n  'ktieb': { 'translation': 'book' },\r\n};"
	test.WriteTestFiles(t, dir, map[string]string{"clean.dart": content})

	opts, _ := newTestOptions(prune_module.StrategyLenient)
	summary, err := Run(context.Background(), opts, []string{p})
	require.NoError(t, err)
	assert.False(t, summary.Files[0].Written)
	assert.Zero(t, summary.TotalRemoved)
	assert.Equal(t, content, test.ReadTestFile(t, p))
}

func TestRunKeepsBOM(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bom.dart")
	require.NoError(t, os.WriteFile(p, []byte("\xef\xbb\xbf"+completeTable), 0o644))

	opts, _ := newTestOptions(prune_module.StrategyStrict)
	summary, err := Run(context.Background(), opts, []string{p})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalRemoved)
	assert.Equal(t, "\xef\xbb\xbfconst completeTranslations = {\n  'ktieb': { 'translation': 'book' },\n};\n", test.ReadTestFile(t, p))
}

func TestRunUndecodable(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "latin1.dart")
	line := "'caf\xe9': { 'translation': 'Unknown' },\n'th\xe9': { 'translation': 'tea' },\n"
	require.NoError(t, os.WriteFile(p, []byte(strings.Repeat(line, 30)), 0o644))

	opts, _ := newTestOptions(prune_module.StrategyLenient)
	summary, err := Run(context.Background(), opts, []string{p})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)
	assert.ErrorIs(t, summary.Files[0].Err(), ErrUndecodable)
	assert.Equal(t, strings.Repeat(line, 30), test.ReadTestFile(t, p))

	opts.AllowCharsetConversion = true
	summary, err = Run(context.Background(), opts, []string{p})
	require.NoError(t, err)
	assert.Zero(t, summary.Failed)
	assert.Equal(t, 30, summary.TotalRemoved)
	assert.Equal(t, []string{"café"}, summary.UniqueKeys)
	assert.Equal(t, strings.Repeat("'thé': { 'translation': 'tea' },\n", 30), test.ReadTestFile(t, p))
}

func TestRunGlobAndExclude(t *testing.T) {
	dir := t.TempDir()
	test.WriteTestFiles(t, dir, map[string]string{
		"lib/utils/a.dart":           completeTable,
		"lib/utils/nested/b.dart":    completeTable,
		"lib/utils/generated.g.dart": completeTable,
	})
	defer test.MockVariableValue(&setting.Prune)()
	require.NoError(t, setting.SetPruneExclude([]string{"**/*.g.dart"}))

	opts, _ := newTestOptions(prune_module.StrategyLenient)
	opts.IsExcluded = setting.IsPruneExcluded
	a := filepath.Join(dir, "lib", "utils", "a.dart")
	summary, err := Run(context.Background(), opts, []string{
		a,
		filepath.Join(dir, "lib", "**", "*.dart"),
		filepath.Join(dir, "nothing", "*.dart"),
	})
	require.NoError(t, err)

	var paths []string
	for _, f := range summary.Files {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{
		a,
		filepath.Join(dir, "lib", "utils", "nested", "b.dart"),
		filepath.Join(dir, "nothing", "*.dart"),
	}, paths)
	assert.Equal(t, 2, summary.TotalRemoved)
	assert.Equal(t, 1, summary.Failed)
	assert.ErrorIs(t, summary.Files[2].Err(), util.ErrNotExist)
	assert.Equal(t, completeTable, test.ReadTestFile(t, filepath.Join(dir, "lib", "utils", "generated.g.dart")))
}

func TestRunInvalidOptions(t *testing.T) {
	opts, _ := newTestOptions("fuzzy")
	_, err := Run(context.Background(), opts, nil)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)

	opts, _ = newTestOptions(prune_module.StrategyLenient)
	opts.Filter.Rule.Marker = ""
	_, err = Run(context.Background(), opts, nil)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestRunCanceled(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "words.dart")
	test.WriteTestFiles(t, dir, map[string]string{"words.dart": completeTable})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	opts, _ := newTestOptions(prune_module.StrategyLenient)
	summary, err := Run(ctx, opts, []string{p})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, summary.Files)
	assert.Equal(t, completeTable, test.ReadTestFile(t, p))
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "words.dart")
	test.WriteTestFiles(t, dir, map[string]string{"words.dart": wordTable})

	opts, _ := newTestOptions(prune_module.StrategyLenient)
	summary, err := Verify(context.Background(), opts, []string{p})
	require.NoError(t, err)
	assert.True(t, summary.DryRun)
	assert.False(t, opts.DryRun)
	assert.True(t, summary.HasPlaceholders())
	assert.Equal(t, wordTable, test.ReadTestFile(t, p))
}

func TestWriteJSONReport(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "words.dart")
	test.WriteTestFiles(t, dir, map[string]string{"words.dart": completeTable})

	opts, _ := newTestOptions(prune_module.StrategyStrict)
	summary, err := Run(context.Background(), opts, []string{p, filepath.Join(dir, "missing.dart")})
	require.NoError(t, err)

	reportFile := filepath.Join(dir, "report.json")
	require.NoError(t, WriteJSONReport(nil, reportFile, summary))

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(test.ReadTestFile(t, reportFile)), &report))
	assert.Equal(t, "strict", report["strategy"])
	assert.Equal(t, "'translation': 'Unknown'", report["assignment"])
	assert.EqualValues(t, 1, report["total_removed"])
	assert.EqualValues(t, 1, report["failed"])
	assert.Equal(t, []any{"dar"}, report["unique_keys"])
	files := report["files"].([]any)
	require.Len(t, files, 2)
	assert.Equal(t, []any{"dar"}, files[0].(map[string]any)["keys"])
	assert.Contains(t, files[1].(map[string]any)["error"], "missing.dart")

	out := &strings.Builder{}
	require.NoError(t, WriteJSONReport(out, "-", summary))
	assert.True(t, json.Valid([]byte(out.String())))
}

func TestLineDiff(t *testing.T) {
	before := "a\n  'dar': { 'translation': 'Unknown' },\r\nb\n"
	after := "a\nb\n"
	assert.Equal(t, "-  'dar': { 'translation': 'Unknown' },\n", LineDiff(before, after))
	assert.Empty(t, LineDiff(after, after))
}
