package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestViewPrintsPage(t *testing.T) {
	out, err := run(t, "view", "--seed", "7", "--rows", "12", "--page", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// header, two rows, blank line, summary
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(out, "Campaign "), "header starts at column 0: %q", lines[0])
	for _, row := range lines[1:3] {
		assert.NotEqual(t, byte(' '), row[0], "campaign name is left-aligned: %q", row)
	}
	assert.Equal(t, "Showing 11-12 of 12 campaigns (page 2 of 2, sorted by revenue:desc)", lines[4])
}

func TestViewPastLastPage(t *testing.T) {
	out, err := run(t, "view", "--rows", "5", "--page", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 0-0 of 5 campaigns (page 9 of 1")
}

func TestViewRejectsBadFlags(t *testing.T) {
	for _, args := range [][]string{
		{"view", "--page", "0"},
		{"view", "--sort", "budget"},
		{"view", "--dir", "up"},
		{"view", "--status", "archived"},
		{"view", "--from", "01/02/2024"},
		{"view", "--range", "fortnight"},
		{"view", "--locale", "!!"},
	} {
		_, err := run(t, args...)
		assert.Error(t, err, args)
	}
}

func TestExportWritesCSV(t *testing.T) {
	base := filepath.Join(t.TempDir(), "paused only")

	out, err := run(t, "export", "--seed", "3", "--rows", "30", "--status", "paused", "--out", base)
	require.NoError(t, err)

	path := filepath.Join(filepath.Dir(base), "paused-only.csv")
	assert.Contains(t, out, path)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)
	assert.Equal(t, "Campaign", records[0][0])
	for _, rec := range records[1:] {
		assert.Equal(t, "Paused", rec[7])
	}
}

func TestExportWritesPDF(t *testing.T) {
	base := filepath.Join(t.TempDir(), "report")

	_, err := run(t, "export", "--rows", "8", "--format", "pdf", "--out", base)
	require.NoError(t, err)

	body, err := os.ReadFile(base + ".pdf")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
}

func TestExportReplacesForeignExtension(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "export", "--rows", "4", "--format", "pdf", "--out", filepath.Join(dir, "report.csv"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "report.pdf", entries[0].Name())
}

func TestExportNoData(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "export", "--q", "no campaign has this name", "--out", filepath.Join(dir, "empty"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExportRejectsFormat(t *testing.T) {
	_, err := run(t, "export", "--format", "xlsx", "--out", filepath.Join(t.TempDir(), "x"))
	assert.Error(t, err)
}
