package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pkt.systems/asciiwire"
)

func TestResolveCells(t *testing.T) {
	cells, err := resolveCells("table")
	require.NoError(t, err)
	require.Equal(t, 2, cells('設'))

	cells, err = resolveCells("Terminal")
	require.NoError(t, err)
	require.Equal(t, 0, cells('\u0301'))

	_, err = resolveCells("nope")
	require.Error(t, err)
}

func writeInput(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wire.md")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRunRendersFileAtWidth(t *testing.T) {
	path := writeInput(t, "# component: panel\nHi\n")
	var stdout, stderr bytes.Buffer
	code := run([]string{"--width", "10", path}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	require.Equal(t, "+--------+\n| Hi     |\n+--------+\n", stdout.String())
}

func TestRunDefaultsToEightyColumns(t *testing.T) {
	path := writeInput(t, "# component: header\nTitle\n")
	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, strings.Repeat("=", 80), lines[0])
}

func TestRunRejectsNonPositiveWidth(t *testing.T) {
	path := writeInput(t, "# component: panel\nHi\n")
	for _, width := range []string{"0", "-3"} {
		var stdout, stderr bytes.Buffer
		code := run([]string{"--width=" + width, path}, &stdout, &stderr)
		require.Equal(t, 2, code)
		require.Contains(t, stderr.String(), "must be positive")
		require.Empty(t, stdout.String())
	}
}

func TestRunRejectsNonNumericWidth(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--width", "wide", "x.md"}, &stdout, &stderr)
	require.Equal(t, 2, code)
}

func TestRunMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{filepath.Join(t.TempDir(), "missing.md")}, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.NotEmpty(t, stderr.String())
}

func TestRunPrintsGuide(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"llm"}, &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Equal(t, asciiwire.Guide(), stdout.String())
	require.Contains(t, stdout.String(), "layout:")
}

func TestRunWritesOutputFile(t *testing.T) {
	path := writeInput(t, "# plain text\n")
	out := filepath.Join(t.TempDir(), "nested", "out.txt")
	var stdout, stderr bytes.Buffer
	code := run([]string{"-o", out, "-w", "20", path}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	require.Empty(t, stdout.String())
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "plain text\n", string(data))
}

func TestRunRendersEachInputAsItsOwnDocument(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.md")
	second := filepath.Join(dir, "b.md")
	require.NoError(t, os.WriteFile(first, []byte("# component: panel\nfirst"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("---\nwidth: 30\n---\n# component: nav\nHome\n"), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-w", "12", first, second}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	require.Equal(t, strings.Join([]string{
		"+----------+",
		"| first    |",
		"+----------+",
		strings.Repeat(" ", 12),
		"    Home    ",
		strings.Repeat(" ", 12),
	}, "\n")+"\n", stdout.String())
}

func TestRunWithoutInputsPrintsUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)
	require.Equal(t, 2, code)
	require.Contains(t, stderr.String(), "Usage: asciiwire")
}
