package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/maruel/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = `162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689
`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "points.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = subcommands.Run(newApplication(&out, &errOut), args)

	return code, out.String(), errOut.String()
}

func TestBudget(t *testing.T) {
	path := writeInput(t, sampleInput)
	code, out, stderr := runCLI("budget", "-input", path, "-budget", "10", "-top", "3")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "40\n", out)
	assert.Contains(t, stderr, "loaded 20 points, 190 pairs")
}

func TestBudget_Verbose(t *testing.T) {
	path := writeInput(t, sampleInput)
	code, out, stderr := runCLI("budget", "-input", path, "-budget", "1", "-v")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "2\n", out)
	assert.Contains(t, stderr, "162,817,812-425,690,689 merged=true")
}

func TestComplete(t *testing.T) {
	path := writeInput(t, sampleInput)
	code, out, stderr := runCLI("complete", "-input", path)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "25272\n", out)
}

func TestComplete_SinglePoint(t *testing.T) {
	// A single point is already complete and has no final edge to report.
	path := writeInput(t, "1,2,3\n")
	code, out, stderr := runCLI("complete", "-input", path)
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "no final edge")
}

func TestMalformedInput(t *testing.T) {
	path := writeInput(t, "1,2,3\n4,five,6\n")
	for _, cmd := range []string{"budget", "complete"} {
		code, out, stderr := runCLI(cmd, "-input", path)
		assert.Equal(t, 1, code, cmd)
		assert.Empty(t, out, cmd)
		assert.Contains(t, stderr, "line 2", cmd)
	}
}

func TestBadFlags(t *testing.T) {
	path := writeInput(t, sampleInput)

	code, out, stderr := runCLI("budget", "-input", path, "-budget", "-5")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "Budget cannot be negative")

	code, _, stderr = runCLI("budget", "-input", path, "-profile", "gpu")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown -profile")

	code, _, _ = runCLI("complete", "-input", path, "extra")
	assert.Equal(t, 1, code)

	code, _, _ = runCLI("budget", "-input", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, 1, code)
}
