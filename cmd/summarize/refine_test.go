package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		refineScores = false
		refineMaxWords = 50
		inputPath = ""
	})

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

const cliText = "The cat sat on the mat. Stock markets rallied today on strong earnings. The mat was red."

func TestRefineFromStdin(t *testing.T) {
	out := runCLI(t, cliText, "refine", "--max-words", "7")
	assert.Equal(t, "Stock markets rallied today on strong earnings.\n", out)
}

func TestRefineScores(t *testing.T) {
	out := runCLI(t, cliText, "refine", "--scores")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "#1\t7w\tStock markets")
}
