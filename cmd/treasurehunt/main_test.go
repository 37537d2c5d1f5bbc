package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `
treasures:
  - id: 8f14e45f-ceea-467a-9af0-5c3b3a1b9d11
    name: Cathedral gargoyle
    latitude: 41.3839
    longitude: 2.1762
  - id: c9f0f895-fb98-4b91-9f1c-6a8cdb0a8a22
    name: Roman wall
    latitude: 41.3843
    longitude: 2.1778
`

const testGuesses = `
guesses:
  - treasure: 8f14e45f-ceea-467a-9af0-5c3b3a1b9d11
    latitude: 41.3839
    longitude: 2.1762
    label: spot on
  - treasure: c9f0f895-fb98-4b91-9f1c-6a8cdb0a8a22
    skip: true
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRun_ScoreFromYAMLCatalog(t *testing.T) {
	dir := t.TempDir()
	catalogPath := writeFile(t, dir, "treasures.yaml", testCatalog)
	guessesPath := writeFile(t, dir, "guesses.yaml", testGuesses)
	cfgPath := writeFile(t, dir, "config.yaml", fmt.Sprintf("log_level: error\ncatalog:\n  source: yaml\n  path: %s\n", catalogPath))

	var out bytes.Buffer
	err := run(context.Background(), []string{"-config", cfgPath, "score", guessesPath}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "distance=0m delta=+0 best=0m")
	assert.Contains(t, out.String(), "skipped")
	assert.Contains(t, out.String(), "attempted 2/2 treasures")
	assert.Contains(t, out.String(), "score 500 (average 500.00)")
}

func TestRun_ImportThenScoreFromSQLite(t *testing.T) {
	dir := t.TempDir()
	catalogPath := writeFile(t, dir, "treasures.yaml", testCatalog)
	guessesPath := writeFile(t, dir, "guesses.yaml", testGuesses)
	cfgPath := writeFile(t, dir, "config.yaml", fmt.Sprintf(
		"log_level: error\ncatalog:\n  source: sqlite\nsqlite:\n  path: %s\n", filepath.Join(dir, "treasures.db")))

	ctx := context.Background()
	require.NoError(t, run(ctx, []string{"-config", cfgPath, "migrate"}, &bytes.Buffer{}))
	require.NoError(t, run(ctx, []string{"-config", cfgPath, "import", catalogPath}, &bytes.Buffer{}))

	var out bytes.Buffer
	require.NoError(t, run(ctx, []string{"-config", cfgPath, "score", guessesPath}, &out))
	assert.Contains(t, out.String(), "score 500")
}

func TestRun_UnknownTreasureFails(t *testing.T) {
	dir := t.TempDir()
	catalogPath := writeFile(t, dir, "treasures.yaml", testCatalog)
	guessesPath := writeFile(t, dir, "guesses.yaml", `
guesses:
  - treasure: 00000000-0000-4000-8000-000000000000
    latitude: 1
    longitude: 1
`)
	cfgPath := writeFile(t, dir, "config.yaml", fmt.Sprintf("log_level: error\ncatalog:\n  source: yaml\n  path: %s\n", catalogPath))

	err := run(context.Background(), []string{"-config", cfgPath, "score", guessesPath}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRun_Usage(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "absent.yaml")

	for _, args := range [][]string{
		{"-config", cfgPath},
		{"-config", cfgPath, "import"},
		{"-config", cfgPath, "bogus"},
	} {
		assert.ErrorIs(t, run(context.Background(), args, &bytes.Buffer{}), errUsage, "%v", args)
	}
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLogLevel("debug").String())
	assert.Equal(t, "INFO", parseLogLevel("").String())
	assert.Equal(t, "ERROR", parseLogLevel("error").String())
}
