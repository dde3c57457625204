package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphptol/internal/config"
	"github.com/katalvlaran/graphptol/model"
	"github.com/katalvlaran/graphptol/render"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.Execute()

	return out.String(), err
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	return p
}

const square = "0 1 0 1\n1 0 1 0\n0 1 0 1\n1 0 1 0\n"

func TestPathCommand(t *testing.T) {
	m := writeTemp(t, "sq.txt", square)

	out, err := run(t, "path", "--matrix", m, "0", "2")
	require.NoError(t, err)
	assert.Equal(t, "0 1 2\n", out)

	l := writeTemp(t, "g.adj", "1 2\n3 4\n")
	_, err = run(t, "path", "--list", l, "1", "4")
	assert.ErrorIs(t, err, model.ErrNoPathExists)

	_, err = run(t, "path", "--list", l, "1", "x")
	assert.Error(t, err)

	_, err = run(t, "path", "1", "2")
	assert.Error(t, err, "one of --matrix or --list is required")
}

func TestConvertCommand(t *testing.T) {
	m := writeTemp(t, "sq.txt", square)
	dst := filepath.Join(t.TempDir(), "sq.adj")

	out, err := run(t, "convert", "--from", "matrix", "--to", "list", m, dst)
	require.NoError(t, err)
	assert.Contains(t, out, "4 nodes, 4 edges")

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "0 1 3\n1 0 2\n2 1 3\n3 0 2\n", string(data))

	back := filepath.Join(t.TempDir(), "sq.txt")
	_, err = run(t, "convert", "--from", "list", "--to", "matrix", dst, back)
	require.NoError(t, err)
	data, err = os.ReadFile(back)
	require.NoError(t, err)
	assert.Equal(t, square, string(data))

	_, err = run(t, "convert", "--from", "csv", m, dst)
	assert.Error(t, err)
}

func TestRenderCommand(t *testing.T) {
	m := writeTemp(t, "sq.txt", square)

	out, err := run(t, "render", "--matrix", m, "--path", "0,2")
	require.NoError(t, err)
	assert.Contains(t, out, "<svg")
	assert.Equal(t, 3, strings.Count(out, `fill="blue"`))

	dst := filepath.Join(t.TempDir(), "sq.txt.ascii")
	_, err = run(t, "render", "--matrix", m, "--format", "ascii", "-o", dst)
	require.NoError(t, err)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(data), "o node")

	_, err = run(t, "render", "--matrix", m, "--path", "1")
	assert.Error(t, err)
}

func TestRenderFailureWritesNothing(t *testing.T) {
	m := writeTemp(t, "sq.txt", square)
	dir := t.TempDir()

	missing := filepath.Join(dir, "out.png")
	_, err := run(t, "render", "--matrix", m, "--format", "png", "-o", missing)
	require.ErrorIs(t, err, render.ErrUnknownFormat)
	assert.NoFileExists(t, missing)

	kept := filepath.Join(dir, "out.svg")
	require.NoError(t, os.WriteFile(kept, []byte("previous"), 0o644))
	_, err = run(t, "render", "--matrix", m, "--format", "dot", "-o", kept)
	require.ErrorIs(t, err, render.ErrUnknownFormat)
	data, err := os.ReadFile(kept)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}

func TestInfoCommand(t *testing.T) {
	l := writeTemp(t, "g.adj", "1 2\n2 3\n7 8\n9\n")

	out, err := run(t, "info", "--list", l)
	require.NoError(t, err)
	assert.Contains(t, out, "nodes:      6")
	assert.Contains(t, out, "edges:      3")
	assert.Contains(t, out, "components: 3")
	assert.Contains(t, out, "1: 1 2 3")
	assert.Contains(t, out, "cycle:      none (forest)")

	out, err = run(t, "info", "--matrix", writeTemp(t, "sq.txt", square))
	require.NoError(t, err)
	assert.Contains(t, out, "cycle:      0 1 2 3 0")
}

func TestBadConfig(t *testing.T) {
	cfg := writeTemp(t, "bad.yaml", "layout:\n  width: -1\n")
	_, err := run(t, "--config", cfg, "info", "--list", writeTemp(t, "g.adj", "1 2\n"))
	assert.Error(t, err)
}

func TestGenerateCommand(t *testing.T) {
	out, err := run(t, "generate", "path", "3", "--to", "matrix")
	require.NoError(t, err)
	assert.Equal(t, "0 1 0\n1 0 1\n0 1 0\n", out)

	dst := filepath.Join(t.TempDir(), "ring.adj")
	_, err = run(t, "generate", "cycle", "4", "--first-id", "100", "-o", dst)
	require.NoError(t, err)
	out, err = run(t, "path", "--list", dst, "100", "102")
	require.NoError(t, err)
	assert.Equal(t, "100 101 102\n", out)

	out, err = run(t, "generate", "grid", "2")
	require.NoError(t, err)
	assert.Equal(t, "0 1 2\n1 0 3\n2 0 3\n3 1 2\n", out)

	_, err = run(t, "generate", "hexagram", "6")
	assert.Error(t, err)
}
