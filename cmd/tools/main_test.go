package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"coolchart/lib/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, util.VersionString()+"\n", out)
}

func TestDumpCSV(t *testing.T) {
	out, err := execute(t, "dump", "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 28)
	assert.Equal(t, "period,uly,else", lines[0])
}

func TestDumpUnknownFormat(t *testing.T) {
	_, err := execute(t, "dump", "--format", "yaml")
	assert.Error(t, err)
}

func TestRenderPNGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	_, err := execute(t, "render", "--out", path, "--width", "320", "--height", "200")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), data[:4])
}

func TestRenderFormatFromExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.svg")
	_, err := execute(t, "render", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestRenderExplicitFormatOverridesExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.out")
	_, err := execute(t, "render", "--format", "svg", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestRenderBadFormatRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.bmp")
	_, err := execute(t, "render", "--out", path)
	require.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestRenderBadConfig(t *testing.T) {
	_, err := execute(t, "render", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
