package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/segplot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootRequiresExactlyOneFile(t *testing.T) {
	_, err := execute(t)
	assert.Error(t, err)

	_, err = execute(t, "a.txt", "b.txt")
	assert.Error(t, err)
}

func TestRootFailsOnMalformedFile(t *testing.T) {
	_, err := execute(t, writeFile(t, "bad.txt", "1,2,3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too few fields")

	_, err = execute(t, filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestRootRejectsUnknownBackend(t *testing.T) {
	_, err := execute(t, "--backend", "opengl", writeFile(t, "ok.txt", "0,0,0,1,1,1\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown backend")
}

func TestResolveFlagsOverrideConfigFile(t *testing.T) {
	cfgPath := writeFile(t, "segplot.toml", "backend = \"raylib\"\nwatch = true\nlog_level = \"debug\"\n")
	root := NewRootCmd()
	require.NoError(t, root.ParseFlags([]string{"--config", cfgPath, "--watch=false"}))

	opts := &rootOptions{}
	opts.configFile, _ = root.Flags().GetString("config")
	opts.watch, _ = root.Flags().GetBool("watch")
	cfg, err := opts.resolve(root)

	require.NoError(t, err)
	assert.Equal(t, config.BackendRaylib, cfg.Backend, "file value kept when flag not set")
	assert.False(t, cfg.Watch, "explicit flag wins")
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestInfo(t *testing.T) {
	path := writeFile(t, "segments.txt", "0,0,0,1,1,1\n\n2,2,2,3,3,3\n0,0,0,0,0,5\n")

	out, err := execute(t, "info", "--longest", "-n", "1", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Segments: 3")
	assert.Contains(t, out, "Markers: 3")
	assert.Contains(t, out, "Max: (3.000000, 3.000000, 5.000000)")
	assert.Contains(t, out, "Top 1 Longest Segments")
	assert.Contains(t, out, "(0.000000, 0.000000, 5.000000)")
}

func TestInfoEmptyFile(t *testing.T) {
	out, err := execute(t, "info", writeFile(t, "empty.txt", ""))

	require.NoError(t, err)
	assert.Contains(t, out, "Segments: 0")
	assert.Contains(t, out, "Bounding Box: empty")
}

func TestInfoMalformedFile(t *testing.T) {
	_, err := execute(t, "info", writeFile(t, "bad.txt", "a,b,c,d,e,f\n"))

	assert.Error(t, err)
}

func TestCompletion(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "segplot")

	_, err = execute(t, "completion", "powershell")
	assert.Error(t, err)
}
