package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	code = execute(cmd, args)
	return code, out.String(), errOut.String()
}

func decodeSize(t *testing.T, path string) (w, h int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "infographic", cmd.Use)
	for _, name := range []string{"config", "output", "dpi", "width", "height", "tight", "verbose"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}
	assert.Equal(t, "o", cmd.Flags().Lookup("output").Shorthand)
	assert.Equal(t, "v", cmd.Flags().Lookup("verbose").Shorthand)
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	code, stdout, stderr := runCommand(t, "-o", path, "--dpi", "20")
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Equal(t, "Infographic saved as '"+path+"'\n", stdout)
	assert.Empty(t, stderr)

	w, h := decodeSize(t, path)
	assert.Equal(t, 320, w)
	assert.Equal(t, 400, h)
}

func TestRunTight(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tight.png")
	code, _, stderr := runCommand(t, "-o", path, "--dpi", "24", "--tight")
	require.Equal(t, ExitSuccess, code, stderr)

	w, h := decodeSize(t, path)
	assert.Equal(t, 200, w) // 10 units at 20 pixels per unit
	assert.Equal(t, 480, h)
}

func TestRunVerbose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	code, _, stderr := runCommand(t, "-v", "-o", path, "--dpi", "10")
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Contains(t, stderr, "primitives on a 10x24 canvas")
	assert.Contains(t, stderr, "rendered 160x200 pixels at 10 DPI")
}

func TestRunConfig(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "from-config.png")
	cfgPath := filepath.Join(dir, "infographic.yaml")
	content := "output: " + out + "\ndpi: 5\npage:\n  width: 8\n  height: 10\ncontent:\n  title:\n    lines: [Custom title]\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	code, stdout, stderr := runCommand(t, "--config", cfgPath, "--dpi", "10")
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Contains(t, stdout, out)

	// the flag wins over the file
	w, h := decodeSize(t, out)
	assert.Equal(t, 80, w)
	assert.Equal(t, 100, h)
}

func TestRunEmptyConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(cfgPath, nil, 0o644))
	out := filepath.Join(dir, "out.png")

	code, stdout, stderr := runCommand(t, "--config", cfgPath, "-o", out, "--dpi", "10")
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Contains(t, stdout, out)

	w, h := decodeSize(t, out)
	assert.Equal(t, 160, w)
	assert.Equal(t, 200, h)
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	badConfig := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badConfig, []byte("dpi: -1\n"), 0o644))
	missingContent := filepath.Join(dir, "missing.yaml")
	require.NoError(t, os.WriteFile(missingContent, []byte("content:\n  title:\n    lines: []\n"), 0o644))

	tests := []struct {
		name    string
		args    []string
		code    int
		message string
	}{
		{"missing directory", []string{"-o", filepath.Join(dir, "nope", "out.png"), "--dpi", "10"}, ExitFailure, "IOWriteError"},
		{"invalid dpi", []string{"-o", filepath.Join(dir, "out.png"), "--dpi", "0"}, ExitFailure, "RenderTargetError"},
		{"invalid config", []string{"--config", badConfig}, ExitFailure, "InvalidConfig"},
		{"missing config", []string{"--config", filepath.Join(dir, "none.yaml")}, ExitFailure, "InvalidConfig"},
		{"missing title", []string{"--config", missingContent, "-o", filepath.Join(dir, "out.png")}, ExitFailure, "MissingContent"},
		{"malformed flag", []string{"--dpi", "high"}, ExitUsage, "invalid argument"},
		{"unknown flag", []string{"--colour"}, ExitUsage, "unknown flag"},
		{"positional argument", []string{"out.png"}, ExitUsage, "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCommand(t, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.message)
		})
	}
	_, err := os.Stat(filepath.Join(dir, "nope", "out.png"))
	assert.True(t, os.IsNotExist(err))
}
