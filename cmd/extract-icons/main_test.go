package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesavant42/iconkit/internal/config"
	"github.com/thesavant42/iconkit/internal/ui"
)

func TestRunExtractsAvailableGrids(t *testing.T) {
	dir := t.TempDir()
	nav := filepath.Join(dir, "nav.png")

	f, err := os.Create(nav)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 90, 40))))
	require.NoError(t, f.Close())

	cfg := config.Config{
		IconDir:   filepath.Join(dir, "icons"),
		CyberGrid: filepath.Join(dir, "missing.png"),
		NavGrid:   nav,
		LogLevel:  "error",
	}

	var out bytes.Buffer
	require.NoError(t, run(cfg, ui.NewPrinter(&out)))

	assert.Contains(t, out.String(), "platform.png")
	assert.Contains(t, out.String(), "Icon extraction completed!")
	assert.NotContains(t, out.String(), "cloud-security.png")

	entries, err := os.ReadDir(cfg.IconDir)
	require.NoError(t, err)
	assert.Len(t, entries, 6)
}

func TestRootCommandErrorIsNotPrinted(t *testing.T) {
	t.Setenv("ICONKIT_LOG_LEVEL", "error")
	t.Setenv("ICONKIT_LEDGER", "")

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"unexpected"})
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	require.Error(t, cmd.Execute())
	assert.Empty(t, errOut.String())
	assert.Empty(t, out.String())
}
