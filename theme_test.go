package gui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
background = 0x101010ff

[regular.normal]
text = 0xddddddff
background = 0x202020ff
border = 0x444444ff

[primary]
normal = { text = 0xffffffff, background = 0x005500ff, border = 0x005500ff }
`), 0o666))

	theme, err := ReadTheme(path)
	require.NoError(t, err)

	assert.Equal(t, uint32(0x101010ff), theme.Background)
	assert.Equal(t, uint32(0xddddddff), theme.Regular.Normal.Text)
	assert.Equal(t, uint32(0x005500ff), theme.Primary.Normal.Background)

	// unset values keep the defaults
	def := DefaultTheme()
	assert.Equal(t, def.Regular.Hover, theme.Regular.Hover)
	assert.Equal(t, def.Danger, theme.Danger)
}

func TestReadThemeErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadTheme(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("background = {"), 0o666))
	_, err = ReadTheme(bad)
	assert.Error(t, err)
}

func TestDefaultTheme(t *testing.T) {
	def := DefaultTheme()
	assert.Equal(t, uint32(0xfcfcfcff), def.Background)
	assert.Equal(t, uint32(0x007bffff), def.Primary.Normal.Background)
	assert.NotZero(t, def.Disabled.Text)
}
