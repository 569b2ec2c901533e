package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/tagclip/pkg/models"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), s)
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	content := `
clipboard:
  backend: osc52
ui:
  width: 80
  show_preview: false
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "osc52", s.Clipboard.Backend)
	assert.Equal(t, 80, s.UI.Width)
	assert.False(t, s.UI.ShowPreview)
	assert.Equal(t, 6, s.UI.MinRows)
	assert.Equal(t, "debug", s.Logging.Level)
	assert.Equal(t, "text", s.Logging.Format)
}

func TestLoad_SearchesWorkingDirectory(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("ui:\n  min_rows: 2\n"), 0644))

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2, s.UI.MinRows)
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("TAGCLIP_CLIPBOARD_BACKEND", "system")
	t.Setenv("TAGCLIP_UI_WIDTH", "42")

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "system", s.Clipboard.Backend)
	assert.Equal(t, 42, s.UI.Width)
}

func TestLoad_Errors(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("clipboard:\n  backend: carrier-pigeon\n"), 0644))
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clipboard.backend")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *models.Settings)
		wantErr bool
	}{
		{name: "defaults", mutate: func(s *models.Settings) {}},
		{name: "zero width", mutate: func(s *models.Settings) { s.UI.Width = 0 }, wantErr: true},
		{name: "negative rows", mutate: func(s *models.Settings) { s.UI.MinRows = -1 }, wantErr: true},
		{name: "negative offset", mutate: func(s *models.Settings) { s.UI.OffsetY = -3 }, wantErr: true},
		{name: "bad level", mutate: func(s *models.Settings) { s.Logging.Level = "trace" }, wantErr: true},
		{name: "bad format", mutate: func(s *models.Settings) { s.Logging.Format = "xml" }, wantErr: true},
		{name: "upper case backend", mutate: func(s *models.Settings) { s.Clipboard.Backend = "OSC52" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := models.DefaultSettings()
			tt.mutate(s)
			err := Validate(s)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWriteDefault(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "nested", "config.yaml")

	require.NoError(t, WriteDefault(path, false))
	assert.ErrorIs(t, WriteDefault(path, false), ErrConfigExists)
	require.NoError(t, WriteDefault(path, true))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), s)
}
