package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "auto", s.Clipboard.Backend)
	assert.Equal(t, 6, s.UI.MinRows)
	assert.True(t, s.UI.ShowPreview)
	assert.Equal(t, "info", s.Logging.Level)
	assert.Empty(t, s.Logging.File)

	// Each call returns an independent copy.
	s.UI.Width = 1
	assert.Equal(t, 60, DefaultSettings().UI.Width)
}

func TestSettings_YAMLKeys(t *testing.T) {
	data, err := yaml.Marshal(DefaultSettings())
	assert.NoError(t, err)

	for _, k := range []string{"clipboard:", "backend: auto", "min_rows: 6", "show_preview: true", "logging:"} {
		assert.Contains(t, string(data), k)
	}
}
