package cli

import (
	"github.com/pluqqy/tagclip/pkg/config"
	"github.com/pluqqy/tagclip/pkg/models"
)

// CommandContext manages settings loading shared by commands
type CommandContext struct {
	ConfigPath string
	Settings   *models.Settings
}

// NewCommandContext creates a new command context
func NewCommandContext(configPath string) *CommandContext {
	return &CommandContext{
		ConfigPath: configPath,
	}
}

// LoadSettings loads settings once and caches them
func (c *CommandContext) LoadSettings() (*models.Settings, error) {
	if c.Settings != nil {
		return c.Settings, nil
	}

	settings, err := config.Load(c.ConfigPath)
	if err != nil {
		return nil, err
	}

	c.Settings = settings
	return settings, nil
}

// ConfigFilePath returns the explicit config path or the default location
func (c *CommandContext) ConfigFilePath() (string, error) {
	if c.ConfigPath != "" {
		return c.ConfigPath, nil
	}
	return config.DefaultPath()
}
