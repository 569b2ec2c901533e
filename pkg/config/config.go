package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/pluqqy/tagclip/pkg/clipboard"
	"github.com/pluqqy/tagclip/pkg/models"
)

const (
	// AppName names the config directory and the environment prefix.
	AppName = "tagclip"

	// FileName is the config file name without extension.
	FileName = "config"
)

// ErrConfigExists is returned by WriteDefault when the file is already there.
var ErrConfigExists = errors.New("config file already exists")

// Load reads settings from defaults, the config file and TAGCLIP_*
// environment variables, in increasing priority. An empty path searches the
// user config directory and the working directory; a missing file is fine
// unless path was given explicitly.
func Load(path string) (*models.Settings, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var settings models.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := Validate(&settings); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &settings, nil
}

func setDefaults(v *viper.Viper) {
	d := models.DefaultSettings()

	v.SetDefault("clipboard.backend", d.Clipboard.Backend)

	v.SetDefault("ui.width", d.UI.Width)
	v.SetDefault("ui.min_rows", d.UI.MinRows)
	v.SetDefault("ui.offset_x", d.UI.OffsetX)
	v.SetDefault("ui.offset_y", d.UI.OffsetY)
	v.SetDefault("ui.show_preview", d.UI.ShowPreview)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.file", d.Logging.File)
}

// Validate checks that settings hold usable values.
func Validate(s *models.Settings) error {
	switch strings.ToLower(s.Clipboard.Backend) {
	case clipboard.BackendAuto, clipboard.BackendSystem, clipboard.BackendOSC52:
	default:
		return fmt.Errorf("clipboard.backend must be one of auto, system, osc52 (got %q)", s.Clipboard.Backend)
	}
	if s.UI.Width <= 0 {
		return fmt.Errorf("ui.width must be greater than 0")
	}
	if s.UI.MinRows < 0 {
		return fmt.Errorf("ui.min_rows must be >= 0")
	}
	if s.UI.OffsetX < 0 || s.UI.OffsetY < 0 {
		return fmt.Errorf("ui.offset_x and ui.offset_y must be >= 0")
	}
	switch strings.ToLower(s.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", s.Logging.Level)
	}
	switch strings.ToLower(s.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json (got %q)", s.Logging.Format)
	}
	return nil
}

// Dir returns the directory holding the config file.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

// DefaultPath returns the config file path used when none is given.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName+".yaml"), nil
}

// WriteDefault writes the default settings to path, creating parent
// directories. It refuses to overwrite an existing file unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrConfigExists)
		}
	}

	data, err := yaml.Marshal(models.DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
