package models

// Settings represents the application configuration
type Settings struct {
	Clipboard ClipboardSettings `yaml:"clipboard" json:"clipboard" mapstructure:"clipboard"`
	UI        UISettings        `yaml:"ui" json:"ui" mapstructure:"ui"`
	Logging   LoggingSettings   `yaml:"logging" json:"logging" mapstructure:"logging"`
}

// ClipboardSettings selects where the generated tag is copied
type ClipboardSettings struct {
	Backend string `yaml:"backend" json:"backend" mapstructure:"backend"` // "auto", "system" or "osc52"
}

// UISettings controls the interactive form
type UISettings struct {
	Width       int  `yaml:"width" json:"width" mapstructure:"width"`
	MinRows     int  `yaml:"min_rows" json:"min_rows" mapstructure:"min_rows"`
	OffsetX     int  `yaml:"offset_x" json:"offset_x" mapstructure:"offset_x"`
	OffsetY     int  `yaml:"offset_y" json:"offset_y" mapstructure:"offset_y"`
	ShowPreview bool `yaml:"show_preview" json:"show_preview" mapstructure:"show_preview"`
}

// LoggingSettings controls the session log
type LoggingSettings struct {
	Level  string `yaml:"level" json:"level" mapstructure:"level"`
	Format string `yaml:"format" json:"format" mapstructure:"format"` // "text" or "json"
	File   string `yaml:"file" json:"file" mapstructure:"file"`       // empty discards logs
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Clipboard: ClipboardSettings{
			Backend: "auto",
		},
		UI: UISettings{
			Width:       60,
			MinRows:     6,
			OffsetX:     2,
			OffsetY:     1,
			ShowPreview: true,
		},
		Logging: LoggingSettings{
			Level:  "info",
			Format: "text",
			File:   "",
		},
	}
}
