package commands

import (
	"github.com/pluqqy/tagclip/internal/cli"
	"github.com/pluqqy/tagclip/pkg/clipboard"
	"github.com/pluqqy/tagclip/pkg/models"
)

// GlobalOptions holds the root command's persistent flags
type GlobalOptions struct {
	ConfigPath string
	Clipboard  string
	Quiet      bool
	NoColor    bool
	Yes        bool
}

// newClipboard is replaced in tests
var newClipboard = clipboard.New

// WarnOnFallback prints a warning when the auto backend had to use OSC 52,
// which cannot confirm that the terminal took the text.
func WarnOnFallback(err error) {
	cli.PrintWarning("%v; sent the tag to the terminal with OSC 52 instead", err)
}

// Apply pushes the output flags to the cli helpers
func (o *GlobalOptions) Apply() {
	cli.SetGlobalFlags(o.Quiet, o.NoColor, o.Yes)
}

// LoadSettings loads settings and applies flag overrides
func (o *GlobalOptions) LoadSettings() (*models.Settings, error) {
	settings, err := cli.NewCommandContext(o.ConfigPath).LoadSettings()
	if err != nil {
		return nil, err
	}
	if o.Clipboard != "" {
		settings.Clipboard.Backend = o.Clipboard
	}
	return settings, nil
}
