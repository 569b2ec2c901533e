package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pluqqy/tagclip/internal/cli"
	"github.com/pluqqy/tagclip/pkg/config"
)

var (
	configFormat string
	configForce  bool
)

// NewConfigCommand creates the config command
func NewConfigCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize settings",
		Long: `Settings are read from config.yaml in the user config directory
(for example ~/.config/tagclip/config.yaml), then the current directory,
and can be overridden with TAGCLIP_* environment variables such as
TAGCLIP_CLIPBOARD_BACKEND=osc52.`,
	}

	cmd.AddCommand(newConfigShowCommand(opts))
	cmd.AddCommand(newConfigInitCommand(opts))
	return cmd
}

func newConfigShowCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateOutputFormat(configFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Apply()
			settings, err := opts.LoadSettings()
			if err != nil {
				return err
			}

			if configFormat != string(cli.FormatText) {
				return cli.OutputResults(cmd.OutOrStdout(), configFormat, settings)
			}

			tf := cli.NewTableFormatter(cmd.OutOrStdout())
			tf.Header("SETTING", "VALUE")
			tf.Row("clipboard.backend", settings.Clipboard.Backend)
			tf.Row("ui.width", strconv.Itoa(settings.UI.Width))
			tf.Row("ui.min_rows", strconv.Itoa(settings.UI.MinRows))
			tf.Row("ui.offset_x", strconv.Itoa(settings.UI.OffsetX))
			tf.Row("ui.offset_y", strconv.Itoa(settings.UI.OffsetY))
			tf.Row("ui.show_preview", strconv.FormatBool(settings.UI.ShowPreview))
			tf.Row("logging.level", settings.Logging.Level)
			tf.Row("logging.format", settings.Logging.Format)
			tf.Row("logging.file", settings.Logging.File)
			tf.Flush()
			return nil
		},
	}

	cmd.Flags().StringVar(&configFormat, "format", "yaml", "Output format (text, json, yaml)")
	return cmd
}

func newConfigInitCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Apply()
			path, err := cli.NewCommandContext(opts.ConfigPath).ConfigFilePath()
			if err != nil {
				return fmt.Errorf("failed to determine config path: %w", err)
			}

			if _, err := os.Stat(path); err == nil {
				if !configForce {
					return fmt.Errorf("%s: %w (use --force to overwrite)", path, config.ErrConfigExists)
				}
				ok, err := cli.Confirm(fmt.Sprintf("%s already exists. Overwrite?", path), false)
				if err != nil {
					return err
				}
				if !ok {
					cli.PrintInfo("Kept existing %s", path)
					return nil
				}
			}

			if err := config.WriteDefault(path, configForce); err != nil {
				return err
			}

			cli.PrintSuccess("Wrote default settings to %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite an existing file after confirmation")
	return cmd
}
