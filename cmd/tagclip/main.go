package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/tagclip/cmd/commands"
	"github.com/pluqqy/tagclip/internal/cli"
	"github.com/pluqqy/tagclip/internal/logging"
	"github.com/pluqqy/tagclip/pkg/clipboard"
	"github.com/pluqqy/tagclip/pkg/session"
	"github.com/pluqqy/tagclip/pkg/tui"
)

// version is set during build with -ldflags
var version = "dev"

var opts = &commands.GlobalOptions{}

var rootCmd = &cobra.Command{
	Use:   "tagclip [tag [key[=value] ...]]",
	Short: "Type a tag and its attributes, get XML on the clipboard",
	Long: `Tagclip opens a small form for a tag name and key/value attributes.
Tab adds an attribute row, Enter copies the generated element to the
clipboard and closes, Escape cancels. Arguments prefill the form the
same way "tagclip build" reads them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts.Apply()

		settings, err := opts.LoadSettings()
		if err != nil {
			return err
		}

		logger, closeLog, err := logging.Open(settings.Logging)
		if err != nil {
			return err
		}
		defer closeLog()

		// The alternate screen is up while the session runs, so the fallback
		// warning waits until it closes.
		var fallbackErr error
		clip, err := clipboard.New(settings.Clipboard.Backend, os.Stderr,
			clipboard.WithFallbackNotice(func(err error) {
				logger.Warn("system clipboard unavailable, using OSC 52", "error", err)
				fallbackErr = err
			}))
		if err != nil {
			return err
		}

		logger.Info("starting tagclip session", "version", version, "clipboard", settings.Clipboard.Backend)

		sessionOpts := []session.Option{session.WithLogger(logger)}
		if len(args) > 0 {
			sessionOpts = append(sessionOpts, session.WithInput(commands.RawInputFromArgs(args)))
		}
		machine := session.New(clip, sessionOpts...)
		app := tui.NewApp(machine, settings, tui.WithLogger(logger))

		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to start the terminal user interface: %w", err)
		}

		if app.Signal() != session.SignalCommit {
			return nil
		}
		if fallbackErr != nil {
			commands.WarnOnFallback(fallbackErr)
		}
		if !cli.IsQuiet() {
			cli.PrintSuccess("%s → clipboard", cli.TruncateString(cli.FirstLine(app.Output()), 80))
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Tagclip",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Tagclip version %s\n", version)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "Config file (default: <user config dir>/tagclip/config.yaml)")
	flags.StringVar(&opts.Clipboard, "clipboard", "", "Clipboard backend: auto, system or osc52")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress success output")
	flags.BoolVar(&opts.NoColor, "no-color", false, "Disable symbols in output")
	flags.BoolVarP(&opts.Yes, "yes", "y", false, "Answer yes to prompts")

	rootCmd.AddCommand(commands.NewBuildCommand(opts))
	rootCmd.AddCommand(commands.NewConfigCommand(opts))
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
