package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/tagclip/internal/cli"
	"github.com/pluqqy/tagclip/pkg/clipboard"
	"github.com/pluqqy/tagclip/pkg/markup"
)

var (
	buildPrint  bool
	buildFormat string
)

// NewBuildCommand creates the build command
func NewBuildCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <tag> [key[=value] ...]",
		Short: "Build a tag from arguments and copy it to the clipboard",
		Long: `Build an XML tag without opening the interactive form.

Each argument after the tag is an attribute. "key=value" sets a value,
a bare "key" (or "key=") produces a boolean attribute. Tag names and keys
are cleaned the same way as in the form: whitespace becomes "_" and any
character other than letters, digits, "_" and "-" is dropped.

Examples:
  # Copy <div class="main" hidden>...</div> to the clipboard
  tagclip build div class=main hidden

  # Print instead of copying
  tagclip build img src=pic.png --print

  # Print the parsed document as JSON
  tagclip build "my tag" data-id=7 --print --format json`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateOutputFormat(buildFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVarP(&buildPrint, "print", "p", false, "Print to stdout instead of copying")
	cmd.Flags().StringVar(&buildFormat, "format", "text", "Output format for --print (text, json, yaml)")

	return cmd
}

// RawInputFromArgs turns a tag argument and key[=value] arguments into the
// form's raw input
func RawInputFromArgs(args []string) markup.RawInput {
	raw := markup.RawInput{Tag: args[0]}
	for _, arg := range args[1:] {
		key, value := cli.ParseAttributeArg(arg)
		raw.Attributes = append(raw.Attributes, markup.AttributeRow{Key: key, Value: value})
	}
	return raw
}

func runBuild(cmd *cobra.Command, opts *GlobalOptions, args []string) error {
	opts.Apply()

	doc, err := markup.Build(RawInputFromArgs(args))
	if err != nil {
		return fmt.Errorf("invalid tag: %w", err)
	}
	out := markup.Serialize(doc)

	if buildPrint {
		if buildFormat == string(cli.FormatText) {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		}
		return cli.OutputResults(cmd.OutOrStdout(), buildFormat, doc)
	}

	settings, err := opts.LoadSettings()
	if err != nil {
		return err
	}

	clip, err := newClipboard(settings.Clipboard.Backend, cmd.ErrOrStderr(), clipboard.WithFallbackNotice(WarnOnFallback))
	if err != nil {
		return err
	}

	if err := clip.WriteText(out); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	cli.PrintSuccess("%s → clipboard", cli.TruncateString(cli.FirstLine(out), 80))
	return nil
}
