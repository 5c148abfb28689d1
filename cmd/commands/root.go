package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/tagselect/internal/cli"
	"github.com/pluqqy/tagselect/pkg/logging"
	"github.com/pluqqy/tagselect/pkg/models"
	"github.com/pluqqy/tagselect/pkg/tags"
	"github.com/pluqqy/tagselect/pkg/tui"
)

var (
	projectFile  string
	outputFormat string
	tagsFlag     string
	selectedFlag string
	noAnimate    bool
	widthFlag    int
	logLevel     string
	logFile      string
	quietFlag    bool
	noColorFlag  bool
)

// runProgram runs the interactive program and returns its final model
var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithAltScreen()).Run()
}

// SelectionResult is the root command's output
type SelectionResult struct {
	Selected []string `json:"selected" yaml:"selected"`
	Count    int      `json:"count" yaml:"count"`
}

// NewRootCommand creates the tagselect command tree
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tagselect",
		Short: "Pick tags from a list in the terminal",
		Long: `tagselect shows a list of tags as two groups, selected and not selected,
and lets you move tags between them with the keyboard. Chips glide to their
new place when the selection changes.

The tag list comes from tagselect.yaml in the current directory (see
'tagselect init'), or from --tags. When you quit, the final selection is
printed to stdout.

Examples:
  # Pick from the tags in ./tagselect.yaml
  tagselect

  # Pick from an ad hoc list and print JSON
  tagselect --tags "Go,Rust,Zig" --selected Go -o json

  # Log selection changes to a file
  tagselect --log-file tagselect.log --log-level debug`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cli.SetGlobalFlags(quietFlag, noColorFlag)
			outputFormat = strings.ToLower(outputFormat)
			if err := cli.ValidateOutputFormat(outputFormat); err != nil {
				return err
			}
			if err := cli.ValidateWidth(widthFlag); err != nil {
				return err
			}
			return cli.ValidateFilePath(projectFile)
		},
		RunE: runRoot,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&projectFile, "file", "f", "", "Tag file (default: ./tagselect.yaml)")
	flags.StringVarP(&outputFormat, "output", "o", "text", "Output format (text, json, yaml)")
	flags.StringVar(&tagsFlag, "tags", "", "Comma-separated tag list, replaces the file's tags")
	flags.StringVar(&selectedFlag, "selected", "", "Comma-separated initial selection")
	flags.BoolVar(&noAnimate, "no-animate", false, "Move chips without animation")
	flags.IntVar(&widthFlag, "width", 0, "Maximum widget width in columns")
	flags.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&logFile, "log-file", "", "Append logs to this file")
	flags.BoolVarP(&quietFlag, "quiet", "q", false, "Suppress informational output")
	flags.BoolVar(&noColorFlag, "no-color", false, "Plain status prefixes")

	cmd.AddCommand(
		NewInitCommand(),
		NewListCommand(),
		NewTagCommand(),
		NewCopyCommand(),
		NewVersionCommand(version),
	)
	return cmd
}

func runRoot(cmd *cobra.Command, args []string) (err error) {
	registry, err := loadRegistry(cmd)
	if err != nil {
		return err
	}
	if len(registry.Names()) == 0 {
		return fmt.Errorf("no tags to choose from. Add some with 'tagselect tag add' or --tags")
	}

	// The TUI owns the terminal, so only a log file receives output
	logger, err := logging.New(registry.Settings().Logging, nil)
	if err != nil {
		return err
	}
	defer func() {
		err = closeLogger(logger, err)
	}()

	logger.Debug("starting selector", "file", registry.Path(), "tags", len(registry.Names()))

	app := tui.NewApp(registry, tui.AppOptions{Logger: logger.Logger})
	final, err := runProgram(app)
	if err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}

	selected := app.Selected()
	if a, ok := final.(*tui.App); ok {
		selected = a.Selected()
	}
	logger.Info("final selection", "selected", selected)

	return outputSelection(cmd, selected)
}

// closeLogger closes the log sink. A close failure is reported only when
// nothing failed before it.
func closeLogger(c io.Closer, err error) error {
	if cerr := c.Close(); cerr != nil && err == nil {
		return fmt.Errorf("failed to close log file: %w", cerr)
	}
	return err
}

func outputSelection(cmd *cobra.Command, selected []string) error {
	if outputFormat != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, SelectionResult{
			Selected: selected,
			Count:    len(selected),
		})
	}
	for _, tag := range selected {
		fmt.Fprintln(cmd.OutOrStdout(), tag)
	}
	return nil
}

// loadRegistry opens the tag file and applies command line overrides
func loadRegistry(cmd *cobra.Command) (*tags.Registry, error) {
	registry, err := tags.Open(projectFile)
	if err != nil {
		return nil, err
	}

	settings := registry.Settings()
	flags := cmd.Flags()
	if flags.Changed("tags") {
		names := models.SplitTagList(tagsFlag)
		for _, name := range names {
			if err := models.ValidateTagName(name); err != nil {
				return nil, fmt.Errorf("invalid tag %q: %w", name, err)
			}
		}
		settings.Tags = models.TagsFromNames(names)
	}
	if flags.Changed("selected") {
		settings.Selected = models.SplitTagList(selectedFlag)
	}
	if noAnimate {
		settings.UI.DisableAnimation = true
	}
	if widthFlag > 0 {
		settings.UI.Width = widthFlag
	}
	if logLevel != "" {
		settings.Logging.Level = logLevel
	}
	if logFile != "" {
		settings.Logging.File = logFile
	}
	return registry, nil
}

// Execute runs the command tree and exits non-zero on failure
func Execute(version string) {
	if err := NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
