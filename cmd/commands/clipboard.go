package commands

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pluqqy/tagselect/internal/cli"
)

// writeClipboard is swapped out in tests
var writeClipboard = clipboard.WriteAll

// NewCopyCommand creates the copy command
func NewCopyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "copy",
		Short: "Copy the initial selection to the clipboard",
		Long: `Copy the selection from the tag file, or from --selected, to the system
clipboard as a comma separated list.

Examples:
  tagselect copy
  tagselect copy --selected "AWS,Docker"`,
		Args:    cobra.NoArgs,
		Aliases: []string{"clip"},
		RunE:    runCopy,
	}
}

func runCopy(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	selected := registry.Selected()
	if len(selected) == 0 {
		cli.PrintWarning(cmd.ErrOrStderr(), "Nothing selected to copy")
		return nil
	}

	if err := writeClipboard(strings.Join(selected, ", ")); err != nil {
		return err
	}

	cli.PrintSuccess(cmd.OutOrStdout(), "Copied %d tag(s) to clipboard", len(selected))
	return nil
}
