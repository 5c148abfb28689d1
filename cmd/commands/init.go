package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/tagselect/internal/cli"
	"github.com/pluqqy/tagselect/pkg/files"
)

var initForce bool

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a tagselect.yaml with the default tags",
		Long: `Writes a tagselect.yaml holding the default tag list, widget settings,
and logging settings. Edit it to use your own tags.

Examples:
  tagselect init
  tagselect init --file config/tags.yaml --force`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	path := files.ResolvePath(projectFile)
	if err := files.InitProject(path, initForce); err != nil {
		return err
	}

	cli.PrintSuccess(cmd.OutOrStdout(), "Created %s", path)
	cli.PrintInfo(cmd.OutOrStdout(), "Run 'tagselect' to start picking tags.")
	return nil
}
