package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/tagselect/internal/cli"
	"github.com/pluqqy/tagselect/pkg/files"
	"github.com/pluqqy/tagselect/pkg/models"
	"github.com/pluqqy/tagselect/pkg/tags"
)

var (
	tagColor       string
	tagDescription string
)

// NewTagCommand creates the tag command and its add/remove subcommands
func NewTagCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Add or remove tags in the tag file",
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a tag, or update its color and description",
		Long: `Add a tag to the end of the tag list. When the tag already exists its
color and description are updated in place.

Examples:
  tagselect tag add Go --color "#00ADD8" --description "The Go language"`,
		Args: cobra.ExactArgs(1),
		RunE: runTagAdd,
	}
	add.Flags().StringVar(&tagColor, "color", "", "Hex color (default: from the palette)")
	add.Flags().StringVar(&tagDescription, "description", "", "Shown under the focused tag")

	remove := &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Remove a tag and drop it from the initial selection",
		Args:    cobra.ExactArgs(1),
		RunE:    runTagRemove,
	}

	cmd.AddCommand(add, remove)
	return cmd
}

func openTagFile() (*tags.Registry, error) {
	path := files.ResolvePath(projectFile)
	settings, err := files.ReadSettings(path)
	if err != nil {
		return nil, err
	}
	return tags.NewRegistry(path, settings), nil
}

func runTagAdd(cmd *cobra.Command, args []string) error {
	registry, err := openTagFile()
	if err != nil {
		return err
	}

	if err := registry.AddTag(models.Tag{
		Name:        args[0],
		Color:       tagColor,
		Description: tagDescription,
	}); err != nil {
		return err
	}
	if err := registry.Save(); err != nil {
		return err
	}

	cli.PrintSuccess(cmd.OutOrStdout(), "Saved tag %s", args[0])
	return nil
}

func runTagRemove(cmd *cobra.Command, args []string) error {
	registry, err := openTagFile()
	if err != nil {
		return err
	}

	if err := registry.RemoveTag(args[0]); err != nil {
		return err
	}
	if err := registry.Save(); err != nil {
		return err
	}

	cli.PrintSuccess(cmd.OutOrStdout(), "Removed tag %s", args[0])
	return nil
}
