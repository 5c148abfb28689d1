package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pluqqy/tagselect/internal/cli"
	"github.com/pluqqy/tagselect/pkg/models"
	"github.com/pluqqy/tagselect/pkg/selection"
	"github.com/pluqqy/tagselect/pkg/tags"
	"github.com/pluqqy/tagselect/pkg/tui"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Tags     []ListItem `json:"tags" yaml:"tags"`
	Selected []string   `json:"selected" yaml:"selected"`
	Count    int        `json:"count" yaml:"count"`
}

// ListItem represents a single tag in the list. Order is -1 for selected
// tags missing from the tag list.
type ListItem struct {
	Name        string `json:"name" yaml:"name"`
	Order       int    `json:"order" yaml:"order"`
	ID          string `json:"id" yaml:"id"`
	Group       string `json:"group" yaml:"group"`
	Color       string `json:"color" yaml:"color"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

var listGroup string

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tags with their order and group",
		Long: `List every tag the way the selector places it: selected tags first in
selection order, then the remaining tags in list order. Each tag shows its
order index, animation id, group, and color.

Examples:
  # List the tags in ./tagselect.yaml
  tagselect list

  # See where tags land for a given selection
  tagselect list --selected "AWS,Docker"

  # Only the unselected tags, as JSON
  tagselect list --group tags -o json`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			switch listGroup {
			case "", string(tui.RoleSelected), string(tui.RoleTag), "selected", "tags":
				return nil
			}
			return fmt.Errorf("invalid group: %s (must be: selected or tags)", listGroup)
		},
		RunE: runList,
	}

	cmd.Flags().StringVar(&listGroup, "group", "", "Only list one group (selected, tags)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	result := buildListResult(registry)
	result.Tags = filterGroup(result.Tags, listGroup)
	result.Count = len(result.Tags)

	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	default:
		return outputListText(cmd, result)
	}
}

func buildListResult(registry *tags.Registry) ListResult {
	view := selection.New(registry.Names(), registry.Selected()).Snapshot()

	item := func(name string, group tui.Role) ListItem {
		order, ok := view.Order[name]
		if !ok {
			order = -1
		}
		li := ListItem{
			Name:  name,
			Order: order,
			ID:    models.TagID(name),
			Group: string(group),
			Color: registry.Color(name),
		}
		if tag, ok := registry.GetTag(name); ok {
			li.Description = tag.Description
		}
		return li
	}

	// Same placement as the widget
	layout := tui.ComputeLayout(view, models.DefaultUISettings().Width)
	result := ListResult{Selected: view.Selected}
	for _, slot := range layout.Selected {
		result.Tags = append(result.Tags, item(slot.Tag, tui.RoleSelected))
	}
	for _, slot := range layout.NotSelected {
		result.Tags = append(result.Tags, item(slot.Tag, tui.RoleTag))
	}
	return result
}

func filterGroup(items []ListItem, group string) []ListItem {
	var role tui.Role
	switch group {
	case "selected", string(tui.RoleSelected):
		role = tui.RoleSelected
	case "tags", string(tui.RoleTag):
		role = tui.RoleTag
	default:
		return items
	}

	filtered := make([]ListItem, 0, len(items))
	for _, item := range items {
		if item.Group == string(role) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func outputListText(cmd *cobra.Command, result ListResult) error {
	if result.Count == 0 {
		cli.PrintInfo(cmd.OutOrStdout(), "No tags found")
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("ORDER", "NAME", "ID", "GROUP", "COLOR", "DESCRIPTION")
	for _, item := range result.Tags {
		order := "-"
		if item.Order >= 0 {
			order = strconv.Itoa(item.Order)
		}
		table.Row(
			order,
			item.Name,
			item.ID,
			item.Group,
			item.Color,
			cli.ValueOrDash(item.Description),
		)
	}
	if err := table.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d tag(s), %d selected\n", result.Count, len(result.Selected))
	return nil
}
