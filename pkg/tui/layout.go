package tui

import (
	"cmp"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/pluqqy/tagselect/pkg/models"
	"github.com/pluqqy/tagselect/pkg/selection"
)

// Role is the group a rendered chip belongs to
type Role string

const (
	RoleSelected Role = "selected-tag"
	RoleTag      Role = "tag"
)

const (
	maxLabelWidth = 24
	// Border plus horizontal padding of a group box
	groupChrome = 4
	// Cursor markers or blank space on both sides of a chip
	cellChrome = 4
	// Chip horizontal padding
	chipPadding = 2
	removeMark  = " ×"
)

// Slot is one chip's place in the layout
type Slot struct {
	Tag   string
	ID    string
	Role  Role
	Order int
	Index int // position within its group
	Row   int
	Col   int
	Label string
	Width int // cell width including chrome
}

// Layout places both groups for a given width
type Layout struct {
	Width       int
	Selected    []Slot
	NotSelected []Slot
}

// Group returns the slots for one role
func (l Layout) Group(role Role) []Slot {
	if role == RoleSelected {
		return l.Selected
	}
	return l.NotSelected
}

// Positions indexes slots by animation identifier
func (l Layout) Positions() map[string]Slot {
	positions := make(map[string]Slot, len(l.Selected)+len(l.NotSelected))
	for _, slot := range l.NotSelected {
		positions[slot.ID] = slot
	}
	for _, slot := range l.Selected {
		positions[slot.ID] = slot
	}
	return positions
}

// ComputeLayout flows both groups into rows of the given width.
// Selected chips keep selection order; the rest are placed by order index.
func ComputeLayout(v selection.View, width int) Layout {
	notSelected := slices.Clone(v.NotSelected)
	slices.SortStableFunc(notSelected, func(a, b string) int {
		return cmp.Compare(v.Order[a], v.Order[b])
	})

	return Layout{
		Width:       width,
		Selected:    flowGroup(v.Selected, RoleSelected, v.Order, width),
		NotSelected: flowGroup(notSelected, RoleTag, v.Order, width),
	}
}

func flowGroup(tags []string, role Role, order map[string]int, width int) []Slot {
	inner := width - groupChrome
	labelLimit := maxLabelWidth
	if limit := inner - cellChrome - chipPadding; limit < labelLimit {
		labelLimit = max(limit, 4)
	}

	slots := make([]Slot, 0, len(tags))
	row, col := 0, 0
	for i, tag := range tags {
		label := chipLabel(tag, role, labelLimit)
		cell := lipgloss.Width(label) + chipPadding + cellChrome

		if col > 0 && col+cell > inner {
			row++
			col = 0
		}

		slots = append(slots, Slot{
			Tag:   tag,
			ID:    models.TagID(tag),
			Role:  role,
			Order: order[tag],
			Index: i,
			Row:   row,
			Col:   col,
			Label: label,
			Width: cell,
		})
		col += cell
	}
	return slots
}

func chipLabel(tag string, role Role, limit int) string {
	if role == RoleSelected {
		name := truncate.StringWithTail(tag, uint(max(limit-lipgloss.Width(removeMark), 1)), "…")
		return name + removeMark
	}
	return truncate.StringWithTail(tag, uint(limit), "…")
}
