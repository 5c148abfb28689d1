package tui

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/tagselect/pkg/models"
)

func (s *Selector) renderGroup(title string, slots []Slot, role Role, width int, empty string) string {
	active := s.focus == role

	var content strings.Builder
	content.WriteString(renderHeader(title, width-groupChrome, active))
	content.WriteString("\n\n")

	if len(slots) == 0 {
		content.WriteString(HeaderPaddingStyle.Render(EmptyStyle.Render(empty)))
	} else {
		var rows []string
		var row strings.Builder
		currentRow := 0
		for _, slot := range slots {
			if slot.Row != currentRow {
				rows = append(rows, row.String())
				row.Reset()
				currentRow = slot.Row
			}
			focused := active && slot.Index == s.cursors[role]
			row.WriteString(s.renderChip(slot, focused))
		}
		rows = append(rows, row.String())
		content.WriteString(HeaderPaddingStyle.Render(strings.Join(rows, "\n")))
	}

	borderStyle := InactiveBorderStyle
	if active {
		borderStyle = ActiveBorderStyle
	}
	return borderStyle.Width(width - 2).Render(content.String())
}

// renderChip draws one chip using the sheet rule for its animation
// identifier, blending toward the rule's color while it animates
func (s *Selector) renderChip(slot Slot, focused bool) string {
	color := models.GetTagColor(slot.Tag, "")
	if rule, ok := s.sheet.Rule(SheetID, slot.ID); ok {
		color = rule.Color
	}

	lead, trail := "  ", "  "
	if s.animator != nil {
		if p, moving := s.animator.Progress(slot.ID); moving {
			color = blendColor(ColorTransitionFrom, color, p)
			if origin, ok := s.animator.Origin(slot.ID); ok && origin.Role != slot.Role {
				lead = DescriptionStyle.Render(arrivalMark(slot.Role) + " ")
			}
		}
	}

	var chip string
	if slot.Role == RoleSelected {
		chip = GetTagChipStyle(color).Render(slot.Label)
	} else {
		chip = GetTagTextStyle(color).Render(slot.Label)
	}

	if focused {
		return CursorStyle.Render("▶ ") + chip + CursorStyle.Render(" ◀")
	}
	return lead + chip + trail
}

func (s *Selector) focusedDescription(width int) string {
	if s.describe == nil {
		return ""
	}
	slot, ok := s.Focused()
	if !ok {
		return ""
	}
	desc := s.describe(slot.Tag)
	if desc == "" {
		return ""
	}
	return HeaderPaddingStyle.Render(DescriptionStyle.Render(wordwrap.String(desc, max(width-2, 10))))
}

// arrivalMark shows which way a chip travelled between groups
func arrivalMark(role Role) string {
	if role == RoleSelected {
		return "↑"
	}
	return "↓"
}

// blendColor mixes two hex colors; non-hex colors are returned unblended
func blendColor(from, to string, progress float64) string {
	c1, err := colorful.Hex(from)
	if err != nil {
		return to
	}
	c2, err := colorful.Hex(to)
	if err != nil {
		return to
	}
	return c1.BlendLab(c2, progress).Clamped().Hex()
}
