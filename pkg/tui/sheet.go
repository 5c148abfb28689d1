package tui

import (
	"github.com/pluqqy/tagselect/pkg/models"
	"github.com/pluqqy/tagselect/pkg/styles"
)

// SheetID is the fixed key of the chip sheet in the style registry
const SheetID = "tagselect__view-transitions"

// SheetRegistrar publishes one chip rule per animation identifier
type SheetRegistrar struct {
	Registry *styles.Registry
	// Colors resolves a tag's resting color; nil uses the palette
	Colors func(tag string) string
}

// RegisterVisualRules replaces the whole sheet for the given tag list
func (r SheetRegistrar) RegisterVisualRules(tags []string) {
	registry := r.Registry
	if registry == nil {
		registry = styles.Default
	}

	rules := make([]styles.Rule, 0, len(tags))
	for _, tag := range tags {
		color := models.GetTagColor(tag, "")
		if r.Colors != nil {
			color = r.Colors(tag)
		}
		rules = append(rules, styles.Rule{
			ID:    models.TagID(tag),
			Color: color,
			Chip:  GetTagChipStyle(color),
		})
	}
	registry.Replace(SheetID, rules)
}
