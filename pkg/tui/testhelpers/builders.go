package testhelpers

import (
	"github.com/pluqqy/tagselect/pkg/models"
)

// SettingsBuilder builds tag file settings for tests
type SettingsBuilder struct {
	settings *models.Settings
}

// NewSettingsBuilder starts from an empty tag list with default UI settings
func NewSettingsBuilder() *SettingsBuilder {
	settings := models.DefaultSettings()
	settings.Tags = []models.Tag{}
	return &SettingsBuilder{settings: settings}
}

// WithTags appends tags without metadata
func (b *SettingsBuilder) WithTags(names ...string) *SettingsBuilder {
	b.settings.Tags = append(b.settings.Tags, models.TagsFromNames(names)...)
	return b
}

// WithTag appends a tag with a color and description
func (b *SettingsBuilder) WithTag(name, color, description string) *SettingsBuilder {
	b.settings.Tags = append(b.settings.Tags, models.Tag{
		Name:        name,
		Color:       color,
		Description: description,
	})
	return b
}

// WithSelected sets the initial selection
func (b *SettingsBuilder) WithSelected(selected ...string) *SettingsBuilder {
	b.settings.Selected = selected
	return b
}

// WithoutAnimation turns chip animation off
func (b *SettingsBuilder) WithoutAnimation() *SettingsBuilder {
	b.settings.UI.DisableAnimation = true
	return b
}

// Build returns the settings
func (b *SettingsBuilder) Build() *models.Settings {
	return b.settings
}
