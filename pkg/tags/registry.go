package tags

import (
	"fmt"
	"slices"
	"sync"

	"github.com/pluqqy/tagselect/pkg/files"
	"github.com/pluqqy/tagselect/pkg/models"
)

// Registry manages the tag list stored in a tag file
type Registry struct {
	mu       sync.RWMutex
	settings *models.Settings
	path     string
}

// NewRegistry creates a registry over in-memory settings.
// Save writes them to path.
func NewRegistry(path string, settings *models.Settings) *Registry {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	return &Registry{
		settings: settings,
		path:     files.ResolvePath(path),
	}
}

// Open loads the registry from path, using defaults when the file is missing
func Open(path string) (*Registry, error) {
	settings, err := files.LoadSettings(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load tag registry: %w", err)
	}
	return NewRegistry(path, settings), nil
}

// Load re-reads the tag file from disk
func (r *Registry) Load() error {
	settings, err := files.ReadSettings(r.path)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = settings
	return nil
}

// Save writes the tag file to disk
func (r *Registry) Save() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := files.WriteSettings(r.path, r.settings); err != nil {
		return fmt.Errorf("failed to save tag registry: %w", err)
	}
	return nil
}

// Path returns the file the registry saves to
func (r *Registry) Path() string {
	return r.path
}

// Settings returns the settings the registry was loaded with
func (r *Registry) Settings() *models.Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings
}

// GetTag retrieves tag metadata by name, ignoring case
func (r *Registry) GetTag(name string) (*models.Tag, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id := models.TagID(name)
	for _, tag := range r.settings.Tags {
		if models.TagID(tag.Name) == id {
			return &tag, true
		}
	}

	return nil, false
}

// AddTag appends a tag, or updates the metadata of an existing one.
// Names that differ only in case are the same tag; the stored name is kept.
func (r *Registry) AddTag(tag models.Tag) error {
	if err := models.ValidateTagName(tag.Name); err != nil {
		return fmt.Errorf("invalid tag name: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := models.TagID(tag.Name)
	for i, existing := range r.settings.Tags {
		if models.TagID(existing.Name) == id {
			tag.Name = existing.Name
			r.settings.Tags[i] = tag
			return nil
		}
	}

	r.settings.Tags = append(r.settings.Tags, tag)
	return nil
}

// RemoveTag removes a tag, matched ignoring case, and drops it from the
// initial selection
func (r *Registry) RemoveTag(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := models.TagID(name)
	newTags := make([]models.Tag, 0, len(r.settings.Tags))
	found := false

	for _, tag := range r.settings.Tags {
		if models.TagID(tag.Name) != id {
			newTags = append(newTags, tag)
		} else {
			found = true
		}
	}

	if !found {
		return fmt.Errorf("tag '%s' not found in registry", name)
	}

	r.settings.Tags = newTags
	r.settings.Selected = slices.DeleteFunc(r.settings.Selected, func(s string) bool {
		return models.TagID(s) == id
	})
	return nil
}

// ListTags returns all tags in file order
func (r *Registry) ListTags() []models.Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Return a copy to prevent external modification
	tags := make([]models.Tag, len(r.settings.Tags))
	copy(tags, r.settings.Tags)
	return tags
}

// Names returns the tag list in file order
func (r *Registry) Names() []string {
	return models.TagNames(r.ListTags())
}

// Selected returns the initial selection from the tag file
func (r *Registry) Selected() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.settings.Selected)
}

// Color returns the configured color for a tag or its palette color
func (r *Registry) Color(name string) string {
	if tag, ok := r.GetTag(name); ok {
		return models.GetTagColor(name, tag.Color)
	}
	return models.GetTagColor(name, "")
}
