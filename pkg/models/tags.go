package models

import (
	"errors"
	"hash/fnv"
	"strings"
	"unicode"
)

// Tag-related errors
var (
	ErrEmptyTagName        = errors.New("tag name cannot be empty")
	ErrTagNameTooLong      = errors.New("tag name cannot exceed 50 characters")
	ErrInvalidTagCharacter = errors.New("tag name contains invalid characters")
)

// MaxTagNameLength is the longest tag name accepted in a tag file
const MaxTagNameLength = 50

// Tag represents a selectable tag with display metadata
type Tag struct {
	Name        string `yaml:"name" json:"name"`
	Color       string `yaml:"color,omitempty" json:"color,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// DefaultColorPalette provides a curated set of colors for tags
// These colors are chosen for good contrast on dark terminals
var DefaultColorPalette = []string{
	"#e74c3c", // red
	"#3498db", // blue
	"#2ecc71", // green
	"#f39c12", // orange
	"#9b59b6", // purple
	"#1abc9c", // turquoise
	"#34495e", // dark gray
	"#e67e22", // dark orange
	"#16a085", // dark turquoise
	"#8e44ad", // dark purple
	"#f1c40f", // yellow
	"#d35400", // pumpkin
	"#27ae60", // nephritis
	"#2980b9", // belize hole
	"#c0392b", // pomegranate
}

// TagID returns the animation identifier for a tag.
// Tags that differ only by case share an identifier.
func TagID(tag string) string {
	return strings.ToLower(tag)
}

// GetTagColor returns the color for a tag, using the configured color if available
// or generating a consistent color from the tag's identifier
func GetTagColor(tagName string, configuredColor string) string {
	if configuredColor != "" {
		return configuredColor
	}

	h := fnv.New32a()
	h.Write([]byte(TagID(tagName)))
	hash := h.Sum32()

	return DefaultColorPalette[int(hash%uint32(len(DefaultColorPalette)))]
}

// ValidateTagName checks if a tag name can be rendered as a chip
func ValidateTagName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyTagName
	}

	if len([]rune(name)) > MaxTagNameLength {
		return ErrTagNameTooLong
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return ErrInvalidTagCharacter
		}
	}

	return nil
}

// TagNames returns the names of the given tags in order
func TagNames(tags []Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}

// TagsFromNames builds tags without metadata from plain names
func TagsFromNames(names []string) []Tag {
	tags := make([]Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, Tag{Name: name})
	}
	return tags
}

// SplitTagList parses a comma separated list, dropping empty entries
func SplitTagList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}
