package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/tagselect/pkg/models"
)

const (
	ProjectFile = "tagselect.yaml"
	LogFile     = "tagselect.log"
)

// ErrNoProjectFile is returned when the tag file does not exist
var ErrNoProjectFile = errors.New("no tagselect.yaml found")

// ResolvePath returns path, or the default project file when path is empty
func ResolvePath(path string) string {
	if path == "" {
		return ProjectFile
	}
	return path
}

// ReadSettings loads and validates a tag file
func ReadSettings(path string) (*models.Settings, error) {
	path = ResolvePath(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrNoProjectFile, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var settings models.Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for _, tag := range settings.Tags {
		if err := models.ValidateTagName(tag.Name); err != nil {
			return nil, fmt.Errorf("invalid tag %q in %s: %w", tag.Name, path, err)
		}
	}

	settings.ApplyDefaults()
	return &settings, nil
}

// LoadSettings reads the tag file, falling back to defaults when it is missing
func LoadSettings(path string) (*models.Settings, error) {
	settings, err := ReadSettings(path)
	if errors.Is(err, ErrNoProjectFile) {
		return models.DefaultSettings(), nil
	}
	return settings, err
}

// WriteSettings writes a tag file atomically
func WriteSettings(path string, settings *models.Settings) error {
	path = ResolvePath(path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmpFile, err)
	}

	if err := os.Rename(tmpFile, path); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	return nil
}

// InitProject writes a default tag file. An existing file is only
// replaced when force is set.
func InitProject(path string, force bool) error {
	path = ResolvePath(path)

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	return WriteSettings(path, models.DefaultSettings())
}
