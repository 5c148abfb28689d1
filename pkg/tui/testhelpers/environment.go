package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/tagselect/pkg/files"
	"github.com/pluqqy/tagselect/pkg/models"
)

// TestEnvironment is a temporary directory holding a tag file
type TestEnvironment struct {
	t          *testing.T
	TempDir    string
	OriginalWd string
}

// NewTestEnvironment creates a temporary directory that is removed, and the
// working directory restored, when the test ends
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	env := &TestEnvironment{
		t:          t,
		TempDir:    t.TempDir(),
		OriginalWd: originalWd,
	}
	t.Cleanup(func() {
		os.Chdir(originalWd)
	})
	return env
}

// ChangeToTempDir changes the working directory to the temp directory
func (e *TestEnvironment) ChangeToTempDir() {
	e.t.Helper()
	if err := os.Chdir(e.TempDir); err != nil {
		e.t.Fatalf("Failed to change to temp dir: %v", err)
	}
}

// TagFilePath returns where the environment's tag file lives
func (e *TestEnvironment) TagFilePath() string {
	return filepath.Join(e.TempDir, files.ProjectFile)
}

// WriteSettings writes settings as the environment's tag file
func (e *TestEnvironment) WriteSettings(settings *models.Settings) string {
	e.t.Helper()

	data, err := yaml.Marshal(settings)
	if err != nil {
		e.t.Fatalf("Failed to marshal settings: %v", err)
	}
	return e.WriteTagFile(string(data))
}

// WriteTagFile writes raw YAML as the environment's tag file
func (e *TestEnvironment) WriteTagFile(content string) string {
	e.t.Helper()

	path := e.TagFilePath()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write tag file: %v", err)
	}
	return path
}
