package cli

import (
	"fmt"
	"os"
	"strings"
)

// ValidateOutputFormat checks that format is one OutputResults understands
func ValidateOutputFormat(format string) error {
	switch OutputFormat(strings.ToLower(format)) {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateWidth checks a layout width given on the command line
func ValidateWidth(width int) error {
	if width != 0 && width < 20 {
		return fmt.Errorf("invalid width: %d (must be at least 20)", width)
	}
	return nil
}

// ValidateFilePath checks that path is not a directory. A missing file is fine.
func ValidateFilePath(path string) error {
	if path == "" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error accessing path: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory, expected file: %s", path)
	}
	return nil
}
