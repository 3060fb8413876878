package document

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents the textual encoding of a document.
type Format string

const (
	// FormatYAML indicates a YAML encoded document
	FormatYAML Format = "yaml"
	// FormatJSON indicates a JSON encoded document
	FormatJSON Format = "json"
	// FormatUnknown indicates the format could not be determined
	FormatUnknown Format = "unknown"
)

// FormatFromPath detects the format from a file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// FormatFromContent attempts to detect the format from the content bytes.
// JSON objects start with '{' or '[', anything else is treated as YAML.
func FormatFromContent(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return FormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return FormatJSON
	}
	return FormatYAML
}
