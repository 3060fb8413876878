// Package commands provides CLI command handlers for oascomponents.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/oascomponents/document"
)

// Default file names used when no paths are given.
const (
	DefaultInput  = "input.json"
	DefaultOutput = "output.json"
)

// ValidateMinOccurrences returns an error if n cannot be used as a hoist threshold.
func ValidateMinOccurrences(n int) error {
	if n < 1 {
		return fmt.Errorf("invalid min-occurrences %d: must be at least 1", n)
	}
	return nil
}

// ValidateOutputPath checks that writing outputPath will not clobber the input.
func ValidateOutputPath(outputPath, inputPath string) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	absInputPath, err := filepath.Abs(inputPath)
	if err != nil {
		return fmt.Errorf("invalid input path %s: %w", inputPath, err)
	}
	if absOutputPath == absInputPath {
		return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
	}
	return nil
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
// This prevents symlink attacks where a symlink could redirect output to an unintended location.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		// File doesn't exist yet; safe to write.
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// OutputFormat picks the encoding for outputPath: its extension when it has
// a known one, otherwise the source format.
func OutputFormat(outputPath string, source document.Format) document.Format {
	if f := document.FormatFromPath(outputPath); f != document.FormatUnknown {
		return f
	}
	return source
}
