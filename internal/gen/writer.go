package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// Check compares generated files against what is on disk and returns the
// names of files that are missing or stale. It writes nothing.
func Check(files []GeneratedFile, outputDir string) ([]string, error) {
	var stale []string

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		onDisk, err := os.ReadFile(outputPath)
		if os.IsNotExist(err) {
			stale = append(stale, file.Filename)
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("reading file %s: %w", file.Filename, err)
		}

		if !bytes.Equal(onDisk, file.Content) {
			stale = append(stale, file.Filename)
		}
	}

	return stale, nil
}
