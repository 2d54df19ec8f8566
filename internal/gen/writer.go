package gen

import (
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
// It creates the directory if it doesn't exist. Filenames must not
// contain path elements.
func WriteFiles(files []GeneratedFile, outputDir string) ([]string, error) {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	paths := make([]string, 0, len(files))

	for _, file := range files {
		if file.Filename == "" || filepath.Base(file.Filename) != file.Filename || file.Filename == ".." {
			return nil, fmt.Errorf("writing file %q: not a plain filename", file.Filename)
		}

		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return nil, fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		paths = append(paths, outputPath)
	}

	return paths, nil
}
