package collector

import (
	"path/filepath"

	"go.uber.org/zap"
)

// FilterByExtension keeps the paths whose extension is in the allow-list.
// Paths without an extension are dropped.
func FilterByExtension(paths []string, extensions ExtensionSet) []string {
	var filtered []string
	for _, path := range paths {
		if extensions.Contains(FileExtension(path)) {
			filtered = append(filtered, path)
		}
	}
	return filtered
}

// AppendExplicitFiles appends each added path that is not already selected.
// Added files bypass the extension check.
func AppendExplicitFiles(paths []string, addedFiles []string) []string {
	present := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		present[filepath.Clean(path)] = struct{}{}
	}
	result := append([]string(nil), paths...)
	for _, addedFile := range addedFiles {
		cleanAddedFile := filepath.Clean(addedFile)
		if _, exists := present[cleanAddedFile]; exists {
			continue
		}
		present[cleanAddedFile] = struct{}{}
		result = append(result, cleanAddedFile)
	}
	return result
}

// RemoveIgnoredFiles drops paths equal to an ignored file after normalization.
func RemoveIgnoredFiles(paths []string, ignoredFiles []string) []string {
	if len(ignoredFiles) == 0 {
		return paths
	}
	ignored := make(map[string]struct{}, len(ignoredFiles))
	for _, ignoredFile := range ignoredFiles {
		ignored[filepath.Clean(ignoredFile)] = struct{}{}
	}
	var kept []string
	for _, path := range paths {
		if _, isIgnored := ignored[filepath.Clean(path)]; !isIgnored {
			kept = append(kept, path)
		}
	}
	return kept
}

// RemoveIgnoredDirectories drops paths lying below an ignored directory.
func RemoveIgnoredDirectories(paths []string, matcher DirectoryMatcher) []string {
	if matcher.IsEmpty() {
		return paths
	}
	var kept []string
	for _, path := range paths {
		if !matcher.ContainsFile(path) {
			kept = append(kept, path)
		}
	}
	return kept
}

// SelectFiles runs the selection pipeline: discover, filter by extension, add explicit
// files, remove ignored files, remove files under ignored directories. The output file
// is never selected, so an artifact written inside the root does not collect itself.
func SelectFiles(configuration Configuration, logger *zap.Logger) ([]string, error) {
	discoveredFiles, enumerateError := EnumerateFiles(configuration.RootDirectory, configuration.IgnoredDirectories, logger)
	if enumerateError != nil {
		return nil, enumerateError
	}
	selectedFiles := FilterByExtension(discoveredFiles, configuration.Extensions)
	selectedFiles = AppendExplicitFiles(selectedFiles, configuration.AddedFiles)
	selectedFiles = RemoveIgnoredFiles(selectedFiles, configuration.IgnoredFiles)
	selectedFiles = RemoveIgnoredDirectories(selectedFiles, configuration.IgnoredDirectories)
	if configuration.OutputPath != "" {
		selectedFiles = RemoveIgnoredFiles(selectedFiles, []string{configuration.OutputPath})
	}
	logger.Debug("selected files",
		zap.Int("discovered", len(discoveredFiles)),
		zap.Int("selected", len(selectedFiles)),
	)
	return selectedFiles, nil
}
