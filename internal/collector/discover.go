package collector

import (
	"io/fs"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	warningAccessPathMessage  = "skipping unreadable path"
	debugPrunedDirectoryLabel = "pruned ignored directory"
)

// EnumerateFiles returns every non-directory entry below rootDirectory in lexical walk order.
// Directories accepted by the matcher are pruned, never entered. Unreadable directories
// are logged and skipped.
func EnumerateFiles(rootDirectory string, matcher DirectoryMatcher, logger *zap.Logger) ([]string, error) {
	var filePaths []string
	walkError := filepath.WalkDir(rootDirectory, func(walkedPath string, directoryEntry fs.DirEntry, accessError error) error {
		if accessError != nil {
			logger.Warn(warningAccessPathMessage, zap.String("path", walkedPath), zap.Error(accessError))
			if directoryEntry != nil && directoryEntry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if directoryEntry.IsDir() {
			if walkedPath != rootDirectory && matcher.MatchesDirectory(walkedPath) {
				logger.Debug(debugPrunedDirectoryLabel, zap.String("path", walkedPath))
				return filepath.SkipDir
			}
			return nil
		}
		filePaths = append(filePaths, walkedPath)
		return nil
	})
	if walkError != nil {
		return nil, walkError
	}
	return filePaths, nil
}
