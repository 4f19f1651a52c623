package collector

import (
	"os"
	"path/filepath"
	"strings"
)

// DirectoryMatcher decides whether a directory is ignored.
//
// A bare name such as "__pycache__" matches a directory with that base name at any depth.
// An entry containing a separator, or an absolute path, names one directory relative to
// the root; it matches that directory and everything below it. Comparison is always by
// whole path segments, so "lib" never matches "lib2".
type DirectoryMatcher struct {
	rootDirectory string
	names         map[string]struct{}
	paths         []string
}

// NewDirectoryMatcher builds a matcher for entries relative to rootDirectory.
func NewDirectoryMatcher(rootDirectory string, entries []string) DirectoryMatcher {
	matcher := DirectoryMatcher{
		rootDirectory: filepath.Clean(rootDirectory),
		names:         make(map[string]struct{}),
	}
	for _, entry := range entries {
		trimmedEntry := strings.TrimSpace(entry)
		if trimmedEntry == "" {
			continue
		}
		normalizedEntry := strings.TrimRight(filepath.FromSlash(trimmedEntry), string(os.PathSeparator))
		if normalizedEntry == "" {
			continue
		}
		if !filepath.IsAbs(normalizedEntry) && !strings.ContainsRune(normalizedEntry, os.PathSeparator) {
			matcher.names[normalizedEntry] = struct{}{}
			continue
		}
		if !filepath.IsAbs(normalizedEntry) {
			normalizedEntry = filepath.Join(matcher.rootDirectory, normalizedEntry)
		}
		matcher.paths = append(matcher.paths, filepath.Clean(normalizedEntry))
	}
	return matcher
}

// IsEmpty reports whether the matcher ignores nothing.
func (matcher DirectoryMatcher) IsEmpty() bool {
	return len(matcher.names) == 0 && len(matcher.paths) == 0
}

// MatchesDirectory reports whether the directory at absolutePath is ignored itself.
func (matcher DirectoryMatcher) MatchesDirectory(absolutePath string) bool {
	cleanPath := filepath.Clean(absolutePath)
	if _, ignoredName := matcher.names[filepath.Base(cleanPath)]; ignoredName && cleanPath != matcher.rootDirectory {
		return true
	}
	for _, ignoredPath := range matcher.paths {
		if isWithin(cleanPath, ignoredPath) {
			return true
		}
	}
	return false
}

// ContainsFile reports whether absolutePath lies below an ignored directory.
func (matcher DirectoryMatcher) ContainsFile(absolutePath string) bool {
	cleanPath := filepath.Clean(absolutePath)
	for _, ignoredPath := range matcher.paths {
		if cleanPath != ignoredPath && isWithin(cleanPath, ignoredPath) {
			return true
		}
	}
	if len(matcher.names) == 0 {
		return false
	}
	parentDirectory := filepath.Dir(cleanPath)
	relativeParent, relativeError := filepath.Rel(matcher.rootDirectory, parentDirectory)
	// Name entries only apply to directories inside the root.
	if relativeError != nil || relativeParent == "." || relativeParent == ".." || strings.HasPrefix(relativeParent, ".."+string(os.PathSeparator)) {
		return false
	}
	for _, segment := range strings.Split(relativeParent, string(os.PathSeparator)) {
		if _, ignoredName := matcher.names[segment]; ignoredName {
			return true
		}
	}
	return false
}

// isWithin reports whether candidate equals directory or is nested below it.
func isWithin(candidate string, directory string) bool {
	if candidate == directory {
		return true
	}
	return strings.HasPrefix(candidate, directory+string(os.PathSeparator))
}
