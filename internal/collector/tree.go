package collector

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	treeBranchConnector     = "├── "
	treeLastConnector       = "└── "
	treeBranchContinuation  = "│   "
	treeLastContinuation    = "    "
	treeNotDirectoryMessage = "%s is not a directory\n"
	hiddenEntryPrefix       = "."
)

// RenderTree returns an ASCII tree of rootDirectory. Each level lists directories first,
// then files, both ordered case-insensitively. Symbolic links to directories count as
// directories and are expanded unless they lead back into a directory already on the
// current branch. Hidden entries are left out unless options.ShowHidden is set, and
// directories accepted by matcher are left out entirely. Unreadable directories render
// as empty subtrees.
func RenderTree(rootDirectory string, options TreeOptions, matcher DirectoryMatcher) string {
	rootInformation, statError := os.Stat(rootDirectory)
	if statError != nil || !rootInformation.IsDir() {
		return fmt.Sprintf(treeNotDirectoryMessage, rootDirectory)
	}
	ancestors := map[string]struct{}{resolvedPath(rootDirectory): {}}
	lines := renderTreeLevel(rootDirectory, "", 0, options, matcher, ancestors)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// treeEntry is a directory entry with symbolic links resolved for sorting and expansion.
type treeEntry struct {
	name        string
	isDirectory bool
}

func renderTreeLevel(directoryPath string, prefix string, depth int, options TreeOptions, matcher DirectoryMatcher, ancestors map[string]struct{}) []string {
	if options.MaxDepth >= 0 && depth > options.MaxDepth {
		return nil
	}
	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		return nil
	}

	visibleEntries := make([]treeEntry, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		entryName := directoryEntry.Name()
		if !options.ShowHidden && strings.HasPrefix(entryName, hiddenEntryPrefix) {
			continue
		}
		entryPath := filepath.Join(directoryPath, entryName)
		if options.ExcludedPath != "" && entryPath == filepath.Clean(options.ExcludedPath) {
			continue
		}
		isDirectory := isDirectoryEntry(entryPath, directoryEntry)
		if isDirectory && matcher.MatchesDirectory(entryPath) {
			continue
		}
		visibleEntries = append(visibleEntries, treeEntry{name: entryName, isDirectory: isDirectory})
	}
	sort.SliceStable(visibleEntries, func(leftIndex, rightIndex int) bool {
		leftEntry, rightEntry := visibleEntries[leftIndex], visibleEntries[rightIndex]
		if leftEntry.isDirectory != rightEntry.isDirectory {
			return leftEntry.isDirectory
		}
		return strings.ToLower(leftEntry.name) < strings.ToLower(rightEntry.name)
	})

	var lines []string
	for entryIndex, entry := range visibleEntries {
		connector := treeBranchConnector
		continuation := treeBranchContinuation
		if entryIndex == len(visibleEntries)-1 {
			connector = treeLastConnector
			continuation = treeLastContinuation
		}
		lines = append(lines, prefix+connector+entry.name)
		if !entry.isDirectory {
			continue
		}
		childPath := filepath.Join(directoryPath, entry.name)
		resolvedChild := resolvedPath(childPath)
		if _, cycle := ancestors[resolvedChild]; cycle {
			continue
		}
		ancestors[resolvedChild] = struct{}{}
		lines = append(lines, renderTreeLevel(childPath, prefix+continuation, depth+1, options, matcher, ancestors)...)
		delete(ancestors, resolvedChild)
	}
	return lines
}

// isDirectoryEntry reports whether entry is a directory, following symbolic links.
func isDirectoryEntry(entryPath string, entry os.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	targetInformation, statError := os.Stat(entryPath)
	return statError == nil && targetInformation.IsDir()
}

// resolvedPath returns path with symbolic links evaluated, or path itself when that fails.
func resolvedPath(path string) string {
	if evaluatedPath, evaluateError := filepath.EvalSymlinks(path); evaluateError == nil {
		return evaluatedPath
	}
	return filepath.Clean(path)
}
