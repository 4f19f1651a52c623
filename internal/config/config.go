// Package config loads codesqueeze configuration files and per-project ignore files.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

const (
	// addSectionHeader identifies the section listing files to force-include.
	addSectionHeader = "[add]"
	// ignoreSectionHeader identifies the section listing ignored files and directories.
	ignoreSectionHeader = "[ignore]"
	commentPrefix       = "#"
	directorySuffix     = "/"
)

// IgnoreFileRules are the entries read from a .squeezeignore file.
type IgnoreFileRules struct {
	IgnoredFiles       []string
	IgnoredDirectories []string
	AddedFiles         []string
}

// LoadIgnoreFile reads an ignore file. Entries in the [ignore] section (the default)
// that end with a slash name directories, other entries name files. Entries in the [add]
// section name files to force-include. A missing file yields empty rules.
//
// #nosec G304
func LoadIgnoreFile(ignoreFilePath string) (IgnoreFileRules, error) {
	fileHandle, openFileError := os.Open(ignoreFilePath)
	if openFileError != nil {
		if os.IsNotExist(openFileError) {
			return IgnoreFileRules{}, nil
		}
		return IgnoreFileRules{}, openFileError
	}
	defer func() {
		closeError := fileHandle.Close()
		if closeError != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close %s: %v\n", ignoreFilePath, closeError)
		}
	}()

	var rules IgnoreFileRules
	currentSectionHeader := ignoreSectionHeader
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, commentPrefix) {
			continue
		}
		if strings.EqualFold(trimmedLine, addSectionHeader) {
			currentSectionHeader = addSectionHeader
			continue
		}
		if strings.EqualFold(trimmedLine, ignoreSectionHeader) {
			currentSectionHeader = ignoreSectionHeader
			continue
		}
		if currentSectionHeader == addSectionHeader {
			rules.AddedFiles = append(rules.AddedFiles, trimmedLine)
			continue
		}
		if strings.HasSuffix(trimmedLine, directorySuffix) {
			if directoryEntry := strings.TrimRight(trimmedLine, directorySuffix); directoryEntry != "" {
				rules.IgnoredDirectories = append(rules.IgnoredDirectories, directoryEntry)
			}
			continue
		}
		rules.IgnoredFiles = append(rules.IgnoredFiles, trimmedLine)
	}
	if scanError := scanner.Err(); scanError != nil {
		return IgnoreFileRules{}, scanError
	}
	return rules, nil
}
