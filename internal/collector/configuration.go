// Package collector gathers project files into a single prompt-ready text artifact.
package collector

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/codesqueeze/codesqueeze/internal/utils"
)

const (
	// outputFileSuffix is appended to the root directory path to form the default output path.
	outputFileSuffix = "_codebase.txt"

	errorAbsolutePathFormat = "getting absolute path for %s: %w"
	errorRootMissingFormat  = "directory '%s' does not exist"
	errorRootStatFormat     = "stat failed for '%s': %w"
	errorRootNotDirFormat   = "'%s' is not a directory"
)

// TreeOptions controls directory tree rendering.
type TreeOptions struct {
	// MaxDepth limits recursion; a negative value means unlimited.
	MaxDepth   int
	ShowHidden bool
	// ExcludedPath is an absolute file path left out of the tree, normally the output file.
	ExcludedPath string
}

// ConfigurationInput carries the raw values supplied by flags and configuration files.
type ConfigurationInput struct {
	RootDirectory      string
	ExtraExtensions    []string
	IgnoredFiles       []string
	IgnoredDirectories []string
	AddedFiles         []string
	OutputPath         string
	Tree               TreeOptions
}

// Configuration is the validated, fully resolved input of one collection run.
type Configuration struct {
	RootDirectory      string
	Extensions         ExtensionSet
	IgnoredFiles       []string
	IgnoredDirectories DirectoryMatcher
	AddedFiles         []string
	OutputPath         string
	Tree               TreeOptions
}

// NewConfiguration validates the root directory and resolves every path.
// Ignored and added files are relative to the root unless absolute; the output path is
// relative to the working directory and defaults to "<root>_codebase.txt".
func NewConfiguration(input ConfigurationInput) (Configuration, error) {
	absoluteRootDirectory, absolutePathError := filepath.Abs(input.RootDirectory)
	if absolutePathError != nil {
		return Configuration{}, fmt.Errorf(errorAbsolutePathFormat, input.RootDirectory, absolutePathError)
	}
	rootInformation, statError := os.Stat(absoluteRootDirectory)
	if statError != nil {
		if os.IsNotExist(statError) {
			return Configuration{}, fmt.Errorf(errorRootMissingFormat, input.RootDirectory)
		}
		return Configuration{}, fmt.Errorf(errorRootStatFormat, input.RootDirectory, statError)
	}
	if !rootInformation.IsDir() {
		return Configuration{}, fmt.Errorf(errorRootNotDirFormat, input.RootDirectory)
	}

	configuration := Configuration{
		RootDirectory:      absoluteRootDirectory,
		Extensions:         NewExtensionSet(input.ExtraExtensions),
		IgnoredFiles:       resolvePaths(absoluteRootDirectory, input.IgnoredFiles),
		IgnoredDirectories: NewDirectoryMatcher(absoluteRootDirectory, input.IgnoredDirectories),
		AddedFiles:         resolvePaths(absoluteRootDirectory, input.AddedFiles),
		Tree:               input.Tree,
	}

	if input.OutputPath == "" {
		configuration.OutputPath = absoluteRootDirectory + outputFileSuffix
	} else {
		absoluteOutputPath, outputPathError := filepath.Abs(input.OutputPath)
		if outputPathError != nil {
			return Configuration{}, fmt.Errorf(errorAbsolutePathFormat, input.OutputPath, outputPathError)
		}
		configuration.OutputPath = absoluteOutputPath
	}
	return configuration, nil
}

func resolvePaths(rootDirectory string, paths []string) []string {
	var resolved []string
	for _, path := range utils.NonEmpty(paths) {
		resolved = append(resolved, utils.ResolveAgainst(rootDirectory, path))
	}
	return utils.DeduplicatePatterns(resolved)
}
