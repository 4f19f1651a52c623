package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/codesqueeze/codesqueeze/internal/utils"
)

// InitTarget identifies where configuration should be initialized.
type InitTarget string

const (
	// InitTargetLocal writes configuration into the working directory.
	InitTargetLocal InitTarget = "local"
	// InitTargetGlobal writes configuration into the global configuration directory.
	InitTargetGlobal InitTarget = "global"

	// UnlimitedTreeDepth disables the tree depth limit.
	UnlimitedTreeDepth = -1
)

// InitOptions controls how configuration initialization behaves.
type InitOptions struct {
	Target           InitTarget
	Force            bool
	WorkingDirectory string
}

// DefaultConfiguration returns the configuration written by InitializeConfiguration.
func DefaultConfiguration() ApplicationConfiguration {
	copyEnabled := false
	bannerEnabled := true
	useIgnoreFile := true
	showHidden := false
	maxDepth := UnlimitedTreeDepth
	return ApplicationConfiguration{
		ExtraExtensions:   []string{},
		Ignore:            []string{},
		IgnoreDirectories: []string{utils.GitDirectoryName, "__pycache__", "node_modules"},
		AddFiles:          []string{},
		Copy:              &copyEnabled,
		Banner:            &bannerEnabled,
		UseIgnoreFile:     &useIgnoreFile,
		Tree: TreeConfiguration{
			ShowHidden: &showHidden,
			MaxDepth:   &maxDepth,
		},
	}
}

// InitializeConfiguration writes the default configuration to the requested target.
func InitializeConfiguration(options InitOptions) (string, error) {
	target := options.Target
	if target == "" {
		target = InitTargetLocal
	}
	var destinationPath string
	switch target {
	case InitTargetLocal:
		workingDirectory := options.WorkingDirectory
		if workingDirectory == "" {
			current, err := os.Getwd()
			if err != nil {
				return "", fmt.Errorf("determine working directory for configuration: %w", err)
			}
			workingDirectory = current
		}
		destinationPath = filepath.Join(workingDirectory, utils.LocalConfigFileName)
	case InitTargetGlobal:
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory for configuration: %w", err)
		}
		configurationDirectory := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName)
		if err := os.MkdirAll(configurationDirectory, 0o755); err != nil {
			return "", fmt.Errorf("create configuration directory %s: %w", configurationDirectory, err)
		}
		destinationPath = filepath.Join(configurationDirectory, utils.GlobalConfigFileName)
	default:
		return "", fmt.Errorf("unsupported init target %q", target)
	}

	if _, err := os.Stat(destinationPath); err == nil {
		if !options.Force {
			return "", fmt.Errorf("configuration file already exists at %s", destinationPath)
		}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("inspect configuration path %s: %w", destinationPath, err)
	}

	template, marshalErr := yaml.Marshal(DefaultConfiguration())
	if marshalErr != nil {
		return "", fmt.Errorf("encode default configuration: %w", marshalErr)
	}
	if err := os.WriteFile(destinationPath, template, 0o600); err != nil {
		return "", fmt.Errorf("write configuration to %s: %w", destinationPath, err)
	}

	return destinationPath, nil
}
