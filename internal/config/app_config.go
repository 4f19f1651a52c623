package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/codesqueeze/codesqueeze/internal/utils"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration holds defaults that flags extend or override.
type ApplicationConfiguration struct {
	ExtraExtensions   []string          `mapstructure:"extra_extensions" yaml:"extra_extensions"`
	Ignore            []string          `mapstructure:"ignore" yaml:"ignore"`
	IgnoreDirectories []string          `mapstructure:"ignore_directories" yaml:"ignore_directories"`
	AddFiles          []string          `mapstructure:"add_files" yaml:"add_files"`
	Output            string            `mapstructure:"output" yaml:"output"`
	Copy              *bool             `mapstructure:"copy" yaml:"copy"`
	Banner            *bool             `mapstructure:"banner" yaml:"banner"`
	UseIgnoreFile     *bool             `mapstructure:"use_ignore_file" yaml:"use_ignore_file"`
	Tree              TreeConfiguration `mapstructure:"tree" yaml:"tree"`
}

// TreeConfiguration controls the rendered project structure.
type TreeConfiguration struct {
	ShowHidden *bool `mapstructure:"show_hidden" yaml:"show_hidden"`
	MaxDepth   *int  `mapstructure:"max_depth" yaml:"max_depth"`
}

// LoadApplicationConfiguration loads configuration from the global file, then the local
// (or explicit) file, with later sources overriding earlier ones.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, err := os.UserHomeDir(); err == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.GlobalConfigFileName)
		globalConfig, loadErr := loadConfigurationFromPath(globalPath, false)
		if loadErr != nil {
			return ApplicationConfiguration{}, loadErr
		}
		merged = merged.Merge(globalConfig)
	}

	localPath := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	localConfig, loadErr := loadConfigurationFromPath(localPath, options.ExplicitFilePath != "")
	if loadErr != nil {
		return ApplicationConfiguration{}, loadErr
	}
	merged = merged.Merge(localConfig)

	if len(merged.ExtraExtensions) > 0 {
		merged.ExtraExtensions = utils.DeduplicatePatterns(merged.ExtraExtensions)
	}
	if len(merged.IgnoreDirectories) > 0 {
		merged.IgnoreDirectories = utils.DeduplicatePatterns(merged.IgnoreDirectories)
	}
	return merged, nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) string {
	if explicitPath != "" {
		return utils.ResolveAgainst(workingDirectory, explicitPath)
	}
	return filepath.Join(workingDirectory, utils.LocalConfigFileName)
}

// loadConfigurationFromPath reads one YAML file. A missing file yields an empty
// configuration unless required is set.
func loadConfigurationFromPath(path string, required bool) (ApplicationConfiguration, error) {
	if path == "" {
		return ApplicationConfiguration{}, nil
	}
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) && !required {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	reader.SetConfigType("yaml")
	if readErr := reader.ReadInConfig(); readErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var config ApplicationConfiguration
	if decodeErr := reader.Unmarshal(&config); decodeErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return config, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
// Non-empty lists replace lists; set scalars replace scalars.
func (config ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := config
	if len(override.ExtraExtensions) > 0 {
		result.ExtraExtensions = append([]string{}, override.ExtraExtensions...)
	}
	if len(override.Ignore) > 0 {
		result.Ignore = append([]string{}, override.Ignore...)
	}
	if len(override.IgnoreDirectories) > 0 {
		result.IgnoreDirectories = append([]string{}, override.IgnoreDirectories...)
	}
	if len(override.AddFiles) > 0 {
		result.AddFiles = append([]string{}, override.AddFiles...)
	}
	if override.Output != "" {
		result.Output = override.Output
	}
	if override.Copy != nil {
		result.Copy = cloneBool(override.Copy)
	}
	if override.Banner != nil {
		result.Banner = cloneBool(override.Banner)
	}
	if override.UseIgnoreFile != nil {
		result.UseIgnoreFile = cloneBool(override.UseIgnoreFile)
	}
	result.Tree = result.Tree.merge(override.Tree)
	return result
}

func (config TreeConfiguration) merge(override TreeConfiguration) TreeConfiguration {
	result := config
	if override.ShowHidden != nil {
		result.ShowHidden = cloneBool(override.ShowHidden)
	}
	if override.MaxDepth != nil {
		result.MaxDepth = cloneInt(override.MaxDepth)
	}
	return result
}

// BoolOrDefault dereferences value, falling back to defaultValue when unset.
func BoolOrDefault(value *bool, defaultValue bool) bool {
	if value == nil {
		return defaultValue
	}
	return *value
}

// IntOrDefault dereferences value, falling back to defaultValue when unset.
func IntOrDefault(value *int, defaultValue int) int {
	if value == nil {
		return defaultValue
	}
	return *value
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func cloneInt(value *int) *int {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
