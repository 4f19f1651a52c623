// Package cli provides the command line interface.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/codesqueeze/codesqueeze/internal/banner"
	"github.com/codesqueeze/codesqueeze/internal/collector"
	"github.com/codesqueeze/codesqueeze/internal/config"
	"github.com/codesqueeze/codesqueeze/internal/output"
	"github.com/codesqueeze/codesqueeze/internal/services/clipboard"
	"github.com/codesqueeze/codesqueeze/internal/tokenizer"
	"github.com/codesqueeze/codesqueeze/internal/utils"
)

const (
	extraExtensionsFlagName   = "extra-extensions"
	extraExtensionsShorthand  = "e"
	ignoreFlagName            = "ignore"
	ignoreShorthand           = "i"
	ignoreDirectoryFlagName   = "ignore-directory"
	ignoreDirectoryShorthand  = "d"
	addFilesFlagName          = "add-files"
	addFilesShorthand         = "f"
	outputFlagName            = "output"
	outputShorthand           = "o"
	showHiddenFlagName        = "show-hidden"
	maxDepthFlagName          = "max-depth"
	noBannerFlagName          = "no-banner"
	noIgnoreFileFlagName      = "no-ignore-file"
	configFlagName            = "config"
	versionFlagName           = "version"
	globalFlagName            = "global"
	forceFlagName             = "force"
	versionTemplate           = "codesqueeze version: %s\n"
	initializedTemplate       = "Configuration written to %s\n"
	rootUse                   = "codesqueeze PROJECT_DIR"
	rootShortDescription      = "Squeeze a project's code into one prompt-ready text file"
	rootLongDescription       = `codesqueeze walks PROJECT_DIR, keeps files with known source extensions,
and writes them into a single text file prefixed with an agent prompt and a
directory tree. The result is compressed (newlines removed, tab runs collapsed)
and can be copied to the clipboard with a query trailer.`
	rootUsageExample = `  # Squeeze the current project into ./myproject_codebase.txt
  codesqueeze ./myproject

  # Include Markdown files and skip generated directories
  codesqueeze ./myproject -e md -id node_modules -d build

  # Force-include a file, write elsewhere and copy to the clipboard
  codesqueeze ./myproject -f Dockerfile -o /tmp/context.txt --copy`
	initUse              = "init"
	initShortDescription = "write a default configuration file"
	initLongDescription  = `Write the default configuration to .codesqueeze.yaml in the working directory,
or to ~/.codesqueeze/config.yaml with --global.`

	extraExtensionsFlagDescription = "additional file extension to include (repeatable)"
	ignoreFlagDescription          = "file to exclude, relative to PROJECT_DIR unless absolute (repeatable)"
	ignoreDirectoryFlagDescription = "directory name or path to exclude (repeatable, also -id)"
	addFilesFlagDescription        = "file to include regardless of extension (repeatable)"
	outputFlagDescription          = "output file path (default <PROJECT_DIR>_codebase.txt)"
	copyFlagDescription            = "copy the result to the clipboard as a prompt"
	showHiddenFlagDescription      = "include hidden entries in the directory tree"
	maxDepthFlagDescription        = "maximum directory tree depth, negative for unlimited"
	noBannerFlagDescription        = "do not print the startup banner"
	noIgnoreFileFlagDescription    = "do not read " + utils.IgnoreFileName
	configFlagDescription          = "configuration file to use instead of " + utils.LocalConfigFileName
	versionFlagDescription         = "display application version"
	globalFlagDescription          = "write the global configuration file"
	forceFlagDescription           = "overwrite an existing configuration file"

	defaultShowHidden = false
	defaultBanner     = true
	defaultUseIgnore  = true

	errorMissingProjectDirectory = "PROJECT_DIR is required"
	errorWorkingDirectoryFormat  = "unable to determine working directory: %w"
	errorLoadIgnoreFileFormat    = "read %s: %w"
	warningCopyFailedMessage     = "could not copy the result to the clipboard"
)

// Execute runs the codesqueeze application.
func Execute(logger *zap.Logger) error {
	rootCommand := newRootCommand(logger, clipboard.NewService())
	rootCommand.SetArgs(normalizeArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// normalizeArguments rewrites argument spellings pflag cannot express directly.
func normalizeArguments(command *cobra.Command, arguments []string) []string {
	normalized := normalizeIgnoreDirectoryArguments(arguments)
	normalized = normalizeCopyFlagArguments(normalized)
	return normalizeBooleanFlagArguments(command, normalized)
}

// rootOptions stores the values of the root command flags.
type rootOptions struct {
	extraExtensions    []string
	ignoredFiles       []string
	ignoredDirectories []string
	addedFiles         []string
	outputPath         string
	copyEnabled        bool
	showHidden         bool
	maxDepth           int
	disableBanner      bool
	disableIgnoreFile  bool
	configPath         string
	showVersion        bool
}

// newRootCommand builds the root Cobra command.
func newRootCommand(logger *zap.Logger, copier clipboard.Copier) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}
	var options rootOptions

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if options.showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			if len(arguments) == 0 {
				return errors.New(errorMissingProjectDirectory)
			}
			return runSqueeze(command, arguments[0], options, logger, copier)
		},
	}

	flagSet := rootCommand.Flags()
	flagSet.StringArrayVarP(&options.extraExtensions, extraExtensionsFlagName, extraExtensionsShorthand, nil, extraExtensionsFlagDescription)
	flagSet.StringArrayVarP(&options.ignoredFiles, ignoreFlagName, ignoreShorthand, nil, ignoreFlagDescription)
	flagSet.StringArrayVarP(&options.ignoredDirectories, ignoreDirectoryFlagName, ignoreDirectoryShorthand, nil, ignoreDirectoryFlagDescription)
	flagSet.StringArrayVarP(&options.addedFiles, addFilesFlagName, addFilesShorthand, nil, addFilesFlagDescription)
	flagSet.StringVarP(&options.outputPath, outputFlagName, outputShorthand, "", outputFlagDescription)
	registerCopyFlag(flagSet, &options.copyEnabled)
	registerBooleanFlag(flagSet, &options.showHidden, showHiddenFlagName, defaultShowHidden, showHiddenFlagDescription)
	flagSet.IntVar(&options.maxDepth, maxDepthFlagName, config.UnlimitedTreeDepth, maxDepthFlagDescription)
	registerBooleanFlag(flagSet, &options.disableBanner, noBannerFlagName, !defaultBanner, noBannerFlagDescription)
	registerBooleanFlag(flagSet, &options.disableIgnoreFile, noIgnoreFileFlagName, !defaultUseIgnore, noIgnoreFileFlagDescription)
	flagSet.StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	flagSet.BoolVar(&options.showVersion, versionFlagName, false, versionFlagDescription)

	rootCommand.AddCommand(newInitCommand())
	rootCommand.SetGlobalNormalizationFunc(underscoreToDashNormalizer)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.CompletionOptions.DisableDefaultCmd = true
	return rootCommand
}

// underscoreToDashNormalizer accepts snake_case spellings of long flags.
func underscoreToDashNormalizer(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// newInitCommand returns the init subcommand.
func newInitCommand() *cobra.Command {
	var useGlobal bool
	var force bool
	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if useGlobal {
				target = config.InitTargetGlobal
			}
			destinationPath, initErr := config.InitializeConfiguration(config.InitOptions{Target: target, Force: force})
			if initErr != nil {
				return initErr
			}
			fmt.Fprintf(command.OutOrStdout(), initializedTemplate, destinationPath)
			return nil
		},
	}
	initCommand.Flags().BoolVar(&useGlobal, globalFlagName, false, globalFlagDescription)
	initCommand.Flags().BoolVar(&force, forceFlagName, false, forceFlagDescription)
	return initCommand
}

// runSqueeze resolves configuration and performs one collection run.
func runSqueeze(command *cobra.Command, projectDirectory string, options rootOptions, logger *zap.Logger, copier clipboard.Copier) error {
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return fmt.Errorf(errorWorkingDirectoryFormat, workingDirectoryError)
	}
	applicationConfiguration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: options.configPath,
	})
	if loadError != nil {
		return loadError
	}

	settings := resolveSettings(command.Flags(), options, applicationConfiguration)
	input := settings.input
	input.RootDirectory = projectDirectory

	// The root is validated before anything is printed or written.
	configuration, configurationError := collector.NewConfiguration(input)
	if configurationError != nil {
		return configurationError
	}

	if settings.useIgnoreFile {
		ignoreFilePath := filepath.Join(configuration.RootDirectory, utils.IgnoreFileName)
		rules, rulesError := config.LoadIgnoreFile(ignoreFilePath)
		if rulesError != nil {
			return fmt.Errorf(errorLoadIgnoreFileFormat, ignoreFilePath, rulesError)
		}
		input.IgnoredFiles = append(input.IgnoredFiles, rules.IgnoredFiles...)
		input.IgnoredDirectories = append(input.IgnoredDirectories, rules.IgnoredDirectories...)
		input.AddedFiles = append(input.AddedFiles, rules.AddedFiles...)
		configuration, configurationError = collector.NewConfiguration(input)
		if configurationError != nil {
			return configurationError
		}
	}

	standardOutput := command.OutOrStdout()
	if settings.bannerEnabled {
		banner.Print(standardOutput, logger)
	}

	result, runError := collector.NewCollector(configuration, logger, standardOutput).Run()
	if runError != nil {
		return runError
	}

	reporter := output.NewReporter(standardOutput)
	reporter.Render(output.BuildSummary(result, tokenizer.NewEstimateCounter()))

	if settings.copyEnabled {
		if copyError := output.CopyArtifact(result.OutputPath, copier); copyError != nil {
			logger.Warn(warningCopyFailedMessage, zap.Error(copyError))
			return nil
		}
		reporter.RenderCopied()
	}
	return nil
}

// runSettings is the merged view of configuration files and flags.
type runSettings struct {
	input         collector.ConfigurationInput
	copyEnabled   bool
	bannerEnabled bool
	useIgnoreFile bool
}

// resolveSettings merges configuration with flags: flag lists extend configured lists and
// explicitly set flag scalars override configured scalars.
func resolveSettings(flagSet *pflag.FlagSet, options rootOptions, applicationConfiguration config.ApplicationConfiguration) runSettings {
	settings := runSettings{
		input: collector.ConfigurationInput{
			ExtraExtensions:    concatenate(applicationConfiguration.ExtraExtensions, options.extraExtensions),
			IgnoredFiles:       concatenate(applicationConfiguration.Ignore, options.ignoredFiles),
			IgnoredDirectories: concatenate(applicationConfiguration.IgnoreDirectories, options.ignoredDirectories),
			AddedFiles:         concatenate(applicationConfiguration.AddFiles, options.addedFiles),
			OutputPath:         applicationConfiguration.Output,
			Tree: collector.TreeOptions{
				MaxDepth:   config.IntOrDefault(applicationConfiguration.Tree.MaxDepth, config.UnlimitedTreeDepth),
				ShowHidden: config.BoolOrDefault(applicationConfiguration.Tree.ShowHidden, defaultShowHidden),
			},
		},
		copyEnabled:   config.BoolOrDefault(applicationConfiguration.Copy, false),
		bannerEnabled: config.BoolOrDefault(applicationConfiguration.Banner, defaultBanner),
		useIgnoreFile: config.BoolOrDefault(applicationConfiguration.UseIgnoreFile, defaultUseIgnore),
	}
	if flagSet.Changed(outputFlagName) {
		settings.input.OutputPath = options.outputPath
	}
	if flagSet.Changed(maxDepthFlagName) {
		settings.input.Tree.MaxDepth = options.maxDepth
	}
	if flagSet.Changed(showHiddenFlagName) {
		settings.input.Tree.ShowHidden = options.showHidden
	}
	if flagSet.Changed(copyFlagName) {
		settings.copyEnabled = options.copyEnabled
	}
	if flagSet.Changed(noBannerFlagName) {
		settings.bannerEnabled = !options.disableBanner
	}
	if flagSet.Changed(noIgnoreFileFlagName) {
		settings.useIgnoreFile = !options.disableIgnoreFile
	}
	return settings
}

func concatenate(configured []string, flagged []string) []string {
	combined := make([]string, 0, len(configured)+len(flagged))
	combined = append(combined, configured...)
	return append(combined, flagged...)
}
