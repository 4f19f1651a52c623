package collector

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/codesqueeze/codesqueeze/internal/compress"
	"github.com/codesqueeze/codesqueeze/internal/types"
)

const (
	warningSkipFileMessage = "could not read file, skipping"
	errorSelectFilesFormat = "selecting files under %s: %w"
	errorStatOutputFormat  = "stat output %s: %w"
)

// Collector runs one collection: select, compose, compress.
type Collector struct {
	configuration Configuration
	logger        *zap.Logger
	progress      io.Writer
}

// NewCollector returns a Collector. Progress lines go to progress; a nil writer discards them.
func NewCollector(configuration Configuration, logger *zap.Logger, progress io.Writer) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	if progress == nil {
		progress = io.Discard
	}
	return &Collector{configuration: configuration, logger: logger, progress: progress}
}

// Run writes the artifact and compresses it.
// Unreadable files are skipped with a warning. A compression failure is returned as
// *compress.Error and leaves the uncompressed artifact in place.
func (collector *Collector) Run() (types.CollectionResult, error) {
	configuration := collector.configuration
	result := types.CollectionResult{OutputPath: configuration.OutputPath}

	selectedFiles, selectError := SelectFiles(configuration, collector.logger)
	if selectError != nil {
		return result, fmt.Errorf(errorSelectFilesFormat, configuration.RootDirectory, selectError)
	}

	composer := NewComposer(configuration.OutputPath, configuration.RootDirectory)
	treeOptions := configuration.Tree
	treeOptions.ExcludedPath = configuration.OutputPath
	tree := RenderTree(configuration.RootDirectory, treeOptions, configuration.IgnoredDirectories)
	if headerError := composer.WriteHeader(AgentPrompt(configuration.RootDirectory), tree); headerError != nil {
		return result, headerError
	}

	totalFiles := len(selectedFiles)
	for _, selectedFile := range selectedFiles {
		record, readError := composer.ReadRecord(selectedFile)
		if readError != nil {
			collector.logger.Warn(warningSkipFileMessage, zap.String("path", selectedFile), zap.Error(readError))
			continue
		}
		if appendError := composer.AppendRecord(record); appendError != nil {
			collector.logger.Warn(warningSkipFileMessage, zap.String("path", selectedFile), zap.Error(appendError))
			continue
		}
		result.ProcessedFiles = append(result.ProcessedFiles, record.RelativePath)
		if len(result.ProcessedFiles)%progressInterval == 0 {
			fmt.Fprintf(collector.progress, progressMessageFormat, len(result.ProcessedFiles), totalFiles)
		}
	}

	if compressError := compress.File(configuration.OutputPath); compressError != nil {
		return result, compressError
	}

	outputInformation, statError := os.Stat(configuration.OutputPath)
	if statError != nil {
		return result, fmt.Errorf(errorStatOutputFormat, configuration.OutputPath, statError)
	}
	result.OutputSizeKB = float64(outputInformation.Size()) / bytesPerKilobyte
	return result, nil
}
