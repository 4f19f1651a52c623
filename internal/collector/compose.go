package collector

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/codesqueeze/codesqueeze/internal/types"
	"github.com/codesqueeze/codesqueeze/internal/utils"
)

const (
	structureHeading      = "PROJECT STRUCTURE:"
	contentsHeading       = "FILE CONTENTS:"
	fileHeadingFormat     = "📁 File: %s\n"
	fileContentLabel      = "## File content: \n"
	progressMessageFormat = "📦 Processed %d/%d files...\n"
	progressInterval      = 10
	outputFilePermissions = 0o644
	bytesPerKilobyte      = 1024.0

	errorWriteHeaderFormat = "writing header to %s: %w"
	errorReadFileFormat    = "reading %s: %w"
	errorAppendFileFormat  = "appending %s to %s: %w"
)

var (
	structureDivider = strings.Repeat("-", 40)
	sectionDivider   = strings.Repeat("=", 80)
	fileDivider      = strings.Repeat("-", 60)
)

// Composer writes the artifact: a header first, then one block per file.
type Composer struct {
	outputPath    string
	rootDirectory string
}

// NewComposer returns a Composer writing to outputPath, naming files relative to rootDirectory.
func NewComposer(outputPath string, rootDirectory string) *Composer {
	return &Composer{outputPath: outputPath, rootDirectory: rootDirectory}
}

// Header returns the header text: prompt, project structure and the file contents banner.
func Header(prompt string, tree string) string {
	var builder strings.Builder
	builder.WriteString(prompt + "\n")
	builder.WriteString(structureHeading + "\n")
	builder.WriteString(structureDivider + "\n")
	builder.WriteString(tree + "\n")
	builder.WriteString(sectionDivider + "\n")
	builder.WriteString(contentsHeading + "\n")
	builder.WriteString(sectionDivider + "\n")
	return builder.String()
}

// FileBlock returns the block written for a single file.
func FileBlock(relativePath string, content string) string {
	var builder strings.Builder
	builder.WriteString("\n" + fileDivider + "\n")
	builder.WriteString(fmt.Sprintf(fileHeadingFormat, relativePath))
	builder.WriteString(fileDivider + "\n")
	builder.WriteString(fileContentLabel)
	builder.WriteString(content + "\n")
	return builder.String()
}

// WriteHeader creates or truncates the output file and writes the header.
func (composer *Composer) WriteHeader(prompt string, tree string) error {
	if writeError := os.WriteFile(composer.outputPath, []byte(Header(prompt, tree)), outputFilePermissions); writeError != nil {
		return fmt.Errorf(errorWriteHeaderFormat, composer.outputPath, writeError)
	}
	return nil
}

// ReadRecord loads the file at absolutePath, tolerating invalid UTF-8.
func (composer *Composer) ReadRecord(absolutePath string) (types.FileRecord, error) {
	fileBytes, readError := os.ReadFile(absolutePath)
	if readError != nil {
		return types.FileRecord{}, fmt.Errorf(errorReadFileFormat, absolutePath, readError)
	}
	return types.FileRecord{
		AbsolutePath: absolutePath,
		RelativePath: relativeName(absolutePath, composer.rootDirectory),
		SizeKB:       float64(len(fileBytes)) / bytesPerKilobyte,
		Content:      DecodeContent(fileBytes),
	}, nil
}

// AppendRecord opens the output in append mode and writes the block for record.
func (composer *Composer) AppendRecord(record types.FileRecord) (appendErr error) {
	outputFile, openError := os.OpenFile(composer.outputPath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, outputFilePermissions)
	if openError != nil {
		return fmt.Errorf(errorAppendFileFormat, record.RelativePath, composer.outputPath, openError)
	}
	defer func() {
		if closeError := outputFile.Close(); closeError != nil && appendErr == nil {
			appendErr = fmt.Errorf(errorAppendFileFormat, record.RelativePath, composer.outputPath, closeError)
		}
	}()
	if _, writeError := io.WriteString(outputFile, FileBlock(record.RelativePath, record.Content)); writeError != nil {
		return fmt.Errorf(errorAppendFileFormat, record.RelativePath, composer.outputPath, writeError)
	}
	return nil
}

// DecodeContent converts raw bytes to text. Invalid UTF-8 sequences are dropped and
// CRLF or lone CR line endings become LF.
func DecodeContent(data []byte) string {
	text := strings.ToValidUTF8(string(data), "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// relativeName returns path relative to rootDirectory with forward slashes.
// Files outside the root keep their "../" form.
func relativeName(absolutePath string, rootDirectory string) string {
	return utils.RelativePathOrSelf(absolutePath, rootDirectory)
}
