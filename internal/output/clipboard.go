package output

import (
	"fmt"
	"os"

	"github.com/codesqueeze/codesqueeze/internal/services/clipboard"
)

const (
	// queryTrailer invites the reader of the copied prompt to supply a question.
	queryTrailer = "\n\nQuery: [provide your query]"

	errorReadArtifactFormat = "reading %s for clipboard: %w"
	errorCopyFormat         = "copying %s to clipboard: %w"
)

// ClipboardPrompt appends the query trailer to the artifact content.
func ClipboardPrompt(content string) string {
	return content + queryTrailer
}

// CopyArtifact reads the finished artifact and places it, with the query trailer, on the clipboard.
func CopyArtifact(path string, copier clipboard.Copier) error {
	content, readError := os.ReadFile(path)
	if readError != nil {
		return fmt.Errorf(errorReadArtifactFormat, path, readError)
	}
	if copyError := copier.Copy(ClipboardPrompt(string(content))); copyError != nil {
		return fmt.Errorf(errorCopyFormat, path, copyError)
	}
	return nil
}
