// Package compress shrinks a finished artifact by removing newlines and collapsing tab runs.
package compress

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

const (
	// OperationRead marks a failure reading the artifact.
	OperationRead = "read"
	// OperationWrite marks a failure writing the artifact back.
	OperationWrite = "write"

	errorMissingFormat    = "'%s' does not exist"
	errorPermissionFormat = "permission denied accessing '%s'"
	errorGenericFormat    = "%s error while processing '%s': %v"
)

var tabRunPattern = regexp.MustCompile(`\t{2,}`)

// Error reports a failed compression pass. It is always fatal to the run.
type Error struct {
	Operation string
	Path      string
	Err       error
}

// Error formats the failure the same way for every operation kind.
func (compressError *Error) Error() string {
	switch {
	case errors.Is(compressError.Err, os.ErrNotExist):
		return fmt.Sprintf(errorMissingFormat, compressError.Path)
	case errors.Is(compressError.Err, os.ErrPermission):
		return fmt.Sprintf(errorPermissionFormat, compressError.Path)
	default:
		return fmt.Sprintf(errorGenericFormat, compressError.Operation, compressError.Path, compressError.Err)
	}
}

func (compressError *Error) Unwrap() error {
	return compressError.Err
}

// RemoveNewlines deletes every newline character.
func RemoveNewlines(text string) string {
	return strings.ReplaceAll(text, "\n", "")
}

// CollapseTabs replaces each run of two or more tabs with a single tab.
func CollapseTabs(text string) string {
	return tabRunPattern.ReplaceAllLiteralString(text, "\t")
}

// Text applies both transforms.
func Text(text string) string {
	return CollapseTabs(RemoveNewlines(text))
}

// File rewrites the file at path in place with Text applied to its content.
// File permissions are kept.
func File(path string) error {
	fileInformation, statError := os.Stat(path)
	if statError != nil {
		return &Error{Operation: OperationRead, Path: path, Err: statError}
	}
	content, readError := os.ReadFile(path)
	if readError != nil {
		return &Error{Operation: OperationRead, Path: path, Err: readError}
	}
	if writeError := os.WriteFile(path, []byte(Text(string(content))), fileInformation.Mode().Perm()); writeError != nil {
		return &Error{Operation: OperationWrite, Path: path, Err: writeError}
	}
	return nil
}
