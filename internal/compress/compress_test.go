package compress

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestText(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "newlines_removed", input: "a\nb\n\nc\n", expected: "abc"},
		{name: "tab_runs_collapsed", input: "a\t\tb\t\t\t\tc\td", expected: "a\tb\tc\td"},
		{name: "tabs_joined_across_newlines", input: "x\t\n\ty", expected: "x\ty"},
		{name: "carriage_return_kept", input: "a\r\nb", expected: "a\rb"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if actual := Text(testCase.input); actual != testCase.expected {
				t.Fatalf("Text(%q) = %q, want %q", testCase.input, actual, testCase.expected)
			}
		})
	}
}

func TestTransformsAreIdempotent(t *testing.T) {
	inputs := []string{"", "\t", "\t\t\n\t\t", "func main() {\n\t\t\treturn\n}\n", strings.Repeat("\t\n", 50)}
	for _, input := range inputs {
		once := CollapseTabs(input)
		if twice := CollapseTabs(once); twice != once {
			t.Fatalf("CollapseTabs not idempotent for %q", input)
		}
		compressed := Text(input)
		if strings.Contains(compressed, "\n") {
			t.Fatalf("Text left a newline in %q", compressed)
		}
		if Text(compressed) != compressed {
			t.Fatalf("Text not idempotent for %q", input)
		}
	}
}

func TestFileRewritesInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artifact.txt")
	if err := os.WriteFile(path, []byte("line one\n\t\tline two\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := File(path); err != nil {
		t.Fatalf("File: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(content) != "line one\tline two" {
		t.Fatalf("unexpected content %q", content)
	}
	information, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if information.Mode().Perm() != 0o600 {
		t.Fatalf("permissions changed to %v", information.Mode().Perm())
	}
}

func TestFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.txt")
	err := File(path)
	var compressErr *Error
	if !errors.As(err, &compressErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if compressErr.Operation != OperationRead {
		t.Fatalf("unexpected operation %q", compressErr.Operation)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected error to wrap os.ErrNotExist")
	}
	if err.Error() != "'"+path+"' does not exist" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestErrorMessages(t *testing.T) {
	testCases := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "permission",
			err:      &Error{Operation: OperationWrite, Path: "out.txt", Err: os.ErrPermission},
			expected: "permission denied accessing 'out.txt'",
		},
		{
			name:     "generic",
			err:      &Error{Operation: OperationWrite, Path: "out.txt", Err: errors.New("disk full")},
			expected: "write error while processing 'out.txt': disk full",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if actual := testCase.err.Error(); actual != testCase.expected {
				t.Fatalf("got %q want %q", actual, testCase.expected)
			}
		})
	}
}
