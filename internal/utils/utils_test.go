package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/codesqueeze/codesqueeze/internal/utils"
)

// textFileName defines the name of the text file used in tests.
const textFileName = "sample.txt"

// TestDeduplicatePatterns verifies that DeduplicatePatterns removes duplicate patterns.
func TestDeduplicatePatterns(testingInstance *testing.T) {
	testCases := []struct {
		testName string
		patterns []string
		expected []string
	}{
		{
			testName: "removes duplicates",
			patterns: []string{"a", "b", "a"},
			expected: []string{"a", "b"},
		},
		{
			testName: "keeps unique",
			patterns: []string{"a", "b"},
			expected: []string{"a", "b"},
		},
	}
	for index, testCase := range testCases {
		actual := utils.DeduplicatePatterns(testCase.patterns)
		if len(actual) != len(testCase.expected) {
			testingInstance.Errorf("case %d (%s): expected length %d, got %d", index, testCase.testName, len(testCase.expected), len(actual))
			continue
		}
		for position, value := range actual {
			if value != testCase.expected[position] {
				testingInstance.Errorf("case %d (%s): expected %s at position %d, got %s", index, testCase.testName, testCase.expected[position], position, value)
			}
		}
	}
}

func TestRelativePathOrSelf(testingInstance *testing.T) {
	temporaryRoot := testingInstance.TempDir()
	subPath := filepath.Join(temporaryRoot, "nested", textFileName)
	if makeDirError := os.MkdirAll(filepath.Dir(subPath), 0o755); makeDirError != nil {
		testingInstance.Fatalf("failed to create directory: %v", makeDirError)
	}
	if creationError := os.WriteFile(subPath, []byte("content"), 0o600); creationError != nil {
		testingInstance.Fatalf("failed to create file: %v", creationError)
	}
	testCases := []struct {
		testName string
		fullPath string
		root     string
		expected string
	}{
		{testName: "root path returns dot", fullPath: temporaryRoot, root: temporaryRoot, expected: "."},
		{testName: "sub path returns slash separated relative", fullPath: subPath, root: temporaryRoot, expected: "nested/" + textFileName},
	}
	for index, testCase := range testCases {
		actual := utils.RelativePathOrSelf(testCase.fullPath, testCase.root)
		if actual != testCase.expected {
			testingInstance.Errorf("case %d (%s): expected %s, got %s", index, testCase.testName, testCase.expected, actual)
		}
	}
}

// TestResolveAgainst verifies relative and absolute path resolution.
func TestResolveAgainst(testingInstance *testing.T) {
	baseDirectory := testingInstance.TempDir()
	absoluteTarget := filepath.Join(baseDirectory, "elsewhere", "file.go")
	testCases := []struct {
		testName string
		path     string
		expected string
	}{
		{testName: "relative joins base", path: "docs/notes.md", expected: filepath.Join(baseDirectory, "docs", "notes.md")},
		{testName: "absolute kept", path: absoluteTarget, expected: absoluteTarget},
		{testName: "blank yields empty", path: "   ", expected: ""},
		{testName: "dot segments cleaned", path: "./a/../b.py", expected: filepath.Join(baseDirectory, "b.py")},
	}
	for _, testCase := range testCases {
		testingInstance.Run(testCase.testName, func(t *testing.T) {
			actual := utils.ResolveAgainst(baseDirectory, testCase.path)
			if actual != testCase.expected {
				t.Fatalf("expected %s, got %s", testCase.expected, actual)
			}
		})
	}
}

// TestNonEmpty verifies blank entries are dropped and values trimmed.
func TestNonEmpty(testingInstance *testing.T) {
	actual := utils.NonEmpty([]string{" md ", "", "   ", "yaml"})
	expected := []string{"md", "yaml"}
	if len(actual) != len(expected) {
		testingInstance.Fatalf("expected %v, got %v", expected, actual)
	}
	for index := range expected {
		if actual[index] != expected[index] {
			testingInstance.Fatalf("expected %v, got %v", expected, actual)
		}
	}
}
