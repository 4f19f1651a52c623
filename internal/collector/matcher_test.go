package collector

import (
	"path/filepath"
	"testing"
)

func TestDirectoryMatcher(t *testing.T) {
	rootDirectory := filepath.FromSlash("/work/project")
	matcher := NewDirectoryMatcher(rootDirectory, []string{"lib", "docs/generated/", " ", filepath.FromSlash("/work/project/tmp")})

	directoryCases := []struct {
		path     string
		expected bool
	}{
		{path: "/work/project/lib", expected: true},
		{path: "/work/project/src/lib", expected: true},
		{path: "/work/project/lib2", expected: false},
		{path: "/work/project/crucible/lib2", expected: false},
		{path: "/work/project/docs", expected: false},
		{path: "/work/project/docs/generated", expected: true},
		{path: "/work/project/docs/generated/api", expected: true},
		{path: "/work/project/tmp", expected: true},
		{path: "/work/project", expected: false},
	}
	for _, testCase := range directoryCases {
		t.Run("dir "+testCase.path, func(t *testing.T) {
			if actual := matcher.MatchesDirectory(filepath.FromSlash(testCase.path)); actual != testCase.expected {
				t.Fatalf("MatchesDirectory(%q) = %t, want %t", testCase.path, actual, testCase.expected)
			}
		})
	}

	fileCases := []struct {
		path     string
		expected bool
	}{
		{path: "/work/project/lib/a.py", expected: true},
		{path: "/work/project/src/lib/deep/a.py", expected: true},
		{path: "/work/project/lib2/a.py", expected: false},
		{path: "/work/project/lib.py", expected: false},
		{path: "/work/project/docs/generated/index.html", expected: true},
		{path: "/work/project/docs/guide.md", expected: false},
		{path: "/work/project/tmp/scratch.go", expected: true},
		{path: "/work/lib/outside.py", expected: false},
	}
	for _, testCase := range fileCases {
		t.Run("file "+testCase.path, func(t *testing.T) {
			if actual := matcher.ContainsFile(filepath.FromSlash(testCase.path)); actual != testCase.expected {
				t.Fatalf("ContainsFile(%q) = %t, want %t", testCase.path, actual, testCase.expected)
			}
		})
	}
}

func TestDirectoryMatcherIsEmpty(t *testing.T) {
	if !NewDirectoryMatcher("/root", nil).IsEmpty() {
		t.Fatalf("expected empty matcher")
	}
	if !NewDirectoryMatcher("/root", []string{"", "  ", "/"}).IsEmpty() {
		t.Fatalf("expected blank entries to be dropped")
	}
	if NewDirectoryMatcher("/root", []string{"build"}).IsEmpty() {
		t.Fatalf("expected non-empty matcher")
	}
}
