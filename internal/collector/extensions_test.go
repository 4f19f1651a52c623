package collector

import "testing"

func TestFileExtension(t *testing.T) {
	testCases := []struct {
		path     string
		expected string
	}{
		{path: "/project/main.py", expected: "py"},
		{path: "/project/Main.JAVA", expected: "java"},
		{path: "/project/archive.tar.gz", expected: "gz"},
		{path: "/project/Makefile", expected: ""},
		{path: "/project.d/README", expected: ""},
		{path: "/project/.env", expected: "env"},
		{path: "/project/trailing.", expected: ""},
	}
	for _, testCase := range testCases {
		t.Run(testCase.path, func(t *testing.T) {
			if actual := FileExtension(testCase.path); actual != testCase.expected {
				t.Fatalf("FileExtension(%q) = %q, want %q", testCase.path, actual, testCase.expected)
			}
		})
	}
}

func TestNormalizeExtension(t *testing.T) {
	testCases := map[string]string{
		"md":     "md",
		".MD":    "md",
		" ..Txt": "txt",
		"":       "",
	}
	for input, expected := range testCases {
		if actual := NormalizeExtension(input); actual != expected {
			t.Fatalf("NormalizeExtension(%q) = %q, want %q", input, actual, expected)
		}
	}
}

func TestExtensionSetContains(t *testing.T) {
	set := NewExtensionSet([]string{".md", "YAML", "  "})
	testCases := []struct {
		extension string
		expected  bool
	}{
		{extension: "py", expected: true},
		{extension: "GO", expected: true},
		{extension: "md", expected: true},
		{extension: "yaml", expected: true},
		{extension: "txt", expected: false},
		{extension: "", expected: false},
	}
	for _, testCase := range testCases {
		if actual := set.Contains(testCase.extension); actual != testCase.expected {
			t.Fatalf("Contains(%q) = %t, want %t", testCase.extension, actual, testCase.expected)
		}
	}
}
