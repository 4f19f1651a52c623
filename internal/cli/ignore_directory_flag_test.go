package cli

import (
	"reflect"
	"testing"
)

func TestNormalizeIgnoreDirectoryArguments(t *testing.T) {
	testCases := []struct {
		name      string
		arguments []string
		expected  []string
	}{
		{
			name:      "separated_value",
			arguments: []string{"project", "-id", "build"},
			expected:  []string{"project", "--ignore-directory", "build"},
		},
		{
			name:      "equals_value",
			arguments: []string{"-id=vendor", "project"},
			expected:  []string{"--ignore-directory=vendor", "project"},
		},
		{
			name:      "other_flags_untouched",
			arguments: []string{"-i", "secret.txt", "-d", "dist"},
			expected:  []string{"-i", "secret.txt", "-d", "dist"},
		},
		{
			name:      "stops_at_terminator",
			arguments: []string{"--", "-id"},
			expected:  []string{"--", "-id"},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			normalized := normalizeIgnoreDirectoryArguments(testCase.arguments)
			if !reflect.DeepEqual(normalized, testCase.expected) {
				t.Fatalf("got %v want %v", normalized, testCase.expected)
			}
		})
	}
}
