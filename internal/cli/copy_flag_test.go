package cli

import (
	"io"
	"reflect"
	"testing"

	"github.com/spf13/pflag"
)

func TestRegisterCopyFlagParsesValues(t *testing.T) {
	testCases := []struct {
		name        string
		arguments   []string
		expected    bool
		expectError bool
	}{
		{
			name:      "defaults_to_false",
			arguments: []string{},
			expected:  false,
		},
		{
			name:      "sets_true_without_value",
			arguments: []string{"--copy"},
			expected:  true,
		},
		{
			name:      "shorthand_sets_true",
			arguments: []string{"-c"},
			expected:  true,
		},
		{
			name:      "sets_false_with_equals",
			arguments: []string{"--copy=false"},
			expected:  false,
		},
		{
			name:      "sets_false_with_no",
			arguments: []string{"--copy", "no"},
			expected:  false,
		},
		{
			name:      "shorthand_accepts_yes",
			arguments: []string{"-c", "yes"},
			expected:  true,
		},
		{
			name:        "rejects_invalid_text",
			arguments:   []string{"--copy=maybe"},
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			var flagValue bool
			flagSet := pflag.NewFlagSet("copy-flag", pflag.ContinueOnError)
			flagSet.SetOutput(io.Discard)
			registerCopyFlag(flagSet, &flagValue)
			parseErr := flagSet.Parse(normalizeCopyFlagArguments(testCase.arguments))
			if testCase.expectError {
				if parseErr == nil {
					t.Fatalf("expected error for arguments %v", testCase.arguments)
				}
				return
			}
			if parseErr != nil {
				t.Fatalf("unexpected parse error: %v", parseErr)
			}
			if flagValue != testCase.expected {
				t.Fatalf("expected value %t, got %t", testCase.expected, flagValue)
			}
		})
	}
}

func TestNormalizeCopyFlagArgumentsLeavesProjectDirectory(t *testing.T) {
	normalized := normalizeCopyFlagArguments([]string{"--copy", "myproject", "-e", "md"})
	expected := []string{"--copy=true", "myproject", "-e", "md"}
	if !reflect.DeepEqual(normalized, expected) {
		t.Fatalf("unexpected arguments: got %v want %v", normalized, expected)
	}
}
