package cli

import "strings"

// legacyIgnoreDirectoryShorthand is the two-letter spelling pflag cannot register.
const legacyIgnoreDirectoryShorthand = "-id"

// normalizeIgnoreDirectoryArguments rewrites "-id name" and "-id=name" to --ignore-directory.
func normalizeIgnoreDirectoryArguments(arguments []string) []string {
	if len(arguments) == 0 {
		return arguments
	}
	normalized := make([]string, 0, len(arguments))
	for index, current := range arguments {
		if current == "--" {
			normalized = append(normalized, arguments[index:]...)
			break
		}
		switch {
		case current == legacyIgnoreDirectoryShorthand:
			normalized = append(normalized, "--"+ignoreDirectoryFlagName)
		case strings.HasPrefix(current, legacyIgnoreDirectoryShorthand+"="):
			normalized = append(normalized, "--"+ignoreDirectoryFlagName+strings.TrimPrefix(current, legacyIgnoreDirectoryShorthand))
		default:
			normalized = append(normalized, current)
		}
	}
	return normalized
}
