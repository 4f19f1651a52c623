package collector

import (
	"path/filepath"
	"strings"
)

// defaultExtensions lists the source extensions that are always collected.
var defaultExtensions = []string{
	"py", "cpp", "java", "js", "ts", "c", "h", "cs", "go", "rs", "rb", "php",
	"swift", "kt", "scala", "pl", "lua", "r", "dart", "html", "htm", "css",
	"jsx", "scss", "tsx", "vue", "svelte", "sh", "bash", "ps1", "bat", "cmd",
	"hs", "jl", "sql", "m", "ex", "exs", "vb", "fs", "groovy", "erl",
}

// ExtensionSet is a case-insensitive allow-list of file extensions without leading dots.
type ExtensionSet map[string]struct{}

// NewExtensionSet builds the allow-list from the defaults plus the normalized extras.
func NewExtensionSet(extraExtensions []string) ExtensionSet {
	set := make(ExtensionSet, len(defaultExtensions)+len(extraExtensions))
	for _, extension := range defaultExtensions {
		set[extension] = struct{}{}
	}
	for _, extension := range extraExtensions {
		if normalized := NormalizeExtension(extension); normalized != "" {
			set[normalized] = struct{}{}
		}
	}
	return set
}

// Contains reports whether extension is allowed. The lookup is case-insensitive.
func (set ExtensionSet) Contains(extension string) bool {
	if extension == "" {
		return false
	}
	_, allowed := set[strings.ToLower(extension)]
	return allowed
}

// NormalizeExtension strips surrounding spaces and leading dots and lower-cases the value.
func NormalizeExtension(extension string) string {
	return strings.ToLower(strings.TrimLeft(strings.TrimSpace(extension), "."))
}

// FileExtension returns the lower-cased text after the last dot of the base name,
// or an empty string when the name has no dot.
func FileExtension(path string) string {
	baseName := filepath.Base(path)
	dotIndex := strings.LastIndex(baseName, ".")
	if dotIndex < 0 {
		return ""
	}
	return strings.ToLower(baseName[dotIndex+1:])
}
