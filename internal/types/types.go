// Package types defines every cross‑package data structure used by the codesqueeze CLI.
package types

// FileRecord is one collected file. It lives only while its block is written.
type FileRecord struct {
	AbsolutePath string
	RelativePath string
	SizeKB       float64
	Content      string
}

// CollectionResult describes a finished collection run.
type CollectionResult struct {
	OutputPath string
	// ProcessedFiles holds relative paths of the files written to the output, in order.
	ProcessedFiles []string
	OutputSizeKB   float64
}

// Summary is what the reporter prints after a successful run.
type Summary struct {
	ProcessedFiles  []string
	OutputPath      string
	SizeMB          float64
	EstimatedTokens int
	// TokenEstimateError is set when the finished file could not be read back.
	TokenEstimateError error
}
