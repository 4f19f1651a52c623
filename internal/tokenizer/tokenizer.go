// Package tokenizer estimates how many model tokens a text occupies.
package tokenizer

import "unicode/utf8"

// Counter estimates token counts for text content.
type Counter interface {
	Name() string
	CountString(input string) (int, error)
}

const (
	estimateCounterName = "chars/4"
	// charactersPerToken is the rough characters-per-token ratio of common model vocabularies.
	charactersPerToken = 4
)

// EstimateCounter approximates tokens as the character count divided by four.
type EstimateCounter struct{}

// NewEstimateCounter returns the character-ratio estimator.
func NewEstimateCounter() EstimateCounter {
	return EstimateCounter{}
}

// Name identifies the estimator.
func (EstimateCounter) Name() string {
	return estimateCounterName
}

// CountString returns the number of characters in input divided by four, rounded down.
func (EstimateCounter) CountString(input string) (int, error) {
	return utf8.RuneCountInString(input) / charactersPerToken, nil
}

var _ Counter = EstimateCounter{}
