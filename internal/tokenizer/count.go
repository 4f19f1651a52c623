package tokenizer

import (
	"errors"
	"os"
	"strings"
)

// CountResult captures the outcome of counting a file or byte slice.
type CountResult struct {
	Tokens     int
	Characters int
}

// CountBytes estimates tokens for the provided data using counter.
// Invalid UTF-8 is dropped before counting.
func CountBytes(counter Counter, data []byte) (CountResult, error) {
	if counter == nil {
		return CountResult{}, errors.New("nil tokenizer counter")
	}
	text := strings.ToValidUTF8(string(data), "")
	tokens, err := counter.CountString(text)
	if err != nil {
		return CountResult{}, err
	}
	return CountResult{Tokens: tokens, Characters: len([]rune(text))}, nil
}

// CountFile reads the file at path and estimates its token count.
func CountFile(counter Counter, path string) (CountResult, error) {
	if counter == nil {
		return CountResult{}, errors.New("nil tokenizer counter")
	}
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return CountResult{}, readErr
	}
	return CountBytes(counter, data)
}
