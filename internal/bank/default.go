package bank

import (
	"bytes"
	_ "embed"
	"fmt"

	"quizpage/internal/question"
)

//go:embed default.yml
var defaultDocument []byte

// Default builds the bank shipped with the binary.
func Default() (*Bank, error) {
	spec, err := question.ParseSpec(defaultDocument, question.FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded bank: %w", err)
	}
	return FromSpec(spec)
}

// Resolve loads the bank at path, or the embedded bank when path is empty.
func Resolve(path string) (*Bank, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Document returns a copy of the embedded bank document.
func Document() []byte {
	return bytes.Clone(defaultDocument)
}
