package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a question bank document.
type Format int

const (
	// FormatYAML decodes documents with yaml.v3.
	FormatYAML Format = iota
	// FormatJSON decodes documents with encoding/json.
	FormatJSON
)

// FormatFromPath picks a decoder from the file extension. Anything other
// than .json is treated as YAML.
func FormatFromPath(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return FormatJSON
	}
	return FormatYAML
}

// LoadSpec reads, parses, and validates a question bank file.
func LoadSpec(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("read question bank: %w", err)
	}
	return ParseSpec(data, FormatFromPath(path))
}

// ParseSpec decodes and validates a question bank document.
func ParseSpec(data []byte, format Format) (Spec, error) {
	var (
		spec Spec
		err  error
	)
	switch format {
	case FormatJSON:
		err = DecodeJSON(data, &spec)
	default:
		err = DecodeYAML(data, &spec)
	}
	if err != nil {
		return Spec{}, err
	}
	return NormalizeSpec(spec)
}

// DecodeJSON strictly decodes a single JSON document into target.
func DecodeJSON(data []byte, target any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	var trailing json.RawMessage
	if err := decoder.Decode(&trailing); err != io.EOF {
		if err == nil {
			return fmt.Errorf("parse json: multiple documents are not supported")
		}
		return fmt.Errorf("parse json: %w", err)
	}
	return nil
}

// DecodeYAML strictly decodes a single YAML document into target.
func DecodeYAML(data []byte, target any) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(target); err != nil {
		if err == io.EOF {
			return fmt.Errorf("parse yaml: document is empty")
		}
		return fmt.Errorf("parse yaml: %w", err)
	}
	var trailing yaml.Node
	if err := decoder.Decode(&trailing); err != io.EOF {
		if err == nil {
			return fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}
