package question

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestLoadSpecYAML verifies YAML banks load and normalize properly.
func TestLoadSpecYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.yml")
	payload := `version: 1
title: "  Sample  "
questions:
  - id: " q1 "
    prompt: "  What is 2+2? "
    context: |
      line one
        indented line

    options:
      - {key: " a ", label: " 4 "}
      - {key: b, label: "5"}
    correct: a
    explain: " Arithmetic. "
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	spec, err := LoadSpec(path)
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	if spec.Title != "Sample" {
		t.Fatalf("expected trimmed title, got %q", spec.Title)
	}
	if len(spec.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(spec.Questions))
	}
	q := spec.Questions[0]
	if q.ID != "q1" {
		t.Fatalf("expected id q1, got %q", q.ID)
	}
	if q.Type != TypeSingle {
		t.Fatalf("expected default type %q, got %q", TypeSingle, q.Type)
	}
	if q.Prompt != "What is 2+2?" {
		t.Fatalf("expected trimmed prompt, got %q", q.Prompt)
	}
	if q.Context != "line one\n  indented line" {
		t.Fatalf("expected preformatted context, got %q", q.Context)
	}
	if len(q.Options) != 2 || q.Options[0].Key != "a" || q.Options[0].Label != "4" {
		t.Fatalf("unexpected options: %+v", q.Options)
	}
	if q.Explain != "Arithmetic." {
		t.Fatalf("expected trimmed explanation, got %q", q.Explain)
	}
}

// TestLoadSpecJSON verifies JSON banks are parsed and validated.
func TestLoadSpecJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.json")
	payload := `{
  "version": 1,
  "questions": [
    {
      "id": "q2",
      "type": "single",
      "prompt": "Which color?",
      "options": [{"key": "a", "label": "red"}, {"key": "b", "label": "blue"}],
      "correct": "b",
      "explain": "The sky."
    }
  ]
}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	spec, err := LoadSpec(path)
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	if len(spec.Questions) != 1 || spec.Questions[0].ID != "q2" {
		t.Fatalf("unexpected bank: %+v", spec.Questions)
	}
	if spec.Questions[0].HasContext() {
		t.Fatalf("expected no context block")
	}
}

// TestParseSpecRejectsUnknownFields verifies strict decoding in both formats.
func TestParseSpecRejectsUnknownFields(t *testing.T) {
	if _, err := ParseSpec([]byte("version: 1\nquizzes: []\n"), FormatYAML); err == nil {
		t.Fatalf("expected yaml unknown field error")
	}
	if _, err := ParseSpec([]byte(`{"version": 1, "quizzes": []}`), FormatJSON); err == nil {
		t.Fatalf("expected json unknown field error")
	}
}

// TestParseSpecRejectsMultipleDocuments verifies only one document is accepted.
func TestParseSpecRejectsMultipleDocuments(t *testing.T) {
	payload := "version: 1\n---\nversion: 1\n"
	_, err := ParseSpec([]byte(payload), FormatYAML)
	if err == nil || !strings.Contains(err.Error(), "multiple documents") {
		t.Fatalf("expected multiple documents error, got %v", err)
	}
	_, err = ParseSpec([]byte(`{"version": 1} {"version": 1}`), FormatJSON)
	if err == nil || !strings.Contains(err.Error(), "multiple documents") {
		t.Fatalf("expected multiple json documents error, got %v", err)
	}
}

// TestLoadSpecMissingFile verifies read failures are wrapped.
func TestLoadSpecMissingFile(t *testing.T) {
	_, err := LoadSpec(filepath.Join(t.TempDir(), "missing.yml"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

// TestFormatFromPath verifies extension based format selection.
func TestFormatFromPath(t *testing.T) {
	cases := map[string]Format{
		"bank.json": FormatJSON,
		"bank.JSON": FormatJSON,
		"bank.yml":  FormatYAML,
		"bank.yaml": FormatYAML,
		"bank":      FormatYAML,
	}
	for path, want := range cases {
		if got := FormatFromPath(path); got != want {
			t.Fatalf("%s: expected %d, got %d", path, want, got)
		}
	}
}
