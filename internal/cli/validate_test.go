package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizpage/internal/testutil"
)

// TestValidateCommandBuiltIn verifies the embedded bank validates.
func TestValidateCommandBuiltIn(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"validate"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "Bank OK (4 questions, built-in)") {
		t.Fatalf("expected success message, got %q", out.String())
	}
}

// TestValidateCommandSuccess verifies validate command success path.
func TestValidateCommandSuccess(t *testing.T) {
	path := testutil.WriteFile(t, "bank.yml", `version: 1
questions:
  - id: one
    prompt: "1+1?"
    options:
      - {key: a, label: "2"}
      - {key: b, label: "3"}
    correct: a
`)
	var out, err bytes.Buffer
	code := Run([]string{"validate", "--bank", path}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, err.String())
	}
	if err.Len() != 0 {
		t.Fatalf("expected no stderr output, got %q", err.String())
	}
	if !strings.Contains(out.String(), "Bank OK (1 questions") {
		t.Fatalf("expected success message, got %q", out.String())
	}
}

// TestValidateCommandFailure verifies validate command error handling.
func TestValidateCommandFailure(t *testing.T) {
	path := testutil.WriteFile(t, "bank.yml", `version: 1
questions:
  - id: one
    prompt: "1+1?"
    options:
      - {key: a, label: "2"}
    correct: z
`)
	var out, err bytes.Buffer
	code := Run([]string{"validate", "--bank", path}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(err.String(), "Validation failed") || !strings.Contains(err.String(), "questions[0].correct") {
		t.Fatalf("expected validation issues, got %q", err.String())
	}
}

func TestValidateCommandRejectsArguments(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"validate", "extra"}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(err.String(), "unexpected arguments") {
		t.Fatalf("expected argument error, got %q", err.String())
	}
}

// TestValidateCommandDiscoversBank verifies the bank is found from a nested
// working directory and reported by its resolved path.
func TestValidateCommandDiscoversBank(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("resolve temp dir: %v", err)
	}
	bankPath := filepath.Join(root, ".quizpage", "bank.yml")
	if err := os.MkdirAll(filepath.Dir(bankPath), 0o755); err != nil {
		t.Fatalf("create bank dir: %v", err)
	}
	body := `version: 1
questions:
  - id: one
    prompt: "1+1?"
    options:
      - {key: a, label: "2"}
    correct: a
`
	if err := os.WriteFile(bankPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	nested := filepath.Join(root, "sub", "dir")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("create nested dir: %v", err)
	}
	t.Chdir(nested)

	var out, errOut bytes.Buffer
	code := Run([]string{"validate"}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut.String())
	}
	if !strings.Contains(out.String(), "Bank OK (1 questions, "+bankPath+")") {
		t.Fatalf("expected discovered bank in output, got %q", out.String())
	}
}
