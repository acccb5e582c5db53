package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"quizpage/internal/grading"
	"quizpage/internal/testutil"
)

func TestGradeCommandText(t *testing.T) {
	answers := testutil.WriteFile(t, "answers.yml", "q1: c\nq2: a\nq3: b\nq4: c\n")
	var out, err bytes.Buffer
	code := Run([]string{"grade", "--answers", answers, "--no-color"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, err.String())
	}
	output := out.String()
	if !strings.Contains(output, "Pregunta 2 (q2): ❌ Incorrecto  [a → b]") {
		t.Fatalf("expected q2 outcome, got %q", output)
	}
	if !strings.Contains(output, "Puntaje: 75% (3/4) · ¡Bien!") {
		t.Fatalf("expected summary, got %q", output)
	}
}

func TestGradeCommandJSON(t *testing.T) {
	answers := testutil.WriteFile(t, "answers.json", `{"q1": "a"}`)
	var out, err bytes.Buffer
	code := Run([]string{"grade", "--answers", answers, "--json"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, err.String())
	}
	var result grading.Result
	if decodeErr := json.Unmarshal(out.Bytes(), &result); decodeErr != nil {
		t.Fatalf("decode output: %v", decodeErr)
	}
	if result.CorrectCount != 0 || result.ScorePercent != 0 || result.Category != grading.CategoryNeedsPractice {
		t.Fatalf("unexpected result %+v", result)
	}
	if len(result.Outcomes) != 4 {
		t.Fatalf("expected 4 outcomes, got %d", len(result.Outcomes))
	}
}

func TestGradeCommandEmptyAnswers(t *testing.T) {
	answers := testutil.WriteFile(t, "answers.yml", "")
	var out, err bytes.Buffer
	code := Run([]string{"grade", "--answers", answers, "--no-color"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "[- → c]") {
		t.Fatalf("expected unanswered marker, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Puntaje: 0% (0/4) · Sigue practicando 💪") {
		t.Fatalf("expected failing summary, got %q", out.String())
	}
}

func TestGradeCommandRequiresAnswers(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"grade"}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(err.String(), "--answers is required") {
		t.Fatalf("expected missing answers error, got %q", err.String())
	}
}

func TestGradeCommandRejectsUnknownOption(t *testing.T) {
	answers := testutil.WriteFile(t, "answers.yml", "q1: z\n")
	var out, err bytes.Buffer
	code := Run([]string{"grade", "--answers", answers}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "unknown option") {
		t.Fatalf("expected unknown option error, got %q", err.String())
	}
}
