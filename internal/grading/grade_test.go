package grading

import (
	"testing"

	"quizpage/internal/bank"
	"quizpage/internal/question"
)

func defaultBank(t *testing.T) *bank.Bank {
	t.Helper()
	b, err := bank.Default()
	if err != nil {
		t.Fatalf("default bank: %v", err)
	}
	return b
}

// TestGradeScenarios covers the pass and needs-practice paths on the default bank.
func TestGradeScenarios(t *testing.T) {
	b := defaultBank(t)
	cases := []struct {
		name       string
		selections Selections
		correct    int
		score      int
		category   Category
	}{
		{
			name:       "three of four",
			selections: Selections{"q1": "c", "q2": "a", "q3": "b", "q4": "c"},
			correct:    3,
			score:      75,
			category:   CategoryPass,
		},
		{
			name:       "none answered",
			selections: Selections{},
			correct:    0,
			score:      0,
			category:   CategoryNeedsPractice,
		},
		{
			name:       "nil selections",
			selections: nil,
			correct:    0,
			score:      0,
			category:   CategoryNeedsPractice,
		},
		{
			name:       "all correct",
			selections: Selections{"q1": "c", "q2": "b", "q3": "b", "q4": "c"},
			correct:    4,
			score:      100,
			category:   CategoryPass,
		},
		{
			name:       "two of four",
			selections: Selections{"q1": "c", "q2": "b", "q3": "", "q4": "a"},
			correct:    2,
			score:      50,
			category:   CategoryNeedsPractice,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Grade(b, tc.selections)
			if result.CorrectCount != tc.correct {
				t.Fatalf("expected %d correct, got %d", tc.correct, result.CorrectCount)
			}
			if result.Total != 4 {
				t.Fatalf("expected total 4, got %d", result.Total)
			}
			if result.ScorePercent != tc.score {
				t.Fatalf("expected score %d, got %d", tc.score, result.ScorePercent)
			}
			if result.Category != tc.category {
				t.Fatalf("expected category %s, got %s", tc.category, result.Category)
			}
			if len(result.Outcomes) != 4 {
				t.Fatalf("expected an outcome per question, got %d", len(result.Outcomes))
			}
		})
	}
}

// TestGradeUnansweredIsIncorrect verifies missing selections never match.
func TestGradeUnansweredIsIncorrect(t *testing.T) {
	b := defaultBank(t)
	result := Grade(b, Selections{"q1": "c"})
	outcome, ok := result.Outcome("q2")
	if !ok {
		t.Fatalf("missing outcome for q2")
	}
	if outcome.IsCorrect || outcome.Answered() {
		t.Fatalf("expected unanswered incorrect outcome, got %+v", outcome)
	}
	if outcome.Explain == "" || outcome.Correct != "b" {
		t.Fatalf("expected explanation and key on outcome, got %+v", outcome)
	}
}

// TestGradeIsPure verifies repeated grading yields equal results and leaves inputs alone.
func TestGradeIsPure(t *testing.T) {
	b := defaultBank(t)
	selections := Selections{"q1": "a", "q4": "c", "unknown": "x"}
	before := selections.Clone()
	first := Grade(b, selections)
	second := Grade(b, selections)
	if !Equal(first, second) {
		t.Fatalf("expected equal results, got %+v and %+v", first, second)
	}
	if !selections.Equal(before) {
		t.Fatalf("selections were mutated: %+v", selections)
	}
	if first.CorrectCount != 1 {
		t.Fatalf("expected unknown ids to be ignored, got %d correct", first.CorrectCount)
	}
}

// TestScorePercentRounding verifies half values round up.
func TestScorePercentRounding(t *testing.T) {
	cases := []struct {
		correct, total, want int
	}{
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{3, 4, 75},
		{1, 0, 0},
	}
	for _, tc := range cases {
		if got := ScorePercent(tc.correct, tc.total); got != tc.want {
			t.Fatalf("%d/%d: expected %d, got %d", tc.correct, tc.total, tc.want, got)
		}
	}
}

// TestCategorizeThreshold verifies the category boundary.
func TestCategorizeThreshold(t *testing.T) {
	if Categorize(74) != CategoryNeedsPractice {
		t.Fatalf("expected 74 to need practice")
	}
	if Categorize(75) != CategoryPass {
		t.Fatalf("expected 75 to pass")
	}
}

// TestGradeSingleQuestionBank verifies grading on a minimal bank.
func TestGradeSingleQuestionBank(t *testing.T) {
	b, err := bank.New("one", []question.Question{
		{ID: "only", Prompt: "P", Options: []question.Option{{Key: "y", Label: "Yes"}, {Key: "n", Label: "No"}}, Correct: "y"},
	})
	if err != nil {
		t.Fatalf("new bank: %v", err)
	}
	if got := Grade(b, Selections{"only": "n"}); got.ScorePercent != 0 || got.Passed() {
		t.Fatalf("unexpected result: %+v", got)
	}
	if got := Grade(b, Selections{"only": "y"}); got.ScorePercent != 100 || !got.Passed() {
		t.Fatalf("unexpected result: %+v", got)
	}
}
