// Package grading compares selections against a bank's answer keys.
package grading

import (
	"math"

	"quizpage/internal/bank"
)

// PassThreshold is the minimum score percent shown as a pass.
const PassThreshold = 75

// Category is the presentational bucket of a score.
type Category string

const (
	// CategoryPass marks scores at or above PassThreshold.
	CategoryPass Category = "pass"
	// CategoryNeedsPractice marks scores below PassThreshold.
	CategoryNeedsPractice Category = "needs-practice"
)

// Outcome is the grading result for one question.
type Outcome struct {
	QuestionID string `json:"question_id"`
	Index      int    `json:"index"`
	Selected   string `json:"selected,omitempty"`
	Correct    string `json:"correct"`
	IsCorrect  bool   `json:"is_correct"`
	Explain    string `json:"explain"`
}

// Answered reports whether an option was selected for the question.
func (o Outcome) Answered() bool {
	return o.Selected != ""
}

// Result aggregates the outcomes of a grading pass.
type Result struct {
	Outcomes     []Outcome `json:"outcomes"`
	CorrectCount int       `json:"correct_count"`
	Total        int       `json:"total"`
	ScorePercent int       `json:"score_percent"`
	Category     Category  `json:"category"`
}

// Passed reports whether the score reached the pass threshold.
func (r Result) Passed() bool {
	return r.Category == CategoryPass
}

// Outcome returns the outcome recorded for a question id.
func (r Result) Outcome(questionID string) (Outcome, bool) {
	for _, outcome := range r.Outcomes {
		if outcome.QuestionID == questionID {
			return outcome, true
		}
	}
	return Outcome{}, false
}

// Grade scores selections against the bank. Unanswered questions count as
// incorrect; selections for ids outside the bank are ignored.
func Grade(b *bank.Bank, selections Selections) Result {
	questions := b.All()
	result := Result{
		Outcomes: make([]Outcome, 0, len(questions)),
		Total:    len(questions),
	}
	for i, q := range questions {
		selected := selections.Get(q.ID)
		outcome := Outcome{
			QuestionID: q.ID,
			Index:      i,
			Selected:   selected,
			Correct:    q.Correct,
			IsCorrect:  selected != "" && selected == q.Correct,
			Explain:    q.Explain,
		}
		if outcome.IsCorrect {
			result.CorrectCount++
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}
	result.ScorePercent = ScorePercent(result.CorrectCount, result.Total)
	result.Category = Categorize(result.ScorePercent)
	return result
}

// ScorePercent returns round(100 * correct / total), or 0 for an empty total.
func ScorePercent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}

// Categorize maps a score percent to its presentational category.
func Categorize(scorePercent int) Category {
	if scorePercent >= PassThreshold {
		return CategoryPass
	}
	return CategoryNeedsPractice
}

// Equal reports whether two results carry the same score and outcomes.
func Equal(a, b Result) bool {
	if a.CorrectCount != b.CorrectCount ||
		a.Total != b.Total ||
		a.ScorePercent != b.ScorePercent ||
		a.Category != b.Category ||
		len(a.Outcomes) != len(b.Outcomes) {
		return false
	}
	for i := range a.Outcomes {
		if a.Outcomes[i] != b.Outcomes[i] {
			return false
		}
	}
	return true
}
