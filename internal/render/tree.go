// Package render projects a bank and session state into a display tree and
// writes that tree as HTML or terminal text.
package render

import (
	"strconv"

	"quizpage/internal/bank"
	"quizpage/internal/grading"
	"quizpage/internal/session"
)

// Display labels.
const (
	BadgePrefix       = "Pregunta"
	CorrectMarker     = "✅ Correcto"
	IncorrectMarker   = "❌ Incorrecto"
	ScoreLabel        = "Puntaje"
	PassMessage       = "¡Bien!"
	NeedsPracticeText = "Sigue practicando 💪"
)

// SummaryID is the element id of the summary area.
const SummaryID = "result"

// Tree is the display tree of a quiz in a given session state. Text fields
// hold raw bank text; writers escape it on output.
type Tree struct {
	Title     string
	SessionID string
	Phase     session.Phase
	Questions []Block
	Summary   Summary
}

// Block is the display of one question.
type Block struct {
	ID          string
	Number      int
	Badge       string
	PromptID    string
	Context     string
	Prompt      string
	Options     []Control
	Explanation Slot
}

// HasContext reports whether the block shows a context block.
func (b Block) HasContext() bool {
	return b.Context != ""
}

// Control is a selectable option. Controls of one block share Group, so at
// most one of them is checked.
type Control struct {
	Group   string
	Value   string
	Label   string
	Checked bool
}

// Slot is the explanation area of a question. It is hidden and empty until
// feedback is on display.
type Slot struct {
	ID      string
	Hidden  bool
	Correct bool
	Marker  string
	Text    string
}

// Summary is the score area. It is empty unless the session is graded.
type Summary struct {
	ID           string
	Visible      bool
	ScorePercent int
	CorrectCount int
	Total        int
	Category     grading.Category
	Message      string
}

// Fraction returns the "correct/total" text of the summary.
func (s Summary) Fraction() string {
	return strconv.Itoa(s.CorrectCount) + "/" + strconv.Itoa(s.Total)
}

// Build projects a bank and session state into a display tree. Explanation
// slots and the summary are filled from the feedback on display, not from
// the current selections.
func Build(b *bank.Bank, state session.State) Tree {
	questions := b.All()
	tree := Tree{
		Title:     b.Title(),
		SessionID: state.ID,
		Phase:     state.Phase,
		Questions: make([]Block, 0, len(questions)),
		Summary:   Summary{ID: SummaryID},
	}
	var feedback *grading.Result
	if state.Graded() {
		feedback = state.Feedback
	}
	for i, q := range questions {
		number := i + 1
		block := Block{
			ID:       q.ID,
			Number:   number,
			Badge:    BadgePrefix + " " + strconv.Itoa(number),
			PromptID: q.ID + "-prompt",
			Context:  q.Context,
			Prompt:   q.Prompt,
			Options:  make([]Control, 0, len(q.Options)),
			Explanation: Slot{
				ID:     q.ID + "-explain",
				Hidden: true,
			},
		}
		selected := state.Selected(q.ID)
		for _, option := range q.Options {
			block.Options = append(block.Options, Control{
				Group:   q.ID,
				Value:   option.Key,
				Label:   option.Label,
				Checked: option.Key == selected,
			})
		}
		if feedback != nil {
			if outcome, ok := feedback.Outcome(q.ID); ok {
				block.Explanation = revealed(block.Explanation.ID, outcome)
			}
		}
		tree.Questions = append(tree.Questions, block)
	}
	if feedback != nil {
		tree.Summary = summarize(*feedback)
	}
	return tree
}

func revealed(id string, outcome grading.Outcome) Slot {
	marker := IncorrectMarker
	if outcome.IsCorrect {
		marker = CorrectMarker
	}
	return Slot{
		ID:      id,
		Hidden:  false,
		Correct: outcome.IsCorrect,
		Marker:  marker,
		Text:    outcome.Explain,
	}
}

func summarize(result grading.Result) Summary {
	message := NeedsPracticeText
	if result.Passed() {
		message = PassMessage
	}
	return Summary{
		ID:           SummaryID,
		Visible:      true,
		ScorePercent: result.ScorePercent,
		CorrectCount: result.CorrectCount,
		Total:        result.Total,
		Category:     result.Category,
		Message:      message,
	}
}
