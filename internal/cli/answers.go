package cli

import (
	"fmt"
	"sort"

	"quizpage/internal/bank"
	"quizpage/internal/grading"
	"quizpage/internal/session"
)

// sessionFromAnswers starts a session whose selections come from an answers
// file. Answers naming unknown questions or options are rejected.
func sessionFromAnswers(b *bank.Bank, answersPath string) (session.State, error) {
	state := session.New(session.NewID())
	if answersPath == "" {
		return state, nil
	}
	selections, err := grading.LoadSelections(answersPath)
	if err != nil {
		return session.State{}, err
	}
	ids := make([]string, 0, len(selections))
	for id := range selections {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		state, err = session.Select(b, state, id, selections[id])
		if err != nil {
			return session.State{}, fmt.Errorf("answers %s: %w", answersPath, err)
		}
	}
	return state, nil
}
