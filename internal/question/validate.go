package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question bank.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeSpec trims whitespace and validates a question bank document.
func NormalizeSpec(spec Spec) (Spec, error) {
	collector := &issueCollector{}
	if spec.Version == 0 {
		collector.add("version", "is required")
	} else if spec.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", spec.Version))
	}
	spec.Title = strings.TrimSpace(spec.Title)
	spec.Questions = normalizeQuestions(spec.Questions, collector)
	if err := collector.result(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// NormalizeQuestions trims and validates questions built outside a document.
// The input slice is not modified.
func NormalizeQuestions(questions []Question) ([]Question, error) {
	collector := &issueCollector{}
	normalized := normalizeQuestions(questions, collector)
	if err := collector.result(); err != nil {
		return nil, err
	}
	return normalized, nil
}

func normalizeQuestions(questions []Question, collector *issueCollector) []Question {
	if len(questions) == 0 {
		collector.add("questions", "must include at least one entry")
		return nil
	}
	normalized := make([]Question, 0, len(questions))
	seenIDs := map[string]struct{}{}
	for i, question := range questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		question = question.Clone()

		question.ID = NormalizeKey(question.ID)
		if question.ID == "" {
			collector.add(prefix+".id", "is required")
		} else if _, exists := seenIDs[question.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", question.ID))
		} else {
			seenIDs[question.ID] = struct{}{}
		}

		question.Type = Type(strings.TrimSpace(string(question.Type)))
		if question.Type == "" {
			question.Type = TypeSingle
		}
		if question.Type != TypeSingle {
			collector.add(prefix+".type", fmt.Sprintf("unsupported type %q", question.Type))
		}

		question.Prompt = strings.TrimSpace(question.Prompt)
		if question.Prompt == "" {
			collector.add(prefix+".prompt", "is required")
		}
		question.Context = normalizeContext(question.Context)
		question.Explain = strings.TrimSpace(question.Explain)

		normalizeOptions(&question, prefix, collector)
		normalized = append(normalized, question)
	}
	return normalized
}

func normalizeOptions(question *Question, prefix string, collector *issueCollector) {
	if len(question.Options) == 0 {
		collector.add(prefix+".options", "must include at least one entry")
	}
	keys := map[string]int{}
	for i, option := range question.Options {
		field := fmt.Sprintf("%s.options[%d]", prefix, i)
		option.Key = NormalizeKey(option.Key)
		option.Label = strings.TrimSpace(option.Label)
		if option.Key == "" {
			collector.add(field+".key", "is required")
		} else if _, exists := keys[option.Key]; exists {
			collector.add(field+".key", fmt.Sprintf("duplicate key %q", option.Key))
		} else {
			keys[option.Key] = i
		}
		if option.Label == "" {
			collector.add(field+".label", "is required")
		}
		question.Options[i] = option
	}

	question.Correct = NormalizeKey(question.Correct)
	if question.Correct == "" {
		collector.add(prefix+".correct", "is required")
		return
	}
	if _, ok := keys[question.Correct]; !ok && len(question.Options) > 0 {
		collector.add(prefix+".correct", fmt.Sprintf("unknown option %q", question.Correct))
	}
}
