package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidBank = errors.New("invalid question bank")

// Question is a single multiple-choice item of the exam bank.
type Question struct {
	ID            int      `json:"id"             validate:"required,gt=0"`
	Prompt        string   `json:"question"       validate:"required"`
	Options       []string `json:"options"        validate:"required,min=2,unique,dive,required"`
	CorrectAnswer string   `json:"correct_answer" validate:"required"`
}

// View strips the correct answer so the question can be shown to a candidate.
func (q Question) View() QuestionView {
	opts := make([]string, len(q.Options))
	copy(opts, q.Options)
	return QuestionView{ID: q.ID, Prompt: q.Prompt, Options: opts}
}

// HasOption reports whether s is one of the question's options.
func (q Question) HasOption(s string) bool {
	for _, o := range q.Options {
		if o == s {
			return true
		}
	}
	return false
}

// QuestionView is the public projection of a Question.
type QuestionView struct {
	ID      int
	Prompt  string
	Options []string
}

// AnswerSubmission is one candidate answer. It is scored and discarded.
type AnswerSubmission struct {
	QuestionID     int
	SelectedOption string
}

// ScoringResult is the outcome of scoring one submission list.
// CorrectAnswers only holds ids that were submitted and exist in the bank.
type ScoringResult struct {
	Score          int
	Total          int
	CorrectAnswers map[int]string
}

// DuplicatePolicy decides how repeated question ids in one submission count.
type DuplicatePolicy string

const (
	// DuplicatesCountAll scores every entry, so a question answered correctly
	// twice counts twice.
	DuplicatesCountAll DuplicatePolicy = "count_all"
	// DuplicatesKeepFirst scores only the first entry for each question id.
	DuplicatesKeepFirst DuplicatePolicy = "keep_first"
	// DuplicatesKeepLast scores only the last entry for each question id.
	DuplicatesKeepLast DuplicatePolicy = "keep_last"
)

// ParseDuplicatePolicy maps a configuration string to a DuplicatePolicy.
// An empty string selects DuplicatesCountAll.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch p := DuplicatePolicy(s); p {
	case "":
		return DuplicatesCountAll, nil
	case DuplicatesCountAll, DuplicatesKeepFirst, DuplicatesKeepLast:
		return p, nil
	default:
		return "", fmt.Errorf("unknown duplicate policy %q", s)
	}
}
