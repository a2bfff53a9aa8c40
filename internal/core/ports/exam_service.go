package ports

import "github.com/99minutos/exam-api/internal/core/domain"

// ExamService exposes the question bank and scores submissions against it.
// Both operations are pure reads of the immutable bank.
type ExamService interface {
	ListQuestions() []domain.QuestionView
	Score(submissions []domain.AnswerSubmission) domain.ScoringResult
}
