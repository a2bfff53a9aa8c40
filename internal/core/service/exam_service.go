package service

import (
	"github.com/rs/zerolog"

	"github.com/99minutos/exam-api/internal/core/domain"
	"github.com/99minutos/exam-api/internal/pkg/metrics"
)

// ExamService holds the question bank, which is never mutated after
// construction, so no locking is needed.
type ExamService struct {
	questions []domain.Question
	byID      map[int]domain.Question
	policy    domain.DuplicatePolicy
	log       zerolog.Logger
}

// NewExamService copies bank; callers may reuse their slice afterwards. The
// bank is assumed to be validated already (see bank.Load).
func NewExamService(bank []domain.Question, policy domain.DuplicatePolicy, log zerolog.Logger) *ExamService {
	if policy == "" {
		policy = domain.DuplicatesCountAll
	}
	s := &ExamService{
		questions: make([]domain.Question, len(bank)),
		byID:      make(map[int]domain.Question, len(bank)),
		policy:    policy,
		log:       log,
	}
	for i, q := range bank {
		q.Options = append([]string(nil), q.Options...)
		s.questions[i] = q
		s.byID[q.ID] = q
	}
	return s
}

// ListQuestions returns the bank in its canonical order without the correct
// answers.
func (s *ExamService) ListQuestions() []domain.QuestionView {
	views := make([]domain.QuestionView, 0, len(s.questions))
	for _, q := range s.questions {
		views = append(views, q.View())
	}
	return views
}

// Score compares submissions with the bank. Total is always the bank size;
// unknown question ids are skipped. Comparison is exact string equality.
func (s *ExamService) Score(submissions []domain.AnswerSubmission) domain.ScoringResult {
	result := domain.ScoringResult{
		Total:          len(s.questions),
		CorrectAnswers: make(map[int]string),
	}

	skipped := 0
	for _, sub := range s.applyPolicy(submissions) {
		q, ok := s.byID[sub.QuestionID]
		if !ok {
			skipped++
			continue
		}
		result.CorrectAnswers[q.ID] = q.CorrectAnswer
		if sub.SelectedOption == q.CorrectAnswer {
			result.Score++
		}
	}

	metrics.SubmissionsTotal.Inc()
	if skipped > 0 {
		metrics.SkippedAnswersTotal.Add(float64(skipped))
	}
	if result.Total > 0 {
		metrics.ScoreRatio.Observe(float64(result.Score) / float64(result.Total))
	}

	s.log.Debug().
		Int("answers", len(submissions)).
		Int("skipped", skipped).
		Int("score", result.Score).
		Int("total", result.Total).
		Msg("submission scored")

	return result
}

// applyPolicy reduces submissions to the entries that count for scoring.
func (s *ExamService) applyPolicy(submissions []domain.AnswerSubmission) []domain.AnswerSubmission {
	switch s.policy {
	case domain.DuplicatesKeepFirst:
		seen := make(map[int]struct{}, len(submissions))
		out := make([]domain.AnswerSubmission, 0, len(submissions))
		for _, sub := range submissions {
			if _, dup := seen[sub.QuestionID]; dup {
				continue
			}
			seen[sub.QuestionID] = struct{}{}
			out = append(out, sub)
		}
		return out
	case domain.DuplicatesKeepLast:
		last := make(map[int]int, len(submissions))
		for i, sub := range submissions {
			last[sub.QuestionID] = i
		}
		out := make([]domain.AnswerSubmission, 0, len(last))
		for i, sub := range submissions {
			if last[sub.QuestionID] == i {
				out = append(out, sub)
			}
		}
		return out
	default:
		return submissions
	}
}
