package service

import (
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/99minutos/exam-api/internal/core/domain"
)

func sampleBank() []domain.Question {
	return []domain.Question{
		{ID: 1, Prompt: "What is the capital of France?", Options: []string{"Berlin", "Madrid", "Paris", "Rome"}, CorrectAnswer: "Paris"},
		{ID: 2, Prompt: "Which planet is known as the Red Planet?", Options: []string{"Earth", "Mars", "Jupiter", "Saturn"}, CorrectAnswer: "Mars"},
		{ID: 3, Prompt: "What is the largest ocean on Earth?", Options: []string{"Atlantic Ocean", "Indian Ocean", "Arctic Ocean", "Pacific Ocean"}, CorrectAnswer: "Pacific Ocean"},
		{ID: 4, Prompt: "Who wrote 'To Kill a Mockingbird'?", Options: []string{"Harper Lee", "Mark Twain", "Ernest Hemingway", "F. Scott Fitzgerald"}, CorrectAnswer: "Harper Lee"},
		{ID: 5, Prompt: "What is the square root of 64?", Options: []string{"6", "7", "8", "9"}, CorrectAnswer: "8"},
	}
}

func newExamSvc(policy domain.DuplicatePolicy) *ExamService {
	return NewExamService(sampleBank(), policy, zerolog.Nop())
}

func TestExamService_ListQuestions_HidesAnswersAndKeepsOrder(t *testing.T) {
	svc := newExamSvc("")

	views := svc.ListQuestions()
	bank := sampleBank()
	if len(views) != len(bank) {
		t.Fatalf("expected %d questions, got %d", len(bank), len(views))
	}
	for i, v := range views {
		if v.ID != bank[i].ID || v.Prompt != bank[i].Prompt {
			t.Fatalf("position %d: got id=%d prompt=%q", i, v.ID, v.Prompt)
		}
		if !reflect.DeepEqual(v.Options, bank[i].Options) {
			t.Fatalf("position %d: options mismatch %v", i, v.Options)
		}
	}
}

func TestExamService_ListQuestions_Idempotent(t *testing.T) {
	svc := newExamSvc("")

	first := svc.ListQuestions()
	first[0].Options[0] = "tampered"
	second := svc.ListQuestions()

	if second[0].Options[0] != "Berlin" {
		t.Fatalf("ListQuestions leaked internal state: %v", second[0].Options)
	}
	third := svc.ListQuestions()
	if !reflect.DeepEqual(second, third) {
		t.Fatalf("consecutive calls differ")
	}
}

func TestExamService_NewCopiesBank(t *testing.T) {
	bank := sampleBank()
	svc := NewExamService(bank, "", zerolog.Nop())
	bank[0].CorrectAnswer = "Berlin"
	bank[0].Options[2] = "Lyon"

	res := svc.Score([]domain.AnswerSubmission{{QuestionID: 1, SelectedOption: "Paris"}})
	if res.Score != 1 {
		t.Fatalf("bank was aliased: score %d", res.Score)
	}
	if svc.ListQuestions()[0].Options[2] != "Paris" {
		t.Fatalf("bank options were aliased")
	}
}

func TestExamService_Score(t *testing.T) {
	tests := []struct {
		name        string
		submissions []domain.AnswerSubmission
		want        domain.ScoringResult
	}{
		{
			name:        "empty submission",
			submissions: nil,
			want:        domain.ScoringResult{Score: 0, Total: 5, CorrectAnswers: map[int]string{}},
		},
		{
			name: "one right one wrong",
			submissions: []domain.AnswerSubmission{
				{QuestionID: 1, SelectedOption: "Paris"},
				{QuestionID: 2, SelectedOption: "Earth"},
			},
			want: domain.ScoringResult{Score: 1, Total: 5, CorrectAnswers: map[int]string{1: "Paris", 2: "Mars"}},
		},
		{
			name: "unknown id ignored",
			submissions: []domain.AnswerSubmission{
				{QuestionID: 999, SelectedOption: "Paris"},
				{QuestionID: 5, SelectedOption: "8"},
			},
			want: domain.ScoringResult{Score: 1, Total: 5, CorrectAnswers: map[int]string{5: "8"}},
		},
		{
			name: "exact comparison",
			submissions: []domain.AnswerSubmission{
				{QuestionID: 1, SelectedOption: "paris"},
				{QuestionID: 3, SelectedOption: "Pacific Ocean "},
			},
			want: domain.ScoringResult{Score: 0, Total: 5, CorrectAnswers: map[int]string{1: "Paris", 3: "Pacific Ocean"}},
		},
		{
			name: "answer outside options",
			submissions: []domain.AnswerSubmission{
				{QuestionID: 4, SelectedOption: "Nobody"},
			},
			want: domain.ScoringResult{Score: 0, Total: 5, CorrectAnswers: map[int]string{4: "Harper Lee"}},
		},
		{
			name: "all correct",
			submissions: []domain.AnswerSubmission{
				{QuestionID: 1, SelectedOption: "Paris"},
				{QuestionID: 2, SelectedOption: "Mars"},
				{QuestionID: 3, SelectedOption: "Pacific Ocean"},
				{QuestionID: 4, SelectedOption: "Harper Lee"},
				{QuestionID: 5, SelectedOption: "8"},
			},
			want: domain.ScoringResult{Score: 5, Total: 5, CorrectAnswers: map[int]string{1: "Paris", 2: "Mars", 3: "Pacific Ocean", 4: "Harper Lee", 5: "8"}},
		},
	}

	svc := newExamSvc("")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Score(tt.submissions)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Score() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestExamService_Score_DuplicatePolicies(t *testing.T) {
	subs := []domain.AnswerSubmission{
		{QuestionID: 1, SelectedOption: "Paris"},
		{QuestionID: 1, SelectedOption: "Paris"},
		{QuestionID: 2, SelectedOption: "Mars"},
		{QuestionID: 2, SelectedOption: "Earth"},
	}

	tests := []struct {
		policy    domain.DuplicatePolicy
		wantScore int
	}{
		{domain.DuplicatesCountAll, 3},
		{domain.DuplicatesKeepFirst, 2},
		{domain.DuplicatesKeepLast, 1},
	}
	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			got := newExamSvc(tt.policy).Score(subs)
			if got.Score != tt.wantScore {
				t.Fatalf("expected score %d, got %d", tt.wantScore, got.Score)
			}
			if got.Total != 5 {
				t.Fatalf("expected total 5, got %d", got.Total)
			}
			want := map[int]string{1: "Paris", 2: "Mars"}
			if !reflect.DeepEqual(got.CorrectAnswers, want) {
				t.Fatalf("unexpected correct answers: %v", got.CorrectAnswers)
			}
		})
	}
}

func TestExamService_Score_CountAllCanExceedTotal(t *testing.T) {
	subs := make([]domain.AnswerSubmission, 7)
	for i := range subs {
		subs[i] = domain.AnswerSubmission{QuestionID: 5, SelectedOption: "8"}
	}

	got := newExamSvc(domain.DuplicatesCountAll).Score(subs)
	if got.Score != 7 || got.Total != 5 {
		t.Fatalf("expected 7/5, got %d/%d", got.Score, got.Total)
	}
}

func TestExamService_EmptyBank(t *testing.T) {
	svc := NewExamService(nil, "", zerolog.Nop())

	if qs := svc.ListQuestions(); len(qs) != 0 {
		t.Fatalf("expected no questions, got %d", len(qs))
	}
	got := svc.Score([]domain.AnswerSubmission{{QuestionID: 1, SelectedOption: "x"}})
	if got.Total != 0 || got.Score != 0 || len(got.CorrectAnswers) != 0 {
		t.Fatalf("unexpected result %+v", got)
	}
}
