// Package bank loads the exam question bank once at startup.
package bank

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/99minutos/exam-api/internal/core/domain"
)

//go:embed default_bank.json
var defaultBank []byte

// Default returns the built-in five question bank.
func Default() ([]domain.Question, error) {
	return Parse(defaultBank)
}

// Load reads the bank from path, or the built-in bank when path is empty.
func Load(path string) ([]domain.Question, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a JSON array of questions and validates it.
func Parse(raw []byte) ([]domain.Question, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var questions []domain.Question
	if err := dec.Decode(&questions); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrInvalidBank, err)
	}
	if err := Validate(questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// Validate checks every bank invariant: positive unique ids, a prompt, two
// or more distinct non-empty options and a correct answer among the options.
func Validate(questions []domain.Question) error {
	v := validator.New()
	seen := make(map[int]struct{}, len(questions))

	var errs []error
	for i, q := range questions {
		if err := v.Struct(q); err != nil {
			errs = append(errs, fmt.Errorf("question #%d (id %d): %v", i, q.ID, err))
			continue
		}
		if _, dup := seen[q.ID]; dup {
			errs = append(errs, fmt.Errorf("question #%d: duplicate id %d", i, q.ID))
		}
		seen[q.ID] = struct{}{}
		if !q.HasOption(q.CorrectAnswer) {
			errs = append(errs, fmt.Errorf("question #%d (id %d): correct answer %q is not an option", i, q.ID, q.CorrectAnswer))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidBank, errors.Join(errs...))
	}
	return nil
}
