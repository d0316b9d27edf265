package content

import (
	"EasyToLearn/internal/app_errors"
	"EasyToLearn/internal/models"
	"EasyToLearn/internal/storage"
)

type NewQuizQuestion struct {
	Question     string
	Options      []string
	CorrectIndex int
}

type QuizQuestionPatch struct {
	Question     *string  `json:"question,omitempty"`
	Options      []string `json:"options,omitempty"`
	CorrectIndex *int     `json:"correctIndex,omitempty"`
}

func validQuestion(options []string, correctIndex int) error {
	if len(options) < models.MinQuizOptions || len(options) > models.MaxQuizOptions {
		return app_errors.ErrBadOptionCount
	}
	if correctIndex < 0 || correctIndex >= len(options) {
		return app_errors.ErrBadCorrectIndex
	}
	return nil
}

// AddQuizQuestion appends a question. Only admins and instructors manage the
// question bank.
func (r *Repository) AddQuizQuestion(q NewQuizQuestion) (string, error) {
	if !r.canManage() {
		return "", app_errors.ErrForbidden
	}
	if err := validQuestion(q.Options, q.CorrectIndex); err != nil {
		return "", err
	}
	record := models.QuizQuestion{
		ID:           models.NewID(),
		Question:     q.Question,
		Options:      q.Options,
		CorrectIndex: q.CorrectIndex,
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	questions := storage.ReadCollection[models.QuizQuestion](r.records, storage.SlotQuizQuestions)
	questions = append(questions, record)
	if err := storage.WriteCollection(r.records, storage.SlotQuizQuestions, questions); err != nil {
		return "", err
	}
	return record.ID, nil
}

func (r *Repository) UpdateQuizQuestion(id string, patch QuizQuestionPatch) bool {
	if !r.canManage() {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	questions := storage.ReadCollection[models.QuizQuestion](r.records, storage.SlotQuizQuestions)
	for i := range questions {
		if questions[i].ID != id {
			continue
		}
		updated := questions[i]
		if patch.Question != nil {
			updated.Question = *patch.Question
		}
		if patch.Options != nil {
			updated.Options = patch.Options
		}
		if patch.CorrectIndex != nil {
			updated.CorrectIndex = *patch.CorrectIndex
		}
		if validQuestion(updated.Options, updated.CorrectIndex) != nil {
			return false
		}
		questions[i] = updated
		return storage.WriteCollection(r.records, storage.SlotQuizQuestions, questions) == nil
	}
	return false
}

func (r *Repository) DeleteQuizQuestion(id string) bool {
	if !r.canManage() {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	questions := storage.ReadCollection[models.QuizQuestion](r.records, storage.SlotQuizQuestions)
	kept := questions[:0]
	for _, q := range questions {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	return storage.WriteCollection(r.records, storage.SlotQuizQuestions, kept) == nil
}

func (r *Repository) QuizQuestions() []models.QuizQuestion {
	return storage.ReadCollection[models.QuizQuestion](r.records, storage.SlotQuizQuestions)
}
