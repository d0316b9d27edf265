package content

import (
	"EasyToLearn/internal/app_errors"
	"EasyToLearn/internal/models"
	"EasyToLearn/internal/storage"
	"time"
)

// RecordAttempt scores the answers against the current question bank and
// prepends an immutable attempt for the signed-in user. Answers align with
// the question order at submission time; missing slots count as wrong.
func (r *Repository) RecordAttempt(answers []int) (*models.QuizAttempt, error) {
	user := r.sessions.Current()
	if user == nil {
		return nil, app_errors.ErrNotAuthenticated
	}
	questions := r.QuizQuestions()
	score := 0
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectIndex {
			score++
		}
	}
	attempt := models.QuizAttempt{
		ID:          models.NewID(),
		UserID:      user.ID,
		Score:       score,
		Total:       len(questions),
		Answers:     append([]int(nil), answers...),
		AttemptedAt: time.Now().UTC(),
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	attempts := storage.ReadCollection[models.QuizAttempt](r.records, storage.SlotQuizAttempts)
	attempts = append([]models.QuizAttempt{attempt}, attempts...)
	if err := storage.WriteCollection(r.records, storage.SlotQuizAttempts, attempts); err != nil {
		return nil, err
	}
	return &attempt, nil
}

// AttemptsByUser returns one user's attempts, newest first.
func (r *Repository) AttemptsByUser(userID string) []models.QuizAttempt {
	attempts := storage.ReadCollection[models.QuizAttempt](r.records, storage.SlotQuizAttempts)
	out := make([]models.QuizAttempt, 0, len(attempts))
	for _, a := range attempts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out
}
