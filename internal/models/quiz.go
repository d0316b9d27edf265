package models

import "time"

const (
	MinQuizOptions = 2
	MaxQuizOptions = 6
)

type QuizQuestion struct {
	ID           string   `json:"id"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

// RemoveOption deletes option i and re-indexes CorrectIndex so it keeps
// pointing at a valid option: removing an earlier option shifts it left,
// removing the correct option itself clamps to the nearest remaining slot,
// and removing a later option leaves it untouched. Questions never drop
// below the two-option minimum.
func RemoveOption(q QuizQuestion, i int) QuizQuestion {
	if len(q.Options) <= MinQuizOptions || i < 0 || i >= len(q.Options) {
		return q
	}
	options := make([]string, 0, len(q.Options)-1)
	options = append(options, q.Options[:i]...)
	options = append(options, q.Options[i+1:]...)
	q.Options = options

	last := len(options) - 1
	switch {
	case q.CorrectIndex == i:
		if i > last {
			q.CorrectIndex = last
		}
	case q.CorrectIndex > i:
		q.CorrectIndex--
	case q.CorrectIndex > last:
		q.CorrectIndex = last
	}
	return q
}

// QuizAttempt is the immutable record of one submission. Answers align
// positionally with the question list as it stood at attempt time.
type QuizAttempt struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	Answers     []int     `json:"answers"`
	AttemptedAt time.Time `json:"attemptedAt"`
}
