package content_test

import (
	"EasyToLearn/internal/app_errors"
	"EasyToLearn/internal/service/content"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedQuestions(t *testing.T, repo *content.Repository) {
	t.Helper()
	_, err := repo.AddQuizQuestion(content.NewQuizQuestion{
		Question:     "first",
		Options:      []string{"a", "b"},
		CorrectIndex: 0,
	})
	require.NoError(t, err)
	_, err = repo.AddQuizQuestion(content.NewQuizQuestion{
		Question:     "second",
		Options:      []string{"a", "b", "c"},
		CorrectIndex: 2,
	})
	require.NoError(t, err)
}

func TestRecordAttemptScoresAgainstBank(t *testing.T) {
	repo, sessions := newRepo(t, admin())
	seedQuestions(t, repo)

	sessions.user = client()
	attempt, err := repo.RecordAttempt([]int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 1, attempt.Score)
	assert.Equal(t, 2, attempt.Total)
	assert.Equal(t, "user-1", attempt.UserID)
	assert.Equal(t, []int{0, 1}, attempt.Answers)
}

func TestRecordAttemptRequiresUser(t *testing.T) {
	repo, sessions := newRepo(t, admin())
	seedQuestions(t, repo)

	sessions.user = nil
	_, err := repo.RecordAttempt([]int{0, 2})
	assert.ErrorIs(t, err, app_errors.ErrNotAuthenticated)
}

func TestAttemptsByUserNewestFirst(t *testing.T) {
	repo, sessions := newRepo(t, admin())
	seedQuestions(t, repo)

	sessions.user = client()
	first, err := repo.RecordAttempt([]int{0, 2})
	require.NoError(t, err)
	second, err := repo.RecordAttempt([]int{1, 1})
	require.NoError(t, err)

	sessions.user = instructor()
	_, err = repo.RecordAttempt([]int{0, 0})
	require.NoError(t, err)

	attempts := repo.AttemptsByUser("user-1")
	require.Len(t, attempts, 2)
	assert.Equal(t, second.ID, attempts[0].ID)
	assert.Equal(t, first.ID, attempts[1].ID)
}

func TestShortAnswerSliceCountsMissingAsWrong(t *testing.T) {
	repo, sessions := newRepo(t, admin())
	seedQuestions(t, repo)

	sessions.user = client()
	attempt, err := repo.RecordAttempt([]int{0})
	require.NoError(t, err)
	assert.Equal(t, 1, attempt.Score)
	assert.Equal(t, 2, attempt.Total)
}
