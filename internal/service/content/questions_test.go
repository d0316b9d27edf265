package content_test

import (
	"EasyToLearn/internal/app_errors"
	"EasyToLearn/internal/service/content"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionBankIsManagerOnly(t *testing.T) {
	repo, sessions := newRepo(t, client())

	_, err := repo.AddQuizQuestion(content.NewQuizQuestion{
		Question:     "2+2?",
		Options:      []string{"3", "4"},
		CorrectIndex: 1,
	})
	assert.ErrorIs(t, err, app_errors.ErrForbidden)

	sessions.user = instructor()
	id, err := repo.AddQuizQuestion(content.NewQuizQuestion{
		Question:     "2+2?",
		Options:      []string{"3", "4"},
		CorrectIndex: 1,
	})
	require.NoError(t, err)

	sessions.user = client()
	q := "edited"
	assert.False(t, repo.UpdateQuizQuestion(id, content.QuizQuestionPatch{Question: &q}))
	assert.False(t, repo.DeleteQuizQuestion(id))

	sessions.user = admin()
	assert.True(t, repo.UpdateQuizQuestion(id, content.QuizQuestionPatch{Question: &q}))
	assert.True(t, repo.DeleteQuizQuestion(id))
	assert.Empty(t, repo.QuizQuestions())
}

func TestAddQuizQuestionValidation(t *testing.T) {
	repo, _ := newRepo(t, admin())

	_, err := repo.AddQuizQuestion(content.NewQuizQuestion{
		Question:     "lonely",
		Options:      []string{"only"},
		CorrectIndex: 0,
	})
	assert.ErrorIs(t, err, app_errors.ErrBadOptionCount)

	_, err = repo.AddQuizQuestion(content.NewQuizQuestion{
		Question:     "crowded",
		Options:      []string{"a", "b", "c", "d", "e", "f", "g"},
		CorrectIndex: 0,
	})
	assert.ErrorIs(t, err, app_errors.ErrBadOptionCount)

	_, err = repo.AddQuizQuestion(content.NewQuizQuestion{
		Question:     "off by one",
		Options:      []string{"a", "b"},
		CorrectIndex: 2,
	})
	assert.ErrorIs(t, err, app_errors.ErrBadCorrectIndex)
}

func TestUpdateQuizQuestionRejectsInvalidPatch(t *testing.T) {
	repo, _ := newRepo(t, admin())
	id, err := repo.AddQuizQuestion(content.NewQuizQuestion{
		Question:     "q",
		Options:      []string{"a", "b", "c"},
		CorrectIndex: 2,
	})
	require.NoError(t, err)

	// dropping to two options strands the correct index
	assert.False(t, repo.UpdateQuizQuestion(id, content.QuizQuestionPatch{Options: []string{"a", "b"}}))

	questions := repo.QuizQuestions()
	require.Len(t, questions, 1)
	assert.Equal(t, []string{"a", "b", "c"}, questions[0].Options)
}
