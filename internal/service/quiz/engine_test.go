package quiz_test

import (
	"EasyToLearn/internal/app_errors"
	"EasyToLearn/internal/models"
	"EasyToLearn/internal/service/quiz"
	"EasyToLearn/pkg/logger"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	attempts [][]int
	err      error
}

func (f *fakeRecorder) RecordAttempt(answers []int) (*models.QuizAttempt, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.attempts = append(f.attempts, append([]int(nil), answers...))
	score := 0
	for i, a := range answers {
		if a == bank()[i].CorrectIndex {
			score++
		}
	}
	return &models.QuizAttempt{ID: "a1", Score: score, Total: len(answers)}, nil
}

func bank() []models.QuizQuestion {
	return []models.QuizQuestion{
		{ID: "q1", Question: "first", Options: []string{"a", "b"}, CorrectIndex: 0},
		{ID: "q2", Question: "second", Options: []string{"a", "b", "c"}, CorrectIndex: 2},
	}
}

func newEngine(t *testing.T, rec quiz.AttemptRecorder, questions []models.QuizQuestion) *quiz.Engine {
	t.Helper()
	e := quiz.NewEngine(logger.Discard(), rec, questions)
	t.Cleanup(e.Close)
	return e
}

func TestEngineStartsUnanswered(t *testing.T) {
	e := newEngine(t, nil, bank())

	assert.Equal(t, quiz.InProgress, e.State())
	assert.Equal(t, 0, e.Index())
	assert.Equal(t, []int{quiz.Unanswered, quiz.Unanswered}, e.Answers())

	q, ok := e.CurrentQuestion()
	require.True(t, ok)
	assert.Equal(t, "q1", q.ID)
}

func TestSelectAnswerLastWriteWins(t *testing.T) {
	e := newEngine(t, nil, bank())

	e.SelectAnswer(0)
	e.SelectAnswer(1)
	assert.Equal(t, 1, e.Answers()[0])

	// out-of-range picks are ignored
	e.SelectAnswer(5)
	e.SelectAnswer(-1)
	assert.Equal(t, 1, e.Answers()[0])
}

func TestNavigationBounds(t *testing.T) {
	e := newEngine(t, nil, bank())

	e.Previous()
	assert.Equal(t, 0, e.Index())

	e.Next()
	assert.Equal(t, 1, e.Index())
	assert.True(t, e.IsLastQuestion())

	e.Previous()
	assert.Equal(t, 0, e.Index())
}

func TestNextOnLastQuestionSubmits(t *testing.T) {
	rec := &fakeRecorder{}
	e := newEngine(t, rec, bank())

	e.SelectAnswer(0)
	e.Next()
	e.SelectAnswer(1)
	e.Next()

	assert.Equal(t, quiz.Submitted, e.State())
	require.Len(t, rec.attempts, 1)
	assert.Equal(t, []int{0, 1}, rec.attempts[0])
}

func TestSubmitScoring(t *testing.T) {
	e := newEngine(t, &fakeRecorder{}, bank())

	e.SelectAnswer(0)
	e.Next()
	e.SelectAnswer(1)
	e.Submit()

	correct, total := e.Score()
	assert.Equal(t, 1, correct)
	assert.Equal(t, 2, total)
	assert.Equal(t, 50, e.Percentage())
	assert.Equal(t, "Nice effort! Keep practicing to improve further.", e.ResultMessage())

	// a second submit changes nothing
	e.Submit()
	correct, total = e.Score()
	assert.Equal(t, 1, correct)
	assert.Equal(t, 2, total)
}

func TestSubmitScoresLocallyWhenRecordingFails(t *testing.T) {
	rec := &fakeRecorder{err: app_errors.ErrNotAuthenticated}
	e := newEngine(t, rec, bank())

	e.SelectAnswer(0)
	e.Next()
	e.SelectAnswer(2)
	e.Submit()

	correct, total := e.Score()
	assert.Equal(t, 2, correct)
	assert.Equal(t, 2, total)
	assert.Equal(t, 100, e.Percentage())
	assert.Empty(t, rec.attempts)
}

func TestEmptyQuizSubmitIsNoOp(t *testing.T) {
	rec := &fakeRecorder{}
	e := newEngine(t, rec, nil)

	_, ok := e.CurrentQuestion()
	assert.False(t, ok)

	e.Submit()
	e.Next()

	assert.Equal(t, quiz.InProgress, e.State())
	assert.Empty(t, rec.attempts)
	assert.Equal(t, 0, e.Percentage())
}

func TestEmptyQuizNeverTicks(t *testing.T) {
	e := quiz.NewEngine(logger.Discard(), nil, nil, quiz.WithTickInterval(time.Millisecond))
	t.Cleanup(e.Close)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 0, e.ElapsedSeconds())
}

func TestSubmitFreezesTime(t *testing.T) {
	e := quiz.NewEngine(logger.Discard(), nil, bank(), quiz.WithTickInterval(time.Millisecond))
	t.Cleanup(e.Close)

	assert.Eventually(t, func() bool {
		return e.ElapsedSeconds() > 0
	}, time.Second, time.Millisecond)

	e.Submit()
	frozen := e.TimeTakenSeconds()
	assert.Greater(t, frozen, 0)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, frozen, e.TimeTakenSeconds())
}

func TestRetryResetsEverything(t *testing.T) {
	e := newEngine(t, &fakeRecorder{}, bank())

	e.SelectAnswer(0)
	e.Next()
	e.SelectAnswer(2)
	e.Submit()
	require.Equal(t, quiz.Submitted, e.State())

	e.Retry()

	assert.Equal(t, quiz.InProgress, e.State())
	assert.Equal(t, 0, e.Index())
	assert.Equal(t, []int{quiz.Unanswered, quiz.Unanswered}, e.Answers())
	correct, _ := e.Score()
	assert.Equal(t, 0, correct)
	assert.Equal(t, 0, e.TimeTakenSeconds())
}

func TestToggleReview(t *testing.T) {
	e := newEngine(t, nil, bank())

	// no review before submission
	e.ToggleReview()
	assert.Equal(t, quiz.InProgress, e.State())

	e.Next()
	e.Next()
	require.Equal(t, quiz.Submitted, e.State())

	e.ToggleReview()
	assert.Equal(t, quiz.Reviewing, e.State())
	e.ToggleReview()
	assert.Equal(t, quiz.Submitted, e.State())
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "0:00", quiz.FormatSeconds(0))
	assert.Equal(t, "0:09", quiz.FormatSeconds(9))
	assert.Equal(t, "1:05", quiz.FormatSeconds(65))
	assert.Equal(t, "10:00", quiz.FormatSeconds(600))
}
