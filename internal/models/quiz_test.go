package models_test

import (
	"EasyToLearn/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func question(correct int, options ...string) models.QuizQuestion {
	return models.QuizQuestion{ID: "q", Question: "?", Options: options, CorrectIndex: correct}
}

func TestRemoveOptionBeforeCorrectShiftsLeft(t *testing.T) {
	q := models.RemoveOption(question(2, "a", "b", "c", "d"), 1)
	assert.Equal(t, []string{"a", "c", "d"}, q.Options)
	assert.Equal(t, 1, q.CorrectIndex)
}

func TestRemoveOptionAfterCorrectKeepsIndex(t *testing.T) {
	q := models.RemoveOption(question(2, "a", "b", "c", "d"), 3)
	assert.Equal(t, []string{"a", "b", "c"}, q.Options)
	assert.Equal(t, 2, q.CorrectIndex)
}

func TestRemoveCorrectOptionClamps(t *testing.T) {
	q := models.RemoveOption(question(3, "a", "b", "c", "d"), 3)
	assert.Equal(t, []string{"a", "b", "c"}, q.Options)
	assert.Equal(t, 2, q.CorrectIndex)

	q = models.RemoveOption(question(1, "a", "b", "c"), 1)
	assert.Equal(t, []string{"a", "c"}, q.Options)
	assert.Equal(t, 1, q.CorrectIndex)
}

func TestRemoveOptionRespectsMinimum(t *testing.T) {
	q := models.RemoveOption(question(0, "a", "b"), 0)
	assert.Equal(t, []string{"a", "b"}, q.Options)
	assert.Equal(t, 0, q.CorrectIndex)
}

func TestRemoveOptionOutOfRange(t *testing.T) {
	q := models.RemoveOption(question(0, "a", "b", "c"), 5)
	assert.Equal(t, []string{"a", "b", "c"}, q.Options)
}
