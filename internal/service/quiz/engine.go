package quiz

import (
	"EasyToLearn/internal/models"
	"EasyToLearn/pkg/logger"
	"fmt"
	"math"
	"sync"
	"time"
)

// Unanswered marks a question slot the user has not picked an option for.
const Unanswered = -1

type State int

const (
	InProgress State = iota
	Submitted
	Reviewing
)

// AttemptRecorder persists a submission for the signed-in user. Recording
// fails when nobody is signed in; the engine still scores locally.
type AttemptRecorder interface {
	RecordAttempt(answers []int) (*models.QuizAttempt, error)
}

// Engine drives one quiz session over a snapshot of the question bank.
type Engine struct {
	log      logger.Log
	recorder AttemptRecorder

	mu        sync.Mutex
	questions []models.QuizQuestion
	answers   []int
	index     int
	state     State
	score     int
	timeTaken int
	timer     *timer
}

type Option func(*Engine)

// WithTickInterval overrides the one-second elapsed tick, for tests.
func WithTickInterval(d time.Duration) Option {
	return func(e *Engine) {
		e.timer = newTimer(d)
	}
}

// NewEngine snapshots the questions and starts the elapsed timer. An empty
// quiz never starts the timer.
func NewEngine(l logger.Log, recorder AttemptRecorder, questions []models.QuizQuestion, opts ...Option) *Engine {
	e := &Engine{
		log:       l,
		recorder:  recorder,
		questions: append([]models.QuizQuestion(nil), questions...),
		timer:     newTimer(time.Second),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.answers = make([]int, len(e.questions))
	for i := range e.answers {
		e.answers[i] = Unanswered
	}
	if len(e.questions) > 0 {
		e.timer.Start()
	}
	return e
}

// SelectAnswer overwrites the answer slot for the current question. Only
// valid while in progress; re-selection is allowed and the last write wins.
func (e *Engine) SelectAnswer(optionIndex int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != InProgress || len(e.questions) == 0 {
		return
	}
	if optionIndex < 0 || optionIndex >= len(e.questions[e.index].Options) {
		return
	}
	e.answers[e.index] = optionIndex
}

// Next advances to the following question, or submits from the last one.
func (e *Engine) Next() {
	e.mu.Lock()
	if e.state != InProgress || len(e.questions) == 0 {
		e.mu.Unlock()
		return
	}
	if e.index == len(e.questions)-1 {
		e.mu.Unlock()
		e.Submit()
		return
	}
	e.index++
	e.mu.Unlock()
}

// Previous steps back one question, stopping at the first.
func (e *Engine) Previous() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != InProgress || e.index == 0 {
		return
	}
	e.index--
}

// Submit scores the answers, records an attempt when someone is signed in,
// freezes the elapsed time, and moves to Submitted. Submitting an empty quiz
// is a no-op: no attempt, no state change. The recorder scores against the
// question bank as it stands at submission, so if the bank was edited
// mid-session the recorded result wins over the engine's snapshot score.
func (e *Engine) Submit() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != InProgress || len(e.questions) == 0 {
		return
	}

	score := 0
	for i, q := range e.questions {
		if e.answers[i] == q.CorrectIndex {
			score++
		}
	}
	if e.recorder != nil {
		if attempt, err := e.recorder.RecordAttempt(e.answers); err != nil {
			e.log.Info("attempt not recorded", "reason", err.Error())
		} else {
			score = attempt.Score
		}
	}

	e.score = score
	e.timeTaken = e.timer.Seconds()
	e.timer.Stop()
	e.state = Submitted
}

// Retry wipes every answer back to the unanswered sentinel, rewinds to the
// first question, and restarts the timer from zero.
func (e *Engine) Retry() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.answers {
		e.answers[i] = Unanswered
	}
	e.index = 0
	e.score = 0
	e.timeTaken = 0
	e.state = InProgress
	if len(e.questions) > 0 {
		e.timer.Start()
	}
}

// ToggleReview flips between the result summary and the answer review.
func (e *Engine) ToggleReview() {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch e.state {
	case Submitted:
		e.state = Reviewing
	case Reviewing:
		e.state = Submitted
	}
}

// Close stops the elapsed tick. Call on quiz teardown.
func (e *Engine) Close() {
	e.timer.Stop()
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) Index() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.index
}

func (e *Engine) CurrentQuestion() (models.QuizQuestion, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.questions) == 0 {
		return models.QuizQuestion{}, false
	}
	return e.questions[e.index], true
}

func (e *Engine) IsLastQuestion() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.questions) > 0 && e.index == len(e.questions)-1
}

func (e *Engine) Answers() []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]int(nil), e.answers...)
}

// Score returns correct count and total after submission.
func (e *Engine) Score() (correct, total int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.score, len(e.questions)
}

// Percentage is the rounded score share, zero for an empty quiz.
func (e *Engine) Percentage() int {
	correct, total := e.Score()
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

func (e *Engine) ElapsedSeconds() int {
	return e.timer.Seconds()
}

func (e *Engine) TimeTakenSeconds() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timeTaken
}

// ResultMessage mirrors the encouragement tiers shown on the result screen.
func (e *Engine) ResultMessage() string {
	switch percent := e.Percentage(); {
	case percent == 100:
		return "Perfect score! Fantastic job!"
	case percent >= 80:
		return "Great work! You really know your stuff."
	case percent >= 50:
		return "Nice effort! Keep practicing to improve further."
	default:
		return "Keep studying! Review the answers and try again."
	}
}

// FormatSeconds renders a duration as m:ss.
func FormatSeconds(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
