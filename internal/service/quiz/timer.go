package quiz

import (
	"sync"
	"time"
)

// timer is the quiz elapsed counter: a periodic tick that must be stopped
// when the quiz is torn down or reset so no task outlives the session.
type timer struct {
	interval time.Duration

	mu      sync.Mutex
	seconds int
	stop    chan struct{}
}

func newTimer(interval time.Duration) *timer {
	if interval <= 0 {
		interval = time.Second
	}
	return &timer{interval: interval}
}

// Start resets the counter to zero and begins ticking. A running timer is
// stopped first.
func (t *timer) Start() {
	t.Stop()
	t.mu.Lock()
	t.seconds = 0
	t.stop = make(chan struct{})
	stop := t.stop
	t.mu.Unlock()

	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				t.mu.Lock()
				t.seconds++
				t.mu.Unlock()
			case <-stop:
				return
			}
		}
	}()
}

// Stop cancels the tick. Safe to call repeatedly or before Start.
func (t *timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

func (t *timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}

func (t *timer) Seconds() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.seconds
}
