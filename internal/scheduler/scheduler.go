// Package scheduler runs deferred callbacks keyed by an identity, such as a
// game session id. Replacing or cancelling a key guarantees the older
// callback never runs.
package scheduler

import (
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_scheduler.go github.com/KirkDiggler/rpsbot/internal/scheduler Scheduler

// Scheduler defines deferred, cancellable work keyed by identity
type Scheduler interface {
	// Schedule runs fn after delay. An existing task with the same key is replaced.
	Schedule(key string, delay time.Duration, fn func())

	// Cancel stops the task for key. It reports whether a pending task was stopped.
	Cancel(key string) bool

	// Stop cancels every pending task. Later Schedule calls are ignored.
	Stop()
}

type task struct {
	timer *time.Timer
}

// Timers implements Scheduler with time.AfterFunc
type Timers struct {
	mu      sync.Mutex
	tasks   map[string]*task
	stopped bool
}

// New creates an empty scheduler
func New() *Timers {
	return &Timers{
		tasks: make(map[string]*task),
	}
}

// Schedule runs fn after delay unless the key is cancelled or replaced first
func (t *Timers) Schedule(key string, delay time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return
	}

	if old, ok := t.tasks[key]; ok {
		old.timer.Stop()
	}

	tk := &task{}
	tk.timer = time.AfterFunc(delay, func() {
		t.mu.Lock()
		current, ok := t.tasks[key]
		if !ok || current != tk {
			t.mu.Unlock()
			return
		}
		delete(t.tasks, key)
		t.mu.Unlock()

		fn()
	})
	t.tasks[key] = tk
}

// Cancel stops the pending task for key
func (t *Timers) Cancel(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	tk, ok := t.tasks[key]
	if !ok {
		return false
	}
	delete(t.tasks, key)
	tk.timer.Stop()
	return true
}

// Stop cancels all pending tasks
func (t *Timers) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopped = true
	for key, tk := range t.tasks {
		tk.timer.Stop()
		delete(t.tasks, key)
	}
}
