package transition

import (
	"time"

	"k8s.io/utils/clock"
)

// Task is a deferred callback owned by a Scheduler.
type Task struct {
	due       time.Time
	fn        func()
	cancelled bool
	done      bool
}

// Cancel prevents a pending task from running. It reports whether the task
// was still pending.
func (t *Task) Cancel() bool {
	if t.done || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}

// Pending reports whether the task has neither run nor been cancelled.
func (t *Task) Pending() bool {
	return !t.done && !t.cancelled
}

// Scheduler runs deferred callbacks on the frame loop. Tasks never run on
// their own goroutine: RunDue is polled once per frame, so callbacks see the
// same single-threaded state as the rest of the frame.
type Scheduler struct {
	clock clock.PassiveClock
	tasks []*Task
}

// NewScheduler creates a Scheduler reading time from c.
func NewScheduler(c clock.PassiveClock) *Scheduler {
	return &Scheduler{clock: c}
}

// After schedules fn to run on the first RunDue at or after now+d.
func (s *Scheduler) After(d time.Duration, fn func()) *Task {
	t := &Task{due: s.clock.Now().Add(d), fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// RunDue runs every task whose deadline has passed, in scheduling order, and
// returns how many ran.
func (s *Scheduler) RunDue() int {
	if len(s.tasks) == 0 {
		return 0
	}
	now := s.clock.Now()
	ran := 0
	// Callbacks may schedule more work; those tasks land in s.tasks.
	pending := s.tasks
	s.tasks = nil
	var kept []*Task
	for _, t := range pending {
		switch {
		case t.cancelled:
		case !now.Before(t.due):
			t.done = true
			t.fn()
			ran++
		default:
			kept = append(kept, t)
		}
	}
	s.tasks = append(kept, s.tasks...)
	return ran
}

// Len returns the number of tasks still waiting.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.tasks {
		if t.Pending() {
			n++
		}
	}
	return n
}

// Stop cancels every pending task.
func (s *Scheduler) Stop() {
	for _, t := range s.tasks {
		t.Cancel()
	}
	s.tasks = nil
}
