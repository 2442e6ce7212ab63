package transition

import "time"

// DefaultTitleDuration is how long a title hide or show animation holds the
// lock.
const DefaultTitleDuration = 500 * time.Millisecond

// TitleState is the state of the title overlay.
type TitleState int

const (
	TitleShown TitleState = iota
	TitleHiding
	TitleHidden
	TitleShowing
)

func (s TitleState) String() string {
	switch s {
	case TitleShown:
		return "shown"
	case TitleHiding:
		return "hiding"
	case TitleHidden:
		return "hidden"
	case TitleShowing:
		return "showing"
	}
	return "unknown"
}

// TitleView is the visual surface driven by a Title.
type TitleView interface {
	// SetSlide replaces the displayed title and link with those of a slide.
	SetSlide(index int)
	// ApplyHidden starts the hidden look (offset down, zero opacity).
	ApplyHidden()
	// ApplyShown starts the shown look (no offset, full opacity).
	ApplyShown()
}

// Title serializes hide and show animations of the title overlay. A request
// made while an animation is in flight is dropped, not queued.
type Title struct {
	view     TitleView
	sched    *Scheduler
	duration time.Duration
	state    TitleState
	pending  *Task
}

// NewTitle creates a Title in the shown state.
func NewTitle(view TitleView, sched *Scheduler, duration time.Duration) *Title {
	return &Title{
		view:     view,
		sched:    sched,
		duration: duration,
		state:    TitleShown,
	}
}

// State returns the current state.
func (t *Title) State() TitleState { return t.state }

// Animating reports whether a transition holds the lock.
func (t *Title) Animating() bool {
	return t.state == TitleHiding || t.state == TitleShowing
}

// Hide starts the hide animation if the title is fully shown. It reports
// whether an animation started.
func (t *Title) Hide() bool {
	if t.state != TitleShown {
		return false
	}
	t.state = TitleHiding
	t.view.ApplyHidden()
	t.pending = t.sched.After(t.duration, func() {
		t.state = TitleHidden
		t.pending = nil
	})
	return true
}

// Show switches the content to slide index and starts the show animation if
// the title is fully hidden. It reports whether an animation started.
func (t *Title) Show(index int) bool {
	if t.state != TitleHidden {
		return false
	}
	t.view.SetSlide(index)
	t.state = TitleShowing
	t.view.ApplyShown()
	t.pending = t.sched.After(t.duration, func() {
		t.state = TitleShown
		t.pending = nil
	})
	return true
}

// Cancel drops an in-flight completion and settles the title at the end
// state of that animation, so the lock cannot stay held forever.
func (t *Title) Cancel() {
	if t.pending == nil || !t.pending.Cancel() {
		return
	}
	t.pending = nil
	switch t.state {
	case TitleHiding:
		t.state = TitleHidden
	case TitleShowing:
		t.state = TitleShown
	}
}
