package transition

import (
	"io"
	"log/slog"
	"time"

	"k8s.io/utils/clock"
)

// Phase is the stability state of the view.
type Phase int

const (
	// Stable: locked on a single slide, no blend, nothing pending.
	Stable Phase = iota
	// Moving: input has arrived since the last snap.
	Moving
	// Settling: the position is easing onto a snapped integer.
	Settling
)

func (p Phase) String() string {
	switch p {
	case Stable:
		return "stable"
	case Moving:
		return "moving"
	case Settling:
		return "settling"
	}
	return "unknown"
}

// RenderSource selects where the texture pair of a frame comes from.
type RenderSource interface {
	pair(n int) IndexPair
}

// Live resolves the pair from the smoothed position every frame.
type Live struct {
	Position float64
}

func (l Live) pair(n int) IndexPair { return Resolve(l.Position, n) }

// Frozen renders a snapped pair with no blend.
type Frozen struct {
	Current int
	Next    int
}

func (f Frozen) pair(int) IndexPair {
	return IndexPair{Current: f.Current, Next: f.Next}
}

// Frame is everything the renderer reads for one tick.
type Frame struct {
	Intensity float64
	Position  float64
	Phase     Phase
	Source    RenderSource
	// Pair.Blend is forced to 0 while the source is Frozen.
	Pair IndexPair
}

// Options configures a Machine.
type Options struct {
	Slides        int
	Tuning        Tuning
	TitleDuration time.Duration
	Clock         clock.PassiveClock
	Logger        *slog.Logger
}

// Machine owns all scroll, stability and title state. HandleScroll is the
// only entry point for input and Step the only per-frame integrator; both
// must be called from the same goroutine.
type Machine struct {
	slides int
	tuning Tuning
	log    *slog.Logger

	motion *Motion
	sched  *Scheduler
	title  *Title

	phase  Phase
	frozen IndexPair
	active int
}

// NewMachine creates a Machine resting on slide 0 with the title shown.
func NewMachine(opts Options, view TitleView) *Machine {
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.TitleDuration <= 0 {
		opts.TitleDuration = DefaultTitleDuration
	}

	sched := NewScheduler(opts.Clock)
	return &Machine{
		slides: opts.Slides,
		tuning: opts.Tuning,
		log:    opts.Logger,
		motion: NewMotion(opts.Tuning),
		sched:  sched,
		title:  NewTitle(view, sched, opts.TitleDuration),
		phase:  Stable,
		frozen: Resolve(0, opts.Slides),
	}
}

// HandleScroll applies one raw scroll sample. Any input leaves the stable
// and settling states and asks the title to hide.
func (m *Machine) HandleScroll(delta float64) {
	m.phase = Moving
	m.title.Hide()
	m.motion.ApplyScrollDelta(delta)
}

// Step advances one frame: pending title completions, motion smoothing,
// snap detection, then the render source for the frame.
func (m *Machine) Step() Frame {
	m.sched.RunDue()
	m.motion.Advance()
	m.settle()

	var src RenderSource
	if m.phase == Stable {
		src = Frozen{Current: m.frozen.Current, Next: m.frozen.Next}
	} else {
		src = Live{Position: m.motion.Position}
	}
	return Frame{
		Intensity: m.motion.Intensity,
		Position:  m.motion.Position,
		Phase:     m.phase,
		Source:    src,
		Pair:      src.pair(m.slides),
	}
}

// settle runs snap and stability detection against this frame's gap.
func (m *Machine) settle() {
	gap := m.motion.Gap()
	if gap >= m.tuning.MovementThreshold {
		return
	}
	if m.phase == Moving {
		m.snap()
	}
	if gap < m.tuning.ConvergenceThreshold && m.phase != Stable {
		rounded := roundHalfUp(m.motion.Position)
		m.motion.Position = rounded
		m.motion.TargetPosition = rounded
		m.phase = Stable
	}
}

func (m *Machine) snap() {
	rounded := roundHalfUp(m.motion.Position)
	m.motion.TargetPosition = rounded
	m.frozen = Resolve(rounded, m.slides)
	m.active = m.frozen.Current
	m.phase = Settling
	m.log.Debug("snap", "slide", m.active, "position", rounded)
	m.title.Show(m.active)
}

// Close cancels any pending title completion.
func (m *Machine) Close() {
	m.title.Cancel()
	m.sched.Stop()
}

// Phase returns the stability state.
func (m *Machine) Phase() Phase { return m.phase }

// ActiveIndex is the slide the title currently describes.
func (m *Machine) ActiveIndex() int { return m.active }

// Frozen returns the last snapped pair.
func (m *Machine) Frozen() IndexPair { return m.frozen }

// Title returns the title controller.
func (m *Machine) Title() *Title { return m.title }
