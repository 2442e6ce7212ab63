package transition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"
)

// recordingView counts the calls a Title makes.
type recordingView struct {
	slides []int
	hidden int
	shown  int
}

func (v *recordingView) SetSlide(index int) { v.slides = append(v.slides, index) }
func (v *recordingView) ApplyHidden()       { v.hidden++ }
func (v *recordingView) ApplyShown()        { v.shown++ }

func newTestMachine(t *testing.T, slides int) (*Machine, *recordingView, *testingclock.FakeClock) {
	t.Helper()
	clk := testingclock.NewFakeClock(time.Unix(0, 0))
	view := &recordingView{}
	m := NewMachine(Options{
		Slides: slides,
		Tuning: DefaultTuning(),
		Clock:  clk,
	}, view)
	return m, view, clk
}

// runUntilStable steps the machine until it reports Stable.
func runUntilStable(t *testing.T, m *Machine, clk *testingclock.FakeClock) Frame {
	t.Helper()
	for i := 0; i < 2000; i++ {
		clk.Step(16 * time.Millisecond)
		f := m.Step()
		if f.Phase == Stable {
			return f
		}
	}
	require.FailNow(t, "machine never settled")
	return Frame{}
}

func TestMachineStartsStableOnFirstSlide(t *testing.T) {
	m, _, _ := newTestMachine(t, 4)

	f := m.Step()

	assert.Equal(t, Stable, f.Phase)
	assert.Equal(t, Frozen{Current: 0, Next: 1}, f.Source)
	assert.Equal(t, IndexPair{Current: 0, Next: 1}, f.Pair)
	assert.Equal(t, TitleShown, m.Title().State())
}

func TestScrollLeavesStable(t *testing.T) {
	m, view, _ := newTestMachine(t, 4)
	m.Step()

	m.HandleScroll(300)
	f := m.Step()

	assert.Equal(t, Moving, f.Phase)
	assert.IsType(t, Live{}, f.Source)
	assert.Equal(t, TitleHiding, m.Title().State())
	assert.Equal(t, 1, view.hidden)
	assert.Greater(t, f.Intensity, 0.0)
	assert.Greater(t, f.Pair.Blend, 0.0)
}

func TestSnapScenario(t *testing.T) {
	m, view, clk := newTestMachine(t, 5)

	// Hide the title so the snap can show it again.
	require.True(t, m.Title().Hide())
	clk.Step(DefaultTitleDuration)
	m.sched.RunDue()
	require.Equal(t, TitleHidden, m.Title().State())

	m.phase = Moving
	m.motion.Position = 2.4
	m.motion.TargetPosition = 2.4

	f := m.Step()

	assert.Equal(t, 2.0, m.motion.TargetPosition)
	assert.Equal(t, 2.0, m.motion.Position)
	assert.Equal(t, IndexPair{Current: 2, Next: 3}, m.Frozen())
	assert.Equal(t, 2, m.ActiveIndex())
	assert.Equal(t, []int{2}, view.slides)
	assert.Equal(t, TitleShowing, m.Title().State())
	assert.Equal(t, Stable, f.Phase)
	assert.Equal(t, Frozen{Current: 2, Next: 3}, f.Source)
	assert.Zero(t, f.Pair.Blend)
}

func TestSnapThenSettle(t *testing.T) {
	m, view, clk := newTestMachine(t, 4)
	m.Step()

	m.HandleScroll(1400)
	settling := false
	var f Frame
	for i := 0; i < 2000; i++ {
		clk.Step(16 * time.Millisecond)
		f = m.Step()
		if f.Phase == Stable {
			break
		}
		if f.Phase == Settling {
			settling = true
			assert.IsType(t, Live{}, f.Source)
		}
	}

	assert.True(t, settling, "expected a settling phase before stability")
	require.Equal(t, Stable, f.Phase)
	assert.Equal(t, 1.0, m.motion.Position)
	assert.Equal(t, 1.0, m.motion.TargetPosition)
	assert.Equal(t, IndexPair{Current: 1, Next: 2}, f.Pair)
	assert.Equal(t, 1, m.ActiveIndex())
	assert.Equal(t, []int{1}, view.slides)
}

func TestReverseScrollWraps(t *testing.T) {
	m, _, clk := newTestMachine(t, 4)
	m.Step()

	m.HandleScroll(-900)
	f := runUntilStable(t, m, clk)

	assert.Equal(t, IndexPair{Current: 3, Next: 0}, f.Pair)
	assert.Equal(t, -1.0, m.motion.Position)
	assert.Equal(t, 3, m.ActiveIndex())
}

func TestStableIsIdempotent(t *testing.T) {
	m, _, clk := newTestMachine(t, 4)
	m.Step()
	m.HandleScroll(2100)
	runUntilStable(t, m, clk)

	pos, target, pair := m.motion.Position, m.motion.TargetPosition, m.Frozen()
	for i := 0; i < 100; i++ {
		clk.Step(16 * time.Millisecond)
		f := m.Step()
		assert.Equal(t, Stable, f.Phase)
		assert.Zero(t, f.Pair.Blend)
	}
	assert.Equal(t, pos, m.motion.Position)
	assert.Equal(t, target, m.motion.TargetPosition)
	assert.Equal(t, pair, m.Frozen())
}

func TestInputDuringSettlingRestartsMotion(t *testing.T) {
	m, _, clk := newTestMachine(t, 4)
	m.Step()
	m.HandleScroll(1000)
	for i := 0; i < 2000 && m.Phase() != Settling; i++ {
		clk.Step(16 * time.Millisecond)
		m.Step()
	}
	require.Equal(t, Settling, m.Phase())

	m.HandleScroll(10)

	assert.Equal(t, Moving, m.Phase())
}

func TestCloseCancelsPendingTitle(t *testing.T) {
	m, _, clk := newTestMachine(t, 4)
	m.HandleScroll(100)
	require.Equal(t, TitleHiding, m.Title().State())

	m.Close()
	clk.Step(time.Second)
	m.sched.RunDue()

	assert.Equal(t, TitleHidden, m.Title().State())
	assert.Zero(t, m.sched.Len())
}
