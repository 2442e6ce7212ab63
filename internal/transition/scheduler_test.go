package transition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	testingclock "k8s.io/utils/clock/testing"
)

func TestSchedulerRunsInOrderWhenDue(t *testing.T) {
	clk := testingclock.NewFakeClock(time.Unix(0, 0))
	s := NewScheduler(clk)
	var order []string

	s.After(20*time.Millisecond, func() { order = append(order, "b") })
	s.After(10*time.Millisecond, func() { order = append(order, "a") })

	assert.Zero(t, s.RunDue())
	clk.Step(15 * time.Millisecond)
	assert.Equal(t, 1, s.RunDue())
	clk.Step(15 * time.Millisecond)
	assert.Equal(t, 1, s.RunDue())
	assert.Equal(t, []string{"a", "b"}, order)
	assert.Zero(t, s.Len())
}

func TestSchedulerCancel(t *testing.T) {
	clk := testingclock.NewFakeClock(time.Unix(0, 0))
	s := NewScheduler(clk)
	ran := false

	task := s.After(time.Millisecond, func() { ran = true })
	assert.True(t, task.Cancel())
	assert.False(t, task.Cancel())
	assert.False(t, task.Pending())

	clk.Step(time.Second)
	assert.Zero(t, s.RunDue())
	assert.False(t, ran)
}

func TestSchedulerCallbackMaySchedule(t *testing.T) {
	clk := testingclock.NewFakeClock(time.Unix(0, 0))
	s := NewScheduler(clk)
	count := 0

	s.After(0, func() {
		count++
		s.After(time.Millisecond, func() { count++ })
	})

	assert.Equal(t, 1, s.RunDue())
	assert.Equal(t, 1, s.Len())
	clk.Step(time.Millisecond)
	assert.Equal(t, 1, s.RunDue())
	assert.Equal(t, 2, count)
}
