package schedule

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingTask struct {
	mu    sync.Mutex
	calls int
	order *[]string
	name  string
}

func (c *countingTask) Refresh(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.order != nil {
		*c.order = append(*c.order, c.name)
	}
}

func (c *countingTask) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func fixedScheduler(now time.Time) *Scheduler {
	s := New()
	s.now = func() time.Time { return now }
	return s
}

func TestEvery_DueImmediately(t *testing.T) {
	start := time.Date(2026, 10, 19, 13, 5, 0, 0, time.UTC)
	s := fixedScheduler(start)
	task := &countingTask{}

	h := s.Every("clock", time.Second, task)
	require.NotEmpty(t, h.ID())
	assert.Equal(t, "clock", h.Name())
	assert.True(t, h.Active())

	ran := s.RunPending(context.Background(), start)
	assert.Equal(t, 1, ran)
	assert.Equal(t, 1, task.Calls())
	assert.Equal(t, 1, s.Runs(h))

	next, ok := s.NextRun(h)
	require.True(t, ok)
	assert.WithinDuration(t, start.Add(time.Second), next, 100*time.Millisecond)
}

func TestRunPending_RespectsIntervals(t *testing.T) {
	start := time.Date(2026, 10, 19, 13, 5, 0, 0, time.UTC)
	s := fixedScheduler(start)
	fast := &countingTask{}
	slow := &countingTask{}

	s.Every("fast", 200*time.Millisecond, fast)
	s.Every("slow", 30*time.Minute, slow)

	ctx := context.Background()
	s.RunPending(ctx, start)
	for i := 1; i <= 10; i++ {
		s.RunPending(ctx, start.Add(time.Duration(i)*time.Second))
	}

	assert.Equal(t, 11, fast.Calls())
	assert.Equal(t, 1, slow.Calls())

	s.RunPending(ctx, start.Add(31*time.Minute))
	assert.Equal(t, 2, slow.Calls())
}

func TestRunPending_OrderedByDueTime(t *testing.T) {
	start := time.Date(2026, 10, 19, 13, 5, 0, 0, time.UTC)
	s := fixedScheduler(start)
	var order []string

	s.Every("weather", time.Minute, &countingTask{order: &order, name: "weather"})
	s.Every("clock", time.Second, &countingTask{order: &order, name: "clock"})
	s.Every("news", time.Hour, &countingTask{order: &order, name: "news"})

	s.RunPending(context.Background(), start)
	assert.Equal(t, []string{"clock", "news", "weather"}, order)
}

func TestHandle_Cancel(t *testing.T) {
	start := time.Date(2026, 10, 19, 13, 5, 0, 0, time.UTC)
	s := fixedScheduler(start)
	task := &countingTask{}

	h := s.Every("news", time.Second, task)
	s.RunPending(context.Background(), start)

	h.Cancel()
	h.Cancel()
	assert.False(t, h.Active())
	assert.Equal(t, 0, s.Len())

	_, ok := s.NextRun(h)
	assert.False(t, ok)

	s.RunPending(context.Background(), start.Add(time.Hour))
	assert.Equal(t, 1, task.Calls())
}

func TestRunPending_CancelFromAnotherTask(t *testing.T) {
	start := time.Date(2026, 10, 19, 13, 5, 0, 0, time.UTC)
	s := fixedScheduler(start)
	victim := &countingTask{}

	var h *Handle
	s.Every("a-killer", time.Second, TaskFunc(func(ctx context.Context) { h.Cancel() }))
	h = s.Every("b-victim", time.Second, victim)

	ran := s.RunPending(context.Background(), start)
	assert.Equal(t, 1, ran)
	assert.Equal(t, 0, victim.Calls())
}

func TestRunPending_PanicIsRecoveredAndRearmed(t *testing.T) {
	start := time.Date(2026, 10, 19, 13, 5, 0, 0, time.UTC)
	s := fixedScheduler(start)
	calls := 0

	h := s.Every("flaky", time.Second, TaskFunc(func(ctx context.Context) {
		calls++
		panic("provider exploded")
	}))

	require.NotPanics(t, func() { s.RunPending(context.Background(), start) })
	assert.True(t, h.Active())

	s.RunPending(context.Background(), start.Add(2*time.Second))
	assert.Equal(t, 2, calls)
}

func TestRunPending_StopsOnCancelledContext(t *testing.T) {
	start := time.Date(2026, 10, 19, 13, 5, 0, 0, time.UTC)
	s := fixedScheduler(start)
	task := &countingTask{}
	s.Every("clock", time.Second, task)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, 0, s.RunPending(ctx, start))
	assert.Equal(t, 0, task.Calls())
}

func TestRun_LoopAndStop(t *testing.T) {
	s := New()
	task := &countingTask{}
	s.Every("tick", 10*time.Millisecond, task)

	done := make(chan struct{})
	go func() {
		s.Run(context.Background())
		close(done)
	}()

	assert.Eventually(t, func() bool { return task.Calls() >= 3 }, 2*time.Second, 5*time.Millisecond)

	s.Stop()
	s.Stop()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
	assert.Equal(t, 0, s.Len())
}

func TestRun_ContextCancel(t *testing.T) {
	s := New()
	s.Every("slow", time.Hour, &countingTask{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after context cancel")
	}
}

func TestRun_WakesOnRegistration(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	task := &countingTask{}
	time.Sleep(10 * time.Millisecond)
	s.Every("late", time.Hour, task)

	assert.Eventually(t, func() bool { return task.Calls() == 1 }, 2*time.Second, 5*time.Millisecond)
}
