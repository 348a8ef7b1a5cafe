package schedule

import (
	"context"
	"log"
	"runtime/debug"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Task is anything with a refresh operation
type Task interface {
	Refresh(ctx context.Context)
}

// TaskFunc adapts a function to Task
type TaskFunc func(ctx context.Context)

// Refresh calls f(ctx)
func (f TaskFunc) Refresh(ctx context.Context) {
	f(ctx)
}

type entry struct {
	id       string
	name     string
	interval time.Duration
	task     Task
	next     time.Time
	runs     int
}

// Scheduler owns every periodic task of the dashboard
type Scheduler struct {
	mu      sync.Mutex
	entries map[string]*entry
	wake    chan struct{}
	stop    chan struct{}
	stopped bool
	now     func() time.Time
}

// New creates an empty scheduler using the wall clock
func New() *Scheduler {
	return &Scheduler{
		entries: make(map[string]*entry),
		wake:    make(chan struct{}, 1),
		stop:    make(chan struct{}),
		now:     time.Now,
	}
}

// Handle identifies a registered task
type Handle struct {
	id   string
	name string
	s    *Scheduler
}

// ID returns the unique task id
func (h *Handle) ID() string {
	return h.id
}

// Name returns the name given at registration
func (h *Handle) Name() string {
	return h.name
}

// Cancel withdraws the task. A run already in progress completes, but the task
// is not re-armed. Cancel is idempotent.
func (h *Handle) Cancel() {
	h.s.mu.Lock()
	delete(h.s.entries, h.id)
	h.s.mu.Unlock()
	h.s.signal()
}

// Active reports whether the task is still registered
func (h *Handle) Active() bool {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	_, ok := h.s.entries[h.id]
	return ok
}

// Every registers task to run now and then every interval after each run finishes
func (s *Scheduler) Every(name string, interval time.Duration, task Task) *Handle {
	e := &entry{
		id:       uuid.NewString(),
		name:     name,
		interval: interval,
		task:     task,
		next:     s.now(),
	}

	s.mu.Lock()
	s.entries[e.id] = e
	s.mu.Unlock()
	s.signal()

	return &Handle{id: e.id, name: name, s: s}
}

// Len returns the number of registered tasks
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Runs returns how many times the task behind h has run
func (s *Scheduler) Runs(h *Handle) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[h.id]; ok {
		return e.runs
	}
	return 0
}

// NextRun returns when the task behind h is due, or false once cancelled
func (s *Scheduler) NextRun(h *Handle) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[h.id]; ok {
		return e.next, true
	}
	return time.Time{}, false
}

// RunPending runs every task due at now, earliest first, one at a time. Each task
// is re-armed interval after it finished. It returns how many tasks ran.
func (s *Scheduler) RunPending(ctx context.Context, now time.Time) int {
	due := s.dueAt(now)
	ran := 0
	for _, e := range due {
		if ctx.Err() != nil {
			break
		}
		// a task cancelled by an earlier one in this batch is skipped
		if !s.registered(e.id) {
			continue
		}
		start := time.Now()
		s.safeRun(ctx, e)
		finished := now.Add(time.Since(start))
		ran++

		s.mu.Lock()
		if current, ok := s.entries[e.id]; ok {
			current.runs++
			current.next = finished.Add(current.interval)
		}
		s.mu.Unlock()
	}
	return ran
}

func (s *Scheduler) dueAt(now time.Time) []*entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var due []*entry
	for _, e := range s.entries {
		if !e.next.After(now) {
			due = append(due, e)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].next.Equal(due[j].next) {
			return due[i].name < due[j].name
		}
		return due[i].next.Before(due[j].next)
	})
	return due
}

func (s *Scheduler) registered(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[id]
	return ok
}

// safeRun recovers a panicking task so the loop and its re-arming survive
func (s *Scheduler) safeRun(ctx context.Context, e *entry) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("schedule: task %s panicked: %v\n%s", e.name, r, debug.Stack())
		}
	}()
	e.task.Refresh(ctx)
}

// nextDue returns the earliest due time, or false when nothing is registered
func (s *Scheduler) nextDue() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var next time.Time
	found := false
	for _, e := range s.entries {
		if !found || e.next.Before(next) {
			next = e.next
			found = true
		}
	}
	return next, found
}

// Run drives the scheduler until ctx is cancelled or Stop is called
func (s *Scheduler) Run(ctx context.Context) {
	timer := time.NewTimer(time.Hour)
	defer timer.Stop()

	for {
		wait := time.Hour
		if next, ok := s.nextDue(); ok {
			wait = next.Sub(s.now())
		}

		if wait <= 0 {
			s.RunPending(ctx, s.now())
			if ctx.Err() != nil {
				return
			}
			select {
			case <-s.stop:
				return
			default:
			}
			continue
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(wait)

		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case <-s.wake:
		case <-timer.C:
		}
	}
}

// Stop cancels every task and makes Run return
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	s.entries = make(map[string]*entry)
	close(s.stop)
}

func (s *Scheduler) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}
