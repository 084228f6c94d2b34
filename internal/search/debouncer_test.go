package search

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinerate/internal/catalog"
)

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

// fakeScheduler records timers and fires them on demand
type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{delay: d, fn: f}
	s.timers = append(s.timers, t)
	return t
}

// elapse fires every timer that was not stopped
func (s *fakeScheduler) elapse() int {
	s.mu.Lock()
	var due []*fakeTimer
	for _, t := range s.timers {
		if !t.stopped {
			t.stopped = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
	return len(due)
}

func (s *fakeScheduler) active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

func TestDebouncerCoalescesKeystrokes(t *testing.T) {
	sched := &fakeScheduler{}
	var settled []State
	d := NewDebouncer(NewService(catalog.Default()), sched, func(st State) {
		settled = append(settled, st)
	})

	for _, q := range []string{"n", "no", "nol", "nola", "nolan"} {
		d.Change(q)
		assert.Equal(t, StatusSearching, d.State().Status)
	}
	assert.Equal(t, 1, sched.active(), "only the last timer may be pending")
	assert.Equal(t, DefaultDelay, sched.timers[len(sched.timers)-1].delay)

	require.Equal(t, 1, sched.elapse())
	require.Len(t, settled, 1)
	assert.Equal(t, "nolan", settled[0].SettledQuery)
	assert.Equal(t, []string{"Inception", "The Dark Knight", "Interstellar"}, titles(settled[0].Results))
}

func TestDebouncerRejectsLateStaleTimer(t *testing.T) {
	sched := &fakeScheduler{}
	calls := 0
	d := NewDebouncer(NewService(catalog.Default()), sched, func(State) { calls++ })

	d.Change("nolan")
	stale := sched.timers[0]
	d.Change("dark")

	// simulate the first timer having already fired when Stop was called
	stale.fn()
	assert.Equal(t, 0, calls)
	assert.Equal(t, StatusSearching, d.State().Status)

	sched.elapse()
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"The Dark Knight"}, titles(d.State().Results))
}

func TestDebouncerBlankCancelsTimer(t *testing.T) {
	sched := &fakeScheduler{}
	calls := 0
	d := NewDebouncer(NewService(catalog.Default()), sched, func(State) { calls++ })

	d.Change("nolan")
	d.Change("  ")

	assert.Equal(t, 0, sched.active())
	assert.Equal(t, 0, sched.elapse())
	assert.Equal(t, 0, calls)
	assert.Equal(t, StatusIdle, d.State().Status)
}

func TestDebouncerSelectAndClose(t *testing.T) {
	sched := &fakeScheduler{}
	d := NewDebouncer(NewService(catalog.Default()), sched, nil)

	d.Change("godfather")
	sched.elapse()

	m, ok := d.Select(5)
	require.True(t, ok)
	assert.Equal(t, "The Godfather", m.Title)
	assert.Equal(t, StatusIdle, d.State().Status)

	d.Change("matrix")
	d.Close()
	assert.Equal(t, 0, sched.active())

	d.Change("fight")
	assert.Equal(t, 0, sched.active(), "closed debouncer ignores input")
}

func TestDebouncerWithClock(t *testing.T) {
	done := make(chan State, 1)
	svc := NewService(catalog.Default(), WithDelay(10*time.Millisecond))
	d := NewDebouncer(svc, nil, func(st State) { done <- st })
	defer d.Close()

	d.Change("Pulp")
	d.Change("Fiction")

	select {
	case st := <-done:
		assert.Equal(t, StatusSettled, st.Status)
		assert.Equal(t, "Fiction", st.SettledQuery)
		assert.Equal(t, []string{"Pulp Fiction"}, titles(st.Results))
	case <-time.After(2 * time.Second):
		t.Fatal("debounced search never settled")
	}

	select {
	case st := <-done:
		t.Fatalf("unexpected second settle for %q", st.SettledQuery)
	case <-time.After(50 * time.Millisecond):
	}
}
