package search

import (
	"sync"
	"time"

	"cinerate/internal/domain"
)

// Timer is a scheduled callback that can be stopped
type Timer interface {
	Stop() bool
}

// Scheduler arms single-shot timers
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type clockScheduler struct{}

func (clockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ClockScheduler schedules on the wall clock with time.AfterFunc
func ClockScheduler() Scheduler {
	return clockScheduler{}
}

// Debouncer drives a Service with real timers. It is safe for concurrent use.
// A timer that fires after being superseded is rejected by Settle, so a
// late callback can never overwrite newer results.
type Debouncer struct {
	mu       sync.Mutex
	svc      *Service
	sched    Scheduler
	timer    Timer
	onSettle func(State)
	closed   bool
}

// NewDebouncer wraps svc. onSettle, if set, is called after every applied
// settle, outside the lock, with a copy of the state.
func NewDebouncer(svc *Service, sched Scheduler, onSettle func(State)) *Debouncer {
	if sched == nil {
		sched = ClockScheduler()
	}
	return &Debouncer{
		svc:      svc,
		sched:    sched,
		onSettle: onSettle,
	}
}

// Change feeds a new query value, cancelling any pending timer
func (d *Debouncer) Change(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	p, ok := d.svc.OnQueryChange(query)
	d.stopLocked()
	if !ok {
		return
	}
	d.timer = d.sched.AfterFunc(d.svc.Delay(), func() {
		d.fire(p)
	})
}

// Clear empties the query and cancels any pending timer
func (d *Debouncer) Clear() {
	d.Change("")
}

// Select picks a settled result by id
func (d *Debouncer) Select(id int) (domain.Movie, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	m, ok := d.svc.SelectResult(id)
	if ok {
		d.stopLocked()
	}
	return m, ok
}

// State returns a copy of the current query state
func (d *Debouncer) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.svc.State()
}

// Close stops the pending timer; later changes are ignored
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.closed = true
}

func (d *Debouncer) fire(p Pending) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	applied := d.svc.Settle(p)
	if applied {
		d.timer = nil
	}
	st := d.svc.State()
	cb := d.onSettle
	d.mu.Unlock()

	if applied && cb != nil {
		cb(st)
	}
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
