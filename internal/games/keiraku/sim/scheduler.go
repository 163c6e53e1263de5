package sim

import (
	"fmt"
	"time"
)

// Task names registered by the simulation.
const (
	TaskProjectiles = "projectiles"
	TaskExplosives  = "explosives"
	TaskEnemies     = "enemies"
	TaskEffects     = "effects"
)

// TaskFunc runs when a task is due. now is the virtual time of the tick.
type TaskFunc func(now time.Duration)

type task struct {
	name   string
	period time.Duration
	fn     TaskFunc
	armed  bool
	next   time.Duration
	order  int
}

// Scheduler runs named periodic tasks on a virtual clock.
//
// Time only moves inside Advance, and not at all while paused, so a paused
// run resumes exactly where it stopped. Tasks that fall due within one
// Advance run in due-time order; ties run in registration order.
type Scheduler struct {
	now    time.Duration
	tasks  []*task
	byName map[string]*task
	paused bool
}

// NewScheduler returns an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{byName: make(map[string]*task)}
}

// Register adds a disarmed task. It panics on a duplicate name or a
// non-positive period.
func (s *Scheduler) Register(name string, period time.Duration, fn TaskFunc) {
	if _, exists := s.byName[name]; exists {
		panic(fmt.Sprintf("sim: task %q already registered", name))
	}
	if period <= 0 {
		panic(fmt.Sprintf("sim: task %q has non-positive period %v", name, period))
	}
	t := &task{name: name, period: period, fn: fn, order: len(s.tasks)}
	s.tasks = append(s.tasks, t)
	s.byName[name] = t
}

// Arm schedules a task one period from now. Arming an armed task is a no-op.
func (s *Scheduler) Arm(name string) {
	t, ok := s.byName[name]
	if !ok || t.armed {
		return
	}
	t.armed = true
	t.next = s.now + t.period
}

// Disarm stops a task until it is armed again.
func (s *Scheduler) Disarm(name string) {
	if t, ok := s.byName[name]; ok {
		t.armed = false
	}
}

// DisarmAll stops every task.
func (s *Scheduler) DisarmAll() {
	for _, t := range s.tasks {
		t.armed = false
	}
}

// Armed reports whether a task is scheduled.
func (s *Scheduler) Armed(name string) bool {
	t, ok := s.byName[name]
	return ok && t.armed
}

// SetPaused freezes or resumes the clock.
func (s *Scheduler) SetPaused(paused bool) {
	s.paused = paused
}

// Paused reports whether the clock is frozen.
func (s *Scheduler) Paused() bool {
	return s.paused
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Advance moves the clock forward by dt, running every task that falls due.
func (s *Scheduler) Advance(dt time.Duration) {
	if s.paused || dt <= 0 {
		return
	}
	target := s.now + dt
	for !s.paused {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		s.now = t.next
		t.next += t.period
		t.fn(s.now)
	}
	if !s.paused {
		s.now = target
	}
}

func (s *Scheduler) nextDue(target time.Duration) *task {
	var best *task
	for _, t := range s.tasks {
		if !t.armed || t.next > target {
			continue
		}
		if best == nil || t.next < best.next {
			best = t
		}
	}
	return best
}
