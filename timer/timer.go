// Package timer implements a frame-stepped countdown / count-up timer.
//
// A Timer does not read a clock. It hands a stepping task to its Host, and the
// host advances that task once per frame with the frame's elapsed seconds.
// Pausing detaches the task so nothing is stepped while paused; starting again
// reattaches the same task.
package timer

import (
	"fmt"

	"github.com/airbornedetergent/frametimer/host"
	"github.com/airbornedetergent/frametimer/unit"
)

// DefaultFormat renders whole seconds and the tenths digit, e.g. 07.4.
var DefaultFormat = unit.NewFormat("%02d.%d")

// Host attaches and detaches stepping tasks. *host.Scheduler implements it.
type Host interface {
	Attach(task host.Task) host.TaskID
	Detach(id host.TaskID)
}

type Option func(*Timer)

// WithAscending makes CountUp timers increase. Without it a CountUp timer
// decrements its magnitude each step and rests at zero.
func WithAscending() Option {
	return func(t *Timer) { t.ascending = true }
}

// WithOnComplete is called once each time a countdown reaches zero.
func WithOnComplete(fn func(*Timer)) Option {
	return func(t *Timer) { t.onComplete = fn }
}

func WithName(name string) Option {
	return func(t *Timer) { t.name = name }
}

type Timer struct {
	name       string
	mode       Mode
	seconds    unit.Seconds
	running    bool
	ascending  bool
	onComplete func(*Timer)

	host   Host
	task   *stepTask
	taskID host.TaskID
}

// New creates a stopped timer. Negative initial values start at zero.
func New(initial float64, mode Mode, h Host, opts ...Option) *Timer {
	t := &Timer{
		mode:    mode,
		seconds: unit.NewSeconds(max(0, initial)),
		host:    h,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewCountUp creates a CountUp timer starting at zero.
func NewCountUp(h Host, opts ...Option) *Timer {
	return New(0, CountUp, h, opts...)
}

// Start attaches the stepping task unless the timer is Idle. It never
// attaches a second task while one is attached.
func (t *Timer) Start() {
	if t.mode == Idle {
		return
	}
	// An expired countdown stays expired until it is rebuilt or restored.
	if t.mode == CountDown && t.seconds.Value() <= 0 {
		return
	}
	if t.task == nil {
		t.task = &stepTask{timer: t}
	}
	if t.taskID == host.NoTask {
		t.taskID = t.host.Attach(t.task)
	}
	t.running = true
}

// Pause freezes the magnitude. The task is detached but kept for Start.
func (t *Timer) Pause() {
	t.running = false
	t.detach()
}

// Stop resets the timer to zero and Idle and discards its task.
func (t *Timer) Stop() {
	t.running = false
	t.seconds = unit.NewSeconds(0)
	t.mode = Idle
	t.detach()
	t.task = nil
}

func (t *Timer) detach() {
	if t.taskID == host.NoTask {
		return
	}
	t.host.Detach(t.taskID)
	t.taskID = host.NoTask
}

// advance applies one host step of dt seconds and reports whether the
// stepping task is finished.
func (t *Timer) advance(dt float64) bool {
	if !t.running {
		t.taskID = host.NoTask
		return true
	}

	switch t.mode {
	case CountUp:
		next := t.seconds.Value() - dt
		if t.ascending {
			next = t.seconds.Value() + dt
		}
		t.seconds = unit.NewSeconds(max(0, next))
		return false

	case CountDown:
		remaining := t.seconds.Value() - dt
		t.seconds = unit.NewSeconds(max(0, remaining))
		if remaining > 0 {
			return false
		}
		t.running = false
		t.task = nil
		t.taskID = host.NoTask
		if t.onComplete != nil {
			t.onComplete(t)
		}
		return true
	}

	t.running = false
	t.taskID = host.NoTask
	return true
}

func (t *Timer) Name() string          { return t.name }
func (t *Timer) Mode() Mode            { return t.mode }
func (t *Timer) Seconds() unit.Seconds { return t.seconds }
func (t *Timer) Running() bool         { return t.running }
func (t *Timer) Ascending() bool       { return t.ascending }

// Attached reports whether a stepping task is currently registered with the host.
func (t *Timer) Attached() bool {
	return t.taskID != host.NoTask
}

// Render renders whole seconds and the tenths digit through f.
func (t *Timer) Render(f unit.Format) string {
	if f.IsZero() {
		f = DefaultFormat
	}
	return fmt.Sprintf(f.Template(), t.seconds.Floor(), t.seconds.Tenths().Floor()%unit.TenthsPerSecond)
}

func (t *Timer) String() string {
	return t.Render(DefaultFormat)
}

// stepTask is the host-facing handle for a timer. A timer discards its task
// on Stop or completion, so a stale task reports done.
type stepTask struct {
	timer *Timer
}

func (s *stepTask) Step(dt float64) bool {
	if s.timer.task != s {
		return true
	}
	return s.timer.advance(dt)
}
