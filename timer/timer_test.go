package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airbornedetergent/frametimer/host"
	"github.com/airbornedetergent/frametimer/unit"
)

const delta = 1e-9

func TestNewClampsNegativeInitial(t *testing.T) {
	tm := New(-5, CountDown, host.NewScheduler(nil))

	assert.Equal(t, 0.0, tm.Seconds().Value())
	assert.Equal(t, CountDown, tm.Mode())
	assert.False(t, tm.Running())
	assert.False(t, tm.Attached())
}

func TestNewCountUp(t *testing.T) {
	tm := NewCountUp(host.NewScheduler(nil))

	assert.Equal(t, CountUp, tm.Mode())
	assert.Equal(t, 0.0, tm.Seconds().Value())
}

func TestCountDownReachesZero(t *testing.T) {
	s := host.NewScheduler(nil)
	completed := 0
	tm := New(5, CountDown, s, WithOnComplete(func(*Timer) { completed++ }))

	tm.Start()
	require.True(t, tm.Running())

	for i := 1; i <= 4; i++ {
		s.Step(1)
		assert.InDelta(t, float64(5-i), tm.Seconds().Value(), delta)
		assert.True(t, tm.Running(), "step %d", i)
	}

	s.Step(1)
	assert.LessOrEqual(t, tm.Seconds().Value(), 0.0)
	assert.False(t, tm.Running())
	assert.False(t, tm.Attached())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 1, completed)

	s.Step(1)
	assert.Equal(t, 1, completed)
	assert.Equal(t, CountDown, tm.Mode())
}

func TestCountDownOvershootClamps(t *testing.T) {
	s := host.NewScheduler(nil)
	tm := New(1, CountDown, s)
	tm.Start()

	s.Step(0.6)
	s.Step(0.6)

	assert.Equal(t, 0.0, tm.Seconds().Value())
	assert.False(t, tm.Running())
}

// CountUp keeps the long-standing behaviour of stepping the magnitude down.
// That contradicts the name; WithAscending opts into counting up.
func TestCountUpDecrementsAndClamps(t *testing.T) {
	s := host.NewScheduler(nil)
	tm := New(2.5, CountUp, s)
	tm.Start()

	s.Step(1)
	assert.InDelta(t, 1.5, tm.Seconds().Value(), delta)
	s.Step(1)
	assert.InDelta(t, 0.5, tm.Seconds().Value(), delta)
	s.Step(1)
	assert.Equal(t, 0.0, tm.Seconds().Value())
	s.Step(1)
	assert.Equal(t, 0.0, tm.Seconds().Value())

	assert.True(t, tm.Running(), "count-up keeps running at zero")
	assert.True(t, tm.Attached())
}

func TestCountUpFromZeroStaysAtZero(t *testing.T) {
	s := host.NewScheduler(nil)
	tm := NewCountUp(s)
	tm.Start()

	for i := 0; i < 5; i++ {
		s.Step(1)
		assert.Equal(t, 0.0, tm.Seconds().Value())
	}
}

func TestCountUpAscending(t *testing.T) {
	s := host.NewScheduler(nil)
	tm := NewCountUp(s, WithAscending())
	tm.Start()

	for i := 0; i < 3; i++ {
		s.Step(0.5)
	}

	assert.InDelta(t, 1.5, tm.Seconds().Value(), delta)
	assert.True(t, tm.Ascending())
}

func TestStartIsIdempotent(t *testing.T) {
	s := host.NewScheduler(nil)
	tm := New(10, CountDown, s)

	tm.Start()
	tm.Start()
	require.Equal(t, 1, s.Len())

	s.Step(1)
	assert.InDelta(t, 9.0, tm.Seconds().Value(), delta, "only one task drives the magnitude")
}

func TestStartIdleIsNoop(t *testing.T) {
	s := host.NewScheduler(nil)
	tm := New(3, Idle, s)

	tm.Start()

	assert.False(t, tm.Running())
	assert.False(t, tm.Attached())
	assert.Equal(t, 0, s.Len())
}

func TestPauseDetachesAndResumes(t *testing.T) {
	s := host.NewScheduler(nil)
	tm := New(10, CountDown, s)
	tm.Start()
	s.Step(1)

	tm.Pause()
	assert.False(t, tm.Running())
	assert.False(t, tm.Attached())
	assert.Equal(t, 0, s.Len(), "paused timers leave nothing stepping")

	s.Step(1)
	s.Step(1)
	assert.InDelta(t, 9.0, tm.Seconds().Value(), delta)

	tm.Pause()
	tm.Start()
	assert.Equal(t, 1, s.Len())
	s.Step(1)
	assert.InDelta(t, 8.0, tm.Seconds().Value(), delta)
}

func TestPausedCountUpResumes(t *testing.T) {
	s := host.NewScheduler(nil)
	tm := NewCountUp(s, WithAscending())
	tm.Start()
	s.Step(1)
	tm.Pause()
	s.Step(1)
	tm.Start()
	s.Step(1)

	assert.InDelta(t, 2.0, tm.Seconds().Value(), delta)
}

func TestStopResets(t *testing.T) {
	cases := map[string]func(*Timer, *host.Scheduler){
		"fresh":   func(*Timer, *host.Scheduler) {},
		"running": func(tm *Timer, s *host.Scheduler) { tm.Start(); s.Step(1) },
		"paused":  func(tm *Timer, s *host.Scheduler) { tm.Start(); s.Step(1); tm.Pause() },
		"stopped": func(tm *Timer, _ *host.Scheduler) { tm.Stop() },
		"expired": func(tm *Timer, s *host.Scheduler) { tm.Start(); s.Step(100) },
	}

	for name, prepare := range cases {
		t.Run(name, func(t *testing.T) {
			s := host.NewScheduler(nil)
			tm := New(5, CountDown, s)
			prepare(tm, s)

			tm.Stop()

			assert.Equal(t, 0.0, tm.Seconds().Value())
			assert.Equal(t, Idle, tm.Mode())
			assert.False(t, tm.Running())
			assert.False(t, tm.Attached())
			assert.Equal(t, 0, s.Len())

			tm.Start()
			assert.False(t, tm.Running(), "stopped timers are idle")
		})
	}
}

func TestStartFromCompletionIsNoop(t *testing.T) {
	s := host.NewScheduler(nil)
	completions := 0
	tm := New(1, CountDown, s, WithOnComplete(func(tm *Timer) {
		completions++
		tm.Start()
	}))
	tm.Start()

	s.Step(1)
	assert.Equal(t, 1, completions)
	assert.False(t, tm.Running())
	assert.False(t, tm.Attached())
	assert.Equal(t, 0, s.Len())
}

func TestExpiredCountDownCompletesOnce(t *testing.T) {
	s := host.NewScheduler(nil)
	completions := 0
	tm := New(1, CountDown, s, WithOnComplete(func(*Timer) { completions++ }))
	tm.Start()
	s.Step(2)
	require.Equal(t, 1, completions)

	for i := 0; i < 3; i++ {
		tm.Start()
		assert.False(t, tm.Running())
		s.Step(1)
	}

	assert.Equal(t, 1, completions)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0.0, tm.Seconds().Value())
}

func TestStartZeroCountDownIsNoop(t *testing.T) {
	s := host.NewScheduler(nil)
	fired := false
	tm := New(0, CountDown, s, WithOnComplete(func(*Timer) { fired = true }))

	tm.Start()
	s.Step(1)

	assert.False(t, tm.Running())
	assert.False(t, fired)
	assert.Equal(t, 0, s.Len())
}

func TestRender(t *testing.T) {
	s := host.NewScheduler(nil)

	assert.Equal(t, "12.3", New(12.34, CountDown, s).String())
	assert.Equal(t, "07.0", New(7, CountDown, s).String())
	assert.Equal(t, "00.0", New(0, CountUp, s).String())
	assert.Equal(t, "125s 4", New(125.45, CountUp, s).Render(unit.NewFormat("%ds %d")))
	assert.Equal(t, "12.3", New(12.34, CountDown, s).Render(unit.NewFormat("")))
	assert.Equal(t, "12.3", New(12.34, CountDown, s).Render(unit.Format{}))
}

func TestModeText(t *testing.T) {
	for _, m := range []Mode{CountDown, Idle, CountUp} {
		text, err := m.MarshalText()
		require.NoError(t, err)

		var parsed Mode
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, m, parsed)
	}

	var m Mode
	assert.NoError(t, m.UnmarshalText([]byte("none")))
	assert.Equal(t, Idle, m)
	assert.Error(t, m.UnmarshalText([]byte("sideways")))

	_, err := Mode(7).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "Mode(7)", Mode(7).String())
}
