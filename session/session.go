// Package session wires a host scheduler, its timers and their persisted state
// for the frametimer front ends.
package session

import (
	"fmt"
	"log/slog"

	"github.com/airbornedetergent/frametimer/config"
	"github.com/airbornedetergent/frametimer/host"
	"github.com/airbornedetergent/frametimer/state"
	"github.com/airbornedetergent/frametimer/timer"
	"github.com/airbornedetergent/frametimer/unit"
)

// Session owns one scheduler and the timers attached to it. Like the
// scheduler it is driven from a single goroutine.
type Session struct {
	logger   *slog.Logger
	sched    *host.Scheduler
	store    *state.Store
	format   unit.Format
	onExpire func(*timer.Timer)

	timers   []*timer.Timer
	presets  []config.TimerConfig
	selected int
}

// New builds timers from the state file when it holds any, otherwise from cfg.
// onExpire may be nil.
func New(cfg *config.Config, logger *slog.Logger, onExpire func(*timer.Timer)) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		logger:   logger,
		sched:    host.NewScheduler(logger),
		format:   unit.NewFormat(cfg.Format),
		onExpire: onExpire,
	}
	if cfg.StateFile != "" {
		s.store = state.NewStore(cfg.StateFile)
	}

	snaps, err := s.loadState()
	if err != nil {
		return nil, err
	}

	if len(snaps) > 0 {
		for _, snap := range snaps {
			preset, ok := findPreset(cfg.Timers, snap.Name)
			if !ok {
				preset = config.TimerConfig{Name: snap.Name, Mode: snap.Mode, Seconds: snap.Seconds, Ascending: snap.Ascending}
			}
			s.presets = append(s.presets, preset)
			s.timers = append(s.timers, timer.Restore(snap, s.sched, timer.WithOnComplete(s.expired)))
		}
		logger.Info("timers restored", slog.Int("count", len(snaps)), slog.String("path", s.store.Path()))
		return s, nil
	}

	for _, tc := range cfg.Timers {
		t := s.build(tc)
		if tc.AutoStart {
			t.Start()
		}
		s.presets = append(s.presets, tc)
		s.timers = append(s.timers, t)
	}
	return s, nil
}

func (s *Session) loadState() ([]timer.Snapshot, error) {
	if s.store == nil {
		return nil, nil
	}
	snaps, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("restore timers: %w", err)
	}
	return snaps, nil
}

func findPreset(presets []config.TimerConfig, name string) (config.TimerConfig, bool) {
	if name == "" {
		return config.TimerConfig{}, false
	}
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return config.TimerConfig{}, false
}

func (s *Session) build(tc config.TimerConfig) *timer.Timer {
	opts := []timer.Option{timer.WithName(tc.Name), timer.WithOnComplete(s.expired)}
	if tc.Ascending {
		opts = append(opts, timer.WithAscending())
	}
	return timer.New(tc.Seconds, tc.Mode, s.sched, opts...)
}

func (s *Session) expired(t *timer.Timer) {
	s.logger.Info("timer expired", slog.String("timer", t.Name()))
	if s.onExpire != nil {
		s.onExpire(t)
	}
}

// Step advances every running timer by dt seconds.
func (s *Session) Step(dt float64) {
	s.sched.Step(dt)
}

func (s *Session) Scheduler() *host.Scheduler { return s.sched }
func (s *Session) Timers() []*timer.Timer     { return s.timers }
func (s *Session) SelectedIndex() int         { return s.selected }

func (s *Session) Selected() *timer.Timer {
	if len(s.timers) == 0 {
		return nil
	}
	return s.timers[s.selected]
}

func (s *Session) SelectNext() {
	if len(s.timers) == 0 {
		return
	}
	s.selected = (s.selected + 1) % len(s.timers)
}

func (s *Session) Start() {
	if t := s.Selected(); t != nil {
		t.Start()
		s.logger.Debug("timer started", slog.String("timer", t.Name()))
	}
}

func (s *Session) Pause() {
	if t := s.Selected(); t != nil {
		t.Pause()
		s.logger.Debug("timer paused", slog.String("timer", t.Name()))
	}
}

func (s *Session) Stop() {
	if t := s.Selected(); t != nil {
		t.Stop()
		s.logger.Debug("timer stopped", slog.String("timer", t.Name()))
	}
}

// Reset stops the selected timer and replaces it with a fresh one built from
// its configured preset.
func (s *Session) Reset() {
	t := s.Selected()
	if t == nil {
		return
	}
	t.Stop()
	s.timers[s.selected] = s.build(s.presets[s.selected])
	s.logger.Debug("timer reset", slog.String("timer", t.Name()))
}

// Progress is the fraction of a countdown still remaining, or the position
// within the current minute for other modes.
func (s *Session) Progress(i int) float64 {
	t := s.timers[i]
	secs := t.Seconds()
	if t.Mode() == timer.CountDown {
		initial := s.presets[i].Seconds
		if !(initial > 0) {
			return 0
		}
		return min(1, secs.Value()/initial)
	}
	return (secs.Value() - float64(secs.Minutes().Floor()*unit.SecondsPerMinute)) / unit.SecondsPerMinute
}

// Line renders one timer for display.
func (s *Session) Line(i int) string {
	t := s.timers[i]
	cursor := " "
	if i == s.selected {
		cursor = ">"
	}
	status := "stopped"
	switch {
	case t.Running():
		status = "running"
	case t.Mode() != timer.Idle && t.Seconds().Value() > 0:
		status = "paused"
	}
	return fmt.Sprintf("%s %-12s %-9s %8s  %s", cursor, t.Name(), t.Mode(), t.Render(s.format), status)
}

// Save writes every timer's snapshot when a state file is configured.
func (s *Session) Save() error {
	if s.store == nil {
		return nil
	}
	snaps := make([]timer.Snapshot, 0, len(s.timers))
	for _, t := range s.timers {
		snaps = append(snaps, t.Snapshot())
	}
	if err := s.store.Save(snaps); err != nil {
		return fmt.Errorf("save timers: %w", err)
	}
	s.logger.Info("timers saved", slog.Int("count", len(snaps)), slog.String("path", s.store.Path()))
	return nil
}
