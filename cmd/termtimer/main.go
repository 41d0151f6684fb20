package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/airbornedetergent/frametimer/config"
	"github.com/airbornedetergent/frametimer/display"
	"github.com/airbornedetergent/frametimer/session"
	"github.com/airbornedetergent/frametimer/timer"
)

const (
	logDir      = "logs"
	logFileName = "termtimer.log"
	sampleRate  = beep.SampleRate(44100)
	toneLength  = 400 * time.Millisecond
	barWidth    = 40
)

var configPath = flag.String("config", "frametimer.yaml", "path to the YAML config")

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "termtimer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if logFile := session.OpenDebugLog(logDir, logFileName, cfg.Debug); logFile != nil {
		defer logFile.Close()
		logOut = logFile
	}
	logger := session.NewLogger(logOut, cfg.Debug)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	t := &term{screen: screen, logger: logger, beepHz: cfg.BeepHz}
	defer t.cleanup()

	// Restore the terminal before the stack trace goes to stderr
	defer func() {
		if r := recover(); r != nil {
			t.cleanup()
			fmt.Fprintf(os.Stderr, "\ntermtimer crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	if err := t.initAudio(); err != nil {
		// Non-fatal, timers still run without sound
		logger.Warn("audio initialization failed", slog.Any("err", err))
	}

	t.session, err = session.New(cfg, logger, t.expired)
	if err != nil {
		return err
	}

	t.loop(cfg)

	return t.session.Save()
}

type term struct {
	screen    tcell.Screen
	session   *session.Session
	logger    *slog.Logger
	audioInit bool
	beepHz    float64
	closed    bool
}

func (t *term) initAudio() error {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		t.audioInit = true
	}
	return err
}

func (t *term) expired(tm *timer.Timer) {
	if !t.audioInit || t.beepHz <= 0 {
		return
	}
	sine, err := generators.SineTone(sampleRate, t.beepHz)
	if err != nil {
		t.logger.Warn("tone generation failed", slog.String("timer", tm.Name()), slog.Any("err", err))
		return
	}
	speaker.Play(beep.Take(sampleRate.N(toneLength), sine))
}

func (t *term) loop(cfg *config.Config) {
	ticker := time.NewTicker(time.Second / time.Duration(cfg.TPS))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	fixed := 1 / float64(cfg.TPS)
	var clock display.FrameClock
	clock.Tick()
	t.draw()

	for {
		select {
		case ev := <-eventChan:
			if !t.handleInput(ev) {
				return
			}
			t.draw()

		case <-ticker.C:
			dt := fixed
			if cfg.Realtime {
				dt = clock.Tick()
			}
			t.session.Step(dt)
			t.draw()
		}
	}
}

func (t *term) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyTab:
			t.session.SelectNext()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 's', ' ':
				t.session.Start()
			case 'p':
				t.session.Pause()
			case 'x':
				t.session.Stop()
			case 'r':
				t.session.Reset()
			}
		}

	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *term) draw() {
	t.screen.Clear()

	row := 1
	for i := range t.session.Timers() {
		style := tcell.StyleDefault
		if i == t.session.SelectedIndex() {
			style = style.Bold(true)
		}
		t.drawText(2, row, t.session.Line(i), style)
		t.drawBar(4, row+1, t.session.Progress(i))
		row += 3
	}
	t.drawText(2, row, "tab select  s start  p pause  x stop  r reset  q quit", tcell.StyleDefault.Dim(true))

	t.screen.Show()
}

func (t *term) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (t *term) drawBar(x, y int, fraction float64) {
	c := display.ProgressColor(fraction)
	fill := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	empty := tcell.StyleDefault.Foreground(tcell.ColorGray)
	filled := int(fraction * barWidth)
	for i := 0; i < barWidth; i++ {
		if i < filled {
			t.screen.SetContent(x+i, y, '█', nil, fill)
		} else {
			t.screen.SetContent(x+i, y, '░', nil, empty)
		}
	}
}

func (t *term) cleanup() {
	if t.closed {
		return
	}
	t.closed = true
	if t.audioInit {
		speaker.Close()
	}
	t.screen.Fini()
}
