package main

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/airbornedetergent/frametimer/config"
	"github.com/airbornedetergent/frametimer/display"
	"github.com/airbornedetergent/frametimer/session"
	"github.com/airbornedetergent/frametimer/timer"
)

var background = color.RGBA{0x10, 0x10, 0x18, 0xff}

type Scene struct {
	session  *session.Session
	clock    display.FrameClock
	realtime bool
	stepTime float64
	logger   *slog.Logger
}

func newScene(cfg *config.Config, logger *slog.Logger) (*Scene, error) {
	s := &Scene{
		realtime: cfg.Realtime,
		logger:   logger,
	}
	sess, err := session.New(cfg, logger, s.expired)
	if err != nil {
		return nil, err
	}
	s.session = sess
	return s, nil
}

func (s *Scene) expired(t *timer.Timer) {
	s.logger.Info("countdown finished", slog.String("timer", t.Name()), slog.Uint64("step", s.session.Scheduler().Steps()))
}

// The scheduler is stepped from Update, which ebiten calls TPS times a second
// regardless of the display refresh rate
func (s *Scene) Update() error {
	if err := s.handleInput(); err != nil {
		return err
	}
	dt := 1 / float64(ebiten.TPS())
	if s.realtime {
		dt = s.clock.Tick()
	}
	s.stepTime = dt
	s.session.Step(dt)
	return nil
}

func (s *Scene) handleInput() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		s.session.SelectNext()
	case inpututil.IsKeyJustPressed(ebiten.KeyS), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.session.Start()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		s.session.Pause()
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		s.session.Stop()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.session.Reset()
	}
	return nil
}

func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	for i := range s.session.Timers() {
		y := MARGIN + i*ROW_HEIGHT
		ebitenutil.DebugPrintAt(screen, s.session.Line(i), MARGIN, y)
		s.drawBar(screen, i, y+16)
	}

	debugInfo := fmt.Sprintf("TPS: %0.4g  FPS: %0.4g  dt: %0.4f\n", ebiten.ActualTPS(), ebiten.ActualFPS(), s.stepTime)
	debugInfo += "tab select  s start  p pause  x stop  r reset  q quit"
	ebitenutil.DebugPrintAt(screen, debugInfo, MARGIN, HEIGHT-2*ROW_HEIGHT)
}

func (s *Scene) drawBar(screen *ebiten.Image, i, y int) {
	fraction := s.session.Progress(i)
	width := float32(WIDTH - 2*MARGIN)
	vector.DrawFilledRect(screen, MARGIN, float32(y), width, BAR_HEIGHT, color.RGBA{0x30, 0x30, 0x40, 0xff}, false)
	vector.DrawFilledRect(screen, MARGIN, float32(y), width*float32(fraction), BAR_HEIGHT, display.ProgressColor(fraction), false)
}

func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WIDTH, HEIGHT
}
