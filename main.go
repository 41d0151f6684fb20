package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/airbornedetergent/frametimer/config"
	"github.com/airbornedetergent/frametimer/session"
)

const (
	WIDTH  = 320
	HEIGHT = 200
	// Makes the window bigger because the text is kinda small
	SCALE = 3
	// Rows are a debug-font line plus a progress bar
	ROW_HEIGHT = 24
	BAR_HEIGHT = 4
	MARGIN     = 8
)

var configPath = flag.String("config", "frametimer.yaml", "path to the YAML config")

func main() {
	flag.Parse()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	logger := session.NewLogger(os.Stderr, cfg.Debug)

	scene, err := newScene(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(WIDTH*SCALE, HEIGHT*SCALE)
	ebiten.SetWindowTitle("frametimer")
	runErr := ebiten.RunGame(scene)
	if err := scene.session.Save(); err != nil {
		logger.Error("saving timers failed", "err", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
