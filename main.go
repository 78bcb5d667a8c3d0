package main

import (
	"log"
	"os"

	"github.com/automoto/balloons-static/config"
	"github.com/automoto/balloons-static/fonts"
	"github.com/automoto/balloons-static/logging"
	"github.com/automoto/balloons-static/scenes"
	"github.com/automoto/balloons-static/sim"
	"github.com/automoto/balloons-static/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Game struct {
	scene         scenes.Scene
	width, height int
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.width, g.height
}

func main() {
	// BASE_CONFIG points at an optional yaml, toml or json file.
	cfg, err := config.Load(os.Getenv("BASE_CONFIG"))
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.New(cfg.Logger)
	defer func() { _ = logger.Sync() }()
	logging.LogConfig(logger, cfg)

	fonts.LoadDefaults()

	// Initialize persistence; saved settings are applied by the scene
	store, err := systems.OpenSettings(cfg.Persistence, logger)
	if err != nil {
		logger.Warn("could not initialize persistence", zap.Error(err))
	}

	scene, err := sim.LoadScene(cfg.Scene)
	if err != nil {
		logger.Fatal("could not load scene", zap.Error(err))
	}

	bs := scenes.NewBalloonScene(cfg, scene, store, logger)
	g := &Game{scene: bs}
	g.width, g.height = bs.Size()

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("Balloons and Static Electricity")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}
