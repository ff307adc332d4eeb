package main

import (
	"flag"
	"image"
	"log"
	"log/slog"

	"github.com/automoto/drift/config"
	"github.com/automoto/drift/fonts"
	"github.com/automoto/drift/logging"
	"github.com/automoto/drift/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(logger *slog.Logger) (*Game, error) {
	scene, err := scenes.NewSimulationScene(logger)
	if err != nil {
		return nil, err
	}
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}, nil
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "drift.yaml", "Path to optional YAML configuration")
	flag.Parse()

	loaded, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.Init(logging.Config{
		Level:  config.Debug.LogLevel,
		Format: config.Debug.LogFormat,
	})
	if loaded {
		logger.Info("configuration loaded", "path", *configPath)
	}

	if err := fonts.LoadDefaults(config.Overlay.FontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	game, err := NewGame(logger)
	if err != nil {
		log.Fatalf("Failed to create simulation: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	logger.Info("starting simulation",
		"width", config.C.Width,
		"height", config.C.Height,
		"gravity", config.World.Gravity,
	)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
