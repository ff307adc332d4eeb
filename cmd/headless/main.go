// Command headless replays a YAML event script through the simulation
// without opening a window and logs where the body ended up.
package main

import (
	"flag"
	"image/color"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/drift/config"
	"github.com/automoto/drift/logging"
	"github.com/automoto/drift/script"
	"github.com/automoto/drift/shared/sim"
	"github.com/automoto/drift/systems/factory"
)

// logSurface records draw calls in the log instead of on screen.
type logSurface struct {
	logger *slog.Logger
	frames int
}

func (s *logSurface) Clear(c color.Color) {
	s.frames++
	r, g, b, a := c.RGBA()
	s.logger.Debug("clear", "frame", s.frames, "r", r>>8, "g", g>>8, "b", b>>8, "a", a>>8)
}

func (s *logSurface) DrawFilledRectangle(c color.Color, r sim.Rect, t sim.Transform) {
	dst := t.Apply(r)
	s.logger.Debug("rect", "frame", s.frames, "x", dst.X, "y", dst.Y, "w", dst.W, "h", dst.H)
}

func main() {
	configPath := flag.String("config", "drift.yaml", "Path to optional YAML configuration")
	scriptPath := flag.String("script", "", "Path to the YAML event script")
	realtime := flag.Bool("realtime", false, "Pace update steps on a wall clock and use the measured dt")
	flag.Parse()

	if *scriptPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if _, err := config.LoadFile(*configPath); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := logging.Init(logging.Config{
		Level:  config.Debug.LogLevel,
		Format: config.Debug.LogFormat,
	})

	sc, err := script.Load(*scriptPath)
	if err != nil {
		log.Fatalf("Failed to load script: %v", err)
	}

	surface := &logSurface{logger: logger}
	s, err := factory.NewSimulation(surface, logger)
	if err != nil {
		log.Fatalf("Failed to create simulation: %v", err)
	}

	var src sim.EventSource = sc.Source()
	if *realtime {
		paced := sim.NewPacedSource(src, config.C.TPS)
		defer paced.Stop()

		// Handle graceful shutdown
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			logger.Info("interrupted, stopping")
			paced.Stop()
		}()
		src = paced
	}

	stats, err := sim.Run(src, s)
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	b := s.Body()
	logger.Info("script finished",
		"state", s.State(),
		"updates", stats.Updates,
		"renders", stats.Renders,
		"presses", stats.Presses,
		"releases", stats.Releases,
		"ignored", stats.Ignored,
		"x", b.Position.X,
		"y", b.Position.Y,
		"vx", b.Velocity.X,
		"vy", b.Velocity.Y,
	)
}
