package factory

import (
	"fmt"
	"log/slog"

	"github.com/automoto/drift/archetypes"
	"github.com/automoto/drift/components"
	cfg "github.com/automoto/drift/config"
	"github.com/automoto/drift/screen"
	"github.com/automoto/drift/shared/sim"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// NewSimulation builds a simulation from the active configuration with the
// body centred in the window.
func NewSimulation(surface sim.Surface, logger *slog.Logger) (*sim.Simulation, error) {
	body, err := sim.NewBody(sim.BodyParams{
		Position: math2.NewVec2(float64(cfg.C.Width)/2, float64(cfg.C.Height)/2),
		Mass:     cfg.Body.Mass,
		Friction: cfg.Body.Friction,
		Size:     cfg.Body.Size,
		Color:    cfg.RGBA(cfg.Body.Color),
	})
	if err != nil {
		return nil, fmt.Errorf("create body: %w", err)
	}
	return sim.New(body, surface, cfg.World.Gravity,
		sim.WithBackground(cfg.RGBA(cfg.World.Background)),
		sim.WithLogger(logger),
	), nil
}

// CreateSimulation spawns the simulation entity backed by an ebiten surface.
func CreateSimulation(ecs *ecs.ECS, logger *slog.Logger) (*donburi.Entry, error) {
	surface := screen.New()
	s, err := NewSimulation(surface, logger)
	if err != nil {
		return nil, err
	}

	entry := archetypes.Simulation.Spawn(ecs)
	components.Simulation.Set(entry, &components.SimulationData{
		Sim:     s,
		Surface: surface,
	})
	components.Debug.Set(entry, &components.DebugData{Visible: cfg.Debug.Overlay})
	return entry, nil
}
