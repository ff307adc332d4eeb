package scenes

import (
	"image/color"
	"log/slog"

	cfg "github.com/automoto/drift/config"
	"github.com/automoto/drift/systems"
	"github.com/automoto/drift/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SimulationScene drives the single-body simulation through donburi systems.
type SimulationScene struct {
	ecs    *ecs.ECS
	logger *slog.Logger
}

// NewSimulationScene builds the ECS and spawns the simulation entity.
func NewSimulationScene(logger *slog.Logger) (*SimulationScene, error) {
	ss := &SimulationScene{logger: logger}
	if err := ss.configure(); err != nil {
		return nil, err
	}
	return ss, nil
}

// Update runs one frame of systems. Once the quit control has been pressed
// it returns ebiten.Termination so the window is closed by ebiten itself.
func (ss *SimulationScene) Update() error {
	ss.ecs.Update()

	if systems.IsTerminated(ss.ecs) {
		ss.logger.Info("shutting down")
		return ebiten.Termination
	}
	return nil
}

func (ss *SimulationScene) Draw(screen *ebiten.Image) {
	if ss.ecs == nil {
		screen.Fill(color.Black)
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *SimulationScene) configure() error {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input must run before physics so a press lands in the same frame.
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdateInput))
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdatePhysics))

	ecs.AddRenderer(cfg.Default, systems.DrawSimulation)
	ecs.AddRenderer(cfg.DebugLayer, systems.DrawDebug)

	if _, err := factory.CreateSimulation(ecs, ss.logger); err != nil {
		return err
	}

	ss.ecs = ecs
	return nil
}
