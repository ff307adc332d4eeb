package systems

import (
	"github.com/automoto/drift/components"
	"github.com/automoto/drift/shared/sim"
	"github.com/yohamta/donburi/ecs"
)

// GetSimulation returns the singleton Simulation component, or nil before
// the factory has spawned it.
func GetSimulation(e *ecs.ECS) *components.SimulationData {
	entry, ok := components.Simulation.First(e.World)
	if !ok {
		return nil
	}
	return components.Simulation.Get(entry)
}

// IsTerminated reports whether the quit control has stopped the simulation.
func IsTerminated(e *ecs.ECS) bool {
	data := GetSimulation(e)
	return data != nil && data.Sim.State() == sim.Terminated
}

// WithRunningCheck wraps a system to skip execution once the simulation has
// terminated or before it exists.
func WithRunningCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if data := GetSimulation(e); data == nil || data.Sim.Terminated() {
			return
		}
		system(e)
	}
}
