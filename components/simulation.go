package components

import (
	"github.com/automoto/drift/screen"
	"github.com/automoto/drift/shared/sim"
	"github.com/yohamta/donburi"
)

// SimulationData holds the running simulation and the surface it draws on.
// The surface is rebound to ebiten's screen image on every draw.
type SimulationData struct {
	Sim     *sim.Simulation
	Surface *screen.Surface
	Ticks   int // update ticks delivered so far
}

var Simulation = donburi.NewComponentType[SimulationData]()
