package systems

import (
	"github.com/automoto/drift/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics delivers one update tick to the simulation. ebiten runs
// Update at a fixed rate, so dt is one tick's worth of seconds.
func UpdatePhysics(ecs *ecs.ECS) {
	data := GetSimulation(ecs)
	if data == nil {
		return
	}
	if data.Sim.Handle(sim.UpdateTick{DT: tickDuration(ebiten.TPS())}) {
		data.Ticks++
	}
}

func tickDuration(tps int) float64 {
	if tps <= 0 {
		return 0
	}
	return 1 / float64(tps)
}
