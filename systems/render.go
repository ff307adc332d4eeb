package systems

import (
	"github.com/automoto/drift/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawSimulation binds the screen to the simulation's surface and delivers a
// render tick.
func DrawSimulation(ecs *ecs.ECS, screen *ebiten.Image) {
	data := GetSimulation(ecs)
	if data == nil {
		return
	}
	data.Surface.Bind(screen)
	bounds := screen.Bounds()
	data.Sim.Handle(sim.RenderTick{
		Viewport: sim.Viewport{Width: bounds.Dx(), Height: bounds.Dy()},
	})
}
