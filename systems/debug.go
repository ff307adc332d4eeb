package systems

import (
	"fmt"

	"github.com/automoto/drift/components"
	cfg "github.com/automoto/drift/config"
	"github.com/automoto/drift/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug renders the body's kinematic state in the top-left corner.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(ecs).Visible {
		return
	}
	data := GetSimulation(ecs)
	if data == nil || !fonts.Loaded(fonts.Debug) {
		return
	}

	lines := debugLines(data, getOrCreateInput(ecs).LastInputMethod)

	o := cfg.Overlay
	boxW := float32(0)
	face := fonts.Debug.Get()
	for _, line := range lines {
		if w := float32(text.BoundString(face, line).Dx()); w > boxW {
			boxW = w
		}
	}
	boxH := float32(len(lines)*o.LineHeight + o.Margin)
	vector.FillRect(screen, float32(o.Margin), float32(o.Margin),
		boxW+float32(2*o.Margin), boxH, o.BoxColor, false)

	for i, line := range lines {
		y := o.Margin*2 + (i+1)*o.LineHeight - o.LineHeight/4
		text.Draw(screen, line, face, o.Margin*2, y, o.TextColor)
	}
}

func debugLines(data *components.SimulationData, method components.InputMethod) []string {
	b := data.Sim.Body()
	in := data.Sim.Input()
	return []string{
		fmt.Sprintf("pos  %8.2f %8.2f", b.Position.X, b.Position.Y),
		fmt.Sprintf("vel  %8.2f %8.2f", b.Velocity.X, b.Velocity.Y),
		fmt.Sprintf("acc  %8.2f %8.2f", b.Acceleration.X, b.Acceleration.Y),
		fmt.Sprintf("held %s", heldString(in.Up, in.Down, in.Left, in.Right)),
		fmt.Sprintf("tick %d  tps %.0f  %s", data.Ticks, ebiten.ActualTPS(), method),
	}
}

func heldString(up, down, left, right bool) string {
	flag := func(on bool, c byte) byte {
		if on {
			return c
		}
		return '.'
	}
	return string([]byte{flag(up, 'U'), flag(down, 'D'), flag(left, 'L'), flag(right, 'R')})
}

// GetOrCreateDebug returns the singleton Debug component, creating if needed.
func GetOrCreateDebug(ecs *ecs.ECS) *components.DebugData {
	if _, ok := components.Debug.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Debug))
		components.Debug.SetValue(ent, components.DebugData{Visible: cfg.Debug.Overlay})
	}

	ent, _ := components.Debug.First(ecs.World)
	return components.Debug.Get(ent)
}
