package tags

import "github.com/yohamta/donburi"

var (
	Simulation = donburi.NewTag().SetName("Simulation")
)
