package sim

// Direction is one of the four movement controls.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

var directionNames = map[Direction]string{
	DirectionUp:    "up",
	DirectionDown:  "down",
	DirectionLeft:  "left",
	DirectionRight: "right",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "none"
}

// InputState records which directional controls are currently held.
// It is only mutated by Press/Release and only read by the physics step.
type InputState struct {
	Up, Down, Left, Right bool
}

// Press marks d as held. Unknown directions are ignored.
func (in *InputState) Press(d Direction) {
	in.set(d, true)
}

// Release marks d as no longer held. Unknown directions are ignored.
func (in *InputState) Release(d Direction) {
	in.set(d, false)
}

// Held reports whether d is currently held.
func (in InputState) Held(d Direction) bool {
	switch d {
	case DirectionUp:
		return in.Up
	case DirectionDown:
		return in.Down
	case DirectionLeft:
		return in.Left
	case DirectionRight:
		return in.Right
	}
	return false
}

func (in *InputState) set(d Direction, held bool) {
	switch d {
	case DirectionUp:
		in.Up = held
	case DirectionDown:
		in.Down = held
	case DirectionLeft:
		in.Left = held
	case DirectionRight:
		in.Right = held
	}
}
