package sim

import "strings"

// Kind identifies the kind of an Event.
type Kind int

const (
	KindRender Kind = iota
	KindUpdate
	KindPress
	KindRelease
)

// Event is anything delivered by an EventSource.
type Event interface {
	Kind() Kind
}

// Viewport describes the drawable area for a render tick.
type Viewport struct {
	Width, Height int
}

// RenderTick asks for a frame to be drawn.
type RenderTick struct {
	Viewport Viewport
}

// UpdateTick asks for the physics to advance by DT seconds.
type UpdateTick struct {
	DT float64
}

// Press reports a button going down.
type Press struct {
	Button Button
}

// Release reports a button going up.
type Release struct {
	Button Button
}

func (RenderTick) Kind() Kind { return KindRender }
func (UpdateTick) Kind() Kind { return KindUpdate }
func (Press) Kind() Kind      { return KindPress }
func (Release) Kind() Kind    { return KindRelease }

// Button is a backend-independent control code. Backends map their own key
// codes onto these; anything they cannot map becomes ButtonUnknown.
type Button int

const (
	ButtonUnknown Button = iota
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonQuit
)

var buttonNames = map[Button]string{
	ButtonUp:    "up",
	ButtonDown:  "down",
	ButtonLeft:  "left",
	ButtonRight: "right",
	ButtonQuit:  "quit",
}

func (b Button) String() string {
	if name, ok := buttonNames[b]; ok {
		return name
	}
	return "unknown"
}

// ParseButton maps a name such as "up" or "quit" to its Button.
// Unrecognised names return ButtonUnknown.
func ParseButton(name string) Button {
	name = strings.ToLower(strings.TrimSpace(name))
	for b, n := range buttonNames {
		if n == name {
			return b
		}
	}
	return ButtonUnknown
}

// Direction returns the movement direction b controls, if any.
func (b Button) Direction() (Direction, bool) {
	switch b {
	case ButtonUp:
		return DirectionUp, true
	case ButtonDown:
		return DirectionDown, true
	case ButtonLeft:
		return DirectionLeft, true
	case ButtonRight:
		return DirectionRight, true
	}
	return DirectionNone, false
}
