package sim

import "testing"

func TestInputStatePressRelease(t *testing.T) {
	directions := []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}

	for _, d := range directions {
		t.Run(d.String(), func(t *testing.T) {
			var in InputState
			in.Press(d)
			if !in.Held(d) {
				t.Fatalf("%s not held after Press", d)
			}
			for _, other := range directions {
				if other != d && in.Held(other) {
					t.Errorf("pressing %s also set %s", d, other)
				}
			}
			in.Release(d)
			if in.Held(d) {
				t.Errorf("%s still held after Release", d)
			}
		})
	}
}

func TestInputStateReleaseWithoutPress(t *testing.T) {
	in := InputState{Left: true}
	before := in

	in.Release(DirectionUp)

	if in != before {
		t.Errorf("Release of unpressed direction changed state: %+v -> %+v", before, in)
	}
}

func TestInputStateIgnoresUnknownDirection(t *testing.T) {
	var in InputState
	in.Press(DirectionNone)
	in.Press(Direction(42))
	if in != (InputState{}) {
		t.Errorf("unknown direction changed state: %+v", in)
	}
	if in.Held(Direction(42)) {
		t.Error("unknown direction reported as held")
	}
}

func TestInputStatePressIsIdempotent(t *testing.T) {
	var in InputState
	in.Press(DirectionRight)
	in.Press(DirectionRight)
	if in != (InputState{Right: true}) {
		t.Errorf("state = %+v, want only Right", in)
	}
}
