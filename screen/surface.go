// Package screen adapts an ebiten image to the simulation's drawing surface.
package screen

import (
	"image/color"

	"github.com/automoto/drift/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface draws onto whichever ebiten image was last bound. Draw calls made
// while nothing is bound are dropped.
type Surface struct {
	target *ebiten.Image
}

func New() *Surface {
	return &Surface{}
}

// Bind points the surface at img. ebiten hands out the screen image per
// frame, so this is called at the top of every draw.
func (s *Surface) Bind(img *ebiten.Image) {
	s.target = img
}

// Target returns the bound image, or nil.
func (s *Surface) Target() *ebiten.Image {
	return s.target
}

// Clear implements sim.Surface.
func (s *Surface) Clear(c color.Color) {
	if s.target == nil {
		return
	}
	s.target.Fill(c)
}

// DrawFilledRectangle implements sim.Surface.
func (s *Surface) DrawFilledRectangle(c color.Color, r sim.Rect, t sim.Transform) {
	if s.target == nil {
		return
	}
	x, y, w, h := screenRect(t.Apply(r))
	if w == 0 || h == 0 {
		return
	}
	vector.FillRect(s.target, x, y, w, h, c, false)
}

// screenRect converts a target-space rectangle to ebiten's float32 coordinates.
func screenRect(r sim.Rect) (x, y, w, h float32) {
	return float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
}
