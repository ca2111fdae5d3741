package input

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Snapshot is the input state of one tick in window coordinates.
type Snapshot struct {
	X, Y         int
	Pressed      bool
	JustPressed  bool
	JustReleased bool
	// Digit is the 0-based digit key pressed this tick, or -1.
	Digit int
}

// Poll reads the current ebiten input state.
func Poll() Snapshot {
	x, y := ebiten.CursorPosition()
	s := Snapshot{
		X:            x,
		Y:            y,
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Digit:        -1,
	}
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			s.Digit = i
			break
		}
	}
	return s
}

// Pointer routes window-level input to the controller using the window
// rectangles of the grid and palette surfaces.
type Pointer struct {
	Grid    image.Rectangle
	Palette image.Rectangle

	lastX, lastY int
}

// Feed applies one tick of input. Releases end drawing anywhere in the
// window; moves are reported in grid-local coordinates even outside the grid.
func (p *Pointer) Feed(c *Controller, s Snapshot) {
	pt := image.Pt(s.X, s.Y)
	moved := s.X != p.lastX || s.Y != p.lastY
	p.lastX, p.lastY = s.X, s.Y

	switch {
	case s.JustPressed && pt.In(p.Grid):
		c.PressGrid(s.X-p.Grid.Min.X, s.Y-p.Grid.Min.Y)
	case s.JustPressed && pt.In(p.Palette):
		c.ClickPalette(s.Y - p.Palette.Min.Y)
	case s.Pressed && moved:
		c.MoveGrid(s.X-p.Grid.Min.X, s.Y-p.Grid.Min.Y)
	}

	if s.JustReleased {
		c.Release()
	}
	if s.Digit >= 0 {
		c.Select(s.Digit)
	}
}
