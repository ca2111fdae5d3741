package render

import "image"

// PaletteRenderer stacks one swatch per texture down the surface.
type PaletteRenderer struct {
	surface  Surface
	textures Textures
}

func NewPaletteRenderer(surface Surface, textures Textures) *PaletteRenderer {
	return &PaletteRenderer{surface: surface, textures: textures}
}

// SwatchRect returns the full-width band of swatch i.
func (r *PaletteRenderer) SwatchRect(i int) image.Rectangle {
	b := r.surface.Bounds()
	n := r.textures.Len()
	if n == 0 {
		return image.Rectangle{}
	}
	y0, y1 := span(i, n, b.Dy())
	return image.Rect(0, y0, b.Dx(), y1).Add(b.Min)
}

// SwatchAt returns the swatch under surface-local y.
func (r *PaletteRenderer) SwatchAt(y int) (int, bool) {
	return slotAt(y, r.textures.Len(), r.surface.Bounds().Dy())
}

// Draw paints every swatch scaled to its band.
func (r *PaletteRenderer) Draw() {
	r.surface.Clear()
	for i := 0; i < r.textures.Len(); i++ {
		r.surface.DrawTexture(r.textures, i, r.SwatchRect(i))
	}
}
