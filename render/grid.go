package render

import (
	"image"

	"github.com/milk9111/tilepaint/grid"
)

// GridRenderer draws the whole tile map onto a surface. Cell (col, row)
// covers the rectangle starting at (col*cellWidth, row*cellHeight).
type GridRenderer struct {
	surface  Surface
	grid     *grid.Grid
	textures Textures
}

func NewGridRenderer(surface Surface, g *grid.Grid, textures Textures) *GridRenderer {
	return &GridRenderer{surface: surface, grid: g, textures: textures}
}

// CellRect returns the surface rectangle of cell (col, row).
func (r *GridRenderer) CellRect(col, row int) image.Rectangle {
	b := r.surface.Bounds()
	n := r.grid.Size()
	x0, x1 := span(col, n, b.Dx())
	y0, y1 := span(row, n, b.Dy())
	return image.Rect(x0, y0, x1, y1).Add(b.Min)
}

// CellAt maps a surface-local pixel to its cell. Pixels outside the surface
// report false.
func (r *GridRenderer) CellAt(x, y int) (col, row int, ok bool) {
	b := r.surface.Bounds()
	n := r.grid.Size()
	col, okX := slotAt(x, n, b.Dx())
	row, okY := slotAt(y, n, b.Dy())
	if !okX || !okY {
		return 0, 0, false
	}
	return col, row, true
}

// Redraw clears the surface and draws every cell from the grid.
func (r *GridRenderer) Redraw() {
	r.surface.Clear()
	r.grid.Each(func(col, row, index int) {
		r.surface.DrawTexture(r.textures, index, r.CellRect(col, row))
	})
}
