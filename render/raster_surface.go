package render

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// RasterSurface is a CPU surface backed by an RGBA image.
type RasterSurface struct {
	RGBA *image.RGBA
}

func NewRasterSurface(w, h int) *RasterSurface {
	return &RasterSurface{RGBA: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (s *RasterSurface) Bounds() image.Rectangle { return s.RGBA.Bounds() }

func (s *RasterSurface) Clear() {
	draw.Draw(s.RGBA, s.RGBA.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (s *RasterSurface) DrawTexture(t Textures, index int, dst image.Rectangle) {
	src := t.Image(index)
	if src == nil || dst.Empty() {
		return
	}
	xdraw.NearestNeighbor.Scale(s.RGBA, dst, src, src.Bounds(), xdraw.Over, nil)
}
