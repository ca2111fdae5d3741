package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenSurface draws into an offscreen ebiten image.
type EbitenSurface struct {
	Image    *ebiten.Image
	registry *Registry
}

func NewEbitenSurface(w, h int, registry *Registry) *EbitenSurface {
	if registry == nil {
		registry = NewRegistry()
	}
	return &EbitenSurface{Image: ebiten.NewImage(w, h), registry: registry}
}

func (s *EbitenSurface) Bounds() image.Rectangle { return s.Image.Bounds() }

func (s *EbitenSurface) Clear() { s.Image.Clear() }

func (s *EbitenSurface) DrawTexture(t Textures, index int, dst image.Rectangle) {
	img := s.registry.Image(t, index)
	if img == nil || dst.Empty() {
		return
	}
	sw, sh := imageSize(img)
	if sw == 0 || sh == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.Dx())/float64(sw), float64(dst.Dy())/float64(sh))
	op.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	s.Image.DrawImage(img, op)
}
