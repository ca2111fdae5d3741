package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

type cachedImage struct {
	generation int
	img        *ebiten.Image
}

// Registry caches GPU copies of decoded textures by palette index. A cached
// copy is replaced when the texture's generation changes.
type Registry struct {
	images map[int]cachedImage
}

func NewRegistry() *Registry {
	return &Registry{images: map[int]cachedImage{}}
}

// Image returns the ebiten image for texture index, or nil while it is not loaded.
func (r *Registry) Image(t Textures, index int) *ebiten.Image {
	src := t.Image(index)
	if src == nil {
		return nil
	}
	gen := t.Generation(index)
	if c, ok := r.images[index]; ok && c.generation == gen {
		return c.img
	}
	img, ok := src.(*ebiten.Image)
	if !ok {
		img = ebiten.NewImageFromImage(src)
	}
	if old, ok := r.images[index]; ok && old.img != img {
		old.img.Deallocate()
	}
	r.images[index] = cachedImage{generation: gen, img: img}
	return img
}

// imageSize reports the source size of a texture, used for scaling.
func imageSize(img image.Image) (int, int) {
	b := img.Bounds()
	return b.Dx(), b.Dy()
}
