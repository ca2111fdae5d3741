package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// baseColors are the default palette: grass, dirt, stone, water, sand, wood, brick, snow.
var baseColors = []color.RGBA{
	{0x3c, 0x8d, 0x2f, 0xff},
	{0x8b, 0x5a, 0x2b, 0xff},
	{0x9e, 0x9e, 0x9e, 0xff},
	{0x2e, 0x6f, 0xd8, 0xff},
	{0xe0, 0xc8, 0x6e, 0xff},
	{0x5b, 0x3a, 0x1e, 0xff},
	{0xc0, 0x39, 0x2b, 0xff},
	{0xf0, 0xf0, 0xf0, 0xff},
}

// tile draws a size×size tile in base with a darker 4px checker accent.
func tile(size int, base color.RGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	dark := color.NRGBA{R: uint8(int(base.R) * 7 / 8), G: uint8(int(base.G) * 7 / 8), B: uint8(int(base.B) * 7 / 8), A: 0xff}
	light := color.NRGBA{R: base.R, G: base.G, B: base.B, A: 0xff}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/4+y/4)%2 == 1 {
				img.SetNRGBA(x, y, dark)
			} else {
				img.SetNRGBA(x, y, light)
			}
		}
	}
	return img
}

func writeTile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func main() {
	out := flag.String("out", filepath.Join("assets", "tiles"), "output directory")
	size := flag.Int("size", 16, "tile edge in pixels")
	flag.Parse()

	log := logrus.WithField("component", "tilegen")
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.WithError(err).Fatal("create output directory")
	}
	for i, c := range baseColors {
		path := filepath.Join(*out, fmt.Sprintf("tile%d.png", i+1))
		if err := writeTile(path, tile(*size, c)); err != nil {
			log.WithError(err).WithField("path", path).Fatal("write tile")
		}
		log.WithField("path", path).Info("wrote tile")
	}
}
