package assets

import (
	"embed"
	"io/fs"
	"path/filepath"
	"strings"
)

//go:embed tiles/*.png
var assetsFS embed.FS

// DefaultTextures is the built-in palette, in palette order.
var DefaultTextures = []string{
	"tile1.png",
	"tile2.png",
	"tile3.png",
	"tile4.png",
	"tile5.png",
	"tile6.png",
	"tile7.png",
	"tile8.png",
}

// Tiles returns the embedded tile images rooted at the tiles/ directory.
func Tiles() fs.FS {
	sub, err := fs.Sub(assetsFS, "tiles")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}

// CleanPath turns a resource path such as "/tile1.png", "assets/tiles/tile1.png"
// or an absolute path into a tiles-relative slash path.
func CleanPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) {
		if idx := strings.LastIndex(s, "/assets/tiles/"); idx >= 0 {
			return s[idx+len("/assets/tiles/"):]
		}
		return filepath.Base(path)
	}
	s = strings.TrimPrefix(s, "/")
	s = strings.TrimPrefix(s, "assets/")
	s = strings.TrimPrefix(s, "tiles/")
	return s
}
