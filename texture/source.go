package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/tilepaint/assets"
)

var errOutsideDir = errors.New("texture: file outside directory")

// Source opens texture resources by their configured path.
type Source interface {
	Open(path string) (io.ReadCloser, error)
}

// FSSource reads textures from a file system, such as the embedded tiles.
type FSSource struct {
	FS fs.FS
}

func (s FSSource) Open(path string) (io.ReadCloser, error) {
	return s.FS.Open(assets.CleanPath(path))
}

// DirSource reads textures from a directory on disk.
type DirSource struct {
	Dir string
}

func (s DirSource) Open(path string) (io.ReadCloser, error) {
	return os.Open(s.Path(path))
}

// Path returns the on-disk location of a texture path.
func (s DirSource) Path(path string) string {
	return filepath.Join(s.Dir, filepath.FromSlash(assets.CleanPath(path)))
}

// Rel maps a file inside Dir, as reported by the file system, back to the
// slash-separated texture path used in the pool.
func (s DirSource) Rel(file string) (string, error) {
	dir, err := filepath.Abs(s.Dir)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(file)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(dir, abs)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", errOutsideDir, file)
	}
	return filepath.ToSlash(rel), nil
}

func decode(src Source, path string) (image.Image, error) {
	f, err := src.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	// Read fully first so a half-written file fails as a decode error rather than a short read.
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}
