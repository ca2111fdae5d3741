package texture

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"testing"
	"testing/fstest"
	"time"

	"github.com/milk9111/tilepaint/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngBytes encodes a w×1 image so decoded slots can be told apart by width.
func pngBytes(t *testing.T, w int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, 1))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 0xff, A: 0xff})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// gatedSource blocks each Open until its gate is closed.
type gatedSource struct {
	data  map[string][]byte
	gates map[string]chan struct{}
}

func newGatedSource(t *testing.T, paths []string) *gatedSource {
	s := &gatedSource{data: map[string][]byte{}, gates: map[string]chan struct{}{}}
	for i, p := range paths {
		s.data[p] = pngBytes(t, i+1)
		s.gates[p] = make(chan struct{})
	}
	return s
}

func (s *gatedSource) Open(path string) (io.ReadCloser, error) {
	<-s.gates[path]
	b, ok := s.data[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func pollUntil(t *testing.T, p *Pool, cond func() bool) {
	t.Helper()
	require.Eventually(t, func() bool {
		_ = p.Poll()
		return cond()
	}, 2*time.Second, time.Millisecond)
}

func TestPoolStoresOutOfOrderLoadsByIndex(t *testing.T) {
	paths := []string{"a.png", "b.png", "c.png"}
	src := newGatedSource(t, paths)
	p := NewPool(src, paths, nil)

	fired := 0
	require.NoError(t, p.Load(context.Background(), func() { fired++ }))

	close(src.gates["c.png"])
	pollUntil(t, p, func() bool {
		tex, _ := p.Texture(2)
		return tex.State == StateReady
	})
	assert.False(t, p.Ready())
	assert.Equal(t, 0, fired)
	first, _ := p.Texture(0)
	assert.Equal(t, StatePending, first.State)

	close(src.gates["a.png"])
	close(src.gates["b.png"])
	pollUntil(t, p, p.Ready)

	// extra polls must not fire again
	_ = p.Poll()
	_ = p.Poll()
	assert.Equal(t, 1, fired)

	for i := range paths {
		img := p.Image(i)
		require.NotNil(t, img)
		assert.Equal(t, i+1, img.Bounds().Dx(), "slot %d", i)
		assert.Equal(t, 1, p.Generation(i))
	}
}

func TestPoolFailedLoadNeverFiresReady(t *testing.T) {
	fsys := fstest.MapFS{
		"tile1.png": &fstest.MapFile{Data: pngBytes(t, 2)},
		"tile2.png": &fstest.MapFile{Data: []byte("not a png")},
	}
	p := NewPool(FSSource{FS: fsys}, []string{"/tile1.png", "/tile2.png", "/missing.png"}, nil)

	fired := false
	require.NoError(t, p.Load(context.Background(), func() { fired = true }))

	pollUntil(t, p, func() bool {
		a, _ := p.Texture(0)
		b, _ := p.Texture(1)
		c, _ := p.Texture(2)
		return a.State == StateReady && b.State == StateFailed && c.State == StateFailed
	})

	assert.False(t, fired)
	assert.False(t, p.Ready())
	require.Error(t, p.Poll())
	assert.Contains(t, p.Err().Error(), "texture: load")
}

func TestPoolLoadTwice(t *testing.T) {
	p := NewPool(FSSource{FS: fstest.MapFS{}}, nil, nil)
	require.NoError(t, p.Load(context.Background(), nil))
	assert.True(t, errors.Is(p.Load(context.Background(), nil), ErrStarted))
}

func TestPoolEmptyListIsReadyOnFirstPoll(t *testing.T) {
	p := NewPool(FSSource{FS: fstest.MapFS{}}, nil, nil)
	fired := 0
	require.NoError(t, p.Load(context.Background(), func() { fired++ }))
	require.NoError(t, p.Poll())
	require.NoError(t, p.Poll())
	assert.Equal(t, 1, fired)
}

func TestPoolReload(t *testing.T) {
	fsys := fstest.MapFS{"tile1.png": &fstest.MapFile{Data: pngBytes(t, 1)}}
	p := NewPool(FSSource{FS: fsys}, []string{"tile1.png"}, nil)

	assert.ErrorIs(t, p.Reload(0), ErrNotReady)
	assert.ErrorIs(t, p.Reload(3), ErrOutOfRange)

	require.NoError(t, p.Load(context.Background(), nil))
	pollUntil(t, p, p.Ready)

	var reloaded []int
	p.OnReload(func(i int) { reloaded = append(reloaded, i) })

	fsys["tile1.png"] = &fstest.MapFile{Data: pngBytes(t, 5)}
	require.NoError(t, p.Reload(0))
	pollUntil(t, p, func() bool { return p.Generation(0) == 2 })

	assert.Equal(t, []int{0}, reloaded)
	assert.Equal(t, 5, p.Image(0).Bounds().Dx())
	assert.NoError(t, p.Err())
}

func TestPoolReloadFailureKeepsImage(t *testing.T) {
	fsys := fstest.MapFS{"tile1.png": &fstest.MapFile{Data: pngBytes(t, 3)}}
	p := NewPool(FSSource{FS: fsys}, []string{"tile1.png"}, nil)
	require.NoError(t, p.Load(context.Background(), nil))
	pollUntil(t, p, p.Ready)

	fsys["tile1.png"] = &fstest.MapFile{Data: []byte("garbage")}
	require.NoError(t, p.Reload(0))

	// the failed reload is consumed without touching the slot
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, p.Poll())
	assert.Equal(t, 1, p.Generation(0))
	assert.Equal(t, 3, p.Image(0).Bounds().Dx())
}

func TestPoolCanceledContextDropsResults(t *testing.T) {
	paths := []string{"a.png"}
	src := newGatedSource(t, paths)
	p := NewPool(src, paths, nil)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, p.Load(ctx, func() { t.Fatal("ready after cancel") }))
	cancel()
	close(src.gates["a.png"])

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, p.Poll())
	assert.False(t, p.Ready())
}

func TestPoolIndex(t *testing.T) {
	p := NewPool(nil, []string{"/tile1.png", "/tile2.png"}, nil)
	i, ok := p.Index("/srv/art/assets/tiles/tile2.png")
	require.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = p.Index("tile9.png")
	assert.False(t, ok)
}

func TestPoolLoadsEmbeddedDefaults(t *testing.T) {
	paths := make([]string, len(assets.DefaultTextures))
	for i, name := range assets.DefaultTextures {
		paths[i] = "/" + name
	}
	p := NewPool(FSSource{FS: assets.Tiles()}, paths, nil)
	require.NoError(t, p.Load(context.Background(), nil))
	pollUntil(t, p, p.Ready)

	for i := range paths {
		img := p.Image(i)
		require.NotNil(t, img, paths[i])
		assert.Equal(t, 16, img.Bounds().Dx(), paths[i])
	}
}
