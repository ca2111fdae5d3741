package texture

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/milk9111/tilepaint/assets"
	"github.com/sirupsen/logrus"
)

var (
	ErrNotReady   = errors.New("texture: not ready")
	ErrOutOfRange = errors.New("texture: index out of range")
	ErrStarted    = errors.New("texture: load already started")
)

// State is the load state of a single texture slot.
type State int

const (
	StatePending State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Texture is one slot of the pool. Index is fixed by the order of the path list.
type Texture struct {
	Index int
	Path  string
	State State
	Image image.Image
	// Generation increases every time a new image is stored in the slot.
	Generation int
}

type loadResult struct {
	index  int
	img    image.Image
	err    error
	reload bool
}

// Pool loads an ordered list of textures in the background and hands the
// results to the caller's loop through Poll.
type Pool struct {
	src      Source
	textures []Texture
	results  chan loadResult
	ctx      context.Context

	loaded     int
	started    bool
	readyFired bool
	onReady    func()
	onReload   func(index int)
	err        error

	log *logrus.Entry
}

// NewPool creates a pool with one pending slot per path.
func NewPool(src Source, paths []string, log *logrus.Entry) *Pool {
	if log == nil {
		log = logrus.WithField("component", "texture")
	}
	textures := make([]Texture, len(paths))
	for i, p := range paths {
		textures[i] = Texture{Index: i, Path: p}
	}
	return &Pool{
		src:      src,
		textures: textures,
		results:  make(chan loadResult, 2*len(paths)+1),
		log:      log,
	}
}

// Len returns the number of texture slots.
func (p *Pool) Len() int { return len(p.textures) }

// Loaded returns how many slots finished their initial load.
func (p *Pool) Loaded() int { return p.loaded }

// Ready reports whether every texture finished its initial load.
func (p *Pool) Ready() bool { return p.readyFired }

// Err returns the first initial-load failure, if any.
func (p *Pool) Err() error { return p.err }

// Texture returns a copy of slot i.
func (p *Pool) Texture(i int) (Texture, bool) {
	if i < 0 || i >= len(p.textures) {
		return Texture{}, false
	}
	return p.textures[i], true
}

// Image returns the decoded image of slot i, or nil while it is not ready.
func (p *Pool) Image(i int) image.Image {
	if i < 0 || i >= len(p.textures) {
		return nil
	}
	return p.textures[i].Image
}

// Generation returns the reload counter of slot i.
func (p *Pool) Generation(i int) int {
	if i < 0 || i >= len(p.textures) {
		return 0
	}
	return p.textures[i].Generation
}

// Index returns the slot whose path names the same resource as path.
func (p *Pool) Index(path string) (int, bool) {
	clean := assets.CleanPath(path)
	for i := range p.textures {
		if assets.CleanPath(p.textures[i].Path) == clean {
			return i, true
		}
	}
	return -1, false
}

// OnReload registers fn to run from Poll after a reloaded slot is stored.
func (p *Pool) OnReload(fn func(index int)) {
	p.onReload = fn
}

// Load starts decoding every texture. onReady runs exactly once, from Poll,
// after the last texture is stored. A failed texture never becomes ready, so
// onReady does not run and Err reports the failure.
func (p *Pool) Load(ctx context.Context, onReady func()) error {
	if p.started {
		return ErrStarted
	}
	p.started = true
	p.ctx = ctx
	p.onReady = onReady
	for i := range p.textures {
		p.start(i, false)
	}
	p.log.WithField("count", len(p.textures)).Debug("loading textures")
	return nil
}

// Reload decodes slot i again. The new image replaces the old one from Poll.
func (p *Pool) Reload(i int) error {
	if i < 0 || i >= len(p.textures) {
		return ErrOutOfRange
	}
	if p.textures[i].State != StateReady {
		return ErrNotReady
	}
	p.start(i, true)
	return nil
}

func (p *Pool) start(i int, reload bool) {
	ctx := p.ctx
	path := p.textures[i].Path
	go func() {
		img, err := decode(p.src, path)
		select {
		case p.results <- loadResult{index: i, img: img, err: err, reload: reload}:
		case <-ctx.Done():
		}
	}()
}

// Poll stores every finished load. It never blocks and returns Err.
func (p *Pool) Poll() error {
	for {
		if p.ctx != nil && p.ctx.Err() != nil {
			return p.err
		}
		select {
		case r := <-p.results:
			p.apply(r)
		default:
			p.fireReady()
			return p.err
		}
	}
}

func (p *Pool) fireReady() {
	if !p.started || p.readyFired || p.loaded != len(p.textures) {
		return
	}
	p.readyFired = true
	p.log.Info("all textures ready")
	if p.onReady != nil {
		p.onReady()
	}
}

func (p *Pool) apply(r loadResult) {
	t := &p.textures[r.index]
	entry := p.log.WithFields(logrus.Fields{"index": r.index, "path": t.Path})

	if r.err != nil {
		if r.reload {
			// Keep serving the previous image; editors often write files in several steps.
			entry.WithError(r.err).Warn("texture reload failed")
			return
		}
		t.State = StateFailed
		if p.err == nil {
			p.err = fmt.Errorf("texture: load %s: %w", t.Path, r.err)
		}
		entry.WithError(r.err).Error("texture load failed")
		return
	}

	t.Image = r.img
	t.Generation++
	if r.reload {
		entry.Info("texture reloaded")
		if p.onReload != nil {
			p.onReload(r.index)
		}
		return
	}

	t.State = StateReady
	p.loaded++
	entry.Debug("texture loaded")
}
