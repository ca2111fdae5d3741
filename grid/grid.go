package grid

// DefaultSize is the number of cells along each side of the map.
const DefaultSize = 32

// Grid is a square tile map of texture indices, stored row-major.
type Grid struct {
	size  int
	limit int // exclusive upper bound for texture indices; 0 means unbounded
	cells []int
}

// Option configures a Grid.
type Option func(*Grid)

// WithLimit rejects paints whose texture index is outside [0, count).
func WithLimit(count int) Option {
	return func(g *Grid) {
		g.limit = count
	}
}

// New creates a size×size grid with every cell set to texture 0.
func New(size int, opts ...Option) *Grid {
	if size < 1 {
		size = 1
	}
	g := &Grid{
		size:  size,
		cells: make([]int, size*size),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Size returns the number of cells along one side.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether (col, row) addresses a cell.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.size && row < g.size
}

func (g *Grid) validIndex(index int) bool {
	if index < 0 {
		return false
	}
	return g.limit <= 0 || index < g.limit
}

// PaintCell stores index at (col, row). Writes outside the grid, or of an
// index outside the configured limit, are dropped and report false.
func (g *Grid) PaintCell(col, row, index int) bool {
	if !g.InBounds(col, row) || !g.validIndex(index) {
		return false
	}
	g.cells[row*g.size+col] = index
	return true
}

// GetCell returns the texture index at (col, row).
func (g *Grid) GetCell(col, row int) (int, bool) {
	if !g.InBounds(col, row) {
		return 0, false
	}
	return g.cells[row*g.size+col], true
}

// Fill sets every cell to index.
func (g *Grid) Fill(index int) bool {
	if !g.validIndex(index) {
		return false
	}
	for i := range g.cells {
		g.cells[i] = index
	}
	return true
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(col, row, index int)) {
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			fn(col, row, g.cells[row*g.size+col])
		}
	}
}
