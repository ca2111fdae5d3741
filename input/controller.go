package input

import "github.com/sirupsen/logrus"

// Painter stores texture indices in cells.
type Painter interface {
	PaintCell(col, row, index int) bool
}

// CellMapper maps grid-surface pixels to cells.
type CellMapper interface {
	CellAt(x, y int) (col, row int, ok bool)
}

// SwatchMapper maps palette-surface rows to texture indices.
type SwatchMapper interface {
	SwatchAt(y int) (int, bool)
}

// Controller turns pointer events into paint operations and palette
// selections. It is the only writer of the selection and the drawing flag.
type Controller struct {
	grid     Painter
	cells    CellMapper
	swatches SwatchMapper
	count    int
	redraw   func()

	selection int
	drawing   bool

	log *logrus.Entry
}

// NewController creates an idle controller with texture 0 selected. redraw
// runs after every applied paint.
func NewController(g Painter, cells CellMapper, swatches SwatchMapper, textureCount int, redraw func(), log *logrus.Entry) *Controller {
	if log == nil {
		log = logrus.WithField("component", "input")
	}
	if redraw == nil {
		redraw = func() {}
	}
	return &Controller{
		grid:     g,
		cells:    cells,
		swatches: swatches,
		count:    textureCount,
		redraw:   redraw,
		log:      log,
	}
}

// Selection returns the texture index used for painting.
func (c *Controller) Selection() int { return c.selection }

// Drawing reports whether a drag-paint is in progress.
func (c *Controller) Drawing() bool { return c.drawing }

// ClickPalette selects the swatch under palette-surface y. Clicks outside
// every swatch are ignored.
func (c *Controller) ClickPalette(y int) {
	i, ok := c.swatches.SwatchAt(y)
	if !ok {
		c.log.WithField("y", y).Debug("palette click outside swatches")
		return
	}
	c.setSelection(i)
}

// Select sets the selection directly, ignoring out-of-range indices.
func (c *Controller) Select(i int) bool {
	if i < 0 || i >= c.count {
		return false
	}
	c.setSelection(i)
	return true
}

func (c *Controller) setSelection(i int) {
	if i == c.selection {
		return
	}
	c.selection = i
	c.log.WithField("selection", i).Debug("texture selected")
}

// PressGrid starts drawing and paints the pressed cell.
func (c *Controller) PressGrid(x, y int) {
	c.drawing = true
	c.paintAt(x, y)
}

// MoveGrid paints the cell under (x, y) while drawing.
func (c *Controller) MoveGrid(x, y int) {
	if !c.drawing {
		return
	}
	c.paintAt(x, y)
}

// Release ends drawing, wherever the pointer is.
func (c *Controller) Release() {
	c.drawing = false
}

func (c *Controller) paintAt(x, y int) {
	col, row, ok := c.cells.CellAt(x, y)
	if !ok {
		return
	}
	if !c.grid.PaintCell(col, row, c.selection) {
		return
	}
	c.redraw()
}
