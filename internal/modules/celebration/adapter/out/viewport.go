package out

// Terminal cells are treated as 8x16 pixel blocks so the pixel-based
// constants of the animation keep their proportions.
const (
	CellWidthPx  = 8
	CellHeightPx = 16
)

// Viewport tracks the visible area in pixels and fans out resize events.
type Viewport struct {
	width     int
	height    int
	listeners map[uint64]func(width, height int)
	nextID    uint64
}

func NewViewport(width, height int) *Viewport {
	return &Viewport{width: width, height: height, listeners: map[uint64]func(int, int){}}
}

func (v *Viewport) Size() (int, int) { return v.width, v.height }

// Cells is the size in terminal cells.
func (v *Viewport) Cells() (int, int) { return v.width / CellWidthPx, v.height / CellHeightPx }

func (v *Viewport) SetCells(cols, rows int) {
	v.SetSize(cols*CellWidthPx, rows*CellHeightPx)
}

func (v *Viewport) SetSize(width, height int) {
	if width == v.width && height == v.height {
		return
	}
	v.width, v.height = width, height
	for _, fn := range v.listeners {
		fn(width, height)
	}
}

func (v *Viewport) OnResize(fn func(width, height int)) func() {
	v.nextID++
	id := v.nextID
	v.listeners[id] = fn
	return func() { delete(v.listeners, id) }
}

// Listeners counts registered resize callbacks.
func (v *Viewport) Listeners() int { return len(v.listeners) }
