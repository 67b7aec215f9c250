package core

import "github.com/pkg/errors"

const (
	// Dead is the stored value of a dead cell.
	Dead uint8 = 0
	// Alive is the stored value of a live cell.
	Alive uint8 = 1
)

// GridBuffer stores the current and scratch generations of a fixed-size grid
// in row-major order.
//
// Outside of a step the current buffer holds the authoritative generation.
// The scratch buffer is only written by a step and is never handed out for
// reading. Commit promotes scratch to current by swapping the slices.
type GridBuffer struct {
	w, h int
	cur  []uint8
	nxt  []uint8
	gen  uint64
}

// NewGridBuffer allocates both generations for a w*h grid.
func NewGridBuffer(w, h int) (*GridBuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "[NewGridBuffer] grid must be at least 1x1, got %dx%d", w, h)
	}
	return &GridBuffer{
		w:   w,
		h:   h,
		cur: make([]uint8, w*h),
		nxt: make([]uint8, w*h),
	}, nil
}

// Width returns the number of columns.
func (g *GridBuffer) Width() int { return g.w }

// Height returns the number of rows.
func (g *GridBuffer) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *GridBuffer) Size() Size { return Size{W: g.w, H: g.h} }

// Generation returns the number of commits since construction.
func (g *GridBuffer) Generation() uint64 { return g.gen }

// Cells exposes the current generation. Callers must treat it as read-only.
func (g *GridBuffer) Cells() []uint8 { return g.cur }

// Index returns the linear slice index for coordinates (x, y).
func (g *GridBuffer) Index(x, y int) int { return y*g.w + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *GridBuffer) Wrap(x, y int) (int, int) {
	x = (x%g.w + g.w) % g.w
	y = (y%g.h + g.h) % g.h
	return x, y
}

// Get reports whether the cell at (x, y) is alive in the current generation.
func (g *GridBuffer) Get(x, y int) bool {
	g.mustContain(x, y)
	return g.cur[y*g.w+x] != Dead
}

// Set writes a cell of the current generation. It is meant for seeding and
// must not be called while a step is in progress.
func (g *GridBuffer) Set(x, y int, alive bool) {
	g.mustContain(x, y)
	g.cur[y*g.w+x] = cellValue(alive)
}

// WriteScratch writes a cell of the next generation.
func (g *GridBuffer) WriteScratch(x, y int, alive bool) {
	g.mustContain(x, y)
	g.nxt[y*g.w+x] = cellValue(alive)
}

// Commit makes the scratch generation current.
func (g *GridBuffer) Commit() {
	g.cur, g.nxt = g.nxt, g.cur
	g.gen++
}

// Population counts the live cells of the current generation.
func (g *GridBuffer) Population() int {
	n := 0
	for _, c := range g.cur {
		if c != Dead {
			n++
		}
	}
	return n
}

// Clear kills every cell of the current generation.
func (g *GridBuffer) Clear() {
	for i := range g.cur {
		g.cur[i] = Dead
	}
}

func (g *GridBuffer) mustContain(x, y int) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		panic(errors.Wrapf(ErrIndexOutOfBounds, "(%d,%d) outside %dx%d", x, y, g.w, g.h))
	}
}

func cellValue(alive bool) uint8 {
	if alive {
		return Alive
	}
	return Dead
}
