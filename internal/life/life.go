// Package life implements the Conway B3/S23 step over a toroidal grid.
package life

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"gol-gpu/internal/core"
)

// Rule applies Conway's rule: a live cell survives with 2 or 3 neighbors and
// a dead cell is born with exactly 3.
func Rule(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

// Engine computes generations. With more than one worker the rows are split
// into bands stepped concurrently; all bands finish before the commit.
type Engine struct {
	workers int
}

// New returns an Engine using the given number of workers. Values below one
// select runtime.NumCPU().
func New(workers int) *Engine {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Engine{workers: workers}
}

// Workers reports the configured band count.
func (e *Engine) Workers() int { return e.workers }

// Step writes the next generation of g into its scratch buffer and commits it.
func (e *Engine) Step(g *core.GridBuffer) {
	h := g.Height()
	workers := min(e.workers, h)
	if workers <= 1 {
		stepRows(g, 0, h)
		g.Commit()
		return
	}

	var eg errgroup.Group
	rowsPerWorker := (h + workers - 1) / workers
	for i := 0; i < workers; i++ {
		start := i * rowsPerWorker
		end := min(start+rowsPerWorker, h)
		if start >= end {
			break
		}
		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = bandPanic(r)
				}
			}()
			stepRows(g, start, end)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		panic(err)
	}
	g.Commit()
}

// stepRows computes rows [y0, y1) reading only the current generation.
func stepRows(g *core.GridBuffer, y0, y1 int) {
	w, h := g.Width(), g.Height()
	cur := g.Cells()
	for y := y0; y < y1; y++ {
		up := ((y - 1 + h) % h) * w
		row := y * w
		down := ((y + 1) % h) * w
		for x := 0; x < w; x++ {
			left := (x - 1 + w) % w
			right := (x + 1) % w
			neighbors := int(cur[up+left]) + int(cur[up+x]) + int(cur[up+right]) +
				int(cur[row+left]) + int(cur[row+right]) +
				int(cur[down+left]) + int(cur[down+x]) + int(cur[down+right])
			g.WriteScratch(x, y, Rule(cur[row+x] != core.Dead, neighbors))
		}
	}
}

func bandPanic(r any) error {
	if err, ok := r.(error); ok {
		return errors.WithStack(err)
	}
	return errors.New(fmt.Sprint(r))
}
