package render

import (
	"image/color"
	"testing"

	"github.com/pkg/errors"

	"gol-gpu/internal/core"
)

// recordingStepper flips cell (0,0) on every step and logs what the context
// had seen when the step ran.
type recordingStepper struct {
	ctx   *MemoryContext
	calls []int
}

func (s *recordingStepper) Step(g *core.GridBuffer) {
	s.calls = append(s.calls, s.ctx.Uploads())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			alive := g.Get(x, y)
			if x == 0 && y == 0 {
				alive = !alive
			}
			g.WriteScratch(x, y, alive)
		}
	}
	g.Commit()
}

func newTestRasterizer(t *testing.T, sw, sh, px int) (*Rasterizer, *MemoryContext, *core.GridBuffer, *recordingStepper) {
	t.Helper()
	ctx, err := NewMemoryContext(sw, sh)
	if err != nil {
		t.Fatal(err)
	}
	grid, err := core.NewGridBuffer(sw/px, sh/px)
	if err != nil {
		t.Fatal(err)
	}
	step := &recordingStepper{ctx: ctx}
	r, err := NewRasterizer(ctx, grid, step, px)
	if err != nil {
		t.Fatal(err)
	}
	return r, ctx, grid, step
}

func TestDrawStepsUploadsAndDrawsOnce(t *testing.T) {
	r, ctx, _, step := newTestRasterizer(t, 16, 12, 4)
	for i := 1; i <= 3; i++ {
		r.Draw()
		if ctx.Uploads() != i || ctx.DrawCalls() != i {
			t.Fatalf("after %d draws: uploads=%d drawCalls=%d", i, ctx.Uploads(), ctx.DrawCalls())
		}
		// The step for frame i ran before frame i uploaded.
		if step.calls[i-1] != i-1 {
			t.Fatalf("step %d ran after %d uploads, want %d", i, step.calls[i-1], i-1)
		}
	}
	if r.Frames() != 3 {
		t.Fatalf("Frames() = %d, want 3", r.Frames())
	}
	if ctx.Textures() != 1 {
		t.Fatalf("textures = %d, want a single reused texture", ctx.Textures())
	}
}

func TestDrawMapsCellsToPixelBlocks(t *testing.T) {
	const px = 3
	r, ctx, grid, _ := newTestRasterizer(t, 20, 10, px)
	alive := color.RGBA{R: 0, G: 255, B: 0, A: 255}
	dead := color.RGBA{R: 40, G: 0, B: 0, A: 255}
	r.SetColors(alive, dead)
	grid.Set(2, 1, true)

	r.Draw() // toggles (0,0) on

	surface := ctx.Surface()
	for y := 0; y < grid.Height()*px; y++ {
		for x := 0; x < grid.Width()*px; x++ {
			want := dead
			if grid.Get(x/px, y/px) {
				want = alive
			}
			if got := surface.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
	// 20/3 leaves a two pixel margin that is never drawn.
	if got := surface.RGBAAt(19, 0); got != (color.RGBA{}) {
		t.Fatalf("margin pixel = %v, want untouched", got)
	}
}

func TestPresentDoesNotStep(t *testing.T) {
	r, ctx, grid, step := newTestRasterizer(t, 8, 8, 2)
	r.Draw()
	gen := grid.Generation()
	r.Present()
	if grid.Generation() != gen || len(step.calls) != 1 {
		t.Fatal("Present advanced the simulation")
	}
	if ctx.Uploads() != 1 || ctx.DrawCalls() != 2 {
		t.Fatalf("uploads=%d drawCalls=%d, want 1 and 2", ctx.Uploads(), ctx.DrawCalls())
	}
}

func TestNewRasterizerFailsFast(t *testing.T) {
	ctx, _ := NewMemoryContext(8, 8)
	grid, _ := core.NewGridBuffer(4, 4)
	step := &recordingStepper{ctx: ctx}

	if _, err := NewRasterizer(ctx, grid, step, 0); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Fatalf("px=0 err=%v, want ErrInvalidConfiguration", err)
	}

	ctx.FailAllocations(true)
	r, err := NewRasterizer(ctx, grid, step, 2)
	if !errors.Is(err, core.ErrContextUnavailable) {
		t.Fatalf("lost context err=%v, want ErrContextUnavailable", err)
	}
	if !errors.Is(err, ErrAllocationRefused) {
		t.Fatalf("lost context err=%v, want the backend cause preserved", err)
	}
	if r != nil {
		t.Fatal("partial rasterizer returned on failure")
	}

	ctx.FailAllocations(false)
	if _, err := NewRasterizer(ctx, grid, step, 3); !errors.Is(err, core.ErrContextUnavailable) {
		t.Fatalf("oversized texture err=%v, want ErrContextUnavailable", err)
	}
}

func TestCloseDisposesTexture(t *testing.T) {
	r, ctx, _, _ := newTestRasterizer(t, 8, 8, 2)
	r.Close()
	r.Close()
	if ctx.Textures() != 0 {
		t.Fatalf("textures = %d after Close", ctx.Textures())
	}
}
