package gol

import (
	"slices"
	"testing"

	"github.com/pkg/errors"

	"gol-gpu/internal/core"
	"gol-gpu/internal/render"
)

func TestNewDerivesGridFromSurface(t *testing.T) {
	ctx, _ := render.NewMemoryContext(103, 61)
	g, err := New(ctx, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()
	if s := g.Size(); s.W != 25 || s.H != 15 {
		t.Fatalf("grid = %dx%d, want 25x15", s.W, s.H)
	}
	if ctx.Uploads() != 1 || ctx.DrawCalls() != 0 {
		t.Fatalf("construction should upload the seed once without drawing, got uploads=%d draws=%d", ctx.Uploads(), ctx.DrawCalls())
	}
}

func TestNewRejectsBadConfiguration(t *testing.T) {
	ctx, _ := render.NewMemoryContext(16, 16)
	for _, px := range []int{0, -3} {
		if g, err := New(ctx, px); !errors.Is(err, core.ErrInvalidConfiguration) || g != nil {
			t.Fatalf("New(px=%d) = %v, %v; want ErrInvalidConfiguration", px, g, err)
		}
	}
	// A pixel size larger than the surface leaves a zero-sized grid.
	if _, err := New(ctx, 32); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Fatalf("oversized pixel err=%v, want ErrInvalidConfiguration", err)
	}
	if _, err := New(nil, 4); !errors.Is(err, core.ErrContextUnavailable) {
		t.Fatalf("nil context err=%v, want ErrContextUnavailable", err)
	}
}

func TestNewPropagatesContextLoss(t *testing.T) {
	ctx, _ := render.NewMemoryContext(16, 16)
	ctx.FailAllocations(true)
	g, err := New(ctx, 4)
	if !errors.Is(err, core.ErrContextUnavailable) || g != nil {
		t.Fatalf("New on lost context = %v, %v", g, err)
	}
}

func TestZeroDensityStartsEmpty(t *testing.T) {
	ctx, _ := render.NewMemoryContext(40, 40)
	cfg := DefaultConfig()
	cfg.Density = 0
	g, err := NewWithConfig(ctx, cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()
	if g.Population() != 0 {
		t.Fatalf("population = %d with density 0, want 0", g.Population())
	}
	g.Reseed(11)
	if g.Population() != 0 {
		t.Fatalf("population = %d after reseed with density 0, want 0", g.Population())
	}
}

func TestNewDefault(t *testing.T) {
	g, err := NewDefault()
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()
	if s := g.Size(); s.W != DefaultWidth/DefaultPixelSize || s.H != DefaultHeight/DefaultPixelSize {
		t.Fatalf("default grid = %dx%d", s.W, s.H)
	}
	g.Draw()
	if g.Generation() != 1 {
		t.Fatalf("generation = %d after one draw", g.Generation())
	}
}

func TestDrawIsDeterministicForSeed(t *testing.T) {
	run := func(workers int) []uint8 {
		ctx, _ := render.NewMemoryContext(120, 80)
		cfg := DefaultConfig()
		cfg.PixelSize = 2
		cfg.Seed = 5
		cfg.Workers = workers
		g, err := NewWithConfig(ctx, cfg)
		if err != nil {
			t.Fatal(err)
		}
		defer g.Close()
		for i := 0; i < 30; i++ {
			g.Draw()
		}
		return slices.Clone(ctx.Surface().Pix)
	}
	want := run(1)
	if got := run(1); !slices.Equal(got, want) {
		t.Fatal("repeated runs rendered different frames")
	}
	if got := run(4); !slices.Equal(got, want) {
		t.Fatal("parallel run rendered a different frame")
	}
}

func TestReseedUploadsWithoutStepping(t *testing.T) {
	ctx, _ := render.NewMemoryContext(40, 40)
	g, _ := New(ctx, 4)
	g.Draw()
	before := slices.Clone(g.Grid().Cells())
	g.Reseed(1234)
	if g.Generation() != 1 {
		t.Fatalf("Reseed changed generation to %d", g.Generation())
	}
	if slices.Equal(before, g.Grid().Cells()) {
		t.Fatal("Reseed kept the old generation")
	}
	if ctx.Uploads() != 3 {
		t.Fatalf("uploads = %d, want 3", ctx.Uploads())
	}
}
