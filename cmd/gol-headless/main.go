package main

import (
	"crypto/md5"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gol-gpu/internal/app"
	"gol-gpu/internal/core"
	"gol-gpu/internal/gol"
	"gol-gpu/internal/render"
)

type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return err
		}
		*l = append(*l, v)
	}
	return nil
}

type runResult struct {
	workers    int
	frames     int
	generation uint64
	population int
	elapsed    time.Duration
	hash       string
}

func main() {
	cfg := app.NewConfig()
	fs := flag.CommandLine
	cfg.Bind(fs)
	ticks := fs.Int("ticks", 600, "host clock ticks to simulate per run")
	refresh := fs.Duration("refresh", time.Second/60, "simulated display refresh period")
	var workerRuns intList
	fs.Var(&workerRuns, "runs", "worker counts to compare, comma separated (repeatable)")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)
	render.SetLogger(log)

	if cfg.ConfigPath != "" {
		if err := cfg.Load(cfg.ConfigPath, fs); err != nil {
			log.Error("load config", "error", err)
			os.Exit(2)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	if len(workerRuns) == 0 {
		workerRuns = intList{cfg.Workers}
	}

	var results []runResult
	for _, workers := range workerRuns {
		res, err := run(cfg, workers, *ticks, *refresh)
		if err != nil {
			log.Error("run failed", "workers", workers, "error", err)
			os.Exit(1)
		}
		results = append(results, res)
		fmt.Printf("workers=%d frames=%d generation=%d population=%d elapsed=%s gen/s=%.1f hash=%s\n",
			res.workers, res.frames, res.generation, res.population, res.elapsed.Round(time.Microsecond),
			float64(res.generation)/res.elapsed.Seconds(), res.hash)
	}

	for _, res := range results[1:] {
		if res.hash != results[0].hash {
			log.Error("runs diverged", "workers", res.workers, "hash", res.hash, "want", results[0].hash)
			os.Exit(1)
		}
	}
}

// run drives one simulation through the frame pacer with synthetic host
// timestamps spaced by refresh.
func run(cfg *app.Config, workers, ticks int, refresh time.Duration) (runResult, error) {
	w, h := cfg.SurfaceSize()
	ctx, err := render.NewMemoryContext(w, h)
	if err != nil {
		return runResult{}, err
	}
	gcfg := cfg.GOLConfig()
	gcfg.Workers = workers
	sim, err := gol.NewWithConfig(ctx, gcfg)
	if err != nil {
		return runResult{}, err
	}
	defer sim.Close()

	pacer, err := core.NewFramePacer(cfg.Interval, sim)
	if err != nil {
		return runResult{}, err
	}

	start := time.Now()
	frames := 0
	for i := 0; i < ticks; i++ {
		if pacer.Tick(time.Duration(i) * refresh) {
			frames++
		}
	}
	elapsed := time.Since(start)

	return runResult{
		workers:    workers,
		frames:     frames,
		generation: sim.Generation(),
		population: sim.Population(),
		elapsed:    elapsed,
		hash:       fmt.Sprintf("%x", md5.Sum(sim.Grid().Cells())),
	}, nil
}
