//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"gol-gpu/internal/app"
	"gol-gpu/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)
	render.SetLogger(log)

	if cfg.ConfigPath != "" {
		if err := cfg.Load(cfg.ConfigPath, flag.CommandLine); err != nil {
			log.Error("load config", "error", err)
			os.Exit(2)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	game, err := app.New(cfg)
	if err != nil {
		log.Error("startup failed", "error", err)
		os.Exit(1)
	}

	w, h := cfg.SurfaceSize()
	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	err = ebiten.RunGame(game)
	// os.Exit skips deferred calls, so release GPU resources first.
	game.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("run", "error", err)
		os.Exit(1)
	}
}
