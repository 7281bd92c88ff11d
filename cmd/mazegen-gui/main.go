// Package main is the entry point for the windowed maze browser.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/samdwyer/mazegen/internal/gui"
	"github.com/samdwyer/mazegen/internal/logger"
	"github.com/samdwyer/mazegen/internal/palette"
	"github.com/samdwyer/mazegen/internal/telemetry"
	"github.com/samdwyer/mazegen/internal/world"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

// run returns the process exit code once the window closes, after the log
// file and span exporter have been flushed.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("mazegen-gui", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		level    int
		tileSize int
	)
	fs.IntVar(&level, "level", 0, "Level index to open (wraps modulo 2^32)")
	fs.IntVar(&tileSize, "tile", gui.DefaultTileSize, "Tile size in pixels")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	closer, err := logger.Init(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	}
	defer closer.Close()

	if settings := telemetry.SettingsFromEnv(os.LookupEnv); settings.Enabled() {
		shutdown, err := telemetry.Setup(ctx, settings)
		if err != nil {
			logger.Log.WithError(err).Warn("telemetry setup failed, running without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Log.WithError(err).Error("error shutting down telemetry")
				}
			}()
		}
	}

	cfg, err := world.ConfigFromEnv(os.LookupEnv)
	if err != nil {
		logger.Log.WithError(err).Error("invalid configuration")
		return 2
	}

	window, err := gui.New(ctx, palette.MustLoadDefault(), cfg, uint32(level), tileSize)
	if err != nil {
		logger.Log.WithError(err).Error("failed to initialize maze")
		return 1
	}

	w, h := window.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Fast dungeon/maze generator")
	if err := ebiten.RunGame(window); err != nil {
		logger.Log.WithError(err).Error("window closed with error")
		return 1
	}
	return 0
}
