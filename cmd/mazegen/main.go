// Package main is the entry point for the terminal maze browser.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/mazegen/internal/logger"
	"github.com/samdwyer/mazegen/internal/palette"
	"github.com/samdwyer/mazegen/internal/telemetry"
	"github.com/samdwyer/mazegen/internal/ui"
	"github.com/samdwyer/mazegen/internal/viewer"
	"github.com/samdwyer/mazegen/internal/world"
)

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run does everything main does except exit, so deferred flushes of the
// log file and the span exporter always happen.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("mazegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		level int
		dump  bool
		stats bool
	)
	fs.IntVar(&level, "level", 0, "Level index to open (wraps modulo 2^32)")
	fs.BoolVar(&dump, "dump", false, "Print the level as text and exit")
	fs.BoolVar(&stats, "stats", false, "With -dump, also print generation statistics")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	// The terminal belongs to tcell in browse mode, so logs only go to LOG_FILE.
	fallback := stderr
	if !dump {
		fallback = io.Discard
	}
	closer, err := logger.Init(fallback)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	}
	defer closer.Close()

	cfg, err := world.ConfigFromEnv(os.LookupEnv)
	if err != nil {
		logger.Log.WithError(err).Error("invalid configuration")
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return exitUsage
	}

	tracer, shutdown := setupTelemetry(ctx)
	defer shutdown()

	if dump {
		if err := runDump(ctx, stdout, level, cfg, stats); err != nil {
			logger.Log.WithError(err).Error("dump failed")
			fmt.Fprintf(stderr, "Dump failed: %v\n", err)
			return exitFailed
		}
		return exitOK
	}

	screen, err := ui.NewScreen()
	if err != nil {
		logger.Log.WithError(err).Error("screen unavailable")
		fmt.Fprintf(stderr, "Failed to initialize screen: %v\n", err)
		return exitFailed
	}

	v := viewer.New(screen, palette.MustLoadDefault(), cfg, uint32(level), tracer)
	err = v.Run(ctx)
	v.Close()
	if err != nil {
		logger.Log.WithError(err).Error("viewer stopped")
		fmt.Fprintf(stderr, "Viewer error: %v\n", err)
		return exitFailed
	}
	return exitOK
}

// setupTelemetry starts tracing when a Honeycomb key is configured and
// returns the tracer the viewer should use plus a flush function.
func setupTelemetry(ctx context.Context) (trace.Tracer, func()) {
	settings := telemetry.SettingsFromEnv(os.LookupEnv)
	if !settings.Enabled() {
		return telemetry.NoopTracer(), func() {}
	}

	shutdown, err := telemetry.Setup(ctx, settings)
	if err != nil {
		logger.Log.WithError(err).Warn("telemetry setup failed, running without observability")
		return telemetry.NoopTracer(), func() {}
	}
	return telemetry.Tracer("viewer"), func() {
		if err := shutdown(ctx); err != nil {
			logger.Log.WithError(err).Error("error shutting down telemetry")
		}
	}
}

// runDump writes one level as text.
func runDump(ctx context.Context, out io.Writer, level int, cfg world.Config, withStats bool) error {
	m, err := world.Generate(ctx, level, cfg)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(out, m.String()); err != nil {
		return fmt.Errorf("failed to write maze: %w", err)
	}
	if !withStats {
		return nil
	}

	s := m.Stats()
	_, err = fmt.Fprintf(out,
		"level=%d seed=%d start=%d,%d end=%d,%d attempts=%d placed=%d corridors=%d doors=%d rejected=%d no_connection=%d\n",
		m.Level(), m.Seed(), m.Start().X, m.Start().Y, m.End().X, m.End().Y,
		s.Attempts, s.Placed, s.Corridors, s.Doors, s.Rejected, s.NoConnection)
	return err
}
