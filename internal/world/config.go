package world

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// Default maze dimensions
	DefaultWidth  = 90
	DefaultHeight = 90

	DefaultMinRoomSize       = 4
	DefaultMaxRoomSize       = 7
	DefaultCorridorChance    = 4 // 1 in 4 attempts becomes a corridor
	DefaultDoorChance        = 2 // 1 in 2 connections becomes a door
	DefaultSeedBase          = 9578768
	DefaultConnectionRetries = 300
)

// ErrInvalidConfig is returned for configurations generation cannot run with.
var ErrInvalidConfig = errors.New("invalid generation config")

// Config holds maze generation options.
type Config struct {
	Width  int
	Height int

	// Attempts is the number of room placements tried after the starting
	// room. Many are rejected, so it bounds rooms rather than fixing them.
	Attempts int

	// Room footprint range, inclusive, before corridor conversion.
	MinRoomSize int
	MaxRoomSize int

	// CorridorChance and DoorChance are 1-in-N odds. Zero disables them.
	CorridorChance int
	DoorChance     int

	// SeedBase is added to the level index to seed each level.
	SeedBase uint32

	// ConnectionRetries caps how many cells are sampled per attempt while
	// looking for a connection point.
	ConnectionRetries int
}

// DefaultConfig returns the stock 90×90 configuration.
func DefaultConfig() Config {
	return Config{
		Width:             DefaultWidth,
		Height:            DefaultHeight,
		Attempts:          DefaultWidth * DefaultHeight,
		MinRoomSize:       DefaultMinRoomSize,
		MaxRoomSize:       DefaultMaxRoomSize,
		CorridorChance:    DefaultCorridorChance,
		DoorChance:        DefaultDoorChance,
		SeedBase:          DefaultSeedBase,
		ConnectionRetries: DefaultConnectionRetries,
	}
}

// Validate checks the config for values generation cannot handle.
func (c Config) Validate() error {
	switch {
	case c.Width < 3 || c.Height < 3:
		return fmt.Errorf("%w: grid %dx%d is smaller than 3x3", ErrInvalidConfig, c.Width, c.Height)
	case c.Attempts < 0:
		return fmt.Errorf("%w: negative attempt budget %d", ErrInvalidConfig, c.Attempts)
	case c.MinRoomSize < 1:
		return fmt.Errorf("%w: minimum room size %d", ErrInvalidConfig, c.MinRoomSize)
	case c.MaxRoomSize < c.MinRoomSize:
		return fmt.Errorf("%w: room size range %d..%d", ErrInvalidConfig, c.MinRoomSize, c.MaxRoomSize)
	case c.CorridorChance < 0 || c.DoorChance < 0:
		return fmt.Errorf("%w: negative chance", ErrInvalidConfig)
	case c.ConnectionRetries < 0:
		return fmt.Errorf("%w: negative connection retries %d", ErrInvalidConfig, c.ConnectionRetries)
	}
	return nil
}

// ConfigFromEnv starts from DefaultConfig and applies MAZE_* overrides read
// through lookup (os.LookupEnv in production). When MAZE_WIDTH or
// MAZE_HEIGHT change and MAZE_ATTEMPTS is unset, the attempt budget follows
// the new area.
func ConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	ints := []struct {
		key string
		dst *int
	}{
		{"MAZE_WIDTH", &cfg.Width},
		{"MAZE_HEIGHT", &cfg.Height},
		{"MAZE_ATTEMPTS", &cfg.Attempts},
		{"MAZE_ROOM_MIN", &cfg.MinRoomSize},
		{"MAZE_ROOM_MAX", &cfg.MaxRoomSize},
		{"MAZE_CORRIDOR_CHANCE", &cfg.CorridorChance},
		{"MAZE_DOOR_CHANCE", &cfg.DoorChance},
		{"MAZE_CONNECTION_RETRIES", &cfg.ConnectionRetries},
	}
	for _, o := range ints {
		raw, ok := lookup(o.key)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", o.key, err)
		}
		*o.dst = v
	}

	if raw, ok := lookup("MAZE_SEED_BASE"); ok && raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse MAZE_SEED_BASE: %w", err)
		}
		cfg.SeedBase = uint32(v)
	}

	if raw, ok := lookup("MAZE_ATTEMPTS"); !ok || raw == "" {
		cfg.Attempts = cfg.Width * cfg.Height
	}

	return cfg, cfg.Validate()
}
