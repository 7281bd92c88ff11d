package world

import (
	"errors"
	"testing"
)

func TestDefaultConfigMatchesStockMaze(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}
	if cfg.Width != 90 || cfg.Height != 90 {
		t.Errorf("Default size = %dx%d, want 90x90", cfg.Width, cfg.Height)
	}
	if cfg.Attempts != 90*90 {
		t.Errorf("Default attempts = %d, want %d", cfg.Attempts, 90*90)
	}
	if cfg.SeedBase != 9578768 {
		t.Errorf("Default seed base = %d, want 9578768", cfg.SeedBase)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"default", func(c *Config) {}, true},
		{"tiny grid", func(c *Config) { c.Width, c.Height = 3, 3 }, true},
		{"zero attempts", func(c *Config) { c.Attempts = 0 }, true},
		{"no corridors or doors", func(c *Config) { c.CorridorChance, c.DoorChance = 0, 0 }, true},
		{"too narrow", func(c *Config) { c.Width = 2 }, false},
		{"too short", func(c *Config) { c.Height = 0 }, false},
		{"negative attempts", func(c *Config) { c.Attempts = -1 }, false},
		{"zero room size", func(c *Config) { c.MinRoomSize = 0 }, false},
		{"inverted range", func(c *Config) { c.MinRoomSize, c.MaxRoomSize = 6, 5 }, false},
		{"negative door chance", func(c *Config) { c.DoorChance = -2 }, false},
		{"negative retries", func(c *Config) { c.ConnectionRetries = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Expected valid, got %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestConfigFromEnv(t *testing.T) {
	cfg, err := ConfigFromEnv(lookupFrom(map[string]string{
		"MAZE_WIDTH":           "40",
		"MAZE_HEIGHT":          "30",
		"MAZE_ROOM_MIN":        "3",
		"MAZE_ROOM_MAX":        "5",
		"MAZE_CORRIDOR_CHANCE": "0",
		"MAZE_SEED_BASE":       "4294967295",
	}))
	if err != nil {
		t.Fatalf("ConfigFromEnv failed: %v", err)
	}

	if cfg.Width != 40 || cfg.Height != 30 {
		t.Errorf("Size = %dx%d, want 40x30", cfg.Width, cfg.Height)
	}
	if cfg.Attempts != 40*30 {
		t.Errorf("Attempts should follow the area, got %d", cfg.Attempts)
	}
	if cfg.MinRoomSize != 3 || cfg.MaxRoomSize != 5 {
		t.Errorf("Room range = %d..%d, want 3..5", cfg.MinRoomSize, cfg.MaxRoomSize)
	}
	if cfg.CorridorChance != 0 {
		t.Errorf("CorridorChance = %d, want 0", cfg.CorridorChance)
	}
	if cfg.DoorChance != DefaultDoorChance {
		t.Errorf("DoorChance = %d, want default %d", cfg.DoorChance, DefaultDoorChance)
	}
	if cfg.SeedBase != 4294967295 {
		t.Errorf("SeedBase = %d, want 4294967295", cfg.SeedBase)
	}
}

func TestConfigFromEnvExplicitAttempts(t *testing.T) {
	cfg, err := ConfigFromEnv(lookupFrom(map[string]string{
		"MAZE_WIDTH":    "20",
		"MAZE_ATTEMPTS": "0",
	}))
	if err != nil {
		t.Fatalf("ConfigFromEnv failed: %v", err)
	}
	if cfg.Attempts != 0 {
		t.Errorf("Attempts = %d, want 0", cfg.Attempts)
	}
}

func TestConfigFromEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"not a number", map[string]string{"MAZE_WIDTH": "wide"}},
		{"seed overflow", map[string]string{"MAZE_SEED_BASE": "4294967296"}},
		{"negative seed", map[string]string{"MAZE_SEED_BASE": "-1"}},
		{"invalid result", map[string]string{"MAZE_ROOM_MIN": "9", "MAZE_ROOM_MAX": "2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ConfigFromEnv(lookupFrom(tt.env)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
