package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"stormgrid/internal/weather"
)

type Config struct {
	// Seed drives world generation and weather. HasSeed false means no
	// seed was configured and the app picks one from the clock.
	Seed    uint64
	HasSeed bool

	MapWidth  int
	MapHeight int

	Intensity weather.Intensity

	WindowW int
	WindowH int
	Mute    bool
}

// Load reads configuration from the environment with sensible defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &Config{}

	if v := os.Getenv("STORMGRID_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid STORMGRID_SEED: %w", err)
		}
		cfg.Seed = n
		cfg.HasSeed = true
	}

	cfg.MapWidth = getenvInt("STORMGRID_MAP_WIDTH", 128)
	cfg.MapHeight = getenvInt("STORMGRID_MAP_HEIGHT", 96)
	if cfg.MapWidth <= 0 || cfg.MapHeight <= 0 {
		return nil, fmt.Errorf("invalid map size %dx%d", cfg.MapWidth, cfg.MapHeight)
	}

	level, err := weather.ParseIntensity(getenvDefault("STORMGRID_INTENSITY", "high"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORMGRID_INTENSITY: %w", err)
	}
	cfg.Intensity = level

	cfg.WindowW = getenvInt("STORMGRID_WINDOW_WIDTH", 1280)
	cfg.WindowH = getenvInt("STORMGRID_WINDOW_HEIGHT", 800)
	if cfg.WindowW <= 0 || cfg.WindowH <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", cfg.WindowW, cfg.WindowH)
	}
	cfg.Mute = getenvBool("STORMGRID_MUTE", false)

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
