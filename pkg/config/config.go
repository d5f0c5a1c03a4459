package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Environment variable names
const (
	EnvWidth       = "RAYTRACE_WIDTH"
	EnvHeight      = "RAYTRACE_HEIGHT"
	EnvScene       = "RAYTRACE_SCENE"
	EnvSeed        = "RAYTRACE_SEED"
	EnvMode        = "RAYTRACE_MODE"
	EnvShadow      = "RAYTRACE_SHADOW"
	EnvDistance    = "RAYTRACE_DISTANCE"
	EnvWorkers     = "RAYTRACE_WORKERS"
	EnvTileSize    = "RAYTRACE_TILE_SIZE"
	EnvOutput      = "RAYTRACE_OUTPUT"
	EnvOutputScale = "RAYTRACE_OUTPUT_SCALE"
)

// MaxDimension bounds the frame width and height
const MaxDimension = 8192

// Config holds the startup configuration of the ray tracer
type Config struct {
	Width       int
	Height      int
	Scene       string
	Seed        int64
	Mode        integrator.Mode
	Shadow      integrator.ShadowPolicy
	Distance    float64 // Initial camera distance
	Workers     int     // 0 = CPU count
	TileSize    int
	Output      string  // Snapshot path for headless runs
	OutputScale float64 // Snapshot resize factor, 1 keeps the frame size
}

// Default returns the classic 900x900 eight-sphere configuration
func Default() Config {
	settings := renderer.DefaultSettings()
	parallel := renderer.DefaultParallelConfig()
	return Config{
		Width:       settings.Width,
		Height:      settings.Height,
		Scene:       "random",
		Seed:        42,
		Mode:        settings.Mode,
		Shadow:      settings.Shadow,
		Distance:    settings.Camera.Distance,
		Workers:     parallel.NumWorkers,
		TileSize:    parallel.TileSize,
		Output:      "",
		OutputScale: 1,
	}
}

// Load builds a config from defaults, then envFile, then the process environment.
// Process variables win over the file. A missing envFile is not an error.
func Load(envFile string) (Config, error) {
	fileEnv := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileEnv = vars
		case !errors.Is(err, fs.ErrNotExist):
			return Config{}, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	return FromLookup(func(key string) (string, bool) {
		if value, ok := os.LookupEnv(key); ok {
			return value, true
		}
		value, ok := fileEnv[key]
		return value, ok
	})
}

// FromLookup builds a config from defaults overridden by lookup
func FromLookup(lookup func(key string) (string, bool)) (Config, error) {
	cfg := Default()
	getEnv := func(key, fallback string) string {
		if value, ok := lookup(key); ok {
			return value
		}
		return fallback
	}

	var err error
	if cfg.Width, err = parseInt(EnvWidth, getEnv(EnvWidth, strconv.Itoa(cfg.Width))); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = parseInt(EnvHeight, getEnv(EnvHeight, strconv.Itoa(cfg.Height))); err != nil {
		return Config{}, err
	}
	cfg.Scene = getEnv(EnvScene, cfg.Scene)
	if cfg.Seed, err = strconv.ParseInt(getEnv(EnvSeed, strconv.FormatInt(cfg.Seed, 10)), 10, 64); err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvSeed, err)
	}
	if cfg.Mode, err = integrator.ParseMode(getEnv(EnvMode, cfg.Mode.String())); err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvMode, err)
	}
	if cfg.Shadow, err = integrator.ParseShadowPolicy(getEnv(EnvShadow, cfg.Shadow.String())); err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvShadow, err)
	}
	if cfg.Distance, err = parseFloat(EnvDistance, getEnv(EnvDistance, strconv.FormatFloat(cfg.Distance, 'g', -1, 64))); err != nil {
		return Config{}, err
	}
	if cfg.Workers, err = parseInt(EnvWorkers, getEnv(EnvWorkers, strconv.Itoa(cfg.Workers))); err != nil {
		return Config{}, err
	}
	if cfg.TileSize, err = parseInt(EnvTileSize, getEnv(EnvTileSize, strconv.Itoa(cfg.TileSize))); err != nil {
		return Config{}, err
	}
	cfg.Output = getEnv(EnvOutput, cfg.Output)
	if cfg.OutputScale, err = parseFloat(EnvOutputScale, getEnv(EnvOutputScale, strconv.FormatFloat(cfg.OutputScale, 'g', -1, 64))); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that every value is in range
func (c Config) Validate() error {
	if c.Width <= 0 || c.Width > MaxDimension || c.Height <= 0 || c.Height > MaxDimension {
		return fmt.Errorf("frame size %dx%d outside 1..%d", c.Width, c.Height, MaxDimension)
	}
	if _, ok := scene.Lookup(c.Scene); !ok {
		return fmt.Errorf("unknown scene %q", c.Scene)
	}
	if !(c.Distance >= 1 && c.Distance <= 5) {
		return fmt.Errorf("camera distance %g outside [1, 5]", c.Distance)
	}
	if c.Workers < 0 {
		return fmt.Errorf("negative worker count %d", c.Workers)
	}
	if c.TileSize < 0 {
		return fmt.Errorf("negative tile size %d", c.TileSize)
	}
	if !(c.OutputScale > 0 && c.OutputScale <= 8) {
		return fmt.Errorf("output scale %g outside (0, 8]", c.OutputScale)
	}
	return nil
}

// RenderSettings returns the renderer settings for this config
func (c Config) RenderSettings() renderer.Settings {
	return renderer.Settings{
		Width:  c.Width,
		Height: c.Height,
		Camera: renderer.NewCamera(c.Distance),
		Mode:   c.Mode,
		Shadow: c.Shadow,
	}
}

// ParallelConfig returns the worker pool settings for this config
func (c Config) ParallelConfig() renderer.ParallelConfig {
	return renderer.ParallelConfig{
		TileSize:   c.TileSize,
		NumWorkers: c.Workers,
	}
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func parseFloat(key, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}
