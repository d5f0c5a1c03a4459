package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2/app"

	"github.com/df07/go-phong-raytracer/pkg/config"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/output"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
	"github.com/df07/go-phong-raytracer/pkg/viewer"
	"github.com/df07/go-phong-raytracer/ui"
)

// options are the flags that are not part of the render configuration
type options struct {
	envFile  string
	headless bool
	list     bool
}

func main() {
	cfg, opts, err := parseFlags(os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if opts.list {
		printScenes(os.Stdout)
		return
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	fmt.Println("Starting Phong Raytracer...")
	fmt.Print(viewer.Banner())

	if opts.headless {
		err = runHeadless(cfg, renderer.NewDefaultLogger())
	} else {
		err = runWindow(cfg)
	}
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}
}

// parseFlags loads the configuration and applies the flags given on the command line.
// Flags override RAYTRACE_* variables, which override the .env file.
func parseFlags(args []string, stdout io.Writer) (config.Config, options, error) {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stdout)

	var opts options
	fs.StringVar(&opts.envFile, "env", ".env", "Optional .env file with RAYTRACE_* settings")
	fs.BoolVar(&opts.headless, "headless", false, "Render once and save to a file instead of opening a window")
	fs.BoolVar(&opts.list, "list", false, "List the available scenes")

	sceneName := fs.String("scene", "", "Scene: random, single or shadow")
	seed := fs.Int64("seed", 0, "Random scene seed; reset adds one")
	mode := fs.String("mode", "", "Shading mode: phong or normal")
	shadow := fs.String("shadow", "", "Shadow policy: ambient, black or none")
	distance := fs.Float64("distance", 0, "Initial camera distance in [1, 5]")
	width := fs.Int("width", 0, "Frame width in pixels")
	height := fs.Int("height", 0, "Frame height in pixels")
	workers := fs.Int("workers", 0, "Number of render workers (0 = CPU count)")
	tileSize := fs.Int("tile", 0, "Tile size for parallel rendering")
	out := fs.String("out", "", "Output file for -headless (default output/<scene>/render_<timestamp>.png)")
	scale := fs.Float64("scale", 0, "Resize factor for the saved image")

	fs.Usage = func() {
		fmt.Fprintln(stdout, "Phong Raytracer")
		fmt.Fprintln(stdout, "Usage: raytracer [options]")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(stdout)
		printScenes(stdout)
	}

	if err := fs.Parse(args); err != nil {
		return config.Config{}, opts, err
	}

	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return config.Config{}, opts, err
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		var err error
		switch f.Name {
		case "scene":
			cfg.Scene = *sceneName
		case "seed":
			cfg.Seed = *seed
		case "mode":
			cfg.Mode, err = integrator.ParseMode(*mode)
		case "shadow":
			cfg.Shadow, err = integrator.ParseShadowPolicy(*shadow)
		case "distance":
			cfg.Distance = *distance
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "workers":
			cfg.Workers = *workers
		case "tile":
			cfg.TileSize = *tileSize
		case "out":
			cfg.Output = *out
		case "scale":
			cfg.OutputScale = *scale
		}
		if err != nil && flagErr == nil {
			flagErr = fmt.Errorf("-%s: %w", f.Name, err)
		}
	})

	return cfg, opts, flagErr
}

// runHeadless renders a single frame and writes it to the configured file
func runHeadless(cfg config.Config, logger core.Logger) error {
	path := cfg.Output
	if path == "" {
		path = defaultOutputPath(cfg.Scene, time.Now())
	}

	ctx, err := viewer.NewRenderContext(cfg.Scene, cfg.Seed, cfg.RenderSettings(), scene.Create)
	if err != nil {
		return err
	}
	fmt.Printf("Using %s scene (seed %d, %d spheres)...\n", ctx.SceneName, ctx.Seed, ctx.Scene.GetPrimitiveCount())

	display := output.NewFileDisplay(path, cfg.OutputScale, logger)
	session := viewer.NewSession(ctx, display, scene.Create, cfg.ParallelConfig(), logger)

	startTime := time.Now()
	if err := session.Start(); err != nil {
		return err
	}

	fmt.Printf("Render completed in %v\n", time.Since(startTime))
	fmt.Printf("Stats: %s, average luminance %.3f\n", session.Stats(), renderer.CalculateAverageLuminance(session.Frame()))
	fmt.Printf("Saved to %s\n", display.Path())
	return nil
}

// runWindow opens the interactive window and blocks until it is closed
func runWindow(cfg config.Config) error {
	ctx, err := viewer.NewRenderContext(cfg.Scene, cfg.Seed, cfg.RenderSettings(), scene.Create)
	if err != nil {
		return err
	}

	a := app.New()
	window := ui.NewWindow(a, "Ray Trace", cfg.Width, cfg.Height)
	session := viewer.NewSession(ctx, window, scene.Create, cfg.ParallelConfig(), window.Logger())

	window.Run(session)
	return nil
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.png
func defaultOutputPath(sceneName string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", timestamp))
}

func printScenes(w io.Writer) {
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-7s - %s\n", info.ID, info.Description)
	}
}
