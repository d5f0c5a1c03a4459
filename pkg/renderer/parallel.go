package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// ParallelConfig contains configuration for tiled parallel rendering
type ParallelConfig struct {
	TileSize   int // Size of each tile (64x64 recommended)
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultParallelConfig returns sensible default values
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// ParallelRaytracer renders a frame by splitting it into tiles rendered on a worker pool.
// The output is byte-identical to Raytracer.RenderPass.
type ParallelRaytracer struct {
	raytracer *Raytracer
	config    ParallelConfig
	tiles     []*Tile
	logger    core.Logger
}

// NewParallelRaytracer creates a new parallel raytracer
func NewParallelRaytracer(sc *scene.Scene, settings Settings, config ParallelConfig, logger core.Logger) *ParallelRaytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &ParallelRaytracer{
		raytracer: NewRaytracer(sc, settings),
		config:    config,
		tiles:     NewTileGrid(settings.Width, settings.Height, config.TileSize),
		logger:    logger,
	}
}

// RenderPass renders every tile and blocks until the frame is complete
func (pr *ParallelRaytracer) RenderPass() (*FrameBuffer, RenderStats, error) {
	settings := pr.raytracer.Settings()
	fb := NewFrameBuffer(settings.Width, settings.Height)
	startTime := time.Now()

	workerPool := NewWorkerPool(pr.raytracer, len(pr.tiles), pr.config.NumWorkers)
	workerPool.Start()
	defer workerPool.Stop()

	pr.logger.Printf("Rendering %dx%d %s frame in %d tiles (using %d workers)...\n",
		settings.Width, settings.Height, settings.Mode, len(pr.tiles), workerPool.GetNumWorkers())

	// Submit all tiles as tasks
	for taskID, tile := range pr.tiles {
		workerPool.SubmitTask(TileTask{
			Tile:   tile,
			TaskID: taskID,
			Frame:  fb,
		})
	}

	// Wait for all tiles to complete
	var stats RenderStats
	for i := 0; i < len(pr.tiles); i++ {
		result, ok := workerPool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			return nil, RenderStats{}, fmt.Errorf("tile %d: %w", result.TaskID, result.Error)
		}
		stats.Merge(result.Stats)
	}

	pr.logger.Printf("Pass completed in %v (%s)\n", time.Since(startTime), stats)

	return fb, stats, nil
}
