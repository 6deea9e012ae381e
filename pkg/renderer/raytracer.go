package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-pick-raytracer/pkg/core"
)

// Config contains configuration for parallel frame rendering
type Config struct {
	TileSize   int // Size of each square tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:   32,
		NumWorkers: 0,
	}
}

// Raytracer shades whole frames of the sphere-and-plane scene
type Raytracer struct {
	config Config
	pool   *WorkerPool
	logger core.Logger
}

// NewRaytracer creates a raytracer. A nil logger discards output.
func NewRaytracer(config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	if config.TileSize <= 0 {
		config.TileSize = DefaultConfig().TileSize
	}
	return &Raytracer{
		config: config,
		pool:   NewWorkerPool(config.NumWorkers),
		logger: logger,
	}
}

// Render shades every pixel of a width x height frame. The image is returned
// only once all tiles are done; on error or cancellation no image is returned.
func (rt *Raytracer) Render(ctx context.Context, u Uniforms, width, height int) (*image.RGBA, RenderStats, error) {
	if width <= 0 || height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("invalid frame size %dx%d", width, height)
	}

	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	tiles := NewTileGrid(width, height, rt.config.TileSize)

	// Tiles never overlap, so workers write disjoint pixels of img
	results, err := rt.pool.Run(ctx, tiles, func(ctx context.Context, tile *Tile) (RenderStats, error) {
		return renderTile(ctx, u, img, tile, width, height)
	})
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("render %dx%d: %w", width, height, err)
	}

	stats := RenderStats{Tiles: len(tiles), Workers: rt.pool.GetNumWorkers()}
	for _, r := range results {
		stats.Add(r.Stats)
	}
	stats.Duration = time.Since(start)
	stats.AvgLuminance = AverageLuminance(img)

	rt.logger.Printf("Rendered %dx%d in %v (%d tiles, %d workers, %d hit, %d shadowed, luma %.3f)\n",
		width, height, stats.Duration, stats.Tiles, stats.Workers, stats.HitPixels, stats.ShadowedPixels, stats.AvgLuminance)

	return img, stats, nil
}

func renderTile(ctx context.Context, u Uniforms, img *image.RGBA, tile *Tile, width, height int) (RenderStats, error) {
	var stats RenderStats
	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			sample := SamplePixel(u, x, y, width, height)
			stats.Record(sample)
			img.SetRGBA(x, y, ToRGBA(sample.Color))
		}
	}
	return stats, nil
}
