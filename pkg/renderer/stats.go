package renderer

import (
	"image"
	"image/color"
	"time"

	"github.com/df07/go-pick-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	HitPixels      int           // Pixels whose primary ray hit the sphere or the plane
	ShadowedPixels int           // Hit pixels left in shadow
	Tiles          int           // Number of tiles rendered
	Workers        int           // Number of parallel workers
	Duration       time.Duration // Wall time of the whole frame
	AvgLuminance   float64       // Mean luma of the finished frame
}

// Add accumulates another tile's pixel counts
func (s *RenderStats) Add(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.HitPixels += other.HitPixels
	s.ShadowedPixels += other.ShadowedPixels
}

// Record counts one shaded pixel
func (s *RenderStats) Record(sample PixelSample) {
	s.TotalPixels++
	if sample.Surface != SurfaceNone {
		s.HitPixels++
	}
	if sample.Shadowed {
		s.ShadowedPixels++
	}
}

// ToRGBA converts a [0,1] color to 8-bit RGBA. Shaded colors are written as is,
// without gamma correction.
func ToRGBA(c mgl64.Vec3) color.RGBA {
	c = core.Clamp01(c)
	return color.RGBA{
		R: uint8(255*c.X() + 0.5),
		G: uint8(255*c.Y() + 0.5),
		B: uint8(255*c.Z() + 0.5),
		A: 255,
	}
}

// AverageLuminance returns the mean Rec. 709 luma of an 8-bit frame in [0,1].
// An empty frame is 0.
func AverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	var sum float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := img.Pix[img.PixOffset(bounds.Min.X, y):]
		for x := 0; x < bounds.Dx(); x++ {
			px := row[4*x : 4*x+3]
			sum += 0.2126*float64(px[0]) + 0.7152*float64(px[1]) + 0.0722*float64(px[2])
		}
	}
	return sum / (255 * float64(pixels))
}
