package renderer

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestAverageLuminance(t *testing.T) {
	tests := []struct {
		name   string
		pixels []color.RGBA // row-major 2x2
		want   float64
	}{
		{"primaries and black", []color.RGBA{{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255}, {0, 0, 0, 255}}, 0.25},
		{"white", []color.RGBA{{255, 255, 255, 255}, {255, 255, 255, 255}, {255, 255, 255, 255}, {255, 255, 255, 255}}, 1},
		{"black", []color.RGBA{{0, 0, 0, 255}, {0, 0, 0, 255}, {0, 0, 0, 255}, {0, 0, 0, 255}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, 2, 2))
			for i, c := range tt.pixels {
				img.SetRGBA(i%2, i/2, c)
			}
			if got := AverageLuminance(img); math.Abs(got-tt.want) > 1e-4 {
				t.Errorf("Expected average luminance %f, got %f", tt.want, got)
			}
		})
	}
}

func TestAverageLuminance_SubImageAndEmpty(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.SetRGBA(3, 3, color.RGBA{255, 255, 255, 255})

	// Only the white corner is inside the sub-image
	sub := img.SubImage(image.Rect(3, 3, 4, 4)).(*image.RGBA)
	if got := AverageLuminance(sub); math.Abs(got-1) > 1e-4 {
		t.Errorf("Expected 1 for the white corner, got %f", got)
	}
	if got := AverageLuminance(image.NewRGBA(image.Rectangle{})); got != 0 {
		t.Errorf("Expected 0 for an empty frame, got %f", got)
	}
}

func TestToRGBA(t *testing.T) {
	tests := []struct {
		name string
		in   mgl64.Vec3
		want color.RGBA
	}{
		{"black", mgl64.Vec3{0, 0, 0}, color.RGBA{0, 0, 0, 255}},
		{"white", mgl64.Vec3{1, 1, 1}, color.RGBA{255, 255, 255, 255}},
		{"clamped", mgl64.Vec3{-0.5, 2, 0.5}, color.RGBA{0, 255, 128, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToRGBA(tt.in); got != tt.want {
				t.Errorf("ToRGBA(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRenderStats_Record(t *testing.T) {
	var stats RenderStats
	stats.Record(PixelSample{Surface: SurfaceNone})
	stats.Record(PixelSample{Surface: SurfacePlane, Shadowed: true})
	stats.Record(PixelSample{Surface: SurfaceSphere})

	if stats.TotalPixels != 3 || stats.HitPixels != 2 || stats.ShadowedPixels != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}
}
