package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-pick-raytracer/pkg/camera"
	"github.com/df07/go-pick-raytracer/pkg/config"
	"github.com/df07/go-pick-raytracer/pkg/core"
	"github.com/df07/go-pick-raytracer/pkg/lights"
	"github.com/df07/go-pick-raytracer/pkg/renderer"
	"github.com/df07/go-pick-raytracer/pkg/scene"
	"github.com/go-gl/mathgl/mgl64"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", config.DefaultPath, "YAML config file (missing file = defaults)")
	width := flag.Int("width", 0, "Image width (0 = config window width)")
	height := flag.Int("height", 0, "Image height (0 = config window height)")
	phase := flag.Float64("time", 0, "Light orbit phase in seconds to render at")
	light := flag.String("light", "", "Explicit light position x,y,z (overrides -time)")
	out := flag.String("out", "", "Output PNG path (default output/raytrace_<timestamp>.png)")
	pick := flag.String("pick", "", "Pick at normalized screen coordinates u,v on the box scene instead of rendering")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Pick & Raytrace")
		fmt.Println("Usage: pickrt [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Without -pick the sphere-and-plane scene is raytraced to a PNG.")
		fmt.Println("With -pick u,v (v = 0 at the top) the box scene is picked and the hit is printed.")
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}

	logger := core.NewDefaultLogger()

	if *pick != "" {
		u, v, err := parseUV(*pick)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		result := runPick(cfg, u, v, logger)
		if !result.Hit {
			os.Exit(2)
		}
		return
	}

	lightPos, err := lightPosition(cfg, *phase, *light)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	filename := *out
	if filename == "" {
		filename = defaultOutputPath(time.Now())
	}

	fmt.Println("Starting raytracer...")
	if err := renderToFile(context.Background(), cfg, lightPos, filename, logger); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)
}

// runPick builds the box scene at the configured aspect and picks once
func runPick(cfg config.Config, u, v float64, logger core.Logger) scene.PickResult {
	s := scene.NewPickScene(cfg.PickCamera(cfg.Aspect()), cfg.CubeSpecs(), logger)
	return s.Pick(u, v)
}

// lightPosition resolves the light from an explicit "x,y,z" or the orbit phase
func lightPosition(cfg config.Config, phase float64, explicit string) (mgl64.Vec3, error) {
	if explicit != "" {
		return parseVec3(explicit)
	}
	l := lights.NewOrbitLight(cfg.OrbitConfig())
	if phase != 0 {
		l.SetPhase(phase)
	}
	return l.Position(), nil
}

// renderFrame raytraces the configured scene with the light at lightPos
func renderFrame(ctx context.Context, cfg config.Config, lightPos mgl64.Vec3, logger core.Logger) (*image.RGBA, renderer.RenderStats, error) {
	cam := camera.New(cfg.RaytraceCamera(cfg.Aspect()))
	u := renderer.NewUniforms(cam, cfg.SceneConfig(), lightPos)
	rt := renderer.NewRaytracer(cfg.RendererConfig(), logger)
	return rt.Render(ctx, u, cfg.Window.Width, cfg.Window.Height)
}

func renderToFile(ctx context.Context, cfg config.Config, lightPos mgl64.Vec3, filename string, logger core.Logger) error {
	img, _, err := renderFrame(ctx, cfg, lightPos, logger)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

func defaultOutputPath(now time.Time) string {
	return filepath.Join("output", fmt.Sprintf("raytrace_%s.png", now.Format("20060102_150405")))
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma-separated numbers, got %q", n, s)
	}
	values := make([]float64, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", p, err)
		}
		values[i] = f
	}
	return values, nil
}

// parseUV parses "u,v" with both coordinates in [0,1]
func parseUV(s string) (float64, float64, error) {
	values, err := parseFloats(s, 2)
	if err != nil {
		return 0, 0, err
	}
	u, v := values[0], values[1]
	if u < 0 || u > 1 || v < 0 || v > 1 {
		return 0, 0, errors.New("pick coordinates must be in [0,1]")
	}
	return u, v, nil
}

func parseVec3(s string) (mgl64.Vec3, error) {
	values, err := parseFloats(s, 3)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return mgl64.Vec3{values[0], values[1], values[2]}, nil
}
