package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/df07/go-pick-raytracer/pkg/app"
	"github.com/df07/go-pick-raytracer/pkg/config"
	"github.com/df07/go-pick-raytracer/pkg/core"
)

func main() {
	var (
		configPath = flag.String("config", config.DefaultPath, "YAML config file (missing file = defaults)")
		headless   = flag.Bool("headless", false, "Run the update loop without a window")
		ticks      = flag.Uint64("ticks", 600, "Updates to run in headless mode (0 = until interrupted)")
		hz         = flag.Int("hz", 60, "Update rate in headless mode")
		raytrace   = flag.Bool("raytrace", false, "Start in raytracing mode")
		scale      = flag.Int("scale", 2, "Raytrace at 1/scale of the window resolution")
		out        = flag.String("out", "", "Headless only: write the final raytraced frame to this PNG")
	)
	flag.Parse()

	if err := run(*configPath, *headless, *ticks, *hz, *raytrace, *scale, *out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, headless bool, ticks uint64, hz int, raytrace bool, scale int, out string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := core.NewDefaultLogger()
	a := app.New(cfg, logger)
	if raytrace {
		a.SetMode(app.ModeRaytrace)
	}
	fmt.Print(app.Controls)

	if !headless {
		return runWindow(a, cfg.Window.Title, scale)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = app.RunHeadless(ctx, a, app.HeadlessConfig{Hz: hz, Ticks: ticks})
	if err != nil && ctx.Err() == nil {
		return err
	}

	if out == "" {
		return nil
	}
	return writeFrame(ctx, a, out)
}

func writeFrame(ctx context.Context, a *app.App, path string) error {
	img, _, err := a.RenderFrame(context.WithoutCancel(ctx))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	fmt.Printf("Frame saved as %s\n", path)
	return nil
}
