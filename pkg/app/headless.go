package app

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window runner
type HeadlessConfig struct {
	Hz    int    // Update rate, 60 when unset
	Ticks uint64 // Stop after this many updates; 0 runs until ctx is done
	// OnTick runs after every update; a non-nil error stops the loop
	OnTick func(tick uint64) error
}

// RunHeadless drives a.Update on a ticker without opening a window.
// It returns nil after cfg.Ticks updates or when Escape was pressed.
func RunHeadless(ctx context.Context, a *App, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	dt := d.Seconds()

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			a.Update(dt)
			tick++
			if cfg.OnTick != nil {
				if err := cfg.OnTick(tick); err != nil {
					return err
				}
			}
			if a.QuitRequested() {
				return nil
			}
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
