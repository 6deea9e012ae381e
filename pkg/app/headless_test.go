package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/df07/go-pick-raytracer/pkg/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunHeadless_StopsAfterTicks(t *testing.T) {
	a, _ := newTestApp(t)
	a.SetMode(ModeRaytrace)

	var seen uint64
	err := RunHeadless(context.Background(), a, HeadlessConfig{
		Hz:    1000,
		Ticks: 5,
		OnTick: func(tick uint64) error {
			seen = tick
			return nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(5), seen)
	assert.InDelta(t, 5*0.001, a.Light().Phase(), 1e-9)
}

func TestRunHeadless_EscapeQuits(t *testing.T) {
	a, _ := newTestApp(t)
	err := RunHeadless(context.Background(), a, HeadlessConfig{
		Hz: 1000,
		OnTick: func(tick uint64) error {
			if tick == 3 {
				a.KeyDown(input.KeyEscape)
			}
			return nil
		},
	})
	assert.NoError(t, err)
}

func TestRunHeadless_ErrorsAndCancel(t *testing.T) {
	a, _ := newTestApp(t)
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), a, HeadlessConfig{
		Hz:     1000,
		OnTick: func(uint64) error { return boom },
	})
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err = RunHeadless(ctx, a, HeadlessConfig{Hz: 10})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
