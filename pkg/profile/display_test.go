package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayResolutionNoDisplay(t *testing.T) {
	p := Default()
	p.applyDisplayConfiguration(nil)

	require.NotNil(t, p.Headless)
	assert.True(t, *p.Headless, "no display should default to headless")

	assert.Nil(t, p.WindowSize)
	assert.Nil(t, p.WindowPosition)

	require.NotNil(t, p.Viewport)
	assert.Equal(t, Size{Width: 1280, Height: 1100}, *p.Viewport)

	require.NotNil(t, p.NoViewport)
	assert.False(t, *p.NoViewport)

	require.NotNil(t, p.DeviceScaleFactor)
	assert.Equal(t, 1.0, *p.DeviceScaleFactor)

	require.NotNil(t, p.Screen)
	assert.Equal(t, Size{Width: 1280, Height: 1100}, *p.Screen)
}

func TestDisplayResolutionWindowed(t *testing.T) {
	p := Default()
	p.Headless = Bool(false)
	p.applyDisplayConfiguration(&Size{Width: 1920, Height: 1080})

	require.NotNil(t, p.WindowSize)
	assert.Equal(t, Size{Width: 1920, Height: 1080}, *p.WindowSize)

	require.NotNil(t, p.NoViewport)
	assert.True(t, *p.NoViewport)

	assert.Nil(t, p.Viewport)
	// Without a viewport the windowing system owns these.
	assert.Nil(t, p.DeviceScaleFactor)
	assert.Nil(t, p.Screen)
}

func TestDisplayResolutionPrefersWindowWhenDisplayExists(t *testing.T) {
	p := Default()
	p.applyDisplayConfiguration(&Size{Width: 2560, Height: 1440})

	require.NotNil(t, p.Headless)
	assert.False(t, *p.Headless, "a detected display should default to windowed")
	require.NotNil(t, p.WindowSize)
	assert.Equal(t, Size{Width: 2560, Height: 1440}, *p.WindowSize)
}

func TestDisplayResolutionHeadlessKeepsExplicitViewport(t *testing.T) {
	p := Default()
	p.Headless = Bool(true)
	p.Viewport = &Size{Width: 800, Height: 600}
	p.WindowSize = &Size{Width: 1920, Height: 1080}
	p.applyDisplayConfiguration(&Size{Width: 2560, Height: 1440})

	assert.Nil(t, p.WindowSize, "headless clears window geometry")
	assert.Nil(t, p.WindowPosition)
	require.NotNil(t, p.Viewport)
	assert.Equal(t, Size{Width: 800, Height: 600}, *p.Viewport)
	require.NotNil(t, p.DeviceScaleFactor)
	assert.Equal(t, 1.0, *p.DeviceScaleFactor)
}

func TestDisplayResolutionExplicitViewportInWindowedMode(t *testing.T) {
	p := Default()
	p.Headless = Bool(false)
	p.NoViewport = Bool(false)
	p.applyDisplayConfiguration(&Size{Width: 1920, Height: 1080})

	// The caller asked for viewport sizing even though a window exists, so
	// the anti-fingerprinting trio must all be populated.
	require.NotNil(t, p.Viewport)
	require.NotNil(t, p.DeviceScaleFactor)
	require.NotNil(t, p.Screen)
	assert.Equal(t, Size{Width: 1920, Height: 1080}, *p.Viewport)
}

func TestDisplayResolutionIsIdempotent(t *testing.T) {
	p := Default()
	p.applyDisplayConfiguration(&Size{Width: 1920, Height: 1080})
	first := *p

	p.applyDisplayConfiguration(&Size{Width: 1920, Height: 1080})
	assert.Equal(t, first.Headless, p.Headless)
	assert.Equal(t, first.WindowSize, p.WindowSize)
	assert.Equal(t, first.Viewport, p.Viewport)
	assert.Equal(t, first.NoViewport, p.NoViewport)
	assert.Equal(t, first.Screen, p.Screen)
}

func TestGetDisplaySizeMemoizedCopy(t *testing.T) {
	first := GetDisplaySize()
	second := GetDisplaySize()
	if first == nil {
		assert.Nil(t, second, "memoized result should be stable")
		return
	}
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
	assert.NotSame(t, first, second, "callers must get a copy, not the cache")
}

func TestWindowAdjustments(t *testing.T) {
	x, y := WindowAdjustments()
	// Offsets are small title-bar/border compensations on every platform.
	assert.GreaterOrEqual(t, x, -8)
	assert.LessOrEqual(t, x, 0)
	assert.GreaterOrEqual(t, y, 0)
	assert.LessOrEqual(t, y, 24)
}
