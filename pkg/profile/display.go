package profile

import (
	"runtime"
	"sync"

	"github.com/kbinani/screenshot"
)

var (
	displayOnce   sync.Once
	displayCached *Size
)

// GetDisplaySize reports the size of the primary physical display, or nil if
// no display could be detected. The platform query runs at most once per
// process; a process's display does not change, so there is no reset.
func GetDisplaySize() *Size {
	displayOnce.Do(func() {
		displayCached = detectDisplaySize()
	})
	if displayCached == nil {
		return nil
	}
	size := *displayCached
	return &size
}

// detectDisplaySize tries an OS-native query first and falls back to
// cross-platform monitor enumeration. Failures in either probe are swallowed
// and treated as "no display".
func detectDisplaySize() *Size {
	if size := nativeDisplaySize(); size != nil {
		return size
	}
	return enumeratedDisplaySize()
}

// enumeratedDisplaySize queries the first active monitor. The underlying
// library panics on hosts without a display server, so recover doubles as
// the failure path.
func enumeratedDisplaySize() (size *Size) {
	defer func() {
		if r := recover(); r != nil {
			pkgLogger().Debugf("monitor enumeration failed: %v", r)
			size = nil
		}
	}()
	if screenshot.NumActiveDisplays() < 1 {
		return nil
	}
	bounds := screenshot.GetDisplayBounds(0)
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil
	}
	return &Size{Width: bounds.Dx(), Height: bounds.Dy()}
}

// WindowAdjustments returns the recommended x,y window-position offsets for
// the host OS, compensating for title bars and borders.
func WindowAdjustments() (x, y int) {
	switch runtime.GOOS {
	case "darwin":
		// small title bar, no border
		return -4, 24
	case "windows":
		// border on the left
		return -8, 0
	default:
		return 0, 0
	}
}

// DetectDisplayConfiguration resolves headless mode and the mutually
// exclusive window-vs-viewport geometry from the detected display size. It
// is one of the two explicit mutators on a Profile and is idempotent.
func (p *Profile) DetectDisplayConfiguration() {
	p.applyDisplayConfiguration(GetDisplaySize())
}

func (p *Profile) applyDisplayConfiguration(displaySize *Size) {
	if displaySize != nil && p.Screen == nil {
		size := *displaySize
		p.Screen = &size
	}

	// With no headless preference, prefer a visible window when a display
	// exists.
	if p.Headless == nil {
		p.Headless = Bool(displaySize == nil)
	}

	if *p.Headless {
		// No window exists, so window geometry is meaningless; content size
		// is constrained by the viewport instead.
		p.WindowSize = nil
		p.WindowPosition = nil
		p.NoViewport = Bool(false)
		if p.Viewport == nil {
			p.Viewport = sizeOrFallback(displaySize)
		}
	} else {
		// Windowed: the window defines the content size.
		if p.WindowSize == nil {
			p.WindowSize = sizeOrFallback(displaySize)
		}
		if p.NoViewport == nil {
			p.NoViewport = Bool(true)
		}
		if *p.NoViewport {
			p.Viewport = nil
		}
	}

	useViewport := *p.Headless || p.Viewport != nil || p.DeviceScaleFactor != nil
	if p.NoViewport == nil {
		p.NoViewport = Bool(!useViewport)
	}
	useViewport = !*p.NoViewport

	if useViewport {
		// Present consistent, plausible screen/viewport/scale values rather
		// than null placeholders that fingerprint the session as automated.
		if p.Viewport == nil {
			p.Viewport = sizeOrFallback(displaySize)
		}
		if p.DeviceScaleFactor == nil {
			p.DeviceScaleFactor = Float(1.0)
		}
		if p.Screen == nil {
			p.Screen = sizeOrFallback(displaySize)
		}
	} else {
		// The windowing system determines these.
		p.Viewport = nil
		p.DeviceScaleFactor = nil
		p.Screen = nil
	}
}

// sizeOrFallback copies the detected size, or substitutes the 1280x1100
// fallback when detection failed.
func sizeOrFallback(detected *Size) *Size {
	if detected != nil {
		size := *detected
		return &size
	}
	return &Size{Width: defaultWindowWidth, Height: defaultWindowHeight}
}
