//go:build !darwin && !windows

package profile

import (
	"context"
	"os/exec"
	"regexp"
	"strconv"
	"time"
)

var xrandrCurrent = regexp.MustCompile(`current (\d+) x (\d+)`)

// nativeDisplaySize parses the current screen geometry from xrandr. Hosts
// without an X server simply fail the probe.
func nativeDisplaySize() *Size {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, "xrandr", "--current").Output()
	if err != nil {
		pkgLogger().Debugf("native display query failed: %v", err)
		return nil
	}
	match := xrandrCurrent.FindSubmatch(out)
	if match == nil {
		return nil
	}
	width, err := strconv.Atoi(string(match[1]))
	if err != nil {
		return nil
	}
	height, err := strconv.Atoi(string(match[2]))
	if err != nil {
		return nil
	}
	if width <= 0 || height <= 0 {
		return nil
	}
	return &Size{Width: width, Height: height}
}
