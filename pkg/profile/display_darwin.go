//go:build darwin

package profile

import (
	"os/exec"
	"strconv"
	"strings"
)

// nativeDisplaySize asks the Finder for the desktop bounds, which reflect
// the main screen. Output looks like "0, 0, 1512, 982".
func nativeDisplaySize() *Size {
	out, err := exec.Command("osascript", "-e",
		`tell application "Finder" to get bounds of window of desktop`).Output()
	if err != nil {
		pkgLogger().Debugf("native display query failed: %v", err)
		return nil
	}
	parts := strings.Split(strings.TrimSpace(string(out)), ",")
	if len(parts) != 4 {
		return nil
	}
	width, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return nil
	}
	height, err := strconv.Atoi(strings.TrimSpace(parts[3]))
	if err != nil {
		return nil
	}
	if width <= 0 || height <= 0 {
		return nil
	}
	return &Size{Width: width, Height: height}
}
