//go:build windows

package profile

import "golang.org/x/sys/windows"

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
)

const (
	smCxScreen = 0
	smCyScreen = 1
)

// nativeDisplaySize reads the primary monitor dimensions from user32.
func nativeDisplaySize() *Size {
	width, _, _ := procGetSystemMetrics.Call(uintptr(smCxScreen))
	height, _, _ := procGetSystemMetrics.Call(uintptr(smCyScreen))
	if width == 0 || height == 0 {
		pkgLogger().Debugf("native display query returned no screen metrics")
		return nil
	}
	return &Size{Width: int(width), Height: int(height)}
}
