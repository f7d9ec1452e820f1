package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/entrhq/browserprofile/pkg/logging"
)

var (
	pkgLog     *logging.Logger
	pkgLogOnce sync.Once
)

// pkgLogger returns the shared component logger. Logging failures fall back
// to stderr inside the logging package, so the error is ignored here.
func pkgLogger() *logging.Logger {
	pkgLogOnce.Do(func() {
		pkgLog, _ = logging.NewLogger("profile")
	})
	return pkgLog
}

// PrepareUserDataDir materializes the user data and downloads directories,
// expanding "~" and creating parents on demand, and removes a stale
// SingletonLock left behind by a crashed browser. The expanded absolute
// paths are written back to the profile. Idempotent; one of the two explicit
// mutators on a Profile.
func (p *Profile) PrepareUserDataDir() error {
	if p.UserDataDir != "" {
		dir, err := expandPath(p.UserDataDir)
		if err != nil {
			return fmt.Errorf("resolve user_data_dir: %w", err)
		}
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("create user_data_dir: %w", err)
		}
		p.UserDataDir = dir

		// The lock is usually a dangling symlink, so Lstat rather than Stat.
		lock := filepath.Join(dir, "SingletonLock")
		if _, err := os.Lstat(lock); err == nil {
			if err := os.Remove(lock); err != nil {
				return fmt.Errorf("remove stale SingletonLock: %w", err)
			}
			pkgLogger().Warnf("removed stale SingletonLock in %s; multiple browser processes sharing one user_data_dir can corrupt the profile", dir)
		}
	}

	if p.DownloadsDir != "" {
		dir, err := expandPath(p.DownloadsDir)
		if err != nil {
			return fmt.Errorf("resolve downloads_dir: %w", err)
		}
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("create downloads_dir: %w", err)
		}
		p.DownloadsDir = dir
	}

	return nil
}

// expandPath resolves a leading "~" against the user's home directory and
// makes the path absolute.
func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return filepath.Abs(path)
}
