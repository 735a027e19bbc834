package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/kamusis/launchkit/internal/config"
	"github.com/kamusis/launchkit/internal/launch"
	"github.com/kamusis/launchkit/internal/tui"
)

var errLauncherRunning = errors.New("launcher is already running")

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the launcher (default when no subcommand is given)",
	Args:  cobra.NoArgs,
	RunE:  runLauncher,
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runLauncher(_ *cobra.Command, _ []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	lockPath, err := launcherLockPath()
	if err != nil {
		return err
	}
	unlock, err := acquireLauncherLock(lockPath)
	if err != nil {
		return err
	}
	defer unlock()

	idx := env.buildIndex()
	spawner := launch.NewSpawner(env.cfg.Shell, env.log)
	env.log.Info("launcher opened", "entries", idx.Len())
	return tui.Run(idx, spawner, tui.Options{MaxRows: env.cfg.MaxRows, Logger: env.log})
}

// acquireLauncherLock takes the single-instance lock without waiting.
func acquireLauncherLock(path string) (func(), error) {
	l := flock.New(path)
	locked, err := l.TryLock()
	if err != nil {
		return func() {}, fmt.Errorf("cannot acquire launcher lock: %w", err)
	}
	if !locked {
		return func() {}, errLauncherRunning
	}
	return func() { _ = l.Unlock() }, nil
}

func launcherLockPath() (string, error) {
	dir, err := config.AppDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return filepath.Join(dir, "launcher.lock"), nil
}
