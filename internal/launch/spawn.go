package launch

import (
	"log/slog"
	"os"
	"os/exec"
	"syscall"

	"github.com/kamusis/launchkit/internal/logging"
)

// DefaultShell interprets commands when Spawner.Shell is empty.
const DefaultShell = "sh"

// Spawner starts launch commands through a shell, fire-and-forget.
type Spawner struct {
	Shell  string
	Logger *slog.Logger

	// start is replaced in tests.
	start func(*exec.Cmd) error
}

// NewSpawner returns a Spawner using shell (DefaultShell when empty).
func NewSpawner(shell string, logger *slog.Logger) *Spawner {
	if shell == "" {
		shell = DefaultShell
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Spawner{Shell: shell, Logger: logger}
}

// Command builds the shell invocation for template after field-code
// stripping. ok is false when nothing is left to run.
func (s *Spawner) Command(template string) (cmd *exec.Cmd, ok bool) {
	line := StripFieldCodes(template)
	if line == "" {
		return nil, false
	}
	shell := s.Shell
	if shell == "" {
		shell = DefaultShell
	}
	cmd = exec.Command(shell, "-c", line)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	return cmd, true
}

// Spawn starts template detached and returns immediately. It does not wait
// for the child or report whether the command inside the shell succeeded;
// a failure to start the shell itself is logged and swallowed.
func (s *Spawner) Spawn(template string) {
	log := s.Logger
	if log == nil {
		log = logging.Discard()
	}
	cmd, ok := s.Command(template)
	if !ok {
		log.Debug("nothing to launch", "exec", template)
		return
	}
	start := s.start
	if start == nil {
		start = startAndReap
	}
	if err := start(cmd); err != nil {
		log.Warn("spawn failed", "shell", cmd.Path, "cmd", cmd.Args[len(cmd.Args)-1], "err", err)
		return
	}
	log.Info("launched", "cmd", cmd.Args[len(cmd.Args)-1])
}

func startAndReap(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
