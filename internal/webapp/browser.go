// Package webapp opens URLs as app-mode windows of the default browser and
// installs launch descriptors for such web apps.
package webapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/kamusis/launchkit/internal/launch"
	"github.com/kamusis/launchkit/internal/logging"
)

// Process exit codes of the browser flow.
const (
	ExitQueryFailed = 1
	ExitUnsupported = 1
	ExitUsage       = 2
	ExitNotLocated  = 3
	ExitExecFailed  = 4
)

// SupportedBrowsers are the desktop IDs (by prefix) whose browsers accept
// --app=<url>.
var SupportedBrowsers = []string{
	"chromium",
	"google-chrome",
	"brave-browser",
	"microsoft-edge",
	"opera",
	"vivaldi",
	"helium-browser",
}

// Stage names one step of the browser flow.
type Stage int

const (
	StageUsage Stage = iota
	StageResolveDefaultBrowser
	StageValidateSupported
	StageLocateExecutable
	StageBuildCommand
	StageReplaceProcess
)

func (s Stage) String() string {
	switch s {
	case StageUsage:
		return "usage"
	case StageResolveDefaultBrowser:
		return "resolve-default-browser"
	case StageValidateSupported:
		return "validate-supported"
	case StageLocateExecutable:
		return "locate-executable"
	case StageBuildCommand:
		return "build-command"
	case StageReplaceProcess:
		return "replace-process"
	default:
		return "unknown"
	}
}

// ExitError is a terminal failure of the browser flow. Code is the process
// exit status the caller should use.
type ExitError struct {
	Stage Stage
	Code  int
	Err   error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

// Runner executes the browser flow. Every stage runs at most once and any
// failure is final.
type Runner struct {
	// Query returns the default browser's desktop ID.
	Query func(ctx context.Context) (string, error)
	// Locate returns the executable named by the browser's descriptor.
	Locate func(browserID string) (string, bool)
	// Replace replaces the current process; it only returns on failure.
	Replace func(argv []string) error
	Logger  *slog.Logger
}

// NewRunner wires the real environment: xdg-settings, the descriptor
// directories derived from getenv, and process replacement.
func NewRunner(getenv func(string) string, logger *slog.Logger) *Runner {
	dirs := BrowserDirs(getenv)
	return &Runner{
		Query: QueryDefaultBrowser,
		Locate: func(id string) (string, bool) {
			return LocateExecutable(dirs, id)
		},
		Replace: launch.Replace,
		Logger:  logger,
	}
}

// Run executes the flow for argv (argv[0] is the program name, argv[1] the
// URL, the rest is forwarded to the browser untouched). It returns an
// *ExitError on failure and does not return at all when the exec succeeds.
func (r *Runner) Run(ctx context.Context, argv []string) error {
	log := r.Logger
	if log == nil {
		log = logging.Discard()
	}
	if len(argv) < 2 {
		prog := "web-app-run"
		if len(argv) == 1 {
			prog = argv[0]
		}
		return &ExitError{Stage: StageUsage, Code: ExitUsage, Err: fmt.Errorf("Usage: %s <url> [args...]", prog)}
	}
	target, forwarded := argv[1], argv[2:]

	id, err := r.Query(ctx)
	if err != nil || id == "" {
		log.Debug("default browser query failed", "err", err)
		return &ExitError{Stage: StageResolveDefaultBrowser, Code: ExitQueryFailed,
			Err: errors.New("Error: could not determine default web browser via xdg-settings.")}
	}

	if !IsSupported(id) {
		return &ExitError{Stage: StageValidateSupported, Code: ExitUnsupported,
			Err: fmt.Errorf("Error: your default browser (%s) is not supported.", id)}
	}

	exe, ok := r.Locate(id)
	if !ok {
		return &ExitError{Stage: StageLocateExecutable, Code: ExitNotLocated,
			Err: fmt.Errorf("Could not find browser executable for %s in known locations.", id)}
	}

	cmd := BuildCommand(exe, target, forwarded)
	log.Info("exec browser", "browser", id, "argv", cmd)
	if err := r.Replace(cmd); err != nil {
		return &ExitError{Stage: StageReplaceProcess, Code: ExitExecFailed,
			Err: fmt.Errorf("Failed to start the browser: %v", err)}
	}
	return nil
}

// IsSupported reports whether id starts with one of SupportedBrowsers.
func IsSupported(id string) bool {
	for _, p := range SupportedBrowsers {
		if strings.HasPrefix(id, p) {
			return true
		}
	}
	return false
}

// BuildCommand returns the argv that opens target in app mode.
func BuildCommand(exe, target string, forwarded []string) []string {
	argv := make([]string, 0, 5+len(forwarded))
	argv = append(argv, "setsid", "uwsm-app", "--", exe, "--app="+target)
	return append(argv, forwarded...)
}

// QueryDefaultBrowser asks xdg-settings for the default web browser.
func QueryDefaultBrowser(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "xdg-settings", "get", "default-web-browser").Output()
	if err != nil {
		return "", fmt.Errorf("xdg-settings: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
