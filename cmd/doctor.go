package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kamusis/launchkit/internal/config"
	"github.com/kamusis/launchkit/internal/desktop"
	"github.com/kamusis/launchkit/internal/logging"
	"github.com/kamusis/launchkit/internal/webapp"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run environment checks",
	Long: `Check that the tools launchkit relies on are installed and that desktop
entries and the default browser can be found. Run this when an application
does not show up or web-app-run refuses to start.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	allOK := true
	failD := func(format string, args ...any) {
		printErr("", fmt.Sprintf(format, args...))
		allOK = false
	}

	printSection("launchkit doctor")
	fmt.Println()

	// ── Check 1: config ───────────────────────────────────────────────────────
	fmt.Println("[ launchkit.yaml ]")
	cfgPath := viper.GetString("config")
	if cfgPath == "" {
		cfgPath, _ = config.ConfigPath()
	}
	cfg, loadErr := config.Load(cfgPath)
	if loadErr != nil {
		failD("cannot parse %s: %v", cfgPath, loadErr)
		cfg = config.DefaultConfig()
	} else if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		printMiss("", fmt.Sprintf("%s not found, using defaults (run 'launchkit init' to create it)", cfgPath))
	} else {
		printOK("", fmt.Sprintf("valid YAML: %s", cfgPath))
	}
	fmt.Println()

	// ── Check 2: tools on PATH ────────────────────────────────────────────────
	fmt.Println("[ Tools ]")
	for _, tool := range []struct {
		name     string
		required bool
		purpose  string
	}{
		{cfg.Shell, true, "runs launch commands"},
		{"setsid", false, "detaches web apps"},
		{"uwsm-app", false, "wraps web apps in a session unit"},
		{"xdg-settings", false, "reports the default browser"},
	} {
		path, err := exec.LookPath(tool.name)
		switch {
		case err == nil:
			printOK(tool.name, path)
		case tool.required:
			failD("[%s] not found on PATH (%s)", tool.name, tool.purpose)
		default:
			printWarn(tool.name, fmt.Sprintf("not found on PATH; web-app-run needs it (%s)", tool.purpose))
		}
	}
	fmt.Println()

	// ── Check 3: descriptor directories ───────────────────────────────────────
	fmt.Println("[ Desktop entries ]")
	dirs := desktop.SearchDirs(os.Getenv, cfg.ExtraDirs)
	present := 0
	for _, d := range dirs {
		if info, err := os.Stat(d); err == nil && info.IsDir() {
			printOK("", d)
			present++
		} else {
			printMiss("", d)
		}
	}
	if present == 0 {
		failD("no application directories exist; the launcher will be empty")
	} else {
		env := &appEnv{cfg: cfg, log: logging.Discard()}
		printInfo("", fmt.Sprintf("%d launchable entries indexed", env.buildIndex().Len()))
	}
	fmt.Println()

	// ── Check 4: default browser ──────────────────────────────────────────────
	fmt.Println("[ Default browser ]")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	id, err := webapp.QueryDefaultBrowser(ctx)
	switch {
	case err != nil || id == "":
		printWarn("", "could not determine default web browser via xdg-settings")
	case !webapp.IsSupported(id):
		printWarn(id, "does not support app mode; web-app-run will refuse it")
	default:
		if exe, ok := webapp.LocateExecutable(webapp.BrowserDirs(os.Getenv), id); ok {
			printOK(id, exe)
		} else {
			printWarn(id, "descriptor not found in known locations")
		}
	}
	fmt.Println()

	// ── Summary ───────────────────────────────────────────────────────────────
	fmt.Println("===================")
	if allOK {
		fmt.Println("✓  All checks passed.")
	} else {
		fmt.Fprintln(os.Stderr, "✗  One or more checks failed. See details above.")
		return fmt.Errorf("doctor found issues")
	}
	return nil
}
