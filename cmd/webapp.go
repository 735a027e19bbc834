package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kamusis/launchkit/internal/logging"
	"github.com/kamusis/launchkit/internal/tui"
	"github.com/kamusis/launchkit/internal/webapp"
)

var webRunCmd = &cobra.Command{
	Use:   "web-run <url> [browser-args...]",
	Short: "Open a URL as an app window of the default browser",
	Long: `Open <url> in app mode (--app=<url>) with the default web browser.
Everything after the URL is passed to the browser unchanged.

Only Chromium-family browsers support app mode. Exit codes:
  1  default browser unknown or unsupported
  2  usage error
  3  browser executable not found
  4  browser could not be started`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		argv := append([]string{cmd.CommandPath()}, args...)
		return runWebApp(cmd.Context(), argv)
	},
}

var webInstallCmd = &cobra.Command{
	Use:   "web-install [name] [url] [icon] [mime-types]",
	Short: "Install a web app as a desktop entry",
	Long: `Create ~/.local/share/applications/<name>.desktop that opens <url>
through web-app-run. The icon is downloaded (http/https) or copied from a
local path. Missing values are asked for interactively.`,
	Args: cobra.MaximumNArgs(4),
	RunE: runWebInstall,
}

func init() {
	rootCmd.AddCommand(webRunCmd)
	rootCmd.AddCommand(webInstallCmd)
}

// runWebApp runs the browser flow on argv. On success the process image is
// replaced and this never returns.
func runWebApp(ctx context.Context, argv []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log, closeLog := logging.Discard(), func() error { return nil }
	if env, err := loadEnv(); err == nil {
		log, closeLog = env.log, env.closeLog
	}
	defer func() { _ = closeLog() }()

	return webapp.NewRunner(os.Getenv, log).Run(ctx, argv)
}

func runWebInstall(cmd *cobra.Command, args []string) error {
	values, err := installValues(args, os.Stdin, os.Stdout, term.IsTerminal(int(os.Stdin.Fd())))
	if err != nil {
		if errors.Is(err, tui.ErrCancelled) {
			printWarn("", "web-install cancelled")
			return nil
		}
		return err
	}

	appsDir, err := webapp.DefaultAppsDir()
	if err != nil {
		return err
	}
	res, err := webapp.Install(cmd.Context(), webapp.InstallOptions{
		Name:      values[0],
		URL:       values[1],
		Icon:      values[2],
		MimeTypes: values[3],
		AppsDir:   appsDir,
	})
	if err != nil {
		return err
	}
	printOK(values[0], "icon saved to "+res.IconPath)
	printOK(values[0], "desktop entry written to "+res.DesktopPath)
	printInfo("", "it will appear in the launcher the next time it opens")
	return nil
}

// installValues returns name, URL, icon and mime types. With at least three
// arguments nothing is prompted for; otherwise the missing values are asked
// for on in/out, which must be a terminal.
func installValues(args []string, in io.Reader, out io.Writer, interactive bool) ([]string, error) {
	values := make([]string, 4)
	copy(values, args)
	if len(args) >= 3 {
		return values, nil
	}

	fields := []tui.Field{
		{Label: "Name", Value: values[0]},
		{Label: "URL", Value: values[1]},
		{Label: "Icon URL or path", Value: values[2]},
		{Label: "Mime types (optional)", Optional: true},
	}
	if !interactive {
		return nil, fmt.Errorf("missing %v and stdin is not a terminal; pass them as arguments", missingFields(fields))
	}
	return tui.Prompt(in, out, fields)
}

func missingFields(fields []tui.Field) []string {
	var out []string
	for _, f := range fields {
		if f.Value == "" && !f.Optional {
			out = append(out, f.Label)
		}
	}
	return out
}
