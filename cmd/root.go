package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kamusis/launchkit/internal/webapp"
)

var rootCmd = &cobra.Command{
	Use:   "launchkit",
	Short: "Keyboard-driven application launcher",
	Long: `launchkit indexes the desktop entries installed on this machine and
lets you fuzzy-search and launch them from a terminal window.

Run without a subcommand to open the launcher. When invoked as web-app-run
it opens a URL as an app window of the default browser.`,
	SilenceUsage:  true, // don't print usage on operational errors
	SilenceErrors: true, // Execute prints the error once
	RunE:          runLauncher,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.launchkit/launchkit.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Write debug-level diagnostics to the log file")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	// LAUNCHKIT_CONFIG, LAUNCHKIT_DEBUG
	viper.SetEnvPrefix("LAUNCHKIT")
	viper.AutomaticEnv()
}

// Execute is called by main.go.
func Execute() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	if len(args) > 0 && filepath.Base(args[0]) == webapp.RunCommand {
		return exitCode(runWebApp(context.Background(), args))
	}
	return exitCode(rootCmd.Execute())
}

// exitCode prints err and maps it to a process exit status. Browser-flow
// failures carry their own status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintln(os.Stderr, err)
	var ee *webapp.ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return 1
}
