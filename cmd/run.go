package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamusis/launchkit/internal/catalog"
	"github.com/kamusis/launchkit/internal/launch"
)

var (
	flagRunID    string
	flagRunPrint bool
)

var runCmd = &cobra.Command{
	Use:   "run <name>",
	Short: "Launch an entry by name without opening the launcher",
	Long: `Launch an entry by its display name (case-sensitive, exact).

Several entries may share a name; in that case the candidates are listed
and nothing is launched. Pick one with --id, using an ID printed by this
same invocation's error or by 'launchkit list --ids' in the same session.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagRunID, "id", "", "Launch the entry with this ID")
	runCmd.Flags().BoolVar(&flagRunPrint, "print", false, "Print the command instead of launching it")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	if name == "" && flagRunID == "" {
		return cmd.Help()
	}

	env, err := loadEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	entry, err := resolveEntry(env.buildIndex(), name, flagRunID)
	if err != nil {
		return err
	}

	spawner := launch.NewSpawner(env.cfg.Shell, env.log)
	if flagRunPrint {
		c, ok := spawner.Command(entry.Exec)
		if !ok {
			return fmt.Errorf("%s has nothing to run after removing field codes", entry.Name)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(c.Args, " "))
		return nil
	}
	spawner.Spawn(entry.Exec)
	printOK(entry.Name, "launched")
	return nil
}

// resolveEntry selects by ID when given, otherwise by exact name. An
// ambiguous name is an error that lists the candidates.
func resolveEntry(idx *catalog.Index, name, id string) (catalog.Entry, error) {
	if id != "" {
		e, ok := idx.Lookup(id)
		if !ok {
			return catalog.Entry{}, fmt.Errorf("no entry with id %s", id)
		}
		return e, nil
	}
	found := idx.FindByName(name)
	switch len(found) {
	case 0:
		return catalog.Entry{}, fmt.Errorf("no application named %q", name)
	case 1:
		return found[0], nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d applications are named %q:", len(found), name)
	for _, e := range found {
		fmt.Fprintf(&b, "\n  %s  %s  (%s)", e.ID, e.Exec, e.Source)
	}
	return catalog.Entry{}, errors.New(b.String())
}
