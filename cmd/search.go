package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kamusis/launchkit/internal/catalog"
	"github.com/kamusis/launchkit/internal/search"
)

var (
	flagSearchLimit  int
	flagSearchScores bool
	flagListIDs      bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every launchable entry in index order",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Print the ranked view for a query",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	listCmd.Flags().BoolVar(&flagListIDs, "ids", false, "Include entry IDs (valid for this invocation only)")
	searchCmd.Flags().IntVar(&flagSearchLimit, "limit", 0, "Maximum number of results (0 = all)")
	searchCmd.Flags().BoolVar(&flagSearchScores, "scores", false, "Show match scores")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	printEntries(cmd.OutOrStdout(), env.buildIndex().Entries(), flagListIDs)
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	query := strings.Join(args, " ")
	matches := search.Limit(search.RankMatches(env.buildIndex(), query), flagSearchLimit)
	printMatches(cmd.OutOrStdout(), query, matches, flagSearchScores)
	return nil
}

func printEntries(w io.Writer, entries []catalog.Entry, withIDs bool) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		if withIDs {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.ID, e.Name, e.Exec)
		} else {
			fmt.Fprintf(tw, "%s\t%s\n", e.Name, e.Exec)
		}
	}
	_ = tw.Flush()
}

func printMatches(w io.Writer, query string, matches []search.Match, withScores bool) {
	fmt.Fprintf(w, "Results for %q (%d found):\n", query, len(matches))
	if len(matches) == 0 {
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, m := range matches {
		score := ""
		if withScores {
			score = fmt.Sprintf("[%d]", m.Score)
		}
		fmt.Fprintf(tw, "  %d.\t%s\t%s\t%s\n", i+1, score, m.Entry.Name, strings.TrimSpace(m.Entry.Description))
	}
	_ = tw.Flush()
}
