package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssureda/go-val-report/internal/normalizer"
	"github.com/ssureda/go-val-report/internal/report"
)

var analyzeCSV bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <match.json>",
	Short: "Normalize a match export and print the scoreboard",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeCSV, "csv", false, "also print the CSV report to stdout")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read match file: %w", err)
	}

	rep, err := normalizer.Normalize(string(data))
	if err != nil {
		return fmt.Errorf("normalize match: %w", err)
	}

	report.PrintMatchSummary(os.Stdout, rep)
	report.PrintScoreboard(os.Stdout, rep)
	fmt.Fprintln(os.Stdout)
	report.PrintTeamSummary(os.Stdout, rep)

	if analyzeCSV {
		fmt.Fprintln(os.Stdout)
		fmt.Fprintln(os.Stdout, report.ToCSV(rep))
	}
	return nil
}
