package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssureda/go-val-report/internal/normalizer"
	"github.com/ssureda/go-val-report/internal/report"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <match.json>",
	Short: "Normalize a match export and write the CSV report",
	Long: `Normalizes a match-result JSON export and writes the scoreboard plus
team summary as CSV.

Example:
  valreport export match.json
  valreport export match.json --out scrim-13.csv
  valreport export match.json --out -   # print to stdout`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "match_stats.csv", `output file path ("-" for stdout)`)
}

func runExport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read match file: %w", err)
	}

	rep, err := normalizer.Normalize(string(data))
	if err != nil {
		return fmt.Errorf("normalize match: %w", err)
	}

	csv := report.ToCSV(rep)
	if exportOut == "-" {
		fmt.Fprintln(os.Stdout, csv)
		return nil
	}
	if err := os.WriteFile(exportOut, []byte(csv+"\n"), 0644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%d players)\n", exportOut, len(rep.Leaderboard))
	return nil
}
