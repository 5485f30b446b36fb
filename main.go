// Package main is the entry point for the valreport CLI tool, which
// normalizes match telemetry JSON exports into player/team scoreboard
// reports with CSV export.
package main

import "github.com/ssureda/go-val-report/cmd"

func main() {
	cmd.Execute()
}
