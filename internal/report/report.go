package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/ssureda/go-val-report/internal/model"
)

// PrintMatchSummary prints a one-line summary header for the match.
func PrintMatchSummary(w io.Writer, r *model.MatchReport) {
	mvp := "—"
	if len(r.Leaderboard) > 0 {
		mvp = r.Leaderboard[0].IGN
	}
	fmt.Fprintf(w, "\nMap: %s  |  Score: %s  |  Players: %d  |  Top ACS: %s\n\n",
		r.Map, r.MatchScore, len(r.Leaderboard), mvp)
}

// PrintScoreboard prints the player table in leaderboard order (ACS
// descending) with each player's team label.
func PrintScoreboard(w io.Writer, r *model.MatchReport) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header("TEAM", "IGN", "AGENT", "K", "D", "A", "K/D", "ACS", "FK", "CLUTCH", "PLANTS")

	// Team labels are display glue; duplicate IGNs (e.g. several
	// "Unknown" records) resolve to one of their teams arbitrarily.
	teamByIGN := make(map[string]string)
	for _, t := range r.Teams {
		for _, p := range t.Players {
			if _, ok := teamByIGN[p.IGN]; !ok {
				teamByIGN[p.IGN] = t.Name
			}
		}
	}

	for _, p := range r.Leaderboard {
		table.Append(
			teamByIGN[p.IGN],
			p.IGN,
			p.Agent,
			model.FormatStat(p.Kills),
			model.FormatStat(p.Deaths),
			model.FormatStat(p.Assists),
			fmt.Sprintf("%.2f", p.KD),
			fmt.Sprintf("%.2f", p.ACS),
			model.FormatStat(p.FirstKills),
			model.FormatStat(p.ClutchesWon),
			model.FormatStat(p.BombPlants),
		)
	}
	table.Render()
}

// PrintTeamSummary prints the per-team aggregate table.
func PrintTeamSummary(w io.Writer, r *model.MatchReport) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header("TEAM", "PLAYERS", "FK", "POST_PLANTS", "CLUTCHES", "AVG_ACS", "ROUNDS")

	for _, t := range r.Teams {
		rounds := "—"
		if t.Stats.HasRoundsWon {
			rounds = model.FormatStat(t.Stats.RoundsWon)
		}
		table.Append(
			t.Name,
			fmt.Sprintf("%d", len(t.Players)),
			model.FormatStat(t.Stats.FirstKills),
			model.FormatStat(t.Stats.PostPlants),
			model.FormatStat(t.Stats.Clutches),
			fmt.Sprintf("%.2f", t.Stats.AvgACS),
			rounds,
		)
	}
	table.Render()
}
