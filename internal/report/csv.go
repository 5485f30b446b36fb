package report

import (
	"fmt"
	"strings"

	"github.com/ssureda/go-val-report/internal/model"
)

const (
	csvPlayerHeader  = "Team,IGN,Agent,Kills,Deaths,Assists,K/D,ACS,FirstKills,Clutches,PostPlants"
	csvSummaryMarker = "Team Summary"
	csvSummaryHeader = "Team,FirstKills,PostPlants,Clutches,AvgTeamACS"
)

// ToCSV renders the report in the match_stats CSV layout: player rows
// grouped by team in stored order, a blank separator row, then the
// team summary block. Fields are joined with bare commas and never
// quoted — the layout (including the "Team Summary" marker row) is a
// fixed contract, which is why this does not go through encoding/csv.
func ToCSV(r *model.MatchReport) string {
	rows := make([]string, 0, len(r.Leaderboard)+6)

	rows = append(rows, csvPlayerHeader)
	for _, t := range r.Teams {
		for _, p := range t.Players {
			rows = append(rows, strings.Join([]string{
				t.Name,
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
			}, ","))
		}
	}

	rows = append(rows, "", csvSummaryMarker, csvSummaryHeader)
	for _, t := range r.Teams {
		rows = append(rows, strings.Join([]string{
			t.Name,
			model.FormatStat(t.Stats.FirstKills),
			model.FormatStat(t.Stats.PostPlants),
			model.FormatStat(t.Stats.Clutches),
			fmt.Sprintf("%.2f", t.Stats.AvgACS),
		}, ","))
	}

	return strings.Join(rows, "\n")
}
