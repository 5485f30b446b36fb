package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ssureda/go-val-report/internal/model"
)

func sampleReport() *model.MatchReport {
	lia := model.Player{IGN: "Lia#EU1", Agent: "Sova", Kills: 10, Deaths: 5, KD: 2, ACS: 180}
	max := model.Player{IGN: "Max#EU2", Agent: "Reyna", Kills: 12, Deaths: 9, KD: 12.0 / 9.0, ACS: 240}
	return &model.MatchReport{
		Map:         "Ascent",
		MatchScore:  "13-11",
		Leaderboard: []model.Player{max, lia},
		Teams: [2]model.Team{
			{Name: "TeamLia", Players: []model.Player{lia}, Stats: model.TeamStats{AvgACS: 180, RoundsWon: 13, HasRoundsWon: true}},
			{Name: "TeamMax", Players: []model.Player{max}, Stats: model.TeamStats{AvgACS: 240, RoundsWon: 11, HasRoundsWon: true}},
		},
	}
}

func TestPrintMatchSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintMatchSummary(&buf, sampleReport())
	out := buf.String()
	for _, want := range []string{"Ascent", "13-11", "Max#EU2"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q: %s", want, out)
		}
	}
}

func TestPrintScoreboard(t *testing.T) {
	var buf bytes.Buffer
	PrintScoreboard(&buf, sampleReport())
	out := buf.String()
	for _, want := range []string{"Lia#EU1", "Max#EU2", "TeamLia", "TeamMax", "Reyna"} {
		if !strings.Contains(out, want) {
			t.Errorf("scoreboard missing %q", want)
		}
	}
	// Leaderboard order: Max (240 ACS) renders before Lia.
	if strings.Index(out, "Max#EU2") > strings.Index(out, "Lia#EU1") {
		t.Error("expected Max#EU2 before Lia#EU1 in scoreboard")
	}
}

func TestPrintTeamSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintTeamSummary(&buf, sampleReport())
	out := buf.String()
	for _, want := range []string{"TeamLia", "TeamMax", "180.00", "240.00", "13", "11"} {
		if !strings.Contains(out, want) {
			t.Errorf("team summary missing %q", want)
		}
	}
}

// Teams without round data render a placeholder instead of 0.
func TestPrintTeamSummaryNoRounds(t *testing.T) {
	rep := sampleReport()
	rep.Teams[0].Stats.HasRoundsWon = false
	var buf bytes.Buffer
	PrintTeamSummary(&buf, rep)
	if !strings.Contains(buf.String(), "—") {
		t.Error("expected placeholder for missing round data")
	}
}
