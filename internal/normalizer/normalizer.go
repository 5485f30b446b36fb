// Package normalizer converts raw match telemetry JSON into a
// MatchReport. The input format is loosely keyed (opaque player IDs at
// the top level, optional nested stat blocks, arbitrary hint fields),
// so everything here probes for fields and defaults instead of
// decoding into a fixed schema. Only syntactically invalid JSON is an
// error; valid-but-unexpected shapes degrade to a low-fidelity report.
//
// The top-level "map" key is the one reserved name: it holds match
// metadata and is deliberately excluded from player extraction even
// though it is object-shaped like a player record.
package normalizer

import (
	"encoding/json"
	"errors"
	"math"
	"sort"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/ssureda/go-val-report/internal/model"
)

// ParseError reports input text that is not syntactically valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "parse match document: " + e.Err.Error() }

func (e *ParseError) Unwrap() error { return e.Err }

// Normalize parses doc and builds a MatchReport. It fails with a
// *ParseError when doc is not valid JSON; every other input shape
// produces a (possibly degenerate) report.
func Normalize(doc string) (*model.MatchReport, error) {
	if !gjson.Valid(doc) {
		var probe any
		err := json.Unmarshal([]byte(doc), &probe)
		if err == nil {
			err = errors.New("malformed document")
		}
		return nil, &ParseError{Err: err}
	}
	return NormalizeValue(gjson.Parse(doc)), nil
}

// NormalizeValue builds a MatchReport from an already-parsed JSON
// value. It never fails: a root that is not an object yields a report
// with zero players and two empty teams.
func NormalizeValue(root gjson.Result) *model.MatchReport {
	rep := &model.MatchReport{
		Map:        "Unknown",
		MatchScore: "Unknown",
	}

	var players []model.Player
	if root.IsObject() {
		rep.Map = mapName(root)
		players = extractPlayers(root)
	}

	rep.Leaderboard = leaderboard(players)

	a, b := splitTeams(players, defaultBucketer)
	rep.Teams[0] = buildTeam(a, "TeamA")
	rep.Teams[1] = buildTeam(b, "TeamB")

	sa, sb := rep.Teams[0].Stats, rep.Teams[1].Stats
	if sa.HasRoundsWon && sb.HasRoundsWon {
		rep.MatchScore = model.FormatStat(sa.RoundsWon) + "-" + model.FormatStat(sb.RoundsWon)
	}
	return rep
}

// mapName reads root.map.<first key>.map. The map block is keyed by an
// opaque identifier, so the first key in document order is taken.
func mapName(root gjson.Result) string {
	block := root.Get("map")
	if !block.IsObject() {
		return "Unknown"
	}
	name := "Unknown"
	block.ForEach(func(_, v gjson.Result) bool {
		if s := v.Get("map"); s.Type == gjson.String {
			name = s.Str
		}
		return false // first key only
	})
	return name
}

// extractPlayers walks every top-level value in document order and
// builds a player from each object-shaped record. The reserved "map"
// key and non-object values are skipped.
func extractPlayers(root gjson.Result) []model.Player {
	var players []model.Player
	root.ForEach(func(key, rec gjson.Result) bool {
		if key.String() == "map" || !rec.IsObject() {
			return true
		}
		players = append(players, buildPlayer(rec))
		return true
	})
	return players
}

func buildPlayer(rec gjson.Result) model.Player {
	p := model.Player{
		IGN:         ignFor(rec),
		Agent:       agentName(rec),
		Kills:       numField(rec, "side.Total.kills"),
		Deaths:      numField(rec, "side.Total.deaths"),
		Assists:     numField(rec, "side.Total.assists"),
		ACS:         numField(rec, "side.Total.acs"),
		FirstKills:  numField(rec, "side.Total.firstKills"),
		ClutchesWon: numField(rec, "side.Total.clutchesWon"),
		BombPlants:  numField(rec, "side.Total.bombPlants"),
		Raw:         rec,
	}
	if p.Deaths > 0 {
		p.KD = p.Kills / p.Deaths
	} else {
		p.KD = p.Kills
	}
	return p
}

// ignFor composes the display identity: "gameName#tagLine" when both
// parts are present, whichever exists alone, else "Unknown".
func ignFor(rec gjson.Result) string {
	name := rec.Get("gameName").String()
	tag := rec.Get("tagLine").String()
	switch {
	case name != "" && tag != "":
		return name + "#" + tag
	case name != "":
		return name
	case tag != "":
		return tag
	}
	return "Unknown"
}

// agentName follows agent.<first key>.agent, defaulting to "Unknown"
// when any step is missing.
func agentName(rec gjson.Result) string {
	block := rec.Get("agent")
	if !block.IsObject() {
		return "Unknown"
	}
	name := "Unknown"
	block.ForEach(func(_, v gjson.Result) bool {
		if s := v.Get("agent"); s.Type == gjson.String {
			name = s.Str
		}
		return false
	})
	return name
}

// numField coerces rec.<path> to a finite number: native numbers pass
// through, numeric strings are parsed, anything else (booleans and
// non-finite values included) is 0.
func numField(rec gjson.Result, path string) float64 {
	f, ok := optNum(rec, path)
	if !ok {
		return 0
	}
	return f
}

// optNum reads rec.<path> as a finite number, reporting ok=false when
// the field is missing, not numeric, or out of float64 range (unlike
// numField, absence is distinguished from zero).
func optNum(rec gjson.Result, path string) (float64, bool) {
	v := rec.Get(path)
	switch v.Type {
	case gjson.Number:
		if math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
			return 0, false
		}
		return v.Num, true
	case gjson.String:
		f, err := strconv.ParseFloat(v.Str, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// leaderboard returns the players sorted by ACS descending. The sort
// is stable so equal-ACS players keep document order.
func leaderboard(players []model.Player) []model.Player {
	out := make([]model.Player, len(players))
	copy(out, players)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ACS > out[j].ACS })
	return out
}

func buildTeam(players []model.Player, fallback string) model.Team {
	return model.Team{
		Name:    teamName(players, fallback),
		Players: players,
		Stats:   aggregateTeam(players),
	}
}

// teamName derives "Team<gamer name>" from the first player's IGN
// prefix; empty teams get the bare per-side fallback label.
func teamName(players []model.Player, fallback string) string {
	if len(players) == 0 {
		return fallback
	}
	return "Team" + players[0].BaseName()
}

// aggregateTeam sums the per-player signals into TeamStats. RoundsWon
// is the max of the finite per-player side.Total.roundsWon values: the
// source duplicates this team-level stat onto every record, so max
// tolerates individual records missing it or carrying garbage.
func aggregateTeam(players []model.Player) model.TeamStats {
	var st model.TeamStats
	for _, p := range players {
		st.FirstKills += p.FirstKills
		st.PostPlants += p.BombPlants
		st.Clutches += p.ClutchesWon
		st.AvgACS += p.ACS
		if rw, ok := optNum(p.Raw, "side.Total.roundsWon"); ok {
			if !st.HasRoundsWon || rw > st.RoundsWon {
				st.RoundsWon = rw
				st.HasRoundsWon = true
			}
		}
	}
	n := len(players)
	if n < 1 {
		n = 1
	}
	st.AvgACS /= float64(n)
	return st
}
