package model

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Player is one normalized scoreboard entry derived from a raw
// telemetry record. Stat fields stay float64 so values survive the
// document's numeric coercion untouched; FormatStat renders them the
// way the telemetry source prints numbers.
type Player struct {
	IGN   string
	Agent string

	Kills   float64
	Deaths  float64
	Assists float64
	KD      float64 // Kills/Deaths, or Kills when Deaths is 0
	ACS     float64

	FirstKills  float64
	ClutchesWon float64
	BombPlants  float64

	// Raw is the source record this player was built from. Kept for
	// later lookups against fields the player itself does not carry
	// (team round wins); not part of the player's identity.
	Raw gjson.Result
}

// BaseName returns the IGN without its tag suffix.
func (p Player) BaseName() string {
	if i := strings.Index(p.IGN, "#"); i >= 0 {
		return p.IGN[:i]
	}
	return p.IGN
}

// TeamStats holds per-team aggregates. PostPlants is the sum of raw
// bomb-plant counts; the source schema does not record whether a plant
// converted into a round win, so it is a known approximation.
type TeamStats struct {
	FirstKills float64
	PostPlants float64
	Clutches   float64
	AvgACS     float64

	// RoundsWon is only meaningful when HasRoundsWon is set; documents
	// without a finite per-player roundsWon leave it unset.
	RoundsWon    float64
	HasRoundsWon bool
}

// Team groups players with their aggregate stats. Player order is the
// bucketing order and is preserved through rendering and export.
type Team struct {
	Name    string
	Players []Player
	Stats   TeamStats
}

// MatchReport is the normalized view of one match document. Exactly
// two teams always exist; with fewer than two players one of them may
// be empty.
type MatchReport struct {
	Map        string
	MatchScore string // "{a}-{b}", or "Unknown" when either side lacks round data

	// Leaderboard holds every player sorted by ACS descending; ties
	// keep document order.
	Leaderboard []Player

	Teams [2]Team
}

// FormatStat renders a stat value the way the telemetry source prints
// numbers: integral values without a decimal part, everything else in
// full precision.
func FormatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
