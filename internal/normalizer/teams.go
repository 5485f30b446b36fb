package normalizer

import (
	"github.com/tidwall/gjson"

	"github.com/ssureda/go-val-report/internal/model"
)

// Side selects one of the two report teams.
type Side int

const (
	SideA Side = iota
	SideB
)

// Bucketer decides which side a player lands on when the document
// carries no authoritative team assignment. Implementations must be
// deterministic for a given grouping key so repeated normalization of
// the same document yields the same split. A future source of real
// team identity can replace the default without touching aggregation.
type Bucketer interface {
	Bucket(groupKey string) Side
}

// CharCodeParity buckets by the parity of the sum of the grouping
// key's character codes. It guarantees a repeatable split, not
// game-accurate membership: without hint fields two actual teammates
// can land on opposite sides.
type CharCodeParity struct{}

func (CharCodeParity) Bucket(groupKey string) Side {
	sum := 0
	for _, r := range groupKey {
		sum += int(r)
	}
	if sum%2 == 0 {
		return SideA
	}
	return SideB
}

var defaultBucketer Bucketer = CharCodeParity{}

// teamHintFields are probed on the raw record in priority order; the
// exports that carry a team label are inconsistent about casing.
var teamHintFields = [...]string{"team", "Team", "teamId", "party"}

// groupingKey returns the string the bucketer hashes for a player:
// the first present team-hint field's string form, else the IGN.
func groupingKey(p model.Player) string {
	for _, f := range teamHintFields {
		if v := p.Raw.Get(f); v.Exists() && v.Type != gjson.Null {
			return v.String()
		}
	}
	return p.IGN
}

// splitTeams buckets players onto two sides and enforces the
// non-empty invariant: whenever two or more players exist, neither
// side may end up empty, so the last player of the populated side is
// moved across. A lone player stays on whichever side it hashed to.
func splitTeams(players []model.Player, bk Bucketer) (a, b []model.Player) {
	for _, p := range players {
		if bk.Bucket(groupingKey(p)) == SideA {
			a = append(a, p)
		} else {
			b = append(b, p)
		}
	}
	if len(a) == 0 && len(b) > 1 {
		a = append(a, b[len(b)-1])
		b = b[:len(b)-1]
	}
	if len(b) == 0 && len(a) > 1 {
		b = append(b, a[len(a)-1])
		a = a[:len(a)-1]
	}
	return a, b
}
