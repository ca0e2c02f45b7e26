// Package roster generates sample teams with seeded, reproducible rosters.
package roster

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"gridiron-sim/internal/domain/players"
	"gridiron-sim/internal/domain/teams"
	"gridiron-sim/internal/sim/rng"
)

// Roster shape for a generated team.
const (
	runningBacks  = 2
	wideReceivers = 3
	linemen       = 5
	defenders     = 6
)

var defensivePositions = []players.Position{players.PositionDL, players.PositionLB, players.PositionDB}

// BuildSampleTeam assembles a full sample team from the stream at the given
// offset. The same source and offset always produce the same ids, roster,
// attribute spreads, and scheme bias.
func BuildSampleTeam(src *rng.Source, offset int64, name, city string) *teams.Team {
	r := src.Stream(offset)
	return buildSampleTeam(r, name, city, streamID(r))
}

// streamID derives UUIDs from the stream itself so generated ids reproduce
// across runs with the same seed.
func streamID(r *rand.Rand) func() string {
	return func() string {
		id, err := uuid.NewRandomFromReader(r)
		if err != nil {
			return uuid.NewString()
		}
		return id.String()
	}
}

func buildSampleTeam(r *rand.Rand, name, city string, newID func() string) *teams.Team {
	roster := make([]*players.Player, 0, 1+runningBacks+wideReceivers+linemen+defenders)

	qb := players.New(newID(), fmt.Sprintf("%s QB", name), players.PositionQB, 24, players.Attributes{
		players.AttrAwareness:  randAttr(r, 55, 85),
		players.AttrThrowPower: randAttr(r, 60, 95),
		players.AttrSpeed:      randAttr(r, 40, 70),
	})
	qb.HiddenPotential = r.Float64()
	roster = append(roster, qb)

	for i := 0; i < runningBacks; i++ {
		rb := players.New(newID(), fmt.Sprintf("%s RB%d", name, i+1), players.PositionRB, 20+r.Intn(7), players.Attributes{
			players.AttrSpeed:       randAttr(r, 60, 95),
			players.AttrBreakTackle: randAttr(r, 45, 85),
			players.AttrAwareness:   randAttr(r, 40, 70),
		})
		rb.HiddenPotential = r.Float64()
		roster = append(roster, rb)
	}

	for i := 0; i < wideReceivers; i++ {
		wr := players.New(newID(), fmt.Sprintf("%s WR%d", name, i+1), players.PositionWR, 19+r.Intn(9), players.Attributes{
			players.AttrSpeed:        randAttr(r, 60, 99),
			players.AttrRouteRunning: randAttr(r, 50, 90),
			players.AttrCatching:     randAttr(r, 45, 90),
		})
		wr.HiddenPotential = r.Float64()
		roster = append(roster, wr)
	}

	for i := 0; i < linemen; i++ {
		ol := players.New(newID(), fmt.Sprintf("%s OL%d", name, i+1), players.PositionOL, 25+r.Intn(7), players.Attributes{
			players.AttrStrength:  randAttr(r, 50, 90),
			players.AttrAwareness: randAttr(r, 40, 70),
		})
		ol.HiddenPotential = r.Float64()
		roster = append(roster, ol)
	}

	for i := 0; i < defenders; i++ {
		pos := defensivePositions[r.Intn(len(defensivePositions))]
		d := players.New(newID(), fmt.Sprintf("%s %s%d", name, pos, i+1), pos, 22+r.Intn(7), players.Attributes{
			players.AttrStrength:  randAttr(r, 50, 95),
			players.AttrAwareness: randAttr(r, 40, 80),
		})
		d.HiddenPotential = r.Float64()
		roster = append(roster, d)
	}

	bias := teams.SchemeBias{Run: 0.6, Pass: 0.4}
	if r.Float64() > 0.5 {
		bias = teams.SchemeBias{Run: 0.45, Pass: 0.55}
	}

	t := teams.New(newID(), name, city, roster)
	t.SchemeBias = bias
	t.CoachQuality = 0.45 + r.Float64()*0.4
	t.Resources = 0.8 + r.Float64()*0.6
	return t
}

// randAttr draws an integer-valued attribute from [lo, hi].
func randAttr(r *rand.Rand, lo, hi int) float64 {
	return float64(lo + r.Intn(hi-lo+1))
}
