package teams

import "gridiron-sim/internal/domain/players"

// SchemeBias expresses a team's run/pass play-calling lean. The values are
// used as independent Bernoulli weights and are not required to sum to 1.
type SchemeBias struct {
	Run  float64 `json:"run"`
	Pass float64 `json:"pass"`
}

// SeasonStats accumulates a team's record over a season. The caller resets
// it between seasons; within a season every field only grows.
type SeasonStats struct {
	Wins          int `json:"wins"`
	Losses        int `json:"losses"`
	PointsFor     int `json:"pointsFor"`
	PointsAgainst int `json:"pointsAgainst"`
}

// PointDifferential returns points for minus points against.
func (s SeasonStats) PointDifferential() int {
	return s.PointsFor - s.PointsAgainst
}

// Finances holds team financial state.
type Finances struct {
	Cap float64 `json:"cap"`
}

// Team owns a roster of players. A player belongs to at most one team at a
// time; rosters are never shared between concurrently simulated games.
type Team struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	City         string            `json:"city"`
	Roster       []*players.Player `json:"roster"`
	SchemeBias   SchemeBias        `json:"schemeBias"`
	CoachQuality float64           `json:"coachQuality"`
	Resources    float64           `json:"resources"`
	SeasonStats  SeasonStats       `json:"seasonStats"`
	Finances     Finances          `json:"finances"`
}

// New constructs a Team with its own roster slice and default finances.
func New(id, name, city string, roster []*players.Player) *Team {
	return &Team{
		ID:           id,
		Name:         name,
		City:         city,
		Roster:       append([]*players.Player(nil), roster...),
		SchemeBias:   SchemeBias{Run: 0.5, Pass: 0.5},
		CoachQuality: 0.5,
		Resources:    1.0,
		Finances:     Finances{Cap: 100.0},
	}
}

// Rating summarizes team strength as the mean overall rating of the roster,
// defaulting to the neutral attribute value for an empty roster.
func (t *Team) Rating() float64 {
	if t == nil || len(t.Roster) == 0 {
		return players.DefaultAttribute
	}
	total := 0.0
	for _, p := range t.Roster {
		total += p.Overall()
	}
	return total / float64(len(t.Roster))
}

// MeanAttribute averages the named attribute over roster members accepted by
// keep, returning the neutral default when no member matches. Guarding the
// empty subset here keeps every positional average in the play model safe.
func (t *Team) MeanAttribute(attr string, keep func(players.Position) bool) float64 {
	if t == nil {
		return players.DefaultAttribute
	}
	total := 0.0
	count := 0
	for _, p := range t.Roster {
		if keep != nil && !keep(p.Position) {
			continue
		}
		total += p.Attributes.Get(attr)
		count++
	}
	if count == 0 {
		return players.DefaultAttribute
	}
	return total / float64(count)
}

// FindByPosition returns roster members accepted by keep, in roster order.
func (t *Team) FindByPosition(keep func(players.Position) bool) []*players.Player {
	if t == nil || keep == nil {
		return nil
	}
	var out []*players.Player
	for _, p := range t.Roster {
		if keep(p.Position) {
			out = append(out, p)
		}
	}
	return out
}

// First returns the first roster member at the given position, if any.
func (t *Team) First(pos players.Position) (*players.Player, bool) {
	if t == nil {
		return nil, false
	}
	for _, p := range t.Roster {
		if p.Position == pos {
			return p, true
		}
	}
	return nil, false
}

// ResetSeasonStats clears the season record. Intended for callers starting a
// fresh season with an existing roster.
func (t *Team) ResetSeasonStats() {
	t.SeasonStats = SeasonStats{}
}
