// Package season sequences simulated games into a league schedule, ranks
// standings, and settles a champion through a single-elimination bracket.
package season

import (
	"errors"
	"fmt"
	"sort"

	"gridiron-sim/internal/domain/events"
	"gridiron-sim/internal/domain/players"
	"gridiron-sim/internal/domain/teams"
	"gridiron-sim/internal/sim/awards"
	"gridiron-sim/internal/sim/game"
	"gridiron-sim/internal/sim/rng"
	"gridiron-sim/internal/sim/stats"
)

// Offsets partition the random stream so regular-season and playoff games
// never share a generator.
const (
	regularSeasonOffset = 1000
	playoffOffset       = 5000
)

// DefaultWeeks is the regular-season length used when the caller does not
// override it.
const DefaultWeeks = 17

// BracketSize is the maximum number of playoff seeds.
const BracketSize = 8

const mvpListSize = 5

// ErrNotEnoughTeams is returned when a season cannot be scheduled.
var ErrNotEnoughTeams = errors.New("season: need at least two teams")

// Standing is one row of the final regular-season table.
type Standing struct {
	TeamID        string `json:"teamId"`
	Name          string `json:"name"`
	City          string `json:"city"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	PointsFor     int    `json:"pointsFor"`
	PointsAgainst int    `json:"pointsAgainst"`
	Differential  int    `json:"differential"`
}

// Summary is the full outcome of one simulated season.
type Summary struct {
	Seed         int64             `json:"seed"`
	Weeks        int               `json:"weeks"`
	Standings    []Standing        `json:"standings"`
	Games        []game.Record     `json:"games"`
	PlayoffGames []game.Record     `json:"playoffGames,omitempty"`
	ChampionID   string            `json:"championId,omitempty"`
	Champion     string            `json:"champion,omitempty"`
	MVPs         []awards.Citation `json:"mvps"`
	Events       []events.Event    `json:"-"`
	Lines        map[string]stats.Line `json:"-"`
}

// Season runs a league of teams from one seeded source.
type Season struct {
	src   *rng.Source
	teams []*teams.Team
}

// New builds a Season over the given teams. The team slice is copied; the
// teams themselves are mutated during simulation (season stats, injuries).
func New(src *rng.Source, teamList []*teams.Team) *Season {
	return &Season{src: src, teams: append([]*teams.Team(nil), teamList...)}
}

// Run simulates the given number of regular-season weeks followed by a
// playoff bracket over the top seeds. Each game draws from its own stream
// offset, so the full season is reproducible from the base seed alone.
func (s *Season) Run(weeks int) (*Summary, error) {
	if len(s.teams) < 2 {
		return nil, ErrNotEnoughTeams
	}
	if weeks <= 0 {
		weeks = DefaultWeeks
	}
	for _, t := range s.teams {
		t.ResetSeasonStats()
	}

	summary := &Summary{Seed: s.src.BaseSeed(), Weeks: weeks}
	gameIdx := int64(0)
	for week := 0; week < weeks; week++ {
		for _, pair := range weekPairings(len(s.teams), week) {
			home, away := s.teams[pair[0]], s.teams[pair[1]]
			record, evs := s.playGame(regularSeasonOffset+gameIdx, home, away)
			gameIdx++
			summary.Games = append(summary.Games, record)
			summary.Events = append(summary.Events, evs...)
		}
	}

	summary.Standings = s.standings()
	s.runPlayoffs(summary)

	summary.Lines = stats.Aggregate(summary.Events)
	lookup := s.playerLookup()
	summary.MVPs = awards.NewEngine(lookup, summary.Lines).ComputeMVP(mvpListSize)
	return summary, nil
}

// playGame simulates one game on a dedicated stream offset and returns the
// record plus the events it logged.
func (s *Season) playGame(offset int64, home, away *teams.Team) (game.Record, []events.Event) {
	log := events.NewLog()
	sim := game.NewSimulator(s.src.Stream(offset))
	record := sim.Simulate(home, away, log)
	return record, log.Events()
}

// standings snapshots the regular-season table ordered by wins, then point
// differential, then team id so equal records rank deterministically.
func (s *Season) standings() []Standing {
	table := make([]Standing, 0, len(s.teams))
	for _, t := range s.teams {
		table = append(table, Standing{
			TeamID:        t.ID,
			Name:          t.Name,
			City:          t.City,
			Wins:          t.SeasonStats.Wins,
			Losses:        t.SeasonStats.Losses,
			PointsFor:     t.SeasonStats.PointsFor,
			PointsAgainst: t.SeasonStats.PointsAgainst,
			Differential:  t.SeasonStats.PointDifferential(),
		})
	}
	sort.Slice(table, func(i, j int) bool {
		if table[i].Wins != table[j].Wins {
			return table[i].Wins > table[j].Wins
		}
		if table[i].Differential != table[j].Differential {
			return table[i].Differential > table[j].Differential
		}
		return table[i].TeamID < table[j].TeamID
	})
	return table
}

// runPlayoffs seeds a single-elimination bracket from the standings and
// plays it to a champion. A drawn playoff game advances the higher seed.
func (s *Season) runPlayoffs(summary *Summary) {
	size := bracketSize(len(summary.Standings))
	if size < 2 {
		if len(summary.Standings) == 1 {
			summary.ChampionID = summary.Standings[0].TeamID
			summary.Champion = summary.Standings[0].Name
		}
		return
	}

	byID := make(map[string]*teams.Team, len(s.teams))
	for _, t := range s.teams {
		byID[t.ID] = t
	}
	field := make([]*teams.Team, 0, size)
	for _, row := range summary.Standings[:size] {
		field = append(field, byID[row.TeamID])
	}

	offset := int64(playoffOffset)
	for len(field) > 1 {
		next := make([]*teams.Team, 0, len(field)/2)
		for i := 0; i < len(field)/2; i++ {
			high, low := field[i], field[len(field)-1-i]
			record, evs := s.playGame(offset, high, low)
			offset++
			summary.PlayoffGames = append(summary.PlayoffGames, record)
			summary.Events = append(summary.Events, evs...)
			if record.Score.Away > record.Score.Home {
				next = append(next, low)
			} else {
				next = append(next, high)
			}
		}
		field = next
	}
	summary.ChampionID = field[0].ID
	summary.Champion = field[0].Name
}

func (s *Season) playerLookup() map[string]*players.Player {
	lookup := make(map[string]*players.Player)
	for _, t := range s.teams {
		for _, p := range t.Roster {
			lookup[p.ID] = p
		}
	}
	return lookup
}

// bracketSize returns the largest power of two that both fits the league and
// stays within the bracket cap.
func bracketSize(n int) int {
	if n > BracketSize {
		n = BracketSize
	}
	size := 1
	for size*2 <= n {
		size *= 2
	}
	if size < 2 {
		return n
	}
	return size
}

// weekPairings produces the round-robin matchups for one week using the
// circle method. For a two-team league home advantage alternates weekly. An
// odd team count gives one team a bye each week.
func weekPairings(n, week int) [][2]int {
	if n < 2 {
		return nil
	}
	if n == 2 {
		if week%2 == 0 {
			return [][2]int{{0, 1}}
		}
		return [][2]int{{1, 0}}
	}

	ids := make([]int, 0, n+1)
	for i := 0; i < n; i++ {
		ids = append(ids, i)
	}
	bye := -1
	if n%2 == 1 {
		ids = append(ids, bye)
	}
	m := len(ids)

	// Rotate all but the first entry by the week number.
	rotated := make([]int, m)
	rotated[0] = ids[0]
	for i := 1; i < m; i++ {
		rotated[i] = ids[1+((i-1+week)%(m-1))]
	}

	pairs := make([][2]int, 0, m/2)
	for i := 0; i < m/2; i++ {
		a, b := rotated[i], rotated[m-1-i]
		if a == bye || b == bye {
			continue
		}
		if week%2 == 1 {
			a, b = b, a
		}
		pairs = append(pairs, [2]int{a, b})
	}
	return pairs
}

// Report renders a compact console summary.
func (sm *Summary) Report() string {
	out := "=== Season Summary ===\n"
	for _, row := range sm.Standings {
		out += fmt.Sprintf("%s %s - W:%d L:%d PF:%d PA:%d\n",
			row.City, row.Name, row.Wins, row.Losses, row.PointsFor, row.PointsAgainst)
	}
	if sm.Champion != "" {
		out += fmt.Sprintf("Champion: %s\n", sm.Champion)
	}
	out += "\nTop Candidates (MVP):\n"
	for _, c := range sm.MVPs {
		out += fmt.Sprintf("%s - Score: %.2f Impact: %.2f Justification: %s\n",
			c.PlayerName, c.Score, c.Impact, c.Justification)
	}
	return out
}
