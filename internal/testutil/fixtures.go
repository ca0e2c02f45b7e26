package testutil

import (
	"gridiron-sim/internal/domain/players"
	"gridiron-sim/internal/domain/teams"
	"gridiron-sim/internal/sim/season"
)

// SampleTeam returns a two-player team fixture with the provided id prefix.
func SampleTeam(prefix, name, city string) *teams.Team {
	roster := []*players.Player{
		players.New(prefix+"-qb", name+" QB", players.PositionQB, 26, players.Attributes{
			players.AttrThrowPower: 80,
			players.AttrAwareness:  75,
		}),
		players.New(prefix+"-rb", name+" RB", players.PositionRB, 24, players.Attributes{
			players.AttrSpeed:       82,
			players.AttrBreakTackle: 74,
		}),
	}
	return teams.New(prefix, name, city, roster)
}

// SampleSummary builds a minimal two-team season summary fixture.
func SampleSummary(seed int64) *season.Summary {
	return &season.Summary{
		Seed:  seed,
		Weeks: 2,
		Standings: []season.Standing{
			{TeamID: "home", Name: "Home", Wins: 2, Losses: 0, PointsFor: 40, PointsAgainst: 20, Differential: 20},
			{TeamID: "away", Name: "Away", Wins: 0, Losses: 2, PointsFor: 20, PointsAgainst: 40, Differential: -20},
		},
		ChampionID: "home",
		Champion:   "Home",
	}
}
