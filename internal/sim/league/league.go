package league

import (
	"fmt"

	"gridiron-sim/internal/domain/players"
	"gridiron-sim/internal/domain/teams"
	"gridiron-sim/internal/sim/career"
	"gridiron-sim/internal/sim/rng"
	"gridiron-sim/internal/sim/roster"
	"gridiron-sim/internal/sim/season"
)

// Stream offsets keep roster, season, and career draws independent so each
// subsystem reproduces on its own from the same base seed.
const (
	rosterOffsetBase = 100
	careerOffset     = 9000

	maxCollegeYears = 6
	maxNFLSeasons   = 20
)

// Config describes one full league cycle.
type Config struct {
	Seed      int64 // 0 picks a time-derived seed
	Weeks     int
	Size      int // number of franchises
	Prospects int // career cohort size; 0 skips careers
}

// Result bundles the season outcome with the simulated career cohort.
type Result struct {
	Summary *season.Summary
	Careers []*career.State
}

var franchiseNames = [...][2]string{
	{"Falcons", "Springfield"},
	{"Bears", "Shelbyville"},
	{"Comets", "Riverton"},
	{"Stallions", "Fairview"},
	{"Monarchs", "Kingsport"},
	{"Vipers", "Lakewood"},
	{"Outlaws", "Dust Creek"},
	{"Herons", "Bayside"},
	{"Miners", "Copper Hill"},
	{"Raptors", "Mesa Verde"},
	{"Wolves", "Timberline"},
	{"Admirals", "Port Hampton"},
	{"Scorpions", "Red Valley"},
	{"Gliders", "Windham"},
	{"Titans", "Iron Ridge"},
	{"Mustangs", "Prairie City"},
}

// Run simulates one complete league cycle from the base seed: sample rosters,
// a full season with playoffs, and an optional cohort of multi-stage careers.
func Run(cfg Config) (*Result, error) {
	if cfg.Size < 2 {
		return nil, fmt.Errorf("league size %d: %w", cfg.Size, season.ErrNotEnoughTeams)
	}

	src := rng.New(cfg.Seed)
	teamList := make([]*teams.Team, 0, cfg.Size)
	for i := 0; i < cfg.Size; i++ {
		name, city := franchise(i)
		teamList = append(teamList, roster.BuildSampleTeam(src, rosterOffsetBase+int64(i), name, city))
	}

	summary, err := season.New(src, teamList).Run(cfg.Weeks)
	if err != nil {
		return nil, fmt.Errorf("simulate season: %w", err)
	}

	states, err := runCohort(src, cfg.Prospects)
	if err != nil {
		return nil, fmt.Errorf("simulate careers: %w", err)
	}

	return &Result{Summary: summary, Careers: states}, nil
}

// runCohort plays out full careers for a draft-class cohort: four high school
// years, college until the engine promotes, then NFL seasons to retirement.
func runCohort(src *rng.Source, count int) ([]*career.State, error) {
	if count <= 0 {
		return nil, nil
	}

	eng := career.NewEngine(src, careerOffset)
	r := src.Stream(careerOffset + 1)
	positions := []players.Position{players.PositionQB, players.PositionRB, players.PositionWR}

	states := make([]*career.State, 0, count)
	for i := 0; i < count; i++ {
		stars := 1.5 + r.Float64()*3.5
		name := fmt.Sprintf("Prospect %02d", i+1)
		st := eng.NewProspect(name, positions[i%len(positions)], stars)

		for y := 0; y < 4; y++ {
			if err := eng.SimulateHighSchoolYear(st); err != nil {
				return nil, err
			}
		}
		for y := 0; y < maxCollegeYears && st.Stage != career.StageNFL; y++ {
			if err := eng.SimulateCollegeYear(st); err != nil {
				return nil, err
			}
			// No offers leaves the prospect in high school; stop looping.
			if st.Stage == career.StageHighSchool && len(st.Offers) == 0 {
				break
			}
		}
		if st.Stage == career.StageNFL && !st.Retired {
			if err := eng.SimulateNFLSeasons(st, maxNFLSeasons); err != nil {
				return nil, err
			}
		}
		states = append(states, st)
	}
	return states, nil
}

func franchise(i int) (name, city string) {
	entry := franchiseNames[i%len(franchiseNames)]
	name, city = entry[0], entry[1]
	if i >= len(franchiseNames) {
		name = fmt.Sprintf("%s %d", name, i/len(franchiseNames)+1)
	}
	return name, city
}
