// Package game sequences resolved plays into quarters, drives, and a final
// score, mutating team season totals and appending every play to a
// caller-owned event log.
package game

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"gridiron-sim/internal/domain/events"
	"gridiron-sim/internal/domain/players"
	"gridiron-sim/internal/domain/teams"
	"gridiron-sim/internal/sim/play"
)

// Tunables are the empirically tuned drive and scoring constants. They are
// configurable rather than derived; the defaults match the shipped model.
type Tunables struct {
	Quarters         int
	DrivesPerQuarter int
	MinDrivePlays    int
	MaxDrivePlays    int
	TouchdownPoints  int
	FieldGoalPoints  int
	// LongDriveYards is the sustained-drive threshold at which an
	// otherwise scoreless drive may convert to a touchdown or field goal.
	LongDriveYards  int
	LongDriveTDProb float64
	LongDriveFGProb float64
	// FieldGoalYards/FieldGoalProb are the looser range check applied to
	// drives that stall short of the sustained threshold.
	FieldGoalYards int
	FieldGoalProb  float64
	// RatingDiffScale divides the team-rating differential before it
	// shifts the end-of-drive conversion probabilities.
	RatingDiffScale float64
}

// DefaultTunables returns the shipped scoring model constants.
func DefaultTunables() Tunables {
	return Tunables{
		Quarters:         4,
		DrivesPerQuarter: 2,
		MinDrivePlays:    3,
		MaxDrivePlays:    8,
		TouchdownPoints:  6,
		FieldGoalPoints:  3,
		LongDriveYards:   60,
		LongDriveTDProb:  0.18,
		LongDriveFGProb:  0.25,
		FieldGoalYards:   30,
		FieldGoalProb:    0.12,
		RatingDiffScale:  400.0,
	}
}

// Score captures home and away points.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Record is the summary of one simulated game.
type Record struct {
	GameID   string         `json:"gameId"`
	HomeTeam string         `json:"homeTeam"`
	AwayTeam string         `json:"awayTeam"`
	Score    Score          `json:"score"`
	Plays    []events.Event `json:"plays"`
}

// Simulator runs full games from an exclusively owned generator stream.
type Simulator struct {
	rng      *rand.Rand
	resolver *play.Resolver
	tunables Tunables
	now      func() time.Time
	newID    func() string
}

// NewSimulator constructs a Simulator with default tunables.
func NewSimulator(r *rand.Rand) *Simulator {
	return NewSimulatorWithTunables(r, DefaultTunables())
}

// NewSimulatorWithTunables constructs a Simulator with explicit scoring
// constants. The resolver shares the simulator's generator so one stream
// drives the entire game.
func NewSimulatorWithTunables(r *rand.Rand, tunables Tunables) *Simulator {
	return &Simulator{
		rng:      r,
		resolver: play.NewResolver(r),
		tunables: tunables,
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
	}
}

// Simulate plays a full game between home and away, appending every resolved
// play to log and updating both teams' season totals. The log is owned by
// the caller; resetting it between games is the caller's responsibility.
func (s *Simulator) Simulate(home, away *teams.Team, log *events.Log) Record {
	record := Record{
		GameID:   s.newID(),
		HomeTeam: home.ID,
		AwayTeam: away.ID,
	}

	for quarter := 1; quarter <= s.tunables.Quarters; quarter++ {
		for drive := 0; drive < s.tunables.DrivesPerQuarter; drive++ {
			offense, defense := home, away
			if (drive+quarter)%2 != 0 {
				offense, defense = away, home
			}
			s.runDrive(&record, offense, defense, home, away, quarter, drive, log)
		}
	}

	switch {
	case record.Score.Home > record.Score.Away:
		home.SeasonStats.Wins++
		away.SeasonStats.Losses++
	case record.Score.Away > record.Score.Home:
		away.SeasonStats.Wins++
		home.SeasonStats.Losses++
	default:
		// Exact ties update neither side's win counter.
	}
	return record
}

func (s *Simulator) runDrive(record *Record, offense, defense, home, away *teams.Team, quarter, drive int, log *events.Log) {
	playsInDrive := s.tunables.MinDrivePlays +
		s.rng.Intn(s.tunables.MaxDrivePlays-s.tunables.MinDrivePlays+1)

	driveYards := 0
	driveScore := 0
	for p := 0; p < playsInDrive; p++ {
		playType := events.PlayPass
		if s.rng.Float64() < offense.SchemeBias.Run {
			playType = events.PlayRun
		}

		primary, ok := s.choosePrimary(offense, playType)
		if !ok {
			// No appropriate candidate: the play is skipped, not logged.
			continue
		}

		ev := s.resolver.Resolve(play.Call{Type: playType, Primary: primary, Depth: 6}, offense, defense)
		ev.GameID = record.GameID
		ev.Quarter = quarter
		ev.DriveIndex = drive
		ev.OffenseIsHome = offense == home
		stamped := log.Append(ev)
		record.Plays = append(record.Plays, stamped)

		outcome := stamped.Result
		if playType == events.PlayPass {
			if outcome.Complete {
				driveYards += outcome.Yards
			}
		} else {
			driveYards += outcome.Yards
		}
		if outcome.Touchdown {
			driveScore += s.tunables.TouchdownPoints
		}
		if outcome.Injury != "" {
			primary.RecordInjury(outcome.Injury, record.GameID, s.now().UTC())
		}
	}

	if driveScore == 0 {
		driveScore = s.endOfDrivePoints(driveYards, offense, defense)
	}
	if driveScore > 0 {
		s.creditPoints(record, offense, home, away, driveScore)
	}
}

// endOfDrivePoints applies the end-of-drive conversion chances for drives
// that produced no in-loop touchdown.
func (s *Simulator) endOfDrivePoints(driveYards int, offense, defense *teams.Team) int {
	diff := (offense.Rating() - defense.Rating()) / s.tunables.RatingDiffScale
	if driveYards >= s.tunables.LongDriveYards {
		if s.rng.Float64() < play.ClampProbability(s.tunables.LongDriveTDProb+diff) {
			return s.tunables.TouchdownPoints
		}
		if s.rng.Float64() < play.ClampProbability(s.tunables.LongDriveFGProb+diff) {
			return s.tunables.FieldGoalPoints
		}
		return 0
	}
	if driveYards > s.tunables.FieldGoalYards && s.rng.Float64() < s.tunables.FieldGoalProb {
		return s.tunables.FieldGoalPoints
	}
	return 0
}

func (s *Simulator) creditPoints(record *Record, offense, home, away *teams.Team, points int) {
	if offense == home {
		record.Score.Home += points
		home.SeasonStats.PointsFor += points
		away.SeasonStats.PointsAgainst += points
		return
	}
	record.Score.Away += points
	away.SeasonStats.PointsFor += points
	home.SeasonStats.PointsAgainst += points
}

// choosePrimary picks the primary player for a play type from the
// position-appropriate pool, using the fixed fallback chain.
func (s *Simulator) choosePrimary(offense *teams.Team, playType events.PlayType) (*players.Player, bool) {
	var candidates []*players.Player
	if playType == events.PlayRun {
		candidates = offense.FindByPosition(players.Position.IsBallCarrier)
		if len(candidates) == 0 {
			candidates = offense.FindByPosition(players.Position.IsCarrierFallback)
		}
	} else {
		candidates = offense.FindByPosition(players.Position.IsEligibleTarget)
		if len(candidates) == 0 {
			candidates = offense.FindByPosition(players.Position.IsBallCarrier)
		}
	}
	if len(candidates) == 0 {
		return nil, false
	}
	return candidates[s.rng.Intn(len(candidates))], true
}
