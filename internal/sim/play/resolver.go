// Package play resolves single play calls into raw outcome events. The
// resolver is pure apart from its generator handle: the same roster inputs
// and generator state always produce the same event.
package play

import (
	"math"
	"math/rand"

	"gridiron-sim/internal/domain/events"
	"gridiron-sim/internal/domain/players"
	"gridiron-sim/internal/domain/teams"
	"gridiron-sim/internal/sim/rng"
)

// Completion model constants. Derived probabilities are clamped to
// [MinProbability, MaxProbability] before any Bernoulli draw so no outcome
// is ever certain or impossible.
const (
	MinProbability = 0.03
	MaxProbability = 0.95

	baseCompletion      = 0.35
	qbAccuracyScale     = 200.0
	targetSkillScale    = 300.0
	coverageScale       = 200.0
	ratingDiffPassScale = 400.0
	pressurePenalty     = 0.10

	passTDYards     = 40
	passTDBase      = 0.05
	passTDSpeedDiv  = 200.0
	interceptBase   = 0.03
	interceptShaky  = 0.01
	shakyThreshold  = 0.10
	passInjuryProb  = 0.005
	defaultDepth    = 6
	depthSpeedScale = 5.0

	runTDYards       = 60
	runTDProb        = 0.03
	runInjuryProb    = 0.004
	ratingDiffRunDiv = 10.0
	brokenTackleMin  = 3
)

// injuryKinds and injuryWeights define the fixed discrete injury
// distribution, most likely first.
var (
	injuryKinds   = []string{"hamstring", "concussion", "sprain", "torn_acl"}
	injuryWeights = []float64{0.6, 0.2, 0.18, 0.02}
)

// Call describes one offensive play call.
type Call struct {
	Type    events.PlayType
	Primary *players.Player
	// Depth is the intended pass depth in yards; zero means use the
	// speed-based heuristic.
	Depth int
}

// Resolver turns play calls into outcome events using an injected generator.
type Resolver struct {
	rng *rand.Rand
}

// NewResolver constructs a Resolver around a generator stream. The stream is
// exclusively owned by this resolver for the duration of a simulation unit.
func NewResolver(r *rand.Rand) *Resolver {
	return &Resolver{rng: r}
}

// Resolve produces the raw event for a play call. It never fails: missing
// personnel and unknown play types degrade to zero-yardage outcomes.
func (res *Resolver) Resolve(call Call, offense, defense *teams.Team) events.Event {
	ev := events.Event{
		PlayType:    call.Type,
		OffenseTeam: offense.ID,
		DefenseTeam: defense.ID,
	}
	if call.Primary != nil {
		ev.PrimaryPlayerID = call.Primary.ID
		ev.InvolvedIDs = []string{call.Primary.ID}
	}

	switch call.Type {
	case events.PlayPass:
		ev.Result = res.resolvePass(call, offense, defense)
	case events.PlayRun:
		ev.Result = res.resolveRun(call, offense, defense)
	default:
		ev.Result = events.Result{Notes: "unknown play"}
	}
	return ev
}

func (res *Resolver) resolvePass(call Call, offense, defense *teams.Team) events.Result {
	qb, hasQB := offense.First(players.PositionQB)
	target := call.Primary
	if !hasQB || target == nil {
		return events.Result{Notes: "no qb/target"}
	}

	qbAccuracy := qb.Attributes.Get(players.AttrAwareness)*0.6 + qb.Attributes.Get(players.AttrThrowPower)*0.4
	targetSkill := target.Attributes.Get(players.AttrRouteRunning)*0.6 + target.Attributes.Get(players.AttrCatching)*0.4
	coverage := defense.MeanAttribute(players.AttrAwareness, players.Position.IsCoverage)
	rush := defense.MeanAttribute(players.AttrStrength, players.Position.IsPassRush)

	pressureProb := logistic((rush - qb.Attributes.Get(players.AttrAwareness)) / 20.0)
	pressure := res.rng.Float64() < pressureProb

	prob := baseCompletion +
		(qbAccuracy-players.DefaultAttribute)/qbAccuracyScale +
		(targetSkill-players.DefaultAttribute)/targetSkillScale -
		(coverage-players.DefaultAttribute)/coverageScale +
		(offense.Rating()-defense.Rating())/ratingDiffPassScale
	if pressure {
		prob -= pressurePenalty
	}
	prob = ClampProbability(prob)
	complete := res.rng.Float64() < prob

	depth := call.Depth
	if depth == 0 {
		depth = defaultDepth + int((target.Attributes.Get(players.AttrSpeed)-players.DefaultAttribute)/depthSpeedScale)
	}

	result := events.Result{Pressure: pressure}
	if complete {
		yac := int((target.Attributes.Get(players.AttrBreakTackle) / players.DefaultAttribute) * (res.rng.Float64() * 6))
		if yac < 0 {
			yac = 0
		}
		variation := int((targetSkill-players.DefaultAttribute)/10) + res.randRange(-3, 6)
		yards := depth + variation + yac
		if yards < 0 {
			yards = 0
		}

		result.Complete = true
		result.Yards = yards
		result.YAC = yac
		if yards >= passTDYards {
			tdProb := passTDBase + (target.Attributes.Get(players.AttrSpeed)-players.DefaultAttribute)/passTDSpeedDiv
			result.Touchdown = res.rng.Float64() < tdProb
		}
		if res.rng.Float64() < passInjuryProb {
			result.Injury = res.sampleInjury()
		}
		return result
	}

	// Interceptions are drawn independently of the completion roll; badly
	// projected throws carry a second small chance.
	result.Interception = res.rng.Float64() < interceptBase ||
		(res.rng.Float64() < interceptShaky && prob < shakyThreshold)
	return result
}

func (res *Resolver) resolveRun(call Call, offense, defense *teams.Team) events.Result {
	runner := call.Primary
	if runner == nil {
		return events.Result{Notes: "no ball carrier"}
	}

	runSkill := runner.Attributes.Get(players.AttrBreakTackle)*0.6 + runner.Attributes.Get(players.AttrSpeed)*0.4
	lineStrength := offense.MeanAttribute(players.AttrStrength, players.Position.IsOffensiveLine)
	defensiveFront := defense.MeanAttribute(players.AttrStrength, players.Position.IsDefensiveFront)
	ratingDiff := int((offense.Rating() - defense.Rating()) / ratingDiffRunDiv)

	base := int((runSkill-defensiveFront)/10) + int(lineStrength/players.DefaultAttribute) +
		res.randRange(-2, 8) + ratingDiff
	if base < 0 {
		base = 0
	}
	yards := base + res.randRange(-3, 8)
	if yards < 0 {
		yards = 0
	}

	result := events.Result{Yards: yards}
	if yards >= runTDYards {
		result.Touchdown = res.rng.Float64() < runTDProb
	}
	if yards > brokenTackleMin {
		if broken := int((runner.Attributes.Get(players.AttrBreakTackle) - 40) / 15); broken > 0 {
			result.BrokenTackles = broken
		}
	}
	if res.rng.Float64() < runInjuryProb {
		result.Injury = res.sampleInjury()
	}
	return result
}

// sampleInjury draws an injury kind from the fixed weighted distribution.
func (res *Resolver) sampleInjury() string {
	return injuryKinds[rng.WeightedIndex(res.rng, injuryWeights)]
}

// randRange returns a uniform integer in [lo, hi].
func (res *Resolver) randRange(lo, hi int) int {
	return lo + res.rng.Intn(hi-lo+1)
}

// ClampProbability bounds a derived probability to the engine's documented
// Bernoulli interval.
func ClampProbability(p float64) float64 {
	return math.Max(MinProbability, math.Min(MaxProbability, p))
}

func logistic(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}
