package players

import "time"

// Position identifies where a player lines up.
type Position string

const (
	PositionQB Position = "QB"
	PositionRB Position = "RB"
	PositionFB Position = "FB"
	PositionWR Position = "WR"
	PositionTE Position = "TE"
	PositionOL Position = "OL"
	PositionDL Position = "DL"
	PositionLB Position = "LB"
	PositionDB Position = "DB"
	PositionK  Position = "K"
)

// Capability groups replace ad hoc position-string comparisons in the
// play model. Membership is fixed; these sets are the contract the
// resolver and simulator are written against.
var (
	eligibleTargets = map[Position]struct{}{PositionWR: {}, PositionTE: {}}
	ballCarriers    = map[Position]struct{}{PositionRB: {}}
	carrierFallback = map[Position]struct{}{PositionFB: {}, PositionWR: {}}
	offensiveLine   = map[Position]struct{}{PositionOL: {}}
	defensiveFront  = map[Position]struct{}{PositionDL: {}, PositionLB: {}}
	passRush        = map[Position]struct{}{PositionDL: {}}
	coverage        = map[Position]struct{}{PositionDB: {}, PositionLB: {}}
)

// IsEligibleTarget reports whether the position may be the primary on a pass.
func (p Position) IsEligibleTarget() bool { _, ok := eligibleTargets[p]; return ok }

// IsBallCarrier reports whether the position is a primary run candidate.
func (p Position) IsBallCarrier() bool { _, ok := ballCarriers[p]; return ok }

// IsCarrierFallback reports whether the position backs up the run candidate pool.
func (p Position) IsCarrierFallback() bool { _, ok := carrierFallback[p]; return ok }

// IsOffensiveLine reports whether the position blocks on the line.
func (p Position) IsOffensiveLine() bool { _, ok := offensiveLine[p]; return ok }

// IsDefensiveFront reports whether the position defends the run front.
func (p Position) IsDefensiveFront() bool { _, ok := defensiveFront[p]; return ok }

// IsPassRush reports whether the position generates pass pressure.
func (p Position) IsPassRush() bool { _, ok := passRush[p]; return ok }

// IsCoverage reports whether the position contributes to pass coverage.
func (p Position) IsCoverage() bool { _, ok := coverage[p]; return ok }

// Attribute names tracked for every player.
const (
	AttrSpeed        = "speed"
	AttrStrength     = "strength"
	AttrAwareness    = "awareness"
	AttrThrowPower   = "throw_power"
	AttrCatching     = "catching"
	AttrRouteRunning = "route_running"
	AttrBreakTackle  = "break_tackle"
)

// DefaultAttribute is the neutral skill value assumed when an attribute is absent.
const DefaultAttribute = 50.0

// coreAttributes are guaranteed present after construction.
var coreAttributes = []string{
	AttrSpeed, AttrStrength, AttrAwareness, AttrThrowPower,
	AttrCatching, AttrRouteRunning, AttrBreakTackle,
}

// Attributes maps named skills to numeric values.
type Attributes map[string]float64

// Get returns the named attribute, defaulting to DefaultAttribute when absent.
func (a Attributes) Get(name string) float64 {
	if a == nil {
		return DefaultAttribute
	}
	if v, ok := a[name]; ok {
		return v
	}
	return DefaultAttribute
}

// ensureDefaults fills in any missing core attribute.
func (a Attributes) ensureDefaults() {
	for _, name := range coreAttributes {
		if _, ok := a[name]; !ok {
			a[name] = DefaultAttribute
		}
	}
}

// Injury records a single injury event on a player.
type Injury struct {
	Kind   string    `json:"kind"`
	When   time.Time `json:"when"`
	GameID string    `json:"gameId,omitempty"`
}

// CareerNote is one entry in a player's career-narrative record.
type CareerNote struct {
	Type   string `json:"type"`
	Detail string `json:"detail,omitempty"`
	GameID string `json:"gameId,omitempty"`
}

// Player is the canonical player shape shared by the game and career engines.
// HiddenPotential is a latent growth rate and is never serialized for
// consumers of game output.
type Player struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Position        Position           `json:"position"`
	Age             int                `json:"age"`
	Attributes      Attributes         `json:"attributes"`
	HiddenPotential float64            `json:"-"`
	Personality     map[string]float64 `json:"personality,omitempty"`
	Morale          float64            `json:"morale"`
	Fatigue         float64            `json:"fatigue"`
	Injuries        []Injury           `json:"injuries,omitempty"`
	CareerNotes     []CareerNote       `json:"careerNotes,omitempty"`
}

// New constructs a Player with per-instance attribute and personality maps
// and every core attribute present.
func New(id, name string, position Position, age int, attrs Attributes) *Player {
	if attrs == nil {
		attrs = make(Attributes, len(coreAttributes))
	}
	attrs.ensureDefaults()
	return &Player{
		ID:          id,
		Name:        name,
		Position:    position,
		Age:         age,
		Attributes:  attrs,
		Personality: make(map[string]float64),
		Morale:      0.5,
	}
}

// Overall summarizes a player's skill as the mean of the core attributes.
func (p *Player) Overall() float64 {
	if p == nil {
		return DefaultAttribute
	}
	total := 0.0
	for _, name := range coreAttributes {
		total += p.Attributes.Get(name)
	}
	return total / float64(len(coreAttributes))
}

// RecordInjury appends an injury and a matching career note.
func (p *Player) RecordInjury(kind, gameID string, when time.Time) {
	p.Injuries = append(p.Injuries, Injury{Kind: kind, When: when, GameID: gameID})
	p.CareerNotes = append(p.CareerNotes, CareerNote{Type: "injury", Detail: kind, GameID: gameID})
}
