package career

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"gridiron-sim/internal/domain/catalog"
	"gridiron-sim/internal/domain/players"
	"gridiron-sim/internal/sim/rng"
)

// Named honors granted by the stage production models.
const (
	AwardAllState      = "All-State"
	AwardAllConference = "All-Conference"
	AwardAllAmerican   = "All-American"
	AwardMVP           = "League MVP"
	AwardProBowl       = "Pro Bowl"
	AwardAllPro        = "All-Pro"
	AwardChampionship  = "Championship"
)

var (
	// ErrUnknownOffer is returned when committing to a school id that is not
	// among the current offers.
	ErrUnknownOffer = errors.New("career: no such offer")
	// ErrStageMismatch is returned when an operation does not apply to the
	// state's current stage. Stages never move backward.
	ErrStageMismatch = errors.New("career: operation not valid for stage")
	// ErrRetired is returned when advancing a retired player.
	ErrRetired = errors.New("career: player is retired")
)

// Prospect creation and rating bounds.
const (
	minStarRating   = 1.0
	maxStarRating   = 5.0
	minPotential    = 0.1
	maxPotential    = 1.0
	maxAttribute    = 99.0
	prospectAge     = 15
	attributeBase   = 38.0
	attributePerSt  = 8.0
	attributeJitter = 6.0
)

// High-school year model.
const (
	hsVolatilityBase  = 1.6
	hsVolatilityStar  = 0.25
	hsVolatilityFloor = 0.3
	hsTouchBase       = 80
	hsTouchSpread     = 120
	hsYardAnchor      = 1000.0
	hsTDDivisor       = 120
	hsStarPerfWeight  = 0.5
	hsStarPotWeight   = 0.3
	hsStarNoiseScale  = 0.25
	hsGrowthScale     = 2.0
	hsPotentialNudge  = 0.02
	hsAllStateYards   = 1800
	hsAllStateProb    = 0.6
	hsAllConfYards    = 1200
	hsAllConfProb     = 0.5
)

// College year model.
const (
	collegeUsageBase     = 150
	collegeUsageSpread   = 150
	collegeYardAnchor    = 1400.0
	collegeTDDivisor     = 110
	collegeGrowthScale   = 1.6
	collegePotNudge      = 0.015
	collegeAAYards       = 1600
	collegeAAProb        = 0.5
	collegeAllConfYards  = 1100
	collegeAllConfProb   = 0.5
	collegeYearCeiling   = 4
	collegeEarlyYear     = 2
	collegeEarlyRating   = 82.0
	collegeEarlyProb     = 0.5
	collegeStarPerfW     = 0.4
	collegeStarPotW      = 0.25
	collegeStarNoise     = 0.2
)

// Draft projection tiers keyed on overall rating at promotion.
const (
	draftTierOne   = 88.0
	draftTierTwo   = 84.0
	draftTierThree = 80.0
	draftTierFour  = 76.0
)

// Professional year model.
const (
	nflUsageBase      = 380
	nflUsageSpread    = 260
	nflGrowthScale    = 1.2
	nflDecayAge       = 29
	nflDecayPerYear   = 0.45
	nflIntBase        = 14.0
	nflIntAwareDiv    = 9.0
	nflRushPerSpeed   = 4.5
	nflMVPYards       = 4200
	nflMVPTDs         = 34
	nflMVPProb        = 0.4
	nflProBowlYards   = 3200
	nflProBowlProb    = 0.6
	nflAllProYards    = 3800
	nflAllProProb     = 0.3
	nflAllProMVPBoost = 0.7
	nflChampProb      = 0.0625
	retirementYear    = 12
	retirementStreak  = 2
	retirementProb    = 0.5
)

// Offer count table by star-rating tier: [base, spread].
var offerTiers = []struct {
	below  float64
	base   int
	spread int
}{
	{1.5, 1, 2},
	{2.5, 2, 3},
	{3.5, 4, 4},
	{4.5, 6, 5},
	{maxStarRating + 1, 8, 6},
}

// Engine advances career states. One Engine owns one generator stream and
// must not be shared between concurrently simulated careers.
type Engine struct {
	r          *rand.Rand
	schools    []catalog.FbsSchool
	franchises []catalog.NflFranchise
	newID      func() string
}

// NewEngine builds an Engine on the stream at the given offset with the
// default school and franchise catalogs.
func NewEngine(src *rng.Source, offset int64) *Engine {
	return NewEngineWithCatalogs(src, offset, catalog.FbsSchools(), catalog.NflFranchises())
}

// NewEngineWithCatalogs is NewEngine with caller-supplied catalogs.
func NewEngineWithCatalogs(src *rng.Source, offset int64, schools []catalog.FbsSchool, franchises []catalog.NflFranchise) *Engine {
	r := src.Stream(offset)
	return &Engine{
		r:          r,
		schools:    schools,
		franchises: franchises,
		newID: func() string {
			id, err := uuid.NewRandomFromReader(r)
			if err != nil {
				return uuid.NewString()
			}
			return id.String()
		},
	}
}

// trackedAttributes is the fixed growth order; a stable order keeps the
// per-attribute random draws reproducible.
var trackedAttributes = []string{
	players.AttrSpeed, players.AttrStrength, players.AttrAwareness,
	players.AttrThrowPower, players.AttrCatching, players.AttrRouteRunning,
	players.AttrBreakTackle,
}

// NewProspect creates a high-school prospect. Attribute baselines scale with
// the star rating plus bounded jitter, and hidden potential derives from the
// rating with its own jitter.
func (e *Engine) NewProspect(name string, position players.Position, stars float64) *State {
	stars = clamp(stars, minStarRating, maxStarRating)
	attrs := make(players.Attributes)
	base := attributeBase + stars*attributePerSt
	for _, attr := range trackedAttributes {
		attrs[attr] = clamp(base+(e.r.Float64()*2-1)*attributeJitter, 1, maxAttribute)
	}
	p := players.New(e.newID(), name, position, prospectAge, attrs)
	p.HiddenPotential = clamp(stars/maxStarRating+(e.r.Float64()-0.5)*0.2, minPotential, maxPotential)

	st := &State{
		Player:     p,
		Stage:      StageHighSchool,
		Calendar:   Calendar{Phase: StageHighSchool, Year: 0},
		StarRating: stars,
	}
	st.note("%s enters high school as a %.1f-star %s prospect", name, stars, position)
	return st
}

// SimulateHighSchoolYear advances one high-school season: production, honors,
// star-rating movement, attribute growth, and a potential nudge.
func (e *Engine) SimulateHighSchoolYear(st *State) error {
	if st.Retired {
		return ErrRetired
	}
	if st.Stage != StageHighSchool {
		return fmt.Errorf("%w: %s", ErrStageMismatch, st.Stage)
	}

	before := st.Player.Overall()
	volatility := hsVolatilityBase - st.StarRating*hsVolatilityStar
	if volatility < hsVolatilityFloor {
		volatility = hsVolatilityFloor
	}

	touches := hsTouchBase + e.r.Intn(hsTouchSpread)
	perTouch := 3.0 + before/25.0
	swing := 1.0 + (e.r.Float64()-0.5)*volatility
	yards := int(float64(touches) * perTouch * swing)
	if yards < 0 {
		yards = 0
	}
	tds := yards/hsTDDivisor + e.r.Intn(3)

	st.Calendar.Year++
	st.HighSchoolYears = append(st.HighSchoolYears, YearLine{
		Year: st.Calendar.Year, Yards: yards, TDs: tds, Rating: before,
	})

	if yards > hsAllStateYards && e.r.Float64() < hsAllStateProb {
		st.award(AwardAllState)
	} else if yards > hsAllConfYards && e.r.Float64() < hsAllConfProb {
		st.award(AwardAllConference)
	}

	perfDelta := (float64(yards) - hsYardAnchor) / hsYardAnchor
	potDelta := st.Player.HiddenPotential - 0.5
	noise := (e.r.Float64() - 0.5) * volatility * hsStarNoiseScale
	st.StarRating = clamp(st.StarRating+hsStarPerfWeight*perfDelta+hsStarPotWeight*potDelta+noise,
		minStarRating, maxStarRating)

	e.growAttributes(st.Player, hsGrowthScale)
	nudge := -hsPotentialNudge
	if float64(yards) > hsYardAnchor {
		nudge = hsPotentialNudge
	}
	st.Player.HiddenPotential = clamp(st.Player.HiddenPotential+nudge+(e.r.Float64()-0.5)*0.01,
		minPotential, maxPotential)
	st.Player.Age++

	st.note("HS year %d: %d yards, %d TDs, overall %.1f -> %.1f",
		st.Calendar.Year, yards, tds, before, st.Player.Overall())
	return nil
}

// GenerateCollegeOffers draws a weighted, de-duplicated sample of schools and
// records it as the current offer list. The draw favors high-prestige schools
// for highly rated prospects and low-prestige schools for weak ones.
func (e *Engine) GenerateCollegeOffers(st *State) []Offer {
	base, spread := offerTierFor(st.StarRating)
	offerCount := base + e.r.Intn(spread+1)

	sampleSize := offerCount + e.r.Intn(3) - 1
	if sampleSize < 3 {
		sampleSize = 3
	}
	if sampleSize > len(e.schools) {
		sampleSize = len(e.schools)
	}

	recent := 0.0
	if n := len(st.HighSchoolYears); n > 0 {
		recent = float64(st.HighSchoolYears[n-1].Yards)
	}
	starFactor := 0.5 + st.StarRating/maxStarRating
	prodFactor := 1.0 + recent/2000.0

	weights := make([]float64, len(e.schools))
	for i, school := range e.schools {
		w := school.Prestige * starFactor * prodFactor * (0.5 + e.r.Float64())
		if st.StarRating < 2 {
			w *= 1.2 - school.Prestige
		}
		if st.StarRating > 4 {
			w *= school.Prestige * 1.5
		}
		weights[i] = w
	}

	seen := make(map[string]bool, sampleSize)
	offers := make([]Offer, 0, sampleSize)
	for i := 0; i < sampleSize; i++ {
		school := e.schools[rng.WeightedIndex(e.r, weights)]
		if seen[school.ID] {
			continue
		}
		seen[school.ID] = true
		offers = append(offers, Offer{SchoolID: school.ID, Name: school.Name, Prestige: school.Prestige})
	}

	st.Offers = offers
	st.note("received %d college offers", len(offers))
	return offers
}

// CommitToCollege accepts one of the current offers and advances the stage.
func (e *Engine) CommitToCollege(st *State, schoolID string) error {
	if st.Stage != StageHighSchool {
		return fmt.Errorf("%w: %s", ErrStageMismatch, st.Stage)
	}
	for _, offer := range st.Offers {
		if offer.SchoolID != schoolID {
			continue
		}
		st.Stage = StageCollege
		st.CollegeTeam = offer.Name
		st.Calendar = Calendar{Phase: StageCollege, Year: 0}
		st.note("committed to %s", offer.Name)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownOffer, schoolID)
}

// SimulateCollegeYear advances one college season. An uncommitted player is
// first offered and committed to the highest-prestige school available; when
// no offers can be drawn the player stays in high school. Promotion to the
// professional stage is forced at the year ceiling and possible earlier for
// high overall ratings.
func (e *Engine) SimulateCollegeYear(st *State) error {
	if st.Retired {
		return ErrRetired
	}
	if st.Stage == StageNFL {
		return fmt.Errorf("%w: %s", ErrStageMismatch, st.Stage)
	}
	if st.Stage == StageHighSchool {
		if len(st.Offers) == 0 {
			e.GenerateCollegeOffers(st)
		}
		if len(st.Offers) == 0 {
			return nil
		}
		best := st.Offers[0]
		for _, offer := range st.Offers[1:] {
			if offer.Prestige > best.Prestige {
				best = offer
			}
		}
		if err := e.CommitToCollege(st, best.SchoolID); err != nil {
			return err
		}
	}

	before := st.Player.Overall()
	usage := collegeUsageBase + e.r.Intn(collegeUsageSpread)
	efficiency := (st.Player.Attributes.Get(players.AttrAwareness) +
		st.Player.Attributes.Get(players.AttrSpeed)) / 22.0
	swing := 0.8 + e.r.Float64()*0.5
	yards := int(float64(usage) * efficiency * swing / 2.0)
	if yards < 0 {
		yards = 0
	}
	tds := yards/collegeTDDivisor + e.r.Intn(3)

	st.Calendar.Year++
	st.CollegeYears = append(st.CollegeYears, YearLine{
		Year: st.Calendar.Year, Yards: yards, TDs: tds, Rating: before,
	})

	if yards > collegeAAYards && e.r.Float64() < collegeAAProb {
		st.award(AwardAllAmerican)
	} else if yards > collegeAllConfYards && e.r.Float64() < collegeAllConfProb {
		st.award(AwardAllConference)
	}

	perfDelta := (float64(yards) - collegeYardAnchor) / collegeYardAnchor
	potDelta := st.Player.HiddenPotential - 0.5
	st.StarRating = clamp(st.StarRating+collegeStarPerfW*perfDelta+collegeStarPotW*potDelta+
		(e.r.Float64()-0.5)*collegeStarNoise, minStarRating, maxStarRating)

	e.growAttributes(st.Player, collegeGrowthScale)
	nudge := -collegePotNudge
	if float64(yards) > collegeYardAnchor {
		nudge = collegePotNudge
	}
	st.Player.HiddenPotential = clamp(st.Player.HiddenPotential+nudge+(e.r.Float64()-0.5)*0.01,
		minPotential, maxPotential)
	st.Player.Age++

	overall := st.Player.Overall()
	st.note("college year %d: %d yards, %d TDs, overall %.1f -> %.1f",
		st.Calendar.Year, yards, tds, before, overall)

	if st.Calendar.Year >= collegeYearCeiling {
		return e.PromoteToNFL(st)
	}
	if st.Calendar.Year >= collegeEarlyYear && overall > collegeEarlyRating &&
		e.r.Float64() < collegeEarlyProb {
		st.note("declared early for the draft")
		return e.PromoteToNFL(st)
	}
	return nil
}

// PromoteToNFL assigns a draft projection from the current overall rating and
// a random landing franchise. The projection is set once and never revised.
func (e *Engine) PromoteToNFL(st *State) error {
	if st.Stage != StageCollege {
		return fmt.Errorf("%w: %s", ErrStageMismatch, st.Stage)
	}
	if st.DraftProjection == "" {
		st.DraftProjection = draftTierFor(st.Player.Overall())
	}
	if len(e.franchises) > 0 {
		st.NFLTeam = e.franchises[e.r.Intn(len(e.franchises))].City
	}
	st.Stage = StageNFL
	st.Calendar = Calendar{Phase: StageNFL, Year: 0}
	st.note("drafted (%s) by %s", st.DraftProjection, st.NFLTeam)
	return nil
}

// SimulateNFLSeasons advances up to count professional seasons, stopping
// early on retirement. Retirement becomes possible once the player has spent
// twelve years in the league and declined in two consecutive seasons.
func (e *Engine) SimulateNFLSeasons(st *State, count int) error {
	if st.Stage != StageNFL {
		return fmt.Errorf("%w: %s", ErrStageMismatch, st.Stage)
	}
	for i := 0; i < count; i++ {
		if st.Retired {
			return nil
		}
		e.simulateNFLYear(st)
	}
	return nil
}

func (e *Engine) simulateNFLYear(st *State) {
	before := st.Player.Overall()

	step := e.r.Float64() * nflGrowthScale * st.Player.HiddenPotential
	if st.Player.Age > nflDecayAge {
		step -= float64(st.Player.Age-nflDecayAge) * nflDecayPerYear * e.r.Float64()
	}
	for _, name := range trackedAttributes {
		st.Player.Attributes[name] = clamp(st.Player.Attributes.Get(name)+step, 1, maxAttribute)
	}
	rating := st.Player.Overall()

	usage := nflUsageBase + e.r.Intn(nflUsageSpread)
	efficiency := rating / 16.0
	swing := 0.85 + e.r.Float64()*0.3
	passYards := int(float64(usage) * efficiency * swing)
	tds := passYards/150 + e.r.Intn(4)

	awareness := st.Player.Attributes.Get(players.AttrAwareness)
	ints := int(nflIntBase-awareness/nflIntAwareDiv) + e.r.Intn(4)
	if ints < 0 {
		ints = 0
	}
	rushYards := int(st.Player.Attributes.Get(players.AttrSpeed) * nflRushPerSpeed * e.r.Float64())

	st.Calendar.Year++
	st.Player.Age++
	line := YearLine{
		Year: st.Calendar.Year, Yards: passYards, RushYards: rushYards,
		TDs: tds, Interceptions: ints, Rating: rating,
	}

	if n := len(st.NFLYears); n > 0 {
		prev := st.NFLYears[n-1]
		if line.Yards < prev.Yards && line.TDs < prev.TDs && line.Rating < prev.Rating {
			st.declineYears++
		} else {
			st.declineYears = 0
		}
	}
	st.NFLYears = append(st.NFLYears, line)

	mvp := false
	if passYards > nflMVPYards && tds > nflMVPTDs && e.r.Float64() < nflMVPProb {
		st.award(AwardMVP)
		mvp = true
	}
	if passYards > nflProBowlYards && e.r.Float64() < nflProBowlProb {
		st.award(AwardProBowl)
	}
	allProProb := nflAllProProb
	if mvp {
		allProProb = nflAllProMVPBoost
	}
	if passYards > nflAllProYards && e.r.Float64() < allProProb {
		st.award(AwardAllPro)
	}
	if e.r.Float64() < nflChampProb {
		st.award(AwardChampionship)
	}

	st.note("NFL year %d: %d pass yards, %d TDs, %d INTs, overall %.1f -> %.1f",
		st.Calendar.Year, passYards, tds, ints, before, rating)

	if st.Calendar.Year >= retirementYear && st.declineYears >= retirementStreak &&
		e.r.Float64() < retirementProb {
		st.Retired = true
		st.RetiredYear = st.Calendar.Year
		st.note("retired after %d seasons", st.Calendar.Year)
	}
}

// growAttributes raises every tracked attribute by a potential-scaled random
// increment, capped at the attribute ceiling.
func (e *Engine) growAttributes(p *players.Player, scale float64) {
	for _, name := range trackedAttributes {
		p.Attributes[name] = clamp(p.Attributes.Get(name)+e.r.Float64()*scale*p.HiddenPotential, 1, maxAttribute)
	}
}

func offerTierFor(stars float64) (base, spread int) {
	for _, tier := range offerTiers {
		if stars < tier.below {
			return tier.base, tier.spread
		}
	}
	last := offerTiers[len(offerTiers)-1]
	return last.base, last.spread
}

func draftTierFor(overall float64) string {
	switch {
	case overall >= draftTierOne:
		return "Round 1"
	case overall >= draftTierTwo:
		return "Round 2"
	case overall >= draftTierThree:
		return "Round 3-4"
	case overall >= draftTierFour:
		return "Round 5-7"
	default:
		return "Undrafted"
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
