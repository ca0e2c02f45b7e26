package career

import (
	"errors"
	"testing"

	"gridiron-sim/internal/domain/catalog"
	"gridiron-sim/internal/domain/players"
	"gridiron-sim/internal/sim/rng"
)

func newTestEngine(seed int64) *Engine {
	return NewEngine(rng.New(seed), 1)
}

func TestNewProspectBounds(t *testing.T) {
	e := newTestEngine(1)

	st := e.NewProspect("Jalen Moore", players.PositionQB, 3.5)
	if st.Stage != StageHighSchool {
		t.Fatalf("expected HS stage, got %s", st.Stage)
	}
	if st.Player.Age != prospectAge {
		t.Fatalf("expected age %d, got %d", prospectAge, st.Player.Age)
	}
	if st.StarRating != 3.5 {
		t.Fatalf("expected star rating 3.5, got %v", st.StarRating)
	}
	if got := st.Player.HiddenPotential; got < minPotential || got > maxPotential {
		t.Fatalf("hidden potential out of bounds: %v", got)
	}
	for _, attr := range trackedAttributes {
		v, ok := st.Player.Attributes[attr]
		if !ok {
			t.Fatalf("missing attribute %s", attr)
		}
		if v <= 0 || v > 99 {
			t.Fatalf("attribute %s out of range: %v", attr, v)
		}
	}

	low := e.NewProspect("Low", players.PositionRB, -2)
	if low.StarRating != 1 {
		t.Fatalf("expected star floor 1, got %v", low.StarRating)
	}
	high := e.NewProspect("High", players.PositionWR, 9)
	if high.StarRating != 5 {
		t.Fatalf("expected star ceiling 5, got %v", high.StarRating)
	}
}

func TestHighSchoolYearProgression(t *testing.T) {
	e := newTestEngine(2)
	st := e.NewProspect("Jalen Moore", players.PositionQB, 2.0)

	for year := 1; year <= 3; year++ {
		if err := e.SimulateHighSchoolYear(st); err != nil {
			t.Fatalf("year %d: %v", year, err)
		}
		if len(st.HighSchoolYears) != year {
			t.Fatalf("expected %d year lines, got %d", year, len(st.HighSchoolYears))
		}
		line := st.HighSchoolYears[year-1]
		if line.Yards < 0 || line.TDs < 0 {
			t.Fatalf("negative production: %+v", line)
		}
		if st.StarRating < 1 || st.StarRating > 5 {
			t.Fatalf("star rating out of bounds: %v", st.StarRating)
		}
		if p := st.Player.HiddenPotential; p < 0.1 || p > 1.0 {
			t.Fatalf("potential out of bounds: %v", p)
		}
	}
	if st.Player.Age != prospectAge+3 {
		t.Fatalf("expected age %d, got %d", prospectAge+3, st.Player.Age)
	}
	if len(st.History) == 0 {
		t.Fatal("expected history entries")
	}
}

func TestHighSchoolYearStageGuard(t *testing.T) {
	e := newTestEngine(3)
	st := e.NewProspect("Jalen Moore", players.PositionQB, 4.0)
	e.GenerateCollegeOffers(st)
	if err := e.CommitToCollege(st, st.Offers[0].SchoolID); err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if err := e.SimulateHighSchoolYear(st); !errors.Is(err, ErrStageMismatch) {
		t.Fatalf("expected ErrStageMismatch, got %v", err)
	}
}

func TestGenerateCollegeOffers(t *testing.T) {
	e := newTestEngine(4)
	st := e.NewProspect("Jalen Moore", players.PositionQB, 4.5)
	e.SimulateHighSchoolYear(st)

	offers := e.GenerateCollegeOffers(st)
	if len(offers) == 0 {
		t.Fatal("expected at least one offer")
	}
	if len(offers) > len(catalog.FbsSchools()) {
		t.Fatalf("offer count %d exceeds catalog", len(offers))
	}
	seen := map[string]bool{}
	for _, o := range offers {
		if seen[o.SchoolID] {
			t.Fatalf("duplicate offer for %s", o.SchoolID)
		}
		seen[o.SchoolID] = true
		if o.Prestige <= 0 {
			t.Fatalf("offer with non-positive prestige: %+v", o)
		}
	}
	if len(st.Offers) != len(offers) {
		t.Fatal("offers not recorded on state")
	}
}

func TestOfferTierTable(t *testing.T) {
	cases := []struct {
		stars  float64
		base   int
		spread int
	}{
		{1.0, 1, 2},
		{2.0, 2, 3},
		{3.0, 4, 4},
		{4.0, 6, 5},
		{5.0, 8, 6},
	}
	for _, tc := range cases {
		base, spread := offerTierFor(tc.stars)
		if base != tc.base || spread != tc.spread {
			t.Fatalf("stars %v: got base %d spread %d, want %d %d",
				tc.stars, base, spread, tc.base, tc.spread)
		}
	}
}

func TestCommitToCollegeRejectsUnknownOffer(t *testing.T) {
	e := newTestEngine(5)
	st := e.NewProspect("Jalen Moore", players.PositionQB, 3.0)
	e.GenerateCollegeOffers(st)

	if err := e.CommitToCollege(st, "no-such-school"); !errors.Is(err, ErrUnknownOffer) {
		t.Fatalf("expected ErrUnknownOffer, got %v", err)
	}
	if st.Stage != StageHighSchool {
		t.Fatalf("failed commit must not change stage, got %s", st.Stage)
	}

	if err := e.CommitToCollege(st, st.Offers[0].SchoolID); err != nil {
		t.Fatalf("valid commit failed: %v", err)
	}
	if st.Stage != StageCollege || st.CollegeTeam == "" {
		t.Fatalf("commit did not set college state: %+v", st)
	}
	if st.Calendar.Phase != StageCollege || st.Calendar.Year != 0 {
		t.Fatalf("calendar not reset: %+v", st.Calendar)
	}
}

func TestSimulateCollegeYearAutoCommits(t *testing.T) {
	e := newTestEngine(6)
	st := e.NewProspect("Jalen Moore", players.PositionQB, 3.0)

	if err := e.SimulateCollegeYear(st); err != nil {
		t.Fatalf("college year failed: %v", err)
	}
	if st.Stage == StageHighSchool {
		t.Fatal("expected auto-commit to advance stage")
	}
	if st.CollegeTeam == "" {
		t.Fatal("expected committed college team")
	}
	best := 0.0
	for _, o := range st.Offers {
		if o.Prestige > best {
			best = o.Prestige
		}
	}
	committed := 0.0
	for _, o := range st.Offers {
		if o.Name == st.CollegeTeam {
			committed = o.Prestige
		}
	}
	if committed != best {
		t.Fatalf("expected commit to highest-prestige offer, got %v want %v", committed, best)
	}
}

func TestNoPromotionWithoutOffers(t *testing.T) {
	src := rng.New(7)
	e := NewEngineWithCatalogs(src, 1, nil, catalog.NflFranchises())
	st := e.NewProspect("Jalen Moore", players.PositionQB, 2.0)

	for i := 0; i < 5; i++ {
		if err := e.SimulateCollegeYear(st); err != nil {
			t.Fatalf("college year failed: %v", err)
		}
	}
	if st.Stage != StageHighSchool {
		t.Fatalf("stage advanced without any offers: %s", st.Stage)
	}
	if len(st.CollegeYears) != 0 {
		t.Fatal("college production recorded without a commitment")
	}
}

func TestForcedPromotionAtYearCeiling(t *testing.T) {
	e := newTestEngine(8)
	st := e.NewProspect("Jalen Moore", players.PositionQB, 3.0)

	for i := 0; i < collegeYearCeiling+1 && st.Stage != StageNFL; i++ {
		if err := e.SimulateCollegeYear(st); err != nil {
			t.Fatalf("college year failed: %v", err)
		}
	}
	if st.Stage != StageNFL {
		t.Fatalf("expected promotion by year %d, got stage %s year %d",
			collegeYearCeiling, st.Stage, st.Calendar.Year)
	}
	if st.DraftProjection == "" {
		t.Fatal("expected draft projection at promotion")
	}
	if st.NFLTeam == "" {
		t.Fatal("expected landing franchise at promotion")
	}
}

func TestDraftTierTable(t *testing.T) {
	cases := []struct {
		overall float64
		want    string
	}{
		{90, "Round 1"},
		{88, "Round 1"},
		{85, "Round 2"},
		{81, "Round 3-4"},
		{77, "Round 5-7"},
		{60, "Undrafted"},
	}
	for _, tc := range cases {
		if got := draftTierFor(tc.overall); got != tc.want {
			t.Fatalf("overall %v: got %q want %q", tc.overall, got, tc.want)
		}
	}
}

func TestSimulateNFLSeasonsRequiresNFLStage(t *testing.T) {
	e := newTestEngine(9)
	st := e.NewProspect("Jalen Moore", players.PositionQB, 3.0)
	if err := e.SimulateNFLSeasons(st, 1); !errors.Is(err, ErrStageMismatch) {
		t.Fatalf("expected ErrStageMismatch, got %v", err)
	}
}

func runFullCareer(t *testing.T, e *Engine, stars float64) *State {
	t.Helper()
	st := e.NewProspect("Jalen Moore", players.PositionQB, stars)
	for i := 0; i < 4; i++ {
		if err := e.SimulateHighSchoolYear(st); err != nil {
			t.Fatalf("HS year failed: %v", err)
		}
	}
	for i := 0; i < collegeYearCeiling+1 && st.Stage != StageNFL; i++ {
		if err := e.SimulateCollegeYear(st); err != nil {
			t.Fatalf("college year failed: %v", err)
		}
	}
	if err := e.SimulateNFLSeasons(st, 18); err != nil {
		t.Fatalf("NFL seasons failed: %v", err)
	}
	return st
}

func TestFullCareerInvariants(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		st := runFullCareer(t, newTestEngine(seed), 3.5)
		if st.Stage != StageNFL {
			t.Fatalf("seed %d: expected NFL stage, got %s", seed, st.Stage)
		}
		if len(st.NFLYears) == 0 {
			t.Fatalf("seed %d: no professional seasons recorded", seed)
		}
		for _, line := range st.NFLYears {
			if line.Yards < 0 || line.TDs < 0 || line.Interceptions < 0 || line.RushYards < 0 {
				t.Fatalf("seed %d: negative production: %+v", seed, line)
			}
		}
		if st.StarRating < 1 || st.StarRating > 5 {
			t.Fatalf("seed %d: star rating out of bounds: %v", seed, st.StarRating)
		}
		if p := st.Player.HiddenPotential; p < 0.1 || p > 1.0 {
			t.Fatalf("seed %d: potential out of bounds: %v", seed, p)
		}
		if st.Retired && st.RetiredYear < retirementYear {
			t.Fatalf("seed %d: retired before year %d: %d", seed, retirementYear, st.RetiredYear)
		}
		if st.Retired && len(st.NFLYears) != st.RetiredYear {
			t.Fatalf("seed %d: seasons recorded after retirement", seed)
		}
	}
}

func TestCareerDeterminism(t *testing.T) {
	a := runFullCareer(t, newTestEngine(42), 3.0)
	b := runFullCareer(t, newTestEngine(42), 3.0)

	if len(a.History) != len(b.History) {
		t.Fatalf("history lengths differ: %d vs %d", len(a.History), len(b.History))
	}
	for i := range a.History {
		if a.History[i] != b.History[i] {
			t.Fatalf("history diverges at %d: %q vs %q", i, a.History[i], b.History[i])
		}
	}
	if a.StarRating != b.StarRating || a.DraftProjection != b.DraftProjection || a.NFLTeam != b.NFLTeam {
		t.Fatal("career outcomes diverge for identical seeds")
	}
	if len(a.NFLYears) != len(b.NFLYears) {
		t.Fatal("season counts diverge for identical seeds")
	}
	for i := range a.NFLYears {
		if a.NFLYears[i] != b.NFLYears[i] {
			t.Fatalf("season %d diverges: %+v vs %+v", i, a.NFLYears[i], b.NFLYears[i])
		}
	}
}

func TestTotalsAndAwardBreakdown(t *testing.T) {
	st := &State{
		NFLYears: []YearLine{
			{Year: 1, Yards: 3000, RushYards: 200, TDs: 20, Interceptions: 10},
			{Year: 2, Yards: 3500, RushYards: 100, TDs: 25, Interceptions: 8},
		},
		CollegeYears: []YearLine{{Year: 1, Yards: 1500, TDs: 12}},
		Awards: []Award{
			{Level: StageNFL, Year: 1, Name: AwardMVP},
			{Level: StageNFL, Year: 1, Name: AwardProBowl},
			{Level: StageNFL, Year: 2, Name: AwardAllPro},
			{Level: StageCollege, Year: 1, Name: AwardAllAmerican},
		},
	}

	nfl := st.Totals(StageNFL)
	if nfl.Yards != 6500 || nfl.RushYards != 300 || nfl.TDs != 45 || nfl.Interceptions != 18 {
		t.Fatalf("unexpected NFL totals: %+v", nfl)
	}
	college := st.Totals(StageCollege)
	if college.Yards != 1500 || college.TDs != 12 {
		t.Fatalf("unexpected college totals: %+v", college)
	}
	if hs := st.Totals(StageHighSchool); hs != (StageTotals{}) {
		t.Fatalf("expected empty HS totals, got %+v", hs)
	}

	breakdown := st.AwardBreakdown()
	if breakdown[CategoryMVP] != 1 || breakdown[CategoryAllStar] != 2 || breakdown[CategoryCollegiate] != 1 {
		t.Fatalf("unexpected breakdown: %+v", breakdown)
	}
}
