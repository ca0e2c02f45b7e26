// Package career advances a single player through high school, college, and
// professional stages with stage-specific production models, promotion rules,
// and award triggers.
package career

import (
	"fmt"

	"gridiron-sim/internal/domain/players"
)

// Stage is a career stage. Transitions only move forward.
type Stage string

const (
	StageHighSchool Stage = "HS"
	StageCollege    Stage = "COLLEGE"
	StageNFL        Stage = "NFL"
)

// Calendar tracks position within the current stage.
type Calendar struct {
	Phase Stage `json:"phase"`
	Year  int   `json:"year"`
	Week  int   `json:"week"`
}

// YearLine is one simulated year of production.
type YearLine struct {
	Year          int     `json:"year"`
	Yards         int     `json:"yards"`
	RushYards     int     `json:"rushYards,omitempty"`
	TDs           int     `json:"tds"`
	Interceptions int     `json:"interceptions,omitempty"`
	Rating        float64 `json:"rating"`
}

// Offer is a college scholarship offer referencing a catalog school.
type Offer struct {
	SchoolID string  `json:"schoolId"`
	Name     string  `json:"name"`
	Prestige float64 `json:"prestige"`
}

// Award is a named honor earned in a given stage year.
type Award struct {
	Level Stage  `json:"level"`
	Year  int    `json:"year"`
	Name  string `json:"name"`
}

// StageTotals summarizes production accumulated within one stage.
type StageTotals struct {
	Yards         int `json:"yards"`
	RushYards     int `json:"rushYards"`
	TDs           int `json:"tds"`
	Interceptions int `json:"interceptions"`
}

// State is the full career record for one player. The State owns its Player
// exclusively; the engine mutates both in place.
type State struct {
	Player          *players.Player `json:"player"`
	Stage           Stage           `json:"stage"`
	Calendar        Calendar        `json:"calendar"`
	StarRating      float64         `json:"starRating"`
	HighSchoolYears []YearLine      `json:"highSchoolYears,omitempty"`
	CollegeYears    []YearLine      `json:"collegeYears,omitempty"`
	NFLYears        []YearLine      `json:"nflYears,omitempty"`
	Offers          []Offer         `json:"offers,omitempty"`
	CollegeTeam     string          `json:"collegeTeam,omitempty"`
	DraftProjection string          `json:"draftProjection,omitempty"`
	NFLTeam         string          `json:"nflTeam,omitempty"`
	Awards          []Award         `json:"awards,omitempty"`
	Retired         bool            `json:"retired"`
	RetiredYear     int             `json:"retiredYear,omitempty"`
	History         []string        `json:"history,omitempty"`

	declineYears int
}

// note appends a formatted line to the human-readable history log.
func (s *State) note(format string, args ...any) {
	entry := fmt.Sprintf("[%s y%d] ", s.Stage, s.Calendar.Year) + fmt.Sprintf(format, args...)
	s.History = append(s.History, entry)
}

func (s *State) award(name string) {
	s.Awards = append(s.Awards, Award{Level: s.Stage, Year: s.Calendar.Year, Name: name})
	s.note("earned %s", name)
}

// Totals sums production year lines for the given stage.
func (s *State) Totals(stage Stage) StageTotals {
	var years []YearLine
	switch stage {
	case StageHighSchool:
		years = s.HighSchoolYears
	case StageCollege:
		years = s.CollegeYears
	case StageNFL:
		years = s.NFLYears
	}
	var t StageTotals
	for _, y := range years {
		t.Yards += y.Yards
		t.RushYards += y.RushYards
		t.TDs += y.TDs
		t.Interceptions += y.Interceptions
	}
	return t
}

// Award category labels used by summary breakdowns.
const (
	CategoryChampionship = "championship"
	CategoryMVP          = "mvp"
	CategoryAllStar      = "all_star"
	CategoryAllConf      = "all_conference"
	CategoryCollegiate   = "collegiate"
)

var awardCategories = map[string]string{
	AwardChampionship:  CategoryChampionship,
	AwardMVP:           CategoryMVP,
	AwardProBowl:       CategoryAllStar,
	AwardAllPro:        CategoryAllStar,
	AwardAllConference: CategoryAllConf,
	AwardAllState:      CategoryCollegiate,
	AwardAllAmerican:   CategoryCollegiate,
}

// AwardBreakdown counts earned awards by summary category.
func (s *State) AwardBreakdown() map[string]int {
	out := make(map[string]int)
	for _, a := range s.Awards {
		cat, ok := awardCategories[a.Name]
		if !ok {
			cat = a.Name
		}
		out[cat]++
	}
	return out
}
