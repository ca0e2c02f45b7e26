// Package catalog holds the static recruiting and professional reference
// data used by the career engine. Catalogs are generated once from ordered
// name lists; prestige derives from list position with a floor so late
// entries stay viable recruiting destinations.
package catalog

import (
	"strconv"
	"strings"
)

// prestigeFloor keeps every catalog entry above a minimum desirability.
const prestigeFloor = 0.15

// FbsSchool is a static college program entry.
type FbsSchool struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Prestige float64 `json:"prestige"`
}

// NflFranchise is a static professional franchise entry.
type NflFranchise struct {
	Abbreviation string  `json:"abbreviation"`
	Name         string  `json:"name"`
	City         string  `json:"city"`
	Prestige     float64 `json:"prestige"`
}

// fbsSchoolNames is the ordered source list; earlier entries carry higher
// prestige. Duplicates (case-insensitive) are dropped during construction.
var fbsSchoolNames = []string{
	"Alabama", "Georgia", "Ohio State", "Michigan", "Texas",
	"Oklahoma", "Clemson", "Notre Dame", "LSU", "Oregon",
	"Penn State", "Florida State", "Tennessee", "USC", "Washington",
	"Ole Miss", "Utah", "Wisconsin", "Auburn", "Florida",
	"Texas A&M", "Miami", "Kansas State", "Iowa", "Missouri",
	"North Carolina", "Oregon State", "Memphis", "Tulane", "Boise State",
	"Appalachian State", "Toledo", "Troy", "Marshall", "Wyoming",
	"James Madison", "Liberty", "Coastal Carolina", "South Alabama", "Fresno State",
}

// nflFranchiseSeed is the ordered (abbreviation, name, city) source list.
var nflFranchiseSeed = []NflFranchise{
	{Abbreviation: "KC", Name: "Chiefs", City: "Kansas City"},
	{Abbreviation: "SF", Name: "49ers", City: "San Francisco"},
	{Abbreviation: "BUF", Name: "Bills", City: "Buffalo"},
	{Abbreviation: "PHI", Name: "Eagles", City: "Philadelphia"},
	{Abbreviation: "BAL", Name: "Ravens", City: "Baltimore"},
	{Abbreviation: "DAL", Name: "Cowboys", City: "Dallas"},
	{Abbreviation: "DET", Name: "Lions", City: "Detroit"},
	{Abbreviation: "MIA", Name: "Dolphins", City: "Miami"},
	{Abbreviation: "CIN", Name: "Bengals", City: "Cincinnati"},
	{Abbreviation: "GB", Name: "Packers", City: "Green Bay"},
	{Abbreviation: "HOU", Name: "Texans", City: "Houston"},
	{Abbreviation: "CLE", Name: "Browns", City: "Cleveland"},
	{Abbreviation: "LAR", Name: "Rams", City: "Los Angeles"},
	{Abbreviation: "JAX", Name: "Jaguars", City: "Jacksonville"},
	{Abbreviation: "PIT", Name: "Steelers", City: "Pittsburgh"},
	{Abbreviation: "SEA", Name: "Seahawks", City: "Seattle"},
	{Abbreviation: "LAC", Name: "Chargers", City: "Los Angeles"},
	{Abbreviation: "NO", Name: "Saints", City: "New Orleans"},
	{Abbreviation: "IND", Name: "Colts", City: "Indianapolis"},
	{Abbreviation: "MIN", Name: "Vikings", City: "Minneapolis"},
	{Abbreviation: "ATL", Name: "Falcons", City: "Atlanta"},
	{Abbreviation: "TB", Name: "Buccaneers", City: "Tampa Bay"},
	{Abbreviation: "DEN", Name: "Broncos", City: "Denver"},
	{Abbreviation: "LV", Name: "Raiders", City: "Las Vegas"},
	{Abbreviation: "NYJ", Name: "Jets", City: "New York"},
	{Abbreviation: "NYG", Name: "Giants", City: "New York"},
	{Abbreviation: "CHI", Name: "Bears", City: "Chicago"},
	{Abbreviation: "TEN", Name: "Titans", City: "Nashville"},
	{Abbreviation: "WAS", Name: "Commanders", City: "Washington"},
	{Abbreviation: "NE", Name: "Patriots", City: "Foxborough"},
	{Abbreviation: "ARI", Name: "Cardinals", City: "Phoenix"},
	{Abbreviation: "CAR", Name: "Panthers", City: "Charlotte"},
}

// FbsSchools builds the school catalog from the ordered name list.
// Names are deduplicated case-insensitively; ids are generated
// abbreviations of the school name.
func FbsSchools() []FbsSchool {
	seen := make(map[string]struct{}, len(fbsSchoolNames))
	usedIDs := make(map[string]struct{}, len(fbsSchoolNames))
	out := make([]FbsSchool, 0, len(fbsSchoolNames))
	for _, name := range fbsSchoolNames {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, FbsSchool{ID: uniqueID(abbreviate(name), usedIDs), Name: name})
	}
	applyPrestige(out)
	return out
}

// uniqueID disambiguates generated abbreviations that collide
// (e.g. Ohio State and Oregon State) with a numeric suffix.
func uniqueID(id string, used map[string]struct{}) string {
	candidate := id
	for n := 2; ; n++ {
		if _, ok := used[candidate]; !ok {
			used[candidate] = struct{}{}
			return candidate
		}
		candidate = id + strconv.Itoa(n)
	}
}

// NflFranchises builds the franchise catalog with prestige from list position.
func NflFranchises() []NflFranchise {
	out := make([]NflFranchise, len(nflFranchiseSeed))
	copy(out, nflFranchiseSeed)
	for i := range out {
		out[i].Prestige = prestigeAt(i, len(out))
	}
	return out
}

func applyPrestige(schools []FbsSchool) {
	for i := range schools {
		schools[i].Prestige = prestigeAt(i, len(schools))
	}
}

// prestigeAt maps a catalog position to [prestigeFloor, 1.0], earlier is higher.
func prestigeAt(index, total int) float64 {
	if total <= 1 {
		return 1.0
	}
	p := 1.0 - float64(index)/float64(total-1)*(1.0-prestigeFloor)
	if p < prestigeFloor {
		return prestigeFloor
	}
	return p
}

// abbreviate generates a short uppercase id from a school name: initials for
// multi-word names, a prefix otherwise.
func abbreviate(name string) string {
	words := strings.Fields(name)
	if len(words) >= 2 {
		var b strings.Builder
		for _, w := range words {
			r := []rune(w)
			b.WriteRune(r[0])
		}
		return strings.ToUpper(b.String())
	}
	r := []rune(name)
	if len(r) > 4 {
		r = r[:4]
	}
	return strings.ToUpper(string(r))
}
