package catalog

import (
	"strings"
	"testing"
)

func TestFbsSchoolsDeduplicatesAndOrders(t *testing.T) {
	schools := FbsSchools()
	if len(schools) == 0 {
		t.Fatal("expected non-empty school catalog")
	}

	seenNames := make(map[string]struct{}, len(schools))
	seenIDs := make(map[string]struct{}, len(schools))
	for _, s := range schools {
		key := strings.ToLower(s.Name)
		if _, ok := seenNames[key]; ok {
			t.Fatalf("duplicate school name %q", s.Name)
		}
		seenNames[key] = struct{}{}
		if s.ID == "" {
			t.Fatalf("school %q has empty id", s.Name)
		}
		if _, ok := seenIDs[s.ID]; ok {
			t.Fatalf("duplicate school id %q", s.ID)
		}
		seenIDs[s.ID] = struct{}{}
	}
}

func TestFbsSchoolPrestigeDecreasesWithFloor(t *testing.T) {
	schools := FbsSchools()

	if schools[0].Prestige != 1.0 {
		t.Fatalf("expected top school prestige 1.0, got %v", schools[0].Prestige)
	}
	for i := 1; i < len(schools); i++ {
		if schools[i].Prestige > schools[i-1].Prestige {
			t.Fatalf("prestige increased at index %d: %v > %v", i,
				schools[i].Prestige, schools[i-1].Prestige)
		}
	}
	last := schools[len(schools)-1]
	if last.Prestige < prestigeFloor {
		t.Fatalf("prestige below floor: %v", last.Prestige)
	}
}

func TestNflFranchises(t *testing.T) {
	franchises := NflFranchises()
	if len(franchises) != 32 {
		t.Fatalf("expected 32 franchises, got %d", len(franchises))
	}
	if franchises[0].Prestige != 1.0 {
		t.Fatalf("expected first franchise prestige 1.0, got %v", franchises[0].Prestige)
	}
	for i := 1; i < len(franchises); i++ {
		if franchises[i].Prestige > franchises[i-1].Prestige {
			t.Fatalf("franchise prestige increased at index %d", i)
		}
	}
	for _, f := range franchises {
		if f.Abbreviation == "" || f.City == "" || f.Name == "" {
			t.Fatalf("incomplete franchise entry: %+v", f)
		}
	}
}

func TestNflFranchisesReturnsCopy(t *testing.T) {
	first := NflFranchises()
	first[0].City = "Nowhere"

	if NflFranchises()[0].City == "Nowhere" {
		t.Fatal("catalog mutated by caller")
	}
}

func TestAbbreviate(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Alabama", "ALAB"},
		{"Ohio State", "OS"},
		{"Notre Dame", "ND"},
		{"USC", "USC"},
	}
	for _, tt := range tests {
		if got := abbreviate(tt.name); got != tt.want {
			t.Errorf("abbreviate(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
