package players

import (
	"testing"
	"time"
)

func TestNewFillsCoreAttributes(t *testing.T) {
	p := New("p1", "Test Player", PositionWR, 22, Attributes{AttrSpeed: 88})

	for _, name := range coreAttributes {
		if _, ok := p.Attributes[name]; !ok {
			t.Fatalf("expected attribute %q to be present", name)
		}
	}
	if p.Attributes[AttrSpeed] != 88 {
		t.Fatalf("expected provided speed preserved, got %v", p.Attributes[AttrSpeed])
	}
	if p.Attributes[AttrCatching] != DefaultAttribute {
		t.Fatalf("expected default catching, got %v", p.Attributes[AttrCatching])
	}
	if p.Morale != 0.5 {
		t.Fatalf("expected default morale 0.5, got %v", p.Morale)
	}
}

func TestNewDoesNotShareMaps(t *testing.T) {
	a := New("a", "A", PositionRB, 20, nil)
	b := New("b", "B", PositionRB, 20, nil)

	a.Attributes[AttrSpeed] = 99
	a.Personality["grit"] = 1

	if b.Attributes[AttrSpeed] == 99 {
		t.Fatal("attribute map shared between players")
	}
	if _, ok := b.Personality["grit"]; ok {
		t.Fatal("personality map shared between players")
	}
}

func TestAttributesGetDefaults(t *testing.T) {
	var nilAttrs Attributes
	if got := nilAttrs.Get(AttrSpeed); got != DefaultAttribute {
		t.Fatalf("nil attributes: expected %v, got %v", DefaultAttribute, got)
	}
	attrs := Attributes{AttrSpeed: 70}
	if got := attrs.Get(AttrSpeed); got != 70 {
		t.Fatalf("expected 70, got %v", got)
	}
	if got := attrs.Get(AttrStrength); got != DefaultAttribute {
		t.Fatalf("missing key: expected %v, got %v", DefaultAttribute, got)
	}
}

func TestOverallIsMeanOfCoreAttributes(t *testing.T) {
	p := New("p1", "Even", PositionQB, 24, nil)
	if got := p.Overall(); got != DefaultAttribute {
		t.Fatalf("all-default player: expected overall %v, got %v", DefaultAttribute, got)
	}

	p.Attributes[AttrSpeed] = 57 // +7 over default across 7 attributes
	if got := p.Overall(); got != DefaultAttribute+1 {
		t.Fatalf("expected overall %v, got %v", DefaultAttribute+1, got)
	}
}

func TestPositionCapabilityGroups(t *testing.T) {
	tests := []struct {
		pos      Position
		target   bool
		carrier  bool
		line     bool
		front    bool
		coverage bool
	}{
		{PositionWR, true, false, false, false, false},
		{PositionTE, true, false, false, false, false},
		{PositionRB, false, true, false, false, false},
		{PositionOL, false, false, true, false, false},
		{PositionDL, false, false, false, true, false},
		{PositionLB, false, false, false, true, true},
		{PositionDB, false, false, false, false, true},
	}

	for _, tt := range tests {
		if got := tt.pos.IsEligibleTarget(); got != tt.target {
			t.Errorf("%s IsEligibleTarget = %v, want %v", tt.pos, got, tt.target)
		}
		if got := tt.pos.IsBallCarrier(); got != tt.carrier {
			t.Errorf("%s IsBallCarrier = %v, want %v", tt.pos, got, tt.carrier)
		}
		if got := tt.pos.IsOffensiveLine(); got != tt.line {
			t.Errorf("%s IsOffensiveLine = %v, want %v", tt.pos, got, tt.line)
		}
		if got := tt.pos.IsDefensiveFront(); got != tt.front {
			t.Errorf("%s IsDefensiveFront = %v, want %v", tt.pos, got, tt.front)
		}
		if got := tt.pos.IsCoverage(); got != tt.coverage {
			t.Errorf("%s IsCoverage = %v, want %v", tt.pos, got, tt.coverage)
		}
	}
}

func TestRecordInjury(t *testing.T) {
	p := New("p1", "Hurt", PositionRB, 23, nil)
	when := time.Date(2025, 10, 12, 20, 0, 0, 0, time.UTC)

	p.RecordInjury("hamstring", "game-1", when)

	if len(p.Injuries) != 1 || p.Injuries[0].Kind != "hamstring" {
		t.Fatalf("unexpected injuries: %+v", p.Injuries)
	}
	if !p.Injuries[0].When.Equal(when) {
		t.Fatalf("expected injury time preserved")
	}
	if len(p.CareerNotes) != 1 || p.CareerNotes[0].Type != "injury" {
		t.Fatalf("expected matching career note, got %+v", p.CareerNotes)
	}
}
