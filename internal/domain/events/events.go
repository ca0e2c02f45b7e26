package events

import (
	"time"

	"github.com/google/uuid"
)

// PlayType identifies the kind of play an event records.
type PlayType string

const (
	PlayRun  PlayType = "run"
	PlayPass PlayType = "pass"
)

// Result carries the play-type-specific outcome payload of an event.
// Pass plays populate Complete/Interception/Pressure/YAC; run plays
// populate BrokenTackles. Yards and Touchdown are shared.
type Result struct {
	Complete      bool   `json:"complete,omitempty"`
	Yards         int    `json:"yards"`
	Touchdown     bool   `json:"td"`
	Interception  bool   `json:"interception,omitempty"`
	Pressure      bool   `json:"pressure,omitempty"`
	YAC           int    `json:"yac,omitempty"`
	BrokenTackles int    `json:"brokenTackles,omitempty"`
	Injury        string `json:"injury,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// Event is one immutable raw entry in the play-by-play trace. EventID and
// Timestamp are injected when the event is logged; game context fields are
// stamped by the game simulator before logging.
type Event struct {
	EventID         string   `json:"eventId"`
	Timestamp       string   `json:"ts"`
	PlayType        PlayType `json:"playType"`
	OffenseTeam     string   `json:"offenseTeam"`
	DefenseTeam     string   `json:"defenseTeam"`
	PrimaryPlayerID string   `json:"primaryPlayerId"`
	InvolvedIDs     []string `json:"involvedIds"`
	Result          Result   `json:"result"`

	GameID        string `json:"gameId,omitempty"`
	Quarter       int    `json:"quarter,omitempty"`
	DriveIndex    int    `json:"driveIndex,omitempty"`
	OffenseIsHome bool   `json:"offenseIsHome,omitempty"`
}

// Log is an append-only in-memory buffer of raw events. It is owned by the
// caller, is not safe for concurrent use, and must be explicitly reset
// between independent games when cross-game duplication matters.
type Log struct {
	events []Event
	now    func() time.Time
	newID  func() string
}

// NewLog constructs an empty Log with real time and UUID identity.
func NewLog() *Log {
	return &Log{
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// NewLogWithClock constructs a Log with injected time and id sources.
func NewLogWithClock(now func() time.Time, newID func() string) *Log {
	log := NewLog()
	if now != nil {
		log.now = now
	}
	if newID != nil {
		log.newID = newID
	}
	return log
}

// Append stamps the event with a unique id and UTC timestamp and stores it.
// The stamped event is returned; stored events are never mutated afterward.
func (l *Log) Append(ev Event) Event {
	ev.EventID = l.newID()
	ev.Timestamp = l.now().UTC().Format(time.RFC3339Nano)
	l.events = append(l.events, ev)
	return ev
}

// Events returns a copy of the logged events in append order.
func (l *Log) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Len returns the number of logged events.
func (l *Log) Len() int {
	return len(l.events)
}

// Reset discards all logged events. Clearing between independent games is a
// caller responsibility, not an engine invariant.
func (l *Log) Reset() {
	l.events = l.events[:0]
}
