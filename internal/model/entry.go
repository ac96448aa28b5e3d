package model

import "time"

// Entry is one day's committed savings draw. Entries are immutable once
// created; a calendar day holds at most one.
type Entry struct {
	Date   time.Time `json:"date"`
	Amount int       `json:"amount"`
	Diary  string    `json:"diary"`
}

// State is the full persisted application state, stored as a single JSON
// document in ~/.piggy/state.json. Entries is keyed by day (YYYY-MM-DD).
// LastDrawDate tracks the most recent committed day and is nil until the
// first commit; it always equals the greatest key present in Entries.
type State struct {
	Entries      map[string]Entry `json:"entries"`
	Pro          bool             `json:"isPro"`
	LastDrawDate *string          `json:"lastDrawDate"`
}

// NewState returns the empty default state used when no slot exists yet.
func NewState() State {
	return State{Entries: map[string]Entry{}}
}
