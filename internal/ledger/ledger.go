package ledger

import (
	"errors"
	"sort"

	"github.com/sirupsen/logrus"

	"piggy/internal/model"
	"piggy/internal/storage"
)

// ErrConflict is returned by Put when the day already holds an entry.
// The existing entry is left untouched; the caller should re-derive its
// view of today from the store instead of retrying blindly.
var ErrConflict = errors.New("ledger: entry already exists for day")

// Store holds the single in-process application state and writes it
// through to the persistent slot on every mutation. It is loaded once at
// startup via Open; there is no ambient singleton.
type Store struct {
	base  string
	state model.State
}

// Open loads the application state from the slot under base.
func Open(base string) (*Store, error) {
	st, err := storage.Load(base)
	if err != nil {
		return nil, err
	}
	return &Store{base: base, state: st}, nil
}

// Put inserts entry under dayKey. It refuses to overwrite an existing day
// and persists the full state before returning; on persist failure the
// in-memory state is rolled back so it never diverges from the slot.
func (s *Store) Put(dayKey string, e model.Entry) error {
	if _, exists := s.state.Entries[dayKey]; exists {
		return ErrConflict
	}

	prev := s.state.LastDrawDate
	s.state.Entries[dayKey] = e
	if prev == nil || dayKey > *prev {
		k := dayKey
		s.state.LastDrawDate = &k
	}

	if err := storage.Save(s.base, s.state); err != nil {
		delete(s.state.Entries, dayKey)
		s.state.LastDrawDate = prev
		return err
	}

	logrus.WithFields(logrus.Fields{
		"day":    dayKey,
		"amount": e.Amount,
	}).Debug("entry committed")
	return nil
}

// HasEntry reports whether the ledger holds an entry for dayKey.
func (s *Store) HasEntry(dayKey string) bool {
	_, ok := s.state.Entries[dayKey]
	return ok
}

// Entry returns the entry for dayKey, if present.
func (s *Store) Entry(dayKey string) (model.Entry, bool) {
	e, ok := s.state.Entries[dayKey]
	return e, ok
}

// TotalSaved returns the sum of all committed amounts.
func (s *Store) TotalSaved() int {
	total := 0
	for _, e := range s.state.Entries {
		total += e.Amount
	}
	return total
}

// DaysSaved returns the number of days with a committed entry.
func (s *Store) DaysSaved() int {
	return len(s.state.Entries)
}

// History returns all entries sorted by timestamp, most recent first.
func (s *Store) History() []model.Entry {
	entries := make([]model.Entry, 0, len(s.state.Entries))
	for _, e := range s.state.Entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries
}

// LastDrawDate returns the most recent committed day key, if any.
func (s *Store) LastDrawDate() (string, bool) {
	if s.state.LastDrawDate == nil {
		return "", false
	}
	return *s.state.LastDrawDate, true
}

// Pro reports whether the upgrade flag is set.
func (s *Store) Pro() bool {
	return s.state.Pro
}

// SetPro flips the upgrade flag and persists. Nothing ever resets the
// flag to false; real purchase validation happens outside the core, which
// merely records the result.
func (s *Store) SetPro(pro bool) error {
	prev := s.state.Pro
	s.state.Pro = pro
	if err := storage.Save(s.base, s.state); err != nil {
		s.state.Pro = prev
		return err
	}
	return nil
}
