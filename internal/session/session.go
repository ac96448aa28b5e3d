package session

import (
	"errors"
	"time"

	"piggy/internal/datecalc"
	"piggy/internal/draw"
	"piggy/internal/ledger"
	"piggy/internal/model"
)

// Phase is the lifecycle position of today's draw interaction.
type Phase int

const (
	// Idle: no draw has been requested (or the last one was discarded).
	Idle Phase = iota
	// Drawing: a draw is in progress and cannot be interrupted.
	Drawing
	// Pending: an amount has been drawn and awaits annotation or commit.
	Pending
)

var (
	// ErrAlreadyDrawnToday rejects a draw request when today's entry is
	// already committed in the ledger.
	ErrAlreadyDrawnToday = errors.New("session: already drawn today")
	// ErrDrawInProgress rejects a draw request while one is running.
	ErrDrawInProgress = errors.New("session: draw in progress")
	// ErrDrawPending rejects a draw request while a drawn amount still
	// awaits save or discard.
	ErrDrawPending = errors.New("session: drawn amount awaiting save")
	// ErrNoPendingDraw rejects annotation, commit or discard outside the
	// Pending phase.
	ErrNoPendingDraw = errors.New("session: no pending draw")
)

// DefaultSpinDelay is the fixed artificial delay between requesting a
// draw and the drawn amount becoming available.
const DefaultSpinDelay = 1500 * time.Millisecond

// Session drives one day's draw interaction. It is ephemeral: created
// fresh per process, reset on commit, never serialized. There is no
// stored "committed" phase; whether today is done is re-derived from the
// ledger at every guard check, so a day rollover while the process lives
// makes drawing legal again without any cache invalidation.
type Session struct {
	store *ledger.Store

	phase   Phase
	pending int
	draft   string

	spinDelay time.Duration
	now       func() time.Time
	drawFn    func() int
}

// New creates a session over store. spinDelay is the artificial Drawing
// duration; pass 0 to draw immediately.
func New(store *ledger.Store, spinDelay time.Duration) *Session {
	return &Session{
		store:     store,
		spinDelay: spinDelay,
		now:       time.Now,
		drawFn:    draw.Draw,
	}
}

// RequestDraw runs Idle → Drawing → Pending and returns the drawn amount.
// The Drawing phase lasts the configured spin delay and is not
// cancellable by the caller; only process teardown interrupts it.
func (s *Session) RequestDraw() (int, error) {
	switch s.phase {
	case Drawing:
		return 0, ErrDrawInProgress
	case Pending:
		return 0, ErrDrawPending
	}
	if s.store.HasEntry(datecalc.DayKey(s.now())) {
		return 0, ErrAlreadyDrawnToday
	}

	s.phase = Drawing
	if s.spinDelay > 0 {
		time.Sleep(s.spinDelay)
	}
	s.pending = s.drawFn()
	s.phase = Pending
	return s.pending, nil
}

// SetDraftDiary updates the draft annotation of the pending draw. It does
// not change phase.
func (s *Session) SetDraftDiary(text string) error {
	if s.phase != Pending {
		return ErrNoPendingDraw
	}
	s.draft = text
	return nil
}

// Commit turns the pending draw into a permanent ledger entry, stamped
// with the full current timestamp. On ledger.ErrConflict (an entry for
// today appeared since the draw) the ledger is untouched and the session
// stays Pending so the caller can reconcile; on success the session
// resets and the draft text is discarded.
func (s *Session) Commit() (model.Entry, error) {
	if s.phase != Pending {
		return model.Entry{}, ErrNoPendingDraw
	}

	entry := model.Entry{
		Date:   s.now(),
		Amount: s.pending,
		Diary:  s.draft,
	}
	if err := s.store.Put(datecalc.DayKey(entry.Date), entry); err != nil {
		return model.Entry{}, err
	}

	s.phase = Idle
	s.pending = 0
	s.draft = ""
	return entry, nil
}

// DiscardDraw abandons the pending draw and its draft text without
// writing anything to the ledger, returning the session to Idle.
func (s *Session) DiscardDraw() error {
	if s.phase != Pending {
		return ErrNoPendingDraw
	}
	s.phase = Idle
	s.pending = 0
	s.draft = ""
	return nil
}

// HasEntryForToday reports whether today's entry is already committed,
// always derived from the ledger at call time.
func (s *Session) HasEntryForToday() bool {
	return s.store.HasEntry(datecalc.DayKey(s.now()))
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// PendingAmount returns the drawn amount awaiting commit, or 0 outside
// the Pending phase.
func (s *Session) PendingAmount() int {
	if s.phase != Pending {
		return 0
	}
	return s.pending
}
