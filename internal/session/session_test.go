package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"piggy/internal/ledger"
)

// newTestSession returns a session with a zero spin delay, a fixed draw
// result and a controllable clock.
func newTestSession(t *testing.T) (*Session, *time.Time) {
	t.Helper()

	store, err := ledger.Open(t.TempDir())
	require.NoError(t, err)

	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	s := New(store, 0)
	s.now = func() time.Time { return now }
	s.drawFn = func() int { return 300 }
	return s, &now
}

func TestDrawAnnotateCommit(t *testing.T) {
	s, _ := newTestSession(t)

	assert.Equal(t, Idle, s.Phase())
	assert.False(t, s.HasEntryForToday())

	amount, err := s.RequestDraw()
	require.NoError(t, err)
	assert.Equal(t, 300, amount)
	assert.Equal(t, Pending, s.Phase())
	assert.Equal(t, 300, s.PendingAmount())

	require.NoError(t, s.SetDraftDiary("saved my lunch money"))

	entry, err := s.Commit()
	require.NoError(t, err)
	assert.Equal(t, 300, entry.Amount)
	assert.Equal(t, "saved my lunch money", entry.Diary)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), entry.Date)

	assert.Equal(t, Idle, s.Phase())
	assert.Equal(t, 0, s.PendingAmount())
	assert.True(t, s.HasEntryForToday())
	assert.Equal(t, 300, s.store.TotalSaved())
}

func TestRequestDrawRejectedAfterCommit(t *testing.T) {
	s, now := newTestSession(t)

	_, err := s.RequestDraw()
	require.NoError(t, err)
	_, err = s.Commit()
	require.NoError(t, err)

	_, err = s.RequestDraw()
	require.ErrorIs(t, err, ErrAlreadyDrawnToday)

	// The guard re-derives "today" from the clock at every call: once the
	// day rolls over, drawing becomes legal again.
	*now = now.AddDate(0, 0, 1)
	_, err = s.RequestDraw()
	require.NoError(t, err)
	assert.Equal(t, Pending, s.Phase())
}

func TestRequestDrawRejectedWhilePending(t *testing.T) {
	s, _ := newTestSession(t)

	_, err := s.RequestDraw()
	require.NoError(t, err)

	_, err = s.RequestDraw()
	require.ErrorIs(t, err, ErrDrawPending)
}

func TestDiscardDoesNotPersist(t *testing.T) {
	s, _ := newTestSession(t)

	_, err := s.RequestDraw()
	require.NoError(t, err)
	require.NoError(t, s.SetDraftDiary("never saved"))
	require.NoError(t, s.DiscardDraw())

	assert.Equal(t, Idle, s.Phase())
	assert.Empty(t, s.store.History())
	assert.False(t, s.HasEntryForToday())

	// A re-draw after a discard starts from a clean draft.
	_, err = s.RequestDraw()
	require.NoError(t, err)
	entry, err := s.Commit()
	require.NoError(t, err)
	assert.Equal(t, "", entry.Diary)
}

func TestGuardsOutsidePending(t *testing.T) {
	s, _ := newTestSession(t)

	require.ErrorIs(t, s.SetDraftDiary("x"), ErrNoPendingDraw)
	_, err := s.Commit()
	require.ErrorIs(t, err, ErrNoPendingDraw)
	require.ErrorIs(t, s.DiscardDraw(), ErrNoPendingDraw)
}

func TestCommitConflictLeavesSessionPending(t *testing.T) {
	store, err := ledger.Open(t.TempDir())
	require.NoError(t, err)

	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	mk := func(amount int) *Session {
		s := New(store, 0)
		s.now = func() time.Time { return now }
		s.drawFn = func() int { return amount }
		return s
	}

	// Two sessions draw before either commits.
	s1 := mk(500)
	s2 := mk(100)
	_, err = s1.RequestDraw()
	require.NoError(t, err)
	_, err = s2.RequestDraw()
	require.NoError(t, err)

	_, err = s1.Commit()
	require.NoError(t, err)

	// The loser gets a conflict, stays Pending and the ledger keeps the
	// winner's entry.
	_, err = s2.Commit()
	require.ErrorIs(t, err, ledger.ErrConflict)
	assert.Equal(t, Pending, s2.Phase())
	assert.Equal(t, 100, s2.PendingAmount())
	assert.Equal(t, 500, store.TotalSaved())
	assert.Equal(t, 1, store.DaysSaved())

	require.NoError(t, s2.DiscardDraw())
	assert.Equal(t, Idle, s2.Phase())
}

func TestSpinDelayElapsesBeforePending(t *testing.T) {
	store, err := ledger.Open(t.TempDir())
	require.NoError(t, err)

	s := New(store, 20*time.Millisecond)
	s.drawFn = func() int { return 200 }

	start := time.Now()
	_, err = s.RequestDraw()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, Pending, s.Phase())
}
