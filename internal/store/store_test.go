package store

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordguess/internal/game"
	"github.com/robalobadob/wordguess/internal/words"
)

func testDict(t *testing.T) *words.Dictionary {
	t.Helper()
	d, err := words.New(5, []string{"CRANE"}, []string{"TRACE", "SLATE", "BRICK", "PLUMB", "FIGHT", "JOUST"})
	require.NoError(t, err)
	return d
}

func newSession(t *testing.T, dict *words.Dictionary) *game.Session {
	t.Helper()
	s, err := game.New(dict, game.Options{Rand: game.Fixed(0), Mode: "normal"})
	require.NoError(t, err)
	return s
}

func tempSQLite(t *testing.T, dict *words.Dictionary) *SQLite {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "test.db"), dict, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// forEachStore runs fn against every Store implementation.
func forEachStore(t *testing.T, fn func(t *testing.T, st Store, dict *words.Dictionary)) {
	t.Run("memory", func(t *testing.T) {
		fn(t, NewMemoryStore(), testDict(t))
	})
	t.Run("sqlite", func(t *testing.T) {
		dict := testDict(t)
		fn(t, tempSQLite(t, dict), dict)
	})
}

func TestStore_SaveGet(t *testing.T) {
	forEachStore(t, func(t *testing.T, st Store, dict *words.Dictionary) {
		ctx := context.Background()
		s := newSession(t, dict)
		_, err := s.Enter("TRACE")
		require.NoError(t, err)
		s.AppendLetter("S")
		want := s.View()

		require.NoError(t, st.Save(ctx, s))
		got, err := st.Get(ctx, s.ID())
		require.NoError(t, err)
		assert.Equal(t, want, got.View())
		assert.Equal(t, "normal", got.Mode())
	})
}

func TestStore_GetReturnsCopy(t *testing.T) {
	forEachStore(t, func(t *testing.T, st Store, dict *words.Dictionary) {
		ctx := context.Background()
		s := newSession(t, dict)
		id := s.ID()
		require.NoError(t, st.Save(ctx, s))

		c, err := st.Get(ctx, id)
		require.NoError(t, err)
		_, err = c.Enter("SLATE")
		require.NoError(t, err)

		again, err := st.Get(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, again.Guesses())
	})
}

func TestStore_NotFound(t *testing.T) {
	forEachStore(t, func(t *testing.T, st Store, dict *words.Dictionary) {
		ctx := context.Background()
		_, err := st.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)

		err = st.Update(ctx, "missing", func(*game.Session) error { return nil })
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStore_Update(t *testing.T) {
	forEachStore(t, func(t *testing.T, st Store, dict *words.Dictionary) {
		ctx := context.Background()
		s := newSession(t, dict)
		id := s.ID()
		require.NoError(t, st.Save(ctx, s))

		err := st.Update(ctx, id, func(s *game.Session) error {
			_, err := s.Enter("SLATE")
			return err
		})
		require.NoError(t, err)

		err = st.Update(ctx, id, func(s *game.Session) error {
			s.AppendLetter("S")
			s.AppendLetter("L")
			_, err := s.Submit()
			return err
		})
		assert.ErrorIs(t, err, game.ErrTooShort)

		got, err := st.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, []string{"SLATE"}, got.Guesses())
		assert.Equal(t, "SL", got.Pending(), "changes are kept alongside the error")
	})
}

func TestStore_UpdatePassesThroughCallbackError(t *testing.T) {
	forEachStore(t, func(t *testing.T, st Store, dict *words.Dictionary) {
		ctx := context.Background()
		s := newSession(t, dict)
		require.NoError(t, st.Save(ctx, s))

		boom := errors.New("boom")
		err := st.Update(ctx, s.ID(), func(*game.Session) error { return boom })
		assert.ErrorIs(t, err, boom)
	})
}

func TestStore_Delete(t *testing.T) {
	forEachStore(t, func(t *testing.T, st Store, dict *words.Dictionary) {
		ctx := context.Background()
		s := newSession(t, dict)
		id := s.ID()
		require.NoError(t, st.Save(ctx, s))

		require.NoError(t, st.Delete(ctx, id))
		require.NoError(t, st.Delete(ctx, id))
		_, err := st.Get(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStore_ConcurrentUpdatesAreSerialized(t *testing.T) {
	forEachStore(t, func(t *testing.T, st Store, dict *words.Dictionary) {
		ctx := context.Background()
		s := newSession(t, dict)
		id := s.ID()
		require.NoError(t, st.Save(ctx, s))

		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = st.Update(ctx, id, func(s *game.Session) error {
					s.AppendLetter("A")
					return nil
				})
			}()
		}
		wg.Wait()

		got, err := st.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "AAAAA", got.Pending())
	})
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dict := testDict(t)
	path := filepath.Join(t.TempDir(), "app.db")

	st, err := OpenSQLite(path, dict, nil)
	require.NoError(t, err)
	s := newSession(t, dict)
	id := s.ID()
	_, err = s.Enter("CRANE")
	require.NoError(t, err)
	require.NoError(t, st.Save(ctx, s))
	require.NoError(t, st.Close())

	st, err = OpenSQLite(path, dict, nil)
	require.NoError(t, err)
	defer st.Close()

	got, err := st.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, game.OutcomeWon, got.Outcome())
	answer, ok := got.Answer()
	assert.True(t, ok)
	assert.Equal(t, "CRANE", answer)
}

func TestSQLite_RejectsSessionsFromOtherWordLength(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "app.db")
	five := testDict(t)

	st, err := OpenSQLite(path, five, nil)
	require.NoError(t, err)
	s := newSession(t, five)
	require.NoError(t, st.Save(ctx, s))
	require.NoError(t, st.Close())

	six, err := words.New(6, []string{"CRANES"}, nil)
	require.NoError(t, err)
	st, err = OpenSQLite(path, six, nil)
	require.NoError(t, err)
	defer st.Close()

	_, err = st.Get(ctx, s.ID())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "length")
}

func TestSQLite_RandFuncByMode(t *testing.T) {
	ctx := context.Background()
	dict, err := words.New(5, []string{"CRANE", "SPEED", "ABBEY"}, nil)
	require.NoError(t, err)

	var modes []string
	st, err := OpenSQLite(filepath.Join(t.TempDir(), "app.db"), dict, func(mode string) game.Rand {
		modes = append(modes, mode)
		return game.Fixed(1)
	})
	require.NoError(t, err)
	defer st.Close()

	s, err := game.New(dict, game.Options{Mode: "daily", Rand: game.Fixed(0)})
	require.NoError(t, err)
	require.NoError(t, st.Save(ctx, s))

	err = st.Update(ctx, s.ID(), func(s *game.Session) error {
		s.Reset()
		_, err := s.Enter("SPEED")
		return err
	})
	require.NoError(t, err)

	got, err := st.Get(ctx, s.ID())
	require.NoError(t, err)
	assert.Equal(t, game.OutcomeWon, got.Outcome())
	assert.Contains(t, modes, "daily")
}
