// internal/game/engine.go
//
// Core game engine for a single word-guessing session.
// Responsibilities:
//   - Create sessions with a target drawn from the candidate list.
//   - Buffer typed letters and validate submitted guesses (length, word list).
//   - Score guesses and fold them into the keyboard state.
//   - Track state transitions: in_progress → won/lost.
//
// Notes:
//   - A Session is owned by one caller at a time and is not safe for
//     concurrent use; host layers serialize access (see internal/store).
//   - Validation happens before any mutation, so a rejected guess leaves the
//     session exactly as it was.
package game

import (
	"fmt"

	"github.com/google/uuid"
)

// DefaultMaxAttempts is used when Options.MaxAttempts is not positive.
const DefaultMaxAttempts = 6

// Options configures a new Session.
type Options struct {
	ID          string // session identifier; a UUID when empty
	Mode        string // opaque label carried through View and Snapshot, e.g. "daily"
	MaxAttempts int    // guesses allowed per round; DefaultMaxAttempts when <= 0
	Rand        Rand   // target picker; CryptoRand when nil
}

// Session holds the state of one game.
type Session struct {
	id          string
	mode        string
	words       WordSource
	candidates  []string
	rnd         Rand
	maxAttempts int

	target      string
	guesses     []string
	evaluations []Evaluation
	pending     []byte
	keys        KeyStates
	outcome     Outcome
}

// New constructs a session and starts its first round.
// Returns ErrEmptyCandidateList if the word source has no candidates.
func New(words WordSource, opts Options) (*Session, error) {
	candidates := append([]string(nil), words.Candidates()...)
	if len(candidates) == 0 {
		return nil, ErrEmptyCandidateList
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.Rand == nil {
		opts.Rand = CryptoRand{}
	}
	if opts.ID == "" {
		opts.ID = uuid.NewString()
	}
	s := &Session{
		id:          opts.ID,
		mode:        opts.Mode,
		words:       words,
		candidates:  candidates,
		rnd:         opts.Rand,
		maxAttempts: opts.MaxAttempts,
	}
	s.Reset()
	return s, nil
}

// Reset discards the current round and starts a new one with a freshly drawn
// target. It is legal in any state and keeps the session ID.
func (s *Session) Reset() {
	s.target = s.candidates[s.rnd.Intn(len(s.candidates))]
	s.guesses = []string{}
	s.evaluations = []Evaluation{}
	s.pending = s.pending[:0]
	s.keys = KeyStates{}
	s.outcome = OutcomeInProgress
}

// AppendLetter adds token to the pending guess. It is a no-op when the round
// is over, the token is not a single letter A–Z, or the buffer is full.
func (s *Session) AppendLetter(token string) {
	if s.outcome.Terminal() || len(token) != 1 || idx(token[0]) < 0 {
		return
	}
	if len(s.pending) >= len(s.target) {
		return
	}
	s.pending = append(s.pending, token[0])
}

// RemoveLetter drops the last pending letter, if any, while the round is open.
func (s *Session) RemoveLetter() {
	if s.outcome.Terminal() || len(s.pending) == 0 {
		return
	}
	s.pending = s.pending[:len(s.pending)-1]
}

// Submit validates and scores the pending guess, mutating the session.
//
// Validation rules, in order:
//   - Round must not be finished (ErrGameOver).
//   - Pending guess must have the target's length (ErrTooShort).
//   - Pending guess must be an accepted word (ErrNotInWordList).
//
// State transitions:
//   - Guess equals the target → won.
//   - Else if the number of guesses reaches MaxAttempts → lost.
func (s *Session) Submit() (Evaluation, error) {
	guess := string(s.pending)
	if err := s.validate(guess); err != nil {
		return nil, err
	}

	ev := s.record(guess)
	s.pending = s.pending[:0]
	return ev, nil
}

// validate checks guess against the submission rules without touching the
// session. A guess longer than the target or holding anything but A–Z can
// only arrive through Enter and is reported as ErrNotInWordList.
func (s *Session) validate(guess string) error {
	switch {
	case s.outcome.Terminal():
		return ErrGameOver
	case len(guess) < len(s.target):
		return ErrTooShort
	case len(guess) > len(s.target):
		return ErrNotInWordList
	}
	for i := 0; i < len(guess); i++ {
		if idx(guess[i]) < 0 {
			return ErrNotInWordList
		}
	}
	if !s.words.Accepts(guess) {
		return ErrNotInWordList
	}
	return nil
}

// record scores an already validated guess and advances the outcome.
func (s *Session) record(guess string) Evaluation {
	ev := Evaluate(guess, s.target)
	s.guesses = append(s.guesses, guess)
	s.evaluations = append(s.evaluations, ev)
	s.keys = Fold(s.keys, guess, ev)

	if guess == s.target {
		s.outcome = OutcomeWon
	} else if len(s.guesses) >= s.maxAttempts {
		s.outcome = OutcomeLost
	}
	return ev
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Mode returns the label the session was created with.
func (s *Session) Mode() string { return s.mode }

// Outcome returns the current state of the round.
func (s *Session) Outcome() Outcome { return s.outcome }

// WordLength returns the target's length.
func (s *Session) WordLength() int { return len(s.target) }

// MaxAttempts returns the configured guess limit.
func (s *Session) MaxAttempts() int { return s.maxAttempts }

// Pending returns the letters typed since the last submit.
func (s *Session) Pending() string { return string(s.pending) }

// Guesses returns a copy of the submitted guesses, oldest first.
func (s *Session) Guesses() []string { return append([]string{}, s.guesses...) }

// Evaluations returns a copy of the evaluations, index-aligned with Guesses.
func (s *Session) Evaluations() []Evaluation {
	out := make([]Evaluation, len(s.evaluations))
	for i, ev := range s.evaluations {
		out[i] = append(Evaluation(nil), ev...)
	}
	return out
}

// Keys returns a copy of the keyboard state.
func (s *Session) Keys() KeyStates { return s.keys.Clone() }

// Answer reveals the target once the round is over; it returns "" and false before that.
func (s *Session) Answer() (string, bool) {
	if !s.outcome.Terminal() {
		return "", false
	}
	return s.target, true
}

// View projects the session for rendering.
func (s *Session) View() View {
	v := View{
		ID:          s.id,
		Mode:        s.mode,
		WordLength:  len(s.target),
		MaxAttempts: s.maxAttempts,
		Pending:     s.Pending(),
		Guesses:     s.Guesses(),
		Evaluations: s.Evaluations(),
		Keys:        s.Keys(),
		Outcome:     s.outcome,
	}
	v.Answer, _ = s.Answer()
	return v
}

// Clone returns a deep copy sharing only the word source and random source.
func (s *Session) Clone() *Session {
	c := *s
	c.guesses = s.Guesses()
	c.evaluations = s.Evaluations()
	c.pending = append([]byte(nil), s.pending...)
	c.keys = s.Keys()
	return &c
}

// Snapshot is the persisted form of a session's live round.
// Evaluations and key states are derived again on Restore.
type Snapshot struct {
	ID          string   `json:"id"`
	Mode        string   `json:"mode,omitempty"`
	Target      string   `json:"target"`
	MaxAttempts int      `json:"maxAttempts"`
	Guesses     []string `json:"guesses"`
	Pending     string   `json:"pending"`
}

// Snapshot captures the session's live round.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:          s.id,
		Mode:        s.mode,
		Target:      s.target,
		MaxAttempts: s.maxAttempts,
		Guesses:     s.Guesses(),
		Pending:     s.Pending(),
	}
}

// Restore rebuilds a session from a snapshot, replaying its guesses.
// The snapshot's target must still be playable with words: same length as
// the candidates and accepted as a guess.
// rnd is only used by later calls to Reset; nil means CryptoRand.
func Restore(words WordSource, snap Snapshot, rnd Rand) (*Session, error) {
	s, err := New(words, Options{ID: snap.ID, Mode: snap.Mode, MaxAttempts: snap.MaxAttempts, Rand: rnd})
	if err != nil {
		return nil, err
	}
	if snap.Target == "" {
		return nil, fmt.Errorf("game: restore %s: empty target", snap.ID)
	}
	if len(snap.Target) != len(s.target) {
		return nil, fmt.Errorf("game: restore %s: target has length %d, word lists use %d", snap.ID, len(snap.Target), len(s.target))
	}
	if !words.Accepts(snap.Target) {
		return nil, fmt.Errorf("game: restore %s: target %q is not in the word lists", snap.ID, snap.Target)
	}
	if len(snap.Guesses) > s.maxAttempts {
		return nil, fmt.Errorf("game: restore %s: %d guesses exceed limit %d", snap.ID, len(snap.Guesses), s.maxAttempts)
	}
	s.target = snap.Target
	for i, g := range snap.Guesses {
		if len(g) != len(s.target) {
			return nil, fmt.Errorf("game: restore %s: guess %d has length %d, want %d", snap.ID, i, len(g), len(s.target))
		}
		if s.outcome.Terminal() {
			return nil, fmt.Errorf("game: restore %s: guess %d after round ended", snap.ID, i)
		}
		s.record(g)
	}
	if len(snap.Pending) > len(s.target) {
		return nil, fmt.Errorf("game: restore %s: pending guess too long", snap.ID)
	}
	for i := 0; i < len(snap.Pending); i++ {
		s.AppendLetter(snap.Pending[i : i+1])
	}
	return s, nil
}
