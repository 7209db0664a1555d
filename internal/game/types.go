// internal/game/types.go
//
// Core type definitions for the word game engine.
// Defines:
//   - Status: per-letter result of a guess, plus keyboard/tile-only states.
//   - Evaluation: the scored row for one guess.
//   - Outcome: in_progress / won / lost.
//   - WordSource / Rand: the collaborators a Session depends on.

package game

// Status represents the evaluation result for a single letter.
// Possible values:
//   - "correct": letter is in the target at this exact position.
//   - "present": letter is in the target at another position.
//   - "absent":  letter is not in the target, or all its occurrences are used up.
//   - "unused":  keyboard-only; the letter has not been guessed yet.
//   - "empty"/"filled": tile-only presentation states, never produced here.
type Status string

const (
	StatusCorrect Status = "correct"
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusUnused  Status = "unused"
	StatusEmpty   Status = "empty"
	StatusFilled  Status = "filled"
)

// rank orders statuses for key-state aggregation: correct > present > absent > unused.
func (s Status) rank() int {
	switch s {
	case StatusCorrect:
		return 3
	case StatusPresent:
		return 2
	case StatusAbsent:
		return 1
	default:
		return 0
	}
}

// Evaluation is the per-position scoring of one guess, index-aligned with it.
type Evaluation []Status

// Solved reports whether every position is correct.
func (e Evaluation) Solved() bool {
	if len(e) == 0 {
		return false
	}
	for _, s := range e {
		if s != StatusCorrect {
			return false
		}
	}
	return true
}

// Outcome is the coarse state of a session.
type Outcome string

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeWon        Outcome = "won"
	OutcomeLost       Outcome = "lost"
)

// Terminal reports whether no further guesses are accepted.
func (o Outcome) Terminal() bool { return o == OutcomeWon || o == OutcomeLost }

// WordSource supplies the two word lists a session plays against.
// Words are uppercase and all share the same length.
type WordSource interface {
	// Candidates returns the list targets are drawn from.
	Candidates() []string
	// Accepts reports whether w may be submitted as a guess.
	Accepts(w string) bool
}

// Rand picks target indexes. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// View is the read-only projection of a session handed to renderers.
// Answer is only populated once the outcome is terminal.
type View struct {
	ID          string       `json:"id"`
	Mode        string       `json:"mode,omitempty"`
	WordLength  int          `json:"wordLength"`
	MaxAttempts int          `json:"maxAttempts"`
	Pending     string       `json:"pending"`
	Guesses     []string     `json:"guesses"`
	Evaluations []Evaluation `json:"evaluations"`
	Keys        KeyStates    `json:"keys"`
	Outcome     Outcome      `json:"state"`
	Answer      string       `json:"answer,omitempty"`
}
