package game

// KeyStates is the best-known status per keyboard letter ("A".."Z").
// Letters that were never guessed are absent from the map and read as unused.
type KeyStates map[string]Status

// Get returns the recorded status for letter, or StatusUnused.
func (k KeyStates) Get(letter string) Status {
	if s, ok := k[letter]; ok {
		return s
	}
	return StatusUnused
}

// Clone returns an independent copy of k.
func (k KeyStates) Clone() KeyStates {
	out := make(KeyStates, len(k))
	for l, s := range k {
		out[l] = s
	}
	return out
}

// Fold merges one scored guess into current and returns the new map;
// current is not modified. An entry only ever moves up the order
// correct > present > absent > unused, so a correct key is never downgraded
// and absent is written only over an unset or unused key.
func Fold(current KeyStates, guess string, ev Evaluation) KeyStates {
	next := current.Clone()
	for i := 0; i < len(guess) && i < len(ev); i++ {
		letter := guess[i : i+1]
		if idx(guess[i]) < 0 {
			continue
		}
		if ev[i].rank() > next.Get(letter).rank() {
			next[letter] = ev[i]
		}
	}
	return next
}

// Aggregate folds a full guess history, oldest first.
func Aggregate(guesses []string, evs []Evaluation) KeyStates {
	keys := KeyStates{}
	for i := 0; i < len(guesses) && i < len(evs); i++ {
		keys = Fold(keys, guesses[i], evs[i])
	}
	return keys
}
