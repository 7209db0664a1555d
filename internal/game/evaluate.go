// internal/game/evaluate.go
//
// Scoring of a single guess against the target.

package game

import "fmt"

// Evaluate implements the two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as correct.
//   - Count remaining (non-correct) target letters by letter index.
//
// Pass 2:
//   - For each non-correct guess letter: if there is remaining count for that
//     letter, mark present and decrement the count; otherwise absent.
//
// A letter appearing k times in the target is therefore credited at most k
// times in the guess. Inputs are uppercase A–Z of equal length; a length
// mismatch is a caller bug and panics.
func Evaluate(guess, target string) Evaluation {
	n := len(target)
	if len(guess) != n {
		panic(fmt.Sprintf("game: Evaluate length mismatch: guess %d, target %d", len(guess), n))
	}
	res := make(Evaluation, n)

	// Letter frequency for the non-correct target positions (A–Z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			res[i] = StatusCorrect
		} else if j := idx(target[i]); j >= 0 {
			counts[j]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == StatusCorrect {
			continue
		}
		if j := idx(guess[i]); j >= 0 && counts[j] > 0 {
			res[i] = StatusPresent
			counts[j]--
		} else {
			res[i] = StatusAbsent
		}
	}
	return res
}

// idx maps an uppercase ASCII letter to 0..25, or -1 for anything else.
func idx(b byte) int {
	if b < 'A' || b > 'Z' {
		return -1
	}
	return int(b - 'A')
}
