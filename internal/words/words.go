// internal/words/words.go
//
// Provides word list management for the game engine.
//
// Responsibilities:
//   - Load candidate and accepted-guess lists from files or fall back to the
//     embedded defaults in package assets.
//   - Normalize to uppercase and keep only alphabetic words of the configured length.
//   - Serve the lists to game sessions through game.WordSource.
//
// Word Lists:
//   - "answers": candidate targets.
//   - "allowed": accepted guesses (always includes answers).
//
// Loading behavior (Load):
//   1. If AnswersFile and AllowedFile are both set,
//      load candidates from the first and accepted guesses from the second.
//   2. If only AllowedFile is set,
//      load that file and use it for both lists.
//   3. If only AnswersFile is set,
//      load candidates from it and accept the embedded allowed list as well.
//   4. If neither is set,
//      fall back to the embedded answers.txt and allowed.txt.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/robalobadob/wordguess/assets"
)

// DefaultLength is the word length used when Source.Length is not positive.
const DefaultLength = 5

// ErrNoCandidates is returned when no candidate word survives normalization.
var ErrNoCandidates = errors.New("words: answers list is empty")

// Source says where the lists come from.
type Source struct {
	AnswersFile string
	AllowedFile string
	Length      int
}

// Dictionary is an immutable pair of word lists. It is safe for concurrent use.
type Dictionary struct {
	length     int
	candidates []string            // candidate targets, input order
	accepted   map[string]struct{} // answers ∪ allowed
}

// Load reads the lists described by src.
func Load(src Source) (*Dictionary, error) {
	var ansList, allowList []string
	var err error

	switch {
	case src.AnswersFile != "" && src.AllowedFile != "":
		if ansList, err = readWordFile(src.AnswersFile); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(src.AllowedFile); err != nil {
			return nil, err
		}

	case src.AllowedFile != "":
		if allowList, err = readWordFile(src.AllowedFile); err != nil {
			return nil, err
		}
		ansList = allowList

	case src.AnswersFile != "":
		if ansList, err = readWordFile(src.AnswersFile); err != nil {
			return nil, err
		}
		if allowList, err = assets.AllowedList(); err != nil {
			return nil, fmt.Errorf("words: embedded allowed list: %w", err)
		}

	default:
		if ansList, err = assets.AnswersList(); err != nil {
			return nil, fmt.Errorf("words: embedded answers list: %w", err)
		}
		if allowList, err = assets.AllowedList(); err != nil {
			return nil, fmt.Errorf("words: embedded allowed list: %w", err)
		}
	}
	return New(src.Length, ansList, allowList)
}

// New builds a Dictionary from raw lists. Words are trimmed and upper-cased;
// anything that is not exactly length letters A–Z is dropped, as are duplicates.
// Returns ErrNoCandidates when the candidate list ends up empty.
func New(length int, answers, allowed []string) (*Dictionary, error) {
	if length <= 0 {
		length = DefaultLength
	}
	d := &Dictionary{length: length, accepted: make(map[string]struct{})}

	for _, w := range normalize(answers, length) {
		if _, dup := d.accepted[w]; dup {
			continue
		}
		d.accepted[w] = struct{}{}
		d.candidates = append(d.candidates, w)
	}
	if len(d.candidates) == 0 {
		return nil, ErrNoCandidates
	}
	for _, w := range normalize(allowed, length) {
		d.accepted[w] = struct{}{}
	}
	return d, nil
}

// readWordFile loads one word per line from a file. Blank lines and "#"
// comments are skipped; filtering happens in New.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: %w", err)
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return out, nil
}

// normalize upper-cases and keeps only valid words of the given length.
func normalize(list []string, length int) []string {
	out := make([]string, 0, len(list))
	for _, line := range list {
		w := strings.ToUpper(strings.TrimSpace(line))
		if len(w) == length && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// Candidates returns a copy of the candidate list.
func (d *Dictionary) Candidates() []string { return append([]string(nil), d.candidates...) }

// Accepts reports whether w is a valid guess (answers ∪ allowed).
// Matching is case-insensitive.
func (d *Dictionary) Accepts(w string) bool {
	_, ok := d.accepted[strings.ToUpper(w)]
	return ok
}

// IsCandidate reports whether w could be drawn as a target.
func (d *Dictionary) IsCandidate(w string) bool {
	w = strings.ToUpper(w)
	for _, c := range d.candidates {
		if c == w {
			return true
		}
	}
	return false
}

// Length returns the word length every list entry shares.
func (d *Dictionary) Length() int { return d.length }

// Stats returns counts of loaded words: (answers, accepted).
func (d *Dictionary) Stats() (answersCount int, acceptedCount int) {
	return len(d.candidates), len(d.accepted)
}
