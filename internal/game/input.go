// internal/game/input.go
//
// Key routing: abstract tokens in, session operations out.
//   - "A".."Z"    → AppendLetter
//   - "BACKSPACE" → RemoveLetter
//   - "ENTER"     → Submit
// Anything else is ignored.

package game

import "strings"

// Key tokens understood by Press.
const (
	KeyEnter     = "ENTER"
	KeyBackspace = "BACKSPACE"
)

// Press dispatches one key token. Only ENTER can return an evaluation or an
// error; every other token returns (nil, nil).
func (s *Session) Press(token string) (Evaluation, error) {
	switch token {
	case KeyEnter:
		return s.Submit()
	case KeyBackspace:
		s.RemoveLetter()
	default:
		s.AppendLetter(token)
	}
	return nil, nil
}

// Enter submits word as a whole guess, as if the buffer had been cleared and
// the word typed key by key. A rejected word leaves the session untouched,
// pending buffer included; an accepted one leaves the buffer empty.
func (s *Session) Enter(word string) (Evaluation, error) {
	if err := s.validate(word); err != nil {
		return nil, err
	}
	ev := s.record(word)
	s.pending = s.pending[:0]
	return ev, nil
}

// NormalizeKey translates a raw key name, as reported by a browser or
// terminal, into a token for Press. Letters are upper-cased; "Enter" and
// "Backspace" map to their tokens. ok is false for keys that should be dropped.
func NormalizeKey(raw string) (token string, ok bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case KeyEnter, "RETURN":
		return KeyEnter, true
	case KeyBackspace, "DELETE", "DEL":
		return KeyBackspace, true
	}
	if len(raw) != 1 {
		return "", false
	}
	c := raw[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'Z' {
		return "", false
	}
	return string(c), true
}
