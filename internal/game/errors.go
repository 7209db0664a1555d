package game

import "errors"

// Submission and construction errors. All of them are recoverable and none
// of them leave a session modified.
var (
	ErrTooShort           = errors.New("too short")
	ErrNotInWordList      = errors.New("not in word list")
	ErrGameOver           = errors.New("game finished")
	ErrEmptyCandidateList = errors.New("candidate word list is empty")
)

// Rejection maps a Submit error to a stable reason code for API clients.
// It returns "" for a nil error and "invalid" for anything unrecognised.
func Rejection(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTooShort):
		return "too_short"
	case errors.Is(err, ErrNotInWordList):
		return "not_in_word_list"
	case errors.Is(err, ErrGameOver):
		return "game_finished"
	default:
		return "invalid"
	}
}
