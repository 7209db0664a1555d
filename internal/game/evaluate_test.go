package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	C = StatusCorrect
	P = StatusPresent
	A = StatusAbsent
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		target string
		guess  string
		want   Evaluation
	}{
		{"no duplicates", "CRANE", "TRACE", Evaluation{A, C, C, P, C}},
		{"exact match", "CRANE", "CRANE", Evaluation{C, C, C, C, C}},
		{"nothing shared", "CRANE", "FOLKS", Evaluation{A, A, A, A, A}},
		{"anagram", "CRANE", "NACRE", Evaluation{P, P, P, P, C}},
		{"duplicate in guess only", "CRANE", "EERIE", Evaluation{A, A, P, A, C}},
		{"duplicate in target, one credited as correct", "ABBEY", "KEBAB", Evaluation{A, P, C, P, P}},
		{"duplicate ceiling", "SPEED", "ERASE", Evaluation{P, A, A, P, P}},
		{"correct consumes before present", "ROBIN", "OOOOO", Evaluation{A, C, A, A, A}},
		{"presents credited left to right", "SPEED", "GEESE", Evaluation{A, P, C, P, A}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.guess, tt.target))
		})
	}
}

func TestEvaluate_LetterCreditNeverExceedsTargetCount(t *testing.T) {
	pairs := [][2]string{
		{"SPEED", "ERASE"},
		{"SPEED", "EEEEE"},
		{"ABBEY", "BBBBB"},
		{"LLAMA", "ALALA"},
		{"MAMMA", "AMMAM"},
	}
	for _, p := range pairs {
		target, guess := p[0], p[1]
		ev := Evaluate(guess, target)

		credited := map[byte]int{}
		for i, s := range ev {
			if s == StatusCorrect || s == StatusPresent {
				credited[guess[i]]++
			}
		}
		for letter, n := range credited {
			inTarget := 0
			for i := 0; i < len(target); i++ {
				if target[i] == letter {
					inTarget++
				}
			}
			assert.LessOrEqual(t, n, inTarget, "%s vs %s: letter %c", guess, target, letter)
		}
	}
}

func TestEvaluate_SpeedEraseCreditsTwoEs(t *testing.T) {
	ev := Evaluate("ERASE", "SPEED")
	es := 0
	for i, s := range ev {
		if "ERASE"[i] == 'E' && s != StatusAbsent {
			es++
		}
	}
	assert.Equal(t, 2, es)
}

func TestEvaluate_LengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { Evaluate("CRAN", "CRANE") })
}

func TestEvaluation_Solved(t *testing.T) {
	assert.True(t, Evaluation{C, C, C}.Solved())
	assert.False(t, Evaluation{C, P, C}.Solved())
	assert.False(t, Evaluation{}.Solved())
}
