package game

import (
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

func TestCryptoRand_InRange(t *testing.T) {
	var r CryptoRand
	for i := 0; i < 500; i++ {
		n := r.Intn(7)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 7)
	}
}

func TestCryptoRand_PanicsWhenEntropyFails(t *testing.T) {
	r := CryptoRand{Reader: iotest.ErrReader(errors.New("no entropy"))}
	assert.Panics(t, func() { r.Intn(3) })
}

func TestFixed(t *testing.T) {
	assert.Equal(t, 2, Fixed(2).Intn(3))
	assert.Equal(t, 1, Fixed(4).Intn(3))
	assert.Equal(t, 2, Fixed(-1).Intn(3))
}
