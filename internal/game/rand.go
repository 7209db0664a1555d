package game

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// CryptoRand draws indexes from crypto/rand. It is the default target picker.
// Reader overrides the entropy source; nil means crypto/rand.Reader.
type CryptoRand struct {
	Reader io.Reader
}

// Intn returns a uniform index in [0, n). n must be positive.
// It panics if the entropy source fails.
func (c CryptoRand) Intn(n int) int {
	r := c.Reader
	if r == nil {
		r = rand.Reader
	}
	nBig, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("game: read random index: %v", err))
	}
	return int(nBig.Int64())
}

// Fixed always picks the same index, modulo n. Useful for pinning a target.
type Fixed int

// Intn returns int(f) mod n.
func (f Fixed) Intn(n int) int {
	i := int(f) % n
	if i < 0 {
		i += n
	}
	return i
}
