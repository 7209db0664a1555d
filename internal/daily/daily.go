// internal/daily/daily.go
//
// Daily puzzle mode: every player gets the same target on a given UTC date.
// The index into the candidate list is HMAC-SHA256(salt, YYYY-MM-DD) mod n,
// so targets cannot be predicted without the salt.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	dk := DateKey(date)
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dk))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Rand picks the daily index. It satisfies game.Rand, so a session created
// with it (and every Reset on that session) lands on the day's word.
type Rand struct {
	Date time.Time
	Salt string
}

// Intn returns WordIndex for the configured date and salt.
func (r Rand) Intn(n int) int { return WordIndex(r.Date, r.Salt, n) }

// Today returns a Rand for the current UTC date.
func Today(salt string) Rand { return Rand{Date: time.Now().UTC(), Salt: salt} }
