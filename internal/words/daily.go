package words

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

// DailyIndex returns a deterministic index for a date using
// HMAC-SHA256(salt, YYYY-MM-DD) mod n.
func DailyIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// First 8 bytes as the numerator keeps the modulus bias negligible.
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Daily returns the word of the day. Every player with the same salt and
// list gets the same word for a given UTC date.
func (l *List) Daily(date time.Time, salt string) string {
	return l.words[DailyIndex(date, salt, len(l.words))]
}
