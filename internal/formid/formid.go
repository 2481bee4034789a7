// Package formid generates and parses the identifiers of stored forms.
// IDs are "form_<unix millis>_<9 random base36 chars>": sortable by creation
// time and practically unique for the lifetime of an installation.
package formid

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	prefix         = "form_"
	randomLen      = 9
	base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

func Generate() string {
	return fmt.Sprintf("%s%d_%s", prefix, time.Now().UnixMilli(), randomBase36(randomLen))
}

// IsValid reports whether id has the stored-form shape. It only checks the
// prefix; the timestamp segment is validated by TimestampFromID.
func IsValid(id string) bool {
	return len(id) > 0 && strings.HasPrefix(id, prefix)
}

// TimestampFromID extracts the millisecond timestamp segment. It returns
// false for malformed input and never panics.
func TimestampFromID(id string) (int64, bool) {
	if !IsValid(id) {
		return 0, false
	}
	parts := strings.Split(id, "_")
	if len(parts) < 2 {
		return 0, false
	}
	ts, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return ts, true
}

func randomBase36(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36Alphabet[rand.IntN(len(base36Alphabet))]
	}
	return string(b)
}
