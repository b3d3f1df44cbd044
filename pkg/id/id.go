// Package id generates record identifiers for the planner stores.
package id

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The charset skips easily confused characters (0/O, 1/I/L).
const charset = "23456789abcdefghjkmnpqrstuvwxyz"
const suffixLen = 5

// New returns an identifier of the form `<unix-millis>-<suffix>`. The
// millisecond prefix keeps ids roughly sortable by creation time; the random
// suffix keeps rapid successive calls from colliding.
func New() string {
	return NewAt(time.Now())
}

// NewAt is New with an explicit timestamp.
func NewAt(t time.Time) string {
	b := make([]byte, suffixLen)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the host is broken; fall back to the
		// nanosecond clock rather than returning an empty suffix.
		ns := strconv.FormatInt(t.UnixNano(), 36)
		return fmt.Sprintf("%d-%s", t.UnixMilli(), ns[len(ns)-suffixLen:])
	}
	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}
	return fmt.Sprintf("%d-%s", t.UnixMilli(), string(b))
}

// Valid reports whether s looks like an identifier produced by New.
func Valid(s string) bool {
	idx := strings.LastIndex(s, "-")
	if idx <= 0 || len(s)-idx-1 != suffixLen {
		return false
	}
	if _, err := strconv.ParseInt(s[:idx], 10, 64); err != nil {
		return false
	}
	for _, c := range s[idx+1:] {
		if !strings.ContainsRune(charset+"0123456789", c) {
			return false
		}
	}
	return true
}
