package models

import (
	"strconv"
	"strings"
	"time"
)

// Watermark is the last server-side version observed for a domain. Main
// domains store the account lastSyncAt timestamp, up-next stores the
// integer serverModified.
type Watermark struct {
	Domain Domain
	Value  string
}

// IsZero reports whether no watermark was stored yet.
func (w Watermark) IsZero() bool {
	return w.Value == ""
}

// Equal reports whether the server value equals the stored one, in which
// case a snapshot pull is a no-op.
func (w Watermark) Equal(value string) bool {
	return CompareWatermarks(w.Value, value) == 0
}

// CompareWatermarks orders two watermark values. Values that both parse as
// integers compare numerically, values that both parse as RFC3339
// timestamps compare chronologically, everything else lexically. An empty
// value is lower than any other.
func CompareWatermarks(a, b string) int {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	switch {
	case a == b:
		return 0
	case a == "":
		return -1
	case b == "":
		return 1
	}

	ai, aErr := strconv.ParseInt(a, 10, 64)
	bi, bErr := strconv.ParseInt(b, 10, 64)
	if aErr == nil && bErr == nil {
		return cmpInt64(ai, bi)
	}

	at, aErr := time.Parse(time.RFC3339Nano, a)
	bt, bErr := time.Parse(time.RFC3339Nano, b)
	if aErr == nil && bErr == nil {
		return at.Compare(bt)
	}

	return strings.Compare(a, b)
}

// MaxWatermark returns the greater of the stored and the candidate value so
// a watermark never moves backwards.
func MaxWatermark(stored, candidate string) string {
	if CompareWatermarks(candidate, stored) > 0 {
		return candidate
	}
	return stored
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
