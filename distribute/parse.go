package distribute

import (
	"math"
	"strconv"
	"strings"
)

// ParseTargetCount converts a raw theme value into a target count.
//
// Accepted: decimal integers with optional sign and surrounding space ("4",
// " +4 "), integral float spellings ("4.0", "1e1") and 0x/0o/0b prefixed
// integers. Rejected: digit separators ("1_0"), everything else, and any
// value outside [1, MaxInt32].
// The boolean result is false on rejection; there is no error to report.
func ParseTargetCount(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.Contains(s, "_") {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, inTargetRange(n)
	}
	if hasBasePrefix(s) {
		n, err := strconv.ParseInt(s, 0, strconv.IntSize)
		if err != nil || !inTargetRange(int(n)) {
			return 0, false
		}

		return int(n), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < 1 || f > float64(math.MaxInt32) {
		return 0, false
	}

	return int(f), true
}

func inTargetRange(n int) bool {
	return n >= 1 && n <= math.MaxInt32
}

// hasBasePrefix reports a 0x, 0o or 0b prefix (any case).
func hasBasePrefix(s string) bool {
	if len(s) < 3 || s[0] != '0' {
		return false
	}
	switch s[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}

	return false
}
