// Package timeutil parses the human friendly time windows accepted by
// "eod list --since".
package timeutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const day = 24 * time.Hour

var (
	segment = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	units   = map[string]time.Duration{
		"m": time.Minute, "min": time.Minute, "mins": time.Minute, "minute": time.Minute, "minutes": time.Minute,
		"h": time.Hour, "hr": time.Hour, "hrs": time.Hour, "hour": time.Hour, "hours": time.Hour,
		"d": day, "day": day, "days": day,
		"w": 7 * day, "wk": 7 * day, "wks": 7 * day, "week": 7 * day, "weeks": 7 * day,
	}
	labels = []struct {
		label string
		value time.Duration
	}{
		{"w", 7 * day},
		{"d", day},
		{"h", time.Hour},
		{"m", time.Minute},
	}
)

// ParseWindow reads strings such as "3d", "1w" or "1w2d6h" and returns the
// duration with its compact label.
func ParseWindow(input string) (time.Duration, string, error) {
	rest := strings.ToLower(strings.TrimSpace(input))
	if rest == "" {
		return 0, "", fmt.Errorf("empty window")
	}

	var total time.Duration
	for rest != "" {
		m := segment.FindStringSubmatch(rest)
		if len(m) != 3 {
			return 0, "", fmt.Errorf("invalid window segment %q", strings.TrimSpace(rest))
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("invalid window value %q: %w", m[1], err)
		}
		unit, ok := units[m[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported window unit %q", m[2])
		}
		if n > math.MaxInt64/int64(unit) {
			return 0, "", fmt.Errorf("window segment %q is too large", m[0])
		}
		step := time.Duration(n) * unit
		if total > math.MaxInt64-step {
			return 0, "", fmt.Errorf("window %q is too large", input)
		}
		total += step
		rest = strings.TrimSpace(rest[len(m[0]):])
	}
	if total <= 0 {
		return 0, "", fmt.Errorf("window must be greater than zero")
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders d with week, day, hour and minute tokens.
func FormatWindow(d time.Duration) string {
	var b strings.Builder
	for _, u := range labels {
		if d < u.value {
			continue
		}
		n := d / u.value
		d -= n * u.value
		fmt.Fprintf(&b, "%d%s", n, u.label)
	}
	if b.Len() == 0 {
		return "0m"
	}
	return b.String()
}

// Cutoff is the start of a window of length d ending at now.
func Cutoff(now time.Time, d time.Duration) time.Time {
	return now.Add(-d)
}
