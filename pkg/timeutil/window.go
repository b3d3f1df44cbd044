package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultWindow is the rollover look-back used when none is provided.
const DefaultWindow = "1w"

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([dw])`)
	windowUnits   = map[string]time.Duration{
		"d": 24 * time.Hour,
		"w": 7 * 24 * time.Hour,
	}
)

// ParseWindow parses a day/week look-back string such as "1w", "10d", or
// "1w3d". Empty input means the default window of one week.
func ParseWindow(input string) (time.Duration, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		trimmed = DefaultWindow
	}

	total := time.Duration(0)
	remaining := trimmed
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid window segment %q: use day/week tokens like 1w or 10d", strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		total += time.Duration(value) * windowUnits[matches[2]]
		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, fmt.Errorf("window must be greater than zero")
	}
	return total, nil
}
