package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var clockRe = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})\s*$`)

// CityList splits a raw serviced-area cell ("Phoenix, Tempe; 85009") into
// trimmed entries. Empty entries are dropped.
func CityList(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';'
	})

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}

// MinuteOfDay parses an "HH:MM" clock value into minutes since midnight.
func MinuteOfDay(raw string) (int, error) {
	m := clockRe.FindStringSubmatch(raw)
	if m == nil {
		return 0, fmt.Errorf("unable to parse clock value: %q", raw)
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("unable to parse hour in %q: %w", raw, err)
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, fmt.Errorf("unable to parse minute in %q: %w", raw, err)
	}

	if hour > 23 || minute > 59 {
		return 0, fmt.Errorf("clock value out of range: %q", raw)
	}

	return hour*60 + minute, nil
}
