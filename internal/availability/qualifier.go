package availability

import "strings"

// Qualify filters the roster down to technicians whose serviced-area list
// contains the customer's locality name or raw zip code. Matching is
// case-insensitive and whitespace-insensitive; the comparison is exact
// otherwise (no substring matching).
func Qualify(roster []Technician, locality, zipCode string) []Technician {
	wantLocality := normalizeArea(locality)
	wantZip := normalizeArea(zipCode)

	qualified := make([]Technician, 0, len(roster))
	for _, tech := range roster {
		for _, city := range tech.Cities {
			area := normalizeArea(city)
			if area == "" {
				continue
			}
			if area == wantLocality || area == wantZip {
				qualified = append(qualified, tech)
				break
			}
		}
	}
	return qualified
}

func normalizeArea(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
