package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualify(t *testing.T) {
	roster := []Technician{
		{Name: "Ana", ZipCode: "85001", Cities: []string{"Phoenix", "Tempe"}},
		{Name: "Ben", ZipCode: "85282", Cities: []string{" tempe ", "85283"}},
		{Name: "Cleo", ZipCode: "85201", Cities: []string{"Mesa"}},
		{Name: "Dmitri", ZipCode: "85301", Cities: []string{"85009"}},
	}

	testCases := []struct {
		name     string
		locality string
		zipCode  string
		expected []string
	}{
		{
			name:     "locality match is case-insensitive",
			locality: "PHOENIX",
			zipCode:  "85004",
			expected: []string{"Ana"},
		},
		{
			name:     "serviced entries are trimmed before comparison",
			locality: "Tempe",
			zipCode:  "85281",
			expected: []string{"Ana", "Ben"},
		},
		{
			name:     "zip code matches when locality does not",
			locality: "Glendale",
			zipCode:  "85009",
			expected: []string{"Dmitri"},
		},
		{
			name:     "no substring matching",
			locality: "Phoeni",
			zipCode:  "850",
			expected: []string{},
		},
		{
			name:     "no coverage yields empty subset",
			locality: "Tucson",
			zipCode:  "85701",
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Qualify(roster, tc.locality, tc.zipCode)
			names := make([]string, 0, len(got))
			for _, tech := range got {
				names = append(names, tech.Name)
			}
			assert.Equal(t, tc.expected, names)
		})
	}
}

func TestQualify_EmptyRoster(t *testing.T) {
	assert.Empty(t, Qualify(nil, "Phoenix", "85001"))
}
