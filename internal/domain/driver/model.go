package driver

import (
	"strings"

	"github.com/riskibarqy/driveahead/internal/domain/datasource"
)

// Driver is an entry of a season's driver roster.
type Driver struct {
	Name        string
	Team        string
	Number      int
	Nationality string
	Source      datasource.Source
}

// FullName joins given and family name, dropping empty parts.
func FullName(given, family string) string {
	return strings.TrimSpace(strings.TrimSpace(given) + " " + strings.TrimSpace(family))
}

// FilterByTeam keeps the drivers whose team matches, ignoring case and surrounding spaces.
func FilterByTeam(drivers []Driver, team string) []Driver {
	team = strings.TrimSpace(team)
	out := make([]Driver, 0, 2)
	for _, d := range drivers {
		if strings.EqualFold(strings.TrimSpace(d.Team), team) {
			out = append(out, d)
		}
	}
	return out
}
