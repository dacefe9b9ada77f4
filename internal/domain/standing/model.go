package standing

import (
	"fmt"
	"sort"

	"github.com/riskibarqy/driveahead/internal/domain/datasource"
)

// Driver is one row of the drivers' championship.
type Driver struct {
	Position int
	Name     string
	Team     string
	Points   float64
	Wins     int
	Source   datasource.Source
}

// Constructor is one row of the constructors' championship.
type Constructor struct {
	Position int
	Name     string
	Points   float64
	Wins     int
	Source   datasource.Source
}

// UnknownTeam is reported for a driver standing with no constructor attached.
const UnknownTeam = "Unknown"

// ValidateRow checks the per-row invariants shared by both championships.
func ValidateRow(position int, points float64, wins int) error {
	if position < 1 {
		return fmt.Errorf("position must be >= 1, got %d", position)
	}
	if points < 0 {
		return fmt.Errorf("points must be >= 0, got %v", points)
	}
	if wins < 0 {
		return fmt.Errorf("wins must be >= 0, got %d", wins)
	}
	return nil
}

// SortDrivers orders by position and rejects duplicate positions.
func SortDrivers(rows []Driver) error {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })
	for i := 1; i < len(rows); i++ {
		if rows[i].Position == rows[i-1].Position {
			return fmt.Errorf("duplicate driver position %d", rows[i].Position)
		}
	}
	return nil
}

// SortConstructors orders by position and rejects duplicate positions.
func SortConstructors(rows []Constructor) error {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })
	for i := 1; i < len(rows); i++ {
		if rows[i].Position == rows[i-1].Position {
			return fmt.Errorf("duplicate constructor position %d", rows[i].Position)
		}
	}
	return nil
}
