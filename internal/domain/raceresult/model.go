package raceresult

import "github.com/riskibarqy/driveahead/internal/domain/datasource"

// ResultSet is the classification of one finished race.
type ResultSet struct {
	RaceName string
	Circuit  string
	Date     string
	Results  []Row
	Source   datasource.Source
}

// Row is one classified finisher. Time holds the winner's race time or the gap to the winner.
type Row struct {
	Position int
	Driver   string
	Team     string
	Time     string
}

// Clone copies the rows so callers cannot mutate shared data.
func (r ResultSet) Clone() ResultSet {
	rows := make([]Row, len(r.Results))
	copy(rows, r.Results)
	r.Results = rows
	return r
}
