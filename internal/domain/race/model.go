package race

import (
	"strings"
	"time"

	"github.com/riskibarqy/driveahead/internal/domain/datasource"
)

const (
	StatusUpcoming  Status = "upcoming"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
)

const (
	DateLayout = "2006-01-02"

	// DefaultRaceTime is used when the API omits a race start time.
	DefaultRaceTime = "12:00:00Z"
)

type Status string

// Race is one round of a season.
type Race struct {
	Round         int
	Name          string
	Circuit       string
	Country       string
	Date          string
	TimeOfDay     string
	LocalizedTime string
	Status        Status
	Source        datasource.Source
}

// Location joins circuit and country the way the dashboard shows it.
func (r Race) Location() string {
	circuit := strings.TrimSpace(r.Circuit)
	country := strings.TrimSpace(r.Country)
	switch {
	case circuit == "":
		return country
	case country == "":
		return circuit
	default:
		return circuit + ", " + country
	}
}

// OnOrAfter reports whether the race date is not before day. Unparseable dates are excluded.
func (r Race) OnOrAfter(day time.Time) bool {
	date, err := ParseDate(r.Date)
	if err != nil {
		return false
	}
	return !date.Before(truncateDay(day))
}

// WithStatusOn returns a copy with Status recomputed against today.
func (r Race) WithStatusOn(today time.Time) Race {
	r.Status = StatusOn(r.Date, today)
	return r
}

func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.UTC)
}
