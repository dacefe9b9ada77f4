package race

import (
	"strings"
	"time"
)

const (
	// DefaultLocalTime is shown when a start time cannot be parsed.
	DefaultLocalTime = "17:00"

	displayOffset = 5*time.Hour + 30*time.Minute
)

var timeOfDayLayouts = []string{
	"15:04:05Z07:00",
	"15:04:05",
	"15:04Z07:00",
	"15:04",
}

// ToLocalDisplayTime shifts a UTC time of day by the fixed +05:30 display offset
// and formats it as HH:MM. Input without a zone is read as UTC.
func ToLocalDisplayTime(utcTimeOfDay string) string {
	value := strings.TrimSpace(utcTimeOfDay)
	if value == "" {
		return DefaultLocalTime
	}

	for _, layout := range timeOfDayLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		return t.UTC().Add(displayOffset).Format("15:04")
	}
	return DefaultLocalTime
}
