package race

import "time"

// ClassifyStatus compares calendar dates only; time of day is ignored.
func ClassifyStatus(date, today time.Time) Status {
	d := truncateDay(date)
	t := truncateDay(today)
	switch {
	case d.After(t):
		return StatusUpcoming
	case d.Equal(t):
		return StatusLive
	default:
		return StatusCompleted
	}
}

// StatusOn classifies an ISO date string. A date that cannot be parsed is treated as completed.
func StatusOn(date string, today time.Time) Status {
	parsed, err := ParseDate(date)
	if err != nil {
		return StatusCompleted
	}
	return ClassifyStatus(parsed, today)
}

// Today is the current UTC calendar day at midnight.
func Today(now time.Time) time.Time {
	return truncateDay(now)
}

func (s Status) Valid() bool {
	switch s {
	case StatusUpcoming, StatusLive, StatusCompleted:
		return true
	default:
		return false
	}
}

func truncateDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
