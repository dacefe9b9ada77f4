package race

import (
	"testing"
	"time"
)

func TestClassifyStatus(t *testing.T) {
	t.Parallel()

	today := time.Date(2025, 10, 18, 15, 45, 0, 0, time.UTC)
	cases := []struct {
		name string
		date time.Time
		want Status
	}{
		{name: "yesterday", date: today.AddDate(0, 0, -1), want: StatusCompleted},
		{name: "same day earlier", date: time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC), want: StatusLive},
		{name: "same day later", date: time.Date(2025, 10, 18, 23, 59, 0, 0, time.UTC), want: StatusLive},
		{name: "tomorrow", date: today.AddDate(0, 0, 1), want: StatusUpcoming},
		{name: "next season", date: today.AddDate(1, 0, 0), want: StatusUpcoming},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ClassifyStatus(tc.date, today)
			if got != tc.want {
				t.Fatalf("ClassifyStatus()=%s want=%s", got, tc.want)
			}
			if again := ClassifyStatus(tc.date, today); again != got {
				t.Fatalf("ClassifyStatus not stable: %s then %s", got, again)
			}
			if !got.Valid() {
				t.Fatalf("status %q is not one of upcoming/live/completed", got)
			}
		})
	}
}

func TestStatusOn_UnparseableDateIsCompleted(t *testing.T) {
	t.Parallel()

	if got := StatusOn("not-a-date", time.Now()); got != StatusCompleted {
		t.Fatalf("StatusOn()=%s want=%s", got, StatusCompleted)
	}
}

func TestRace_OnOrAfter(t *testing.T) {
	t.Parallel()

	today := time.Date(2025, 10, 18, 20, 0, 0, 0, time.UTC)
	cases := map[string]bool{
		"2025-10-17": false,
		"2025-10-18": true,
		"2025-10-19": true,
		"garbage":    false,
	}
	for date, want := range cases {
		if got := (Race{Date: date}).OnOrAfter(today); got != want {
			t.Fatalf("OnOrAfter(%s)=%v want=%v", date, got, want)
		}
	}
}

func TestRace_Location(t *testing.T) {
	t.Parallel()

	if got := (Race{Circuit: "Monza", Country: "Italy"}).Location(); got != "Monza, Italy" {
		t.Fatalf("Location()=%q", got)
	}
	if got := (Race{Country: "Italy"}).Location(); got != "Italy" {
		t.Fatalf("Location()=%q", got)
	}
}
