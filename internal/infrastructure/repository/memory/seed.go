package memory

import (
	"github.com/riskibarqy/driveahead/internal/domain/datasource"
	"github.com/riskibarqy/driveahead/internal/domain/driver"
	"github.com/riskibarqy/driveahead/internal/domain/race"
	"github.com/riskibarqy/driveahead/internal/domain/raceresult"
	"github.com/riskibarqy/driveahead/internal/domain/standing"
)

// SeedSchedule is the closing stretch of the 2025 calendar. Status is left
// empty; readers recompute it against the current day.
func SeedSchedule() []race.Race {
	return []race.Race{
		{Round: 17, Name: "Qatar Airways Azerbaijan Grand Prix", Circuit: "Baku City Circuit", Country: "Azerbaijan", Date: "2025-09-21", TimeOfDay: "11:30:00Z", LocalizedTime: "17:00", Source: datasource.Fallback},
		{Round: 18, Name: "Singapore Grand Prix", Circuit: "Marina Bay Street Circuit", Country: "Singapore", Date: "2025-10-05", TimeOfDay: "12:00:00Z", LocalizedTime: "17:30", Source: datasource.Fallback},
		{Round: 19, Name: "United States Grand Prix", Circuit: "Circuit of the Americas", Country: "United States", Date: "2025-10-19", TimeOfDay: "19:30:00Z", LocalizedTime: "01:00", Source: datasource.Fallback},
		{Round: 20, Name: "Mexican Grand Prix", Circuit: "Autódromo Hermanos Rodríguez", Country: "Mexico", Date: "2025-10-26", TimeOfDay: "20:00:00Z", LocalizedTime: "01:30", Source: datasource.Fallback},
		{Round: 21, Name: "Brazilian Grand Prix", Circuit: "Interlagos", Country: "Brazil", Date: "2025-11-02", TimeOfDay: "14:00:00Z", LocalizedTime: "19:30", Source: datasource.Fallback},
		{Round: 22, Name: "Las Vegas Grand Prix", Circuit: "Las Vegas Street Circuit", Country: "United States", Date: "2025-11-23", TimeOfDay: "03:00:00Z", LocalizedTime: "08:30", Source: datasource.Fallback},
		{Round: 23, Name: "Qatar Grand Prix", Circuit: "Losail International Circuit", Country: "Qatar", Date: "2025-11-30", TimeOfDay: "14:00:00Z", LocalizedTime: "19:30", Source: datasource.Fallback},
		{Round: 24, Name: "Abu Dhabi Grand Prix", Circuit: "Yas Marina Circuit", Country: "United Arab Emirates", Date: "2025-12-07", TimeOfDay: "15:00:00Z", LocalizedTime: "20:30", Source: datasource.Fallback},
	}
}

func SeedDriverStandings() []standing.Driver {
	return []standing.Driver{
		{Position: 1, Name: "Lando Norris", Team: "McLaren", Points: 374, Wins: 2, Source: datasource.Fallback},
		{Position: 2, Name: "Max Verstappen", Team: "Red Bull Racing", Points: 362, Wins: 7, Source: datasource.Fallback},
		{Position: 3, Name: "Charles Leclerc", Team: "Ferrari", Points: 356, Wins: 2, Source: datasource.Fallback},
		{Position: 4, Name: "Oscar Piastri", Team: "McLaren", Points: 266, Wins: 2, Source: datasource.Fallback},
		{Position: 5, Name: "Carlos Sainz", Team: "Ferrari", Points: 263, Wins: 1, Source: datasource.Fallback},
		{Position: 6, Name: "George Russell", Team: "Mercedes", Points: 245, Wins: 1, Source: datasource.Fallback},
		{Position: 7, Name: "Lewis Hamilton", Team: "Mercedes", Points: 223, Wins: 2, Source: datasource.Fallback},
		{Position: 8, Name: "Sergio Perez", Team: "Red Bull Racing", Points: 219, Source: datasource.Fallback},
		{Position: 9, Name: "Fernando Alonso", Team: "Aston Martin", Points: 70, Source: datasource.Fallback},
		{Position: 10, Name: "Nico Hulkenberg", Team: "Haas", Points: 37, Source: datasource.Fallback},
	}
}

func SeedConstructorStandings() []standing.Constructor {
	return []standing.Constructor{
		{Position: 1, Name: "McLaren", Points: 640, Wins: 4, Source: datasource.Fallback},
		{Position: 2, Name: "Ferrari", Points: 619, Wins: 3, Source: datasource.Fallback},
		{Position: 3, Name: "Red Bull Racing", Points: 581, Wins: 7, Source: datasource.Fallback},
		{Position: 4, Name: "Mercedes", Points: 468, Wins: 3, Source: datasource.Fallback},
		{Position: 5, Name: "Aston Martin", Points: 86, Source: datasource.Fallback},
		{Position: 6, Name: "Alpine", Points: 59, Source: datasource.Fallback},
		{Position: 7, Name: "Haas", Points: 58, Source: datasource.Fallback},
		{Position: 8, Name: "RB", Points: 46, Source: datasource.Fallback},
		{Position: 9, Name: "Williams", Points: 17, Source: datasource.Fallback},
		{Position: 10, Name: "Kick Sauber", Points: 4, Source: datasource.Fallback},
	}
}

func SeedLatestResults() raceresult.ResultSet {
	return raceresult.ResultSet{
		RaceName: "Italian Grand Prix",
		Circuit:  "Monza",
		Date:     "2025-09-01",
		Results: []raceresult.Row{
			{Position: 1, Driver: "Max Verstappen", Team: "Red Bull Racing", Time: "1:32:11.000"},
			{Position: 2, Driver: "Charles Leclerc", Team: "Ferrari", Time: "+4.200s"},
			{Position: 3, Driver: "Lando Norris", Team: "McLaren", Time: "+7.581s"},
			{Position: 4, Driver: "Lewis Hamilton", Team: "Ferrari", Time: "+12.341s"},
			{Position: 5, Driver: "Fernando Alonso", Team: "Aston Martin", Time: "+18.902s"},
			{Position: 6, Driver: "Oscar Piastri", Team: "McLaren", Time: "+21.445s"},
		},
		Source: datasource.Fallback,
	}
}

func SeedDrivers() []driver.Driver {
	return []driver.Driver{
		{Name: "Max Verstappen", Team: "Red Bull Racing", Number: 1, Nationality: "Netherlands", Source: datasource.Fallback},
		{Name: "Liam Lawson", Team: "Red Bull Racing", Number: 22, Nationality: "New Zealand", Source: datasource.Fallback},
		{Name: "Charles Leclerc", Team: "Ferrari", Number: 16, Nationality: "Monaco", Source: datasource.Fallback},
		{Name: "Lewis Hamilton", Team: "Ferrari", Number: 44, Nationality: "Great Britain", Source: datasource.Fallback},
		{Name: "Lando Norris", Team: "McLaren", Number: 4, Nationality: "Great Britain", Source: datasource.Fallback},
		{Name: "Oscar Piastri", Team: "McLaren", Number: 81, Nationality: "Australia", Source: datasource.Fallback},
		{Name: "George Russell", Team: "Mercedes", Number: 63, Nationality: "Great Britain", Source: datasource.Fallback},
		{Name: "Andrea Kimi Antonelli", Team: "Mercedes", Number: 12, Nationality: "Italy", Source: datasource.Fallback},
		{Name: "Fernando Alonso", Team: "Aston Martin", Number: 14, Nationality: "Spain", Source: datasource.Fallback},
		{Name: "Lance Stroll", Team: "Aston Martin", Number: 18, Nationality: "Canada", Source: datasource.Fallback},
	}
}
