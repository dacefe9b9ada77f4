package jolpica

// Ergast-compatible MRData envelopes. Numbers arrive as strings.

type RaceEnvelope struct {
	MRData *RaceData `json:"MRData" validate:"required"`
}

type RaceData struct {
	Total     string     `json:"total"`
	RaceTable *RaceTable `json:"RaceTable" validate:"required"`
}

type RaceTable struct {
	Season string `json:"season"`
	Races  []Race `json:"Races" validate:"dive"`
}

type Race struct {
	Season   string   `json:"season"`
	Round    string   `json:"round" validate:"required,numeric"`
	RaceName string   `json:"raceName" validate:"required"`
	Circuit  Circuit  `json:"Circuit"`
	Date     string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string   `json:"time,omitempty"`
	Results  []Result `json:"Results,omitempty" validate:"dive"`
}

type Circuit struct {
	CircuitID   string   `json:"circuitId"`
	CircuitName string   `json:"circuitName" validate:"required"`
	Location    Location `json:"Location"`
}

type Location struct {
	Locality string `json:"locality"`
	Country  string `json:"country"`
}

type Result struct {
	Number      string      `json:"number"`
	Position    string      `json:"position" validate:"required,numeric"`
	Points      string      `json:"points" validate:"omitempty,numeric"`
	Driver      Driver      `json:"Driver"`
	Constructor Constructor `json:"Constructor"`
	Status      string      `json:"status"`
	Time        *ResultTime `json:"Time,omitempty"`
}

type ResultTime struct {
	Millis string `json:"millis"`
	Time   string `json:"time"`
}

type Driver struct {
	DriverID        string `json:"driverId"`
	PermanentNumber string `json:"permanentNumber" validate:"omitempty,numeric"`
	Code            string `json:"code"`
	GivenName       string `json:"givenName"`
	FamilyName      string `json:"familyName"`
	Nationality     string `json:"nationality"`
}

type Constructor struct {
	ConstructorID string `json:"constructorId"`
	Name          string `json:"name" validate:"required"`
	Nationality   string `json:"nationality"`
}

type StandingsEnvelope struct {
	MRData *StandingsData `json:"MRData" validate:"required"`
}

type StandingsData struct {
	StandingsTable *StandingsTable `json:"StandingsTable" validate:"required"`
}

type StandingsTable struct {
	Season         string          `json:"season"`
	StandingsLists []StandingsList `json:"StandingsLists" validate:"dive"`
}

type StandingsList struct {
	Season               string                `json:"season"`
	Round                string                `json:"round"`
	DriverStandings      []DriverStanding      `json:"DriverStandings,omitempty" validate:"dive"`
	ConstructorStandings []ConstructorStanding `json:"ConstructorStandings,omitempty" validate:"dive"`
}

type DriverStanding struct {
	Position     string        `json:"position" validate:"required,numeric"`
	Points       string        `json:"points" validate:"required,numeric"`
	Wins         string        `json:"wins" validate:"required,numeric"`
	Driver       Driver        `json:"Driver"`
	Constructors []Constructor `json:"Constructors" validate:"dive"`
}

type ConstructorStanding struct {
	Position    string      `json:"position" validate:"required,numeric"`
	Points      string      `json:"points" validate:"required,numeric"`
	Wins        string      `json:"wins" validate:"required,numeric"`
	Constructor Constructor `json:"Constructor"`
}

type DriverEnvelope struct {
	MRData *DriverData `json:"MRData" validate:"required"`
}

type DriverData struct {
	DriverTable *DriverTable `json:"DriverTable" validate:"required"`
}

type DriverTable struct {
	Season  string   `json:"season"`
	Drivers []Driver `json:"Drivers" validate:"dive"`
}
