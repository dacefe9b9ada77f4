package datasource

// Source tells callers whether a record came from the live API or the static fallback dataset.
type Source string

const (
	Live     Source = "live"
	Fallback Source = "fallback"
)

func (s Source) IsLive() bool {
	return s == Live
}
