package timezone

import (
	"sync"
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "America/Sao_Paulo"

var locations sync.Map

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := load(tz)
	return err == nil
}

// Location falls back to DefaultTimezone for unknown names.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := load(tz); err == nil {
			return loc
		}
	}
	if loc, err := load(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

func load(tz string) (*time.Location, error) {
	if v, ok := locations.Load(tz); ok {
		return v.(*time.Location), nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, err
	}
	locations.Store(tz, loc)
	return loc, nil
}
