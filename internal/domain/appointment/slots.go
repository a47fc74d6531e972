package appointment

import (
	"fmt"

	"github.com/BruksfildServices01/showroom-scheduler/internal/models"
)

// SlotGrid is the bookable window of a day and its step.
type SlotGrid struct {
	StartHour        int
	EndHour          int
	IncrementMinutes int
}

func (g SlotGrid) Validate() error {
	if g.StartHour < 0 || g.EndHour > 24 {
		return fmt.Errorf("slot grid hours must be within 0..24 (got %d..%d)", g.StartHour, g.EndHour)
	}
	if g.StartHour >= g.EndHour {
		return fmt.Errorf("slot grid start hour %d must be before end hour %d", g.StartHour, g.EndHour)
	}
	if g.IncrementMinutes <= 0 {
		return fmt.Errorf("slot grid increment must be positive (got %d)", g.IncrementMinutes)
	}
	return nil
}

type Slot struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	IsAvailable bool   `json:"is_available"`
}

// GridTimes enumerates the HH:MM labels of the grid in ascending order:
// from StartHour:00 while strictly before EndHour:00.
func GridTimes(grid SlotGrid) []string {
	if grid.IncrementMinutes <= 0 || grid.StartHour >= grid.EndHour {
		return nil
	}

	var times []string
	for m := grid.StartHour * 60; m < grid.EndHour*60; m += grid.IncrementMinutes {
		times = append(times, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return times
}

// BuildSlots marks each grid time unavailable iff one of confirmed sits at
// exactly (date, time). Records with another status or date are ignored.
func BuildSlots(grid SlotGrid, date string, confirmed []models.Appointment) []Slot {
	taken := make(map[string]struct{}, len(confirmed))
	for _, ap := range confirmed {
		if ap.Date != date || Status(ap.Status) != StatusConfirmed {
			continue
		}
		taken[ap.Time] = struct{}{}
	}

	times := GridTimes(grid)
	slots := make([]Slot, 0, len(times))
	for _, t := range times {
		_, busy := taken[t]
		slots = append(slots, Slot{
			Date:        date,
			Time:        t,
			IsAvailable: !busy,
		})
	}
	return slots
}
