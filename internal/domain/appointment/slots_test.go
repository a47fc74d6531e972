package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/showroom-scheduler/internal/models"
)

var defaultGrid = SlotGrid{StartHour: 9, EndHour: 18, IncrementMinutes: 30}

func TestGridTimes_DefaultBusinessHours(t *testing.T) {
	times := GridTimes(defaultGrid)

	require.Len(t, times, 18)
	assert.Equal(t, "09:00", times[0])
	assert.Equal(t, "09:30", times[1])
	assert.Equal(t, "17:30", times[17])
	assert.NotContains(t, times, "18:00")
	assert.IsIncreasing(t, times)
}

func TestGridTimes_CustomGrid(t *testing.T) {
	times := GridTimes(SlotGrid{StartHour: 10, EndHour: 11, IncrementMinutes: 20})
	assert.Equal(t, []string{"10:00", "10:20", "10:40"}, times)

	assert.Nil(t, GridTimes(SlotGrid{StartHour: 10, EndHour: 10, IncrementMinutes: 30}))
	assert.Nil(t, GridTimes(SlotGrid{StartHour: 9, EndHour: 18, IncrementMinutes: 0}))
}

func TestBuildSlots_OnlyConfirmedBlock(t *testing.T) {
	date := "2025-04-01"
	existing := []models.Appointment{
		{Date: date, Time: "09:00", Status: string(StatusConfirmed)},
		{Date: date, Time: "09:30", Status: string(StatusConfirmed)},
		{Date: date, Time: "10:00", Status: string(StatusPending)},
		{Date: date, Time: "10:30", Status: string(StatusCancelled)},
		{Date: "2025-04-02", Time: "11:00", Status: string(StatusConfirmed)},
	}

	slots := BuildSlots(defaultGrid, date, existing)
	require.Len(t, slots, 18)

	var unavailable []string
	for _, s := range slots {
		assert.Equal(t, date, s.Date)
		if !s.IsAvailable {
			unavailable = append(unavailable, s.Time)
		}
	}
	assert.Equal(t, []string{"09:00", "09:30"}, unavailable)
}

func TestBuildSlots_OffGridBookingIgnored(t *testing.T) {
	slots := BuildSlots(defaultGrid, "2025-04-01", []models.Appointment{
		{Date: "2025-04-01", Time: "09:15", Status: string(StatusConfirmed)},
	})

	for _, s := range slots {
		assert.True(t, s.IsAvailable, s.Time)
	}
}

func TestSlotGrid_Validate(t *testing.T) {
	assert.NoError(t, defaultGrid.Validate())
	assert.Error(t, SlotGrid{StartHour: -1, EndHour: 18, IncrementMinutes: 30}.Validate())
	assert.Error(t, SlotGrid{StartHour: 9, EndHour: 25, IncrementMinutes: 30}.Validate())
	assert.Error(t, SlotGrid{StartHour: 18, EndHour: 9, IncrementMinutes: 30}.Validate())
	assert.Error(t, SlotGrid{StartHour: 9, EndHour: 18}.Validate())
}
