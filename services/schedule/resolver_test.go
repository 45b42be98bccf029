package schedule

import (
	"testing"
	"time"

	"dialhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func etClock(t *testing.T, year int, month time.Month, day, hour, min int) Clock {
	return fixedClock{t: time.Date(year, month, day, hour, min, 0, 0, eastern(t))}
}

func TestCurrentDayName(t *testing.T) {
	// 2025-01-15 is a Wednesday.
	assert.Equal(t, "wednesday", CurrentDayName(etClock(t, 2025, time.January, 15, 12, 0)))
	// 2025-07-13 is a Sunday.
	assert.Equal(t, "sunday", CurrentDayName(etClock(t, 2025, time.July, 13, 12, 0)))
}

func TestCurrentDayName_UsesEasternDate(t *testing.T) {
	// 2025-07-15 01:00 UTC is still 21:00 on July 14 in Eastern.
	clock := fixedClock{t: time.Date(2025, time.July, 15, 1, 0, 0, 0, time.UTC)}
	assert.Equal(t, "monday", CurrentDayName(clock))
}

func assignedSlot(id, name, start, end string) models.ScheduleSlot {
	return models.ScheduleSlot{
		AssistantID:     id,
		AssistantName:   name,
		CallTimeStartET: start,
		CallTimeEndET:   end,
	}
}

func TestResolveActiveSlot_Match(t *testing.T) {
	day := models.DailySchedule{
		Morning: assignedSlot("a-1", "Ava", "09:00", "11:00"),
	}

	name, slot := ResolveActiveSlot(day, etClock(t, 2025, time.July, 14, 10, 0))
	require.NotNil(t, slot)
	assert.Equal(t, models.SlotMorning, name)
	assert.Equal(t, "a-1", slot.AssistantID)
}

func TestResolveActiveSlot_InclusiveBounds(t *testing.T) {
	day := models.DailySchedule{
		Morning: assignedSlot("a-1", "Ava", "09:00", "11:00"),
	}

	_, atStart := ResolveActiveSlot(day, etClock(t, 2025, time.July, 14, 9, 0))
	assert.NotNil(t, atStart)

	_, atEnd := ResolveActiveSlot(day, etClock(t, 2025, time.July, 14, 11, 0))
	assert.NotNil(t, atEnd)

	_, after := ResolveActiveSlot(day, etClock(t, 2025, time.July, 14, 11, 1))
	assert.Nil(t, after)
}

func TestResolveActiveSlot_FirstMatchWins(t *testing.T) {
	// Overlapping windows: morning declared first, so it wins even
	// though afternoon starts later.
	day := models.DailySchedule{
		Morning:   assignedSlot("a-1", "Ava", "09:00", "12:00"),
		Afternoon: assignedSlot("a-2", "Ben", "10:00", "14:00"),
	}

	name, slot := ResolveActiveSlot(day, etClock(t, 2025, time.July, 14, 11, 0))
	require.NotNil(t, slot)
	assert.Equal(t, models.SlotMorning, name)
	assert.Equal(t, "a-1", slot.AssistantID)
}

func TestResolveActiveSlot_NoMatch(t *testing.T) {
	day := models.DailySchedule{
		Morning: assignedSlot("a-1", "Ava", "09:00", "11:00"),
	}

	name, slot := ResolveActiveSlot(day, etClock(t, 2025, time.July, 14, 8, 0))
	assert.Equal(t, "", name)
	assert.Nil(t, slot)
}

func TestResolveActiveSlot_SkipsUnassignedAndWindowless(t *testing.T) {
	day := models.DailySchedule{
		// Times but no assistant: never active.
		Morning: models.ScheduleSlot{CallTimeStartET: "09:00", CallTimeEndET: "11:00"},
		// Assistant but no window: never active.
		Afternoon: models.ScheduleSlot{AssistantID: "a-2", AssistantName: "Ben"},
		Evening:   assignedSlot("a-3", "Cleo", "09:00", "18:00"),
	}

	name, slot := ResolveActiveSlot(day, etClock(t, 2025, time.July, 14, 10, 0))
	require.NotNil(t, slot)
	assert.Equal(t, models.SlotEvening, name)
	assert.Equal(t, "a-3", slot.AssistantID)
}

func TestResolveCurrent(t *testing.T) {
	weekly := models.DefaultWeeklySchedule()
	weekly.Monday.Morning = assignedSlot("a-1", "Ava", "09:00", "11:00")

	// 2025-07-14 is a Monday.
	active := ResolveCurrent(weekly, etClock(t, 2025, time.July, 14, 10, 0))
	require.NotNil(t, active.CurrentSlot)
	require.NotNil(t, active.CurrentSlotName)
	assert.Equal(t, "monday", active.CurrentDay)
	assert.Equal(t, models.SlotMorning, *active.CurrentSlotName)
	assert.Equal(t, "a-1", active.CurrentSlot.AssistantID)
}

func TestResolveCurrent_EmptyScheduleIsNoMatch(t *testing.T) {
	active := ResolveCurrent(models.DefaultWeeklySchedule(), etClock(t, 2025, time.July, 14, 10, 0))
	assert.Equal(t, "monday", active.CurrentDay)
	assert.Nil(t, active.CurrentSlotName)
	assert.Nil(t, active.CurrentSlot)
}
