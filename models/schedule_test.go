package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekDaysOrder(t *testing.T) {
	// Sunday-first, so indexing by time.Weekday works.
	require.Len(t, WeekDays, 7)
	assert.Equal(t, DaySunday, WeekDays[0])
	assert.Equal(t, DayWednesday, WeekDays[3])
	assert.Equal(t, DaySaturday, WeekDays[6])
}

func TestSlotsDeclaredOrder(t *testing.T) {
	day := DailySchedule{
		Morning:   ScheduleSlot{AssistantID: "m"},
		Afternoon: ScheduleSlot{AssistantID: "a"},
		Evening:   ScheduleSlot{AssistantID: "e"},
	}

	slots := day.Slots()
	require.Len(t, slots, 3)
	assert.Equal(t, SlotMorning, slots[0].Name)
	assert.Equal(t, SlotAfternoon, slots[1].Name)
	assert.Equal(t, SlotEvening, slots[2].Name)
}

func TestDayAccessors(t *testing.T) {
	var w WeeklySchedule
	day := DailySchedule{Morning: ScheduleSlot{AssistantID: "a-1"}}

	require.True(t, w.SetDay(DayThursday, day))
	got, ok := w.Day(DayThursday)
	require.True(t, ok)
	assert.Equal(t, "a-1", got.Morning.AssistantID)

	_, ok = w.Day("holiday")
	assert.False(t, ok)
	assert.False(t, w.SetDay("holiday", day))
}

func TestSlotAccessors(t *testing.T) {
	var d DailySchedule
	require.True(t, d.SetSlot(SlotEvening, ScheduleSlot{AssistantID: "a-9"}))

	got, ok := d.Slot(SlotEvening)
	require.True(t, ok)
	assert.Equal(t, "a-9", got.AssistantID)

	_, ok = d.Slot("midnight")
	assert.False(t, ok)
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidDay("sunday"))
	assert.False(t, ValidDay("Sunday"))
	assert.True(t, ValidSlotName("afternoon"))
	assert.False(t, ValidSlotName("tea-time"))
}

func TestSlotStateHelpers(t *testing.T) {
	assert.True(t, ScheduleSlot{}.Empty())
	assert.False(t, ScheduleSlot{}.Assigned())

	s := ScheduleSlot{AssistantID: "a-1"}
	assert.True(t, s.Assigned())
	assert.False(t, s.Empty())
}

func TestDefaultWeeklySchedule(t *testing.T) {
	w := DefaultWeeklySchedule()
	for _, name := range WeekDays {
		day, ok := w.Day(name)
		require.True(t, ok, "day %s must exist", name)
		for _, ns := range day.Slots() {
			assert.True(t, ns.Slot.Empty())
		}
	}
}
