package schedule

import (
	"dialhub/models"
)

// ActiveAssignment is the resolution query result. CurrentSlotName and
// CurrentSlot are null when nothing is active, which is the normal
// state for most instants of most days.
type ActiveAssignment struct {
	CurrentDay      string               `json:"currentDay"`
	CurrentSlotName *string              `json:"currentSlotName"`
	CurrentSlot     *models.ScheduleSlot `json:"currentSlot"`
}

// CurrentDayName maps the clock's current date, read in Eastern time,
// to its lowercase day key. time.Weekday is Sunday-first, matching
// models.WeekDays.
func CurrentDayName(clock Clock) string {
	return models.WeekDays[int(clock.Now().In(easternTZ).Weekday())]
}

// ResolveActiveSlot scans the day's slots in declared order and
// returns the first one whose window contains the current wall-clock
// time, or ("", nil) when none does.
//
// Both sides of the comparison are ET: "now" is rendered as an ET
// "HH:MM" string and checked against the slot's ET bounds, inclusive
// on both ends. Mixing frames (ET now against UTC bounds, or the
// reverse) is the one bug this subsystem cannot afford.
//
// Overlapping windows are not rejected at the model level; when the
// operator creates one, the first slot in declared order wins.
func ResolveActiveSlot(day models.DailySchedule, clock Clock) (string, *models.ScheduleSlot) {
	now := clock.Now().In(easternTZ).Format(hhmm)
	for _, ns := range day.Slots() {
		s := ns.Slot
		if !s.Assigned() || s.CallTimeStartET == "" || s.CallTimeEndET == "" {
			continue
		}
		if s.CallTimeStartET <= now && now <= s.CallTimeEndET {
			slot := s
			return ns.Name, &slot
		}
	}
	return "", nil
}

// ResolveCurrent answers "which assistant should be handling calls
// right now" for a whole weekly schedule. Pure and stateless; callers
// evaluate it fresh whenever they need a decision.
func ResolveCurrent(weekly models.WeeklySchedule, clock Clock) ActiveAssignment {
	dayName := CurrentDayName(clock)
	day, _ := weekly.Day(dayName)
	name, slot := ResolveActiveSlot(day, clock)
	out := ActiveAssignment{CurrentDay: dayName, CurrentSlot: slot}
	if slot != nil {
		out.CurrentSlotName = &name
	}
	return out
}
