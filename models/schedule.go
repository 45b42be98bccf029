package models

import "time"

// Day keys, Sunday-first so the index lines up with time.Weekday.
const (
	DaySunday    = "sunday"
	DayMonday    = "monday"
	DayTuesday   = "tuesday"
	DayWednesday = "wednesday"
	DayThursday  = "thursday"
	DayFriday    = "friday"
	DaySaturday  = "saturday"
)

// WeekDays lists the seven day keys in Sunday-first order.
var WeekDays = []string{
	DaySunday, DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday, DaySaturday,
}

// Slot names in their declared order. Resolution scans slots in this
// order, so it doubles as the precedence order when windows overlap.
const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
)

// SlotNames lists the slot keys in declared order.
var SlotNames = []string{SlotMorning, SlotAfternoon, SlotEvening}

// ValidDay reports whether name is one of the seven day keys.
func ValidDay(name string) bool {
	for _, d := range WeekDays {
		if d == name {
			return true
		}
	}
	return false
}

// ValidSlotName reports whether name is a known slot key.
func ValidSlotName(name string) bool {
	for _, s := range SlotNames {
		if s == name {
			return true
		}
	}
	return false
}

// ScheduleSlot binds one assistant to a time window within a day.
// The ET fields are operator-authored wall-clock times ("HH:MM") in
// US Eastern; CallTimeStart/CallTimeEnd hold the same instants in UTC
// and are derived on save, never accepted from clients.
type ScheduleSlot struct {
	AssistantID     string `bson:"assistantId" json:"assistantId"`
	AssistantName   string `bson:"assistantName" json:"assistantName"`
	CallTimeStartET string `bson:"callTimeStartET" json:"callTimeStartET"`
	CallTimeEndET   string `bson:"callTimeEndET" json:"callTimeEndET"`
	CallTimeStart   string `bson:"callTimeStart" json:"callTimeStart"`
	CallTimeEnd     string `bson:"callTimeEnd" json:"callTimeEnd"`
}

// Assigned reports whether the slot has an assistant bound to it.
func (s ScheduleSlot) Assigned() bool {
	return s.AssistantID != ""
}

// Empty reports whether the slot carries no assignment and no times.
func (s ScheduleSlot) Empty() bool {
	return s == ScheduleSlot{}
}

// NamedSlot pairs a slot with its key for ordered iteration.
type NamedSlot struct {
	Name string
	Slot ScheduleSlot
}

// DailySchedule holds the fixed slots of one day. Slots are struct
// fields rather than a map so iteration order is the declared order,
// which first-match resolution depends on.
type DailySchedule struct {
	Morning   ScheduleSlot `bson:"morning" json:"morning"`
	Afternoon ScheduleSlot `bson:"afternoon" json:"afternoon"`
	Evening   ScheduleSlot `bson:"evening" json:"evening"`
}

// Slots returns the day's slots in declared order.
func (d DailySchedule) Slots() []NamedSlot {
	return []NamedSlot{
		{Name: SlotMorning, Slot: d.Morning},
		{Name: SlotAfternoon, Slot: d.Afternoon},
		{Name: SlotEvening, Slot: d.Evening},
	}
}

// Slot returns the named slot, if the name is known.
func (d DailySchedule) Slot(name string) (ScheduleSlot, bool) {
	switch name {
	case SlotMorning:
		return d.Morning, true
	case SlotAfternoon:
		return d.Afternoon, true
	case SlotEvening:
		return d.Evening, true
	}
	return ScheduleSlot{}, false
}

// SetSlot replaces the named slot. It reports false for unknown names.
func (d *DailySchedule) SetSlot(name string, s ScheduleSlot) bool {
	switch name {
	case SlotMorning:
		d.Morning = s
	case SlotAfternoon:
		d.Afternoon = s
	case SlotEvening:
		d.Evening = s
	default:
		return false
	}
	return true
}

// WeeklySchedule is the recurring weekly assignment of assistants to
// call windows. The zero value is the all-empty schedule with all
// seven days present.
type WeeklySchedule struct {
	Sunday    DailySchedule `bson:"sunday" json:"sunday"`
	Monday    DailySchedule `bson:"monday" json:"monday"`
	Tuesday   DailySchedule `bson:"tuesday" json:"tuesday"`
	Wednesday DailySchedule `bson:"wednesday" json:"wednesday"`
	Thursday  DailySchedule `bson:"thursday" json:"thursday"`
	Friday    DailySchedule `bson:"friday" json:"friday"`
	Saturday  DailySchedule `bson:"saturday" json:"saturday"`
}

// Day returns the named day's schedule, if the name is known.
func (w WeeklySchedule) Day(name string) (DailySchedule, bool) {
	switch name {
	case DaySunday:
		return w.Sunday, true
	case DayMonday:
		return w.Monday, true
	case DayTuesday:
		return w.Tuesday, true
	case DayWednesday:
		return w.Wednesday, true
	case DayThursday:
		return w.Thursday, true
	case DayFriday:
		return w.Friday, true
	case DaySaturday:
		return w.Saturday, true
	}
	return DailySchedule{}, false
}

// SetDay replaces the named day. It reports false for unknown names.
func (w *WeeklySchedule) SetDay(name string, d DailySchedule) bool {
	switch name {
	case DaySunday:
		w.Sunday = d
	case DayMonday:
		w.Monday = d
	case DayTuesday:
		w.Tuesday = d
	case DayWednesday:
		w.Wednesday = d
	case DayThursday:
		w.Thursday = d
	case DayFriday:
		w.Friday = d
	case DaySaturday:
		w.Saturday = d
	default:
		return false
	}
	return true
}

// DefaultWeeklySchedule returns the all-empty schedule handed out when
// a user has never saved one.
func DefaultWeeklySchedule() WeeklySchedule {
	return WeeklySchedule{}
}

// WeeklyScheduleInput is the raw editor payload. It is decoded as maps
// so unknown day or slot keys reach validation instead of being
// silently dropped by a struct decode.
type WeeklyScheduleInput map[string]map[string]ScheduleSlot

// ScheduleDocument is the persisted per-user schedule. It is replaced
// whole on every save; there is no per-slot write granularity.
type ScheduleDocument struct {
	UserID    string         `bson:"userId" json:"userId"`
	Schedule  WeeklySchedule `bson:"schedule" json:"schedule"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time      `bson:"updatedAt" json:"updatedAt"`
}
