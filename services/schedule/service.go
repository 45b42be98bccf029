package schedule

import (
	"errors"
	"fmt"

	"dialhub/models"
)

// ErrMissingUser guards the repo paths; the auth middleware normally
// makes this unreachable.
var ErrMissingUser = errors.New("schedule: missing user id")

func (s *DefaultService) clock() Clock {
	if s.Clock != nil {
		return s.Clock
	}
	return SystemClock
}

// Get implements the read contract.
func (s *DefaultService) Get(userID string) (models.WeeklySchedule, error) {
	if userID == "" {
		return models.WeeklySchedule{}, ErrMissingUser
	}
	doc, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return models.WeeklySchedule{}, fmt.Errorf("failed to load schedule: %w", err)
	}
	if doc == nil {
		return models.DefaultWeeklySchedule(), nil
	}
	return doc.Schedule, nil
}

// Save implements the write contract. The whole document is replaced;
// repeated identical submissions are idempotent.
func (s *DefaultService) Save(userID string, input models.WeeklyScheduleInput) (models.WeeklySchedule, error) {
	if userID == "" {
		return models.WeeklySchedule{}, ErrMissingUser
	}

	weekly := models.DefaultWeeklySchedule()
	for dayName, slots := range input {
		if !models.ValidDay(dayName) {
			return models.WeeklySchedule{}, validationErrorf("unknown day key %q", dayName)
		}
		day, _ := weekly.Day(dayName)
		for slotName, raw := range slots {
			if !models.ValidSlotName(slotName) {
				return models.WeeklySchedule{}, validationErrorf("unknown slot key %q on %s", slotName, dayName)
			}
			slot, err := s.normalizeSlot(dayName, slotName, raw)
			if err != nil {
				return models.WeeklySchedule{}, err
			}
			day.SetSlot(slotName, slot)
		}
		weekly.SetDay(dayName, day)
	}

	if err := s.Repo.Replace(userID, weekly); err != nil {
		return models.WeeklySchedule{}, fmt.Errorf("failed to persist schedule: %w", err)
	}
	return weekly, nil
}

// normalizeSlot enforces the all-or-nothing slot invariant.
//
// Unassigned slots are cleared entirely, including any time remnants
// left behind by the editor. Assigned slots must carry two parseable
// ET times; a slot that keeps its assistant but lost its window is
// rejected rather than silently unassigned, so an operator's
// assignment is never dropped without them noticing.
//
// UTC bounds are always recomputed here from the ET pair. Whatever
// UTC values the client sent are discarded: the server is the only
// source of truth for the derived fields.
func (s *DefaultService) normalizeSlot(dayName, slotName string, raw models.ScheduleSlot) (models.ScheduleSlot, error) {
	if !raw.Assigned() {
		return models.ScheduleSlot{}, nil
	}

	startET, okStart := NormalizeHHMM(raw.CallTimeStartET)
	endET, okEnd := NormalizeHHMM(raw.CallTimeEndET)
	if !okStart || !okEnd {
		return models.ScheduleSlot{}, validationErrorf(
			"%s/%s is assigned to an assistant but has no valid call window", dayName, slotName)
	}

	slot := models.ScheduleSlot{
		AssistantID:     raw.AssistantID,
		AssistantName:   raw.AssistantName,
		CallTimeStartET: startET,
		CallTimeEndET:   endET,
		CallTimeStart:   ConvertETToUTC(s.clock(), startET),
		CallTimeEnd:     ConvertETToUTC(s.clock(), endET),
	}

	// Refresh the denormalized label when the registry knows the ID;
	// keep the client's label otherwise.
	if s.Directory != nil {
		if name, ok := s.Directory.AssistantName(raw.AssistantID); ok {
			slot.AssistantName = name
		}
	}
	return slot, nil
}

// Current implements the resolution query contract.
func (s *DefaultService) Current(userID string) (ActiveAssignment, error) {
	weekly, err := s.Get(userID)
	if err != nil {
		return ActiveAssignment{}, err
	}
	return ResolveCurrent(weekly, s.clock()), nil
}
