package schedule

import (
	"errors"
	"testing"
	"time"

	"dialhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScheduleRepo keeps documents in memory, one per user.
type fakeScheduleRepo struct {
	docs     map[string]models.WeeklySchedule
	failNext error
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{docs: make(map[string]models.WeeklySchedule)}
}

func (r *fakeScheduleRepo) GetByUserID(userID string) (*models.ScheduleDocument, error) {
	if r.failNext != nil {
		return nil, r.failNext
	}
	weekly, ok := r.docs[userID]
	if !ok {
		return nil, nil
	}
	return &models.ScheduleDocument{UserID: userID, Schedule: weekly}, nil
}

func (r *fakeScheduleRepo) Replace(userID string, weekly models.WeeklySchedule) error {
	if r.failNext != nil {
		return r.failNext
	}
	r.docs[userID] = weekly
	return nil
}

// fakeDirectory knows a fixed set of assistants.
type fakeDirectory map[string]string

func (d fakeDirectory) AssistantName(id string) (string, bool) {
	name, ok := d[id]
	return name, ok
}

func newService(t *testing.T, clock Clock) (*DefaultService, *fakeScheduleRepo) {
	t.Helper()
	repo := newFakeScheduleRepo()
	svc := &DefaultService{
		Repo:      repo,
		Directory: fakeDirectory{"a-1": "Ava"},
		Clock:     clock,
	}
	return svc, repo
}

func TestGet_DefaultWhenUnsaved(t *testing.T) {
	svc, _ := newService(t, summerClock(t))

	weekly, err := svc.Get("user-1")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultWeeklySchedule(), weekly)
}

func TestSave_DerivesUTCFromET(t *testing.T) {
	svc, repo := newService(t, summerClock(t))

	input := models.WeeklyScheduleInput{
		"monday": {
			"morning": {
				AssistantID:     "a-1",
				CallTimeStartET: "09:00",
				CallTimeEndET:   "11:00",
				// Client-sent UTC values are lies; they must be ignored.
				CallTimeStart: "01:23",
				CallTimeEnd:   "02:34",
			},
		},
	}

	weekly, err := svc.Save("user-1", input)
	require.NoError(t, err)

	slot := weekly.Monday.Morning
	assert.Equal(t, "09:00", slot.CallTimeStartET)
	assert.Equal(t, "11:00", slot.CallTimeEndET)
	// July is EDT: UTC-4.
	assert.Equal(t, "13:00", slot.CallTimeStart)
	assert.Equal(t, "15:00", slot.CallTimeEnd)
	// Label refreshed from the directory.
	assert.Equal(t, "Ava", slot.AssistantName)

	assert.Equal(t, weekly, repo.docs["user-1"])
}

func TestSave_UnknownAssistantKeepsClientLabel(t *testing.T) {
	svc, _ := newService(t, summerClock(t))

	weekly, err := svc.Save("user-1", models.WeeklyScheduleInput{
		"friday": {
			"evening": {
				AssistantID:     "a-999",
				AssistantName:   "Custom Label",
				CallTimeStartET: "18:00",
				CallTimeEndET:   "20:00",
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Custom Label", weekly.Friday.Evening.AssistantName)
}

func TestSave_RejectsUnknownDayKey(t *testing.T) {
	svc, repo := newService(t, summerClock(t))

	_, err := svc.Save("user-1", models.WeeklyScheduleInput{
		"funday": {},
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, repo.docs, "nothing may be persisted on validation failure")
}

func TestSave_RejectsUnknownSlotKey(t *testing.T) {
	svc, _ := newService(t, summerClock(t))

	_, err := svc.Save("user-1", models.WeeklyScheduleInput{
		"monday": {"brunch": {}},
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestSave_RejectsAssignedSlotWithoutWindow(t *testing.T) {
	svc, repo := newService(t, summerClock(t))

	_, err := svc.Save("user-1", models.WeeklyScheduleInput{
		"monday": {
			"morning": {AssistantID: "a-1"},
		},
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, repo.docs)
}

func TestSave_ClearsUnassignedRemnants(t *testing.T) {
	svc, _ := newService(t, summerClock(t))

	weekly, err := svc.Save("user-1", models.WeeklyScheduleInput{
		"tuesday": {
			// No assistant: leftover times must be wiped.
			"afternoon": {CallTimeStartET: "12:00", CallTimeEndET: "14:00"},
		},
	})
	require.NoError(t, err)
	assert.True(t, weekly.Tuesday.Afternoon.Empty())
}

func TestSave_Idempotent(t *testing.T) {
	svc, repo := newService(t, summerClock(t))

	input := models.WeeklyScheduleInput{
		"monday": {
			"morning": {AssistantID: "a-1", CallTimeStartET: "09:00", CallTimeEndET: "11:00"},
		},
	}

	first, err := svc.Save("user-1", input)
	require.NoError(t, err)
	second, err := svc.Save("user-1", input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, second, repo.docs["user-1"])
}

func TestSave_StorageFailurePropagates(t *testing.T) {
	svc, repo := newService(t, summerClock(t))
	repo.failNext = errors.New("mongo down")

	_, err := svc.Save("user-1", models.WeeklyScheduleInput{})
	require.Error(t, err)

	var verr *ValidationError
	assert.False(t, errors.As(err, &verr), "storage failure is not a validation error")
}

func TestSave_DoesNotTouchOtherUsers(t *testing.T) {
	svc, repo := newService(t, summerClock(t))

	_, err := svc.Save("user-1", models.WeeklyScheduleInput{})
	require.NoError(t, err)
	_, err = svc.Save("user-2", models.WeeklyScheduleInput{
		"monday": {
			"morning": {AssistantID: "a-1", CallTimeStartET: "09:00", CallTimeEndET: "11:00"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, models.DefaultWeeklySchedule(), repo.docs["user-1"])
	assert.True(t, repo.docs["user-2"].Monday.Morning.Assigned())
}

func TestSaveThenResolve_RoundTrip(t *testing.T) {
	// Save Monday morning 09:00-11:00 ET on a July date, reload, then
	// resolve at 10:00 ET on that Monday.
	clock := etClock(t, 2025, time.July, 14, 10, 0)
	svc, _ := newService(t, clock)

	_, err := svc.Save("user-1", models.WeeklyScheduleInput{
		"monday": {
			"morning": {AssistantID: "a-1", CallTimeStartET: "09:00", CallTimeEndET: "11:00"},
		},
	})
	require.NoError(t, err)

	active, err := svc.Current("user-1")
	require.NoError(t, err)
	require.NotNil(t, active.CurrentSlotName)
	require.NotNil(t, active.CurrentSlot)
	assert.Equal(t, "monday", active.CurrentDay)
	assert.Equal(t, models.SlotMorning, *active.CurrentSlotName)
	assert.Equal(t, "a-1", active.CurrentSlot.AssistantID)
	assert.Equal(t, "Ava", active.CurrentSlot.AssistantName)
}

func TestCurrent_MissingUser(t *testing.T) {
	svc, _ := newService(t, summerClock(t))
	_, err := svc.Current("")
	assert.ErrorIs(t, err, ErrMissingUser)
}
