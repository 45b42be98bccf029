package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

func eastern(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

// midday clocks so the ET and UTC calendar dates agree.
func winterClock(t *testing.T) Clock {
	return fixedClock{t: time.Date(2025, time.January, 15, 12, 0, 0, 0, eastern(t))}
}

func summerClock(t *testing.T) Clock {
	return fixedClock{t: time.Date(2025, time.July, 15, 12, 0, 0, 0, eastern(t))}
}

func TestConvertETToUTC_StandardTime(t *testing.T) {
	// January 15 is EST: UTC-5.
	assert.Equal(t, "14:00", ConvertETToUTC(winterClock(t), "09:00"))
	assert.Equal(t, "22:30", ConvertETToUTC(winterClock(t), "17:30"))
}

func TestConvertETToUTC_DaylightTime(t *testing.T) {
	// July 15 is EDT: UTC-4.
	assert.Equal(t, "13:00", ConvertETToUTC(summerClock(t), "09:00"))
	assert.Equal(t, "21:30", ConvertETToUTC(summerClock(t), "17:30"))
}

func TestConvertETToUTC_EmptyInEmptyOut(t *testing.T) {
	assert.Equal(t, "", ConvertETToUTC(winterClock(t), ""))
}

func TestConvertETToUTC_MalformedInput(t *testing.T) {
	for _, input := range []string{"25:00", "9am", "nine", "12:61"} {
		assert.Equal(t, "", ConvertETToUTC(winterClock(t), input), "input %q", input)
	}
}

func TestConvertETToUTC_Idempotent(t *testing.T) {
	clock := summerClock(t)
	first := ConvertETToUTC(clock, "09:00")
	second := ConvertETToUTC(clock, "09:00")
	assert.Equal(t, first, second)
}

func TestConvertRoundTrip(t *testing.T) {
	for _, clock := range []Clock{winterClock(t), summerClock(t)} {
		for _, et := range []string{"00:30", "09:00", "13:45", "23:15"} {
			utc := ConvertETToUTC(clock, et)
			require.NotEmpty(t, utc)
			assert.Equal(t, et, ConvertUTCToET(clock, utc), "round trip for %q", et)
		}
	}
}

func TestNormalizeHHMM(t *testing.T) {
	got, ok := NormalizeHHMM("9:05")
	require.True(t, ok)
	assert.Equal(t, "09:05", got)

	_, ok = NormalizeHHMM("not a time")
	assert.False(t, ok)

	_, ok = NormalizeHHMM("")
	assert.False(t, ok)
}
