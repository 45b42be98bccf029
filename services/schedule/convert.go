package schedule

import "time"

// hhmm is the wall-clock layout used across the schedule ("09:00").
// Zero-padded, so lexicographic comparison is chronological.
const hhmm = "15:04"

// easternTZ is the fixed civil timezone schedule times are authored in.
var easternTZ = mustLoadEastern()

func mustLoadEastern() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic("schedule: tzdata for America/New_York unavailable: " + err.Error())
	}
	return loc
}

// NormalizeHHMM parses a wall-clock time string and re-renders it
// zero-padded. It reports false for anything unparseable.
func NormalizeHHMM(s string) (string, bool) {
	t, err := time.Parse(hhmm, s)
	if err != nil {
		return "", false
	}
	return t.Format(hhmm), true
}

// ConvertETToUTC converts an "HH:MM" wall-clock time in US Eastern,
// on the clock's current date, to the equivalent "HH:MM" in UTC. The
// date matters: Eastern alternates between EST and EDT, so the offset
// comes from the zone database for that day, never a fixed constant.
//
// Empty or unparseable input yields "" — the editor layer treats that
// as "no time set", so conversion never errors.
func ConvertETToUTC(clock Clock, s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse(hhmm, s)
	if err != nil {
		return ""
	}
	now := clock.Now().In(easternTZ)
	et := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, easternTZ)
	return et.UTC().Format(hhmm)
}

// ConvertUTCToET is the inverse of ConvertETToUTC for the same date,
// used when re-rendering stored UTC bounds in the editor's timezone.
func ConvertUTCToET(clock Clock, s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse(hhmm, s)
	if err != nil {
		return ""
	}
	now := clock.Now().UTC()
	utc := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
	return utc.In(easternTZ).Format(hhmm)
}
