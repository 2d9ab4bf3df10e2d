package model

import (
	"fmt"
	"time"
)

// MeetingGraceSkew allows meetings only strictly later than now plus
// this buffer, so "in five minutes" never schedules into the past by
// the time the task lands.
const MeetingGraceSkew = 10 * time.Minute

// MeetingDetails is the structured record negotiated across turns.
// Fields stay nil until provided; a meeting is schedulable once date,
// time and duration are all set (title is optional).
type MeetingDetails struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`     // YYYY-MM-DD
	Time        string `json:"time,omitempty"`     // HH:MM, 24 hour
	Duration    int    `json:"duration,omitempty"` // minutes
}

// Missing returns the names of the required fields not yet provided.
func (m *MeetingDetails) Missing() []string {
	var missing []string
	if m.Date == "" {
		missing = append(missing, "date")
	}
	if m.Time == "" {
		missing = append(missing, "time")
	}
	if m.Duration == 0 {
		missing = append(missing, "duration")
	}
	return missing
}

// Complete reports whether date, time and duration are all present.
func (m *MeetingDetails) Complete() bool {
	return len(m.Missing()) == 0
}

// StartTime parses date+time in the given location.
func (m *MeetingDetails) StartTime(loc *time.Location) (time.Time, error) {
	if m.Date == "" || m.Time == "" {
		return time.Time{}, fmt.Errorf("meeting date/time not set")
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", m.Date+" "+m.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid meeting date/time %q %q: %w", m.Date, m.Time, err)
	}
	return t, nil
}

// InPast reports whether the meeting start falls before now plus the
// grace skew. Unparseable date/time counts as in the past so that the
// caller re-asks rather than scheduling garbage.
func (m *MeetingDetails) InPast(now time.Time, loc *time.Location) bool {
	start, err := m.StartTime(loc)
	if err != nil {
		return true
	}
	return !start.After(now.Add(MeetingGraceSkew))
}

// Merge copies non-empty fields from other into m.
func (m *MeetingDetails) Merge(other *MeetingDetails) {
	if other == nil {
		return
	}
	if other.Title != "" {
		m.Title = other.Title
	}
	if other.Description != "" {
		m.Description = other.Description
	}
	if other.Date != "" {
		m.Date = other.Date
	}
	if other.Time != "" {
		m.Time = other.Time
	}
	if other.Duration != 0 {
		m.Duration = other.Duration
	}
}

// ClearSchedule resets date and time for re-entry after a past-time
// rejection. Duration is kept.
func (m *MeetingDetails) ClearSchedule() {
	m.Date = ""
	m.Time = ""
}
