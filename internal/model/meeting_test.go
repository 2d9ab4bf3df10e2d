package model

import (
	"testing"
	"time"
)

func TestMeetingDetails_Missing(t *testing.T) {
	m := &MeetingDetails{}
	if got := len(m.Missing()); got != 3 {
		t.Errorf("expected 3 missing fields, got %d", got)
	}

	m.Date = "2025-06-02"
	m.Time = "15:00"
	missing := m.Missing()
	if len(missing) != 1 || missing[0] != "duration" {
		t.Errorf("expected only duration missing, got %v", missing)
	}

	m.Duration = 60
	if !m.Complete() {
		t.Errorf("expected complete meeting")
	}
}

func TestMeetingDetails_InPast(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date string
		tm   string
		want bool
	}{
		{"Clearly future", "2025-06-02", "15:00", false},
		{"Clearly past", "2025-05-31", "09:00", true},
		{"Within grace skew", "2025-06-01", "10:05", true},
		{"Exactly at skew boundary", "2025-06-01", "10:10", true},
		{"Just past skew boundary", "2025-06-01", "10:11", false},
		{"Unparseable date", "junk", "10:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &MeetingDetails{Date: tt.date, Time: tt.tm, Duration: 30}
			if got := m.InPast(now, time.UTC); got != tt.want {
				t.Errorf("InPast() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMeetingDetails_Merge(t *testing.T) {
	m := &MeetingDetails{Title: "Standup", Date: "2025-06-02"}
	m.Merge(&MeetingDetails{Time: "15:00", Duration: 60, Date: ""})

	if m.Title != "Standup" || m.Date != "2025-06-02" || m.Time != "15:00" || m.Duration != 60 {
		t.Errorf("merge result unexpected: %+v", m)
	}

	m.Merge(nil) // no-op
	if m.Time != "15:00" {
		t.Errorf("nil merge should not change fields")
	}
}

func TestMeetingDetails_ClearSchedule(t *testing.T) {
	m := &MeetingDetails{Date: "2025-06-02", Time: "15:00", Duration: 60}
	m.ClearSchedule()
	if m.Date != "" || m.Time != "" {
		t.Errorf("expected date/time cleared")
	}
	if m.Duration != 60 {
		t.Errorf("duration should survive a schedule reset")
	}
}

func TestScope_SessionKey(t *testing.T) {
	a := Scope{VisitorID: "alice", OwnerID: "bob"}
	b := Scope{VisitorID: "bob", OwnerID: "alice"}
	if a.SessionKey() == b.SessionKey() {
		t.Errorf("swapped visitor/owner must produce distinct session keys")
	}
}
