package model

import (
	"testing"
	"time"
)

func TestIsFresh(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    time.Time
		expected bool
	}{
		{"same instant", now, true},
		{"eleven hours ago", now.Add(-11 * time.Hour), true},
		{"eleven hours ahead", now.Add(11 * time.Hour), true},
		{"exactly twelve hours ago", now.Add(-12 * time.Hour), true},
		{"exactly twelve hours ahead", now.Add(12 * time.Hour), true},
		{"just over twelve hours ago", now.Add(-12*time.Hour - time.Second), false},
		{"just over twelve hours ahead", now.Add(12*time.Hour + time.Second), false},
		{"yesterday morning", now.Add(-30 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFresh(tt.start, now); got != tt.expected {
				t.Errorf("IsFresh(%v, %v) = %v, expected %v", tt.start, now, got, tt.expected)
			}
		})
	}
}

func TestFormatScheduleTimeIn(t *testing.T) {
	stockholm := time.FixedZone("CET", 1*60*60)

	tests := []struct {
		name     string
		t        time.Time
		loc      *time.Location
		expected string
	}{
		{
			name:     "utc morning",
			t:        time.Date(2024, time.March, 10, 7, 5, 0, 0, time.UTC),
			loc:      time.UTC,
			expected: "March 10    08 : 05",
		},
		{
			name:     "converted to local zone",
			t:        time.Date(2024, time.January, 2, 9, 30, 0, 0, time.UTC),
			loc:      stockholm,
			expected: "January 2    11 : 30",
		},
		{
			name:     "late evening shows hour twenty four",
			t:        time.Date(2024, time.December, 31, 23, 45, 0, 0, time.UTC),
			loc:      time.UTC,
			expected: "December 31    24 : 45",
		},
		{
			name:     "midnight",
			t:        time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			loc:      time.UTC,
			expected: "June 1    01 : 00",
		},
		{
			name:     "zero time renders empty",
			t:        time.Time{},
			loc:      time.UTC,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatScheduleTimeIn(tt.t, tt.loc); got != tt.expected {
				t.Errorf("formatScheduleTimeIn() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestProgram_FormattedTimes(t *testing.T) {
	start := time.Date(2024, time.March, 10, 7, 5, 0, 0, time.Local)
	p := &Program{Name: "Ekot", StartTime: start, EndTime: start.Add(15 * time.Minute)}

	if got := p.FormattedStart(); got != "March 10    08 : 05" {
		t.Errorf("FormattedStart() = %q", got)
	}
	if got := p.FormattedEnd(); got != "March 10    08 : 20" {
		t.Errorf("FormattedEnd() = %q", got)
	}
}

func TestProgram_HasDescription(t *testing.T) {
	if (&Program{}).HasDescription() {
		t.Error("Expected program without description to report none")
	}
	if !(&Program{Description: "News"}).HasDescription() {
		t.Error("Expected program with description to report it")
	}
}
