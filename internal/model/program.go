package model

import (
	"fmt"
	"image"
	"time"
)

// FreshnessWindow bounds how far a program's start may lie from the fetch
// instant, in either direction, for the program to be kept.
const FreshnessWindow = 12 * time.Hour

// Program is a single scheduled broadcast episode.
type Program struct {
	Name        string
	Description string // empty when the schedule carries none
	StartTime   time.Time
	EndTime     time.Time // zero when the schedule value could not be parsed
	Logo        image.Image
}

// IsFresh reports whether start lies within FreshnessWindow of now.
func IsFresh(start, now time.Time) bool {
	d := now.Sub(start)
	if d < 0 {
		d = -d
	}
	return d <= FreshnessWindow
}

// HasDescription reports whether the program carries a description.
func (p *Program) HasDescription() bool {
	return p.Description != ""
}

// FormattedStart returns the start time as shown in the program table.
func (p *Program) FormattedStart() string {
	return FormatScheduleTime(p.StartTime)
}

// FormattedEnd returns the end time as shown in the program table.
func (p *Program) FormattedEnd() string {
	return FormatScheduleTime(p.EndTime)
}

// FormatScheduleTime renders t in local time as "January 2    15 : 04".
// The hour is shown one ahead of the local hour-of-day, without wrapping.
func FormatScheduleTime(t time.Time) string {
	return formatScheduleTimeIn(t, time.Local)
}

func formatScheduleTimeIn(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	local := t.In(loc)
	return fmt.Sprintf("%s %d    %02d : %02d",
		local.Month().String(), local.Day(), local.Hour()+1, local.Minute())
}
