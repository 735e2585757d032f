// Package pomodoro maps wall-clock time onto a fixed cycle of fifteen-minute slots.
package pomodoro

import (
	"fmt"
	"time"

	"github.com/bjulian5/menubar/internal/bitbar"
)

// Mode is the activity for one slot
type Mode string

const (
	Work    Mode = "work"
	Break   Mode = "break"
	Regroup Mode = "regroup"
)

// Slot is the length of one schedule entry
const Slot = 15 * time.Minute

// Schedule repeats forever from the epoch
var Schedule = []Mode{Work, Work, Break, Break, Regroup, Work, Work, Regroup}

var glyphs = map[Mode]string{
	Work:    "⏳",
	Break:   "🍷",
	Regroup: "📝",
}

// Glyph returns the menu-bar symbol for m
func (m Mode) Glyph() string {
	return glyphs[m]
}

// Epoch anchors slot 0 at 2021-01-01 00:00 in loc
func Epoch(loc *time.Location) time.Time {
	return time.Date(2021, 1, 1, 0, 0, 0, 0, loc)
}

// ModeAt returns the mode of slot i. Negative slots wrap around.
func ModeAt(i int) Mode {
	n := len(Schedule)
	return Schedule[((i%n)+n)%n]
}

// Status is the clock state at one instant
type Status struct {
	Index     int
	Mode      Mode
	Left      int // whole minutes until the current slot ends
	Remaining int // minutes until the mode changes, capped at one extra slot
	NextAt    time.Time
}

// wallClock reinterprets t's local date and time in UTC, so differences ignore
// daylight-saving shifts.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// At computes the status for now. Slots follow the wall clock: the same local
// time of day maps to the same slot in summer and winter.
func At(now time.Time) Status {
	elapsed := wallClock(now).Sub(Epoch(time.UTC))
	index := int(elapsed / Slot)
	left := int(Slot/time.Minute) - int(elapsed/time.Minute)%int(Slot/time.Minute)

	s := Status{
		Index:     index,
		Mode:      ModeAt(index),
		Left:      left,
		Remaining: left,
		NextAt:    now.Add(time.Duration(left) * time.Minute),
	}
	if s.Mode == ModeAt(index+1) {
		s.Remaining += int(Slot / time.Minute)
	}
	return s
}

// Lines renders the clock and the next two slots
func Lines(now time.Time) []bitbar.Line {
	s := At(now)
	lines := []bitbar.Line{
		{Text: fmt.Sprintf("%s %d", s.Mode.Glyph(), s.Remaining)},
		{Text: bitbar.Separator},
		{Text: "Next:"},
	}
	at := s.NextAt
	for i := 1; i <= 2; i++ {
		lines = append(lines, bitbar.Line{Text: fmt.Sprintf("  %s %s", at.Format("15:04"), ModeAt(s.Index+i))})
		at = at.Add(Slot)
	}
	return lines
}
