// Package countdown renders the number of days until (or since) an anniversary.
package countdown

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// DefaultDate is the anniversary shown when none is configured
const DefaultDate = "2022-08-05"

// DateLayout is the accepted --date format
const DateLayout = time.DateOnly

// DefaultGlyph marks an ordinary day
const DefaultGlyph = "Δ"

// Celebrations are drawn from on milestone days
var Celebrations = []string{
	"‼️", "⚡️", "✨", "❗️", "🌶", "🍆", "🍭", "🍷",
	"🍸", "🍹", "🍻", "🍾", "🎁", "🎈", "🎉", "🎊",
	"🎖", "🏆", "🏆", "🏝", "👜", "💆‍♀️", "💎", "💡",
	"💫", "💯", "🔥", "😭", "🥂", "🥃", "🥊", "🧨",
}

// Picker chooses an index in [0, n)
type Picker interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DefaultPicker draws from the process-wide random source
var DefaultPicker Picker = globalRand{}

// ParseDate parses an anniversary in YYYY-MM-DD form in loc
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse anniversary date %q: %w", s, err)
	}
	return t, nil
}

// Days counts calendar days from today to the anniversary. Negative once it has passed.
func Days(anniversary, today time.Time) int {
	a := time.Date(anniversary.Year(), anniversary.Month(), anniversary.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(a.Sub(t).Hours() / 24)
}

// IsMilestone reports whether delta gets a celebratory glyph
func IsMilestone(delta int) bool {
	return delta < 5 || delta%5 == 0
}

// Format returns the menu-bar text for delta days
func Format(delta int, picker Picker) string {
	if !IsMilestone(delta) {
		return fmt.Sprintf("%s %d", DefaultGlyph, delta)
	}
	glyph := Celebrations[picker.IntN(len(Celebrations))]
	if delta < 0 {
		return fmt.Sprintf("%s +%d", glyph, -delta)
	}
	return fmt.Sprintf("%s %d", glyph, delta)
}
