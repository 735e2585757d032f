package circleci

import (
	"fmt"
	"math"
	"time"
)

// Ago describes how long before now t was, in coarse human buckets.
// A zero t or a t in the future yields "".
func Ago(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	diff := now.Sub(t)
	if diff < 0 {
		return ""
	}

	total := int64(diff / time.Second)
	days := total / 86400
	seconds := total % 86400

	switch {
	case days == 0 && seconds < 10:
		return "just now"
	case days == 0 && seconds < 60:
		return fmt.Sprintf("%d seconds ago", seconds)
	case days == 0 && seconds < 120:
		return "a minute ago"
	case days == 0 && seconds < 3600:
		return fmt.Sprintf("%d minutes ago", seconds/60)
	case days == 0 && seconds < 7200:
		return "an hour ago"
	case days == 0:
		return fmt.Sprintf("%.0f hours ago", math.RoundToEven(float64(seconds)/3600))
	case days == 1:
		return "yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 31:
		return fmt.Sprintf("%d weeks ago", days/7)
	case days < 365:
		return fmt.Sprintf("%d months ago", days/30)
	default:
		return fmt.Sprintf("%d years ago", days/365)
	}
}
