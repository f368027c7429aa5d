package timer

import (
	"fmt"
	"time"
)

// Elapsed renders the time since start as HH:MM:SS for run summaries.
func Elapsed(start time.Time) string {
	return Format(time.Since(start))
}

// Format renders a duration as HH:MM:SS, rounded down to whole seconds.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := int64(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}
