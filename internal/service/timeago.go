package service

import (
	"fmt"
	"time"
)

// TimeAgo renders the elapsed time between t and now as a relative label:
// "42 seconds ago", "1 minute ago", "3 hours ago", "5 days ago",
// "2 months ago". Months are days/30 with no year tier.
func TimeAgo(t time.Time, now time.Time) string {
	seconds := int(now.Sub(t).Seconds())
	if seconds < 0 {
		seconds = 0
	}
	if seconds < 60 {
		return fmt.Sprintf("%d seconds ago", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%d %s ago", minutes, plural("minute", minutes))
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%d %s ago", hours, plural("hour", hours))
	}

	days := hours / 24
	if days < 30 {
		return fmt.Sprintf("%d %s ago", days, plural("day", days))
	}

	months := days / 30
	return fmt.Sprintf("%d %s ago", months, plural("month", months))
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
