// path: reports/age.go
package reports

import (
	"fmt"
	"time"
)

// RelativeAge buckets the elapsed time since t into the Korean activity
// strings the clients render verbatim: seconds under a minute, minutes
// under an hour, hours under a day, days under 30, then months as
// floor(days/30). A t in the future (or unset) renders as "0초 전".
func RelativeAge(now, t time.Time) string {
	seconds := now.Sub(t).Seconds()
	if seconds < 0 {
		seconds = 0
	}
	switch {
	case seconds < 60:
		return fmt.Sprintf("%d초 전", int(seconds))
	case seconds < 3600:
		return fmt.Sprintf("%d분 전", int(seconds)/60)
	case seconds < 86400:
		return fmt.Sprintf("%d시간 전", int(seconds)/3600)
	default:
		days := int(seconds) / 86400
		if days < 30 {
			return fmt.Sprintf("%d일 전", days)
		}
		return fmt.Sprintf("%d달 전", days/30)
	}
}
