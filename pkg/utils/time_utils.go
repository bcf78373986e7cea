package utils

import "time"

const secondsPerDay = 86400

// Epoch seconds everywhere; DB columns store the same unit.
func NowUnixSeconds() int64 { return time.Now().Unix() }

// DaysRemainingAt counts the days left until endsAt, rounding partial days up
// and flooring at 0 once endsAt has passed.
func DaysRemainingAt(endsAt, now int64) int {
	if now >= endsAt {
		return 0
	}
	return int((endsAt - now + secondsPerDay - 1) / secondsPerDay)
}

// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).UTC()
}

func FormatRFC3339(t int64) string {
	ts := FromUnixSeconds(t)
	if ts.IsZero() {
		return ""
	}
	return ts.Format(time.RFC3339)
}
