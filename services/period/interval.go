// File: services/period/interval.go
package period

import "time"

// allowedGapsInMinutes are the bookable consultation lengths.
var allowedGapsInMinutes = map[int64]bool{30: true, 60: true, 90: true, 120: true}

// IsValidTimeGap reports whether [startTime, endTime) spans one of the
// allowed consultation lengths. Times are epoch milliseconds.
func IsValidTimeGap(startTime, endTime int64) bool {
	if endTime <= startTime {
		return false
	}
	diffMillis := endTime - startTime
	if diffMillis%(60*1000) != 0 {
		return false
	}
	return allowedGapsInMinutes[diffMillis/(60*1000)]
}

// IsBoldTime reports whether the timestamp sits exactly on a 0 or 30 minute
// mark, with no seconds or milliseconds.
func IsBoldTime(timestamp int64) bool {
	t := time.UnixMilli(timestamp).UTC()
	minutes := t.Minute()
	return (minutes == 0 || minutes == 30) && t.Second() == 0 && t.Nanosecond() == 0
}

// IsSameDayInZone reports whether start and end fall on the same calendar
// date in the given IANA timezone. An unknown zone fails closed.
func IsSameDayInZone(startTime, endTime int64, timeZone string) bool {
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return false
	}
	start := time.UnixMilli(startTime).In(loc)
	end := time.UnixMilli(endTime).In(loc)

	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	return sy == ey && sm == em && sd == ed
}
