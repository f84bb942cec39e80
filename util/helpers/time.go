package helpers

import "time"

const layout = "2006-01-02 15:04:05.000000"

// ParseTime reads a timestamp written by FormatTime.
func ParseTime(timestamp string) (time.Time, error) {
	return time.ParseInLocation(layout, timestamp, time.UTC)
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(layout)
}
