package utils

import (
	"strings"
	"time"
)

const (
	layoutDate        = "2006-01-02"
	layoutDateTime    = "2006-01-02 15:04:05"
	layoutDisplayDate = "02/01/2006"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}

// FormatDisplayDate formats time as DD/MM/YYYY for printed documents.
func FormatDisplayDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDisplayDate)
}
