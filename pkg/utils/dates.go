package utils

import (
	"strings"
	"time"
)

// InvalidDate is the sentinel emitted when an order date cannot be parsed.
// It flows into the report where the red-cell styling makes it visible.
const InvalidDate = "INVALID_DATE"

// dateLayouts covers the date formats seen across the four channel exports.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"2006/1/2",
	"2006-1-2",
	time.RFC3339,
}

// FormatDateYYYYMMDD parses a vendor-supplied date string and formats it as
// YYYYMMDD. Unparseable input yields InvalidDate rather than an error; a bad
// date on one row must not abort the batch.
func FormatDateYYYYMMDD(orderTime string) string {
	cleaned := strings.TrimSpace(orderTime)
	if cleaned == "" {
		return InvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.Format("20060102")
		}
	}
	return InvalidDate
}

// CurrentDateYYYYMMDD returns today's date in report format. MIXX exports
// carry no order date, so the day the file is processed is used.
func CurrentDateYYYYMMDD() string {
	return time.Now().Format("20060102")
}

// IsValidDateString reports whether a formatted date is usable.
func IsValidDateString(dateStr string) bool {
	return dateStr != InvalidDate && len(dateStr) == 8
}
