// Package dateutils parses the date layouts found in Japanese financial exports.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/width"
)

// Common date layouts
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutSlash     = "2006/1/2"
	DateLayoutShortYear = "06/1/2"
	DateLayoutKanji     = "2006年1月2日"
	DateLayoutCompact   = "20060102"
	DateLayoutFull      = "2006/1/2 15:04:05"
)

// CommonFormats is the list of layouts tried by ParseDate, in order.
// time.Parse accepts two digit months and days for the single digit layouts.
var CommonFormats = []string{
	DateLayoutSlash,
	DateLayoutISO,
	DateLayoutKanji,
	DateLayoutFull,
	DateLayoutCompact,
	DateLayoutShortYear,
}

var spaces = regexp.MustCompile(`\s+`)

// ParseDate attempts to parse a date string using the common layouts.
// Returns the parsed time and the detected layout.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)
	if dateStr == "" {
		return time.Time{}, "", fmt.Errorf("date is empty")
	}

	for _, format := range CommonFormats {
		if t, err := time.ParseInLocation(format, dateStr, time.Local); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// CleanDateString narrows full width characters and collapses whitespace.
func CleanDateString(dateStr string) string {
	dateStr = width.Narrow.String(dateStr)
	dateStr = strings.TrimSpace(dateStr)
	return spaces.ReplaceAllString(dateStr, " ")
}
