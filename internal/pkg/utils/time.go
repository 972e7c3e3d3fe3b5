package utils

import (
	"errors"
	"strings"
	"time"
)

var errInvalidTimestamp = errors.New("timestamp is not a valid ISO-8601 date-time")

// Layouts without an offset are read in the caller supplied location.
var naiveTimestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func ParseISOTimestamp(value string, location *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errInvalidTimestamp
	}

	if parsed, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return parsed, nil
	}

	if location == nil {
		location = time.UTC
	}
	for _, layout := range naiveTimestampLayouts {
		if parsed, err := time.ParseInLocation(layout, value, location); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, errInvalidTimestamp
}

func IsValidISOTimestamp(value string) bool {
	_, err := ParseISOTimestamp(value, time.UTC)
	return err == nil
}
