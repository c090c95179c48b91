package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const ClockLayout = "15:04"

func AddTimeToDate(date time.Time, sourceTime time.Time) time.Time {
	newDateTime := time.Date(date.Year(), date.Month(), date.Day(), sourceTime.Hour(), sourceTime.Minute(), sourceTime.Second(), sourceTime.Nanosecond(), date.Location())

	return newDateTime
}

// ParseClock parses a 24 hour "HH:MM" time of day. Single digit hours and minutes are accepted.
func ParseClock(value string) (hour int, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("clock %q is not in HH:MM format", value)
	}

	hour, err = parseClockField(parts[0], 23)
	if err != nil {
		return 0, 0, fmt.Errorf("clock %q has an invalid hour", value)
	}

	minute, err = parseClockField(parts[1], 59)
	if err != nil {
		return 0, 0, fmt.Errorf("clock %q has an invalid minute", value)
	}

	return hour, minute, nil
}

// parseClockField accepts one or two plain digits, no signs or spaces
func parseClockField(field string, limit int) (int, error) {
	if len(field) < 1 || len(field) > 2 {
		return 0, fmt.Errorf("field %q must have one or two digits", field)
	}
	for _, r := range field {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("field %q must only contain digits", field)
		}
	}

	number, err := strconv.Atoi(field)
	if err != nil {
		return 0, err
	}
	if number > limit {
		return 0, fmt.Errorf("field %q is above %d", field, limit)
	}

	return number, nil
}

// ClockOnDate returns the instant on date's calendar day at hour:minute:00
func ClockOnDate(date time.Time, hour int, minute int) time.Time {
	return AddTimeToDate(date, time.Date(0, 1, 1, hour, minute, 0, 0, date.Location()))
}

func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}
