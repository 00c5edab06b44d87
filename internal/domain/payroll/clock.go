package payroll

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock is a time of day with minute precision. Shift times carry no date and
// no timezone; the store records only when the clock was punched.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock accepts "HH:MM" or "HH:MM:SS" (seconds are discarded).
func ParseClock(value string) (Clock, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return Clock{}, fmt.Errorf("invalid clock time %q", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return Clock{}, fmt.Errorf("invalid clock time %q", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return Clock{}, fmt.Errorf("invalid clock time %q", value)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("clock time %q out of range", value)
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

func (c Clock) MinutesSinceMidnight() int {
	return c.Hour*60 + c.Minute
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// DurationMinutes returns the elapsed minutes from start to finish. A finish
// earlier than its start means the shift ran past midnight, so a day is added
// before differencing. Equal times yield zero.
func DurationMinutes(start, finish Clock) int {
	minutes := finish.MinutesSinceMidnight() - start.MinutesSinceMidnight()
	if minutes < 0 {
		minutes += 24 * 60
	}
	return minutes
}

// DurationHours is DurationMinutes expressed as fractional hours.
func DurationHours(start, finish Clock) float64 {
	return float64(DurationMinutes(start, finish)) / 60
}
