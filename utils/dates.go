// utils/dates.go
package utils

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrUnknownTimezone is returned when a schedule carries a timezone identifier
// the host timezone database does not recognize.
var ErrUnknownTimezone = errors.New("unknown timezone")

// ResolveLocalTime converts a UTC instant into a user's local wall-clock time
// ("HH:MM", 24h) and long weekday name ("Monday"). Conversion is delegated to
// the timezone database so daylight-saving shifts are handled.
func ResolveLocalTime(instant time.Time, timezone string) (string, string, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return "", "", fmt.Errorf("%w %q: %v", ErrUnknownTimezone, timezone, err)
	}
	local := instant.In(loc)
	return local.Format("15:04"), local.Weekday().String(), nil
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// PreviousWeekRange returns the Monday and Sunday of the week before t.
func PreviousWeekRange(t time.Time) (time.Time, time.Time) {
	day := int(t.Weekday())
	if day == 0 {
		day = 7
	}
	prevSun := BeginningOfDay(t).AddDate(0, 0, -day)
	prevMon := prevSun.AddDate(0, 0, -6)
	return prevMon, prevSun
}

// WeekNumber returns the 1-based week of the year containing t.
func WeekNumber(t time.Time) int {
	firstDay := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	pastDays := t.Sub(firstDay).Hours() / 24
	return int(math.Ceil((pastDays + float64(firstDay.Weekday()) + 1) / 7))
}
