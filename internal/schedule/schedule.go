package schedule

import (
	"fmt"
	"strings"
	"time"
)

// ClockTime is a time of day, independent of any date.
type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// Minutes returns the minutes elapsed since midnight.
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// MealWindow is a named serving interval. Start is inclusive, End exclusive.
type MealWindow struct {
	Name  string    `json:"name"`
	Start ClockTime `json:"start"`
	End   ClockTime `json:"end"`
}

// Both tables hold exactly four windows in serving order. Navigation relies
// on that count for its wraparound arithmetic.
var weekday = []MealWindow{
	{Name: "Breakfast", Start: ClockTime{7, 0}, End: ClockTime{9, 30}},
	{Name: "Lunch", Start: ClockTime{11, 30}, End: ClockTime{13, 30}},
	{Name: "Snacks", Start: ClockTime{16, 30}, End: ClockTime{17, 30}},
	{Name: "Dinner", Start: ClockTime{19, 30}, End: ClockTime{21, 0}},
}

var weekend = []MealWindow{
	{Name: "Breakfast", Start: ClockTime{7, 30}, End: ClockTime{9, 30}},
	{Name: "Lunch", Start: ClockTime{12, 0}, End: ClockTime{14, 0}},
	{Name: "Snacks", Start: ClockTime{16, 30}, End: ClockTime{17, 30}},
	{Name: "Dinner", Start: ClockTime{19, 30}, End: ClockTime{21, 0}},
}

// ForDate returns the serving schedule for the given date's weekday.
func ForDate(t time.Time) []MealWindow {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return weekend
	default:
		return weekday
	}
}

// DayKey returns the lowercase english day name used as the menu lookup key.
func DayKey(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// Offset returns the calendar date `days` away from t, at t's clock time.
func Offset(t time.Time, days int) time.Time {
	return time.Date(
		t.Year(), t.Month(), t.Day()+days,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		t.Location(),
	)
}

// DaysBetween returns the signed calendar-day difference from a to b.
// It compares dates, not raw durations, so month and year rollovers are
// handled correctly.
func DaysBetween(a, b time.Time) int {
	start := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
