package schedule

import (
	"errors"
	"time"
)

// ErrInvalidTime is returned when the resolver receives a zero time.
var ErrInvalidTime = errors.New("invalid time for meal resolution")

// Position locates a meal: an index into the day's schedule plus a signed
// day offset relative to today.
type Position struct {
	MealIndex int `json:"meal_index"`
	DayOffset int `json:"day_offset"`
}

// ResolveCurrentOrNext finds the meal being served right now, or failing
// that the next meal today. Past the last window it deliberately falls back
// to today's first meal rather than rolling over to tomorrow. For any
// non-zero day offset the time of day is ignored and the day's first meal
// is returned.
func ResolveCurrentOrNext(now time.Time, dayOffset int) (Position, error) {
	if now.IsZero() {
		return Position{}, ErrInvalidTime
	}

	if dayOffset != 0 {
		return Position{MealIndex: 0, DayOffset: dayOffset}, nil
	}

	windows := ForDate(now)
	minutes := now.Hour()*60 + now.Minute()

	for i, w := range windows {
		if minutes >= w.Start.Minutes() && minutes < w.End.Minutes() {
			return Position{MealIndex: i, DayOffset: 0}, nil
		}
	}

	for i, w := range windows {
		if minutes < w.Start.Minutes() {
			return Position{MealIndex: i, DayOffset: 0}, nil
		}
	}

	return Position{MealIndex: 0, DayOffset: 0}, nil
}
