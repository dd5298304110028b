package navigation

import (
	"testing"
	"time"
)

// 2026-08-26 is a Wednesday.
func fixedClock(hh, mm int) func() time.Time {
	t := time.Date(2026, time.August, 26, hh, mm, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func TestNewMachineStartsLiveAtCurrentMeal(t *testing.T) {
	m := NewMachine(fixedClock(12, 30)) // inside weekday lunch

	got := m.State()
	want := State{DayOffset: 0, MealIndex: 1, IsLive: true}
	if got != want {
		t.Fatalf("initial state = %+v, want %+v", got, want)
	}
}

func TestNextWrapsIntoFollowingDay(t *testing.T) {
	m := NewMachine(fixedClock(20, 0)) // dinner, meal index 3

	got := m.Next()
	want := State{DayOffset: 1, MealIndex: 0, IsLive: false}
	if got != want {
		t.Fatalf("Next() = %+v, want %+v", got, want)
	}
}

func TestPreviousWrapsIntoPriorDay(t *testing.T) {
	m := NewMachine(fixedClock(8, 0)) // breakfast, meal index 0

	got := m.Previous()
	want := State{DayOffset: -1, MealIndex: 3, IsLive: false}
	if got != want {
		t.Fatalf("Previous() = %+v, want %+v", got, want)
	}
}

func TestManualNavigationClearsLive(t *testing.T) {
	m := NewMachine(fixedClock(12, 30))

	if got := m.Next(); got.IsLive {
		t.Error("Next must clear live tracking")
	}
	m.GoLive()
	if got := m.Previous(); got.IsLive {
		t.Error("Previous must clear live tracking")
	}
}

func TestNextPreviousRoundTrip(t *testing.T) {
	m := NewMachine(fixedClock(12, 30))
	start := m.State()

	m.Next()
	got := m.Previous()
	if got.DayOffset != start.DayOffset || got.MealIndex != start.MealIndex {
		t.Fatalf("round trip ended at %+v, started at %+v", got, start)
	}
}

func TestGoLiveRecomputesAndDiscardsOffset(t *testing.T) {
	m := NewMachine(fixedClock(12, 30))

	// Wander several days away.
	for i := 0; i < 9; i++ {
		m.Next()
	}
	if m.State().DayOffset == 0 {
		t.Fatal("expected to have navigated away from today")
	}

	got := m.GoLive()
	want := State{DayOffset: 0, MealIndex: 1, IsLive: true}
	if got != want {
		t.Fatalf("GoLive() = %+v, want %+v", got, want)
	}
}

func TestJumpToSetsCalendarOffset(t *testing.T) {
	m := NewMachine(fixedClock(12, 30))
	m.Next() // pinned somewhere else first

	// Two calendar days ahead, across no boundary.
	got := m.JumpTo(time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC))
	want := State{DayOffset: 2, MealIndex: 0, IsLive: false}
	if got != want {
		t.Fatalf("JumpTo = %+v, want %+v", got, want)
	}
}

func TestJumpToAcrossMonthBoundary(t *testing.T) {
	// Clock pinned to Jan 31; target Feb 2 must be offset 2.
	clock := func() time.Time {
		return time.Date(2026, time.January, 31, 22, 0, 0, 0, time.UTC)
	}
	m := NewMachine(clock)

	got := m.JumpTo(time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC))
	want := State{DayOffset: 2, MealIndex: 0, IsLive: false}
	if got != want {
		t.Fatalf("JumpTo = %+v, want %+v", got, want)
	}
}

func TestTickOnlyActsWhenLive(t *testing.T) {
	m := NewMachine(fixedClock(8, 0)) // live, breakfast
	m.Next()                          // pinned on lunch

	pinned := m.State()
	got := m.Tick(time.Date(2026, time.August, 26, 20, 0, 0, 0, time.UTC))
	if got != pinned {
		t.Fatalf("tick moved a pinned session: %+v -> %+v", pinned, got)
	}
}

func TestTickFollowsClockWhenLive(t *testing.T) {
	m := NewMachine(fixedClock(8, 0)) // live, breakfast

	got := m.Tick(time.Date(2026, time.August, 26, 12, 0, 0, 0, time.UTC))
	want := State{DayOffset: 0, MealIndex: 1, IsLive: true}
	if got != want {
		t.Fatalf("Tick = %+v, want %+v", got, want)
	}

	// Same time again: no change.
	if again := m.Tick(time.Date(2026, time.August, 26, 12, 0, 30, 0, time.UTC)); again != want {
		t.Fatalf("repeat tick changed state: %+v", again)
	}
}

func TestManagerSessions(t *testing.T) {
	mgr := NewManager(fixedClock(12, 30))

	id, state := mgr.Create()
	if !state.IsLive || state.MealIndex != 1 {
		t.Fatalf("unexpected initial session state %+v", state)
	}

	m, ok := mgr.Get(id)
	if !ok {
		t.Fatal("session not found after create")
	}
	m.Next()

	mgr.Drop(id)
	if _, ok := mgr.Get(id); ok {
		t.Fatal("session still present after drop")
	}
}
