package navigation

import (
	"sync"
	"time"

	"github.com/prasannardyy/Messmate/internal/schedule"
)

// State is the full navigation position. Live means the displayed meal
// tracks the wall clock; any manual navigation pins the view and clears it.
type State struct {
	DayOffset int  `json:"day_offset"`
	MealIndex int  `json:"meal_index"`
	IsLive    bool `json:"is_live"`
}

// Machine transitions navigation state in response to user actions and
// clock ticks. The clock is injected so tests can pin it.
type Machine struct {
	mu    sync.Mutex
	now   func() time.Time
	state State
}

// NewMachine starts at today's current-or-next meal in live mode.
func NewMachine(now func() time.Time) *Machine {
	if now == nil {
		now = time.Now
	}
	m := &Machine{now: now}
	pos, err := schedule.ResolveCurrentOrNext(now(), 0)
	if err != nil {
		pos = schedule.Position{}
	}
	m.state = State{DayOffset: pos.DayOffset, MealIndex: pos.MealIndex, IsLive: true}
	return m
}

// State returns the current navigation position.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Next advances to the following meal, rolling into the next day after the
// last window. Manual navigation always detaches from live tracking.
func (m *Machine) Next() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	last := m.scheduleLength() - 1
	if m.state.MealIndex >= last {
		m.state = State{DayOffset: m.state.DayOffset + 1, MealIndex: 0}
	} else {
		m.state = State{DayOffset: m.state.DayOffset, MealIndex: m.state.MealIndex + 1}
	}
	return m.state
}

// Previous steps back one meal, rolling into the prior day before the
// first window.
func (m *Machine) Previous() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.MealIndex == 0 {
		m.state = State{DayOffset: m.state.DayOffset - 1, MealIndex: m.scheduleLength() - 1}
	} else {
		m.state = State{DayOffset: m.state.DayOffset, MealIndex: m.state.MealIndex - 1}
	}
	return m.state
}

// GoLive snaps back to the wall clock, discarding wherever the user had
// navigated to.
func (m *Machine) GoLive() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	pos, err := schedule.ResolveCurrentOrNext(m.now(), 0)
	if err != nil {
		return m.state
	}
	m.state = State{DayOffset: pos.DayOffset, MealIndex: pos.MealIndex, IsLive: true}
	return m.state
}

// JumpTo pins the view on the first meal of the target calendar date.
func (m *Machine) JumpTo(target time.Time) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	off := schedule.DaysBetween(m.now(), target)
	m.state = State{DayOffset: off, MealIndex: 0}
	return m.state
}

// Tick re-resolves the live position. It is a no-op for pinned sessions
// and when the resolver agrees with the current state, so it is safe to
// drive every second.
func (m *Machine) Tick(now time.Time) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.IsLive {
		return m.state
	}

	pos, err := schedule.ResolveCurrentOrNext(now, 0)
	if err != nil {
		return m.state
	}
	if pos.DayOffset != m.state.DayOffset || pos.MealIndex != m.state.MealIndex {
		m.state = State{DayOffset: pos.DayOffset, MealIndex: pos.MealIndex, IsLive: true}
	}
	return m.state
}

// scheduleLength is the window count for the day currently in view.
// Both tables hold four meals, but the length is derived rather than
// hardcoded so the wraparound stays correct if the tables ever diverge.
func (m *Machine) scheduleLength() int {
	day := schedule.Offset(m.now(), m.state.DayOffset)
	return len(schedule.ForDate(day))
}
