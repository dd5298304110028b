package navigation

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager owns one Machine per client session and drives live sessions
// from a shared ticker.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Machine
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

func NewManager(now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{
		sessions: make(map[string]*Machine),
		now:      now,
		stop:     make(chan struct{}),
	}
}

// Create registers a new session starting at the live position.
func (mgr *Manager) Create() (string, State) {
	m := NewMachine(mgr.now)
	id := uuid.New().String()

	mgr.mu.Lock()
	mgr.sessions[id] = m
	mgr.mu.Unlock()

	return id, m.State()
}

// Get returns the machine for a session id.
func (mgr *Manager) Get(id string) (*Machine, bool) {
	mgr.mu.RLock()
	defer mgr.mu.RUnlock()
	m, ok := mgr.sessions[id]
	return m, ok
}

// Drop removes a session.
func (mgr *Manager) Drop(id string) {
	mgr.mu.Lock()
	delete(mgr.sessions, id)
	mgr.mu.Unlock()
}

// Run ticks every live session once per interval until Stop is called.
// Ticks are cheap and idempotent, so a one second interval is fine.
func (mgr *Manager) Run(interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-mgr.stop:
			return
		case <-ticker.C:
			mgr.tickAll()
		}
	}
}

// Stop terminates the Run loop.
func (mgr *Manager) Stop() {
	mgr.stopOnce.Do(func() { close(mgr.stop) })
}

func (mgr *Manager) tickAll() {
	now := mgr.now()

	mgr.mu.RLock()
	machines := make([]*Machine, 0, len(mgr.sessions))
	for _, m := range mgr.sessions {
		machines = append(machines, m)
	}
	mgr.mu.RUnlock()

	for _, m := range machines {
		m.Tick(now)
	}
}
