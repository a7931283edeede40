package state

import "sync"

// Memory is the in-process Store. Every target starts out optimistic (up),
// so a target that is already down when the process starts produces a down
// alert on the first cycle, but a restart mid-outage stays silent until the
// target recovers and fails again.
type Memory struct {
	mu     sync.RWMutex
	order  []string
	lastUp map[string]bool
}

func NewMemory(targets []string) *Memory {
	m := &Memory{
		order:  make([]string, len(targets)),
		lastUp: make(map[string]bool, len(targets)),
	}
	copy(m.order, targets)
	for _, t := range targets {
		m.lastUp[t] = true
	}
	return m
}

func (m *Memory) Up(url string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastUp[url]
}

func (m *Memory) Set(url string, up bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.lastUp[url]; !ok {
		return
	}
	m.lastUp[url] = up
}

func (m *Memory) Snapshot() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Entry, 0, len(m.order))
	for _, u := range m.order {
		out = append(out, Entry{URL: u, Up: m.lastUp[u]})
	}
	return out
}
