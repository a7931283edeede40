package state

// Entry is one target's last confirmed reachability.
type Entry struct {
	URL string `json:"url"`
	Up  bool   `json:"up"`
}

// Store holds the last confirmed up/down state per target. The set of
// targets is fixed at construction; Set on an unknown URL is a no-op so the
// one-entry-per-target invariant holds for the process lifetime.
type Store interface {
	// Up returns the stored state for url. Unknown URLs read as down.
	Up(url string) bool
	// Set records a confirmed state for url.
	Set(url string, up bool)
	// Snapshot returns all entries in the configured target order.
	Snapshot() []Entry
}
