package clock

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// UnavailableLabel is what a card displays when its zone cannot be
// formatted. The failure never removes the clock line, only degrades it.
const UnavailableLabel = "unavailable"

// Binding ties one rendered card to the zone whose time it displays.
type Binding struct {
	CardID   string
	TimeZone string
	Display  string
}

// Hub owns the set of live clock bindings. The set is swapped atomically
// whenever results are re-rendered, so cards that left the screen drop out
// of refresh scope without explicit unregistration. A card has at most one
// binding; duplicates by card id are ignored.
type Hub struct {
	log *zap.Logger
	now func() time.Time

	mu       sync.Mutex
	bindings []Binding
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		log: log,
		now: time.Now,
	}
}

// Replace swaps the active binding set, computes the initial display string
// for every new binding, and returns the refreshed set.
func (h *Hub) Replace(bindings []Binding) []Binding {
	next := make([]Binding, 0, len(bindings))
	seen := make(map[string]struct{}, len(bindings))
	for _, b := range bindings {
		if _, ok := seen[b.CardID]; ok {
			continue
		}
		seen[b.CardID] = struct{}{}
		next = append(next, b)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.bindings = next
	h.refreshLocked()

	return h.snapshotLocked()
}

func (h *Hub) Clear() {
	h.mu.Lock()
	h.bindings = nil
	h.mu.Unlock()
}

// RefreshAll recomputes the display string of every active binding in
// place. Repeated calls within the same wall-clock second produce the same
// strings; no formatting state accumulates.
func (h *Hub) RefreshAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.refreshLocked()
}

func (h *Hub) refreshLocked() {
	now := h.now()
	for i := range h.bindings {
		text, err := currentTimeAt(h.bindings[i].TimeZone, now)
		if err != nil {
			h.log.Warn("clock refresh failed",
				zap.String("card_id", h.bindings[i].CardID),
				zap.String("time_zone", h.bindings[i].TimeZone),
				zap.Error(err),
			)
			h.bindings[i].Display = UnavailableLabel
			continue
		}
		h.bindings[i].Display = text
	}
}

// Snapshot returns a copy of the active bindings in card order.
func (h *Hub) Snapshot() []Binding {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.snapshotLocked()
}

func (h *Hub) snapshotLocked() []Binding {
	out := make([]Binding, len(h.bindings))
	copy(out, h.bindings)

	return out
}

// Run drives the recurring refresh until the context ends. Ticks are
// handled on this one goroutine, so a slow pass delays the next tick
// rather than overlapping it.
func (h *Hub) Run(ctx context.Context, period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.RefreshAll()
		}
	}
}
