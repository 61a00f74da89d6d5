package calc

import (
	"time"

	"github.com/google/uuid"
)

// DefaultHistoryCapacity is the number of committed calculations kept.
const DefaultHistoryCapacity = 20

// Entry is one committed calculation. Entries are never modified after
// Record returns them.
type Entry struct {
	ID         string    `json:"id" yaml:"id"`
	Expression string    `json:"expression" yaml:"expression"`
	Result     string    `json:"result" yaml:"result"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// History is a bounded newest-first log of entries.
type History struct {
	entries  []Entry
	capacity int
}

// NewHistory creates a history holding at most capacity entries. A
// non-positive capacity selects DefaultHistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &History{capacity: capacity}
}

// Record prepends a new entry, evicting the oldest beyond capacity.
func (h *History) Record(expression, result string) Entry {
	e := Entry{
		ID:         uuid.New().String(),
		Expression: expression,
		Result:     result,
		CreatedAt:  time.Now(),
	}

	entries := make([]Entry, 0, min(len(h.entries)+1, h.capacity))
	entries = append(entries, e)
	for _, old := range h.entries {
		if len(entries) == h.capacity {
			break
		}
		entries = append(entries, old)
	}
	h.entries = entries
	return e
}

// Clear removes every entry.
func (h *History) Clear() {
	h.entries = nil
}

// All returns a copy of the entries, newest first.
func (h *History) All() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Capacity returns the maximum number of entries kept.
func (h *History) Capacity() int {
	return h.capacity
}

// Get looks up an entry by ID.
func (h *History) Get(id string) (Entry, bool) {
	for _, e := range h.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
