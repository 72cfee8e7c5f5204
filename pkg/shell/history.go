package shell

import (
	"iter"
	"slices"
)

// History is the bounded log of submitted command lines, oldest first.
type History struct {
	entries []string
}

func NewHistory() *History {
	return &History{}
}

// Record appends line and evicts the oldest entry when the buffer grows past
// capacity. At most one entry is evicted per call, so shrinking the capacity
// below the current length trims the buffer one line at a time.
func (h *History) Record(line string, capacity int) {
	h.entries = append(h.entries, line)

	if len(h.entries) > capacity {
		h.entries = slices.Delete(h.entries, 0, 1)
	}
}

// All yields the entries oldest first. Each iteration walks the buffer as it
// is at that moment.
func (h *History) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, line := range h.entries {
			if !yield(line) {
				return
			}
		}
	}
}
