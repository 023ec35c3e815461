package vary

import "sync"

// errorHistory keeps the most recent errors, oldest first.
// A nil *errorHistory records nothing.
type errorHistory struct {
	mu     sync.Mutex
	limit  int
	errors []error
}

// newErrorHistory returns nil when limit is not positive.
func newErrorHistory(limit int) *errorHistory {
	if limit <= 0 {
		return nil
	}
	return &errorHistory{limit: limit, errors: make([]error, 0, limit)}
}

func (h *errorHistory) push(err error) {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.errors) == h.limit {
		copy(h.errors, h.errors[1:])
		h.errors = h.errors[:h.limit-1]
	}
	h.errors = append(h.errors, err)
}

func (h *errorHistory) clear() {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	clear(h.errors)
	h.errors = h.errors[:0]
}

func (h *errorHistory) all() []error {
	if h == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.errors) == 0 {
		return nil
	}
	out := make([]error, len(h.errors))
	copy(out, h.errors)
	return out
}
