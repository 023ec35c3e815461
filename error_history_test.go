package vary

import (
	"errors"
	"testing"
)

func TestErrorHistory_NilSafe(t *testing.T) {
	var h *errorHistory

	h.push(errors.New("test"))
	h.clear()

	if h.all() != nil {
		t.Error("expected nil from nil history")
	}
}

func TestErrorHistory_Disabled(t *testing.T) {
	if newErrorHistory(0) != nil {
		t.Error("expected nil history for size 0")
	}
	if newErrorHistory(-1) != nil {
		t.Error("expected nil history for negative size")
	}
}

func TestErrorHistory_EvictsOldest(t *testing.T) {
	h := newErrorHistory(3)
	for _, msg := range []string{"e1", "e2", "e3", "e4"} {
		h.push(errors.New(msg))
	}

	errs := h.all()
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d", len(errs))
	}
	for i, want := range []string{"e2", "e3", "e4"} {
		if errs[i].Error() != want {
			t.Errorf("errs[%d] = %q, want %q", i, errs[i], want)
		}
	}
}

func TestErrorHistory_Clear(t *testing.T) {
	h := newErrorHistory(2)
	h.push(errors.New("e1"))
	h.clear()

	if h.all() != nil {
		t.Error("expected nil after clear")
	}

	h.push(errors.New("e2"))
	if errs := h.all(); len(errs) != 1 || errs[0].Error() != "e2" {
		t.Errorf("expected [e2] after reuse, got %v", errs)
	}
}

func TestErrorHistory_ReturnsCopy(t *testing.T) {
	h := newErrorHistory(2)
	h.push(errors.New("e1"))

	errs := h.all()
	errs[0] = nil

	if h.all()[0] == nil {
		t.Error("expected history unaffected by mutation of returned slice")
	}
}
