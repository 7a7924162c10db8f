package chess

import "testing"

func TestHeadersPreservesInsertionOrder(t *testing.T) {
	h := NewHeaders()
	h.Set("Event", "Test Open")
	h.Set("Site", "Somewhere")
	h.Set("White", "Alice")
	h.Set("Event", "Test Open Updated") // re-set should not move it

	want := []string{"Event", "Site", "White"}
	got := h.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if v, _ := h.Get("Event"); v != "Test Open Updated" {
		t.Errorf("Get(Event) = %q, want updated value", v)
	}
}

func TestHeadersDelete(t *testing.T) {
	h := NewHeaders()
	h.Set("A", "1")
	h.Set("B", "2")
	h.Delete("A")
	if _, ok := h.Get("A"); ok {
		t.Error("A should be gone after Delete")
	}
	if got := h.Keys(); len(got) != 1 || got[0] != "B" {
		t.Errorf("Keys() = %v, want [B]", got)
	}
}

func TestHeadersConvenienceAccessors(t *testing.T) {
	h := NewHeaders()
	h.Set("White", "Alice")
	h.Set("Black", "Bob")
	h.Set("Result", "1-0")
	if h.White() != "Alice" || h.Black() != "Bob" || h.Result() != "1-0" {
		t.Errorf("convenience accessors mismatch: %+v", h)
	}
}
