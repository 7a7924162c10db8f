package chess

import "golang.org/x/exp/maps"

// Headers is an ordered key/value store for PGN tag pairs. Insertion order
// is preserved; re-setting an existing key updates its value in place
// without moving it.
type Headers struct {
	order []string
	vals  map[string]string
}

// NewHeaders returns an empty, ready-to-use Headers.
func NewHeaders() *Headers {
	return &Headers{vals: make(map[string]string)}
}

// Get returns the value for key and whether it was present.
func (h *Headers) Get(key string) (string, bool) {
	if h == nil || h.vals == nil {
		return "", false
	}
	v, ok := h.vals[key]
	return v, ok
}

// Value returns the value for key, or "" if absent. It is a convenience
// accessor over Get for the common case where callers don't need the
// presence bit.
func (h *Headers) Value(key string) string {
	v, _ := h.Get(key)
	return v
}

// Set assigns value to key, appending key to the iteration order the first
// time it is seen.
func (h *Headers) Set(key, value string) {
	if h.vals == nil {
		h.vals = make(map[string]string)
	}
	if _, exists := h.vals[key]; !exists {
		h.order = append(h.order, key)
	}
	h.vals[key] = value
}

// Delete removes key, if present.
func (h *Headers) Delete(key string) {
	if _, ok := h.vals[key]; !ok {
		return
	}
	delete(h.vals, key)
	for i, k := range h.order {
		if k == key {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// Keys returns the header keys in insertion order.
func (h *Headers) Keys() []string {
	out := make([]string, len(h.order))
	copy(out, h.order)
	return out
}

// Len returns the number of headers.
func (h *Headers) Len() int {
	return len(h.order)
}

// unorderedKeys returns the header keys in map iteration order, for
// attaching as structured-log context when BuildGame finishes building a
// tree; debug logging doesn't care about key order, so the cost of
// golang.org/x/exp/maps.Keys's allocation is acceptable there.
func (h *Headers) unorderedKeys() []string {
	return maps.Keys(h.vals)
}

// Event, Site, Date, Round, White, Black, and Result are the standard
// "Seven Tag Roster" convenience accessors.
func (h *Headers) Event() string  { return h.Value("Event") }
func (h *Headers) Site() string   { return h.Value("Site") }
func (h *Headers) Date() string   { return h.Value("Date") }
func (h *Headers) Round() string  { return h.Value("Round") }
func (h *Headers) White() string  { return h.Value("White") }
func (h *Headers) Black() string  { return h.Value("Black") }
func (h *Headers) Result() string { return h.Value("Result") }
