package category

// PinRef replaces the ticket reference generator, for tests.
func PinRef(h *Issue, fn func() string) {
	h.newRef = fn
}
