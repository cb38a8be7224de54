package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback.
// Used when applying partial booking edits over the stored state.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
