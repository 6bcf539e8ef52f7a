package entity

// Memo caches a value behind a caller-supplied version number. The
// compute closure runs when nothing is cached or the version differs
// from the cached one; derive the version from the memo's inputs.
type Memo[T any] struct {
	value   T
	cached  bool
	version uint64
}

// GetOrCompute returns the cached value, recomputing when the version
// changed or nothing is cached yet.
func (m *Memo[T]) GetOrCompute(version uint64, compute func() T) T {
	if !m.cached || m.version != version {
		m.value = compute()
		m.version = version
		m.cached = true
	}
	return m.value
}

// Invalidate drops the cached value.
func (m *Memo[T]) Invalidate() {
	var zero T
	m.value = zero
	m.cached = false
}

// IsCached reports whether a value is cached.
func (m *Memo[T]) IsCached() bool {
	return m.cached
}
