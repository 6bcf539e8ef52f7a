package entity

// Computed caches the result of mapping an entity's state.
//
// Construction subscribes to the source entity; the subscription only
// flips a validity flag, it never recomputes. The next Get after an
// invalidation recomputes exactly once and re-caches.
//
//	doubled := entity.NewComputed(counter, func(c *Counter) int { return c.Count * 2 })
//	v, ok := doubled.Get()
//
// Close releases the subscription. Unlike handles there is no implicit
// cleanup, so callers that outlive the source should call it.
type Computed[T, R any] struct {
	source     Handle[T]
	mapper     func(*T) R
	value      R
	valid      bool
	sub        SubscriptionID
	subscribed bool
}

// NewComputed builds a computed value over source. When no frame
// context is active the subscription is skipped; Get still works but
// the cache is only invalidated manually.
func NewComputed[T, R any](source Handle[T], mapper func(*T) R) *Computed[T, R] {
	c := &Computed[T, R]{source: source, mapper: mapper}
	c.subscribed = TryWith(func(s *Store) {
		c.sub = s.Subscribe(source.ID(), c.Invalidate)
	})
	return c
}

// Get returns the cached value, recomputing from the source when the
// cache is invalid. Reports false when no frame context is active or
// the source handle is stale.
func (c *Computed[T, R]) Get() (R, bool) {
	if c.valid {
		return c.value, true
	}
	var (
		value R
		ok    bool
	)
	ran := TryWith(func(s *Store) {
		value, ok = ReadIn(s, c.source, c.mapper)
	})
	if !ran || !ok {
		var zero R
		return zero, false
	}
	c.value = value
	c.valid = true
	return value, true
}

// Invalidate marks the cache stale. The next Get recomputes.
func (c *Computed[T, R]) Invalidate() {
	c.valid = false
}

// IsValid reports whether the cache holds a current value.
func (c *Computed[T, R]) IsValid() bool {
	return c.valid
}

// SourceID returns the source entity's ID.
func (c *Computed[T, R]) SourceID() ID {
	return c.source.ID()
}

// Close releases the change subscription. Safe to call outside a frame
// context, where it is a soft no-op.
func (c *Computed[T, R]) Close() {
	if !c.subscribed {
		return
	}
	c.subscribed = false
	TryWith(func(s *Store) {
		s.Unsubscribe(c.sub)
	})
}

// Derive runs f, which may call Observe on any number of entities, and
// returns its result. Observation inside f registers those entities as
// frame dependencies the same way direct Observe calls do.
func Derive[R any](f func() R) R {
	return f()
}
