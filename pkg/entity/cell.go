package entity

// Cell lazily initializes an entity from inside a render closure.
//
// Render closures run every frame, but the state they use must be
// created exactly once. A Cell is declared outside the closure and
// initialized on the first GetOrInit inside it:
//
//	counter := &entity.Cell[Counter]{}
//	render := func() {
//		h := counter.GetOrInit(func() Counter { return Counter{} })
//		n, _ := entity.Observe(h, func(c *Counter) int { return c.Count })
//		_ = n
//	}
type Cell[T any] struct {
	handle Handle[T]
	ready  bool
}

// GetOrInit returns the cell's handle, creating the entity in the
// current store on first call.
//
// Panics when first called outside a frame, same as New.
func (c *Cell[T]) GetOrInit(init func() T) Handle[T] {
	if !c.ready {
		c.handle = New(init())
		c.ready = true
	}
	return c.handle
}

// Initialized reports whether the entity has been created.
func (c *Cell[T]) Initialized() bool {
	return c.ready
}

// Get returns the handle if the entity has been created.
func (c *Cell[T]) Get() (Handle[T], bool) {
	return c.handle, c.ready
}
