package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputed_CachesUntilSourceChanges(t *testing.T) {
	s := NewStore()
	SetCurrent(s)
	defer ClearCurrent()

	h := New(counterState{value: 5})

	computeCount := 0
	doubled := NewComputed(h, func(c *counterState) int {
		computeCount++
		return c.value * 2
	})
	defer doubled.Close()

	v, ok := doubled.Get()
	require.True(t, ok)
	assert.Equal(t, 10, v)
	assert.True(t, doubled.IsValid())
	assert.Equal(t, 1, computeCount)

	// Repeated gets hit the cache.
	doubled.Get()
	doubled.Get()
	assert.Equal(t, 1, computeCount)

	// Mutation invalidates at the notification flush, not inline.
	Update(h, func(c *counterState) int { c.value = 10; return 0 })
	assert.True(t, doubled.IsValid())
	s.FlushNotifications()
	assert.False(t, doubled.IsValid())

	// Exactly one recompute for the whole invalidation.
	v, ok = doubled.Get()
	require.True(t, ok)
	assert.Equal(t, 20, v)
	doubled.Get()
	assert.Equal(t, 2, computeCount)
}

func TestComputed_ManualInvalidate(t *testing.T) {
	s := NewStore()
	SetCurrent(s)
	defer ClearCurrent()

	h := New(counterState{value: 5})
	doubled := NewComputed(h, func(c *counterState) int { return c.value * 2 })
	defer doubled.Close()

	v, _ := doubled.Get()
	assert.Equal(t, 10, v)

	doubled.Invalidate()
	assert.False(t, doubled.IsValid())

	v, ok := doubled.Get()
	require.True(t, ok)
	assert.Equal(t, 10, v)
}

func TestComputed_StaleSourceReportsAbsence(t *testing.T) {
	s := NewStore()
	SetCurrent(s)
	defer ClearCurrent()

	h := New(counterState{value: 1})
	c := NewComputed(h, func(cs *counterState) int { return cs.value })
	defer c.Close()

	h.Release()
	s.Cleanup()

	_, ok := c.Get()
	assert.False(t, ok, "computed over a freed entity should report absence")
}

func TestComputed_CloseStopsInvalidation(t *testing.T) {
	s := NewStore()
	SetCurrent(s)
	defer ClearCurrent()

	h := New(counterState{value: 1})
	c := NewComputed(h, func(cs *counterState) int { return cs.value })
	c.Get()
	c.Close()

	Update(h, func(cs *counterState) int { cs.value = 99; return 0 })
	s.FlushNotifications()

	// Subscription released, cache stays valid with the old value.
	assert.True(t, c.IsValid())
	v, _ := c.Get()
	assert.Equal(t, 1, v)
}

func TestMemo_VersionGate(t *testing.T) {
	var m Memo[int]
	computeCount := 0

	v := m.GetOrCompute(1, func() int { computeCount++; return 42 })
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, computeCount)

	// Same version: cached.
	v = m.GetOrCompute(1, func() int { computeCount++; return 99 })
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, computeCount)

	// New version: recompute.
	v = m.GetOrCompute(2, func() int { computeCount++; return 100 })
	assert.Equal(t, 100, v)
	assert.Equal(t, 2, computeCount)
}

func TestMemo_Invalidate(t *testing.T) {
	var m Memo[string]
	m.GetOrCompute(1, func() string { return "a" })
	require.True(t, m.IsCached())

	m.Invalidate()
	assert.False(t, m.IsCached())

	v := m.GetOrCompute(1, func() string { return "b" })
	assert.Equal(t, "b", v)
}

func TestCell_InitializesOnce(t *testing.T) {
	s := NewStore()
	SetCurrent(s)
	defer ClearCurrent()

	cell := &Cell[counterState]{}
	assert.False(t, cell.Initialized())
	_, ok := cell.Get()
	assert.False(t, ok)

	initCount := 0
	h1 := cell.GetOrInit(func() counterState { initCount++; return counterState{value: 1} })
	h2 := cell.GetOrInit(func() counterState { initCount++; return counterState{value: 2} })

	assert.Equal(t, 1, initCount)
	assert.Equal(t, h1.ID(), h2.ID())
	assert.True(t, cell.Initialized())

	v, ok := Read(h1, func(c *counterState) int { return c.value })
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestDerive_TracksObservations(t *testing.T) {
	s := NewStore()
	SetCurrent(s)
	defer ClearCurrent()

	a := New(counterState{value: 2})
	b := New(counterState{value: 3})

	total := Derive(func() int {
		va, _ := Observe(a, func(c *counterState) int { return c.value })
		vb, _ := Observe(b, func(c *counterState) int { return c.value })
		return va + vb
	})
	assert.Equal(t, 5, total)

	// Both inputs were observed; mutating either owes a render.
	Update(b, func(c *counterState) int { c.value++; return 0 })
	assert.True(t, s.Cleanup())
}
