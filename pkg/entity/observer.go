package entity

import "sync/atomic"

// SubscriptionID identifies one callback subscription.
type SubscriptionID uint64

var subscriptionCounter atomic.Uint64

func nextSubscriptionID() SubscriptionID {
	return SubscriptionID(subscriptionCounter.Add(1))
}

type observer struct {
	id       SubscriptionID
	callback func()
}

// ObserverRegistry holds per-entity change callbacks.
//
// Mutations are batched: MarkChanged only records the entity, and Flush
// at the frame boundary invokes each subscriber once per changed entity
// no matter how many times it was updated during the frame.
type ObserverRegistry struct {
	subscriptions map[ID][]observer
	pending       map[ID]struct{}
	invalidation  bool
}

// NewObserverRegistry returns an empty registry.
func NewObserverRegistry() *ObserverRegistry {
	return &ObserverRegistry{
		subscriptions: make(map[ID][]observer),
		pending:       make(map[ID]struct{}),
	}
}

// Subscribe registers a callback to run at frame boundaries after the
// entity has been updated.
func (r *ObserverRegistry) Subscribe(id ID, callback func()) SubscriptionID {
	sub := nextSubscriptionID()
	r.subscriptions[id] = append(r.subscriptions[id], observer{id: sub, callback: callback})
	return sub
}

// Unsubscribe removes a subscription by its ID.
func (r *ObserverRegistry) Unsubscribe(sub SubscriptionID) {
	for id, observers := range r.subscriptions {
		kept := observers[:0]
		for _, o := range observers {
			if o.id != sub {
				kept = append(kept, o)
			}
		}
		if len(kept) == 0 {
			delete(r.subscriptions, id)
		} else {
			r.subscriptions[id] = kept
		}
	}
}

// UnsubscribeAll drops every subscription for an entity. Called when
// the entity's slot is freed.
func (r *ObserverRegistry) UnsubscribeAll(id ID) {
	delete(r.subscriptions, id)
}

// MarkChanged records a mutation. The entity only joins the pending set
// when somebody is subscribed, so unobserved churn stays free.
func (r *ObserverRegistry) MarkChanged(id ID) {
	if len(r.subscriptions[id]) == 0 {
		return
	}
	r.pending[id] = struct{}{}
	r.invalidation = true
}

// Flush notifies subscribers of all pending changes and clears the
// pending set and the invalidation flag.
func (r *ObserverRegistry) Flush() {
	for id := range r.pending {
		for _, o := range r.subscriptions[id] {
			o.callback()
		}
		delete(r.pending, id)
	}
	r.invalidation = false
}

// InvalidationRequested reports whether a subscribed entity changed
// since the last Flush.
func (r *ObserverRegistry) InvalidationRequested() bool {
	return r.invalidation
}

// ClearInvalidation resets the invalidation flag without flushing.
func (r *ObserverRegistry) ClearInvalidation() {
	r.invalidation = false
}

// HasPending reports whether any notifications are waiting for Flush.
func (r *ObserverRegistry) HasPending() bool {
	return len(r.pending) > 0
}

// SubscriptionCount returns the number of subscribers on an entity.
func (r *ObserverRegistry) SubscriptionCount(id ID) int {
	return len(r.subscriptions[id])
}

// Clear drops all subscriptions and pending state.
func (r *ObserverRegistry) Clear() {
	clear(r.subscriptions)
	clear(r.pending)
	r.invalidation = false
}
