package tether

import (
	"context"
	"fmt"

	"github.com/zoobzio/capitan"
)

// Signal identifies one change-notification source: a source identifier (the
// emitting object) and the name of the signal on that source. The zero
// Signal means "no subscription".
type Signal struct {
	Source string
	Name   string
}

// IsZero reports whether the signal is the zero descriptor.
func (s Signal) IsZero() bool {
	return s == Signal{}
}

// Router fans heterogeneous change signals into key pushes. It maps
// (source, signal) pairs to store keys so sources never need to know their
// key; multiple pairs may legally map to one key when several editors drive
// the same logical setting.
//
// Deliveries are not deduplicated: each one triggers a full push of the
// key's live value. The single-threaded cooperative model makes re-entrant
// deliveries safe as long as bound objects have idempotent setters.
type Router struct {
	registry *Registry
	routes   map[Signal]string
}

func newRouter(r *Registry) *Router {
	return &Router{
		registry: r,
		routes:   make(map[Signal]string),
	}
}

// Subscribe maps sig to key. A later Subscribe for the same sig replaces the
// mapping.
func (rt *Router) Subscribe(sig Signal, key string) {
	rt.routes[sig] = key
}

// Unsubscribe removes the mapping for sig, if any.
func (rt *Router) Unsubscribe(sig Signal) {
	delete(rt.routes, sig)
}

// Resolve returns the key mapped to sig.
func (rt *Router) Resolve(sig Signal) (string, bool) {
	key, ok := rt.routes[sig]
	return key, ok
}

// Deliver reports that sig fired: it resolves the mapped key, reads the
// bound property's live value, and pushes it to the store.
func (rt *Router) Deliver(ctx context.Context, sig Signal) error {
	key, ok := rt.routes[sig]
	if !ok {
		return fmt.Errorf("deliver %s/%s: %w", sig.Source, sig.Name, ErrNoRoute)
	}

	live, err := rt.registry.Value(key)
	if err != nil {
		return fmt.Errorf("deliver %s/%s: %w", sig.Source, sig.Name, err)
	}

	capitan.Emit(ctx, RouterDelivered,
		KeySource.Field(sig.Source),
		KeySignal.Field(sig.Name),
		KeySetting.Field(key),
	)

	return rt.registry.Push(ctx, key, live)
}
