// Package tether binds named properties on application objects to entries in
// a persistent key-value store and keeps the two sides synchronized.
//
// The core type is Registry, which owns a set of bindings. Each binding
// tracks three values: the current value (always read live from the object),
// the previous value (the last committed baseline), and the default value
// (captured from the object at registration and never changed).
//
// # Registration
//
// Objects expose properties through the Object capability interface rather
// than runtime introspection. MemObject adapts plain map-backed state:
//
//	obj := tether.NewMemObject().
//	    Define("level", tether.Int(50))
//
//	registry := tether.New(tether.WithStore(store))
//	err := registry.Register(ctx, "audio/volume", obj, "level",
//	    tether.Signal{Source: "volume-widget", Name: "level"},
//	    "Volume", tether.OptionNone)
//
// At registration the store wins when it already holds the key — the stored
// value overwrites the object's property. When the store lacks the key, the
// object's live value is pushed into the store so defaults self-heal.
//
// # Synchronization
//
// Four operations drive the engine:
//
//   - Pull: store -> object, per the store-wins/object-wins policy above
//   - Push: external value -> store and object, notifying on change
//   - Commit: advance previous values to live values (new revert baseline)
//   - RevertToPrevious / RevertToDefault: push a baseline back out
//
// ChangedKeys reports the keys whose live value has drifted from the last
// committed baseline, driving unsaved-change indicators:
//
//	registry.Push(ctx, "audio/volume", tether.Int(70))
//	registry.ChangedKeys() // ["audio/volume"]
//	registry.Commit(ctx)
//	registry.ChangedKeys() // []
//
// # Change notification
//
// A push whose new value differs structurally from the old one notifies
// OnChange subscribers with (key, value). Values compare structurally within
// their own kind only; there is no coercion across kinds.
//
// # Fan-in
//
// The Router collapses many change-notification sources onto store keys.
// Sources report (source, signal) pairs; the router resolves the pair to a
// key and pushes the key's live value. Objects implementing Connector get
// the delivery callback wired automatically at registration.
//
// # Stores
//
// Store is a small contract: Contains, Get, Set, Flush, Err. Stores are
// best-effort — a failed write is a logged warning, never a rollback,
// because the object stays authoritative for in-session truth. The package
// ships MemoryStore and a YAML/JSON FileStore; FileStore.Watch emits events
// when an external process edits the backing file so applications can
// trigger a Pull.
//
// # Concurrency
//
// Registry and Router are single-threaded and cooperative: all operations
// run to completion on the owning goroutine with no internal locking.
// Stores are internally synchronized collaborators and may be flushed from a
// background Flusher.
package tether
