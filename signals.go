package tether

import "github.com/zoobzio/capitan"

// Registry lifecycle signals.
var (
	// RegistryRegistered is emitted when a binding is registered.
	RegistryRegistered = capitan.NewSignal(
		"tether.registry.registered",
		"Binding registered",
	)

	// RegistryStoreAttached is emitted when a store is attached to or
	// swapped on a registry.
	RegistryStoreAttached = capitan.NewSignal(
		"tether.registry.store.attached",
		"Persistent store attached",
	)
)

// Synchronization signals.
var (
	// SettingChanged is emitted when a push commits a value that differs
	// from the old value.
	SettingChanged = capitan.NewSignal(
		"tether.setting.changed",
		"Setting value changed",
	)

	// StoreWriteFailed is emitted when the store reports an error after a
	// write. The in-memory value still updates; this is a warning.
	StoreWriteFailed = capitan.NewSignal(
		"tether.store.write.failed",
		"Store write failed",
	)

	// PropertySetFailed is emitted when a bound object rejects a property
	// write during synchronization.
	PropertySetFailed = capitan.NewSignal(
		"tether.property.set.failed",
		"Object property write rejected",
	)

	// SyncPulled is emitted after a pull pass over one or more keys.
	SyncPulled = capitan.NewSignal(
		"tether.sync.pulled",
		"Values pulled from store",
	)

	// SyncCommitted is emitted after a commit pass advances previous values.
	SyncCommitted = capitan.NewSignal(
		"tether.sync.committed",
		"Previous values advanced to live values",
	)

	// SyncReverted is emitted after a revert pass.
	SyncReverted = capitan.NewSignal(
		"tether.sync.reverted",
		"Values reverted",
	)
)

// Router signals.
var (
	// RouterDelivered is emitted when a change signal resolves to a key and
	// triggers a push.
	RouterDelivered = capitan.NewSignal(
		"tether.router.delivered",
		"Change signal delivered",
	)

	// RouterConnectFailed is emitted when an object's Connect hook fails
	// while installing a fan-in subscription.
	RouterConnectFailed = capitan.NewSignal(
		"tether.router.connect.failed",
		"Signal connect failed",
	)
)

// Flusher signals.
var (
	// FlusherStarted is emitted when a Flusher begins its interval loop.
	FlusherStarted = capitan.NewSignal(
		"tether.flusher.started",
		"Store flusher started",
	)

	// FlusherStopped is emitted when a Flusher stops.
	FlusherStopped = capitan.NewSignal(
		"tether.flusher.stopped",
		"Store flusher stopped",
	)

	// FlusherFlushFailed is emitted when an interval flush returns an error.
	FlusherFlushFailed = capitan.NewSignal(
		"tether.flusher.flush.failed",
		"Store flush failed",
	)
)
