package tether

import "errors"

var (
	// ErrInvalidBinding indicates a registration with a nil object, an empty
	// key or property name, or a property the object does not expose. The
	// registration fails atomically; no binding is created.
	ErrInvalidBinding = errors.New("invalid binding")

	// ErrUnknownKey indicates an operation on a key that was never
	// registered. Lookups fail explicitly rather than returning silent
	// defaults.
	ErrUnknownKey = errors.New("unknown key")

	// ErrPropertySet indicates the bound object rejected a property write.
	// This is a binding configuration problem (type mismatch, read-only
	// property); during batched operations it is reported per key and does
	// not stop the remaining keys.
	ErrPropertySet = errors.New("property set rejected")

	// ErrNoRoute indicates a signal delivery that no subscription maps to a
	// key.
	ErrNoRoute = errors.New("no route for signal")
)
