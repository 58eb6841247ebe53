package tether

// Store is the persistent key-value backend a Registry synchronizes with.
//
// Stores are externally owned and best-effort: a failed write is surfaced
// through Err and logged by the engine as a warning, but the in-memory
// binding still updates — the bound object stays authoritative for
// in-session truth, the store only for cross-session durability.
//
// Set must never panic or block indefinitely; implementations latch write
// errors for Err, which the engine polls after every Set.
type Store interface {
	// Contains reports whether the store holds an entry for key.
	Contains(key string) bool

	// Get returns the value stored under key, or the invalid Value when the
	// key is absent.
	Get(key string) Value

	// Set writes the value under key. Failures are latched for Err.
	Set(key string, v Value)

	// Flush persists any buffered writes to the backing medium.
	Flush() error

	// Err returns the error latched by the most recent Set or Flush, or nil.
	Err() error
}
