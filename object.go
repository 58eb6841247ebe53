package tether

// Object is the capability a bound application object must expose: named,
// dynamically typed properties that can be read and written.
//
// Implementations adapt concrete types explicitly rather than relying on
// runtime introspection. An implementation's setter should be idempotent:
// setting a property to its current value must not re-fire the property's
// change signal, otherwise re-entrant delivery through a Router can recurse.
type Object interface {
	// Property returns the named property's value, or false if the object
	// does not expose the property.
	Property(name string) (Value, bool)

	// SetProperty writes the named property and reports success. It returns
	// false for unknown or read-only properties, or on a type mismatch.
	SetProperty(name string, v Value) bool
}

// Connector is an optional capability for objects that can invoke a callback
// when one of their change signals fires. Registries use it to wire fan-in
// subscriptions automatically at registration time.
type Connector interface {
	// Connect arranges for fn to run whenever the named signal fires.
	Connect(signal string, fn func()) error
}

// MemObject is a map-backed Object with per-property change signals. It is
// useful for wrapping plain application state and for testing.
//
// Each property doubles as a signal of the same name: callbacks connected to
// signal "level" fire whenever SetProperty("level", ...) changes the value.
// The setter is idempotent, so re-entrant deliveries terminate.
//
// MemObject is not safe for concurrent use.
type MemObject struct {
	props map[string]Value
	conns map[string][]func()
}

// NewMemObject creates an empty MemObject.
func NewMemObject() *MemObject {
	return &MemObject{
		props: make(map[string]Value),
		conns: make(map[string][]func()),
	}
}

// Define declares a property and its initial value. Defining an existing
// property overwrites it without firing its signal.
func (o *MemObject) Define(name string, v Value) *MemObject {
	o.props[name] = v
	return o
}

// Property returns the named property's value.
func (o *MemObject) Property(name string) (Value, bool) {
	v, ok := o.props[name]
	return v, ok
}

// SetProperty writes the named property. Properties must be declared with
// Define first; writing an undeclared property fails. Writing the current
// value succeeds without firing the property's signal.
func (o *MemObject) SetProperty(name string, v Value) bool {
	old, ok := o.props[name]
	if !ok {
		return false
	}
	if old.Equal(v) {
		return true
	}
	o.props[name] = v
	for _, fn := range o.conns[name] {
		fn()
	}
	return true
}

// Connect registers fn to run when the named property changes.
func (o *MemObject) Connect(signal string, fn func()) error {
	o.conns[signal] = append(o.conns[signal], fn)
	return nil
}

// Ensure MemObject implements both capabilities.
var (
	_ Object    = (*MemObject)(nil)
	_ Connector = (*MemObject)(nil)
)
