package tether

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/zoobzio/capitan"
)

// validate is the shared validator instance.
var validate = validator.New()

// registration carries the validated inputs of Register.
type registration struct {
	Key      string `validate:"required"`
	Property string `validate:"required"`
}

// Registry owns a set of bindings between store keys and properties on
// application objects, an optional persistent store, and a Router that fans
// change signals into pushes.
//
// A Registry is single-threaded and cooperative: all operations run to
// completion on the owning goroutine, and no other registry operation may
// run concurrently. Callers must not mutate a bound property outside the
// registry's knowledge if ChangedKeys bookkeeping is to stay accurate.
type Registry struct {
	store        Store
	bindings     map[string]*binding
	router       *Router
	writeThrough bool

	subs    map[int]func(key string, value Value)
	nextSub int

	restartPending map[string]struct{}
}

// config holds construction options for a Registry.
type config struct {
	store        Store
	writeThrough bool
}

// Option configures a Registry.
type Option func(*config)

// WithStore attaches a persistent store at construction time.
func WithStore(s Store) Option {
	return func(c *config) {
		c.store = s
	}
}

// WithoutWriteThrough disables pushing a freshly registered binding's value
// to the store. By default registration self-heals the store: keys the store
// lacks are populated from the object's live value.
func WithoutWriteThrough() Option {
	return func(c *config) {
		c.writeThrough = false
	}
}

// New creates a Registry.
func New(opts ...Option) *Registry {
	cfg := &config{writeThrough: true}
	for _, opt := range opts {
		opt(cfg)
	}

	r := &Registry{
		store:          cfg.store,
		bindings:       make(map[string]*binding),
		writeThrough:   cfg.writeThrough,
		subs:           make(map[int]func(string, Value)),
		restartPending: make(map[string]struct{}),
	}
	r.router = newRouter(r)
	return r
}

// Router returns the registry's signal fan-in router.
func (r *Registry) Router() *Router {
	return r.router
}

// Register binds a store key to a property on object.
//
// The object's live value at registration time becomes the binding's default
// and previous value. If a store is attached and already contains key, the
// stored value wins: it overwrites the object's property and becomes the
// previous value. Registering an existing key replaces its binding.
//
// A non-zero signal installs a fan-in subscription so deliveries of
// (signal.Source, signal.Name) push this key; objects implementing Connector
// additionally get the delivery callback wired automatically.
//
// Unless write-through is disabled, the resulting value is pushed to the
// store immediately.
func (r *Registry) Register(ctx context.Context, key string, object Object, property string, signal Signal, label string, options BindingOptions) error {
	if err := validate.Struct(registration{Key: key, Property: property}); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBinding, err)
	}
	if object == nil {
		return fmt.Errorf("%w: nil object for key %q", ErrInvalidBinding, key)
	}
	if _, ok := object.Property(property); !ok {
		return fmt.Errorf("%w: object does not expose property %q for key %q", ErrInvalidBinding, property, key)
	}

	b := &binding{
		object:   object,
		property: property,
		label:    label,
		options:  options,
	}
	live := b.value()
	b.def = live
	b.previous = live

	if r.store != nil && r.store.Contains(key) {
		stored := r.store.Get(key)
		if !b.setValue(stored) {
			capitan.Emit(ctx, PropertySetFailed,
				KeySetting.Field(key),
				KeyProperty.Field(property),
				KeyValue.Field(stored.String()),
			)
		}
		b.previous = stored
	}

	r.bindings[key] = b

	if !signal.IsZero() {
		r.router.Subscribe(signal, key)
		if c, ok := object.(Connector); ok {
			sig := signal
			err := c.Connect(sig.Name, func() {
				_ = r.router.Deliver(context.Background(), sig) //nolint:errcheck // Delivery failures reported via signals
			})
			if err != nil {
				capitan.Emit(ctx, RouterConnectFailed,
					KeySetting.Field(key),
					KeySignal.Field(signal.Name),
					KeyError.Field(err.Error()),
				)
			}
		}
	}

	if r.writeThrough && r.store != nil {
		_ = r.Push(ctx, key, b.value()) //nolint:errcheck // Write-through failures reported via signals
	}

	capitan.Emit(ctx, RegistryRegistered,
		KeySetting.Field(key),
		KeyProperty.Field(property),
		KeyLabel.Field(label),
	)

	return nil
}

// Keys returns the registered keys in no particular order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.bindings))
	for key := range r.bindings {
		keys = append(keys, key)
	}
	return keys
}

// Has reports whether key is registered.
func (r *Registry) Has(key string) bool {
	_, ok := r.bindings[key]
	return ok
}

// Label returns the display label registered for key.
func (r *Registry) Label(key string) (string, error) {
	b, ok := r.bindings[key]
	if !ok {
		return "", fmt.Errorf("label %q: %w", key, ErrUnknownKey)
	}
	return b.label, nil
}

// Options returns the option set registered for key.
func (r *Registry) Options(key string) (BindingOptions, error) {
	b, ok := r.bindings[key]
	if !ok {
		return OptionNone, fmt.Errorf("options %q: %w", key, ErrUnknownKey)
	}
	return b.options, nil
}

// Value returns the live property value for key, read from the object.
func (r *Registry) Value(key string) (Value, error) {
	b, ok := r.bindings[key]
	if !ok {
		return Value{}, fmt.Errorf("value %q: %w", key, ErrUnknownKey)
	}
	return b.value(), nil
}

// PreviousValue returns the last committed value for key.
func (r *Registry) PreviousValue(key string) (Value, error) {
	b, ok := r.bindings[key]
	if !ok {
		return Value{}, fmt.Errorf("previous value %q: %w", key, ErrUnknownKey)
	}
	return b.previous, nil
}

// DefaultValue returns the value captured from the object at registration
// time. Defaults never change after registration.
func (r *Registry) DefaultValue(key string) (Value, error) {
	b, ok := r.bindings[key]
	if !ok {
		return Value{}, fmt.Errorf("default value %q: %w", key, ErrUnknownKey)
	}
	return b.def, nil
}

// Store returns the attached store, or nil.
func (r *Registry) Store() Store {
	return r.store
}

// SetStore swaps the persistent store. Attaching a store triggers a full
// pull: stored values win over live values for keys the store contains, and
// the store is populated from live values for keys it lacks.
func (r *Registry) SetStore(ctx context.Context, store Store) error {
	if r.store == store {
		return nil
	}
	r.store = store
	capitan.Emit(ctx, RegistryStoreAttached,
		KeyCount.Field(len(r.bindings)),
	)
	if r.store == nil {
		return nil
	}
	return r.Pull(ctx)
}

// RestartRequired returns the keys carrying OptionRequireRestart whose value
// changed at some point in this session, in no particular order.
func (r *Registry) RestartRequired() []string {
	keys := make([]string, 0, len(r.restartPending))
	for key := range r.restartPending {
		keys = append(keys, key)
	}
	return keys
}
