package tether

import (
	"context"
	"errors"
	"fmt"

	"github.com/zoobzio/capitan"
)

// targets resolves an explicit key list against the registry. With no keys
// given, every registered key is targeted. Unknown keys produce per-key
// errors; known keys are still returned so batch operations can proceed.
func (r *Registry) targets(keys []string) ([]string, error) {
	if len(keys) == 0 {
		return r.Keys(), nil
	}
	var errs []error
	resolved := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, ok := r.bindings[key]; !ok {
			errs = append(errs, fmt.Errorf("target %q: %w", key, ErrUnknownKey))
			continue
		}
		resolved = append(resolved, key)
	}
	return resolved, errors.Join(errs...)
}

// Pull synchronizes the targeted keys from the store. With no keys given it
// targets every registered key; without an attached store it is a no-op.
//
// The store wins when it holds a key: the stored value overwrites the
// object's property and becomes the previous value. The object wins when the
// store lacks the key: the live value is pushed into the store so the store
// self-heals its defaults.
//
// Per-key failures are reported and skipped; the remaining keys are still
// processed.
func (r *Registry) Pull(ctx context.Context, keys ...string) error {
	targets, errs := r.targets(keys)
	if r.store == nil {
		return errs
	}

	failures := []error{}
	if errs != nil {
		failures = append(failures, errs)
	}
	for _, key := range targets {
		b := r.bindings[key]
		if !r.store.Contains(key) {
			if err := r.Push(ctx, key, b.value()); err != nil {
				failures = append(failures, err)
			}
			continue
		}
		stored := r.store.Get(key)
		if !b.setValue(stored) {
			capitan.Emit(ctx, PropertySetFailed,
				KeySetting.Field(key),
				KeyProperty.Field(b.property),
				KeyValue.Field(stored.String()),
			)
			failures = append(failures, fmt.Errorf("pull %q: %w", key, ErrPropertySet))
			continue
		}
		b.previous = stored
	}

	capitan.Emit(ctx, SyncPulled,
		KeyCount.Field(len(targets)),
	)

	return errors.Join(failures...)
}

// Push writes value under key: into the store when one is attached, and onto
// the bound object's property.
//
// The store is best-effort; a write error is reported as a warning and the
// in-memory update proceeds, because the object stays authoritative for
// in-session truth. A rejected property write is returned as an error.
//
// When the new value differs structurally from the old one — the stored
// value when a store is attached, the live object value otherwise — change
// observers are notified with (key, value).
func (r *Registry) Push(ctx context.Context, key string, value Value) error {
	b, ok := r.bindings[key]
	if !ok {
		return fmt.Errorf("push %q: %w", key, ErrUnknownKey)
	}

	old := b.value()
	if r.store != nil {
		old = r.store.Get(key)
		r.store.Set(key, value)
		if err := r.store.Err(); err != nil {
			capitan.Emit(ctx, StoreWriteFailed,
				KeySetting.Field(key),
				KeyError.Field(err.Error()),
			)
		}
	}

	var setErr error
	if !b.setValue(value) {
		setErr = fmt.Errorf("push %q: property %q: %w", key, b.property, ErrPropertySet)
		capitan.Emit(ctx, PropertySetFailed,
			KeySetting.Field(key),
			KeyProperty.Field(b.property),
			KeyValue.Field(value.String()),
		)
	}

	if !old.Equal(value) {
		r.notifyChanged(ctx, key, value)
	}

	return setErr
}

// Commit advances the previous value of the targeted keys to their live
// values, establishing a new revert baseline. The store is not touched.
// With no keys given it targets every registered key.
func (r *Registry) Commit(ctx context.Context, keys ...string) error {
	targets, errs := r.targets(keys)
	for _, key := range targets {
		b := r.bindings[key]
		b.previous = b.value()
	}
	capitan.Emit(ctx, SyncCommitted,
		KeyCount.Field(len(targets)),
	)
	return errs
}

// RevertToPrevious pushes each targeted key's previous value back onto the
// store and object. Reverting a key whose value already equals its previous
// value emits no change notification.
func (r *Registry) RevertToPrevious(ctx context.Context, keys ...string) error {
	return r.revert(ctx, keys, func(b *binding) Value { return b.previous })
}

// RevertToDefault pushes each targeted key's registration-time default back
// onto the store and object.
func (r *Registry) RevertToDefault(ctx context.Context, keys ...string) error {
	return r.revert(ctx, keys, func(b *binding) Value { return b.def })
}

func (r *Registry) revert(ctx context.Context, keys []string, pick func(*binding) Value) error {
	targets, errs := r.targets(keys)

	failures := []error{}
	if errs != nil {
		failures = append(failures, errs)
	}
	for _, key := range targets {
		if err := r.Push(ctx, key, pick(r.bindings[key])); err != nil {
			failures = append(failures, err)
		}
	}

	capitan.Emit(ctx, SyncReverted,
		KeyCount.Field(len(targets)),
	)

	return errors.Join(failures...)
}

// ChangedKeys returns the keys whose live value differs from their previous
// value, in no particular order. This is a pure query driving unsaved-change
// indicators; it never touches the store.
func (r *Registry) ChangedKeys() []string {
	changed := []string{}
	for key, b := range r.bindings {
		if !b.previous.Equal(b.value()) {
			changed = append(changed, key)
		}
	}
	return changed
}
