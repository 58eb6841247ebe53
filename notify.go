package tether

import (
	"context"

	"github.com/zoobzio/capitan"
)

// OnChange subscribes fn to change notifications. The callback receives the
// key and new value whenever a push commits a value that differs from the
// old one. The returned cancel function removes the subscription.
//
// Callbacks run synchronously on the pushing goroutine and must not mutate
// the same key re-entrantly.
func (r *Registry) OnChange(fn func(key string, value Value)) (cancel func()) {
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	return func() {
		delete(r.subs, id)
	}
}

// notifyChanged fans a committed change out to subscribers and records
// restart-required keys.
func (r *Registry) notifyChanged(ctx context.Context, key string, value Value) {
	if b, ok := r.bindings[key]; ok && b.options.Has(OptionRequireRestart) {
		r.restartPending[key] = struct{}{}
	}

	capitan.Emit(ctx, SettingChanged,
		KeySetting.Field(key),
		KeyValue.Field(value.String()),
	)

	for _, fn := range r.subs {
		fn(key, value)
	}
}
