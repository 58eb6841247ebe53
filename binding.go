package tether

// BindingOptions is an extensible set of per-binding flags. The engine
// stores and returns options as-is; their semantics belong to the
// application, except for OptionRequireRestart which feeds RestartRequired.
type BindingOptions uint32

const (
	// OptionNone is the empty option set.
	OptionNone BindingOptions = 0x0

	// OptionRequireRestart marks a setting whose new value only takes effect
	// after the application restarts.
	OptionRequireRestart BindingOptions = 0x1
)

// Has reports whether all bits of o are set.
func (b BindingOptions) Has(o BindingOptions) bool {
	return b&o == o
}

// binding is one registered association between a store key and a property
// on an application object.
//
// The current value is always read live from the object; only the previous
// (last committed) and default (captured at registration) values are cached.
type binding struct {
	object   Object
	property string
	previous Value
	def      Value
	label    string
	options  BindingOptions
}

// value reads the live property value from the object. It returns the
// invalid Value if the object no longer exposes the property.
func (b *binding) value() Value {
	v, ok := b.object.Property(b.property)
	if !ok {
		return Value{}
	}
	return v
}

// setValue writes the property on the object and reports success.
func (b *binding) setValue(v Value) bool {
	return b.object.SetProperty(b.property, v)
}
