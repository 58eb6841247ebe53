package tether

import "github.com/zoobzio/capitan"

// Field keys for tether events.
var (
	// KeySetting is the store key of the affected binding.
	KeySetting = capitan.NewStringKey("setting")

	// KeyLabel is the display label of the affected binding.
	KeyLabel = capitan.NewStringKey("label")

	// KeyProperty is the property name on the bound object.
	KeyProperty = capitan.NewStringKey("property")

	// KeyValue is the string form of the value involved.
	KeyValue = capitan.NewStringKey("value")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeySource is the source identifier of a change signal.
	KeySource = capitan.NewStringKey("source")

	// KeySignal is the signal name of a change signal.
	KeySignal = capitan.NewStringKey("signal")

	// KeyCount is the number of keys touched by a batched operation.
	KeyCount = capitan.NewIntKey("count")

	// KeyInterval is the configured flush interval.
	KeyInterval = capitan.NewDurationKey("interval")
)
