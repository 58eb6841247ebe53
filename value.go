package tether

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the dynamic type held by a Value.
type Kind int

const (
	// KindInvalid is the kind of the zero Value. It carries no data.
	KindInvalid Kind = iota

	// KindBool holds a boolean.
	KindBool

	// KindInt holds a signed 64-bit integer.
	KindInt

	// KindFloat holds a 64-bit float.
	KindFloat

	// KindString holds a string.
	KindString

	// KindStringList holds an ordered list of strings.
	KindStringList
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindStringList:
		return "stringlist"
	default:
		return "unknown"
	}
}

// Value is a dynamically typed setting value: a tagged union over bool,
// int64, float64, string, and []string. The zero Value is invalid.
//
// Values are compared by structural equality of their dynamic
// representation. There is no coercion across kinds: Int(0) never equals
// Float(0) or StringList().
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	list []string
}

// Bool returns a Value holding v.
func Bool(v bool) Value {
	return Value{kind: KindBool, b: v}
}

// Int returns a Value holding v.
func Int(v int64) Value {
	return Value{kind: KindInt, i: v}
}

// Float returns a Value holding v.
func Float(v float64) Value {
	return Value{kind: KindFloat, f: v}
}

// String returns a Value holding v.
func String(v string) Value {
	return Value{kind: KindString, s: v}
}

// StringList returns a Value holding a copy of v.
func StringList(v ...string) Value {
	list := make([]string, len(v))
	copy(list, v)
	return Value{kind: KindStringList, list: list}
}

// Kind returns the dynamic kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsValid reports whether the value holds data of any kind.
func (v Value) IsValid() bool {
	return v.kind != KindInvalid
}

// AsBool returns the boolean held by the value and whether the value is a bool.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsInt returns the integer held by the value and whether the value is an int.
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindInt
}

// AsFloat returns the float held by the value and whether the value is a float.
func (v Value) AsFloat() (float64, bool) {
	return v.f, v.kind == KindFloat
}

// AsString returns the string held by the value and whether the value is a string.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsStringList returns a copy of the list held by the value and whether the
// value is a string list.
func (v Value) AsStringList() ([]string, bool) {
	if v.kind != KindStringList {
		return nil, false
	}
	list := make([]string, len(v.list))
	copy(list, v.list)
	return list, true
}

// Equal reports structural equality: kinds must match, numbers compare by
// value within their own kind, strings by content, lists element-wise.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindString:
		return v.s == o.s
	case KindStringList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != o.list[i] {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// String returns a readable representation for diagnostics.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindStringList:
		return "[" + strings.Join(v.list, ", ") + "]"
	default:
		return "<invalid>"
	}
}

// Interface returns the value as a plain Go value suitable for
// serialization: bool, int64, float64, string, []string, or nil when invalid.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindStringList:
		list := make([]string, len(v.list))
		copy(list, v.list)
		return list
	default:
		return nil
	}
}

// ValueOf converts a plain Go value into a Value. It accepts bools, any
// integer or float type, strings, []string, and []any containing only
// strings. All other inputs fail.
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Value{}, nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Int(int64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return Int(int64(x)), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case string:
		return String(x), nil
	case []string:
		return StringList(x...), nil
	case []any:
		list := make([]string, 0, len(x))
		for _, item := range x {
			s, ok := item.(string)
			if !ok {
				return Value{}, fmt.Errorf("list element %T is not a string", item)
			}
			list = append(list, s)
		}
		return StringList(list...), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", v)
	}
}
