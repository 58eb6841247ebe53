package tether

import "testing"

func TestValue_ZeroIsInvalid(t *testing.T) {
	var v Value
	if v.IsValid() {
		t.Error("expected zero Value to be invalid")
	}
	if v.Kind() != KindInvalid {
		t.Errorf("expected KindInvalid, got %s", v.Kind())
	}
}

func TestValue_Equal_SameKind(t *testing.T) {
	if !Int(42).Equal(Int(42)) {
		t.Error("expected Int(42) == Int(42)")
	}
	if Int(42).Equal(Int(43)) {
		t.Error("expected Int(42) != Int(43)")
	}
	if !String("a").Equal(String("a")) {
		t.Error("expected String(a) == String(a)")
	}
	if !Bool(true).Equal(Bool(true)) {
		t.Error("expected Bool(true) == Bool(true)")
	}
	if !Float(1.5).Equal(Float(1.5)) {
		t.Error("expected Float(1.5) == Float(1.5)")
	}
}

func TestValue_Equal_NoCrossKindCoercion(t *testing.T) {
	if Int(0).Equal(Float(0)) {
		t.Error("expected Int(0) != Float(0)")
	}
	if Int(0).Equal(StringList()) {
		t.Error("expected Int(0) != empty StringList")
	}
	if String("true").Equal(Bool(true)) {
		t.Error("expected String(true) != Bool(true)")
	}
	if String("").Equal(Value{}) {
		t.Error("expected empty String != invalid")
	}
}

func TestValue_Equal_Invalid(t *testing.T) {
	if !(Value{}).Equal(Value{}) {
		t.Error("expected invalid == invalid")
	}
	if (Value{}).Equal(Int(0)) {
		t.Error("expected invalid != Int(0)")
	}
}

func TestValue_Equal_ListElementWise(t *testing.T) {
	if !StringList("a", "b").Equal(StringList("a", "b")) {
		t.Error("expected equal lists to compare equal")
	}
	if StringList("a", "b").Equal(StringList("b", "a")) {
		t.Error("expected order to matter")
	}
	if StringList("a").Equal(StringList("a", "b")) {
		t.Error("expected length mismatch to compare unequal")
	}
}

func TestValue_Getters(t *testing.T) {
	if v, ok := Int(7).AsInt(); !ok || v != 7 {
		t.Errorf("AsInt = %d, %v", v, ok)
	}
	if _, ok := Int(7).AsString(); ok {
		t.Error("expected AsString to fail on an int")
	}
	if v, ok := Bool(true).AsBool(); !ok || !v {
		t.Errorf("AsBool = %v, %v", v, ok)
	}
	if v, ok := Float(2.5).AsFloat(); !ok || v != 2.5 {
		t.Errorf("AsFloat = %v, %v", v, ok)
	}
	if v, ok := String("x").AsString(); !ok || v != "x" {
		t.Errorf("AsString = %q, %v", v, ok)
	}
	list, ok := StringList("a", "b").AsStringList()
	if !ok || len(list) != 2 || list[0] != "a" {
		t.Errorf("AsStringList = %v, %v", list, ok)
	}
}

func TestValue_StringListCopies(t *testing.T) {
	src := []string{"a", "b"}
	v := StringList(src...)
	src[0] = "mutated"
	list, _ := v.AsStringList()
	if list[0] != "a" {
		t.Errorf("expected value to be isolated from source slice, got %q", list[0])
	}

	list[1] = "mutated"
	again, _ := v.AsStringList()
	if again[1] != "b" {
		t.Errorf("expected getter to return a copy, got %q", again[1])
	}
}

func TestValueOf_Conversions(t *testing.T) {
	v, err := ValueOf(42)
	if err != nil {
		t.Fatalf("ValueOf(42) error = %v", err)
	}
	if !v.Equal(Int(42)) {
		t.Errorf("expected Int(42), got %s(%s)", v.Kind(), v)
	}

	v, err = ValueOf(uint16(9))
	if err != nil {
		t.Fatalf("ValueOf(uint16) error = %v", err)
	}
	if !v.Equal(Int(9)) {
		t.Errorf("expected Int(9), got %s(%s)", v.Kind(), v)
	}

	v, err = ValueOf([]any{"x", "y"})
	if err != nil {
		t.Fatalf("ValueOf([]any) error = %v", err)
	}
	if !v.Equal(StringList("x", "y")) {
		t.Errorf("expected StringList(x, y), got %s(%s)", v.Kind(), v)
	}

	if _, err := ValueOf([]any{"x", 3}); err == nil {
		t.Error("expected mixed list to fail")
	}
	if _, err := ValueOf(struct{}{}); err == nil {
		t.Error("expected struct to fail")
	}
}

func TestValueOf_RoundTripsInterface(t *testing.T) {
	for _, v := range []Value{Bool(true), Int(-3), Float(0.25), String("hi"), StringList("a")} {
		back, err := ValueOf(v.Interface())
		if err != nil {
			t.Fatalf("ValueOf(%s.Interface()) error = %v", v.Kind(), err)
		}
		if !back.Equal(v) {
			t.Errorf("round trip changed %s(%s) to %s(%s)", v.Kind(), v, back.Kind(), back)
		}
	}
}

func TestKind_String(t *testing.T) {
	if s := KindStringList.String(); s != "stringlist" {
		t.Errorf("expected 'stringlist', got %q", s)
	}
	if s := Kind(99).String(); s != "unknown" {
		t.Errorf("expected 'unknown', got %q", s)
	}
}

func TestValue_String(t *testing.T) {
	if s := Int(42).String(); s != "42" {
		t.Errorf("expected '42', got %q", s)
	}
	if s := StringList("a", "b").String(); s != "[a, b]" {
		t.Errorf("expected '[a, b]', got %q", s)
	}
	if s := (Value{}).String(); s != "<invalid>" {
		t.Errorf("expected '<invalid>', got %q", s)
	}
}
