package runtime

import "testing"

func TestObjectRegisterAndLookup(t *testing.T) {
	obj := NewObject(nil)
	obj.Register("greeting", StringValue{Val: "hello"})

	got, ok := obj.Lookup("greeting")
	if !ok {
		t.Fatalf("expected to retrieve binding")
	}
	if sv, ok := got.(StringValue); !ok || sv.Val != "hello" {
		t.Fatalf("unexpected value returned: %#v", got)
	}
}

func TestObjectLookupDelegatesToParent(t *testing.T) {
	parent := NewObject(nil)
	parent.Register("counter", IntValue{Val: 1})
	child := NewObject(parent)

	got, ok := child.Lookup("counter")
	if !ok {
		t.Fatalf("expected lookup to delegate to parent")
	}
	if iv, ok := got.(IntValue); !ok || iv.Val != 1 {
		t.Fatalf("unexpected counter value: %#v", got)
	}
}

func TestObjectRegisterBindsOwnMappingOnly(t *testing.T) {
	parent := NewObject(nil)
	parent.Register("x", IntValue{Val: 1})
	child := NewObject(parent)
	child.Register("x", IntValue{Val: 2})

	if got, _ := parent.Lookup("x"); got.(IntValue).Val != 1 {
		t.Fatalf("parent binding must not be touched by child register, got %#v", got)
	}
	if got, _ := child.Lookup("x"); got.(IntValue).Val != 2 {
		t.Fatalf("child binding shadows parent, got %#v", got)
	}
}

func TestObjectLookupOrDefault(t *testing.T) {
	obj := NewObject(nil)
	got := obj.LookupOrDefault("missing", Undefined)
	if got != Undefined {
		t.Fatalf("expected the supplied default, got %#v", got)
	}
}

func TestObjectFieldNamesSorted(t *testing.T) {
	obj := NewObject(nil)
	obj.Register("b", IntValue{Val: 2})
	obj.Register("a", IntValue{Val: 1})

	names := obj.FieldNames()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("unexpected field order: %v", names)
	}
}

func TestFormatValue(t *testing.T) {
	obj := NewObject(nil)
	obj.Register("n", IntValue{Val: 7})
	obj.Register("s", StringValue{Val: "hi"})

	if got := FormatValue(obj); got != "{ n: 7, s: hi }" {
		t.Fatalf("unexpected object formatting: %q", got)
	}
	if got := FormatValue(Undefined); got != "undefined" {
		t.Fatalf("unexpected undefined formatting: %q", got)
	}
	if got := FormatValue(NewFunction("print", nil)); got != "function print" {
		t.Fatalf("unexpected function formatting: %q", got)
	}
}

func TestFormatValueSelfReference(t *testing.T) {
	obj := NewObject(nil)
	obj.Register("self", obj)

	if got := FormatValue(obj); got != "{ self: ... }" {
		t.Fatalf("unexpected cyclic formatting: %q", got)
	}
}
