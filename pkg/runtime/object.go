package runtime

import "sort"

// Object is the single record abstraction behind both lexical scopes and
// data objects: a name-to-value mapping with an optional parent used for
// delegated lookup. As a scope the parent is the enclosing lexical scope;
// as a data object it is the prototype (always nil for object literals in
// this language). Evaluation is single-threaded by contract, so access is
// unsynchronized.
type Object struct {
	values map[string]Value
	parent *Object
}

// NewObject creates a record, optionally delegating lookups to parent.
func NewObject(parent *Object) *Object {
	return &Object{
		values: make(map[string]Value),
		parent: parent,
	}
}

func (*Object) Kind() Kind { return KindObject }

// Parent exposes the delegation link (nil at the root).
func (o *Object) Parent() *Object {
	return o.parent
}

// Lookup searches the record's own mapping, then the parent chain.
func (o *Object) Lookup(name string) (Value, bool) {
	if v, ok := o.values[name]; ok {
		return v, true
	}
	if o.parent != nil {
		return o.parent.Lookup(name)
	}
	return nil, false
}

// LookupOrDefault is Lookup with a caller-supplied fallback; it never fails.
func (o *Object) LookupOrDefault(name string, def Value) Value {
	if v, ok := o.Lookup(name); ok {
		return v
	}
	return def
}

// Register inserts or overwrites a binding in the record's own mapping,
// never in an ancestor.
func (o *Object) Register(name string, value Value) {
	o.values[name] = value
}

// HasOwn reports whether the binding exists in the record's own mapping,
// ignoring the parent chain.
func (o *Object) HasOwn(name string) bool {
	_, ok := o.values[name]
	return ok
}

// FieldNames returns the record's own field names in sorted order (useful
// for determinism in tests and printing).
func (o *Object) FieldNames() []string {
	names := make([]string, 0, len(o.values))
	for name := range o.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
