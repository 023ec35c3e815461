package vary

// Property is a settable property on a target object of type O.
// Get and Set are bound at construction time; no reflection is involved.
type Property[O, V any] struct {
	name  string
	get   func(O) V
	set   func(O, V)
	equal func(a, b V) bool
}

// NewProperty creates a Property from accessor functions.
// Writes are never elided because V has no known equality.
func NewProperty[O, V any](name string, get func(O) V, set func(O, V)) Property[O, V] {
	return Property[O, V]{name: name, get: get, set: set}
}

// ComparableProperty creates a Property whose values compare with ==.
// Variations using it skip the write when the target already holds the value.
func ComparableProperty[O any, V comparable](name string, get func(O) V, set func(O, V)) Property[O, V] {
	return Property[O, V]{
		name:  name,
		get:   get,
		set:   set,
		equal: func(a, b V) bool { return a == b },
	}
}

// WithEqual returns a copy of p that uses eq to detect redundant writes.
func (p Property[O, V]) WithEqual(eq func(a, b V) bool) Property[O, V] {
	p.equal = eq
	return p
}

// Name returns the property name used in descriptions.
func (p Property[O, V]) Name() string {
	return p.name
}

// Get reads the property from target.
func (p Property[O, V]) Get(target O) V {
	return p.get(target)
}

// Set writes v to the property on target.
func (p Property[O, V]) Set(target O, v V) {
	p.set(target, v)
}

// Equatable reports whether the property can detect redundant writes.
func (p Property[O, V]) Equatable() bool {
	return p.equal != nil
}
