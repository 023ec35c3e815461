package vary

import (
	"context"
	"fmt"

	"github.com/zoobzio/capitan"
)

// Environment reports a current classification on both axes.
//
// Implementations must call ReapplyAll on their Registry whenever the traits
// they report change. vary does not poll or subscribe.
type Environment interface {
	Traits() Traits
}

// Applier is the type-erased view of a Variation held by a Registry.
// It is implemented only by *Variation.
type Applier interface {
	fmt.Stringer

	// ApplyIfMatching writes the candidate value when the condition matches.
	ApplyIfMatching()

	// Environment returns the bound environment or nil.
	Environment() Environment

	registered() *Registry
	bind(r *Registry)
}

// Registry is the ordered collection of Variations registered with one
// Environment. Environments hold their Registry as a field:
//
//	type Window struct {
//	    traits     vary.Traits
//	    variations *vary.Registry
//	}
//
//	func NewWindow() *Window {
//	    w := &Window{}
//	    w.variations = vary.NewRegistry(w)
//	    return w
//	}
//
//	func (w *Window) Traits() vary.Traits { return w.traits }
//
//	func (w *Window) Resize(t vary.Traits) {
//	    w.traits = t
//	    w.variations.ReapplyAll()
//	}
//
// A Registry is not safe for concurrent use. Confine it, and the targets its
// Variations write, to one goroutine or guard them externally (see Relay).
type Registry struct {
	env        Environment
	variations []Applier
}

// NewRegistry creates an empty Registry for env. A nil env is accepted: its
// Variations are unbound, so nothing is written and ReapplyAll reports
// Unspecified traits.
func NewRegistry(env Environment) *Registry {
	return &Registry{env: env}
}

// Environment returns the environment the Registry belongs to.
func (r *Registry) Environment() Environment {
	return r.env
}

// Variations returns the registered Variations in insertion order.
// The returned slice is a copy.
func (r *Registry) Variations() []Applier {
	out := make([]Applier, len(r.variations))
	copy(out, r.variations)
	return out
}

// Len returns the number of registered Variations.
func (r *Registry) Len() int {
	return len(r.variations)
}

// At returns the Variation at index i in insertion order.
// It panics if i is out of range, like slice indexing.
func (r *Registry) At(i int) Applier {
	return r.variations[i]
}

// AddVariation binds a to this Registry's environment, appends it, and applies
// it immediately if it matches.
//
// A Variation bound to a different Registry is removed from it first. Adding
// the same Variation to this Registry twice yields two entries.
func (r *Registry) AddVariation(a Applier) {
	if prev := a.registered(); prev != nil && prev != r {
		prev.RemoveVariation(a)
	}
	a.bind(r)
	r.variations = append(r.variations, a)
	capitan.Emit(context.Background(), VariationAdded,
		KeyVariation.Field(a.String()),
		KeyCount.Field(len(r.variations)),
	)
	a.ApplyIfMatching()
}

// AddVariations adds each Variation in order.
func (r *Registry) AddVariations(as ...Applier) {
	for _, a := range as {
		r.AddVariation(a)
	}
}

// RemoveVariation removes every entry of a, by identity, and unbinds it.
// The target property keeps whatever value was last applied. Removing a
// Variation that is not registered is a no-op.
func (r *Registry) RemoveVariation(a Applier) {
	kept := r.variations[:0]
	removed := 0
	for _, v := range r.variations {
		if v == a {
			removed++
			continue
		}
		kept = append(kept, v)
	}
	if removed == 0 {
		return
	}
	for i := len(kept); i < len(r.variations); i++ {
		r.variations[i] = nil
	}
	r.variations = kept

	if a.registered() == r {
		a.bind(nil)
	}
	capitan.Emit(context.Background(), VariationRemoved,
		KeyVariation.Field(a.String()),
		KeyCount.Field(len(r.variations)),
	)
}

// ReapplyAll calls ApplyIfMatching on every registered Variation in insertion
// order. Environments call it whenever their traits change.
func (r *Registry) ReapplyAll() {
	snapshot := r.Variations()
	for _, a := range snapshot {
		a.ApplyIfMatching()
	}

	var traits Traits
	if r.env != nil {
		traits = r.env.Traits()
	}
	capitan.Emit(context.Background(), RegistryReapplied,
		KeyCount.Field(len(snapshot)),
		KeyHorizontal.Field(traits.Horizontal.String()),
		KeyVertical.Field(traits.Vertical.String()),
	)
}

// AddCaptured registers a pair of Variations for property along axis: one
// requiring Regular with the property's current value, then one requiring
// Compact with whenCompact. The regular variation is added first so it
// establishes the baseline before the compact override. Both are returned in
// the order they were added.
func AddCaptured[O, V any](r *Registry, target O, property Property[O, V], axis Axis, whenCompact V) (regular, compact *Variation[O, V]) {
	regular = NewVariation(target, property, property.Get(target), When(axis, Regular))
	compact = NewVariation(target, property, whenCompact, When(axis, Compact))
	r.AddVariation(regular)
	r.AddVariation(compact)
	return regular, compact
}
