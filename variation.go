package vary

import (
	"context"
	"fmt"
	"weak"

	"github.com/zoobzio/capitan"
)

// Variation binds one candidate value for a target property to the Condition
// under which it applies.
//
// A Variation does not own its target. Its environment is held weakly through
// the Registry it was added to: a Variation never keeps its environment alive
// and treats a collected one as unregistered.
type Variation[O, V any] struct {
	target    O
	property  Property[O, V]
	value     V
	condition Condition
	registry  weak.Pointer[Registry]
}

// NewVariation creates a Variation. It has no side effects: nothing is
// applied until the Variation is added to a Registry.
func NewVariation[O, V any](target O, property Property[O, V], value V, condition Condition) *Variation[O, V] {
	return &Variation[O, V]{
		target:    target,
		property:  property,
		value:     value,
		condition: condition,
	}
}

// MakePair creates the two Variations that switch property between whenCompact
// and whenRegular along axis. The compact variation is returned first.
//
// Example:
//
//	compact, regular := vary.MakePair(label, text, vary.AxisHorizontal, "Hi", "Hello there")
//	registry.AddVariations(compact, regular)
func MakePair[O, V any](target O, property Property[O, V], axis Axis, whenCompact, whenRegular V) (compact, regular *Variation[O, V]) {
	compact = NewVariation(target, property, whenCompact, When(axis, Compact))
	regular = NewVariation(target, property, whenRegular, When(axis, Regular))
	return compact, regular
}

// Target returns the object whose property the Variation writes.
func (v *Variation[O, V]) Target() O {
	return v.target
}

// Property returns the property the Variation writes.
func (v *Variation[O, V]) Property() Property[O, V] {
	return v.property
}

// Condition returns the classification the Variation requires.
func (v *Variation[O, V]) Condition() Condition {
	return v.condition
}

// Value returns the candidate value.
func (v *Variation[O, V]) Value() V {
	return v.value
}

// SetValue replaces the candidate value and, if the Variation currently
// matches its environment, writes it to the target immediately.
func (v *Variation[O, V]) SetValue(value V) {
	v.value = value
	v.ApplyIfMatching()
}

// Environment returns the environment the Variation is registered with, or
// nil if it is unregistered or the registry has been collected.
func (v *Variation[O, V]) Environment() Environment {
	if r := v.registry.Value(); r != nil {
		return r.env
	}
	return nil
}

// ApplyIfMatching writes the value to the target property when the condition
// matches the environment's current traits. A mismatch leaves the property
// untouched. Without an environment nothing is written and VariationUnbound
// is emitted.
func (v *Variation[O, V]) ApplyIfMatching() {
	ctx := context.Background()

	env := v.Environment()
	if env == nil {
		capitan.Emit(ctx, VariationUnbound,
			KeyVariation.Field(v.String()),
		)
		return
	}

	traits := env.Traits()
	if !v.condition.Matches(traits) {
		return
	}

	if v.property.equal != nil && v.property.equal(v.property.get(v.target), v.value) {
		capitan.Emit(ctx, VariationSkipped,
			KeyVariation.Field(v.String()),
		)
		return
	}

	v.property.set(v.target, v.value)
	capitan.Emit(ctx, VariationApplied,
		KeyVariation.Field(v.String()),
		KeyHorizontal.Field(traits.Horizontal.String()),
		KeyVertical.Field(traits.Vertical.String()),
	)
}

// String describes the Variation for diagnostics.
func (v *Variation[O, V]) String() string {
	return fmt.Sprintf("Variation[%T, %T]{property: %s, value: %v, horizontal: %s, vertical: %s}",
		v.target, v.value, v.property.name, v.value,
		nilOr(v.condition.Horizontal), nilOr(v.condition.Vertical),
	)
}

// registered returns the registry the Variation is bound to, if still alive.
func (v *Variation[O, V]) registered() *Registry {
	return v.registry.Value()
}

func (v *Variation[O, V]) bind(r *Registry) {
	if r == nil {
		v.registry = weak.Pointer[Registry]{}
		return
	}
	v.registry = weak.Make(r)
}

func nilOr(c *Classification) string {
	if c == nil {
		return "nil"
	}
	return c.String()
}
