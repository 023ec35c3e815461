package vary

import "fmt"

// Condition is the classification a Variation requires before it applies.
// A nil axis accepts any classification on that axis.
type Condition struct {
	Horizontal *Classification
	Vertical   *Classification
}

// Any returns a Condition that matches every environment.
func Any() Condition {
	return Condition{}
}

// When returns a Condition requiring c on axis and leaving the other axis
// unconstrained.
func When(axis Axis, c Classification) Condition {
	switch axis {
	case AxisVertical:
		return Condition{Vertical: &c}
	default:
		return Condition{Horizontal: &c}
	}
}

// Both returns a Condition requiring h horizontally and v vertically.
func Both(h, v Classification) Condition {
	return Condition{Horizontal: &h, Vertical: &v}
}

// Requires reports the classification required on axis, if any.
func (c Condition) Requires(axis Axis) (Classification, bool) {
	req := c.Horizontal
	if axis == AxisVertical {
		req = c.Vertical
	}
	if req == nil {
		return Unspecified, false
	}
	return *req, true
}

// Matches reports whether the condition accepts traits.
func (c Condition) Matches(traits Traits) bool {
	return Matches(c, traits)
}

// String renders the condition as "h=<class|any> v=<class|any>".
func (c Condition) String() string {
	return fmt.Sprintf("h=%s v=%s", describe(c.Horizontal), describe(c.Vertical))
}

// Matches reports whether every constrained axis of c equals the
// corresponding classification in traits. Unconstrained axes always pass.
func Matches(c Condition, traits Traits) bool {
	if c.Horizontal != nil && *c.Horizontal != traits.Horizontal {
		return false
	}
	if c.Vertical != nil && *c.Vertical != traits.Vertical {
		return false
	}
	return true
}

func describe(c *Classification) string {
	if c == nil {
		return "any"
	}
	return c.String()
}
