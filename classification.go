package vary

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance.
var validate = validator.New()

// Axis identifies one of the two independent classification dimensions.
type Axis int

const (
	// AxisHorizontal is the width dimension.
	AxisHorizontal Axis = iota

	// AxisVertical is the height dimension.
	AxisVertical
)

// String returns the string representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Classification is an environment's coarse mode along one axis.
type Classification int

const (
	// Unspecified indicates the environment has not classified the axis.
	Unspecified Classification = iota

	// Compact indicates a constrained amount of space along the axis.
	Compact

	// Regular indicates an expansive amount of space along the axis.
	Regular
)

// String returns the string representation of the classification.
func (c Classification) String() string {
	switch c {
	case Unspecified:
		return "unspecified"
	case Compact:
		return "compact"
	case Regular:
		return "regular"
	default:
		return "unknown"
	}
}

// ParseClassification returns the Classification named by s.
// The empty string parses as Unspecified.
func ParseClassification(s string) (Classification, error) {
	switch s {
	case "", "unspecified":
		return Unspecified, nil
	case "compact":
		return Compact, nil
	case "regular":
		return Regular, nil
	default:
		return Unspecified, fmt.Errorf("unknown classification %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Classification) MarshalText() ([]byte, error) {
	switch c {
	case Unspecified, Compact, Regular:
		return []byte(c.String()), nil
	default:
		return nil, fmt.Errorf("invalid classification %d", int(c))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Classification) UnmarshalText(text []byte) error {
	parsed, err := ParseClassification(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Traits is an environment's current classification on both axes.
type Traits struct {
	Horizontal Classification `json:"horizontal" yaml:"horizontal" validate:"min=0,max=2"`
	Vertical   Classification `json:"vertical" yaml:"vertical" validate:"min=0,max=2"`
}

// On returns the classification for the given axis.
func (t Traits) On(axis Axis) Classification {
	if axis == AxisVertical {
		return t.Vertical
	}
	return t.Horizontal
}

// String returns a compact "h=<class> v=<class>" rendering.
func (t Traits) String() string {
	return fmt.Sprintf("h=%s v=%s", t.Horizontal, t.Vertical)
}

// Validate reports whether both classifications are known values.
// JSONCodec and YAMLCodec already reject unknown names while decoding, so
// this only catches out-of-range values produced by other Codecs.
func (t Traits) Validate() error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("invalid traits %s: %w", t, err)
	}
	return nil
}
