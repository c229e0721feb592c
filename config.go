package zodgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ArrayStyle selects how a homogeneous array wraps its item expression.
type ArrayStyle string

const (
	ArrayPrefix  ArrayStyle = "prefix"  // z.array(x)
	ArrayPostfix ArrayStyle = "postfix" // x.array()
)

// IntersectionOrder selects the operand order of z.intersection for unions
// that also carry an object facet.
type IntersectionOrder string

const (
	UnionFirst  IntersectionOrder = "union-first"
	ObjectFirst IntersectionOrder = "object-first"
)

// ClosedObjects selects the spelling of an object that rejects unknown keys.
type ClosedObjects string

const (
	ClosedStrict       ClosedObjects = "strict"        // z.object({...}).strict()
	ClosedStrictObject ClosedObjects = "strict-object" // z.strictObject({...})
	ClosedImplicit     ClosedObjects = "implicit"      // z.object({...})
)

// OpenObjects selects the spelling of an object that keeps unknown keys.
type OpenObjects string

const (
	OpenPassthrough OpenObjects = "passthrough"  // z.object({...}).passthrough()
	OpenLooseObject OpenObjects = "loose-object" // z.looseObject({...})
	OpenCatchall    OpenObjects = "catchall"     // z.object({...}).catchall(z.any())
)

// DefaultMaxDepth bounds IR nesting when Config.MaxDepth is zero.
const DefaultMaxDepth = 256

// Config holds the option flags consulted by the production rules.
// The zero value is usable and equals DefaultConfig.
type Config struct {
	// CoerceDates emits z.coerce.date() for date and date-time strings.
	CoerceDates bool `yaml:"coerce_dates" json:"coerce_dates"`
	// ArrayStyle defaults to prefix.
	ArrayStyle ArrayStyle `yaml:"array_style" json:"array_style" validate:"omitempty,oneof=prefix postfix"`
	// ExplicitMinMax spells numeric bounds .gte/.lte instead of .min/.max.
	ExplicitMinMax bool `yaml:"explicit_min_max" json:"explicit_min_max"`
	// Descriptions appends .describe(...) for nodes carrying a description.
	Descriptions bool `yaml:"descriptions" json:"descriptions"`
	// IntersectionOrder defaults to union-first.
	IntersectionOrder IntersectionOrder `yaml:"intersection_order" json:"intersection_order" validate:"omitempty,oneof=union-first object-first"`
	// PropertyDefaults emits .default(v) on properties with a default value.
	PropertyDefaults bool `yaml:"property_defaults" json:"property_defaults"`
	// PreferUnknown spells the accept-anything schema z.unknown().
	PreferUnknown bool `yaml:"prefer_unknown" json:"prefer_unknown"`
	// IgnoreUndefined never marks properties .optional().
	IgnoreUndefined bool `yaml:"ignore_undefined" json:"ignore_undefined"`
	// NonNegativeInt turns integer minimum 0 into .nonnegative().
	NonNegativeInt bool `yaml:"nonnegative_int" json:"nonnegative_int"`
	// ClosedObjects defaults to strict.
	ClosedObjects ClosedObjects `yaml:"closed_objects" json:"closed_objects" validate:"omitempty,oneof=strict strict-object implicit"`
	// OpenObjects defaults to passthrough.
	OpenObjects OpenObjects `yaml:"open_objects" json:"open_objects" validate:"omitempty,oneof=passthrough loose-object catchall"`
	// OpenByDefault treats an absent additionalProperties as true.
	OpenByDefault bool `yaml:"open_by_default" json:"open_by_default"`
	// MaxDepth bounds IR nesting; 0 selects DefaultMaxDepth.
	MaxDepth int `yaml:"max_depth" json:"max_depth" validate:"gte=0,lte=100000"`
}

// DefaultConfig returns the configuration with every enum spelled out.
func DefaultConfig() Config {
	return Config{
		ArrayStyle:        ArrayPrefix,
		IntersectionOrder: UnionFirst,
		ClosedObjects:     ClosedStrict,
		OpenObjects:       OpenPassthrough,
		MaxDepth:          DefaultMaxDepth,
	}
}

var validate = validator.New()

// Validate checks enum fields and bounds.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("zodgen: invalid config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
	}
	return fmt.Errorf("zodgen: invalid config: %s", strings.Join(msgs, "; "))
}

// normalized fills zero-valued enums and depth with their defaults.
func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.ArrayStyle == "" {
		c.ArrayStyle = d.ArrayStyle
	}
	if c.IntersectionOrder == "" {
		c.IntersectionOrder = d.IntersectionOrder
	}
	if c.ClosedObjects == "" {
		c.ClosedObjects = d.ClosedObjects
	}
	if c.OpenObjects == "" {
		c.OpenObjects = d.OpenObjects
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = d.MaxDepth
	}
	return c
}
