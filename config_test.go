package zodgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	d := DefaultConfig()
	require.NoError(t, d.Validate())
	assert.Equal(t, d, Config{}.normalized())
	assert.Equal(t, d, MustNew(Config{}).Config())
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name  string
		cfg   Config
		field string
	}{
		{"array style", Config{ArrayStyle: "sideways"}, "ArrayStyle"},
		{"intersection order", Config{IntersectionOrder: "random"}, "IntersectionOrder"},
		{"closed objects", Config{ClosedObjects: "sealed"}, "ClosedObjects"},
		{"open objects", Config{OpenObjects: "wide"}, "OpenObjects"},
		{"negative depth", Config{MaxDepth: -1}, "MaxDepth"},
		{"huge depth", Config{MaxDepth: 1 << 20}, "MaxDepth"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "zodgen: invalid config: "+tc.field)
		})
	}
}

func TestConfig_NormalizedKeepsExplicitValues(t *testing.T) {
	c := Config{ArrayStyle: ArrayPostfix, OpenObjects: OpenCatchall, MaxDepth: 8, Descriptions: true}.normalized()
	assert.Equal(t, ArrayPostfix, c.ArrayStyle)
	assert.Equal(t, OpenCatchall, c.OpenObjects)
	assert.Equal(t, 8, c.MaxDepth)
	assert.True(t, c.Descriptions)
	assert.Equal(t, ClosedStrict, c.ClosedObjects)
	assert.Equal(t, UnionFirst, c.IntersectionOrder)
}

func TestConfig_YAML(t *testing.T) {
	var c Config
	require.NoError(t, yaml.Unmarshal([]byte(`
array_style: postfix
closed_objects: strict-object
open_by_default: true
explicit_min_max: true
max_depth: 32
`), &c))
	require.NoError(t, c.Validate())
	assert.Equal(t, ArrayPostfix, c.ArrayStyle)
	assert.Equal(t, ClosedStrictObject, c.ClosedObjects)
	assert.True(t, c.OpenByDefault)
	assert.True(t, c.ExplicitMinMax)
	assert.Equal(t, 32, c.MaxDepth)

	out, err := yaml.Marshal(DefaultConfig())
	require.NoError(t, err)
	var back Config
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, DefaultConfig(), back)
}
