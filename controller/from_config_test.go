package controller

import (
	"strings"
	"testing"

	"github.com/amp-labs/sections/config"
	"github.com/amp-labs/sections/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func todoFields() config.Fields[*todo] {
	return config.Fields[*todo]{
		"title": config.TextField(todoTitle),
		"id":    config.OrderedField(func(t *todo) int { return t.id }),
	}
}

func todoProject(t *todo) string { return t.project }

func TestFromConfig(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(`
name: from-config
parallelism: 3
sortDescriptors:
  - key: title
    natural: true
    ascending: false
  - key: id
`))
	require.NoError(t, err)

	c, err := FromConfig(cfg, todoFields(), todoProject, strings.Compare)
	require.NoError(t, err)
	assert.Equal(t, "from-config", c.Name())
	assert.Equal(t, 3, c.workers(t.Context()))

	a := &todo{id: 2, project: "p", title: "step2"}
	b := &todo{id: 1, project: "p", title: "step10"}
	d := &todo{id: 1, project: "p", title: "step2"}

	_, err = c.Load(tests.Context(t), a, b, d)
	require.NoError(t, err)

	assert.Equal(t, []*todo{b, d, a}, c.Objects(0))
}

func TestFromConfigUnknownField(t *testing.T) {
	t.Parallel()

	cfg := &config.Controller{
		Name:            "broken",
		SortDescriptors: []config.Descriptor{{Key: "priority"}},
	}

	_, err := FromConfig(cfg, todoFields(), todoProject, strings.Compare)
	require.ErrorIs(t, err, config.ErrUnknownField)
	assert.Contains(t, err.Error(), `"broken"`)
}

func TestFromConfigNil(t *testing.T) {
	t.Parallel()

	c, err := FromConfig[string](nil, todoFields(), todoProject, strings.Compare)
	require.ErrorIs(t, err, ErrNilConfig)
	assert.Nil(t, c)
}
