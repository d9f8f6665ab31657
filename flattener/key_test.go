package flattener

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fastjson"
)

func advanced(c *cursor, n int) *cursor {
	for i := 0; i < n; i++ {
		c.next()
	}
	return c
}

func objectCursor(t *testing.T, names ...string) *cursor {
	t.Helper()
	var a fastjson.Arena
	o := a.NewObject()
	for _, name := range names {
		o.Set(name, a.NewNull())
	}
	obj, err := o.Object()
	assert.NoError(t, err)
	return newObjectCursor(obj)
}

func arrayCursor(n int) *cursor {
	elems := make([]*fastjson.Value, n)
	return newArrayCursor(elems)
}

func TestPathKey(t *testing.T) {
	tests := []struct {
		name     string
		stack    []*cursor
		expected string
	}{
		{
			name:     "empty stack",
			stack:    nil,
			expected: "",
		},
		{
			name:     "single member",
			stack:    []*cursor{advanced(objectCursor(t, "a"), 1)},
			expected: "a",
		},
		{
			name: "members join with dot",
			stack: []*cursor{
				advanced(objectCursor(t, "a"), 1),
				advanced(objectCursor(t, "x", "b"), 2),
			},
			expected: "a.b",
		},
		{
			name: "array index",
			stack: []*cursor{
				advanced(objectCursor(t, "d"), 1),
				advanced(arrayCursor(3), 3),
			},
			expected: "d[2]",
		},
		{
			name:     "dotted name at root",
			stack:    []*cursor{advanced(objectCursor(t, "x.y"), 1)},
			expected: `["x.y"]`,
		},
		{
			name: "plain name after dotted name",
			stack: []*cursor{
				advanced(objectCursor(t, "x.y"), 1),
				advanced(objectCursor(t, "z"), 1),
			},
			expected: `["x.y"].z`,
		},
		{
			name: "member after index",
			stack: []*cursor{
				advanced(arrayCursor(1), 1),
				advanced(objectCursor(t, "id"), 1),
			},
			expected: "[0].id",
		},
		{
			name: "brackets in names are not escaped",
			stack: []*cursor{
				advanced(objectCursor(t, "a[0]"), 1),
			},
			expected: "a[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pathKey(tt.stack))
		})
	}
}

func TestCursor(t *testing.T) {
	c := objectCursor(t, "a", "b")
	assert.True(t, c.hasNext())
	c.next()
	assert.Equal(t, "a", c.name())
	c.next()
	assert.Equal(t, "b", c.name())
	assert.False(t, c.hasNext())

	arr := arrayCursor(0)
	assert.False(t, arr.hasNext())
}
