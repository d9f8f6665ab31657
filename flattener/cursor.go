package flattener

import "github.com/valyala/fastjson"

type member struct {
	name  string
	value *fastjson.Value
}

// cursor tracks progress through the children of one open container.
// After next has been called, the child it returned is the current item:
// members[pos-1] for an object, elems[pos-1] for an array.
type cursor struct {
	object  bool
	members []member
	elems   []*fastjson.Value
	pos     int
}

func newObjectCursor(o *fastjson.Object) *cursor {
	c := &cursor{object: true, members: make([]member, 0, o.Len())}
	o.Visit(func(key []byte, v *fastjson.Value) {
		c.members = append(c.members, member{name: string(key), value: v})
	})
	return c
}

func newArrayCursor(elems []*fastjson.Value) *cursor {
	return &cursor{elems: elems}
}

func (c *cursor) len() int {
	if c.object {
		return len(c.members)
	}
	return len(c.elems)
}

func (c *cursor) hasNext() bool {
	return c.pos < c.len()
}

func (c *cursor) next() *fastjson.Value {
	c.pos++
	if c.object {
		return c.members[c.pos-1].value
	}
	return c.elems[c.pos-1]
}

// index is the array position of the current item.
func (c *cursor) index() int {
	return c.pos - 1
}

// name is the member name of the current item.
func (c *cursor) name() string {
	return c.members[c.pos-1].name
}
