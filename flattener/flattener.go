// Package flattener turns a nested JSON object or array into a flat,
// ordered mapping from path keys to scalar values.
//
// Given
//
//	{"a": {"b": 1, "c": null, "d": [false, true]}, "e": "f", "g": 2.3}
//
// the flattened form is
//
//	{"a.b": 1, "a.c": null, "a.d[0]": false, "a.d[1]": true, "e": "f", "g": 2.3}
//
// Traversal uses an explicit stack, so nesting depth is bounded by memory
// rather than by the goroutine stack.
package flattener

import (
	"fmt"

	"github.com/valyala/fastjson"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/mcncl/jsonflat/internal/errors"
	"github.com/mcncl/jsonflat/internal/parser"
)

// Map is the flattened form: path key to Scalar, in discovery order.
// Setting an existing key replaces its value and keeps its position.
type Map = orderedmap.OrderedMap[string, Scalar]

var (
	// ErrMalformedJSON is matched by errors.Is when the input is not valid JSON.
	ErrMalformedJSON = errors.ErrMalformedJSON
	// ErrInvalidRootType is matched by errors.Is when the root is a scalar.
	ErrInvalidRootType = errors.ErrInvalidRootType
)

// Flattener flattens one parsed document. The traversal runs once, on the
// first call to FlattenAsMap or Flatten, and both results are memoized.
//
// A Flattener is not safe for concurrent use. Use one per document, or the
// package level Flatten and FlattenAsMap, which never share state.
type Flattener struct {
	source *fastjson.Value
	stack  []*cursor
	flat   *Map

	flatJSON   string
	serialized bool
}

// New parses json and prepares a Flattener for it.
func New(json string) (*Flattener, error) {
	v, err := parser.ParseString(json)
	if err != nil {
		return nil, err
	}
	return NewFromValue(v)
}

// NewFromBytes is New for a byte slice.
func NewFromBytes(json []byte) (*Flattener, error) {
	return New(string(json))
}

// NewFromValue prepares a Flattener for an already parsed document. The
// root must be an object or an array. v is only read, never modified.
func NewFromValue(v *fastjson.Value) (*Flattener, error) {
	if !parser.IsContainer(v) {
		got := "nothing"
		if v != nil {
			got = v.Type().String()
		}
		return nil, errors.NewFlattenError(
			fmt.Sprintf("input must be a JSON object or array, got %s", got),
			errors.ErrInvalidRootType,
		)
	}

	f := &Flattener{
		source: v,
		flat:   orderedmap.New[string, Scalar](),
	}
	f.reduce(v)
	return f, nil
}

// Flatten parses json and returns its flattened JSON text.
func Flatten(json string) (string, error) {
	f, err := New(json)
	if err != nil {
		return "", err
	}
	return f.Flatten(), nil
}

// FlattenAsMap parses json and returns its flattened mapping.
func FlattenAsMap(json string) (*Map, error) {
	f, err := New(json)
	if err != nil {
		return nil, err
	}
	return f.FlattenAsMap(), nil
}

// FlattenAsMap drains the traversal and returns the mapping. Later calls
// return the same *Map without walking the document again.
func (f *Flattener) FlattenAsMap() *Map {
	for len(f.stack) > 0 {
		top := f.stack[len(f.stack)-1]
		if !top.hasNext() {
			f.stack[len(f.stack)-1] = nil
			f.stack = f.stack[:len(f.stack)-1]
			continue
		}
		f.reduce(top.next())
	}
	return f.flat
}

// Flatten returns the mapping as a compact JSON object, keys in mapping
// order. The text is built once and cached.
func (f *Flattener) Flatten() string {
	if f.serialized {
		return f.flatJSON
	}

	m := f.FlattenAsMap()

	var a fastjson.Arena
	dst := make([]byte, 0, 2+m.Len()*16)
	dst = append(dst, '{')
	first := true
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		if !first {
			dst = append(dst, ',')
		}
		first = false
		dst = a.NewString(pair.Key).MarshalTo(dst)
		dst = append(dst, ':')
		dst = pair.Value.Value(&a).MarshalTo(dst)
		a.Reset()
	}
	dst = append(dst, '}')

	f.flatJSON = string(dst)
	f.serialized = true
	return f.flatJSON
}

// reduce opens a cursor for a container or records a leaf under the key
// described by the current stack.
func (f *Flattener) reduce(v *fastjson.Value) {
	switch v.Type() {
	case fastjson.TypeObject:
		o, _ := v.Object()
		f.stack = append(f.stack, newObjectCursor(o))
	case fastjson.TypeArray:
		elems, _ := v.Array()
		f.stack = append(f.stack, newArrayCursor(elems))
	default:
		f.flat.Set(pathKey(f.stack), normalize(v))
	}
}
