package flattener

import (
	"math"
	"strconv"

	"github.com/valyala/fastjson"
)

// Kind identifies which field of a Scalar is meaningful.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindBool
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "null"
	}
}

// Scalar is a normalized leaf value: a string, a bool, a 64-bit integer,
// a float64 or null. The zero value is null.
type Scalar struct {
	kind Kind
	s    string
	b    bool
	i    int64
	f    float64
}

func NullScalar() Scalar             { return Scalar{} }
func StringScalar(s string) Scalar   { return Scalar{kind: KindString, s: s} }
func BoolScalar(b bool) Scalar       { return Scalar{kind: KindBool, b: b} }
func IntScalar(i int64) Scalar       { return Scalar{kind: KindInt, i: i} }
func FloatScalar(f float64) Scalar   { return Scalar{kind: KindFloat, f: f} }
func (s Scalar) Kind() Kind          { return s.kind }
func (s Scalar) IsNull() bool        { return s.kind == KindNull }
func (s Scalar) StringValue() string { return s.s }
func (s Scalar) BoolValue() bool     { return s.b }
func (s Scalar) IntValue() int64     { return s.i }
func (s Scalar) FloatValue() float64 { return s.f }

// Interface returns the value as nil, string, bool, int64 or float64.
func (s Scalar) Interface() any {
	switch s.kind {
	case KindString:
		return s.s
	case KindBool:
		return s.b
	case KindInt:
		return s.i
	case KindFloat:
		return s.f
	default:
		return nil
	}
}

// Value builds the fastjson representation of s on a. Non-finite floats,
// which JSON cannot express, are written as null.
func (s Scalar) Value(a *fastjson.Arena) *fastjson.Value {
	switch s.kind {
	case KindString:
		return a.NewString(s.s)
	case KindBool:
		if s.b {
			return a.NewTrue()
		}
		return a.NewFalse()
	case KindInt:
		return a.NewNumberString(strconv.FormatInt(s.i, 10))
	case KindFloat:
		if math.IsInf(s.f, 0) || math.IsNaN(s.f) {
			return a.NewNull()
		}
		return a.NewNumberFloat64(s.f)
	default:
		return a.NewNull()
	}
}

// AppendJSON appends the JSON encoding of s to dst.
func (s Scalar) AppendJSON(dst []byte) []byte {
	var a fastjson.Arena
	return s.Value(&a).MarshalTo(dst)
}

// String returns the JSON encoding of s, so strings come back quoted.
func (s Scalar) String() string {
	return string(s.AppendJSON(nil))
}
