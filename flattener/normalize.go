package flattener

import (
	"math"
	"strconv"

	"github.com/valyala/fastjson"
)

const twoPow63 = 1 << 63

// normalize converts a leaf into a Scalar. Anything that is not a string,
// number or boolean becomes null.
func normalize(v *fastjson.Value) Scalar {
	switch v.Type() {
	case fastjson.TypeString:
		b, _ := v.StringBytes()
		return StringScalar(string(b))
	case fastjson.TypeTrue:
		return BoolScalar(true)
	case fastjson.TypeFalse:
		return BoolScalar(false)
	case fastjson.TypeNumber:
		return normalizeNumber(v)
	default:
		return NullScalar()
	}
}

// normalizeNumber applies the double-precision rule: a finite value equal to
// its own rounding is an integer, everything else is a float. Integers past
// 2^53 are therefore only as precise as the literal allows.
func normalizeNumber(v *fastjson.Value) Scalar {
	// The literal is re-read with strconv for correctly rounded doubles.
	// Out of range literals such as 1e400 still yield a usable +-Inf.
	f, _ := strconv.ParseFloat(string(v.MarshalTo(nil)), 64)

	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Round(f) {
		return FloatScalar(f)
	}
	if i, err := v.Int64(); err == nil {
		return IntScalar(i)
	}
	if f >= -twoPow63 && f < twoPow63 {
		return IntScalar(int64(f))
	}
	return FloatScalar(f)
}
