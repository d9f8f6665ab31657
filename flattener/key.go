package flattener

import (
	"strconv"
	"strings"
)

const separator = '.'

// pathKey encodes the current item of every cursor, root first.
//
// Member names join with separator. A name that itself contains the
// separator is written as ["name"] so it cannot be read as two segments.
// Array positions are written as [i]. Brackets and quotes inside names are
// not escaped.
func pathKey(stack []*cursor) string {
	var sb strings.Builder
	for _, c := range stack {
		if !c.object {
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(c.index()))
			sb.WriteByte(']')
			continue
		}

		name := c.name()
		if strings.IndexByte(name, separator) >= 0 {
			sb.WriteString(`["`)
			sb.WriteString(name)
			sb.WriteString(`"]`)
			continue
		}
		if sb.Len() != 0 {
			sb.WriteByte(separator)
		}
		sb.WriteString(name)
	}
	return sb.String()
}
