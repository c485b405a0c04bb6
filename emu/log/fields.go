package log

import (
	"fmt"
	"strconv"
)

type fieldKind uint8

const (
	kindBool fieldKind = iota
	kindString
	kindHex
	kindUint
	kindInt
	kindError
	kindStringer
)

// ZField is a typed log field. Integers of all sizes share the same storage,
// width is the number of hex digits for kindHex.
type ZField struct {
	Key string

	kind  fieldKind
	width uint8
	num   uint64
	str   string
	err   error
	iface fmt.Stringer
}

// Value formats the field value.
func (f *ZField) Value() string {
	switch f.kind {
	case kindBool:
		return strconv.FormatBool(f.num != 0)
	case kindString:
		return f.str
	case kindHex:
		s := strconv.FormatUint(f.num, 16)
		for len(s) < int(f.width) {
			s = "0" + s
		}
		return s
	case kindUint:
		return strconv.FormatUint(f.num, 10)
	case kindInt:
		return strconv.FormatInt(int64(f.num), 10)
	case kindError:
		if f.err == nil {
			return "<nil>"
		}
		return f.err.Error()
	case kindStringer:
		if f.iface == nil {
			return "<nil>"
		}
		return f.iface.String()
	}
	return ""
}
