package log

import (
	"fmt"

	"gopkg.in/Sirupsen/logrus.v0"
)

const maxZFields = 16

// EntryZ is a log entry built with typed fields. A nil *EntryZ is valid and
// all its methods are no-ops, which is what a disabled module returns.
type EntryZ struct {
	lvl    Level
	msg    string
	mod    Module
	fields [maxZFields]ZField
	n      int
}

// Fields beyond maxZFields are dropped.
func (z *EntryZ) add(f ZField) *EntryZ {
	if z == nil {
		return nil
	}
	if z.n < maxZFields {
		z.fields[z.n] = f
		z.n++
	}
	return z
}

func (z *EntryZ) hex(key string, v uint64, width uint8) *EntryZ {
	return z.add(ZField{Key: key, kind: kindHex, num: v, width: width})
}

func (z *EntryZ) Hex8(key string, v uint8) *EntryZ   { return z.hex(key, uint64(v), 2) }
func (z *EntryZ) Hex16(key string, v uint16) *EntryZ { return z.hex(key, uint64(v), 4) }
func (z *EntryZ) Hex32(key string, v uint32) *EntryZ { return z.hex(key, uint64(v), 8) }

func (z *EntryZ) Uint8(key string, v uint8) *EntryZ {
	return z.add(ZField{Key: key, kind: kindUint, num: uint64(v)})
}

func (z *EntryZ) Uint64(key string, v uint64) *EntryZ {
	return z.add(ZField{Key: key, kind: kindUint, num: v})
}

func (z *EntryZ) Int(key string, v int) *EntryZ {
	return z.add(ZField{Key: key, kind: kindInt, num: uint64(v)})
}

func (z *EntryZ) Int64(key string, v int64) *EntryZ {
	return z.add(ZField{Key: key, kind: kindInt, num: uint64(v)})
}

func (z *EntryZ) Bool(key string, b bool) *EntryZ {
	f := ZField{Key: key, kind: kindBool}
	if b {
		f.num = 1
	}
	return z.add(f)
}

func (z *EntryZ) String(key string, s string) *EntryZ {
	return z.add(ZField{Key: key, kind: kindString, str: s})
}

func (z *EntryZ) Error(key string, err error) *EntryZ {
	return z.add(ZField{Key: key, kind: kindError, err: err})
}

func (z *EntryZ) Stringer(key string, s fmt.Stringer) *EntryZ {
	return z.add(ZField{Key: key, kind: kindStringer, iface: s})
}

// End adds the registered contexts fields and emits the entry.
func (z *EntryZ) End() {
	if z == nil {
		return
	}
	for _, c := range contexts {
		c.AddLogContext(z)
	}

	fields := make(logrus.Fields, z.n+1)
	fields["_mod"] = z.mod.String()
	for i := range z.fields[:z.n] {
		fields[z.fields[i].Key] = z.fields[i].Value()
	}
	emit(logrus.StandardLogger().WithFields(fields), z.lvl, z.msg)
}

func emit(entry *logrus.Entry, lvl Level, msg string) {
	switch lvl {
	case PanicLevel:
		entry.Panic(msg)
	case FatalLevel:
		entry.Fatal(msg)
	case ErrorLevel:
		entry.Error(msg)
	case WarnLevel:
		entry.Warn(msg)
	case InfoLevel:
		entry.Info(msg)
	default:
		entry.Debug(msg)
	}
}
