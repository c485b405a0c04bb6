package movie

import (
	"fmt"
	"io"

	"github.com/go-faster/jx"

	"nescore/hw"
)

// nmvVersion is the version of the native movie format.
const nmvVersion = 1

// Encode writes rec in native movie format (JSON):
//
//	{"version":1,"cart_crc":305419896,"start_state":"<base64>","frames":[[1,0],[0,0,2]]}
//
// Each frame holds the buttons of both controllers, followed by the command
// when there's one.
func Encode(w io.Writer, rec *Recording) error {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("version")
	e.Int(nmvVersion)
	e.FieldStart("cart_crc")
	e.UInt32(rec.CartCRC)
	if len(rec.StartState) != 0 {
		e.FieldStart("start_state")
		e.Base64(rec.StartState)
	}
	e.FieldStart("frames")
	e.ArrStart()
	for _, f := range rec.Frames {
		e.ArrStart()
		e.UInt8(uint8(f.Pads[0]))
		e.UInt8(uint8(f.Pads[1]))
		if f.Command != 0 {
			e.UInt8(uint8(f.Command))
		}
		e.ArrEnd()
	}
	e.ArrEnd()
	e.ObjEnd()

	_, err := w.Write(e.Bytes())
	return err
}

// Decode reads a recording in native movie format.
func Decode(r io.Reader) (*Recording, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	rec := &Recording{}
	version := -1
	d := jx.DecodeBytes(buf)
	err = d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "version":
			version, err = d.Int()
		case "cart_crc":
			rec.CartCRC, err = d.UInt32()
		case "start_state":
			rec.StartState, err = d.Base64()
		case "frames":
			err = d.Arr(func(d *jx.Decoder) error {
				f, err := decodeFrame(d)
				if err != nil {
					return fmt.Errorf("frame %d: %w", len(rec.Frames), err)
				}
				rec.Frames = append(rec.Frames, f)
				return nil
			})
		default:
			modMovie.DebugZ("skipping unknown key").String("key", key).End()
			err = d.Skip()
		}
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("movie: %w", err)
	}
	if version != nmvVersion {
		return nil, fmt.Errorf("movie: unsupported version %d", version)
	}
	return rec, nil
}

func decodeFrame(d *jx.Decoder) (hw.InputState, error) {
	var (
		f hw.InputState
		n int
	)
	err := d.Arr(func(d *jx.Decoder) error {
		v, err := d.UInt8()
		if err != nil {
			return err
		}
		switch n {
		case 0, 1:
			f.Pads[n] = hw.Buttons(v)
		case 2:
			f.Command = hw.Command(v)
		default:
			return fmt.Errorf("too many values")
		}
		n++
		return nil
	})
	if err != nil {
		return f, err
	}
	if n < 2 {
		return f, fmt.Errorf("want 2 or 3 values, got %d", n)
	}
	return f, nil
}
