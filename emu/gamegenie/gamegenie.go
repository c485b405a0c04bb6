// Package gamegenie decodes Game Genie codes into bus read overrides.
package gamegenie

import (
	"errors"
	"fmt"
	"strings"

	"nescore/hw"
)

const alphabet = "APZLGITYEOXUKSVN"

var ErrInvalidCode = errors.New("invalid game genie code")

// Decode decodes a 6 letters (address and value) or 8 letters (address,
// value and compare) code. Letters are case insensitive.
func Decode(code string) (hw.Cheat, error) {
	if len(code) != 6 && len(code) != 8 {
		return hw.Cheat{}, fmt.Errorf("%w %q: must be 6 or 8 letters", ErrInvalidCode, code)
	}

	var n [8]uint16
	for i := range len(code) {
		idx := strings.IndexByte(alphabet, upper(code[i]))
		if idx < 0 {
			return hw.Cheat{}, fmt.Errorf("%w %q: invalid letter %q", ErrInvalidCode, code, code[i])
		}
		n[i] = uint16(idx)
	}

	addr := 0x8000 |
		(n[3]&7)<<12 |
		(n[5]&7)<<8 | (n[4]&8)<<8 |
		(n[2]&7)<<4 | (n[1]&8)<<4 |
		(n[4]&7) | (n[3]&8)

	val := (n[1]&7)<<4 | (n[0]&8)<<4 | (n[0] & 7)

	cheat := hw.Cheat{Addr: addr}
	if len(code) == 6 {
		cheat.Value = uint8(val | n[5]&8)
		return cheat, nil
	}

	cheat.Value = uint8(val | n[7]&8)
	cheat.Compare = uint8((n[7]&7)<<4 | (n[6]&8)<<4 | (n[6] & 7) | (n[5] & 8))
	cheat.HasCompare = true
	return cheat, nil
}

// DecodeAll decodes a list of codes.
func DecodeAll(codes []string) ([]hw.Cheat, error) {
	cheats := make([]hw.Cheat, 0, len(codes))
	for _, code := range codes {
		c, err := Decode(code)
		if err != nil {
			return nil, err
		}
		cheats = append(cheats, c)
	}
	return cheats, nil
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
