package gamegenie

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"nescore/hw"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		code string
		want hw.Cheat
	}{
		{"SXIOPO", hw.Cheat{Addr: 0x91D9, Value: 0xAD}},
		{"sxiopo", hw.Cheat{Addr: 0x91D9, Value: 0xAD}},
		{"GOSSIP", hw.Cheat{Addr: 0xD1DD, Value: 0x14}},
		{"AAAAAA", hw.Cheat{Addr: 0x8000, Value: 0x00}},
		{"ZEXPYGLA", hw.Cheat{Addr: 0x94A7, Value: 0x02, Compare: 0x03, HasCompare: true}},
		{"NNNNNNNN", hw.Cheat{Addr: 0xFFFF, Value: 0xFF, Compare: 0xFF, HasCompare: true}},
	}
	for _, tt := range tests {
		got, err := Decode(tt.code)
		if err != nil {
			t.Errorf("Decode(%q): %v", tt.code, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Decode(%q) mismatch (-want +got):\n%s", tt.code, diff)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, code := range []string{"", "SXIOP", "SXIOPOP", "SXIOPOPOP", "SXIOPB", "12345678"} {
		if _, err := Decode(code); !errors.Is(err, ErrInvalidCode) {
			t.Errorf("Decode(%q) = %v, want ErrInvalidCode", code, err)
		}
	}
}

func TestDecodeAll(t *testing.T) {
	cheats, err := DecodeAll([]string{"SXIOPO", "ZEXPYGLA"})
	if err != nil {
		t.Fatal(err)
	}
	if len(cheats) != 2 || cheats[1].Addr != 0x94A7 {
		t.Errorf("DecodeAll() = %+v", cheats)
	}

	if _, err := DecodeAll([]string{"SXIOPO", "BAD"}); err == nil {
		t.Errorf("DecodeAll accepted an invalid code")
	}
}
