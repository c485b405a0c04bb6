package ines

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testRom(mapper uint8, prgBanks, chrBanks int) *Rom {
	prg := make([]byte, prgBanks*prgBankSize)
	for i := range prg {
		prg[i] = uint8(i / prgBankSize)
	}
	chr := make([]byte, chrBanks*chrBankSize)
	for i := range chr {
		chr[i] = 0xC0 | uint8(i/chrBankSize)
	}
	return New(mapper, Vertical, true, prg, chr)
}

func TestDecodeRoundTrip(t *testing.T) {
	want := testRom(4, 8, 16)

	got, err := Decode(want.Bytes())
	if err != nil {
		t.Fatal(err)
	}

	if got.Mapper() != 4 {
		t.Errorf("Mapper() = %d, want 4", got.Mapper())
	}
	if got.Mirroring() != Vertical {
		t.Errorf("Mirroring() = %s, want vertical", got.Mirroring())
	}
	if !got.HasBattery() {
		t.Errorf("HasBattery() = false, want true")
	}
	if got.IsNES20() {
		t.Errorf("IsNES20() = true, want false")
	}
	if diff := cmp.Diff(want.PRG, got.PRG); diff != "" {
		t.Errorf("PRG mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want.CHR, got.CHR); diff != "" {
		t.Errorf("CHR mismatch (-want +got):\n%s", diff)
	}
	if got.CRC32() != want.CRC32() {
		t.Errorf("CRC32() = %08x, want %08x", got.CRC32(), want.CRC32())
	}
}

func TestDecodeErrors(t *testing.T) {
	valid := testRom(0, 2, 1).Bytes()

	tests := []struct {
		name string
		buf  []byte
		want error
	}{
		{"empty", nil, ErrTruncated},
		{"short header", valid[:10], ErrTruncated},
		{"bad magic", append([]byte("NES\x00"), valid[4:]...), ErrBadMagic},
		{"truncated PRG", valid[:16+prgBankSize], ErrTruncated},
		{"truncated CHR", valid[:len(valid)-1], ErrTruncated},
		{"no PRG", func() []byte {
			b := bytes.Clone(valid)
			b[4] = 0
			return b
		}(), ErrNoPRG},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.buf)
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTrainerIsSkipped(t *testing.T) {
	rom := testRom(0, 1, 1)
	rom.raw[6] |= 0x04
	rom.Trainer = bytes.Repeat([]byte{0xAA}, trainerSize)

	got, err := Decode(rom.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Trainer) != trainerSize {
		t.Fatalf("len(Trainer) = %d, want %d", len(got.Trainer), trainerSize)
	}
	if got.PRG[0] != 0 {
		t.Errorf("PRG[0] = %02x, trainer wasn't skipped", got.PRG[0])
	}
}

func TestMapperNumber(t *testing.T) {
	rom := testRom(0x41, 1, 1)
	if rom.Mapper() != 0x41 {
		t.Errorf("Mapper() = %d, want %d", rom.Mapper(), 0x41)
	}

	// Garbage in bytes 12-15 means byte 7 can't be trusted.
	rom.raw[12] = 'D'
	if rom.Mapper() != 0x01 {
		t.Errorf("Mapper() with dirty header = %d, want 1", rom.Mapper())
	}
}

func TestPrintInfos(t *testing.T) {
	var sb strings.Builder
	testRom(1, 2, 0).PrintInfos(&sb)
	for _, want := range []string{"mapper:     1", "PRG ROM:    32KB", "CHR RAM:    8KB", "battery:    true"} {
		if !strings.Contains(sb.String(), want) {
			t.Errorf("PrintInfos output doesn't contain %q:\n%s", want, sb.String())
		}
	}
}
