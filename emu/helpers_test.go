package emu

import (
	"testing"

	"nescore/hw"
	"nescore/ines"
)

// padProgram reads the first controller in a loop and stores the last
// complete read at $11, the button in bit 7 being A.
var padProgram = []byte{
	0xA9, 0x01,       // LDA #$01
	0x8D, 0x16, 0x40, // STA $4016
	0xA9, 0x00,       // LDA #$00
	0x8D, 0x16, 0x40, // STA $4016
	0xA2, 0x08,       // LDX #$08
	0xAD, 0x16, 0x40, // LDA $4016
	0x4A,             // LSR A
	0x26, 0x10,       // ROL $10
	0xCA,             // DEX
	0xD0, 0xF7,       // BNE $800C
	0xA5, 0x10,       // LDA $10
	0x85, 0x11,       // STA $11
	0x4C, 0x00, 0x80, // JMP $8000
}

// testROM returns a 16KB NROM image running code at $8000.
func testROM(code []byte, battery bool) []byte {
	prg := make([]byte, 0x4000)
	copy(prg, code)
	prg[0x3FFC] = 0x00
	prg[0x3FFD] = 0x80
	return ines.New(0, ines.Horizontal, battery, prg, nil).Bytes()
}

func newTestConsole(t *testing.T, cfg Config) *Console {
	t.Helper()

	c := NewConsole(cfg)
	t.Cleanup(c.Close)
	if err := c.LoadCartridge(testROM(padProgram, true)); err != nil {
		t.Fatalf("LoadCartridge: %v", err)
	}
	return c
}

func runFrames(t *testing.T, c *Console, inputs ...hw.InputState) {
	t.Helper()

	for i, in := range inputs {
		if _, _, err := c.RunFrame(in); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
	}
}

func pads(p1 hw.Buttons) hw.InputState {
	return hw.InputState{Pads: [2]hw.Buttons{p1, 0}}
}
