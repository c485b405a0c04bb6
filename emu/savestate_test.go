package emu

import (
	"encoding/binary"
	"errors"
	"hash/crc32"
	"testing"

	"github.com/google/go-cmp/cmp"

	"nescore/hw"
)

func TestSaveLoadState(t *testing.T) {
	c := newTestConsole(t, DefaultConfig())
	runFrames(t, c, pads(hw.ButtonA), pads(hw.ButtonB), pads(hw.ButtonUp))

	state, err := c.SaveState()
	if err != nil {
		t.Fatal(err)
	}
	want := c.NES().State()

	inputs := []hw.InputState{pads(hw.ButtonStart), pads(0), pads(hw.ButtonA | hw.ButtonDown)}
	runFrames(t, c, inputs...)
	after := c.NES().State()
	screen := append([]byte(nil), c.NES().Screen().Pix...)

	if err := c.LoadState(state); err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if diff := cmp.Diff(want, c.NES().State()); diff != "" {
		t.Fatalf("state mismatch after LoadState (-want +got):\n%s", diff)
	}

	// Replaying the same input gives the same result.
	runFrames(t, c, inputs...)
	if diff := cmp.Diff(after, c.NES().State()); diff != "" {
		t.Errorf("state mismatch after replay (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(screen, c.NES().Screen().Pix); diff != "" {
		t.Errorf("screen mismatch after replay (-want +got):\n%s", diff)
	}
}

// toneProgram keeps pulse 1 playing a 440Hz square wave.
var toneProgram = []byte{
	0xA9, 0x01,       // LDA #$01
	0x8D, 0x15, 0x40, // STA $4015
	0xA9, 0xBF,       // LDA #$BF
	0x8D, 0x00, 0x40, // STA $4000
	0xA9, 0xFD,       // LDA #$FD
	0x8D, 0x02, 0x40, // STA $4002
	0xA9, 0x00,       // LDA #$00
	0x8D, 0x03, 0x40, // STA $4003
	0x4C, 0x14, 0x80, // JMP $8014
}

func TestSaveLoadStateAudio(t *testing.T) {
	c := NewConsole(DefaultConfig())
	defer c.Close()
	if err := c.LoadCartridge(testROM(toneProgram, false)); err != nil {
		t.Fatal(err)
	}
	runFrames(t, c, pads(0), pads(0), pads(0), pads(0))

	state, err := c.SaveState()
	if err != nil {
		t.Fatal(err)
	}
	collect := func() []int16 {
		var samples []int16
		for range 3 {
			_, audio, err := c.RunFrame(hw.InputState{})
			if err != nil {
				t.Fatal(err)
			}
			samples = append(samples, audio...)
		}
		return samples
	}
	want := collect()

	if err := c.LoadState(state); err != nil {
		t.Fatal(err)
	}
	got := collect()
	if len(want) == 0 {
		t.Fatal("no audio produced")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("audio mismatch after LoadState (-want +got):\n%s", diff)
	}
}

func TestLoadStateErrors(t *testing.T) {
	c := newTestConsole(t, DefaultConfig())
	runFrames(t, c, pads(hw.ButtonA))

	state, err := c.SaveState()
	if err != nil {
		t.Fatal(err)
	}

	corrupt := func(f func(b []byte) []byte) []byte {
		return f(append([]byte(nil), state...))
	}
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{name: "empty", data: nil},
		{name: "truncated header", data: state[:stateHeaderSize-1]},
		{
			name: "bad magic",
			data: corrupt(func(b []byte) []byte { b[0] = 'X'; return b }),
		},
		{
			name: "bad version",
			data: corrupt(func(b []byte) []byte {
				binary.LittleEndian.PutUint16(b[len(stateMagic):], 99)
				return b
			}),
		},
		{
			name: "other cartridge",
			data: corrupt(func(b []byte) []byte {
				b[len(stateMagic)+2] ^= 0xFF
				return b
			}),
			want: ErrWrongCartridge,
		},
		{
			name: "bad checksum",
			data: corrupt(func(b []byte) []byte { b[len(b)-1] ^= 0x01; return b }),
		},
		{
			name: "truncated payload",
			data: corrupt(func(b []byte) []byte { return b[:len(b)-10] }),
		},
		{
			name: "malformed payload",
			data: corrupt(func(b []byte) []byte {
				b = append(b[:stateHeaderSize], 0xC1) // unused msgpack type
				binary.LittleEndian.PutUint32(b[len(stateMagic)+6:], crc32.ChecksumIEEE(b[stateHeaderSize:]))
				return b
			}),
		},
	}

	runFrames(t, c, pads(hw.ButtonB))
	before := c.NES().State()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.LoadState(tt.data)
			var serr *StateError
			if !errors.As(err, &serr) {
				t.Fatalf("LoadState: got %v, want a *StateError", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("LoadState: got %v, want %v", err, tt.want)
			}
			if diff := cmp.Diff(before, c.NES().State()); diff != "" {
				t.Errorf("state modified by failed LoadState (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadStateOtherCartridge(t *testing.T) {
	c := newTestConsole(t, DefaultConfig())
	state, err := c.SaveState()
	if err != nil {
		t.Fatal(err)
	}

	other := NewConsole(DefaultConfig())
	defer other.Close()
	if err := other.LoadCartridge(testROM(padProgram, false)); err != nil {
		t.Fatal(err)
	}
	if err := other.LoadState(state); !errors.Is(err, ErrWrongCartridge) {
		t.Errorf("LoadState: got %v, want ErrWrongCartridge", err)
	}
}

func TestLoadStateClearsFault(t *testing.T) {
	c := newTestConsole(t, DefaultConfig())
	state, err := c.SaveState()
	if err != nil {
		t.Fatal(err)
	}

	c.NES().CPU.PC = 0x0000
	c.NES().RAM.Data[0] = 0x02 // jam
	var fault *ExecutionFault
	if _, _, err := c.RunFrame(hw.InputState{}); !errors.As(err, &fault) {
		t.Fatalf("RunFrame: got %v, want an *ExecutionFault", err)
	}
	if _, _, err := c.RunFrame(hw.InputState{}); !errors.As(err, &fault) {
		t.Fatalf("RunFrame after fault: got %v, want an *ExecutionFault", err)
	}

	if err := c.LoadState(state); err != nil {
		t.Fatal(err)
	}
	runFrames(t, c, hw.InputState{})
}
