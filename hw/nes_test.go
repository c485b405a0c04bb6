package hw

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"nescore/hw/apu"
	"nescore/hw/hwdefs"
	"nescore/hw/mappers"
	"nescore/ines"
)

// testROM returns a 16KB NROM image with code at $8000. The reset vector
// points to $8000, NMI and IRQ vectors point to nmi.
func testROM(code []byte, nmi uint16, mirroring ines.Mirroring) *ines.Rom {
	prg := make([]byte, 0x4000)
	copy(prg, code)
	prg[0x3FFA] = uint8(nmi)
	prg[0x3FFB] = uint8(nmi >> 8)
	prg[0x3FFC] = 0x00
	prg[0x3FFD] = 0x80
	prg[0x3FFE] = uint8(nmi)
	prg[0x3FFF] = uint8(nmi >> 8)
	return ines.New(0, mirroring, false, prg, nil)
}

func newTestNES(t *testing.T, rom *ines.Rom) *NES {
	t.Helper()

	cart, err := mappers.New(rom)
	if err != nil {
		t.Fatal(err)
	}
	return New(cart, Config{SampleRate: apu.DefaultSampleRate})
}

// nmiCounter enables NMIs, sets the backdrop color to $21 and loops
// forever. The NMI handler increments $10.
var nmiCounter = []byte{
	0x78,             // $8000 SEI
	0xD8,             // $8001 CLD
	0xA2, 0xFF,       // $8002 LDX #$FF
	0x9A,             // $8004 TXS
	0xA9, 0x3F,       // $8005 LDA #$3F
	0x8D, 0x06, 0x20, // $8007 STA $2006
	0xA9, 0x00,       // $800A LDA #$00
	0x8D, 0x06, 0x20, // $800C STA $2006
	0xA9, 0x21,       // $800F LDA #$21
	0x8D, 0x07, 0x20, // $8011 STA $2007
	0xA9, 0x00,       // $8014 LDA #$00
	0x8D, 0x06, 0x20, // $8016 STA $2006
	0x8D, 0x06, 0x20, // $8019 STA $2006
	0xA9, 0x80,       // $801C LDA #$80
	0x8D, 0x00, 0x20, // $801E STA $2000
	0x4C, 0x21, 0x80, // $8021 JMP $8021
	0xE6, 0x10,       // $8024 INC $10
	0x40,             // $8026 RTI
}

const nmiCounterHandler = 0x8024

func runFrames(t *testing.T, nes *NES, n int) {
	t.Helper()

	for range n {
		if _, _, err := nes.RunFrame(InputState{}); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRunFrame(t *testing.T) {
	nes := newTestNES(t, testROM(nmiCounter, nmiCounterHandler, ines.Horizontal))

	const nframes = 10
	var samples int
	for range nframes {
		_, audio, err := nes.RunFrame(InputState{})
		if err != nil {
			t.Fatal(err)
		}
		samples += audio.Frames()
	}

	if nes.Frame != nframes {
		t.Errorf("Frame = %d, want %d", nes.Frame, nframes)
	}
	if got := nes.RAM.Data[0x10]; got < nframes-1 || got > nframes {
		t.Errorf("NMI count = %d after %d frames", got, nframes)
	}

	// 60 frames per second, give or take.
	const want = nframes * apu.DefaultSampleRate / 60
	if samples < want-want/20 || samples > want+want/20 {
		t.Errorf("got %d audio frames, want about %d", samples, want)
	}

	// ~29780.5 CPU cycles per frame.
	if got := nes.CPU.Cycles; got < 29780*(nframes-1) || got > 29781*(nframes+1) {
		t.Errorf("CPU cycles = %d after %d frames", got, nframes)
	}
}

func TestRunFrameBackdrop(t *testing.T) {
	nes := newTestNES(t, testROM(nmiCounter, nmiCounterHandler, ines.Horizontal))
	runFrames(t, nes, 2)

	want := palette[0][0x21]
	screen := nes.Screen()
	for _, pt := range [][2]int{{0, 0}, {128, 120}, {255, 239}} {
		if got := screen.RGBAAt(pt[0], pt[1]); got != want {
			t.Errorf("pixel %v = %v, want %v", pt, got, want)
		}
	}
}

func TestRunFrameFault(t *testing.T) {
	code := []byte{0xEA, 0x02} // NOP; JAM
	nes := newTestNES(t, testROM(code, 0x8000, ines.Horizontal))

	_, _, err := nes.RunFrame(InputState{})
	var fault *ExecutionFault
	if !errors.As(err, &fault) {
		t.Fatalf("RunFrame() = %v, want an *ExecutionFault", err)
	}
	if fault.PC != 0x8001 {
		t.Errorf("fault PC = $%04X, want $8001", fault.PC)
	}

	// The fault sticks.
	if _, _, err2 := nes.RunFrame(InputState{}); err2 != err {
		t.Errorf("RunFrame() = %v, want %v", err2, err)
	}
}

func TestRunFrameResetCommand(t *testing.T) {
	nes := newTestNES(t, testROM(nmiCounter, nmiCounterHandler, ines.Horizontal))
	runFrames(t, nes, 5)
	count := nes.RAM.Data[0x10]

	// RAM survives a soft reset, NMIs are disabled until the program
	// enables them again.
	if _, _, err := nes.RunFrame(InputState{Command: CmdSoftReset}); err != nil {
		t.Fatal(err)
	}
	if got := nes.RAM.Data[0x10]; got < count || got > count+1 {
		t.Errorf("NMI count = %d after soft reset, was %d", got, count)
	}

	if _, _, err := nes.RunFrame(InputState{Command: CmdHardReset}); err != nil {
		t.Fatal(err)
	}
	if nes.Frame != 1 {
		t.Errorf("Frame = %d after hard reset, want 1", nes.Frame)
	}
}

func TestStateRoundTrip(t *testing.T) {
	nes := newTestNES(t, testROM(nmiCounter, nmiCounterHandler, ines.Vertical))
	runFrames(t, nes, 3)

	saved := nes.State()
	if err := nes.ValidateState(saved); err != nil {
		t.Fatalf("ValidateState: %v", err)
	}

	runFrames(t, nes, 4)
	want := nes.State()
	wantPix := append([]uint8(nil), nes.Screen().Pix...)

	nes.SetState(saved)
	if diff := cmp.Diff(saved, nes.State()); diff != "" {
		t.Fatalf("state mismatch after SetState (-want +got):\n%s", diff)
	}
	runFrames(t, nes, 4)

	if diff := cmp.Diff(want, nes.State()); diff != "" {
		t.Errorf("replay diverged (-want +got):\n%s", diff)
	}
	if !cmp.Equal(wantPix, nes.Screen().Pix) {
		t.Errorf("replayed frame differs")
	}
}

func TestValidateStateMapperMismatch(t *testing.T) {
	nes := newTestNES(t, testROM(nmiCounter, nmiCounterHandler, ines.Horizontal))
	state := nes.State()
	state.Cartridge.Kind = uint16(mappers.MMC3)
	if err := nes.ValidateState(state); err == nil {
		t.Errorf("ValidateState accepted a state of another mapper")
	}

	state = nes.State()
	state.PPU.Scanline = 1000
	if err := nes.ValidateState(state); err == nil {
		t.Errorf("ValidateState accepted an invalid scanline")
	}
}

func TestResetVectorFromCartridge(t *testing.T) {
	nes := newTestNES(t, testROM(nmiCounter, nmiCounterHandler, ines.Horizontal))
	nes.Reset(hwdefs.HardReset)
	if nes.CPU.PC != 0x8000 {
		t.Errorf("PC = $%04X after reset, want $8000", nes.CPU.PC)
	}
}

// pulseTone plays a constant square wave on pulse 1.
var pulseTone = []byte{
	0xA9, 0x01,       // $8000 LDA #$01
	0x8D, 0x15, 0x40, // $8002 STA $4015
	0xA9, 0xBF,       // $8005 LDA #$BF
	0x8D, 0x00, 0x40, // $8007 STA $4000
	0xA9, 0xFD,       // $800A LDA #$FD
	0x8D, 0x02, 0x40, // $800C STA $4002
	0xA9, 0x00,       // $800F LDA #$00
	0x8D, 0x03, 0x40, // $8011 STA $4003
	0x4C, 0x14, 0x80, // $8014 JMP $8014
}

func TestStateRoundTripAudio(t *testing.T) {
	nes := newTestNES(t, testROM(pulseTone, 0x8014, ines.Horizontal))
	runFrames(t, nes, 5)
	saved := nes.State()

	collect := func() []int16 {
		var samples []int16
		for range 3 {
			_, audio, err := nes.RunFrame(InputState{})
			if err != nil {
				t.Fatal(err)
			}
			samples = append(samples, audio...)
		}
		return samples
	}

	want := collect()
	nes.SetState(saved)
	got := collect()

	if len(want) == 0 {
		t.Fatal("no audio produced")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("audio after state load differs (-want +got):\n%s", diff)
	}
}

// mmc1SelectBank writes $10 to the MMC1 PRG bank register then loops.
var mmc1SelectBank = []byte{
	0xA5, 0x10,       // $C000 LDA $10
	0x8D, 0x00, 0xE0, // $C002 STA $E000
	0x4A,             // $C005 LSR A
	0x8D, 0x00, 0xE0, // $C006 STA $E000
	0x4A,             // $C009 LSR A
	0x8D, 0x00, 0xE0, // $C00A STA $E000
	0x4A,             // $C00D LSR A
	0x8D, 0x00, 0xE0, // $C00E STA $E000
	0x4A,             // $C011 LSR A
	0x8D, 0x00, 0xE0, // $C012 STA $E000
	0x4C, 0x15, 0xC0, // $C015 JMP $C015
}

func TestSoftResetKeepsClocks(t *testing.T) {
	// 128KB MMC1 board, the first byte of each 16KB bank is its number.
	prg := make([]byte, 8*0x4000)
	for bank := range 8 {
		prg[bank*0x4000] = uint8(bank)
	}
	last := prg[7*0x4000:]
	copy(last, mmc1SelectBank)
	for _, vec := range []int{0x3FFA, 0x3FFC, 0x3FFE} {
		last[vec], last[vec+1] = 0x15, 0xC0
	}
	last[0x3FFC] = 0x00

	nes := newTestNES(t, ines.New(1, ines.Horizontal, false, prg, nil))
	nes.RAM.Data[0x10] = 2
	runFrames(t, nes, 30)
	if got := nes.Peek8(0x8000); got != 2 {
		t.Fatalf("bank at $8000 = %d, want 2", got)
	}

	cycles, dot := nes.CPU.Cycles, nes.PPU.Dot()
	nes.RAM.Data[0x10] = 3
	if _, _, err := nes.RunFrame(InputState{Command: CmdSoftReset}); err != nil {
		t.Fatal(err)
	}
	if nes.CPU.Cycles <= cycles || nes.PPU.Dot() <= dot {
		t.Errorf("clocks went back on soft reset: CPU %d -> %d, PPU %d -> %d", cycles, nes.CPU.Cycles, dot, nes.PPU.Dot())
	}
	if got := nes.Peek8(0x8000); got != 3 {
		t.Errorf("bank at $8000 = %d after soft reset, want 3", got)
	}
}

func TestHardResetPowerUpState(t *testing.T) {
	rom := testROM(nmiCounter, nmiCounterHandler, ines.Horizontal)

	fresh := newTestNES(t, rom)
	runFrames(t, fresh, 3)

	used := newTestNES(t, rom)
	runFrames(t, used, 7)
	used.RAM.Data[0x200] = 0x41
	used.VRAM.Data[0x10] = 0x42
	used.Cart.PRGRAM[0] = 0x43
	used.Cart.CHR[0] = 0x44
	used.Reset(hwdefs.HardReset)
	runFrames(t, used, 3)

	if diff := cmp.Diff(fresh.State(), used.State()); diff != "" {
		t.Errorf("state after hard reset differs from a fresh console (-fresh +used):\n%s", diff)
	}
	if !cmp.Equal(fresh.Screen().Pix, used.Screen().Pix) {
		t.Errorf("frame after hard reset differs from a fresh console")
	}
}
