package emu

import (
	"errors"
	"math/bits"
	"testing"

	"github.com/google/go-cmp/cmp"

	"nescore/hw"
	"nescore/hw/hwdefs"
	"nescore/hw/mappers"
	"nescore/ines"
)

func TestNoCartridge(t *testing.T) {
	c := NewConsole(DefaultConfig())
	defer c.Close()

	if _, _, err := c.RunFrame(hw.InputState{}); !errors.Is(err, ErrNoCartridge) {
		t.Errorf("RunFrame: got %v, want ErrNoCartridge", err)
	}
	if _, err := c.SaveState(); !errors.Is(err, ErrNoCartridge) {
		t.Errorf("SaveState: got %v, want ErrNoCartridge", err)
	}
	if err := c.StartRecording(); !errors.Is(err, ErrNoCartridge) {
		t.Errorf("StartRecording: got %v, want ErrNoCartridge", err)
	}
	if err := c.Reset(hwdefs.SoftReset); !errors.Is(err, ErrNoCartridge) {
		t.Errorf("Reset: got %v, want ErrNoCartridge", err)
	}
}

func TestLoadCartridgeErrors(t *testing.T) {
	c := newTestConsole(t, DefaultConfig())
	crc := c.NES().Cart.CRC32()

	var lerr *LoadError
	if err := c.LoadCartridge([]byte("not a rom")); !errors.As(err, &lerr) {
		t.Errorf("garbage image: got %v, want a *LoadError", err)
	}
	if err := c.LoadCartridge(testROM(nil, false)[:100]); !errors.Is(err, ines.ErrTruncated) {
		t.Errorf("truncated image: got %v, want ErrTruncated", err)
	}

	mmc5 := ines.New(5, ines.Horizontal, false, make([]byte, 0x4000), nil).Bytes()
	err := c.LoadCartridge(mmc5)
	if !errors.As(err, &lerr) || !errors.Is(err, mappers.ErrUnsupportedMapper) {
		t.Errorf("mapper 5: got %v, want a *LoadError wrapping ErrUnsupportedMapper", err)
	}

	// The previous cartridge is still there.
	if got := c.NES().Cart.CRC32(); got != crc {
		t.Errorf("cartridge crc = %08x after failed loads, want %08x", got, crc)
	}
	runFrames(t, c, hw.InputState{})
}

func TestRunFrameInput(t *testing.T) {
	c := newTestConsole(t, DefaultConfig())

	for _, b := range []hw.Buttons{
		hw.ButtonA,
		hw.ButtonStart | hw.ButtonRight,
		0,
		hw.ButtonB | hw.ButtonUp | hw.ButtonLeft,
	} {
		screen, samples, err := c.RunFrame(pads(b))
		if err != nil {
			t.Fatalf("RunFrame: %v", err)
		}
		if got, want := c.NES().RAM.Data[0x11], bits.Reverse8(uint8(b)); got != want {
			t.Errorf("buttons %s: program read %08b, want %08b", b, got, want)
		}
		if screen.Rect.Dx() != hw.ScreenWidth || screen.Rect.Dy() != hw.ScreenHeight {
			t.Errorf("screen size = %v", screen.Rect)
		}
		if len(samples) == 0 {
			t.Errorf("no audio samples")
		}
	}
	if got := c.NES().Frame; got != 4 {
		t.Errorf("frame = %d, want 4", got)
	}
}

func TestRunFrameBusy(t *testing.T) {
	c := newTestConsole(t, DefaultConfig())

	c.busy.Store(true)
	if _, _, err := c.RunFrame(hw.InputState{}); !errors.Is(err, ErrBusy) {
		t.Errorf("RunFrame: got %v, want ErrBusy", err)
	}
	if _, err := c.SaveState(); !errors.Is(err, ErrBusy) {
		t.Errorf("SaveState: got %v, want ErrBusy", err)
	}
	if err := c.LoadState(nil); !errors.Is(err, ErrBusy) {
		t.Errorf("LoadState: got %v, want ErrBusy", err)
	}
	c.busy.Store(false)

	runFrames(t, c, hw.InputState{})
}

func TestDisableAudio(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Audio.DisableAudio = true
	c := newTestConsole(t, cfg)

	_, samples, err := c.RunFrame(hw.InputState{})
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 0 {
		t.Errorf("got %d samples with audio disabled", len(samples))
	}
}

func TestGreyscale(t *testing.T) {
	// Sets the backdrop color to a blue and loops.
	code := []byte{
		0xA9, 0x3F, 0x8D, 0x06, 0x20, // PPUADDR = $3F00
		0xA9, 0x00, 0x8D, 0x06, 0x20,
		0xA9, 0x12, 0x8D, 0x07, 0x20, // PPUDATA = $12
		0xA9, 0x00, 0x8D, 0x06, 0x20, // PPUADDR = $0000
		0x8D, 0x06, 0x20,
		0x4C, 0x17, 0x80, // JMP *
	}
	cfg := DefaultConfig()
	cfg.Video.Greyscale = true

	c := NewConsole(cfg)
	defer c.Close()
	if err := c.LoadCartridge(testROM(code, false)); err != nil {
		t.Fatal(err)
	}
	runFrames(t, c, hw.InputState{})
	screen, _, err := c.RunFrame(hw.InputState{})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < len(screen.Pix); i += 4 {
		r, g, b := screen.Pix[i], screen.Pix[i+1], screen.Pix[i+2]
		if r != g || g != b {
			t.Fatalf("pixel %d = (%d,%d,%d), want grey", i/4, r, g, b)
		}
	}
	if c.NES().Screen().Pix[2] == screen.Pix[2] {
		t.Errorf("greyscale output aliases the PPU output")
	}
}

func TestCheats(t *testing.T) {
	c := NewConsole(DefaultConfig())
	defer c.Close()

	// Cheats set before a cartridge is loaded apply to it.
	c.SetCheats([]hw.Cheat{{Addr: 0x8020, Value: 0x42}})
	if err := c.LoadCartridge(testROM(padProgram, false)); err != nil {
		t.Fatal(err)
	}
	if got := c.NES().Peek8(0x8020); got != 0x42 {
		t.Errorf("read $8020 = $%02X, want $42", got)
	}

	c.SetCheats(nil)
	if got := c.NES().Peek8(0x8020); got != 0x00 {
		t.Errorf("read $8020 = $%02X after clearing cheats, want $00", got)
	}
}

func TestBatteryRAM(t *testing.T) {
	c := newTestConsole(t, DefaultConfig())

	ram := c.BatteryRAM()
	if len(ram) == 0 {
		t.Fatalf("no battery RAM")
	}
	saved := make([]byte, len(ram))
	for i := range saved {
		saved[i] = uint8(i * 7)
	}
	if err := c.LoadBatteryRAM(saved); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(saved, c.BatteryRAM()); diff != "" {
		t.Errorf("battery RAM mismatch (-want +got):\n%s", diff)
	}
	if err := c.LoadBatteryRAM(saved[:10]); err == nil {
		t.Errorf("LoadBatteryRAM with a short buffer succeeded")
	}

	nobat := NewConsole(DefaultConfig())
	defer nobat.Close()
	if err := nobat.LoadCartridge(testROM(padProgram, false)); err != nil {
		t.Fatal(err)
	}
	if ram := nobat.BatteryRAM(); ram != nil {
		t.Errorf("BatteryRAM() = %d bytes without battery, want nil", len(ram))
	}
}

func TestReset(t *testing.T) {
	c := newTestConsole(t, DefaultConfig())
	runFrames(t, c, pads(hw.ButtonA), pads(hw.ButtonA))

	if err := c.Reset(hwdefs.SoftReset); err != nil {
		t.Fatal(err)
	}
	if got := c.NES().Frame; got != 2 {
		t.Errorf("frame = %d after soft reset, want 2", got)
	}
	if got := c.NES().CPU.PC; got != 0x8000 {
		t.Errorf("PC = $%04X after reset, want $8000", got)
	}

	if err := c.Reset(hwdefs.HardReset); err != nil {
		t.Fatal(err)
	}
	if got := c.NES().Frame; got != 0 {
		t.Errorf("frame = %d after hard reset, want 0", got)
	}
}
