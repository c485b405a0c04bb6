package emu

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"nescore/emu/movie"
	"nescore/hw"
	"nescore/hw/hwdefs"
)

var recordedInput = []hw.InputState{
	pads(hw.ButtonA),
	pads(hw.ButtonA | hw.ButtonRight),
	pads(0),
	{Pads: [2]hw.Buttons{hw.ButtonStart, hw.ButtonB}, Command: hw.CmdSoftReset},
	pads(hw.ButtonUp),
	pads(hw.ButtonSelect | hw.ButtonDown),
}

func TestRecordAndPlayback(t *testing.T) {
	c := newTestConsole(t, DefaultConfig())
	runFrames(t, c, pads(hw.ButtonB), pads(0))

	if err := c.StartRecording(); err != nil {
		t.Fatal(err)
	}
	if !c.Recording() {
		t.Fatalf("Recording() = false after StartRecording")
	}
	runFrames(t, c, recordedInput...)
	want := c.NES().State()

	rec := c.StopRecording()
	if rec == nil {
		t.Fatal("StopRecording returned nil")
	}
	if c.Recording() {
		t.Errorf("Recording() = true after StopRecording")
	}
	if diff := cmp.Diff(recordedInput, rec.Frames); diff != "" {
		t.Errorf("recorded frames mismatch (-want +got):\n%s", diff)
	}
	if rec.CartCRC != c.NES().Cart.CRC32() {
		t.Errorf("recording crc = %08x, want %08x", rec.CartCRC, c.NES().Cart.CRC32())
	}

	// Go through the file format, then play back, with other input.
	var buf bytes.Buffer
	if err := movie.Encode(&buf, rec); err != nil {
		t.Fatal(err)
	}
	rec, err := movie.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}

	runFrames(t, c, pads(hw.ButtonLeft))
	if err := c.LoadRecording(rec); err != nil {
		t.Fatal(err)
	}
	for range rec.Len() {
		if _, _, err := c.RunFrame(pads(hw.ButtonLeft)); err != nil {
			t.Fatal(err)
		}
		if !c.Playing() {
			t.Fatalf("playback stopped early")
		}
	}
	if diff := cmp.Diff(want, c.NES().State()); diff != "" {
		t.Errorf("state mismatch after playback (-want +got):\n%s", diff)
	}

	// The frame past the end still runs, with no input.
	if _, _, err := c.RunFrame(pads(hw.ButtonLeft)); !errors.Is(err, ErrRecordingExhausted) {
		t.Fatalf("RunFrame past the end: got %v, want ErrRecordingExhausted", err)
	}
	if c.Playing() {
		t.Errorf("Playing() = true after the recording is exhausted")
	}
	if got := c.NES().RAM.Data[0x11]; got != 0 {
		t.Errorf("program read %08b past the end of the recording, want no input", got)
	}
	runFrames(t, c, pads(0))
}

func TestPlaybackFromPowerUp(t *testing.T) {
	c := newTestConsole(t, DefaultConfig())
	runFrames(t, c, recordedInput...)
	want := c.NES().State()

	// Imported recordings have no start state nor cartridge checksum.
	runFrames(t, c, pads(hw.ButtonA), pads(hw.ButtonA))
	rec := &movie.Recording{Frames: recordedInput}
	if err := c.LoadRecording(rec); err != nil {
		t.Fatal(err)
	}
	if got := c.NES().Frame; got != 0 {
		t.Fatalf("frame = %d after loading recording, want 0", got)
	}
	runFrames(t, c, make([]hw.InputState, len(recordedInput))...)

	if diff := cmp.Diff(want, c.NES().State()); diff != "" {
		t.Errorf("state mismatch after playback (-want +got):\n%s", diff)
	}
}

func TestLoadRecordingWrongCartridge(t *testing.T) {
	c := newTestConsole(t, DefaultConfig())

	rec := &movie.Recording{CartCRC: c.NES().Cart.CRC32() + 1}
	if err := c.LoadRecording(rec); !errors.Is(err, ErrWrongCartridge) {
		t.Errorf("LoadRecording: got %v, want ErrWrongCartridge", err)
	}
	if c.Playing() {
		t.Errorf("Playing() = true after failed LoadRecording")
	}
}

func TestLoadStateWhileRecording(t *testing.T) {
	c := newTestConsole(t, DefaultConfig())
	runFrames(t, c, pads(hw.ButtonA))
	state, err := c.SaveState()
	if err != nil {
		t.Fatal(err)
	}

	if err := c.StartRecording(); err != nil {
		t.Fatal(err)
	}
	runFrames(t, c, pads(hw.ButtonB), pads(hw.ButtonB))
	if err := c.LoadState(state); err != nil {
		t.Fatal(err)
	}
	runFrames(t, c, pads(hw.ButtonUp))

	rec := c.StopRecording()
	if diff := cmp.Diff(state, rec.StartState); diff != "" {
		t.Errorf("start state mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]hw.InputState{pads(hw.ButtonUp)}, rec.Frames); diff != "" {
		t.Errorf("recorded frames mismatch (-want +got):\n%s", diff)
	}
}

func TestPlaybackIndependentOfSession(t *testing.T) {
	rec := &movie.Recording{Frames: recordedInput}

	fresh := newTestConsole(t, DefaultConfig())
	if err := fresh.LoadRecording(rec); err != nil {
		t.Fatal(err)
	}
	runFrames(t, fresh, make([]hw.InputState, rec.Len())...)

	used := newTestConsole(t, DefaultConfig())
	runFrames(t, used, recordedInput...)
	used.NES().RAM.Data[0x200] = 0x41
	used.NES().VRAM.Data[0x200] = 0x41
	if err := used.LoadRecording(rec); err != nil {
		t.Fatal(err)
	}
	runFrames(t, used, make([]hw.InputState, rec.Len())...)

	if diff := cmp.Diff(fresh.NES().State(), used.NES().State()); diff != "" {
		t.Errorf("playback depends on the session history (-fresh +used):\n%s", diff)
	}
}

func TestResetWhileRecording(t *testing.T) {
	c := newTestConsole(t, DefaultConfig())
	runFrames(t, c, pads(hw.ButtonA))

	if err := c.StartRecording(); err != nil {
		t.Fatal(err)
	}
	runFrames(t, c, pads(hw.ButtonB), pads(0))
	if err := c.Reset(hwdefs.SoftReset); err != nil {
		t.Fatal(err)
	}
	runFrames(t, c, pads(hw.ButtonA), pads(hw.ButtonUp))
	if err := c.Reset(hwdefs.HardReset); err != nil {
		t.Fatal(err)
	}
	runFrames(t, c, pads(hw.ButtonStart))
	if got := c.NES().Frame; got != 1 {
		t.Errorf("frame = %d after a recorded hard reset, want 1", got)
	}
	want := c.NES().State()

	rec := c.StopRecording()
	wantFrames := []hw.InputState{
		pads(hw.ButtonB),
		pads(0),
		{Pads: [2]hw.Buttons{hw.ButtonA, 0}, Command: hw.CmdSoftReset},
		pads(hw.ButtonUp),
		{Pads: [2]hw.Buttons{hw.ButtonStart, 0}, Command: hw.CmdHardReset},
	}
	if diff := cmp.Diff(wantFrames, rec.Frames); diff != "" {
		t.Fatalf("recorded frames mismatch (-want +got):\n%s", diff)
	}

	runFrames(t, c, pads(hw.ButtonSelect), pads(hw.ButtonSelect))
	if err := c.LoadRecording(rec); err != nil {
		t.Fatal(err)
	}
	runFrames(t, c, make([]hw.InputState, rec.Len())...)
	if diff := cmp.Diff(want, c.NES().State()); diff != "" {
		t.Errorf("state mismatch after playback (-want +got):\n%s", diff)
	}
}

func TestExhaustedWithFault(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Video.Greyscale = true
	c := NewConsole(cfg)
	t.Cleanup(c.Close)
	if err := c.LoadCartridge(testROM([]byte{0x02}, false)); err != nil { // JAM
		t.Fatal(err)
	}
	if err := c.LoadRecording(&movie.Recording{}); err != nil {
		t.Fatal(err)
	}

	screen, _, err := c.RunFrame(hw.InputState{})
	if !errors.Is(err, ErrRecordingExhausted) {
		t.Errorf("RunFrame: got %v, want ErrRecordingExhausted", err)
	}
	var fault *ExecutionFault
	if !errors.As(err, &fault) {
		t.Errorf("RunFrame: got %v, want an *ExecutionFault", err)
	}
	if screen != c.grey {
		t.Errorf("greyscale not applied on a faulting frame")
	}
}
