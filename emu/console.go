// Package emu implements the emulation session: cartridge loading, frame
// by frame execution, savestates and input recordings.
package emu

import (
	"errors"
	"image"
	"io"
	"sync/atomic"

	"nescore/emu/log"
	"nescore/emu/movie"
	"nescore/hw"
	"nescore/hw/mappers"
	"nescore/ines"
)

// Console is an emulation session. It owns the emulation state of the
// loaded cartridge.
//
// Console methods must be called from a single goroutine, except that
// concurrent savestate operations during RunFrame fail with ErrBusy.
type Console struct {
	cfg Config
	nes *hw.NES
	rom *ines.Rom

	// Set while a frame is emulated.
	busy atomic.Bool

	cheats []hw.Cheat
	trace  io.Writer

	recording *movie.Recording // being recorded
	playback  *movie.Recording // being played back
	playPos   int

	// Reset requested while recording, applied and recorded with the next
	// frame.
	pendingCmd hw.Command

	grey *image.RGBA
}

// NewConsole creates a session without cartridge.
func NewConsole(cfg Config) *Console {
	cfg.Check()
	c := &Console{cfg: cfg}
	log.AddContext(c)
	return c
}

// Close releases the session resources.
func (c *Console) Close() {
	log.RemoveContext(c)
}

// AddLogContext adds the emulation position to log entries.
func (c *Console) AddLogContext(z *log.EntryZ) {
	if c.nes == nil {
		return
	}
	z.Uint64("frame", c.nes.Frame).Int64("cycle", c.nes.CPU.Cycles)
}

// LoadCartridge loads an iNES image and powers the console up. On error,
// the previously loaded cartridge, if any, stays in place.
func (c *Console) LoadCartridge(data []byte) error {
	if c.busy.Load() {
		return ErrBusy
	}

	rom, err := ines.Decode(data)
	if err != nil {
		return &LoadError{Reason: "invalid cartridge image", Err: err}
	}
	cart, err := mappers.New(rom)
	if err != nil {
		return &LoadError{Reason: "unsupported cartridge", Err: err}
	}

	nes := hw.New(cart, hw.Config{
		CPU:        hw.CPUConfig{Strict: c.cfg.Emulation.StrictOpcodes},
		SampleRate: c.cfg.Audio.SampleRate,
	})
	nes.APU.Mixer().SetMuted(c.cfg.Audio.DisableAudio)
	nes.SetCheats(c.cheats)
	if c.trace != nil {
		nes.SetTraceOutput(c.trace)
	}

	c.nes = nes
	c.rom = rom
	c.recording = nil
	c.playback = nil
	c.pendingCmd = 0

	log.ModEmu.InfoZ("console powered up").Hex32("crc", cart.CRC32()).End()
	return nil
}

// Rom returns the loaded cartridge image, nil if none.
func (c *Console) Rom() *ines.Rom { return c.rom }

// NES gives access to the emulated hardware.
func (c *Console) NES() *hw.NES { return c.nes }

// RunFrame emulates one video frame with the given input and returns the
// picture and the audio samples (interleaved stereo) produced. Both are
// owned by the console and only valid until the next call.
//
// During playback of a recording, in is ignored and the recorded input is
// used instead. Once the recording is exhausted, the frame is emulated with
// no input and ErrRecordingExhausted is returned along with it. If the CPU
// also faults during that frame, both errors are joined.
func (c *Console) RunFrame(in hw.InputState) (*image.RGBA, []int16, error) {
	if c.nes == nil {
		return nil, nil, ErrNoCartridge
	}
	if !c.busy.CompareAndSwap(false, true) {
		return nil, nil, ErrBusy
	}
	defer c.busy.Store(false)

	in, exhausted := c.nextInput(in)
	in.Command |= c.pendingCmd
	c.pendingCmd = 0
	if c.recording != nil {
		c.recording.Frames = append(c.recording.Frames, in)
	}

	screen, samples, err := c.nes.RunFrame(in)
	if c.cfg.Video.Greyscale {
		screen = c.greyscale(screen)
	}
	if exhausted {
		err = errors.Join(ErrRecordingExhausted, err)
	}
	return screen, samples, err
}

// Reset performs a soft (reset button) or hard (power cycle) reset.
//
// While recording, the reset is deferred to the start of the next frame and
// recorded as part of its input, so that playback reproduces it.
func (c *Console) Reset(soft bool) error {
	if c.nes == nil {
		return ErrNoCartridge
	}
	if c.busy.Load() {
		return ErrBusy
	}
	if c.recording != nil {
		cmd := hw.CmdHardReset
		if soft {
			cmd = hw.CmdSoftReset
		}
		c.pendingCmd |= cmd
		log.ModEmu.DebugZ("reset queued").Bool("soft", soft).End()
		return nil
	}
	c.nes.Reset(soft)
	return nil
}

// SetCheats replaces the active bus read overrides (Game Genie codes).
func (c *Console) SetCheats(cheats []hw.Cheat) {
	c.cheats = append([]hw.Cheat(nil), cheats...)
	if c.nes != nil {
		c.nes.SetCheats(c.cheats)
	}
}

// BatteryRAM returns the battery-backed RAM of the cartridge, nil if the
// cartridge has none. The slice aliases the cartridge RAM.
func (c *Console) BatteryRAM() []byte {
	if c.nes == nil {
		return nil
	}
	return c.nes.Cart.BatteryRAM()
}

// LoadBatteryRAM restores battery-backed RAM contents.
func (c *Console) LoadBatteryRAM(buf []byte) error {
	if c.nes == nil {
		return ErrNoCartridge
	}
	return c.nes.Cart.LoadBatteryRAM(buf)
}

// SetTraceOutput enables the CPU execution trace to w, nil disables it.
func (c *Console) SetTraceOutput(w io.Writer) {
	c.trace = w
	if c.nes != nil {
		c.nes.SetTraceOutput(w)
	}
}

func (c *Console) greyscale(src *image.RGBA) *image.RGBA {
	if c.grey == nil {
		c.grey = image.NewRGBA(src.Rect)
	}
	for i := 0; i < len(src.Pix); i += 4 {
		p := src.Pix[i : i+4 : i+4]
		y := uint8((299*uint32(p[0]) + 587*uint32(p[1]) + 114*uint32(p[2])) / 1000)
		q := c.grey.Pix[i : i+4 : i+4]
		q[0], q[1], q[2], q[3] = y, y, y, p[3]
	}
	return c.grey
}
