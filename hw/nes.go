package hw

import (
	"image"
	"io"

	"nescore/emu/log"
	"nescore/hw/apu"
	"nescore/hw/hwdefs"
	"nescore/hw/mappers"
)

// Config holds the hardware level options.
type Config struct {
	CPU        CPUConfig
	SampleRate int // audio output rate, in Hz
}

// NES is the whole emulation state: CPU, PPU, APU, memories, controllers and
// the cartridge, wired through the Bus.
type NES struct {
	*Bus

	// Frame is the number of frames produced since power-up.
	Frame uint64
}

// New creates a console with cart plugged in, at power-up state.
func New(cart *mappers.Cartridge, cfg Config) *NES {
	bus := newBus()
	bus.Cart = cart
	bus.CPU = NewCPU(bus, cfg.CPU)
	bus.PPU = NewPPU(bus)
	bus.APU = apu.New(bus, apu.NewMixer(cfg.SampleRate))
	cart.ConnectIRQ(bus)

	nes := &NES{Bus: bus}
	nes.Reset(hwdefs.HardReset)
	return nes
}

// Reset performs a soft reset (reset button) or a hard reset (power cycle).
// Memories survive a soft reset. A hard reset zeroes them all, battery-backed
// PRG RAM excepted, so that what runs after it doesn't depend on what ran
// before.
func (n *NES) Reset(soft bool) {
	log.ModEmu.InfoZ("reset").Bool("soft", soft).End()

	if !soft {
		clear(n.RAM.Data)
		clear(n.VRAM.Data)
		n.Cart.PowerCycle()
		n.Input.reset()
		n.openBus = 0
		n.Frame = 0
	}
	n.PPU.Reset(soft)
	n.APU.Reset(soft)

	// The CPU goes last: it runs the other chips during its start-up cycles.
	n.CPU.Reset(soft)
}

// RunFrame runs the console until the PPU enters vertical blank, with the
// given input. It returns the frame and the audio samples produced during
// it, both valid until the next call.
//
// An *ExecutionFault is returned if the CPU halts, until the next reset or
// state load.
func (n *NES) RunFrame(in InputState) (*image.RGBA, apu.AudioBuffer, error) {
	switch {
	case in.Command&CmdHardReset != 0:
		n.Reset(hwdefs.HardReset)
	case in.Command&CmdSoftReset != 0:
		n.Reset(hwdefs.SoftReset)
	}
	n.Input.setButtons(in.Pads)

	var err error
	for {
		if _, err = n.CPU.Step(); err != nil {
			break
		}
		if n.PPU.FrameDone() {
			break
		}
	}

	n.APU.EndFrame()
	n.Frame++
	return n.PPU.Output(), n.APU.Mixer().Samples(), err
}

// Screen returns the frame buffer.
func (n *NES) Screen() *image.RGBA {
	return n.PPU.Output()
}

// SetTraceOutput enables CPU execution tracing to w, or disables it if w is
// nil.
func (n *NES) SetTraceOutput(w io.Writer) {
	n.CPU.SetTraceOutput(w, n.PPU)
}
