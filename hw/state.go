package hw

import (
	"fmt"

	"nescore/hw/hwdefs"
	"nescore/hw/snapshot"
)

func (c *CPU) saveState(state *snapshot.CPU) {
	*state = snapshot.CPU{
		PC:          c.PC,
		SP:          c.SP,
		P:           uint8(c.P),
		A:           c.A,
		X:           c.X,
		Y:           c.Y,
		Cycles:      c.Cycles,
		MasterClock: c.masterClock,
		IRQFlag:     uint8(c.irqSources),
		RunIRQ:      c.irqPoll,
		PrevRunIRQ:  c.prevIRQPoll,
		NMIFlag:     c.nmiLine,
		PrevNMIFlag: c.prevNmiLine,
		NeedNMI:     c.needNmi,
		PrevNeedNMI: c.prevNeedNmi,
	}
}

// setState restores the CPU registers and clears any fault.
func (c *CPU) setState(state *snapshot.CPU) {
	c.PC = state.PC
	c.SP = state.SP
	c.P = P(state.P)
	c.A = state.A
	c.X = state.X
	c.Y = state.Y
	c.Cycles = state.Cycles
	c.masterClock = state.MasterClock
	c.irqSources = hwdefs.IRQSource(state.IRQFlag)
	c.irqPoll = state.RunIRQ
	c.prevIRQPoll = state.PrevRunIRQ
	c.nmiLine = state.NMIFlag
	c.prevNmiLine = state.PrevNMIFlag
	c.needNmi = state.NeedNMI
	c.prevNeedNmi = state.PrevNeedNMI

	c.jammed = false
	c.fault = nil
}

// State returns a snapshot of the whole emulation state. It must be called
// between frames.
func (n *NES) State() *snapshot.NES {
	state := &snapshot.NES{
		Frame:   n.Frame,
		OpenBus: n.openBus,
	}
	n.CPU.saveState(&state.CPU)
	n.CPU.DMA.saveState(&state.DMA)
	copy(state.RAM[:], n.RAM.Data)
	copy(state.VRAM[:], n.VRAM.Data)
	n.PPU.saveState(&state.PPU)
	state.APU = *n.APU.State()
	state.Cartridge = *n.Cart.State()
	n.Input.saveState(&state.Input)
	return state
}

// ValidateState checks that state can be applied to n, without modifying
// it.
func (n *NES) ValidateState(state *snapshot.NES) error {
	if err := n.Cart.ValidateState(&state.Cartridge); err != nil {
		return err
	}
	if state.PPU.Scanline < 0 || state.PPU.Scanline >= NumScanlines {
		return fmt.Errorf("invalid scanline %d", state.PPU.Scanline)
	}
	if state.PPU.Cycle < 0 || state.PPU.Cycle >= NumCycles {
		return fmt.Errorf("invalid PPU cycle %d", state.PPU.Cycle)
	}
	if state.CPU.Cycles < 0 || state.CPU.MasterClock < 0 {
		return fmt.Errorf("invalid CPU clock %d", state.CPU.Cycles)
	}
	return nil
}

// SetState replaces the whole emulation state. state must have been checked
// with ValidateState beforehand.
func (n *NES) SetState(state *snapshot.NES) {
	n.Frame = state.Frame
	n.openBus = state.OpenBus
	n.CPU.setState(&state.CPU)
	n.CPU.DMA.setState(&state.DMA)
	copy(n.RAM.Data, state.RAM[:])
	copy(n.VRAM.Data, state.VRAM[:])
	n.Cart.SetState(&state.Cartridge)
	n.APU.SetState(&state.APU)
	n.Input.setState(&state.Input)

	// Last, since it raises or clears the NMI line from the restored
	// registers.
	n.PPU.setState(&state.PPU)
}
