package hw

import (
	"nescore/emu/log"
	"nescore/hw/snapshot"
)

// DMA is the 2A03 DMA unit. OAM DMA copies a page of CPU memory to the PPU
// sprite memory, DMC DMA fetches sample bytes for the APU. Both halt the
// CPU, and share the stolen cycles when they overlap.
type DMA struct {
	cpu *CPU

	halt  bool // halt cycle pending
	align bool // alignment (dummy) cycle pending, transfers start on even cycles

	dmc      bool
	abortDMC bool

	oam     bool
	oamPage uint8
}

func (dma *DMA) init(cpu *CPU) {
	dma.cpu = cpu
	dma.reset()
}

func (dma *DMA) reset() {
	*dma = DMA{cpu: dma.cpu, align: true}
}

// WriteOAMDMA handles writes to $4014: page val is copied to OAM, halting
// the CPU for 513 or 514 cycles.
func (dma *DMA) WriteOAMDMA(val uint8) {
	log.ModDMA.DebugZ("OAM DMA").Hex8("page", val).End()
	dma.oamPage = val
	dma.oam = true
	dma.halt = true
}

// StartDMCTransfer schedules the fetch of the next DMC sample byte.
func (dma *DMA) StartDMCTransfer() {
	log.ModDMA.DebugZ("DMC DMA").Hex16("addr", dma.cpu.bus.dmcAddress()).End()
	dma.dmc = true
	dma.align = true
	dma.halt = true
}

// StopDMCTransfer cancels a scheduled DMC fetch. Before the halt cycle, the
// transfer disappears. During its first cycle, it's aborted. Later, it
// completes.
func (dma *DMA) StopDMCTransfer() {
	if !dma.dmc {
		return
	}
	log.ModDMA.DebugZ("DMC DMA stopped").Bool("halted", !dma.halt).End()
	if dma.halt {
		dma.dmc = false
		dma.align = false
		dma.halt = false
		return
	}
	dma.abortDMC = true
}

// process runs the pending transfers, if any, addr being the address the CPU
// is reading on the cycle it gets halted.
func (dma *DMA) process(addr uint16) {
	if !dma.halt {
		return
	}

	cpu := dma.cpu
	input := addr == 0x4016 || addr == 0x4017
	internal := addr&0xFFE0 == 0x4000

	// A DMC fetch from the input register the CPU is reading hides the CPU
	// read, /OE staying active the whole time.
	hidden := input && dma.dmc && cpu.bus.dmcAddress()&0x1F == addr&0x1F

	dma.halt = false

	// Halt cycle, the CPU repeats its read. On input registers, only the first
	// dummy read clocks the controllers, and none does if the DMC DMA was
	// aborted since the CPU reads the register right after.
	cpu.cycleBegin(true)
	if !input || !(dma.abortDMC || hidden) {
		cpu.bus.Read8(addr)
	}
	cpu.cycleEnd(true)

	if dma.abortDMC {
		dma.dmc = false
		dma.abortDMC = false
		if !dma.oam {
			dma.align = false
			return
		}
	}

	var (
		count int   // OAM DMA cycles performed
		off   uint8 // offset in the OAM DMA page
		val   uint8
		prev  = addr
	)
	for dma.dmc || dma.oam {
		get := cpu.Cycles&1 == 0

		switch {
		case get && dma.dmc && !dma.halt && !dma.align:
			dma.stall()
			val, prev = dma.read(cpu.bus.dmcAddress(), prev, internal)
			cpu.cycleEnd(true)
			dma.dmc = false
			dma.abortDMC = false
			cpu.bus.dmcSetReadBuffer(val)

		case get && dma.oam:
			dma.stall()
			val, prev = dma.read(uint16(dma.oamPage)<<8|uint16(off), prev, internal)
			cpu.cycleEnd(true)
			off++
			count++

		case !get && dma.oam && count&1 != 0:
			dma.stall()
			cpu.bus.Write8(0x2004, val)
			cpu.cycleEnd(true)
			count++
			if count == 0x200 {
				dma.oam = false
			}

		default:
			// Halt, alignment or DMC dummy cycle.
			dma.stall()
			if !input {
				cpu.bus.Read8(addr)
			}
			cpu.cycleEnd(true)
		}
	}
}

// stall begins a cycle stolen from the CPU. OAM DMA cycles also count as
// the halt and alignment cycles of an overlapping DMC DMA.
func (dma *DMA) stall() {
	switch {
	case dma.abortDMC:
		dma.dmc = false
		dma.abortDMC = false
		dma.align = false
		dma.halt = false
	case dma.halt:
		dma.halt = false
	case dma.align:
		dma.align = false
	}
	dma.cpu.cycleBegin(true)
}

// read performs a DMA read of addr and returns the value along with the
// address seen by the input ports. When the CPU got halted on one of its
// internal registers ($4000-$401F), the 2A03 reads that register at the
// same time: this can acknowledge the frame IRQ, clock the controllers or
// corrupt the fetched byte.
func (dma *DMA) read(addr, prev uint16, internal bool) (uint8, uint16) {
	bus := dma.cpu.bus

	if !internal {
		// Nothing responds to $4000-$401F on the external bus.
		if addr >= 0x4000 && addr <= 0x401F {
			return bus.Peek8(addr), addr
		}
		return bus.Read8(addr), addr
	}

	reg := 0x4000 | addr&0x1F
	switch reg {
	case 0x4015:
		val := bus.Read8(reg)
		if reg != addr {
			bus.Read8(addr)
		}
		return val, reg

	case 0x4016, 0x4017:
		// The controller doesn't see 2 consecutive reads of its port.
		var val uint8
		if prev == reg {
			val = bus.Peek8(reg)
		} else {
			val = bus.Read8(reg)
		}
		if reg != addr {
			// Bus conflict: the open bus bits come from the external read,
			// the others are ANDed.
			ext := bus.Read8(addr)
			val = ext&0xE0 | val&ext&0x1F
		}
		return val, reg
	}

	return bus.Read8(addr), reg
}

func (dma *DMA) saveState(state *snapshot.DMA) {
	*state = snapshot.DMA{
		NeedHalt:   dma.halt,
		Dummy:      dma.align,
		DMCRunning: dma.dmc,
		AbortDMC:   dma.abortDMC,
		OAMPage:    dma.oamPage,
		OAMRunning: dma.oam,
	}
}

func (dma *DMA) setState(state *snapshot.DMA) {
	dma.halt = state.NeedHalt
	dma.align = state.Dummy
	dma.dmc = state.DMCRunning
	dma.abortDMC = state.AbortDMC
	dma.oamPage = state.OAMPage
	dma.oam = state.OAMRunning
}
