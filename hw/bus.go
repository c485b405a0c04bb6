package hw

import (
	"nescore/emu/log"
	"nescore/hw/apu"
	"nescore/hw/hwdefs"
	"nescore/hw/hwio"
	"nescore/hw/mappers"
)

// Cheat overrides the value read by the CPU at a given address.
type Cheat struct {
	Addr  uint16
	Value uint8

	// When HasCompare is set, the override only applies if the value
	// that would otherwise be read equals Compare.
	Compare    uint8
	HasCompare bool
}

// Bus connects the components together. It's the only place holding
// references to the other components: the CPU address space, the PPU
// address space and the interrupt and DMA lines all go through it.
type Bus struct {
	CPU   *CPU
	PPU   *PPU
	APU   *apu.APU
	Cart  *mappers.Cartridge
	Input InputPorts

	RAM  hwio.Mem // 2KB internal RAM
	VRAM hwio.Mem // nametable RAM, 4KB to support four-screen boards

	openBus uint8

	cheats    map[uint16]Cheat
	cheatAddr hwio.Bitset
}

func newBus() *Bus {
	return &Bus{
		RAM:  hwio.NewMem("RAM", 0x800),
		VRAM: hwio.NewMem("VRAM", 0x1000),
	}
}

// SetCheats replaces the set of active cheats. A nil or empty slice disables
// them all. For a given address, the last cheat wins.
func (b *Bus) SetCheats(cheats []Cheat) {
	b.cheatAddr.Reset()
	b.cheats = make(map[uint16]Cheat, len(cheats))
	for _, c := range cheats {
		b.cheats[c.Addr] = c
		b.cheatAddr.Set(uint(c.Addr))
		log.ModMem.InfoZ("cheat enabled").
			Hex16("addr", c.Addr).
			Hex8("val", c.Value).
			Bool("compare", c.HasCompare).
			Hex8("cmp", c.Compare).
			End()
	}
}

func (b *Bus) applyCheat(addr uint16, val uint8) uint8 {
	if !b.cheatAddr.Test(uint(addr)) {
		return val
	}
	c := b.cheats[addr]
	if c.HasCompare && c.Compare != val {
		return val
	}
	return c.Value
}

/* CPU address space */

func (b *Bus) Read8(addr uint16) uint8 {
	var val uint8
	switch {
	case addr < 0x2000:
		val = b.RAM.Read8(addr)
	case addr < 0x4000:
		val = b.PPU.ReadReg(0x2000 | addr&0x07)
	case addr == 0x4015:
		// $4015 reads don't drive the bus.
		return b.APU.ReadSTATUS() | b.openBus&0x20
	case addr == 0x4016, addr == 0x4017:
		val = b.openBus&0xE0 | b.Input.read(int(addr&1))
	case addr < 0x4020:
		val = b.openBus
	default:
		var ok bool
		if val, ok = b.Cart.ReadPRG(addr); !ok {
			val = b.openBus
		}
		val = b.applyCheat(addr, val)
	}
	b.openBus = val
	return val
}

// Peek8 reads addr without side effects.
func (b *Bus) Peek8(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.RAM.Read8(addr)
	case addr < 0x4000:
		return b.PPU.PeekReg(0x2000 | addr&0x07)
	case addr == 0x4015:
		return b.APU.PeekSTATUS() | b.openBus&0x20
	case addr == 0x4016, addr == 0x4017:
		return b.openBus&0xE0 | b.Input.peek(int(addr&1))
	case addr < 0x4020:
		return b.openBus
	}

	val, ok := b.Cart.ReadPRG(addr)
	if !ok {
		val = b.openBus
	}
	return b.applyCheat(addr, val)
}

func (b *Bus) Write8(addr uint16, val uint8) {
	b.openBus = val
	switch {
	case addr < 0x2000:
		b.RAM.Write8(addr, val)
	case addr < 0x4000:
		b.PPU.WriteReg(0x2000|addr&0x07, val)
	case addr == 0x4014:
		b.CPU.DMA.WriteOAMDMA(val)
	case addr == 0x4016:
		b.Input.write(val)
	case addr < 0x4018:
		b.APU.Write8(addr, val)
	case addr < 0x4020:
		log.ModMem.DebugZ("write to unmapped address").Hex16("addr", addr).Hex8("val", val).End()
	default:
		b.Cart.WritePRG(addr, val, b.CPU.Cycles)
	}
}

func (b *Bus) runPPU(masterClock int64) { b.PPU.Run(masterClock) }
func (b *Bus) tickAPU()                 { b.APU.Tick() }

func (b *Bus) dmcAddress() uint16 {
	return b.APU.DMC.CurrentAddr()
}

func (b *Bus) dmcSetReadBuffer(val uint8) {
	b.APU.DMC.SetReadBuffer(val)
}

/* PPU address space */

func (b *Bus) ppuRead(addr uint16) uint8 {
	addr &= 0x3FFF
	b.Cart.NotifyA12(addr, b.PPU.Dot())
	if addr < 0x2000 {
		return b.Cart.ReadCHR(addr)
	}
	return b.VRAM.Read8(b.Cart.Mirroring().NTAddr(addr))
}

func (b *Bus) ppuWrite(addr uint16, val uint8) {
	addr &= 0x3FFF
	b.Cart.NotifyA12(addr, b.PPU.Dot())
	if addr < 0x2000 {
		b.Cart.WriteCHR(addr, val)
		return
	}
	b.VRAM.Write8(b.Cart.Mirroring().NTAddr(addr), val)
}

func (b *Bus) ppuAddr(addr uint16) {
	b.Cart.NotifyA12(addr&0x3FFF, b.PPU.Dot())
}

/* interrupt and DMA lines */

func (b *Bus) setNMI(level bool) {
	if level {
		b.CPU.RequestNMI()
	} else {
		b.CPU.ClearNMI()
	}
}

func (b *Bus) SetIRQSource(src hwdefs.IRQSource)      { b.CPU.SetIRQSource(src) }
func (b *Bus) ClearIRQSource(src hwdefs.IRQSource)    { b.CPU.ClearIRQSource(src) }
func (b *Bus) HasIRQSource(src hwdefs.IRQSource) bool { return b.CPU.HasIRQSource(src) }
func (b *Bus) CurrentCycle() int64                    { return b.CPU.Cycles }
func (b *Bus) StartDMCTransfer()                      { b.CPU.DMA.StartDMCTransfer() }
func (b *Bus) StopDMCTransfer()                       { b.CPU.DMA.StopDMCTransfer() }
