// Package mappers implements the cartridge boards: PRG/CHR banking,
// nametable mirroring control, PRG RAM and scanline IRQ.
//
// Boards form a closed set of variants, identified by Kind. Each access point
// dispatches on the kind with an explicit switch.
package mappers

import (
	"errors"
	"fmt"

	"nescore/emu/log"
	"nescore/hw/hwdefs"
	"nescore/ines"
)

var modMapper = log.NewModule("mapper")

//go:generate go tool stringer -type=Kind

// Kind identifies a supported board, its value is the iNES mapper number.
type Kind uint16

const (
	NROM  Kind = 0
	MMC1  Kind = 1
	UxROM Kind = 2
	CNROM Kind = 3
	MMC3  Kind = 4
	AxROM Kind = 7
	GxROM Kind = 66
)

// ErrUnsupportedMapper is returned by New for mapper numbers not in Kinds.
var ErrUnsupportedMapper = errors.New("unsupported mapper")

// Kinds lists the supported boards.
var Kinds = []Kind{NROM, MMC1, UxROM, CNROM, MMC3, AxROM, GxROM}

const (
	prgRAMSize = 0x2000
	chrRAMSize = 0x2000
)

// IRQLine is the cartridge IRQ output.
type IRQLine interface {
	SetIRQSource(src hwdefs.IRQSource)
	ClearIRQSource(src hwdefs.IRQSource)
}

// Cartridge is the board plugged into the console: ROM contents, RAM and
// the state of the mapper variant selected by Kind.
type Cartridge struct {
	Kind Kind

	PRG    []byte // PRG ROM
	CHR    []byte // CHR ROM, or CHR RAM when chrRAM is true
	PRGRAM []byte

	chrRAM       bool
	battery      bool
	busConflicts bool
	crc          uint32

	hwMirroring hwdefs.NTMirroring // wired on the board
	mirroring   hwdefs.NTMirroring // current

	prgRAMEnabled   bool
	prgRAMWritable  bool
	prgMap          [4]int // offsets of the 8KB PRG banks mapped at $8000, $A000, $C000, $E000
	chrMap          [8]int // offsets of the 1KB CHR banks mapped at $0000-$1FFF
	numPRG8, numCHR int

	discrete DiscreteState
	mmc1     MMC1State
	mmc3     MMC3State

	irq IRQLine
}

// New creates the cartridge described by rom. An unsupported mapper number
// or inconsistent ROM sizes make New fail.
func New(rom *ines.Rom) (*Cartridge, error) {
	kind := Kind(rom.Mapper())
	if !kind.supported() {
		return nil, fmt.Errorf("%w %d", ErrUnsupportedMapper, rom.Mapper())
	}
	if len(rom.PRG) == 0 || len(rom.PRG)%0x4000 != 0 {
		return nil, fmt.Errorf("%s: PRG ROM size must be a multiple of 16KB, got %d", kind, len(rom.PRG))
	}
	if len(rom.CHR)%0x2000 != 0 {
		return nil, fmt.Errorf("%s: CHR ROM size must be a multiple of 8KB, got %d", kind, len(rom.CHR))
	}

	cart := &Cartridge{
		Kind:           kind,
		PRG:            append([]byte(nil), rom.PRG...),
		PRGRAM:         make([]byte, prgRAMSize),
		battery:        rom.HasBattery(),
		crc:            rom.CRC32(),
		prgRAMEnabled:  true,
		prgRAMWritable: true,
		busConflicts:   rom.SubMapper() == 2,
	}
	if len(rom.CHR) == 0 {
		cart.CHR = make([]byte, chrRAMSize)
		cart.chrRAM = true
	} else {
		cart.CHR = append([]byte(nil), rom.CHR...)
	}
	cart.numPRG8 = len(cart.PRG) / 0x2000
	cart.numCHR = len(cart.CHR) / 0x400

	switch rom.Mirroring() {
	case ines.Vertical:
		cart.hwMirroring = hwdefs.VerticalMirroring
	case ines.FourScreen:
		cart.hwMirroring = hwdefs.FourScreen
	default:
		cart.hwMirroring = hwdefs.HorizontalMirroring
	}

	cart.Reset()
	modMapper.InfoZ("cartridge loaded").
		Stringer("mapper", kind).
		Int("prg", len(cart.PRG)).
		Int("chr", len(cart.CHR)).
		Bool("chrram", cart.chrRAM).
		Bool("battery", cart.battery).
		Stringer("mirroring", cart.hwMirroring).
		End()
	return cart, nil
}

func (k Kind) supported() bool {
	for _, kk := range Kinds {
		if kk == k {
			return true
		}
	}
	return false
}

// ConnectIRQ connects the cartridge IRQ output.
func (c *Cartridge) ConnectIRQ(irq IRQLine) {
	c.irq = irq
}

// Reset puts the mapper registers at their power-up state. RAM contents
// are kept.
func (c *Cartridge) Reset() {
	c.mirroring = c.hwMirroring
	c.prgRAMEnabled = true
	c.prgRAMWritable = true
	c.discrete = DiscreteState{}
	c.mmc1 = MMC1State{}
	c.mmc3 = MMC3State{}

	switch c.Kind {
	case NROM, UxROM, CNROM, AxROM, GxROM:
		c.remapDiscrete()
	case MMC1:
		c.resetMMC1()
	case MMC3:
		c.resetMMC3()
	}
}

// PowerCycle puts the cartridge in its power-up state: mapper registers
// are reset, CHR RAM and PRG RAM are cleared unless the latter is
// battery-backed.
func (c *Cartridge) PowerCycle() {
	if !c.battery {
		clear(c.PRGRAM)
	}
	if c.chrRAM {
		clear(c.CHR)
	}
	c.Reset()
}

// CRC32 identifies the cartridge contents.
func (c *Cartridge) CRC32() uint32 { return c.crc }

// HasBattery reports whether PRG RAM is battery-backed.
func (c *Cartridge) HasBattery() bool { return c.battery }

// HasCHRRAM reports whether the pattern tables are RAM.
func (c *Cartridge) HasCHRRAM() bool { return c.chrRAM }

// BatteryRAM returns the battery-backed PRG RAM, or nil if the cartridge has
// no battery. The returned slice aliases the cartridge memory.
func (c *Cartridge) BatteryRAM() []byte {
	if !c.battery {
		return nil
	}
	return c.PRGRAM
}

// LoadBatteryRAM restores previously saved battery-backed RAM.
func (c *Cartridge) LoadBatteryRAM(buf []byte) error {
	if !c.battery {
		return fmt.Errorf("cartridge has no battery")
	}
	if len(buf) != len(c.PRGRAM) {
		return fmt.Errorf("battery RAM size mismatch: got %d bytes, want %d", len(buf), len(c.PRGRAM))
	}
	copy(c.PRGRAM, buf)
	return nil
}

// Mirroring returns the current nametable mirroring.
func (c *Cartridge) Mirroring() hwdefs.NTMirroring {
	return c.mirroring
}

// ReadPRG reads the CPU address space owned by the cartridge, $4020-$FFFF.
// ok is false when nothing drives the data bus (open bus).
func (c *Cartridge) ReadPRG(addr uint16) (val uint8, ok bool) {
	switch {
	case addr >= 0x8000:
		switch c.Kind {
		case NROM, MMC1, UxROM, CNROM, MMC3, AxROM, GxROM:
			return c.PRG[c.prgMap[(addr>>13)&3]+int(addr&0x1FFF)], true
		}
	case addr >= 0x6000:
		switch c.Kind {
		case MMC1, MMC3, NROM:
			if c.prgRAMEnabled {
				return c.PRGRAM[addr&0x1FFF], true
			}
		case UxROM, CNROM, AxROM, GxROM:
			return c.PRGRAM[addr&0x1FFF], true
		}
	}
	return 0, false
}

// WritePRG handles CPU writes to $4020-$FFFF. cycle is the current CPU
// cycle, MMC1 ignores writes on consecutive cycles.
func (c *Cartridge) WritePRG(addr uint16, val uint8, cycle int64) {
	switch {
	case addr >= 0x8000:
		switch c.Kind {
		case NROM:
		case UxROM:
			c.writeUxROM(addr, c.conflict(addr, val))
		case CNROM:
			c.writeCNROM(addr, c.conflict(addr, val))
		case AxROM:
			c.writeAxROM(addr, c.conflict(addr, val))
		case GxROM:
			c.writeGxROM(addr, val)
		case MMC1:
			c.writeMMC1(addr, val, cycle)
		case MMC3:
			c.writeMMC3(addr, val)
		}
	case addr >= 0x6000:
		if c.prgRAMEnabled && c.prgRAMWritable {
			c.PRGRAM[addr&0x1FFF] = val
		}
	}
}

// conflict emulates bus conflicts on discrete logic boards: the ROM drives
// the bus at the same time as the CPU, the written value is ANDed with it.
func (c *Cartridge) conflict(addr uint16, val uint8) uint8 {
	if !c.busConflicts {
		return val
	}
	rom, _ := c.ReadPRG(addr)
	return val & rom
}

// ReadCHR reads the pattern tables, $0000-$1FFF on the PPU bus.
func (c *Cartridge) ReadCHR(addr uint16) uint8 {
	switch c.Kind {
	case NROM, MMC1, UxROM, CNROM, MMC3, AxROM, GxROM:
		addr &= 0x1FFF
		return c.CHR[c.chrMap[addr>>10]+int(addr&0x3FF)]
	}
	return 0
}

// WriteCHR writes the pattern tables. Writes to CHR ROM are ignored.
func (c *Cartridge) WriteCHR(addr uint16, val uint8) {
	if !c.chrRAM {
		modMapper.DebugZ("write to CHR ROM").Hex16("addr", addr).Hex8("val", val).End()
		return
	}
	switch c.Kind {
	case NROM, MMC1, UxROM, CNROM, MMC3, AxROM, GxROM:
		addr &= 0x1FFF
		c.CHR[c.chrMap[addr>>10]+int(addr&0x3FF)] = val
	}
}

// NotifyA12 must be called for each PPU bus access, with the current PPU
// dot count. MMC3 clocks its scanline counter on filtered rising edges of
// PPU A12.
func (c *Cartridge) NotifyA12(addr uint16, dot int64) {
	switch c.Kind {
	case MMC3:
		c.mmc3A12(addr, dot)
	}
}

// IRQ reports whether the cartridge IRQ output is asserted.
func (c *Cartridge) IRQ() bool {
	switch c.Kind {
	case MMC3:
		return c.mmc3.IRQPending
	}
	return false
}

func (c *Cartridge) setIRQ(asserted bool) {
	if c.irq == nil {
		return
	}
	if asserted {
		c.irq.SetIRQSource(hwdefs.External)
	} else {
		c.irq.ClearIRQSource(hwdefs.External)
	}
}

/* bank mapping helpers */

// selectPRG8 maps the 8KB PRG bank at the given slot ($8000 + slot*8KB).
// Negative banks count from the last one.
func (c *Cartridge) selectPRG8(slot, bank int) {
	if bank < 0 {
		bank += c.numPRG8
	}
	bank %= c.numPRG8
	c.prgMap[slot] = bank * 0x2000
}

func (c *Cartridge) selectPRG16(slot, bank int) {
	if bank < 0 {
		bank += c.numPRG8 / 2
	}
	c.selectPRG8(slot*2, bank*2)
	c.selectPRG8(slot*2+1, bank*2+1)
}

func (c *Cartridge) selectPRG32(bank int) {
	c.selectPRG16(0, bank*2)
	c.selectPRG16(1, bank*2+1)
}

// selectCHR1 maps a 1KB CHR bank at the given 1KB slot.
func (c *Cartridge) selectCHR1(slot, bank int) {
	bank %= c.numCHR
	c.chrMap[slot] = bank * 0x400
}

func (c *Cartridge) selectCHR4(slot, bank int) {
	for i := 0; i < 4; i++ {
		c.selectCHR1(slot*4+i, bank*4+i)
	}
}

func (c *Cartridge) selectCHR8(bank int) {
	for i := 0; i < 8; i++ {
		c.selectCHR1(i, bank*8+i)
	}
}

func (c *Cartridge) setMirroring(m hwdefs.NTMirroring) {
	if c.hwMirroring == hwdefs.FourScreen || m == c.mirroring {
		return
	}
	modMapper.DebugZ("select NT mirroring").Stringer("mapper", c.Kind).Stringer("prev", c.mirroring).Stringer("new", m).End()
	c.mirroring = m
}
