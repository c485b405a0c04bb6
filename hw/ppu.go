package hw

import (
	"image"

	"nescore/emu/log"
	"nescore/hw/hwio"
	"nescore/hw/snapshot"
)

const (
	NumScanlines = 262 // Number of scanlines per frame.
	NumCycles    = 341 // Number of PPU cycles per scanline.

	ScreenWidth  = 256
	ScreenHeight = 240
)

const (
	vblankScanline    = 241
	preRenderScanline = 261

	// Number of frames after which an open bus bit that hasn't been
	// refreshed decays to 0 (about 600ms).
	openBusDecayFrames = 36
)

// ppuBus is the PPU view of the system: the 14-bit PPU address space
// (pattern tables and nametables, palette RAM excepted) and the NMI line.
type ppuBus interface {
	ppuRead(addr uint16) uint8
	ppuWrite(addr uint16, val uint8)

	// ppuAddr puts addr on the PPU address bus without reading it.
	ppuAddr(addr uint16)

	setNMI(level bool)
}

type sprite struct {
	x     uint8
	attr  uint8
	datal uint8
	datah uint8
}

type bgRegs struct {
	finex uint8

	// latches
	nt, at    uint8
	lo, hi    uint8
	shiftlo   uint16
	shifthi   uint16
	atshiftlo uint16
	atshifthi uint16
}

type PPU struct {
	bus ppuBus

	Cycle    int // Current cycle/pixel in scanline
	Scanline int // Current scanline being drawn

	// Number of frames since power-up.
	FrameCount uint64

	PPUCTRL   hwio.Reg8
	PPUMASK   hwio.Reg8
	PPUSTATUS hwio.Reg8

	vramAddr   loopy
	vramTmp    loopy
	writeLatch bool
	readBuf    uint8
	busAddr    uint16

	bg bgRegs

	oamAddr     uint8
	oam         [0x100]uint8
	oam2        [0x20]uint8
	sprites     [8]sprite
	spriteCount uint8
	sprite0Line bool // sprite 0 is among the sprites of the current line

	palette [0x20]uint8

	openBus      uint8
	openBusDecay [8]uint64

	masterClock   int64
	oddFrame      bool
	preventVBlank bool
	frameDone     bool

	screen *image.RGBA
}

func NewPPU(bus ppuBus) *PPU {
	return &PPU{
		bus:       bus,
		PPUCTRL:   hwio.Reg8{Name: "PPUCTRL"},
		PPUMASK:   hwio.Reg8{Name: "PPUMASK"},
		PPUSTATUS: hwio.Reg8{Name: "PPUSTATUS"},
		screen:    image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight)),
	}
}

// Output returns the frame buffer. Its content is only complete once a frame
// is done, that is when vertical blank starts.
func (p *PPU) Output() *image.RGBA {
	return p.screen
}

func (p *PPU) Reset(soft bool) {
	p.PPUCTRL.Value = 0
	p.PPUMASK.Value = 0
	p.writeLatch = false
	p.readBuf = 0
	p.bg.finex = 0
	p.vramTmp = 0
	p.oddFrame = false
	p.preventVBlank = false
	p.frameDone = false

	if !soft {
		p.PPUSTATUS.Value = 0
		p.vramAddr = 0
		p.busAddr = 0
		p.oamAddr = 0
		p.openBus = 0
		p.openBusDecay = [8]uint64{}
		p.bg = bgRegs{}
		p.sprites = [8]sprite{}
		p.spriteCount = 0
		p.sprite0Line = false
		p.FrameCount = 0
		clear(p.oam[:])
		clear(p.oam2[:])
		clear(p.palette[:])
		clear(p.screen.Pix)
		p.masterClock = 0
	}

	p.Cycle = 0
	p.Scanline = 0
	p.updateNMI()
}

// Run runs the PPU until it reaches the given master clock.
func (p *PPU) Run(masterClock int64) {
	for p.masterClock+ppuDivider <= masterClock {
		p.exec()
		p.masterClock += ppuDivider
	}
}

const ppuDivider = 4

// Dot returns the number of dots elapsed since power-up.
func (p *PPU) Dot() int64 {
	return p.masterClock / ppuDivider
}

// FrameDone reports, and clears, whether vertical blank has been reached
// since the last call.
func (p *PPU) FrameDone() bool {
	done := p.frameDone
	p.frameDone = false
	return done
}

func (p *PPU) renderingEnabled() bool {
	return p.PPUMASK.Value&(1<<showBg|1<<showSprites) != 0
}

// exec runs one dot.
func (p *PPU) exec() {
	if p.Cycle >= NumCycles-1 {
		p.Cycle = 0
		p.Scanline++
		if p.Scanline == NumScanlines {
			p.Scanline = 0
			p.FrameCount++
			p.oddFrame = !p.oddFrame
		}
	} else {
		p.Cycle++
	}

	switch {
	case p.Scanline < ScreenHeight:
		p.renderDot()
	case p.Scanline == vblankScanline:
		if p.Cycle == 1 {
			if !p.preventVBlank {
				p.PPUSTATUS.SetBit(vblank)
				p.updateNMI()
			}
			p.preventVBlank = false
			p.frameDone = true
		}
	case p.Scanline == preRenderScanline:
		if p.Cycle == 1 {
			const mask = 1<<vblank | 1<<sprite0Hit | 1<<spriteOverflow
			hwio.ClearBits8(&p.PPUSTATUS.Value, mask)
			p.updateNMI()
		}
		p.renderDot()

		// With rendering enabled, the last dot of the pre-render line
		// is skipped on odd frames.
		if p.Cycle == 339 && p.oddFrame && p.renderingEnabled() {
			p.Cycle = 340
		}
	}
}

// updateNMI sets the level of the NMI line. It's low (asserted) while both
// the vblank flag and PPUCTRL NMI enable bit are set.
func (p *PPU) updateNMI() {
	p.bus.setNMI(p.PPUSTATUS.GetBit(vblank) && p.PPUCTRL.GetBit(nmi))
}

/* open bus */

// refreshOpenBus latches val on the bits of the data bus given in mask.
func (p *PPU) refreshOpenBus(val, mask uint8) uint8 {
	for i := range uint(8) {
		if mask&(1<<i) != 0 {
			p.openBusDecay[i] = p.FrameCount
		}
	}
	p.openBus = p.openBus&^mask | val&mask
	return p.openBus
}

func (p *PPU) openBusValue() uint8 {
	for i := range uint(8) {
		if p.FrameCount-p.openBusDecay[i] > openBusDecayFrames {
			p.openBus &^= 1 << i
		}
	}
	return p.openBus
}

/* CPU-facing registers */

// ReadReg reads the register at $2000 + (addr & 7).
func (p *PPU) ReadReg(addr uint16) uint8 {
	switch addr & 0x7 {
	case 2:
		return p.ReadPPUSTATUS()
	case 4:
		return p.ReadOAMDATA()
	case 7:
		return p.ReadPPUDATA()
	}
	return p.openBusValue()
}

// PeekReg returns what a read of the register at $2000 + (addr & 7) would
// return, without side effects.
func (p *PPU) PeekReg(addr uint16) uint8 {
	switch addr & 0x7 {
	case 2:
		return p.PPUSTATUS.Value&0xE0 | p.openBus&0x1F
	case 4:
		return p.oam[p.oamAddr]
	case 7:
		if p.vramAddr.addr() >= 0x3F00 {
			return p.readPalette(p.vramAddr.addr()) | p.openBus&0xC0
		}
		return p.readBuf
	}
	return p.openBus
}

// WriteReg writes the register at $2000 + (addr & 7).
func (p *PPU) WriteReg(addr uint16, val uint8) {
	p.refreshOpenBus(val, 0xFF)

	switch addr & 0x7 {
	case 0:
		p.WritePPUCTRL(val)
	case 1:
		p.WritePPUMASK(val)
	case 2:
		// read-only
	case 3:
		p.oamAddr = val
	case 4:
		p.WriteOAMDATA(val)
	case 5:
		p.WritePPUSCROLL(val)
	case 6:
		p.WritePPUADDR(val)
	case 7:
		p.WritePPUDATA(val)
	}
}

// PPUCTRL: $2000
func (p *PPU) WritePPUCTRL(val uint8) {
	log.ModPPU.DebugZ("Write to PPUCTRL").Hex8("val", val).End()

	p.PPUCTRL.Value = val

	// Transfer the nametable bits.
	p.vramTmp.setNametable(val & ntselect)

	// By toggling the nmi bit (bit 7 of PPUCTRL) during vblank without reading
	// PPUSTATUS, a program can cause /nmi to be pulled low multiple times,
	// causing multiple NMIs to be generated.
	p.updateNMI()
}

// PPUMASK: $2001
func (p *PPU) WritePPUMASK(val uint8) {
	log.ModPPU.DebugZ("Write to PPUMASK").Hex8("val", val).End()
	p.PPUMASK.Value = val
}

// PPUSTATUS: $2002
func (p *PPU) ReadPPUSTATUS() uint8 {
	p.writeLatch = false
	ret := p.refreshOpenBus(p.PPUSTATUS.Value, 0xE0)

	p.PPUSTATUS.ClearBit(vblank)
	p.updateNMI()

	// Reading one dot before vblank starts prevents the flag from
	// being set (and the NMI from occurring) for that frame.
	if p.Scanline == vblankScanline && p.Cycle == 0 {
		p.preventVBlank = true
	}
	return ret
}

// OAMDATA: $2004
func (p *PPU) ReadOAMDATA() uint8 {
	return p.refreshOpenBus(p.oam[p.oamAddr], 0xFF)
}

// OAMDATA: $2004
func (p *PPU) WriteOAMDATA(val uint8) {
	if p.isRendering() {
		// Writes during rendering are ignored, but still bump the high
		// 6 bits of OAMADDR.
		p.oamAddr += 4
		return
	}
	p.writeOAM(val)
}

// writeOAM writes at OAMADDR, then increments it. Used by OAMDATA and by the
// OAM DMA.
func (p *PPU) writeOAM(val uint8) {
	if p.oamAddr&0x03 == 0x02 {
		// Unimplemented bits of the attribute byte.
		val &= 0xE3
	}
	p.oam[p.oamAddr] = val
	p.oamAddr++
}

// PPUSCROLL: $2005
func (p *PPU) WritePPUSCROLL(val uint8) {
	log.ModPPU.DebugZ("Write to PPUSCROLL").Hex8("val", val).End()

	if !p.writeLatch { // first write
		p.bg.finex = val & 0b111
		p.vramTmp.setCoarsex(val >> 3)
	} else { // second write
		p.vramTmp.setFiney(uint16(val & 0b111))
		p.vramTmp.setCoarsey(val >> 3)
	}

	p.writeLatch = !p.writeLatch
}

// To read/write VRAM from CPU, PPUADDR is set to the address of the operation.
// It's a 16-bit register so 2 writes are necessary.
// PPUADDR: $2006
func (p *PPU) WritePPUADDR(val uint8) {
	if !p.writeLatch { // first write
		// bit 14 of t is cleared.
		p.vramTmp.setHigh(val & 0b11_1111)
	} else { // second write
		p.vramTmp.setLow(val)
		p.vramAddr = p.vramTmp
		if !p.isRendering() {
			p.setBusAddr(p.vramAddr.addr())
		}
	}

	p.writeLatch = !p.writeLatch
}

// PPUDATA: $2007
func (p *PPU) ReadPPUDATA() uint8 {
	addr := p.vramAddr.addr()

	var val uint8
	if addr >= 0x3F00 {
		// Reading palette data is immediate, the 2 high bits come from
		// the open bus. The buffer gets the nametable byte 'under' the
		// palette.
		val = p.refreshOpenBus(p.readPalette(addr), 0x3F)
		p.readBuf = p.bus.ppuRead(addr - 0x1000)
	} else {
		// Reading VRAM is too slow so the actual data
		// will be returned at the next read.
		val = p.refreshOpenBus(p.readBuf, 0xFF)
		p.readBuf = p.bus.ppuRead(addr)
	}

	log.ModPPU.DebugZ("VRAM read").
		Hex16("addr", addr).
		Hex8("val", val).
		End()

	p.incVRAMaddr()
	return val
}

// PPUDATA: $2007
func (p *PPU) WritePPUDATA(val uint8) {
	addr := p.vramAddr.addr()
	log.ModPPU.DebugZ("VRAM write").
		Hex16("addr", addr).
		Hex8("val", val).
		End()

	if addr >= 0x3F00 {
		p.writePalette(addr, val)
	} else {
		p.bus.ppuWrite(addr, val)
	}
	p.incVRAMaddr()
}

// After each i/o on PPUDATA, PPUADDR is incremented.
func (p *PPU) incVRAMaddr() {
	if p.isRendering() {
		// During rendering, the increment glitches into a coarse X and a
		// Y increment.
		p.vramAddr.incx()
		p.vramAddr.incy()
		return
	}

	incr := loopy(1)
	if p.PPUCTRL.GetBit(vramIncr) {
		incr = 32
	}
	p.vramAddr = (p.vramAddr + incr) & 0x7FFF
	p.setBusAddr(p.vramAddr.addr())
}

// isRendering reports whether the PPU is currently fetching data, that is on a
// visible or pre-render line with rendering enabled.
func (p *PPU) isRendering() bool {
	return p.renderingEnabled() && (p.Scanline < ScreenHeight || p.Scanline == preRenderScanline)
}

func (p *PPU) setBusAddr(addr uint16) {
	p.busAddr = addr
	p.bus.ppuAddr(addr)
}

func (p *PPU) read(addr uint16) uint8 {
	p.busAddr = addr
	return p.bus.ppuRead(addr)
}

/* palette */

func paletteIndex(addr uint16) uint16 {
	idx := addr & 0x1F
	// $3F10/$3F14/$3F18/$3F1C mirror $3F00/$3F04/$3F08/$3F0C.
	if idx&0x13 == 0x10 {
		idx &^= 0x10
	}
	return idx
}

func (p *PPU) readPalette(addr uint16) uint8 {
	val := p.palette[paletteIndex(addr)]
	if p.PPUMASK.GetBit(greyscale) {
		val &= 0x30
	}
	return val
}

func (p *PPU) writePalette(addr uint16, val uint8) {
	p.palette[paletteIndex(addr)] = val & 0x3F
}

/* state */

func (p *PPU) saveState(state *snapshot.PPU) {
	state.Palette = p.palette
	state.OAM = p.oam
	state.OAM2 = p.oam2
	for i, s := range p.sprites {
		state.Sprites[i] = snapshot.Sprite{X: s.x, Attr: s.attr, DataL: s.datal, DataH: s.datah}
	}
	state.SpriteCount = p.spriteCount
	state.Sprite0Line = p.sprite0Line

	state.OpenBus = p.openBus
	state.OpenBusDecay = p.openBusDecay

	state.BusAddr = p.busAddr
	state.OAMAddr = p.oamAddr
	state.VRAMAddr = uint16(p.vramAddr)
	state.VRAMTemp = uint16(p.vramTmp)
	state.FineX = p.bg.finex
	state.WriteLatch = p.writeLatch
	state.ReadBuf = p.readBuf

	state.Bg = snapshot.PPUBgRegs{
		NT:        p.bg.nt,
		AT:        p.bg.at,
		BgLo:      p.bg.lo,
		BgHi:      p.bg.hi,
		BgShiftLo: p.bg.shiftlo,
		BgShiftHi: p.bg.shifthi,
		ATShiftLo: p.bg.atshiftlo,
		ATShiftHi: p.bg.atshifthi,
	}

	state.PPUCTRL = p.PPUCTRL.Value
	state.PPUMASK = p.PPUMASK.Value
	state.PPUSTATUS = p.PPUSTATUS.Value

	state.MasterClock = p.masterClock
	state.Cycle = p.Cycle
	state.Scanline = p.Scanline
	state.FrameCount = p.FrameCount
	state.OddFrame = p.oddFrame
	state.PreventVBlank = p.preventVBlank
}

func (p *PPU) setState(state *snapshot.PPU) {
	p.palette = state.Palette
	p.oam = state.OAM
	p.oam2 = state.OAM2
	for i, s := range state.Sprites {
		p.sprites[i] = sprite{x: s.X, attr: s.Attr, datal: s.DataL, datah: s.DataH}
	}
	p.spriteCount = state.SpriteCount
	p.sprite0Line = state.Sprite0Line

	p.openBus = state.OpenBus
	p.openBusDecay = state.OpenBusDecay

	p.busAddr = state.BusAddr
	p.oamAddr = state.OAMAddr
	p.vramAddr = loopy(state.VRAMAddr)
	p.vramTmp = loopy(state.VRAMTemp)
	p.writeLatch = state.WriteLatch
	p.readBuf = state.ReadBuf

	p.bg = bgRegs{
		finex:     state.FineX,
		nt:        state.Bg.NT,
		at:        state.Bg.AT,
		lo:        state.Bg.BgLo,
		hi:        state.Bg.BgHi,
		shiftlo:   state.Bg.BgShiftLo,
		shifthi:   state.Bg.BgShiftHi,
		atshiftlo: state.Bg.ATShiftLo,
		atshifthi: state.Bg.ATShiftHi,
	}

	p.PPUCTRL.Value = state.PPUCTRL
	p.PPUMASK.Value = state.PPUMASK
	p.PPUSTATUS.Value = state.PPUSTATUS

	p.masterClock = state.MasterClock
	p.Cycle = state.Cycle
	p.Scanline = state.Scanline
	p.FrameCount = state.FrameCount
	p.oddFrame = state.OddFrame
	p.preventVBlank = state.PreventVBlank
	p.frameDone = false
	p.updateNMI()
}
