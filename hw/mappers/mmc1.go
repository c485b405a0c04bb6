package mappers

import "nescore/hw/hwdefs"

// MMC1State holds the MMC1 (SxROM) registers.
type MMC1State struct {
	Shift   uint8 // serial shift register
	Counter uint8 // count of bits shifted

	Control uint8 // $8000-$9FFF
	CHR0    uint8 // $A000-$BFFF
	CHR1    uint8 // $C000-$DFFF
	PRG     uint8 // $E000-$FFFF

	LastWrite int64 // CPU cycle of the last serial write
}

func (c *Cartridge) resetMMC1() {
	// On powerup: bits 2,3 of $8000 are set (this ensures the $8000 is bank 0,
	// and $C000 is the last bank - needed for SEROM/SHROM/SH1ROM which do no
	// support banking)
	c.mmc1.Control = 0x0C
	c.mmc1.LastWrite = -2
	c.remapMMC1()
}

func (c *Cartridge) writeMMC1(addr uint16, val uint8, cycle int64) {
	m := &c.mmc1

	// Ignore consecutive cycle writes (read-modify-write instructions).
	consecutive := cycle-m.LastWrite < 2
	m.LastWrite = cycle
	if consecutive {
		return
	}

	if val&0x80 != 0 {
		// if the resetbit is set.
		//	- ignore databit
		//	- reset shift register (so that the next write is the "first" write)
		//	- bits 2,3 of control reg are set (16k PRG mode, $8000 swappable)
		//	- other bits of $8000 (and other regs) are unchanged
		m.Shift = 0
		m.Counter = 0
		m.Control |= 0x0C
		c.remapMMC1()
		return
	}

	m.Shift >>= 1
	m.Shift |= (val & 1) << 4
	m.Counter++
	if m.Counter < 5 {
		return
	}

	reg := m.Shift
	m.Shift = 0
	m.Counter = 0

	switch (addr >> 13) & 3 {
	case 0:
		m.Control = reg
	case 1:
		m.CHR0 = reg
	case 2:
		m.CHR1 = reg
	case 3:
		m.PRG = reg
	}
	modMapper.DebugZ("write register").
		Stringer("mapper", c.Kind).
		Hex16("addr", addr).
		Hex8("val", reg).
		End()
	c.remapMMC1()
}

func (c *Cartridge) remapMMC1() {
	m := &c.mmc1

	switch m.Control & 0x03 {
	case 0:
		c.setMirroring(hwdefs.OnlyAScreen)
	case 1:
		c.setMirroring(hwdefs.OnlyBScreen)
	case 2:
		c.setMirroring(hwdefs.VerticalMirroring)
	case 3:
		c.setMirroring(hwdefs.HorizontalMirroring)
	}

	// SUROM/SXROM: CHR0 bit 4 selects the 256KB PRG outer bank.
	outer := 0
	if len(c.PRG) > 256*1024 {
		outer = int(m.CHR0 & 0x10)
	}

	// $E000-FFFF:  [...W PPPP]
	// W = WRAM Disable (0=enabled, 1=disabled)
	// P = PRG Reg
	bank := int(m.PRG & 0x0F)
	c.prgRAMEnabled = m.PRG&0x10 == 0

	switch (m.Control >> 2) & 0x03 {
	case 0, 1:
		// 32KB mode, ignore low bit of bank number
		c.selectPRG16(0, outer|bank&^1)
		c.selectPRG16(1, outer|bank|1)
	case 2:
		// first bank fixed at $8000
		c.selectPRG16(0, outer)
		c.selectPRG16(1, outer|bank)
	case 3:
		// last bank fixed at $C000
		c.selectPRG16(0, outer|bank)
		c.selectPRG16(1, outer|0x0F)
	}

	if m.Control&0x10 == 0 {
		// 8KB mode, ignore low bit of bank number
		c.selectCHR4(0, int(m.CHR0&0x1E))
		c.selectCHR4(1, int(m.CHR0|1))
	} else {
		c.selectCHR4(0, int(m.CHR0))
		c.selectCHR4(1, int(m.CHR1))
	}
}
