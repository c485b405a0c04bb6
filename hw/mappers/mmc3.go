package mappers

import "nescore/hw/hwdefs"

// MMC3State holds the MMC3 (TxROM) registers and scanline counter.
type MMC3State struct {
	BankSelect uint8    // $8000
	Banks      [8]uint8 // R0-R7, written through $8001
	Mirroring  uint8    // $A000
	RAMProtect uint8    // $A001

	IRQLatch   uint8
	IRQCounter uint8
	IRQReload  bool
	IRQEnabled bool
	IRQPending bool

	A12High  bool
	A12LowAt int64 // PPU dot at which A12 went low
}

// Minimum number of PPU dots A12 must stay low for a rising edge to clock
// the scanline counter (the MMC3 filters out the short drops happening
// between sprite pattern fetches).
const a12Filter = 10

func (c *Cartridge) resetMMC3() {
	c.mmc3.Banks = [8]uint8{0, 2, 4, 5, 6, 7, 0, 1}
	c.remapMMC3()
}

func (c *Cartridge) writeMMC3(addr uint16, val uint8) {
	m := &c.mmc3
	even := addr&1 == 0

	switch {
	case addr < 0xA000:
		if even {
			m.BankSelect = val
		} else {
			m.Banks[m.BankSelect&0x07] = val
		}
		c.remapMMC3()

	case addr < 0xC000:
		if even {
			m.Mirroring = val
		} else {
			m.RAMProtect = val
		}
		c.remapMMC3()

	case addr < 0xE000:
		if even {
			m.IRQLatch = val
		} else {
			m.IRQCounter = 0
			m.IRQReload = true
		}

	default:
		if even {
			m.IRQEnabled = false
			if m.IRQPending {
				m.IRQPending = false
				c.setIRQ(false)
			}
		} else {
			m.IRQEnabled = true
		}
	}
}

func (c *Cartridge) remapMMC3() {
	m := &c.mmc3

	if m.Mirroring&1 == 0 {
		c.setMirroring(hwdefs.VerticalMirroring)
	} else {
		c.setMirroring(hwdefs.HorizontalMirroring)
	}

	// 7  bit  0
	// ---- ----
	// RWXX xxxx
	// ||
	// |+-------- Write protection (0: allow writes; 1: deny writes)
	// +--------- PRG RAM chip enable (0: disable; 1: enable)
	//
	// Power-up value is 0, but many boards don't wire the enable, and games
	// rely on PRG RAM being available. Only honour it once written.
	if m.RAMProtect != 0 {
		c.prgRAMEnabled = m.RAMProtect&0x80 != 0
		c.prgRAMWritable = m.RAMProtect&0x40 == 0
	}

	r6, r7 := int(m.Banks[6]&0x3F), int(m.Banks[7]&0x3F)
	if m.BankSelect&0x40 == 0 {
		c.selectPRG8(0, r6)
		c.selectPRG8(2, -2)
	} else {
		c.selectPRG8(0, -2)
		c.selectPRG8(2, r6)
	}
	c.selectPRG8(1, r7)
	c.selectPRG8(3, -1)

	// CHR A12 inversion swaps the 2KB and 1KB halves.
	inv := 0
	if m.BankSelect&0x80 != 0 {
		inv = 4
	}
	c.selectCHR1(inv^0, int(m.Banks[0]&0xFE))
	c.selectCHR1(inv^1, int(m.Banks[0]|0x01))
	c.selectCHR1(inv^2, int(m.Banks[1]&0xFE))
	c.selectCHR1(inv^3, int(m.Banks[1]|0x01))
	c.selectCHR1(inv^4, int(m.Banks[2]))
	c.selectCHR1(inv^5, int(m.Banks[3]))
	c.selectCHR1(inv^6, int(m.Banks[4]))
	c.selectCHR1(inv^7, int(m.Banks[5]))
}

func (c *Cartridge) mmc3A12(addr uint16, dot int64) {
	m := &c.mmc3
	if addr&0x1000 == 0 {
		if m.A12High {
			m.A12LowAt = dot
		}
		m.A12High = false
		return
	}

	if !m.A12High && dot-m.A12LowAt >= a12Filter {
		c.clockMMC3Counter()
	}
	m.A12High = true
}

func (c *Cartridge) clockMMC3Counter() {
	m := &c.mmc3
	if m.IRQCounter == 0 || m.IRQReload {
		m.IRQCounter = m.IRQLatch
		m.IRQReload = false
	} else {
		m.IRQCounter--
	}

	if m.IRQCounter == 0 && m.IRQEnabled && !m.IRQPending {
		m.IRQPending = true
		c.setIRQ(true)
	}
}
