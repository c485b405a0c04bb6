package mappers

import "nescore/hw/hwdefs"

// DiscreteState is the state of the discrete logic boards (NROM, UxROM,
// CNROM, AxROM, GxROM): a single latch written through $8000-$FFFF.
type DiscreteState struct {
	Latch uint8
}

// remapDiscrete recomputes the banks of discrete logic boards from their
// latch.
func (c *Cartridge) remapDiscrete() {
	latch := int(c.discrete.Latch)
	switch c.Kind {
	case NROM:
		// 16KB PRG is mirrored at $C000.
		c.selectPRG16(0, 0)
		c.selectPRG16(1, -1)
		c.selectCHR8(0)

	case UxROM:
		// 7  bit  0
		// ---- ----
		// xxxx pPPP
		//      ||||
		//      ++++- Select 16 KB PRG ROM bank for CPU $8000-$BFFF
		//            (UNROM uses bits 2-0; UOROM uses bits 3-0)
		c.selectPRG16(0, latch&0x0F)
		c.selectPRG16(1, -1)
		c.selectCHR8(0)

	case CNROM:
		// 7  bit  0
		// ---- ----
		// cccc ccCC
		// |||| ||||
		// ++++-++++- Select 8 KB CHR ROM bank for PPU $0000-$1FFF
		c.selectPRG16(0, 0)
		c.selectPRG16(1, -1)
		c.selectCHR8(latch)

	case AxROM:
		// 7  bit  0
		// ---- ----
		// xxxM xPPP
		//    |  |||
		//    |  +++- Select 32 KB PRG ROM bank for CPU $8000-$FFFF
		//    +------ Select 1 KB VRAM page for all 4 nametables
		c.selectPRG32(latch & 0x07)
		c.selectCHR8(0)
		if latch&0x10 != 0 {
			c.setMirroring(hwdefs.OnlyBScreen)
		} else {
			c.setMirroring(hwdefs.OnlyAScreen)
		}

	case GxROM:
		// 7  bit  0
		// ---- ----
		// xxPP xxCC
		//   ||   ||
		//   ||   ++- Select 8 KB CHR ROM bank for PPU $0000-$1FFF
		//   ++------ Select 32 KB PRG ROM bank for CPU $8000-$FFFF
		c.selectPRG32((latch >> 4) & 0x03)
		c.selectCHR8(latch & 0x03)
	}
}

func (c *Cartridge) writeLatch(val uint8) {
	prev := c.discrete.Latch
	c.discrete.Latch = val
	if prev != val {
		modMapper.DebugZ("bank switch").Stringer("mapper", c.Kind).Hex8("prev", prev).Hex8("new", val).End()
	}
	c.remapDiscrete()
}

func (c *Cartridge) writeUxROM(_ uint16, val uint8) { c.writeLatch(val) }
func (c *Cartridge) writeCNROM(_ uint16, val uint8) { c.writeLatch(val) }
func (c *Cartridge) writeAxROM(_ uint16, val uint8) { c.writeLatch(val) }
func (c *Cartridge) writeGxROM(_ uint16, val uint8) { c.writeLatch(val) }
