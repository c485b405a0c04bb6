package hw

import "fmt"

func (c *CPU) fetch8() uint8 {
	val := c.Read8(c.PC)
	c.PC++
	return val
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

func pagecrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

/* addressing modes */

func (c *CPU) imp() {
	_ = c.Read8(c.PC) // dummy read
}

func (c *CPU) acc() {
	_ = c.Read8(c.PC) // dummy read
}

func (c *CPU) rel() uint16 {
	off := int8(c.fetch8())
	return uint16(int32(c.PC) + int32(off))
}

func (c *CPU) zpg() uint16 {
	return uint16(c.fetch8())
}

func (c *CPU) zpx() uint16 {
	zero := c.fetch8()
	_ = c.Read8(uint16(zero)) // dummy read
	return uint16(zero + c.X)
}

func (c *CPU) zpy() uint16 {
	zero := c.fetch8()
	_ = c.Read8(uint16(zero)) // dummy read
	return uint16(zero + c.Y)
}

func (c *CPU) abs() uint16 {
	return c.fetch16()
}

// abx and aby perform a dummy read at the non-carried address when a page is
// crossed, or always if dummy is true (write and read-modify-write opcodes).
func (c *CPU) abx(dummy bool) uint16 {
	return c.absIndexed(c.X, dummy)
}

func (c *CPU) aby(dummy bool) uint16 {
	return c.absIndexed(c.Y, dummy)
}

func (c *CPU) absIndexed(idx uint8, dummy bool) uint16 {
	base := c.fetch16()
	addr := base + uint16(idx)
	if dummy || pagecrossed(base, addr) {
		_ = c.Read8(base&0xFF00 | addr&0x00FF) // dummy read
	}
	return addr
}

// ind is only used by JMP, reproducing the page wrap bug.
func (c *CPU) ind() uint16 {
	ptr := c.fetch16()
	if ptr&0xFF == 0xFF {
		lo := c.Read8(ptr)
		hi := c.Read8(ptr - 0xFF)
		return uint16(hi)<<8 | uint16(lo)
	}
	return c.Read16(ptr)
}

func (c *CPU) izx() uint16 {
	zero := c.fetch8()
	_ = c.Read8(uint16(zero)) // dummy read
	zero += c.X
	lo := c.Read8(uint16(zero))
	hi := c.Read8(uint16(zero + 1))
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) izy(dummy bool) uint16 {
	zero := c.fetch8()
	lo := c.Read8(uint16(zero))
	hi := c.Read8(uint16(zero + 1))
	base := uint16(hi)<<8 | uint16(lo)
	addr := base + uint16(c.Y)
	if dummy || pagecrossed(base, addr) {
		_ = c.Read8(base&0xFF00 | addr&0x00FF) // dummy read
	}
	return addr
}

/* opcode helpers */

func (c *CPU) setreg(reg *uint8, val uint8) {
	c.P.clearFlags(Zero | Negative)
	c.P.setNZ(val)
	*reg = val
}

// add performs a binary addition with carry (the 2A03 has no decimal mode).
func (c *CPU) add(val uint8) {
	carry := uint16(c.P & Carry)
	sum := uint16(c.A) + uint16(val) + carry

	c.P.clearFlags(Carry | Zero | Overflow | Negative)
	if sum > 0xFF {
		c.P.setFlags(Carry)
	}
	// signed overflow, can only happen if the sign of the sum differs
	// from that of both operands.
	if (uint16(c.A)^sum)&(uint16(val)^sum)&0x80 != 0 {
		c.P.setFlags(Overflow)
	}
	c.A = uint8(sum)
	c.P.setNZ(c.A)
}

// branch jumps to target unless the flags in mask equal val.
func (c *CPU) branch(target uint16, mask, val P) {
	if c.P&mask == val {
		return
	}

	// A taken non-page-crossing branch ignores IRQ/NMI during its last
	// clock, so that next instruction executes before the IRQ.
	if c.irqPoll && !c.prevIRQPoll {
		c.irqPoll = false
	}
	_ = c.Read8(c.PC) // dummy read
	if pagecrossed(c.PC, target) {
		_ = c.Read8(c.PC&0xFF00 | target&0x00FF) // dummy read
	}
	c.PC = target
}

// sh implements the unstable SHA/SHX/SHY/TAS stores: the stored value is
// ANDed with the high byte of the base address plus one, and on page
// crossing the high byte of the target address is corrupted.
func (c *CPU) sh(base uint16, idx, val uint8) {
	addr := base + uint16(idx)
	crossed := pagecrossed(base, addr)
	_ = c.Read8(base&0xFF00 | addr&0x00FF) // dummy read

	hi := uint8(addr >> 8)
	if crossed {
		hi &= val
	}
	c.Write8(uint16(hi)<<8|addr&0xFF, val&(uint8(base>>8)+1))
}

/* disassembly */

func (c *CPU) peek16(addr uint16) uint16 {
	return uint16(c.bus.Peek8(addr)) | uint16(c.bus.Peek8(addr+1))<<8
}

func (c *CPU) disasmOp(pc uint16, n int, oper string) DisasmOp {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = c.bus.Peek8(pc + uint16(i))
	}
	name := opcodeNames[buf[0]]
	if undocumented[buf[0]] {
		name = "*" + name
	}
	return DisasmOp{PC: pc, Opcode: name, Oper: oper, Buf: buf}
}

func disasmImp(c *CPU, pc uint16) DisasmOp {
	return c.disasmOp(pc, 1, "")
}

func disasmAcc(c *CPU, pc uint16) DisasmOp {
	return c.disasmOp(pc, 1, "A")
}

func disasmImm(c *CPU, pc uint16) DisasmOp {
	return c.disasmOp(pc, 2, fmt.Sprintf("#$%02X", c.bus.Peek8(pc+1)))
}

func disasmRel(c *CPU, pc uint16) DisasmOp {
	off := int8(c.bus.Peek8(pc + 1))
	target := uint16(int32(pc) + 2 + int32(off))
	return c.disasmOp(pc, 2, fmt.Sprintf("$%04X", target))
}

func disasmZpg(c *CPU, pc uint16) DisasmOp {
	addr := c.bus.Peek8(pc + 1)
	return c.disasmOp(pc, 2, fmt.Sprintf("$%02X = %02X", addr, c.bus.Peek8(uint16(addr))))
}

func disasmZpx(c *CPU, pc uint16) DisasmOp {
	zero := c.bus.Peek8(pc + 1)
	addr := zero + c.X
	return c.disasmOp(pc, 2, fmt.Sprintf("$%02X,X @ %02X = %02X", zero, addr, c.bus.Peek8(uint16(addr))))
}

func disasmZpy(c *CPU, pc uint16) DisasmOp {
	zero := c.bus.Peek8(pc + 1)
	addr := zero + c.Y
	return c.disasmOp(pc, 2, fmt.Sprintf("$%02X,Y @ %02X = %02X", zero, addr, c.bus.Peek8(uint16(addr))))
}

func disasmAbs(c *CPU, pc uint16) DisasmOp {
	addr := c.peek16(pc + 1)
	switch c.bus.Peek8(pc) {
	case 0x20, 0x4C: // JSR, JMP
		return c.disasmOp(pc, 3, fmt.Sprintf("$%04X", addr))
	}
	return c.disasmOp(pc, 3, fmt.Sprintf("%s = %02X", formatAddr(addr), c.bus.Peek8(addr)))
}

func disasmAbx(c *CPU, pc uint16) DisasmOp {
	base := c.peek16(pc + 1)
	addr := base + uint16(c.X)
	return c.disasmOp(pc, 3, fmt.Sprintf("$%04X,X @ %04X = %02X", base, addr, c.bus.Peek8(addr)))
}

func disasmAby(c *CPU, pc uint16) DisasmOp {
	base := c.peek16(pc + 1)
	addr := base + uint16(c.Y)
	return c.disasmOp(pc, 3, fmt.Sprintf("$%04X,Y @ %04X = %02X", base, addr, c.bus.Peek8(addr)))
}

func disasmInd(c *CPU, pc uint16) DisasmOp {
	ptr := c.peek16(pc + 1)
	var dst uint16
	if ptr&0xFF == 0xFF {
		dst = uint16(c.bus.Peek8(ptr)) | uint16(c.bus.Peek8(ptr-0xFF))<<8
	} else {
		dst = c.peek16(ptr)
	}
	return c.disasmOp(pc, 3, fmt.Sprintf("($%04X) = %04X", ptr, dst))
}

func disasmIzx(c *CPU, pc uint16) DisasmOp {
	zero := c.bus.Peek8(pc + 1)
	ptr := zero + c.X
	addr := uint16(c.bus.Peek8(uint16(ptr))) | uint16(c.bus.Peek8(uint16(ptr+1)))<<8
	return c.disasmOp(pc, 2, fmt.Sprintf("($%02X,X) @ %02X = %04X = %02X", zero, ptr, addr, c.bus.Peek8(addr)))
}

func disasmIzy(c *CPU, pc uint16) DisasmOp {
	zero := c.bus.Peek8(pc + 1)
	base := uint16(c.bus.Peek8(uint16(zero))) | uint16(c.bus.Peek8(uint16(zero+1)))<<8
	addr := base + uint16(c.Y)
	return c.disasmOp(pc, 2, fmt.Sprintf("($%02X),Y = %04X @ %04X = %02X", zero, base, addr, c.bus.Peek8(addr)))
}
