package hw

// Instruction bodies shared by the generated opcodes. val is the operand
// value, already read by the addressing mode.

func (c *CPU) and(val uint8) { c.setreg(&c.A, c.A&val) }
func (c *CPU) ora(val uint8) { c.setreg(&c.A, c.A|val) }
func (c *CPU) eor(val uint8) { c.setreg(&c.A, c.A^val) }
func (c *CPU) sbc(val uint8) { c.add(^val) }

// compare sets the flags as reg-val does, C meaning no borrow.
func (c *CPU) compare(reg, val uint8) {
	c.P.clearFlags(Zero | Negative | Carry)
	c.P.setNZ(reg - val)
	if val <= reg {
		c.P.setFlags(Carry)
	}
}

func (c *CPU) bit(val uint8) {
	c.P.clearFlags(Zero | Overflow | Negative)
	c.P |= P(val) & (Overflow | Negative)
	if c.A&val == 0 {
		c.P.setFlags(Zero)
	}
}

// shl and shr shift in the low (resp. high) bit, the bit shifted out goes
// to the carry.
func (c *CPU) shl(val, in uint8) uint8 {
	c.P.clearFlags(Zero | Negative | Carry)
	c.P |= P(val >> 7)
	val = val<<1 | in
	c.P.setNZ(val)
	return val
}

func (c *CPU) shr(val, in uint8) uint8 {
	c.P.clearFlags(Zero | Negative | Carry)
	c.P |= P(val & 1)
	val = val>>1 | in<<7
	c.P.setNZ(val)
	return val
}

func (c *CPU) asl(val uint8) uint8 { return c.shl(val, 0) }
func (c *CPU) lsr(val uint8) uint8 { return c.shr(val, 0) }
func (c *CPU) rol(val uint8) uint8 { return c.shl(val, uint8(c.P&Carry)) }
func (c *CPU) ror(val uint8) uint8 { return c.shr(val, uint8(c.P&Carry)) }

/* stack */

// B and U only exist in the copy of P pushed on the stack.
const stackOnlyFlags = Break | Reserved

func (c *CPU) stackDummyRead() {
	_ = c.Read8(stackPage | uint16(c.SP))
}

func (c *CPU) pla() {
	c.stackDummyRead()
	c.setreg(&c.A, c.pull8())
}

func (c *CPU) plp() {
	c.stackDummyRead()
	c.P = c.P&stackOnlyFlags | P(c.pull8())&^stackOnlyFlags
}

func (c *CPU) rti() {
	c.plp()
	c.PC = c.pull16()
}

func (c *CPU) rts() {
	c.stackDummyRead()
	c.PC = c.pull16()
	_ = c.fetch8()
}

/* undocumented */

// Magic constants of the unstable ANE and LXA, the values most 2A03 chips
// are measured with.
const (
	aneMagic = 0xEE
	lxaMagic = 0xFF
)

func (c *CPU) anc(val uint8) {
	c.and(val)
	c.P.clearFlags(Carry)
	c.P |= P(c.A >> 7)
}

func (c *CPU) alr(val uint8) {
	c.A = c.lsr(c.A & val)
}

// arr is AND then ROR, with C and V computed from bits 6 and 5 of the result.
func (c *CPU) arr(val uint8) {
	c.A = (c.A&val)>>1 | uint8(c.P&Carry)<<7
	c.P.clearFlags(Zero | Negative | Carry | Overflow)
	c.P.setNZ(c.A)
	b6, b5 := c.A>>6&1, c.A>>5&1
	if b6 != 0 {
		c.P.setFlags(Carry)
	}
	if b6 != b5 {
		c.P.setFlags(Overflow)
	}
}

func (c *CPU) ane(val uint8) {
	c.setreg(&c.A, val&c.X&(c.A|aneMagic))
}

func (c *CPU) lxa(val uint8) {
	c.setreg(&c.A, (c.A|lxaMagic)&val)
	c.X = c.A
}

func (c *CPU) sbx(val uint8) {
	ax := c.A & c.X
	c.compare(ax, val)
	c.X = ax - val
}

func (c *CPU) las(val uint8) {
	c.setreg(&c.A, c.SP&val)
	c.X = c.A
	c.SP = c.A
}

// shaIndirect is SHA (nn),Y, its pointer wraps around zero page.
func (c *CPU) shaIndirect() {
	zp := c.fetch8()
	lo := c.Read8(uint16(zp))
	hi := c.Read8(uint16(zp + 1))
	c.sh(uint16(hi)<<8|uint16(lo), c.Y, c.X&c.A)
}
