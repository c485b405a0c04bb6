package hwio

import "fmt"

// Reg8 is an 8-bit hardware register. Bits set in RoMask can't be modified
// by Write8.
type Reg8 struct {
	Name   string
	Value  uint8
	RoMask uint8
}

func (reg Reg8) String() string {
	return fmt.Sprintf("%s{%02x}", reg.Name, reg.Value)
}

// Write8 writes val, preserving read-only bits.
func (reg *Reg8) Write8(val uint8) {
	reg.Value = (reg.Value & reg.RoMask) | (val &^ reg.RoMask)
}

func (reg *Reg8) Read8() uint8 { return reg.Value }

func (reg *Reg8) GetBit(n uint) bool   { return GetBit8(reg.Value, n) }
func (reg *Reg8) GetBiti(n uint) uint8 { return GetBiti8(reg.Value, n) }
func (reg *Reg8) SetBit(n uint)        { SetBit8(&reg.Value, n) }
func (reg *Reg8) ClearBit(n uint)      { ClearBit8(&reg.Value, n) }

// SetBitTo sets or clears bit n depending on v.
func (reg *Reg8) SetBitTo(n uint, v bool) {
	if v {
		reg.SetBit(n)
	} else {
		reg.ClearBit(n)
	}
}
