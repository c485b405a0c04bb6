package hwio

import "testing"

func TestReg8(t *testing.T) {
	r := Reg8{Value: 0x11, RoMask: 0xF0}

	if got := r.Read8(); got != 0x11 {
		t.Errorf("invalid read: %x", got)
	}

	r.Write8(0x77)
	if r.Value != 0x17 {
		t.Errorf("writemask not respected: %x", r.Value)
	}

	r.SetBitTo(7, true)
	if !r.GetBit(7) || r.Value != 0x97 {
		t.Errorf("SetBitTo(7, true): %x", r.Value)
	}
	r.SetBitTo(0, false)
	if r.GetBiti(0) != 0 || r.Value != 0x96 {
		t.Errorf("SetBitTo(0, false): %x", r.Value)
	}
}

func TestMemMirroring(t *testing.T) {
	m := NewMem("ram", 0x800)

	m.Write8(0x0001, 0xAB)
	for _, addr := range []uint16{0x0801, 0x1001, 0x1801} {
		if got := m.Read8(addr); got != 0xAB {
			t.Errorf("Read8(%04x) = %02x, want AB", addr, got)
		}
	}

	if err := m.Load(make([]byte, 0x400)); err == nil {
		t.Errorf("Load with wrong size should fail")
	}
}

func TestNewMemNotPow2(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("NewMem should panic on non pow2 size")
		}
	}()
	NewMem("bad", 0x600)
}
