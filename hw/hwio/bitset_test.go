package hwio

import "testing"

func TestBitset(t *testing.T) {
	var b Bitset
	addrs := []uint{0x0000, 0x003F, 0x0040, 0x8001, 0xFFFF}
	for _, a := range addrs {
		b.Set(a)
	}

	for a := range uint(0x10000) {
		want := false
		for _, s := range addrs {
			want = want || s == a
		}
		if got := b.Test(a); got != want {
			t.Fatalf("Test($%04X) = %t, want %t", a, got, want)
		}
	}

	b.Reset()
	for _, a := range addrs {
		if b.Test(a) {
			t.Errorf("Test($%04X) = true after Reset", a)
		}
	}
}

func TestBitops(t *testing.T) {
	v := uint8(0x81)
	if !GetBit8(v, 7) || GetBit8(v, 6) || GetBiti8(v, 0) != 1 {
		t.Fatalf("GetBit8/GetBiti8 on %08b", v)
	}
	SetBit8(&v, 4)
	ClearBit8(&v, 0)
	if v != 0x90 {
		t.Errorf("v = %08b, want %08b", v, 0x90)
	}
	ClearBits8(&v, 0xF0)
	if v != 0 {
		t.Errorf("v = %08b, want 0", v)
	}
}
