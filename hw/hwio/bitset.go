package hwio

// Bitset has one bit per CPU address. The zero value is empty.
type Bitset [0x10000 / 64]uint64

func (b *Bitset) Set(addr uint)       { b[addr>>6] |= 1 << (addr & 63) }
func (b *Bitset) Test(addr uint) bool { return b[addr>>6]&(1<<(addr&63)) != 0 }

// Reset clears all bits.
func (b *Bitset) Reset() { clear(b[:]) }
