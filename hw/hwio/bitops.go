package hwio

// Bit helpers for 8-bit registers. n is the bit index, 0 being the LSB.

func GetBit8(v uint8, n uint) bool   { return v&(1<<n) != 0 }
func GetBiti8(v uint8, n uint) uint8 { return v >> n & 1 }
func SetBit8(v *uint8, n uint)       { *v |= 1 << n }
func ClearBit8(v *uint8, n uint)     { *v &^= 1 << n }

// ClearBits8 clears the bits set in mask.
func ClearBits8(v *uint8, mask uint8) { *v &^= mask }
