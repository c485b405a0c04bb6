package hwio

import "fmt"

// Mem is a linear memory area, mirrored over its whole virtual range: any
// address is masked down to the physical size, which must be a power of 2.
type Mem struct {
	Name string // name of the memory area (for debugging)
	Data []byte // actual memory buffer
	mask uint16
}

func NewMem(name string, size int) Mem {
	if size == 0 || size&(size-1) != 0 || size > 0x10000 {
		panic(fmt.Sprintf("memory %q size is not pow2: %d", name, size))
	}
	return Mem{
		Name: name,
		Data: make([]byte, size),
		mask: uint16(size - 1),
	}
}

func (m *Mem) Read8(addr uint16) uint8 {
	return m.Data[addr&m.mask]
}

func (m *Mem) Write8(addr uint16, val uint8) {
	m.Data[addr&m.mask] = val
}

// Load copies buf into memory, starting at offset 0. It returns an error if
// buf has not the exact memory size.
func (m *Mem) Load(buf []byte) error {
	if len(buf) != len(m.Data) {
		return fmt.Errorf("memory %q: size mismatch, got %d bytes, want %d", m.Name, len(buf), len(m.Data))
	}
	copy(m.Data, buf)
	return nil
}

// Clear fills memory with val.
func (m *Mem) Clear(val uint8) {
	for i := range m.Data {
		m.Data[i] = val
	}
}
