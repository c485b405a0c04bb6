package hw

import (
	"testing"

	"nescore/hw/hwdefs"
)

// dmcBus is a flat bus serving DMC sample fetches.
type dmcBus struct {
	flatBus
	sampleAddr uint16
	fetched    []uint8
}

func (b *dmcBus) dmcAddress() uint16         { return b.sampleAddr }
func (b *dmcBus) dmcSetReadBuffer(val uint8) { b.fetched = append(b.fetched, val) }

func newDMCTestCPU(t *testing.T, dump string) (*CPU, *dmcBus) {
	t.Helper()

	bus := &dmcBus{sampleAddr: 0xC000}
	for _, line := range loadDump(t, dump) {
		copy(bus.mem[line.off:], line.bytes[:line.len])
	}
	cpu := NewCPU(bus, CPUConfig{})
	cpu.Reset(hwdefs.HardReset)
	return cpu, bus
}

func TestDMCStall(t *testing.T) {
	tests := []struct {
		name  string
		dump  string
		stall int
	}{
		// Halt, dummy and alignment cycles, then the fetch.
		{name: "after reset", dump: "0600: ad 00 02\nC000: 5a\nFFFC: 00 06", stall: 4},
		// LDA zp shifts the CPU cycle parity, no alignment needed.
		{name: "after LDA zp", dump: "0600: a5 10 ad 00 02\nC000: 5a\nFFFC: 00 06", stall: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu, bus := newDMCTestCPU(t, tt.dump)
			if bus.mem[0x0600] == 0xA5 {
				if _, err := cpu.Step(); err != nil {
					t.Fatal(err)
				}
			}

			cpu.DMA.StartDMCTransfer()
			n, err := cpu.Step() // LDA abs, 4 cycles
			if err != nil {
				t.Fatal(err)
			}
			if got := n - 4; got != tt.stall {
				t.Errorf("DMC DMA stalled the CPU %d cycles, want %d", got, tt.stall)
			}
			if len(bus.fetched) != 1 || bus.fetched[0] != 0x5A {
				t.Errorf("fetched samples = % x, want 5a", bus.fetched)
			}
		})
	}
}

func TestDMCStopBeforeHalt(t *testing.T) {
	cpu, bus := newDMCTestCPU(t, "0600: ad 00 02\nFFFC: 00 06")

	cpu.DMA.StartDMCTransfer()
	cpu.DMA.StopDMCTransfer()
	n, err := cpu.Step()
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("Step() took %d cycles, want 4 with the transfer cancelled", n)
	}
	if len(bus.fetched) != 0 {
		t.Errorf("cancelled transfer fetched % x", bus.fetched)
	}
}

func TestOAMDMAStall(t *testing.T) {
	tests := []struct {
		name  string
		dump  string
		stall int
	}{
		{name: "after reset", dump: "0600: ad 00 02\nFFFC: 00 06", stall: 513},
		{name: "after LDA zp", dump: "0600: a5 10 ad 00 02\nFFFC: 00 06", stall: 514},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu, bus := newDMCTestCPU(t, tt.dump)
			bus.mem[0x03FF] = 0x77
			if bus.mem[0x0600] == 0xA5 {
				if _, err := cpu.Step(); err != nil {
					t.Fatal(err)
				}
			}

			cpu.DMA.WriteOAMDMA(0x03)
			n, err := cpu.Step()
			if err != nil {
				t.Fatal(err)
			}
			if got := n - 4; got != tt.stall {
				t.Errorf("OAM DMA stalled the CPU %d cycles, want %d", got, tt.stall)
			}
			// The flat bus keeps the last byte written to $2004.
			if got := bus.mem[0x2004]; got != 0x77 {
				t.Errorf("last OAM DMA write = $%02X, want $77", got)
			}
		})
	}
}
