package mappers

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"nescore/hw/hwdefs"
	"nescore/ines"
)

// testCart creates a cartridge where each 8KB PRG bank is filled with its
// index and each 1KB CHR bank with 0x80 | its index.
func testCart(t *testing.T, mapper uint8, prg16, chr8 int) *Cartridge {
	t.Helper()

	prg := make([]byte, prg16*0x4000)
	for i := range prg {
		prg[i] = uint8(i / 0x2000)
	}
	chr := make([]byte, chr8*0x2000)
	for i := range chr {
		chr[i] = 0x80 | uint8(i/0x400)
	}

	cart, err := New(ines.New(mapper, ines.Vertical, true, prg, chr))
	if err != nil {
		t.Fatal(err)
	}
	return cart
}

// prgBanks returns the 8KB PRG banks mapped at $8000, $A000, $C000, $E000.
func prgBanks(c *Cartridge) [4]uint8 {
	var banks [4]uint8
	for i := range banks {
		banks[i], _ = c.ReadPRG(0x8000 + uint16(i)*0x2000)
	}
	return banks
}

// chrBanks returns the 1KB CHR banks mapped at $0000-$1FFF.
func chrBanks(c *Cartridge) [8]uint8 {
	var banks [8]uint8
	for i := range banks {
		banks[i] = c.ReadCHR(uint16(i)*0x400) &^ 0x80
	}
	return banks
}

type irqRecorder struct {
	asserted bool
	count    int
}

func (r *irqRecorder) SetIRQSource(src hwdefs.IRQSource) {
	if src == hwdefs.External {
		r.asserted = true
		r.count++
	}
}

func (r *irqRecorder) ClearIRQSource(src hwdefs.IRQSource) {
	if src == hwdefs.External {
		r.asserted = false
	}
}

func TestUnsupportedMapper(t *testing.T) {
	rom := ines.New(5, ines.Horizontal, false, make([]byte, 0x4000), nil)
	_, err := New(rom)
	if !errors.Is(err, ErrUnsupportedMapper) {
		t.Fatalf("New() error = %v, want %v", err, ErrUnsupportedMapper)
	}
}

func TestNROM(t *testing.T) {
	cart := testCart(t, 0, 1, 1)

	// 16KB PRG is mirrored.
	if diff := cmp.Diff([4]uint8{0, 1, 0, 1}, prgBanks(cart)); diff != "" {
		t.Errorf("PRG banks mismatch (-want +got):\n%s", diff)
	}
	if got := cart.Mirroring(); got != hwdefs.VerticalMirroring {
		t.Errorf("Mirroring() = %s, want %s", got, hwdefs.VerticalMirroring)
	}

	cart.WritePRG(0x6010, 0x42, 0)
	if val, ok := cart.ReadPRG(0x6010); !ok || val != 0x42 {
		t.Errorf("ReadPRG($6010) = %02x, %t, want 42, true", val, ok)
	}
	if _, ok := cart.ReadPRG(0x5000); ok {
		t.Errorf("ReadPRG($5000) should be open bus")
	}

	// CHR ROM is read-only.
	cart.WriteCHR(0x0010, 0x00)
	if got := cart.ReadCHR(0x0010); got != 0x80 {
		t.Errorf("ReadCHR($0010) = %02x after write to ROM, want 80", got)
	}
}

func TestCHRRAM(t *testing.T) {
	cart := testCart(t, 0, 2, 0)
	if !cart.HasCHRRAM() {
		t.Fatal("HasCHRRAM() = false, want true")
	}

	cart.WriteCHR(0x1234, 0x99)
	if got := cart.ReadCHR(0x1234); got != 0x99 {
		t.Errorf("ReadCHR($1234) = %02x, want 99", got)
	}
}

func TestDiscreteBoards(t *testing.T) {
	tests := []struct {
		name   string
		mapper uint8
		prg16  int
		chr8   int
		write  uint8
		prg    [4]uint8
		chr    [8]uint8
		mirror hwdefs.NTMirroring
	}{
		{
			name:   "UxROM",
			mapper: 2, prg16: 8, chr8: 0,
			write:  3,
			prg:    [4]uint8{6, 7, 14, 15},
			mirror: hwdefs.VerticalMirroring,
		},
		{
			name:   "CNROM",
			mapper: 3, prg16: 2, chr8: 4,
			write:  2,
			prg:    [4]uint8{0, 1, 2, 3},
			chr:    [8]uint8{16, 17, 18, 19, 20, 21, 22, 23},
			mirror: hwdefs.VerticalMirroring,
		},
		{
			name:   "AxROM",
			mapper: 7, prg16: 8, chr8: 0,
			write:  0x12,
			prg:    [4]uint8{8, 9, 10, 11},
			mirror: hwdefs.OnlyBScreen,
		},
		{
			name:   "GxROM",
			mapper: 66, prg16: 8, chr8: 4,
			write:  0x31,
			prg:    [4]uint8{12, 13, 14, 15},
			chr:    [8]uint8{8, 9, 10, 11, 12, 13, 14, 15},
			mirror: hwdefs.VerticalMirroring,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := testCart(t, tt.mapper, tt.prg16, tt.chr8)
			cart.WritePRG(0x8000, tt.write, 0)

			if diff := cmp.Diff(tt.prg, prgBanks(cart)); diff != "" {
				t.Errorf("PRG banks mismatch (-want +got):\n%s", diff)
			}
			if tt.chr8 != 0 {
				if diff := cmp.Diff(tt.chr, chrBanks(cart)); diff != "" {
					t.Errorf("CHR banks mismatch (-want +got):\n%s", diff)
				}
			}
			if got := cart.Mirroring(); got != tt.mirror {
				t.Errorf("Mirroring() = %s, want %s", got, tt.mirror)
			}
		})
	}
}

func TestBusConflicts(t *testing.T) {
	cart := testCart(t, 2, 8, 0)
	cart.busConflicts = true

	// $8000 holds bank 0 data (0x00): the written value is ANDed with it.
	cart.WritePRG(0x8000, 0x03, 0)
	if diff := cmp.Diff([4]uint8{0, 1, 14, 15}, prgBanks(cart)); diff != "" {
		t.Errorf("PRG banks mismatch (-want +got):\n%s", diff)
	}

	// $C000 holds bank 14 (0x0E).
	cart.WritePRG(0xC000, 0x07, 0)
	if diff := cmp.Diff([4]uint8{12, 13, 14, 15}, prgBanks(cart)); diff != "" {
		t.Errorf("PRG banks mismatch (-want +got):\n%s", diff)
	}
}

// mmc1Write performs the 5 serial writes setting an MMC1 register.
func mmc1Write(c *Cartridge, addr uint16, val uint8, cycle *int64) {
	for i := 0; i < 5; i++ {
		c.WritePRG(addr, val>>i&1, *cycle)
		*cycle += 2
	}
}

func TestMMC1(t *testing.T) {
	cart := testCart(t, 1, 8, 4)
	var cycle int64

	// Power-up: PRG mode 3, last bank fixed at $C000.
	if diff := cmp.Diff([4]uint8{0, 1, 14, 15}, prgBanks(cart)); diff != "" {
		t.Errorf("power-up PRG banks mismatch (-want +got):\n%s", diff)
	}

	mmc1Write(cart, 0xE000, 0x02, &cycle)
	if diff := cmp.Diff([4]uint8{4, 5, 14, 15}, prgBanks(cart)); diff != "" {
		t.Errorf("PRG banks mismatch (-want +got):\n%s", diff)
	}

	// Control: vertical mirroring, PRG mode 2 (first bank fixed), 4KB CHR.
	mmc1Write(cart, 0x8000, 0x1A, &cycle)
	if got := cart.Mirroring(); got != hwdefs.VerticalMirroring {
		t.Errorf("Mirroring() = %s, want %s", got, hwdefs.VerticalMirroring)
	}
	if diff := cmp.Diff([4]uint8{0, 1, 4, 5}, prgBanks(cart)); diff != "" {
		t.Errorf("PRG banks mismatch (-want +got):\n%s", diff)
	}

	mmc1Write(cart, 0xA000, 0x03, &cycle)
	mmc1Write(cart, 0xC000, 0x06, &cycle)
	want := [8]uint8{12, 13, 14, 15, 24, 25, 26, 27}
	if diff := cmp.Diff(want, chrBanks(cart)); diff != "" {
		t.Errorf("CHR banks mismatch (-want +got):\n%s", diff)
	}

	// PRG RAM disable bit.
	cart.WritePRG(0x6000, 0x55, cycle)
	mmc1Write(cart, 0xE000, 0x12, &cycle)
	if _, ok := cart.ReadPRG(0x6000); ok {
		t.Errorf("PRG RAM should be disabled")
	}
	mmc1Write(cart, 0xE000, 0x02, &cycle)
	if val, ok := cart.ReadPRG(0x6000); !ok || val != 0x55 {
		t.Errorf("ReadPRG($6000) = %02x, %t, want 55, true", val, ok)
	}
}

func TestMMC1ConsecutiveWrites(t *testing.T) {
	cart := testCart(t, 1, 8, 0)

	// The second write of a read-modify-write instruction is ignored.
	cart.WritePRG(0xE000, 0x01, 100)
	cart.WritePRG(0xE000, 0x00, 101)
	if cart.mmc1.Counter != 1 {
		t.Fatalf("shift counter = %d, want 1", cart.mmc1.Counter)
	}

	// Reset bit clears the shift register and sets PRG mode 3.
	cart.mmc1.Control = 0
	cart.WritePRG(0x8000, 0x80, 110)
	if cart.mmc1.Counter != 0 || cart.mmc1.Shift != 0 {
		t.Errorf("shift register not reset: counter=%d shift=%02x", cart.mmc1.Counter, cart.mmc1.Shift)
	}
	if cart.mmc1.Control&0x0C != 0x0C {
		t.Errorf("control = %02x, want bits 2-3 set", cart.mmc1.Control)
	}
}

func TestMMC3Banks(t *testing.T) {
	cart := testCart(t, 4, 8, 8)

	cart.WritePRG(0x8000, 6, 0)
	cart.WritePRG(0x8001, 3, 0)
	cart.WritePRG(0x8000, 7, 0)
	cart.WritePRG(0x8001, 5, 0)
	if diff := cmp.Diff([4]uint8{3, 5, 14, 15}, prgBanks(cart)); diff != "" {
		t.Errorf("PRG banks mismatch (-want +got):\n%s", diff)
	}

	// PRG mode 1 swaps $8000 and $C000.
	cart.WritePRG(0x8000, 0x46, 0)
	if diff := cmp.Diff([4]uint8{14, 5, 3, 15}, prgBanks(cart)); diff != "" {
		t.Errorf("PRG banks mismatch (-want +got):\n%s", diff)
	}

	for i, bank := range []uint8{8, 10, 1, 2, 3, 4} {
		cart.WritePRG(0x8000, uint8(i), 0)
		cart.WritePRG(0x8001, bank, 0)
	}
	if diff := cmp.Diff([8]uint8{8, 9, 10, 11, 1, 2, 3, 4}, chrBanks(cart)); diff != "" {
		t.Errorf("CHR banks mismatch (-want +got):\n%s", diff)
	}

	// CHR A12 inversion.
	cart.WritePRG(0x8000, 0x80, 0)
	if diff := cmp.Diff([8]uint8{1, 2, 3, 4, 8, 9, 10, 11}, chrBanks(cart)); diff != "" {
		t.Errorf("inverted CHR banks mismatch (-want +got):\n%s", diff)
	}

	cart.WritePRG(0xA000, 1, 0)
	if got := cart.Mirroring(); got != hwdefs.HorizontalMirroring {
		t.Errorf("Mirroring() = %s, want %s", got, hwdefs.HorizontalMirroring)
	}

	// Write protect.
	cart.WritePRG(0x6000, 0x11, 0)
	cart.WritePRG(0xA001, 0xC0, 0)
	cart.WritePRG(0x6000, 0x22, 0)
	if val, _ := cart.ReadPRG(0x6000); val != 0x11 {
		t.Errorf("ReadPRG($6000) = %02x, want 11 (write protected)", val)
	}
}

func TestMMC3IRQ(t *testing.T) {
	cart := testCart(t, 4, 8, 8)
	var irq irqRecorder
	cart.ConnectIRQ(&irq)

	dot := int64(100)
	rise := func(lowFor int64) {
		cart.NotifyA12(0x0000, dot)
		dot += lowFor
		cart.NotifyA12(0x1000, dot)
		dot += 8
	}

	cart.WritePRG(0xC000, 2, 0) // latch
	cart.WritePRG(0xC001, 0, 0) // reload
	cart.WritePRG(0xE001, 0, 0) // enable

	rise(20) // reload to 2
	rise(20) // 1
	if irq.asserted {
		t.Fatal("IRQ asserted too early")
	}

	// Short A12 drops are filtered out.
	rise(3)
	rise(3)
	if irq.asserted {
		t.Fatal("filtered A12 edges clocked the counter")
	}

	rise(20) // 0
	if !irq.asserted {
		t.Fatal("IRQ not asserted when counter reached 0")
	}
	if !cart.IRQ() {
		t.Errorf("IRQ() = false, want true")
	}

	// $E000 disables and acknowledges.
	cart.WritePRG(0xE000, 0, 0)
	if irq.asserted || cart.IRQ() {
		t.Errorf("IRQ still asserted after acknowledge")
	}

	rise(20)
	rise(20)
	rise(20)
	if irq.count != 1 {
		t.Errorf("IRQ raised %d times, want 1 (disabled)", irq.count)
	}
}

func TestBatteryRAM(t *testing.T) {
	cart := testCart(t, 1, 2, 1)

	buf := make([]byte, 0x2000)
	buf[0x10] = 0xAB
	if err := cart.LoadBatteryRAM(buf); err != nil {
		t.Fatal(err)
	}
	if val, _ := cart.ReadPRG(0x6010); val != 0xAB {
		t.Errorf("ReadPRG($6010) = %02x, want ab", val)
	}
	if got := cart.BatteryRAM(); got[0x10] != 0xAB {
		t.Errorf("BatteryRAM()[0x10] = %02x, want ab", got[0x10])
	}
	if err := cart.LoadBatteryRAM(buf[:10]); err == nil {
		t.Errorf("LoadBatteryRAM with wrong size should fail")
	}

	nobat, err := New(ines.New(0, ines.Horizontal, false, make([]byte, 0x4000), nil))
	if err != nil {
		t.Fatal(err)
	}
	if nobat.BatteryRAM() != nil {
		t.Errorf("BatteryRAM() should be nil without battery")
	}
}

func TestState(t *testing.T) {
	cart := testCart(t, 4, 8, 8)
	cart.WritePRG(0x8000, 6, 0)
	cart.WritePRG(0x8001, 3, 0)
	cart.WritePRG(0x6000, 0x77, 0)
	cart.WritePRG(0xA000, 1, 0)
	state := cart.State()
	wantPRG := prgBanks(cart)

	cart.WritePRG(0x8001, 9, 0)
	cart.WritePRG(0x6000, 0x00, 0)
	cart.WritePRG(0xA000, 0, 0)

	if err := cart.ValidateState(state); err != nil {
		t.Fatal(err)
	}
	cart.SetState(state)

	if diff := cmp.Diff(wantPRG, prgBanks(cart)); diff != "" {
		t.Errorf("PRG banks mismatch (-want +got):\n%s", diff)
	}
	if val, _ := cart.ReadPRG(0x6000); val != 0x77 {
		t.Errorf("ReadPRG($6000) = %02x, want 77", val)
	}
	if got := cart.Mirroring(); got != hwdefs.HorizontalMirroring {
		t.Errorf("Mirroring() = %s, want %s", got, hwdefs.HorizontalMirroring)
	}

	other := testCart(t, 1, 8, 8)
	if err := other.ValidateState(state); err == nil {
		t.Errorf("ValidateState should reject a state from another mapper")
	}
}
