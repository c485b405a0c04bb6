package apu

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"nescore/hw/hwdefs"
)

// fakeCPU records the interactions of the APU with the CPU.
type fakeCPU struct {
	irq   hwdefs.IRQSource
	cycle int64

	dmcStarts int
	dmcStops  int
}

func (c *fakeCPU) SetIRQSource(src hwdefs.IRQSource)      { c.irq |= src }
func (c *fakeCPU) ClearIRQSource(src hwdefs.IRQSource)    { c.irq &^= src }
func (c *fakeCPU) HasIRQSource(src hwdefs.IRQSource) bool { return c.irq&src != 0 }
func (c *fakeCPU) CurrentCycle() int64                    { return c.cycle }
func (c *fakeCPU) StartDMCTransfer()                      { c.dmcStarts++ }
func (c *fakeCPU) StopDMCTransfer()                       { c.dmcStops++ }

func newTestAPU(t *testing.T) (*APU, *fakeCPU) {
	t.Helper()

	cpu := &fakeCPU{}
	a := New(cpu, NewMixer(DefaultSampleRate))
	a.Reset(false)
	return a, cpu
}

func tick(a *APU, cpu *fakeCPU, n int) {
	for range n {
		cpu.cycle++
		a.Tick()
	}
}

// One NTSC video frame, in CPU cycles.
const frameCycles = 29781

func TestLengthCounter(t *testing.T) {
	a, cpu := newTestAPU(t)

	// Loading a length counter of a disabled channel has no effect.
	a.Write8(0x4003, 0x18)
	tick(a, cpu, 10)
	if a.ReadSTATUS()&0x01 != 0 {
		t.Fatalf("square 1 length counter loaded while channel disabled")
	}

	a.Write8(0x4015, 0x01)
	a.Write8(0x4000, 0x00) // halt flag cleared
	a.Write8(0x4003, 0x18) // length index 3: 2
	tick(a, cpu, 10)
	if a.ReadSTATUS()&0x01 == 0 {
		t.Fatalf("square 1 length counter not loaded")
	}
	if got := a.Square1.envelope.lenCounter.counter; got != 2 {
		t.Fatalf("length counter = %d, want 2", got)
	}

	// Length counters are clocked twice per frame sequence.
	tick(a, cpu, 15000)
	if got := a.Square1.envelope.lenCounter.counter; got != 1 {
		t.Errorf("length counter = %d after first half frame, want 1", got)
	}
	tick(a, cpu, 15000)
	if a.ReadSTATUS()&0x01 != 0 {
		t.Errorf("square 1 still active after 2 half frames")
	}

	// Halted counters aren't clocked.
	a.Write8(0x4000, 0x20)
	a.Write8(0x4003, 0x18)
	tick(a, cpu, 2*frameCycles)
	if got := a.Square1.envelope.lenCounter.counter; got != 2 {
		t.Errorf("halted length counter = %d, want 2", got)
	}

	// Disabling the channel clears the counter.
	a.Write8(0x4015, 0x00)
	if a.ReadSTATUS()&0x01 != 0 {
		t.Errorf("square 1 active after being disabled")
	}
}

func TestFrameIRQ(t *testing.T) {
	a, cpu := newTestAPU(t)

	tick(a, cpu, 29000)
	if cpu.HasIRQSource(hwdefs.FrameCounter) {
		t.Fatalf("frame IRQ raised too early")
	}

	tick(a, cpu, 1000)
	if !cpu.HasIRQSource(hwdefs.FrameCounter) {
		t.Fatalf("frame IRQ not raised in 4-step mode")
	}
	if a.PeekSTATUS()&0x40 == 0 {
		t.Errorf("status bit 6 not set with pending frame IRQ")
	}
	if cpu.irq != hwdefs.FrameCounter {
		t.Errorf("irq sources = %v, want only FrameCounter", cpu.irq)
	}

	// Reading $4015 acknowledges the interrupt.
	if a.ReadSTATUS()&0x40 == 0 {
		t.Errorf("status bit 6 not set")
	}
	if cpu.HasIRQSource(hwdefs.FrameCounter) {
		t.Errorf("frame IRQ not cleared by $4015 read")
	}

	// With the inhibit flag, no interrupt.
	a.Write8(0x4017, 0x40)
	tick(a, cpu, 2*frameCycles)
	if cpu.HasIRQSource(hwdefs.FrameCounter) {
		t.Errorf("frame IRQ raised with inhibit flag set")
	}
}

func TestFrameCounter5Step(t *testing.T) {
	a, cpu := newTestAPU(t)

	a.Write8(0x4015, 0x01)
	a.Write8(0x4000, 0x00)
	a.Write8(0x4003, 0x18) // length: 2
	tick(a, cpu, 10)

	// Switching to 5-step mode immediately clocks the length counters.
	a.Write8(0x4017, 0x80)
	tick(a, cpu, 6)
	if got := a.Square1.envelope.lenCounter.counter; got != 1 {
		t.Errorf("length counter = %d, want 1 after $4017 write", got)
	}

	// No IRQ in 5-step mode.
	tick(a, cpu, 3*frameCycles)
	if cpu.HasIRQSource(hwdefs.FrameCounter) {
		t.Errorf("frame IRQ raised in 5-step mode")
	}
}

func TestDMCStart(t *testing.T) {
	a, cpu := newTestAPU(t)

	a.Write8(0x4010, 0x0F)
	a.Write8(0x4012, 0x00) // $C000
	a.Write8(0x4013, 0x01) // 17 bytes
	a.Write8(0x4015, 0x10)
	tick(a, cpu, 4)

	if cpu.dmcStarts == 0 {
		t.Fatalf("enabling DMC didn't start a DMA transfer")
	}
	if got := a.DMC.CurrentAddr(); got != 0xC000 {
		t.Errorf("DMC address = $%04X, want $C000", got)
	}
	if a.ReadSTATUS()&0x10 == 0 {
		t.Errorf("DMC not active")
	}

	a.DMC.SetReadBuffer(0x55)
	if got := a.DMC.CurrentAddr(); got != 0xC001 {
		t.Errorf("DMC address = $%04X after a fetch, want $C001", got)
	}

	a.Write8(0x4015, 0x00)
	tick(a, cpu, 4)
	if a.ReadSTATUS()&0x10 != 0 {
		t.Errorf("DMC still active after being disabled")
	}
}

func TestDMCDirectLoad(t *testing.T) {
	a, cpu := newTestAPU(t)

	a.Write8(0x4011, 0x20)
	tick(a, cpu, 2)
	if got := a.DAC()[DPCM]; got != 0x20 {
		t.Errorf("DMC output = %d, want %d", got, 0x20)
	}

	// Large jumps are halved to reduce popping.
	a.Write8(0x4011, 0x7F)
	tick(a, cpu, 2)
	if got := a.DAC()[DPCM]; got != 80 {
		t.Errorf("DMC output = %d, want %d", got, 80)
	}
}

func enableSquare(a *APU) {
	a.Write8(0x4015, 0x01)
	a.Write8(0x4000, 0xBF) // duty 2, halt, constant volume 15
	a.Write8(0x4002, 0xFD)
	a.Write8(0x4003, 0x08)
}

func TestMixerSamples(t *testing.T) {
	a, cpu := newTestAPU(t)
	enableSquare(a)

	tick(a, cpu, frameCycles)
	a.EndFrame()

	samples := a.Mixer().Samples()
	const want = DefaultSampleRate / 60
	if n := samples.Frames(); n < want-20 || n > want+20 {
		t.Fatalf("got %d sample frames, want about %d", n, want)
	}

	nonzero := false
	for i := 0; i < len(samples); i += 2 {
		if samples[i] != samples[i+1] {
			t.Fatalf("sample %d: left %d != right %d without panning", i/2, samples[i], samples[i+1])
		}
		if samples[i] != 0 {
			nonzero = true
		}
	}
	if !nonzero {
		t.Errorf("all samples are silent")
	}

	if got := a.Mixer().Samples(); len(got) != 0 {
		t.Errorf("Samples() returned %d samples, want 0 after being drained", len(got))
	}
}

func TestMixerMuted(t *testing.T) {
	a, cpu := newTestAPU(t)
	a.Mixer().SetMuted(true)
	enableSquare(a)

	tick(a, cpu, frameCycles)
	a.EndFrame()
	if got := a.Mixer().Samples(); len(got) != 0 {
		t.Errorf("muted mixer produced %d samples", len(got))
	}
}

func TestNewMixerClampsRate(t *testing.T) {
	tests := []struct {
		rate, want int
	}{
		{0, MinSampleRate},
		{48000, 48000},
		{1 << 20, MaxSampleRate},
	}
	for _, tt := range tests {
		if got := NewMixer(tt.rate).SampleRate(); got != tt.want {
			t.Errorf("NewMixer(%d).SampleRate() = %d, want %d", tt.rate, got, tt.want)
		}
	}
}

func TestState(t *testing.T) {
	a, cpu := newTestAPU(t)
	enableSquare(a)
	a.Write8(0x400C, 0x3F)
	a.Write8(0x400E, 0x04)
	a.Write8(0x400F, 0x08)
	a.Write8(0x4008, 0xFF)
	a.Write8(0x400A, 0x40)
	a.Write8(0x400B, 0x08)
	tick(a, cpu, 12345)
	a.EndFrame()

	saved := a.State()

	tick(a, cpu, 5000)
	a.EndFrame()

	b, _ := newTestAPU(t)
	b.SetState(saved)
	if diff := cmp.Diff(saved, b.State()); diff != "" {
		t.Errorf("state mismatch after SetState (-want +got):\n%s", diff)
	}
}

func TestPulseSweep(t *testing.T) {
	a, _ := newTestAPU(t)

	// Timer period $100, sweep enabled, negate, shift 1.
	for _, base := range []uint16{0x4000, 0x4004} {
		a.Write8(base+1, 0x89)
		a.Write8(base+2, 0x00)
		a.Write8(base+3, 0x01)
	}

	// Pulse 1 uses one's complement.
	if got := a.Square1.sweep.target; got != 0x7F {
		t.Errorf("pulse 1 sweep target = $%X, want $7F", got)
	}
	if got := a.Square2.sweep.target; got != 0x80 {
		t.Errorf("pulse 2 sweep target = $%X, want $80", got)
	}

	tests := []struct {
		name   string
		sweep  uint8
		period uint16
		muted  bool
	}{
		{"period below 8", 0x00, 0x005, true},
		{"period 8", 0x00, 0x008, false},
		{"target overflow", 0x01, 0x7F0, true},
		{"negated overflow", 0x09, 0x7F0, false},
	}
	for _, tt := range tests {
		a.Write8(0x4001, tt.sweep)
		a.Write8(0x4002, uint8(tt.period))
		a.Write8(0x4003, uint8(tt.period>>8))
		if got := a.Square1.muted(); got != tt.muted {
			t.Errorf("%s: muted = %t, want %t", tt.name, got, tt.muted)
		}
	}
}

func TestDutyPatterns(t *testing.T) {
	want := [4]string{
		"00000001",
		"00000011",
		"00001111",
		"11111100",
	}
	for duty, pattern := range dutyPatterns {
		var got []byte
		for step := range 8 {
			got = append(got, '0'+pattern>>(7-step)&1)
		}
		if string(got) != want[duty] {
			t.Errorf("duty %d = %s, want %s", duty, got, want[duty])
		}
	}
}

func TestTriangleLevel(t *testing.T) {
	var got []int8
	for step := range uint8(32) {
		got = append(got, triangleLevel(step))
	}
	want := []int8{
		15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0,
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("triangle sequence mismatch (-want +got):\n%s", diff)
	}
}
