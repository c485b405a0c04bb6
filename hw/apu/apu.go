// Package apu implements the 2A03 audio processing unit: two pulse channels,
// a triangle, a noise generator, the delta modulation channel, the frame
// sequencer and a non-linear mixer producing 16-bit stereo samples.
package apu

import (
	"nescore/emu/log"
	"nescore/hw/hwdefs"
	"nescore/hw/snapshot"
)

// channel is the behavior common to the 5 sound channels.
type channel interface {
	run(targetCycle uint32)
	endFrame()
	reset(soft bool)
	setEnabled(enabled bool)
	status() bool
	output() uint8
}

// APU channels are run lazily: their output is only computed up to the
// current cycle when a register is accessed, when an interrupt may fire and
// at the end of the mixer timeline.
type APU struct {
	cpu   cpu
	mixer *Mixer

	Square1  pulse
	Square2  pulse
	Triangle triangle
	Noise    noiseChannel
	DMC      dmc

	// Indexed by Channel, which is also the $4015 bit order.
	chans [hwdefs.NumAudioChannels]channel

	frameCounter frameCounter

	prevCycle uint32 // cycle the channels have been run up to
	curCycle  uint32
	pending   bool // forces a run on next tick
}

func New(cpu cpu, mixer *Mixer) *APU {
	a := &APU{cpu: cpu, mixer: mixer}
	a.Square1 = newPulse(a, mixer, Square1)
	a.Square2 = newPulse(a, mixer, Square2)
	a.Triangle = newTriangle(a, mixer)
	a.Noise = newNoiseChannel(a, mixer)
	a.DMC = newDMC(a, cpu, mixer)
	a.chans = [...]channel{
		Square1:  &a.Square1,
		Square2:  &a.Square2,
		Triangle: &a.Triangle,
		Noise:    &a.Noise,
		DPCM:     &a.DMC,
	}
	a.frameCounter.init(a, cpu)
	return a
}

// Mixer returns the mixer the APU channels output to.
func (a *APU) Mixer() *Mixer { return a.mixer }

// Write8 handles a CPU write to one of the APU registers ($4000-$4013,
// $4015 and $4017). Other addresses are ignored.
func (a *APU) Write8(addr uint16, val uint8) {
	switch {
	case addr < 0x4000:
	case addr < 0x4004:
		a.Square1.write(addr, val)
	case addr < 0x4008:
		a.Square2.write(addr, val)
	case addr < 0x400C:
		a.Triangle.write(addr, val)
	case addr < 0x4010:
		a.Noise.write(addr, val)
	case addr < 0x4014:
		a.DMC.write(addr, val)
	case addr == 0x4015:
		a.WriteSTATUS(val)
	case addr == 0x4017:
		a.frameCounter.write(val)
	}
}

// Status returns the value of the STATUS register ($4015), bit 5 excluded
// (open bus).
func (a *APU) Status() uint8 {
	var status uint8
	for i, ch := range a.chans {
		if ch.status() {
			status |= 1 << i
		}
	}
	if a.cpu.HasIRQSource(hwdefs.FrameCounter) {
		status |= 0x40
	}
	if a.cpu.HasIRQSource(hwdefs.DMC) {
		status |= 0x80
	}
	return status
}

// PeekSTATUS returns the STATUS register without side effects.
func (a *APU) PeekSTATUS() uint8 { return a.Status() }

// ReadSTATUS reads $4015, acknowledging the frame interrupt.
func (a *APU) ReadSTATUS() uint8 {
	a.Run()
	status := a.Status()
	a.cpu.ClearIRQSource(hwdefs.FrameCounter)

	log.ModSound.DebugZ("read status").Hex8("status", status).End()
	return status
}

// WriteSTATUS writes $4015, enabling or disabling channels.
func (a *APU) WriteSTATUS(val uint8) {
	log.ModSound.DebugZ("write status").Hex8("val", val).End()
	a.Run()

	// Acknowledged before enabling the DMC, which may raise it again.
	a.cpu.ClearIRQSource(hwdefs.DMC)

	for i, ch := range a.chans {
		ch.setEnabled(val&(1<<i) != 0)
	}
}

// frameCounterTick dispatches the quarter and half frame clocks.
func (a *APU) frameCounterTick(ftyp FrameType) {
	a.Square1.tickEnvelope()
	a.Square2.tickEnvelope()
	a.Noise.tickEnvelope()
	a.Triangle.tickLinearCounter()

	if ftyp != HalfFrame {
		return
	}
	a.Square1.tickLengthCounter()
	a.Square1.tickSweep()
	a.Square2.tickLengthCounter()
	a.Square2.tickSweep()
	a.Triangle.tickLengthCounter()
	a.Noise.tickLengthCounter()
}

func (a *APU) Reset(soft bool) {
	a.prevCycle, a.curCycle = 0, 0
	a.pending = false

	for _, ch := range a.chans {
		ch.reset(soft)
	}
	a.frameCounter.reset(soft)
	a.mixer.Reset()
}

// Tick advances the APU by one CPU cycle.
func (a *APU) Tick() {
	a.curCycle++
	switch {
	case a.curCycle == cycleLength-1:
		a.EndFrame()
	case a.needToRun(a.curCycle):
		a.Run()
	}
}

// EndFrame runs all channels up to the current cycle and flushes their
// output to the mixer sample buffer.
func (a *APU) EndFrame() {
	a.DMC.processClock()
	a.Run()
	for _, ch := range a.chans {
		ch.endFrame()
	}
	a.mixer.endFrame(a.curCycle)

	a.prevCycle, a.curCycle = 0, 0
}

// Run brings the frame counter and the channels up to the current cycle.
func (a *APU) Run() {
	todo := int32(a.curCycle - a.prevCycle)

	for todo > 0 {
		a.prevCycle += a.frameCounter.run(&todo)

		// Length counter loads are applied after the frame counter had a
		// chance to clock them.
		a.Square1.reloadLengthCounter()
		a.Square2.reloadLengthCounter()
		a.Triangle.reloadLengthCounter()
		a.Noise.reloadLengthCounter()

		for _, ch := range a.chans {
			ch.run(a.prevCycle)
		}
	}
}

// SetNeedToRun forces the channels to be run on next tick.
func (a *APU) SetNeedToRun() { a.pending = true }

// needToRun reports whether something observable may happen at curCycle:
// a length counter change, DMC activity (which steals CPU cycles) or an
// interrupt.
func (a *APU) needToRun(curCycle uint32) bool {
	if a.DMC.needToRunNow() || a.pending {
		a.pending = false
		return true
	}

	ahead := curCycle - a.prevCycle
	return a.frameCounter.needToRun(ahead) || a.DMC.irqPending(ahead)
}

// State returns a snapshot of the APU, mixer included.
func (a *APU) State() *snapshot.APU {
	state := &snapshot.APU{
		PrevCycle: a.prevCycle,
		CurCycle:  a.curCycle,
		NeedToRun: a.pending,
	}
	a.Square1.saveState(&state.Square1)
	a.Square2.saveState(&state.Square2)
	a.Triangle.saveState(&state.Triangle)
	a.Noise.saveState(&state.Noise)
	a.DMC.saveState(&state.DMC)
	a.frameCounter.saveState(&state.FrameCounter)
	a.mixer.saveState(&state.Mixer)
	return state
}

func (a *APU) SetState(state *snapshot.APU) {
	a.Square1.setState(&state.Square1)
	a.Square2.setState(&state.Square2)
	a.Triangle.setState(&state.Triangle)
	a.Noise.setState(&state.Noise)
	a.DMC.setState(&state.DMC)
	a.frameCounter.setState(&state.FrameCounter)
	a.mixer.setState(&state.Mixer)
	a.prevCycle = state.PrevCycle
	a.curCycle = state.CurCycle
	a.pending = state.NeedToRun
}

// DAC returns the instant output level of each channel, indexed by Channel.
func (a *APU) DAC() [hwdefs.NumAudioChannels]uint8 {
	a.Run()
	var dac [hwdefs.NumAudioChannels]uint8
	for i, ch := range a.chans {
		dac[i] = ch.output()
	}
	return dac
}
