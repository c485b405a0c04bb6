package apu

import (
	"nescore/emu/log"
	"nescore/hw/hwdefs"
	"nescore/hw/snapshot"
)

// dmc is the delta modulation channel. It plays 1-bit delta encoded samples
// fetched from CPU memory by DMA, or raw 7-bit levels written to $4011.
type dmc struct {
	apu   apu
	cpu   cpu
	timer timer

	irqEnabled bool
	loop       bool
	level      uint8

	// Sample as configured by $4012 and $4013.
	start  uint16
	length uint16

	// Memory reader.
	addr      uint16
	remaining uint16
	buffer    uint8
	empty     bool

	// Output unit.
	shifter uint8
	bits    uint8
	silent  bool

	needToRun    bool
	startDelay   uint8 // cycles before DMA is requested after enabling
	disableDelay uint8 // cycles before disabling takes effect
}

func newDMC(apu apu, cpu cpu, mixer mixer) dmc {
	return dmc{
		apu:    apu,
		cpu:    cpu,
		silent: true,
		timer:  timer{channel: DPCM, mixer: mixer},
	}
}

// Timer periods in CPU cycles, indexed by the $4010 rate.
var dmcRates = [16]uint16{428, 380, 340, 320, 286, 254, 226, 214, 190, 160, 142, 128, 106, 84, 72, 54}

// write handles writes to $4010-$4013.
func (d *dmc) write(addr uint16, val uint8) {
	d.apu.Run()

	switch addr {
	case 0x4010:
		d.irqEnabled = val&0x80 != 0
		d.loop = val&0x40 != 0
		d.timer.period = dmcRates[val&0x0F] - 1
		if !d.irqEnabled {
			d.cpu.ClearIRQSource(hwdefs.DMC)
		}
	case 0x4011:
		d.directLoad(val & 0x7F)
	case 0x4012:
		d.start = 0xC000 | uint16(val)<<6
	case 0x4013:
		d.length = uint16(val)<<4 | 1
	}

	log.ModSound.DebugZ("dmc write").
		Hex16("addr", addr).
		Hex8("val", val).
		Bool("irq", d.irqEnabled).
		Bool("loop", d.loop).
		Hex16("start", d.start).
		Hex16("len", d.length).
		End()
}

// directLoad sets the output level. The new level is output right away and
// jumps larger than 50 are halved, to limit popping.
func (d *dmc) directLoad(level uint8) {
	if diff := int(level) - int(d.level); diff > 50 || diff < -50 {
		level = uint8(int(level) - diff/2)
	}
	d.level = level
	d.timer.addOutput(int8(level))
}

// restart points the reader at the beginning of the sample.
func (d *dmc) restart() {
	d.addr = d.start
	d.remaining = d.length
	d.needToRun = d.needToRun || d.remaining > 0
}

func (d *dmc) requestDMA() {
	if d.empty && d.remaining > 0 {
		d.cpu.StartDMCTransfer()
	}
}

// CurrentAddr returns the address of the next sample byte.
func (d *dmc) CurrentAddr() uint16 { return d.addr }

// SetReadBuffer completes a DMA transfer, val being the fetched sample byte.
func (d *dmc) SetReadBuffer(val uint8) {
	log.ModSound.DebugZ("dmc fetch").Hex16("addr", d.addr).Hex8("val", val).End()

	if d.remaining > 0 {
		d.buffer = val
		d.empty = false
		d.addr++
		if d.addr == 0 {
			d.addr = 0x8000
		}

		d.remaining--
		if d.remaining == 0 {
			switch {
			case d.loop:
				d.restart()
			case d.irqEnabled:
				d.cpu.SetIRQSource(hwdefs.DMC)
			}
		}
	}

	// A 1-byte sample ending on the APU cycle before the output unit reloads
	// restarts, and the DMA it triggers is aborted a cycle later.
	if d.length == 1 && !d.loop && d.bits == 1 && d.timer.timer < 2 {
		d.shifter = d.buffer
		d.empty = false
		d.restart()
		d.disableDelay = 3
	}
}

func (d *dmc) run(targetCycle uint32) {
	for d.timer.run(targetCycle) {
		if !d.silent {
			switch {
			case d.shifter&1 != 0 && d.level <= 125:
				d.level += 2
			case d.shifter&1 == 0 && d.level >= 2:
				d.level -= 2
			}
			d.shifter >>= 1
		}

		d.bits--
		if d.bits == 0 {
			d.bits = 8
			d.silent = d.empty
			if !d.empty {
				d.shifter = d.buffer
				d.empty = true
				d.needToRun = true
				d.requestDMA()
			}
		}

		d.timer.addOutput(int8(d.level))
	}
}

// irqPending reports whether the sample ends, raising an interrupt, within
// the next ncycles.
func (d *dmc) irqPending(ncycles uint32) bool {
	if !d.irqEnabled || d.remaining == 0 {
		return false
	}
	left := uint32(d.bits) + uint32(d.remaining-1)*8
	return ncycles >= left*uint32(d.timer.period)
}

func (d *dmc) status() bool { return d.remaining > 0 }

// delay returns the number of cycles before a DMC enable or disable takes
// effect, depending on the CPU cycle parity.
func (d *dmc) delay() uint8 {
	if d.cpu.CurrentCycle()&1 == 0 {
		return 2
	}
	return 3
}

func (d *dmc) setEnabled(enabled bool) {
	switch {
	case !enabled:
		// A DMA starting in the meantime is cancelled, still halting the CPU
		// for a cycle.
		if d.disableDelay == 0 {
			d.disableDelay = d.delay()
		}
		d.needToRun = true
	case d.remaining == 0:
		d.restart()
		d.startDelay = d.delay()
		d.needToRun = true
	}
}

func (d *dmc) processClock() {
	if d.disableDelay > 0 {
		d.disableDelay--
		if d.disableDelay == 0 {
			d.remaining = 0
			d.cpu.StopDMCTransfer()
		}
	}
	if d.startDelay > 0 {
		d.startDelay--
		if d.startDelay == 0 {
			d.requestDMA()
		}
	}
	d.needToRun = d.disableDelay > 0 || d.startDelay > 0 || d.remaining > 0
}

func (d *dmc) needToRunNow() bool {
	if d.needToRun {
		d.processClock()
	}
	return d.needToRun
}

func (d *dmc) output() uint8 { return uint8(d.timer.lastOutput) }
func (d *dmc) endFrame()     { d.timer.endFrame() }

func (d *dmc) reset(soft bool) {
	d.timer.reset(soft)

	start, length := d.start, d.length
	if !soft {
		start, length = 0xC000, 1
	}
	*d = dmc{
		apu:    d.apu,
		cpu:    d.cpu,
		timer:  d.timer,
		start:  start,
		length: length,
		empty:  true,
		bits:   8,
		silent: true,
	}

	// The timer doesn't expire on the first cycle.
	d.timer.period = dmcRates[0] - 1
	d.timer.timer = d.timer.period
}

func (d *dmc) saveState(state *snapshot.APUDMC) {
	d.timer.saveState(&state.Timer)
	state.SampleAddr = d.start
	state.SampleLen = d.length
	state.CurrentAddr = d.addr
	state.Remaining = d.remaining
	state.OutputLevel = d.level
	state.ReadBuf = d.buffer
	state.BitsLeft = d.bits
	state.StartDelay = d.startDelay
	state.DisableDelay = d.disableDelay
	state.IRQEnabled = d.irqEnabled
	state.Loop = d.loop
	state.BufEmpty = d.empty
	state.ShiftReg = d.shifter
	state.Silence = d.silent
	state.NeedToRun = d.needToRun
}

func (d *dmc) setState(state *snapshot.APUDMC) {
	d.timer.setState(&state.Timer)
	d.start = state.SampleAddr
	d.length = state.SampleLen
	d.addr = state.CurrentAddr
	d.remaining = state.Remaining
	d.level = state.OutputLevel
	d.buffer = state.ReadBuf
	d.bits = state.BitsLeft
	d.startDelay = state.StartDelay
	d.disableDelay = state.DisableDelay
	d.irqEnabled = state.IRQEnabled
	d.loop = state.Loop
	d.empty = state.BufEmpty
	d.shifter = state.ShiftReg
	d.silent = state.Silence
	d.needToRun = state.NeedToRun
}
