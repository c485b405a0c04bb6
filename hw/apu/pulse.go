package apu

import (
	"nescore/emu/log"
	"nescore/hw/snapshot"
)

// pulse is one of the two square wave channels. Its 11-bit timer clocks an
// 8-step duty sequencer every other CPU cycle, the sweep unit periodically
// adjusts the timer period and the envelope sets the volume.
type pulse struct {
	apu      apu
	envelope envelope
	timer    timer
	sweep    sweep

	// Pulse 1 adds the one's complement of the sweep change, pulse 2 the
	// two's complement.
	onesComplement bool

	duty   uint8
	step   uint8
	period uint16
}

type sweep struct {
	enabled bool
	negate  bool
	shift   uint8
	period  uint8
	divider uint8
	reload  bool
	target  uint32
}

func newPulse(apu apu, mixer mixer, ch Channel) pulse {
	return pulse{
		apu:            apu,
		onesComplement: ch == Square1,
		envelope:       envelope{lenCounter: lengthCounter{channel: ch, apu: apu}},
		timer:          timer{channel: ch, mixer: mixer},
	}
}

// Duty sequences, step 0 in the most significant bit.
var dutyPatterns = [4]uint8{0b00000001, 0b00000011, 0b00001111, 0b11111100}

// write handles a write to one of the 4 registers of the channel.
func (p *pulse) write(addr uint16, val uint8) {
	p.apu.Run()

	switch addr & 0x03 {
	case 0:
		p.envelope.init(val)
		p.duty = val >> 6
	case 1:
		p.sweep.enabled = val&0x80 != 0
		p.sweep.period = (val>>4)&0x07 + 1
		p.sweep.negate = val&0x08 != 0
		p.sweep.shift = val & 0x07
		p.updateTarget()
		p.sweep.reload = true
	case 2:
		p.setPeriod(p.period&0x0700 | uint16(val))
	case 3:
		p.envelope.lenCounter.load(val >> 3)
		p.setPeriod(p.period&0x00FF | uint16(val&0x07)<<8)
		p.step = 0
		p.envelope.restart()
	}

	log.ModSound.DebugZ("pulse write").
		Hex16("addr", addr).
		Hex8("val", val).
		Uint8("duty", p.duty).
		Hex16("period", p.period).
		End()
}

func (p *pulse) setPeriod(period uint16) {
	p.period = period
	p.timer.period = period*2 + 1
	p.updateTarget()
}

func (p *pulse) updateTarget() {
	delta := p.period >> p.sweep.shift
	if !p.sweep.negate {
		p.sweep.target = uint32(p.period + delta)
		return
	}
	p.sweep.target = uint32(p.period - delta)
	if p.onesComplement {
		p.sweep.target--
	}
}

// muted reports whether the sweep unit silences the channel, which happens
// for periods below 8 or when the target period overflows 11 bits.
func (p *pulse) muted() bool {
	return p.period < 8 || (!p.sweep.negate && p.sweep.target > 0x7FF)
}

func (p *pulse) run(targetCycle uint32) {
	for p.timer.run(targetCycle) {
		p.step = (p.step - 1) & 0x07

		var out int8
		if !p.muted() && dutyPatterns[p.duty]>>(7-p.step)&1 != 0 {
			out = int8(p.envelope.volume())
		}
		p.timer.addOutput(out)
	}
}

func (p *pulse) tickSweep() {
	p.sweep.divider--
	if p.sweep.divider == 0 {
		if p.sweep.enabled && p.sweep.shift > 0 && p.period >= 8 && p.sweep.target <= 0x7FF {
			p.setPeriod(uint16(p.sweep.target))
		}
		p.sweep.divider = p.sweep.period
	}
	if p.sweep.reload {
		p.sweep.divider = p.sweep.period
		p.sweep.reload = false
	}
}

func (p *pulse) tickEnvelope()           { p.envelope.tick() }
func (p *pulse) tickLengthCounter()      { p.envelope.lenCounter.tick() }
func (p *pulse) reloadLengthCounter()    { p.envelope.lenCounter.reload() }
func (p *pulse) setEnabled(enabled bool) { p.envelope.lenCounter.setEnabled(enabled) }
func (p *pulse) status() bool            { return p.envelope.lenCounter.status() }
func (p *pulse) output() uint8           { return uint8(p.timer.lastOutput) }
func (p *pulse) endFrame()               { p.timer.endFrame() }

func (p *pulse) reset(soft bool) {
	p.envelope.reset(soft)
	p.timer.reset(soft)
	p.sweep = sweep{}
	p.duty = 0
	p.step = 0
	p.period = 0
	p.updateTarget()
}

func (p *pulse) saveState(state *snapshot.APUSquare) {
	p.timer.saveState(&state.Timer)
	p.envelope.saveState(&state.Envelope)
	state.Duty = p.duty
	state.DutyPos = p.step
	state.RealPeriod = p.period
	state.SweepEnabled = p.sweep.enabled
	state.SweepNegate = p.sweep.negate
	state.SweepShift = p.sweep.shift
	state.SweepPeriod = p.sweep.period
	state.SweepDivider = p.sweep.divider
	state.ReloadSweep = p.sweep.reload
	state.SweepTargetPeriod = p.sweep.target
}

func (p *pulse) setState(state *snapshot.APUSquare) {
	p.timer.setState(&state.Timer)
	p.envelope.setState(&state.Envelope)
	p.duty = state.Duty
	p.step = state.DutyPos
	p.period = state.RealPeriod
	p.sweep = sweep{
		enabled: state.SweepEnabled,
		negate:  state.SweepNegate,
		shift:   state.SweepShift,
		period:  state.SweepPeriod,
		divider: state.SweepDivider,
		reload:  state.ReloadSweep,
		target:  state.SweepTargetPeriod,
	}
}
