package apu

import (
	"nescore/emu/log"
	"nescore/hw/snapshot"
)

// triangle produces a 4-bit triangle wave. Its timer clocks a 32-step
// sequencer, gated by both the length counter and the linear counter.
type triangle struct {
	apu        apu
	lenCounter lengthCounter
	timer      timer
	linear     linearCounter

	step uint8
}

// linearCounter is the triangle specific, finer grained, length counter
// clocked on quarter frames.
type linearCounter struct {
	counter uint8
	load    uint8
	reload  bool
	control bool // also halts the length counter
}

func (lc *linearCounter) tick() {
	switch {
	case lc.reload:
		lc.counter = lc.load
	case lc.counter > 0:
		lc.counter--
	}
	if !lc.control {
		lc.reload = false
	}
}

func newTriangle(apu apu, mixer mixer) triangle {
	return triangle{
		apu:        apu,
		lenCounter: lengthCounter{channel: Triangle, apu: apu},
		timer:      timer{channel: Triangle, mixer: mixer},
	}
}

// triangleLevel gives the output level at a sequencer step: 15 down to 0,
// then 0 up to 15.
func triangleLevel(step uint8) int8 {
	if step < 16 {
		return int8(15 - step)
	}
	return int8(step - 16)
}

// write handles writes to $4008, $400A and $400B.
func (t *triangle) write(addr uint16, val uint8) {
	t.apu.Run()

	switch addr {
	case 0x4008:
		t.linear.control = val&0x80 != 0
		t.linear.load = val & 0x7F
		t.lenCounter.init(t.linear.control)
	case 0x400A:
		t.timer.period = t.timer.period&0x0700 | uint16(val)
	case 0x400B:
		t.lenCounter.load(val >> 3)
		t.timer.period = t.timer.period&0x00FF | uint16(val&0x07)<<8
		t.linear.reload = true
	}

	log.ModSound.DebugZ("triangle write").
		Hex16("addr", addr).
		Hex8("val", val).
		Hex16("period", t.timer.period).
		Uint8("linear", t.linear.load).
		End()
}

func (t *triangle) run(targetCycle uint32) {
	for t.timer.run(targetCycle) {
		if !t.lenCounter.status() || t.linear.counter == 0 {
			continue
		}
		t.step = (t.step + 1) & 0x1F

		// Ultrasonic periods are not output, the sequencer still runs.
		if t.timer.period >= 2 {
			t.timer.addOutput(triangleLevel(t.step))
		}
	}
}

func (t *triangle) tickLinearCounter()      { t.linear.tick() }
func (t *triangle) tickLengthCounter()      { t.lenCounter.tick() }
func (t *triangle) reloadLengthCounter()    { t.lenCounter.reload() }
func (t *triangle) setEnabled(enabled bool) { t.lenCounter.setEnabled(enabled) }
func (t *triangle) status() bool            { return t.lenCounter.status() }
func (t *triangle) output() uint8           { return uint8(t.timer.lastOutput) }
func (t *triangle) endFrame()               { t.timer.endFrame() }

func (t *triangle) reset(soft bool) {
	t.timer.reset(soft)
	t.lenCounter.reset(soft)
	t.linear = linearCounter{}
	t.step = 0
}

func (t *triangle) saveState(state *snapshot.APUTriangle) {
	t.lenCounter.saveState(&state.LengthCounter)
	t.timer.saveState(&state.Timer)
	state.LinearCounter = t.linear.counter
	state.LinearCounterReload = t.linear.load
	state.LinearReload = t.linear.reload
	state.LinearCtrl = t.linear.control
	state.Pos = t.step
}

func (t *triangle) setState(state *snapshot.APUTriangle) {
	t.lenCounter.setState(&state.LengthCounter)
	t.timer.setState(&state.Timer)
	t.linear = linearCounter{
		counter: state.LinearCounter,
		load:    state.LinearCounterReload,
		reload:  state.LinearReload,
		control: state.LinearCtrl,
	}
	t.step = state.Pos
}
