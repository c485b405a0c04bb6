package apu

import (
	"nescore/emu/log"
	"nescore/hw/snapshot"
)

// noiseChannel generates pseudo-random 1-bit noise at 16 different frequencies.
//
//	      Timer --> Shift Register   Length Counter
//	                    |                |
//	                    v                v
//	Envelope -------> Gate ----------> Gate --> (to mixer)
type noiseChannel struct {
	apu      apu
	envelope envelope
	timer    timer

	shiftReg uint16
	mode     bool
}

func newNoiseChannel(apu apu, mixer mixer) noiseChannel {
	return noiseChannel{
		apu: apu,
		envelope: envelope{
			lenCounter: lengthCounter{
				channel: Noise,
				apu:     apu,
			},
		},
		timer: timer{
			channel: Noise,
			mixer:   mixer,
		},
	}
}

var noisePeriodLUT = [16]uint16{4, 8, 16, 32, 64, 96, 128, 160, 202, 254, 380, 508, 762, 1016, 2034, 4068}

// write handles writes to $400C, $400E and $400F.
func (nc *noiseChannel) write(addr uint16, val uint8) {
	nc.apu.Run()

	switch addr {
	case 0x400C:
		nc.envelope.init(val)
	case 0x400E:
		nc.timer.period = noisePeriodLUT[val&0x0F] - 1
		nc.mode = val&0x80 != 0
	case 0x400F:
		nc.envelope.lenCounter.load(val >> 3)
		nc.envelope.restart()
	}

	log.ModSound.DebugZ("noise write").
		Hex16("addr", addr).
		Hex8("val", val).
		Hex16("period", nc.timer.period).
		Bool("mode", nc.mode).
		End()
}

func (nc *noiseChannel) run(targetCycle uint32) {
	for nc.timer.run(targetCycle) {
		// Feedback is calculated as the exclusive-OR of bit 0 and one other
		// bit: bit 6 if Mode flag is set, otherwise bit 1.
		modebit := 1
		if nc.mode {
			modebit = 6
		}

		feedback := (nc.shiftReg & 0x01) ^ ((nc.shiftReg >> modebit) & 0x01)
		nc.shiftReg >>= 1
		nc.shiftReg |= feedback << 14

		if nc.isMuted() {
			nc.timer.addOutput(0)
		} else {
			nc.timer.addOutput(int8(nc.envelope.volume()))
		}
	}
}

// The mixer receives the current envelope volume except when bit 0 of the
// shift register is set, or the length counter is zero.
func (nc *noiseChannel) isMuted() bool {
	return nc.shiftReg&0x01 == 0x01
}

func (nc *noiseChannel) tickEnvelope()        { nc.envelope.tick() }
func (nc *noiseChannel) tickLengthCounter()   { nc.envelope.lenCounter.tick() }
func (nc *noiseChannel) reloadLengthCounter() { nc.envelope.lenCounter.reload() }
func (nc *noiseChannel) endFrame()            { nc.timer.endFrame() }

func (nc *noiseChannel) setEnabled(enabled bool) {
	nc.envelope.lenCounter.setEnabled(enabled)
}

func (nc *noiseChannel) status() bool {
	return nc.envelope.lenCounter.status()
}

func (nc *noiseChannel) output() uint8 {
	return uint8(nc.timer.lastOutput)
}

func (nc *noiseChannel) reset(soft bool) {
	nc.envelope.reset(soft)
	nc.timer.reset(soft)

	nc.timer.period = noisePeriodLUT[0] - 1
	nc.shiftReg = 1
	nc.mode = false
}

func (nc *noiseChannel) saveState(state *snapshot.APUNoise) {
	nc.envelope.saveState(&state.Envelope)
	nc.timer.saveState(&state.Timer)
	state.ShiftReg = nc.shiftReg
	state.Mode = nc.mode
}

func (nc *noiseChannel) setState(state *snapshot.APUNoise) {
	nc.envelope.setState(&state.Envelope)
	nc.timer.setState(&state.Timer)
	nc.shiftReg = state.ShiftReg
	nc.mode = state.Mode
}
