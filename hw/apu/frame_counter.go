package apu

import (
	"nescore/emu/log"
	"nescore/hw/hwdefs"
	"nescore/hw/snapshot"
)

var stepCycles = [2][6]int32{
	{7457, 14913, 22371, 29828, 29829, 29830},
	{7457, 14913, 22371, 29829, 37281, 37282},
}

var frameType = [2][6]FrameType{
	{QuarterFrame, HalfFrame, QuarterFrame, NoFrame, HalfFrame, NoFrame},
	{QuarterFrame, HalfFrame, QuarterFrame, NoFrame, HalfFrame, NoFrame},
}

// frameCounter is the APU frame sequencer, it generates the quarter and half
// frame clocks and, in 4-step mode, the frame interrupt.
type frameCounter struct {
	apu *APU
	cpu cpu

	prevCycle         int32
	curStep           uint32
	stepMode          uint32 // 0: 4-step mode, 1: 5-step mode
	inhibitIRQ        bool
	blockTick         uint8
	newval            int16
	writeDelayCounter int8
}

func (fc *frameCounter) init(apu *APU, cpu cpu) {
	fc.apu = apu
	fc.cpu = cpu
}

func (fc *frameCounter) reset(soft bool) {
	fc.prevCycle = 0

	// After reset, the mode in $4017 is unchanged, so keep whatever value
	// stepMode has for soft resets.
	if !soft {
		fc.stepMode = 0
	}

	fc.curStep = 0

	// After reset or power-up, APU acts as if $4017 were written with $00
	// from 9 to 12 clocks before first instruction begins.
	fc.newval = 0
	if fc.stepMode != 0 {
		fc.newval = 0x80
	}
	fc.writeDelayCounter = 3
	fc.inhibitIRQ = false
	fc.blockTick = 0
}

// $4017
func (fc *frameCounter) write(val uint8) {
	log.ModSound.DebugZ("write frame counter").Uint8("val", val).End()
	fc.apu.Run()
	fc.newval = int16(val)

	if fc.cpu.CurrentCycle()&0x01 != 0 {
		// If the write occurs between APU cycles, the effects occur 4 CPU
		// cycles after the write cycle.
		fc.writeDelayCounter = 4
	} else {
		// If the write occurs during an APU cycle, the effects occur 3 CPU
		// cycles after the $4017 write cycle
		fc.writeDelayCounter = 3
	}

	fc.inhibitIRQ = (val & 0x40) == 0x40
	if fc.inhibitIRQ {
		fc.cpu.ClearIRQSource(hwdefs.FrameCounter)
	}
}

// run runs the frame counter for at most cyclesToRun cycles, stopping at the
// next step. cyclesToRun is decremented and the number of cycles actually run
// is returned.
func (fc *frameCounter) run(cyclesToRun *int32) uint32 {
	var cyclesRan int32

	if fc.prevCycle+*cyclesToRun >= stepCycles[fc.stepMode][fc.curStep] {
		if !fc.inhibitIRQ && fc.stepMode == 0 && fc.curStep >= 3 {
			// Set irq on the last 3 cycles for 4-step mode
			fc.cpu.SetIRQSource(hwdefs.FrameCounter)
		}

		ftyp := frameType[fc.stepMode][fc.curStep]
		if ftyp != NoFrame && fc.blockTick == 0 {
			fc.apu.frameCounterTick(ftyp)

			// Do not allow writes to 4017 to clock the frame counter for the
			// next cycle (i.e this odd cycle + the following even cycle)
			fc.blockTick = 2
		}

		if stepCycles[fc.stepMode][fc.curStep] < fc.prevCycle {
			cyclesRan = 0
		} else {
			cyclesRan = stepCycles[fc.stepMode][fc.curStep] - fc.prevCycle
		}

		*cyclesToRun -= cyclesRan

		fc.curStep++
		if fc.curStep == 6 {
			fc.curStep = 0
			fc.prevCycle = 0
		} else {
			fc.prevCycle += cyclesRan
		}
	} else {
		cyclesRan = *cyclesToRun
		*cyclesToRun = 0
		fc.prevCycle += cyclesRan
	}

	if fc.newval >= 0 {
		fc.writeDelayCounter--
		if fc.writeDelayCounter == 0 {
			// Apply new value after the appropriate number of cycles has elapsed
			if (fc.newval & 0x80) == 0x80 {
				fc.stepMode = 1
			} else {
				fc.stepMode = 0
			}

			fc.writeDelayCounter = -1
			fc.curStep = 0
			fc.prevCycle = 0
			fc.newval = -1

			if fc.stepMode != 0 && fc.blockTick == 0 {
				// Writing to $4017 with bit 7 set will immediately generate
				// a clock for both the quarter frame and the half frame
				// units, regardless of what the sequencer is doing.
				fc.apu.frameCounterTick(HalfFrame)
				fc.blockTick = 2
			}
		}
	}

	if fc.blockTick > 0 {
		fc.blockTick--
	}

	return uint32(cyclesRan)
}

// needToRun reports whether the frame counter has something to do within the
// next cyclesToRun cycles: a pending $4017 write, a blocked tick or the end
// of the current step.
func (fc *frameCounter) needToRun(cyclesToRun uint32) bool {
	return fc.newval >= 0 ||
		fc.blockTick > 0 ||
		(fc.prevCycle+int32(cyclesToRun) >= stepCycles[fc.stepMode][fc.curStep]-1)
}

func (fc *frameCounter) saveState(state *snapshot.APUFrameCounter) {
	state.PrevCycle = fc.prevCycle
	state.CurStep = fc.curStep
	state.StepMode = fc.stepMode
	state.InhibitIRQ = fc.inhibitIRQ
	state.BlockTick = fc.blockTick
	state.NewValue = fc.newval
	state.WriteDelayCounter = fc.writeDelayCounter
}

func (fc *frameCounter) setState(state *snapshot.APUFrameCounter) {
	fc.prevCycle = state.PrevCycle
	fc.curStep = state.CurStep
	fc.stepMode = state.StepMode
	fc.inhibitIRQ = state.InhibitIRQ
	fc.blockTick = state.BlockTick
	fc.newval = state.NewValue
	fc.writeDelayCounter = state.WriteDelayCounter
}
