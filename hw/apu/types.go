package apu

import "nescore/hw/hwdefs"

type Channel uint8

const (
	Square1 Channel = iota
	Square2
	Triangle
	Noise
	DPCM
)

type mixer interface {
	AddDelta(ch Channel, time uint32, delta int16)
}

type apu interface {
	SetNeedToRun()
	Run()
}

// cpu is the part of the CPU (through the bus) the APU interacts with:
// interrupt lines, cycle counter and DMC DMA.
type cpu interface {
	SetIRQSource(src hwdefs.IRQSource)
	ClearIRQSource(src hwdefs.IRQSource)
	HasIRQSource(src hwdefs.IRQSource) bool
	CurrentCycle() int64
	StartDMCTransfer()
	StopDMCTransfer()
}

type FrameType uint8

const (
	NoFrame FrameType = iota
	QuarterFrame
	HalfFrame
)
