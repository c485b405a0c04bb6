// Package snapshot defines the plain data structures making up a serialized
// emulation state. They are filled and consumed by the hardware components
// (see the saveState/setState methods) and encoded as a whole by the
// savestate layer.
package snapshot

//go:generate go tool msgp -tests=false -marshal=false

// Version is the state format version. Any change to the types below must
// increase it: states of other versions are rejected.
const Version = 2

type NES struct {
	Frame uint64 // number of frames emulated since power-up

	CPU       CPU
	DMA       DMA
	RAM       [0x800]uint8
	VRAM      [0x1000]uint8 // nametable RAM (4 screens)
	OpenBus   uint8
	PPU       PPU
	APU       APU
	Cartridge Cartridge
	Input     Input
}

type CPU struct {
	PC uint16
	SP uint8
	P  uint8
	A  uint8
	X  uint8
	Y  uint8

	Cycles      int64
	MasterClock int64

	IRQFlag    uint8
	RunIRQ     bool
	PrevRunIRQ bool

	NMIFlag     bool
	PrevNMIFlag bool
	NeedNMI     bool
	PrevNeedNMI bool
}

type DMA struct {
	NeedHalt   bool
	Dummy      bool
	DMCRunning bool
	AbortDMC   bool
	OAMPage    uint8
	OAMRunning bool
}

type PPU struct {
	Palette [0x20]uint8
	OAM     [0x100]uint8
	OAM2    [0x20]uint8

	Sprites     [8]Sprite
	SpriteCount uint8
	Sprite0Line bool

	OpenBus      uint8
	OpenBusDecay [8]uint64

	BusAddr    uint16
	OAMAddr    uint8
	VRAMAddr   uint16
	VRAMTemp   uint16
	FineX      uint8
	WriteLatch bool
	ReadBuf    uint8

	Bg PPUBgRegs

	PPUCTRL   uint8
	PPUMASK   uint8
	PPUSTATUS uint8

	MasterClock int64
	Cycle       int
	Scanline    int
	FrameCount  uint64

	OddFrame      bool
	PreventVBlank bool
}

type Sprite struct {
	X     uint8
	Attr  uint8
	DataL uint8
	DataH uint8
}

type PPUBgRegs struct {
	NT   uint8
	AT   uint8
	BgLo uint8
	BgHi uint8

	// shift registers.
	BgShiftLo uint16
	BgShiftHi uint16
	ATShiftLo uint16
	ATShiftHi uint16
}

type APU struct {
	Square1      APUSquare
	Square2      APUSquare
	Triangle     APUTriangle
	Noise        APUNoise
	DMC          APUDMC
	FrameCounter APUFrameCounter
	Mixer        APUMixer

	PrevCycle uint32
	CurCycle  uint32
	NeedToRun bool
}

type APUTimer struct {
	PreviousCycle uint32
	Timer         uint16
	Period        uint16
	LastOutput    int8
}

type APULengthCounter struct {
	NewHalt       bool
	Enabled       bool
	Halt          bool
	Counter       uint8
	ReloadValue   uint8
	PreviousValue uint8
}

type APUEnvelope struct {
	LengthCounter  APULengthCounter
	ConstantVolume bool
	Volume         uint8
	Start          bool
	Divider        int8
	Counter        uint8
}

type APUSquare struct {
	Timer    APUTimer
	Envelope APUEnvelope

	Duty    uint8
	DutyPos uint8

	SweepEnabled      bool
	SweepPeriod       uint8
	SweepNegate       bool
	SweepShift        uint8
	ReloadSweep       bool
	SweepDivider      uint8
	SweepTargetPeriod uint32
	RealPeriod        uint16
}

type APUTriangle struct {
	Timer         APUTimer
	LengthCounter APULengthCounter

	LinearCounter       uint8
	LinearCounterReload uint8
	LinearReload        bool
	LinearCtrl          bool
	Pos                 uint8
}

type APUNoise struct {
	Timer    APUTimer
	Envelope APUEnvelope
	ShiftReg uint16
	Mode     bool
}

type APUDMC struct {
	Timer APUTimer

	SampleAddr  uint16
	SampleLen   uint16
	CurrentAddr uint16
	Remaining   uint16
	OutputLevel uint8
	ReadBuf     uint8
	BitsLeft    uint8

	StartDelay   uint8
	DisableDelay uint8
	IRQEnabled   bool
	Loop         bool
	BufEmpty     bool
	ShiftReg     uint8
	Silence      bool
	NeedToRun    bool
}

type APUFrameCounter struct {
	PrevCycle         int32
	CurStep           uint32
	StepMode          uint32
	InhibitIRQ        bool
	BlockTick         uint8
	NewValue          int16
	WriteDelayCounter int8
}

type APUMixer struct {
	LastLeft  int16
	LastRight int16
	Levels    [5]int16

	Left  Resampler
	Right Resampler
}

// Resampler holds the band-limited synthesis buffer state of one stereo side.
type Resampler struct {
	Offset     uint64
	Avail      int32
	Integrator int64
	Samples    []int32
}

type Cartridge struct {
	Kind   uint16
	PRGRAM []uint8
	CHRRAM []uint8 // nil for CHR ROM cartridges

	Latch uint8 // discrete logic boards
	MMC1  MMC1
	MMC3  MMC3
}

type MMC1 struct {
	Shift     uint8
	Counter   uint8
	Control   uint8
	CHR0      uint8
	CHR1      uint8
	PRG       uint8
	LastWrite int64
}

type MMC3 struct {
	BankSelect uint8
	Banks      [8]uint8
	Mirroring  uint8
	RAMProtect uint8

	IRQLatch   uint8
	IRQCounter uint8
	IRQReload  bool
	IRQEnabled bool
	IRQPending bool

	A12High  bool
	A12LowAt int64
}

type Input struct {
	Strobe bool
	Pads   [2]Controller
}

type Controller struct {
	Buttons uint8
	Shift   uint8
}
