package hw

//go:generate go run ./cpugen -out opcodes.go

import (
	"fmt"
	"io"

	"nescore/emu/log"
	"nescore/hw/hwdefs"
)

// Interrupt vectors.
const (
	NMIVector   uint16 = 0xFFFA
	ResetVector uint16 = 0xFFFC
	IRQVector   uint16 = 0xFFFE // shared with BRK
)

// cpuBus is the CPU view of the rest of the system. All memory accesses and
// clocking of the other chips go through it.
type cpuBus interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, val uint8)
	Peek8(addr uint16) uint8

	// runPPU runs the PPU up to the given master clock.
	runPPU(masterClock int64)
	// tickAPU runs the APU for one CPU cycle.
	tickAPU()

	// DMC sample fetching, performed by the DMA unit.
	dmcAddress() uint16
	dmcSetReadBuffer(val uint8)
}

type CPUConfig struct {
	// Strict makes undocumented opcodes fault instead of executing them.
	Strict bool
}

// ExecutionFault is returned when the CPU executes an opcode it can't
// continue from. The CPU stays halted until reset or state load.
type ExecutionFault struct {
	PC     uint16 // address of the faulty opcode
	Opcode uint8
	Reason string
}

func (e *ExecutionFault) Error() string {
	return fmt.Sprintf("cpu fault: %s $%02X (%s) at $%04X", e.Reason, e.Opcode, opcodeNames[e.Opcode], e.PC)
}

type CPU struct {
	bus cpuBus
	DMA DMA

	cfg CPUConfig

	tracer *tracer // nil unless tracing

	Cycles      int64
	masterClock int64

	A, X, Y uint8
	SP      uint8
	PC      uint16
	P       P

	// NMI line level, and its value on the previous cycle, for edge
	// detection. needNmi is set on a rising edge, until the NMI is serviced.
	nmiLine, prevNmiLine bool
	needNmi, prevNeedNmi bool

	// IRQ line sources, and whether an IRQ was polled on the current and
	// previous cycles.
	irqSources           hwdefs.IRQSource
	irqPoll, prevIRQPoll bool

	jammed bool
	fault  *ExecutionFault
}

// NewCPU creates a new CPU at power-up state, connected to bus.
func NewCPU(bus cpuBus, cfg CPUConfig) *CPU {
	cpu := &CPU{
		bus: bus,
		cfg: cfg,
		SP:  0xFD,
	}
	cpu.DMA.init(cpu)
	return cpu
}

func (c *CPU) Reset(soft bool) {
	if soft {
		c.SP -= 0x03
		c.P.setFlags(Interrupt)
	} else {
		c.A, c.X, c.Y = 0, 0, 0
		c.SP = 0xFD
		c.P = Interrupt
		c.irqSources = 0
		c.irqPoll = false

		// Clocks only restart on power-up. Mappers timestamp writes and
		// PPU A12 edges with them.
		c.Cycles = -1
		c.masterClock = ntscCPUDivider
	}

	c.DMA.reset()
	c.jammed = false
	c.fault = nil

	c.PC = uint16(c.bus.Peek8(ResetVector)) | uint16(c.bus.Peek8(ResetVector+1))<<8

	c.nmiLine = false
	c.needNmi, c.prevNeedNmi = false, false

	// The reset sequence lasts 8 cycles (7 + the vector fetch).
	for range 8 {
		c.cycleBegin(true)
		c.cycleEnd(true)
	}
}

func (c *CPU) traceOp() {
	if c.tracer == nil {
		return
	}
	c.tracer.write(cpuState{A: c.A, X: c.X, Y: c.Y, P: c.P, SP: c.SP, PC: c.PC, Clock: c.Cycles})
}

// Step executes one instruction, followed by the interrupt sequence if an
// interrupt was polled during it. It returns the number of CPU cycles
// elapsed, DMA stalls included.
func (c *CPU) Step() (int, error) {
	if c.fault != nil {
		return 0, c.fault
	}

	start := c.Cycles
	pc := c.PC
	c.traceOp()
	opcode := c.Read8(c.PC)
	if c.cfg.Strict && undocumented[opcode] {
		c.fault = &ExecutionFault{PC: pc, Opcode: opcode, Reason: "undocumented opcode"}
		c.logFault()
		return int(c.Cycles - start), c.fault
	}

	c.PC++
	dispatch := ops[opcode]
	dispatch(c)

	if c.jammed {
		c.fault = &ExecutionFault{PC: pc, Opcode: opcode, Reason: "jam"}
		c.logFault()
		return int(c.Cycles - start), c.fault
	}

	if c.prevIRQPoll || c.prevNeedNmi {
		c.IRQ()
	}
	return int(c.Cycles - start), nil
}

func (c *CPU) logFault() {
	log.ModCPU.WarnZ("execution fault").
		Hex16("PC", c.fault.PC).
		Hex8("opcode", c.fault.Opcode).
		String("reason", c.fault.Reason).
		End()
}

// jam locks up the CPU, as KIL/STP opcodes do.
func (c *CPU) jam() {
	c.jammed = true
}

// Fault returns the fault that halted the CPU, if any.
func (c *CPU) Fault() *ExecutionFault {
	return c.fault
}

// A CPU cycle lasts 12 master clocks (NTSC). It's split in 2 halves, of 5
// and 7 clocks for reads, 7 and 5 for writes. The PPU is caught up at each
// half, one master clock behind.
const (
	ntscCPUDivider = 12
	halfCycle      = ntscCPUDivider / 2
	ppuOffset      = 1
)

func (c *CPU) cycleBegin(read bool) {
	if read {
		c.masterClock += halfCycle - 1
	} else {
		c.masterClock += halfCycle + 1
	}
	c.Cycles++
	c.bus.runPPU(c.masterClock - ppuOffset)
	c.bus.tickAPU()
}

func (c *CPU) cycleEnd(read bool) {
	if read {
		c.masterClock += halfCycle + 1
	} else {
		c.masterClock += halfCycle - 1
	}
	c.bus.runPPU(c.masterClock - ppuOffset)
	c.pollInterrupts()
}

// CurrentCycle returns the number of CPU cycles elapsed since power-up.
func (c *CPU) CurrentCycle() int64 { return c.Cycles }

// MasterClock returns the master clock counter.
func (c *CPU) MasterClock() int64 { return c.masterClock }

func (c *CPU) Read8(addr uint16) uint8 {
	c.DMA.process(addr)
	c.cycleBegin(true)
	val := c.bus.Read8(addr)
	c.cycleEnd(true)
	return val
}

func (c *CPU) Write8(addr uint16, val uint8) {
	c.cycleBegin(false)
	c.bus.Write8(addr, val)
	c.cycleEnd(false)
}

// Read16 reads a little-endian word.
func (c *CPU) Read16(addr uint16) uint16 {
	return uint16(c.Read8(addr)) | uint16(c.Read8(addr+1))<<8
}

// The stack lives in page 1, SP pointing to the next free slot.
const stackPage = 0x0100

func (c *CPU) push8(val uint8) {
	c.Write8(stackPage|uint16(c.SP), val)
	c.SP--
}

func (c *CPU) pull8() uint8 {
	c.SP++
	return c.Read8(stackPage | uint16(c.SP))
}

func (c *CPU) push16(val uint16) {
	c.push8(uint8(val >> 8))
	c.push8(uint8(val))
}

func (c *CPU) pull16() uint16 {
	lo := c.pull8()
	return uint16(lo) | uint16(c.pull8())<<8
}

func (c *CPU) SetIRQSource(src hwdefs.IRQSource)      { c.irqSources |= src }
func (c *CPU) HasIRQSource(src hwdefs.IRQSource) bool { return c.irqSources&src != 0 }
func (c *CPU) ClearIRQSource(src hwdefs.IRQSource)    { c.irqSources &^= src }

// RequestNMI raises the NMI line. The NMI is triggered on the rising edge,
// the line stays high until ClearNMI is called.
func (c *CPU) RequestNMI() { c.nmiLine = true }
func (c *CPU) ClearNMI()   { c.nmiLine = false }

// pollInterrupts samples the interrupt lines at the end of a cycle. What
// decides whether an interrupt is taken after an instruction is the state
// of the lines on its second-to-last cycle, hence the prev* copies.
func (c *CPU) pollInterrupts() {
	c.prevNeedNmi = c.needNmi
	if c.nmiLine && !c.prevNmiLine {
		c.needNmi = true
	}
	c.prevNmiLine = c.nmiLine

	c.prevIRQPoll = c.irqPoll
	c.irqPoll = c.irqSources != 0 && !c.P.intDisable()
}

// interrupt pushes PC and p, then jumps to the handler. A pending NMI
// hijacks the IRQ/BRK vector.
func (c *CPU) interrupt(p P) {
	c.push16(c.PC)
	vector := IRQVector
	if c.needNmi {
		c.needNmi = false
		vector = NMIVector
	}
	c.push8(uint8(p))
	c.P.setFlags(Interrupt)
	c.PC = c.Read16(vector)

	if vector == NMIVector {
		log.ModCPU.DebugZ("NMI").Hex16("handler", c.PC).End()
	} else {
		log.ModCPU.DebugZ("IRQ").Hex16("handler", c.PC).Stringer("src", c.irqSources).Bool("brk", p&Break != 0).End()
	}
}

func BRK(cpu *CPU) {
	cpu.Read8(cpu.PC) // padding byte
	cpu.PC++
	cpu.interrupt(cpu.P | Break | Reserved)

	// The first instruction of the handler runs before any NMI.
	cpu.prevNeedNmi = false
}

func JSR(cpu *CPU) {
	lo := cpu.fetch8()
	cpu.Read8(stackPage | uint16(cpu.SP)) // internal operation
	cpu.push16(cpu.PC)
	hi := cpu.Read8(cpu.PC)
	cpu.PC = uint16(hi)<<8 | uint16(lo)
}

// IRQ runs the hardware interrupt sequence, for either IRQ or NMI (NMI has
// priority).
func (c *CPU) IRQ() {
	c.Read8(c.PC)
	c.Read8(c.PC)
	c.interrupt(c.P | Reserved)
}

/* tracing / disassembly */

// SetTraceOutput enables the execution trace (nestest log format) if w is
// non-nil, disables it otherwise.
func (c *CPU) SetTraceOutput(w io.Writer, ppu *PPU) {
	if w == nil {
		c.tracer = nil
		return
	}
	c.tracer = &tracer{w: w, d: c, ppu: ppu}
}

func (c *CPU) Disasm(pc uint16) DisasmOp {
	opcode := c.bus.Peek8(pc)
	return disasmOps[opcode](c, pc)
}
