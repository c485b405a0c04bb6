package hw

import (
	"fmt"
	"io"
)

// cpuState is the CPU state printed on each trace line.
type cpuState struct {
	A, X, Y uint8
	P       P
	SP      uint8
	PC      uint16

	Clock    int64
	PPUCycle int
	Scanline int
}

type disasmer interface {
	Disasm(pc uint16) DisasmOp
}

// tracer writes one line per executed instruction, in the nestest.log
// format, the de facto standard to compare traces between emulators.
type tracer struct {
	d   disasmer
	ppu *PPU // optional, for the PPU position column
	w   io.Writer
	buf []byte
}

func (t *tracer) write(state cpuState) {
	if t.ppu != nil {
		state.Scanline = t.ppu.Scanline
		state.PPUCycle = t.ppu.Cycle
	}
	scanline := state.Scanline
	if scanline == NumScanlines-1 {
		scanline = -1 // pre-render line
	}

	buf := t.d.Disasm(state.PC).appendTo(t.buf[:0])
	buf = padRight(buf, 49)
	buf = fmt.Appendf(buf, "A:%02X X:%02X Y:%02X P:%02X S:%02X PPU:%-3d,%-3d %d\n",
		state.A, state.X, state.Y, uint8(state.P), state.SP, scanline, state.PPUCycle, state.Clock)
	t.w.Write(buf)
	t.buf = buf
}

func padRight(buf []byte, n int) []byte {
	for len(buf) < n {
		buf = append(buf, ' ')
	}
	return buf
}

// DisasmOp is a disassembled instruction.
type DisasmOp struct {
	Opcode string // mnemonic, prefixed with '*' for undocumented ones
	Oper   string
	Buf    []byte // instruction bytes
	PC     uint16
}

func (d DisasmOp) String() string {
	return string(d.appendTo(nil))
}

// appendTo appends the instruction address, bytes and assembly to buf, in a
// 48 columns wide field.
func (d DisasmOp) appendTo(buf []byte) []byte {
	start := len(buf)
	buf = fmt.Appendf(buf, "%04X ", d.PC)
	for _, b := range d.Buf {
		buf = fmt.Appendf(buf, " %02X", b)
	}
	buf = padRight(buf, start+16)
	if len(d.Opcode) > 3 && d.Opcode[0] == '*' {
		buf = buf[:len(buf)-1]
	}
	buf = append(buf, d.Opcode...)
	buf = append(buf, ' ')
	buf = append(buf, d.Oper...)
	if len(buf)-start > 48 {
		return append(buf, ' ')
	}
	return padRight(buf, start+48)
}

var addressLabels = map[uint16]string{
	0x2000: "PpuControl_2000",
	0x2001: "PpuMask_2001",
	0x2002: "PpuStatus_2002",
	0x2003: "OamAddr_2003",
	0x2004: "OamData_2004",
	0x2005: "PpuScroll_2005",
	0x2006: "PpuAddr_2006",
	0x2007: "PpuData_2007",
	0x4000: "Sq0Duty_4000",
	0x4001: "Sq0Sweep_4001",
	0x4002: "Sq0Timer_4002",
	0x4003: "Sq0Length_4003",
	0x4004: "Sq1Duty_4004",
	0x4005: "Sq1Sweep_4005",
	0x4006: "Sq1Timer_4006",
	0x4007: "Sq1Length_4007",
	0x4008: "TrgLinear_4008",
	0x400A: "TrgTimer_400A",
	0x400B: "TrgLength_400B",
	0x400C: "NoiseVolume_400C",
	0x400E: "NoisePeriod_400E",
	0x400F: "NoiseLength_400F",
	0x4010: "DmcFreq_4010",
	0x4011: "DmcCounter_4011",
	0x4012: "DmcAddress_4012",
	0x4013: "DmcLength_4013",
	0x4014: "SpriteDma_4014",
	0x4015: "ApuStatus_4015",
	0x4016: "Ctrl1_4016",
	0x4017: "Ctrl2_FrameCtr_4017",
}

func formatAddr(addr uint16) string {
	if label, ok := addressLabels[addr]; ok {
		return label
	}
	return fmt.Sprintf("$%04X", addr)
}
