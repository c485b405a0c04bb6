package hw

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestDisasmOpString(t *testing.T) {
	tests := []struct {
		op   DisasmOp
		want string
	}{
		{
			op:   DisasmOp{PC: 0xC000, Buf: []byte{0x4C, 0xF5, 0xC5}, Opcode: "JMP", Oper: "$C5F5"},
			want: "C000  4C F5 C5  JMP $C5F5",
		},
		{
			op:   DisasmOp{PC: 0xC6BD, Buf: []byte{0x04, 0xA9}, Opcode: "*NOP", Oper: "$A9 = 00"},
			want: "C6BD  04 A9    *NOP $A9 = 00",
		},
		{
			op:   DisasmOp{PC: 0x8000, Buf: []byte{0xEA}, Opcode: "NOP"},
			want: "8000  EA        NOP ",
		},
	}
	for _, tt := range tests {
		got := tt.op.String()
		if len(got) != 48 {
			t.Errorf("%q: len = %d, want 48", got, len(got))
		}
		if got = strings.TrimRight(got, " "); got != strings.TrimRight(tt.want, " ") {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

type dummyDisasm map[uint16]DisasmOp

func (dd dummyDisasm) Disasm(pc uint16) DisasmOp {
	return dd[pc]
}

var traceOps = dummyDisasm{
	0xE052: DisasmOp{PC: 0xE052, Buf: []byte{0xA9, 0x32}, Opcode: "LDA", Oper: "#$32"},
	0xE054: DisasmOp{PC: 0xE054, Buf: []byte{0x20, 0xEE, 0xE0}, Opcode: "JSR", Oper: "$E0EE"},
}

var traceStates = []cpuState{
	{PC: 0xE052, A: 0x00, X: 0x01, Y: 0x00, P: P(0x07), SP: 0xF4, Scanline: 0, PPUCycle: 27, Clock: 8},
	{PC: 0xE054, A: 0x32, X: 0x01, Y: 0x00, P: P(0x05), SP: 0xF4, Scanline: 261, PPUCycle: 33, Clock: 10},
}

func TestTraceFormat(t *testing.T) {
	want := []string{
		`E052  A9 32     LDA #$32                         A:00 X:01 Y:00 P:07 S:F4 PPU:0  ,27  8`,
		`E054  20 EE E0  JSR $E0EE                        A:32 X:01 Y:00 P:05 S:F4 PPU:-1 ,33  10`,
	}

	var out bytes.Buffer
	tr := tracer{d: traceOps, w: &out}
	for _, s := range traceStates {
		tr.write(s)
	}

	wantstr := strings.Join(want, "\n") + "\n"
	if out.String() != wantstr {
		t.Fatalf("trace differs\ngot:\n%s\nwant:\n%s\n", out.String(), wantstr)
	}
}

func BenchmarkTraceFormat(b *testing.B) {
	tr := tracer{d: traceOps, w: io.Discard}
	for range b.N {
		tr.write(traceStates[0])
		tr.write(traceStates[1])
	}
}
