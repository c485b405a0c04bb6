// Command cpugen generates the opcode functions of the hw package and the
// tables the CPU dispatches, disassembles and names opcodes with.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

type opcode struct {
	code  uint8
	mne   string
	mode  string
	instr instr
}

func parseMatrix() ([256]opcode, error) {
	var ops [256]opcode
	for row, line := range matrix {
		fields := strings.Fields(line)
		if len(fields) != 32 {
			return ops, fmt.Errorf("row %X: got %d fields, want 32", row, len(fields))
		}
		for col := range 16 {
			op := opcode{
				code: uint8(row<<4 | col),
				mne:  fields[2*col],
				mode: fields[2*col+1],
			}
			if _, ok := modes[op.mode]; !ok {
				return ops, fmt.Errorf("opcode $%02X: unknown addressing mode %q", op.code, op.mode)
			}
			in, ok := isa[op.mne+" "+op.mode]
			if !ok {
				in, ok = isa[op.mne]
			}
			if !ok {
				return ops, fmt.Errorf("opcode $%02X: unknown instruction %q", op.code, op.mne)
			}
			if op.mne == "NOP" && op.code != officialNOP || op.code == extraSBC {
				in.undoc = true
			}
			op.instr = in
			ops[op.code] = op
		}
	}
	return ops, nil
}

func (op opcode) funcName() string {
	if op.instr.fn != "" {
		return op.instr.fn
	}
	return fmt.Sprintf("opcode%02X", op.code)
}

// dummy reports whether the indexed addressing always performs its dummy
// read, as stores and read-modify-write instructions do.
func (op opcode) dummy() bool {
	return op.instr.access == store || op.instr.access == modify
}

func (op opcode) generate(g *generator) {
	m := modes[op.mode]
	g.printf("// %s", op.mne)
	if m.syntax != "" {
		g.printf(" %s", m.syntax)
	}
	if op.instr.undoc {
		g.printf(" (undocumented)")
	}
	g.printf("\nfunc %s(cpu *CPU) {\n", op.funcName())

	if op.instr.access != custom && m.addr != "" {
		addr := m.addr
		if m.indexed {
			addr = fmt.Sprintf(addr, op.dummy())
		}
		g.printf("\t%s\n", addr)
	}

	switch op.instr.access {
	case load:
		switch {
		case op.mode == "imm" && len(op.instr.body) == 0:
			g.printf("\t_ = cpu.fetch8()\n")
		case op.mode == "imm":
			g.printf("\tval := cpu.fetch8()\n")
		case len(op.instr.body) == 0:
			g.printf("\t_ = cpu.Read8(oper) // dummy read\n")
		default:
			g.printf("\tval := cpu.Read8(oper)\n")
		}
	case modify:
		if op.mode == "acc" {
			g.printf("\tval := cpu.A\n")
		} else {
			g.printf("\tval := cpu.Read8(oper)\n")
			g.printf("\tcpu.Write8(oper, val) // dummy write\n")
		}
	}

	for _, stmt := range op.instr.body {
		g.printf("\t%s\n", stmt)
	}

	if op.instr.access == modify {
		if op.mode == "acc" {
			g.printf("\tcpu.A = val\n")
		} else {
			g.printf("\tcpu.Write8(oper, val)\n")
		}
	}
	g.printf("}\n\n")
}

type generator struct {
	bytes.Buffer
}

func (g *generator) printf(format string, args ...any) {
	fmt.Fprintf(&g.Buffer, format, args...)
}

// table writes a 16 by 16 array literal.
func (g *generator) table(doc, decl string, ops *[256]opcode, elem func(opcode) string) {
	g.printf("%s\nvar %s{\n", doc, decl)
	for row := range 16 {
		elems := make([]string, 16)
		for col := range elems {
			elems[col] = elem(ops[row<<4|col])
		}
		g.printf("\t%s,\n", strings.Join(elems, ", "))
	}
	g.printf("}\n\n")
}

func generate(ops *[256]opcode) ([]byte, error) {
	var g generator
	g.printf("// Code generated by cpugen. DO NOT EDIT.\n\n")
	g.printf("package hw\n\n")

	for _, op := range ops {
		if op.instr.fn == "" {
			op.generate(&g)
		}
	}

	g.table("// ops dispatches opcodes.", "ops = [256]func(*CPU)", ops, opcode.funcName)
	g.table("// disasmOps disassembles an opcode and its operands.", "disasmOps = [256]func(*CPU, uint16) DisasmOp", ops,
		func(op opcode) string { return "disasm" + modes[op.mode].name })

	g.printf("// undocumented opcodes, they fault when the CPU runs in strict mode.\n")
	g.printf("var undocumented = [256]bool{\n")
	for _, op := range ops {
		if op.instr.undoc {
			g.printf("\t0x%02X: true,\n", op.code)
		}
	}
	g.printf("}\n\n")

	g.table("// opcodeNames holds opcode mnemonics.", "opcodeNames = [256]string", ops,
		func(op opcode) string { return fmt.Sprintf("%q", op.mne) })

	return format.Source(g.Bytes())
}

func main() {
	out := flag.String("out", "opcodes.go", "output file")
	flag.Parse()

	ops, err := parseMatrix()
	if err != nil {
		log.Fatal(err)
	}
	src, err := generate(&ops)
	if err != nil {
		log.Fatalf("formatting generated code: %v", err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatal(err)
	}
}
