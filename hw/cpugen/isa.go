package main

// matrix is the 6502 opcode map, as mnemonic and addressing mode pairs: row
// n holds opcodes $n0 to $nF.
var matrix = [16]string{
	"BRK imp ORA izx STP imp SLO izx NOP zpg ORA zpg ASL zpg SLO zpg PHP imp ORA imm ASL acc ANC imm NOP abs ORA abs ASL abs SLO abs",
	"BPL rel ORA izy STP imp SLO izy NOP zpx ORA zpx ASL zpx SLO zpx CLC imp ORA aby NOP imp SLO aby NOP abx ORA abx ASL abx SLO abx",
	"JSR abs AND izx STP imp RLA izx BIT zpg AND zpg ROL zpg RLA zpg PLP imp AND imm ROL acc ANC imm BIT abs AND abs ROL abs RLA abs",
	"BMI rel AND izy STP imp RLA izy NOP zpx AND zpx ROL zpx RLA zpx SEC imp AND aby NOP imp RLA aby NOP abx AND abx ROL abx RLA abx",
	"RTI imp EOR izx STP imp SRE izx NOP zpg EOR zpg LSR zpg SRE zpg PHA imp EOR imm LSR acc ALR imm JMP abs EOR abs LSR abs SRE abs",
	"BVC rel EOR izy STP imp SRE izy NOP zpx EOR zpx LSR zpx SRE zpx CLI imp EOR aby NOP imp SRE aby NOP abx EOR abx LSR abx SRE abx",
	"RTS imp ADC izx STP imp RRA izx NOP zpg ADC zpg ROR zpg RRA zpg PLA imp ADC imm ROR acc ARR imm JMP ind ADC abs ROR abs RRA abs",
	"BVS rel ADC izy STP imp RRA izy NOP zpx ADC zpx ROR zpx RRA zpx SEI imp ADC aby NOP imp RRA aby NOP abx ADC abx ROR abx RRA abx",
	"NOP imm STA izx NOP imm SAX izx STY zpg STA zpg STX zpg SAX zpg DEY imp NOP imm TXA imp ANE imm STY abs STA abs STX abs SAX abs",
	"BCC rel STA izy STP imp SHA izy STY zpx STA zpx STX zpy SAX zpy TYA imp STA aby TXS imp TAS aby SHY abx STA abx SHX aby SHA aby",
	"LDY imm LDA izx LDX imm LAX izx LDY zpg LDA zpg LDX zpg LAX zpg TAY imp LDA imm TAX imp LXA imm LDY abs LDA abs LDX abs LAX abs",
	"BCS rel LDA izy STP imp LAX izy LDY zpx LDA zpx LDX zpy LAX zpy CLV imp LDA aby TSX imp LAS aby LDY abx LDA abx LDX aby LAX aby",
	"CPY imm CMP izx NOP imm DCP izx CPY zpg CMP zpg DEC zpg DCP zpg INY imp CMP imm DEX imp SBX imm CPY abs CMP abs DEC abs DCP abs",
	"BNE rel CMP izy STP imp DCP izy NOP zpx CMP zpx DEC zpx DCP zpx CLD imp CMP aby NOP imp DCP aby NOP abx CMP abx DEC abx DCP abx",
	"CPX imm SBC izx NOP imm ISC izx CPX zpg SBC zpg INC zpg ISC zpg INX imp SBC imm NOP imp SBC imm CPX abs SBC abs INC abs ISC abs",
	"BEQ rel SBC izy STP imp ISC izy NOP zpx SBC zpx INC zpx ISC zpx SED imp SBC aby NOP imp ISC aby NOP abx SBC abx INC abx ISC abx",
}

type mode struct {
	name    string // disassembler suffix
	syntax  string // operand in assembler syntax
	addr    string // computes oper
	indexed bool   // takes the forced dummy read parameter
}

var modes = map[string]mode{
	"imp": {name: "Imp", addr: "cpu.imp()"},
	"acc": {name: "Acc", syntax: "A", addr: "cpu.acc()"},
	"imm": {name: "Imm", syntax: "#nn"},
	"rel": {name: "Rel", syntax: "label", addr: "oper := cpu.rel()"},
	"zpg": {name: "Zpg", syntax: "nn", addr: "oper := cpu.zpg()"},
	"zpx": {name: "Zpx", syntax: "nn,X", addr: "oper := cpu.zpx()"},
	"zpy": {name: "Zpy", syntax: "nn,Y", addr: "oper := cpu.zpy()"},
	"abs": {name: "Abs", syntax: "nnnn", addr: "oper := cpu.abs()"},
	"abx": {name: "Abx", syntax: "nnnn,X", addr: "oper := cpu.abx(%t)", indexed: true},
	"aby": {name: "Aby", syntax: "nnnn,Y", addr: "oper := cpu.aby(%t)", indexed: true},
	"ind": {name: "Ind", syntax: "(nnnn)", addr: "oper := cpu.ind()"},
	"izx": {name: "Izx", syntax: "(nn,X)", addr: "oper := cpu.izx()"},
	"izy": {name: "Izy", syntax: "(nn),Y", addr: "oper := cpu.izy(%t)", indexed: true},
}

// access tells what an instruction does with its operand.
type access uint8

const (
	none   access = iota
	load          // operand value read into val
	store         // written to oper
	modify        // val read, dummy written back, then written back modified
	custom        // body does the addressing itself
)

type instr struct {
	access access
	undoc  bool
	body   []string

	// fn names the hand-written function implementing the instruction.
	fn string
}

func body(lines ...string) []string { return lines }

// isa maps mnemonics to instructions. Keys of the form "MNE mode" override
// the mnemonic for a single addressing mode.
var isa = map[string]instr{
	"BRK": {fn: "BRK"},
	"JSR": {fn: "JSR"},

	// Loads and ALU.
	"LDA": {access: load, body: body("cpu.setreg(&cpu.A, val)")},
	"LDX": {access: load, body: body("cpu.setreg(&cpu.X, val)")},
	"LDY": {access: load, body: body("cpu.setreg(&cpu.Y, val)")},
	"ADC": {access: load, body: body("cpu.add(val)")},
	"SBC": {access: load, body: body("cpu.sbc(val)")},
	"AND": {access: load, body: body("cpu.and(val)")},
	"ORA": {access: load, body: body("cpu.ora(val)")},
	"EOR": {access: load, body: body("cpu.eor(val)")},
	"CMP": {access: load, body: body("cpu.compare(cpu.A, val)")},
	"CPX": {access: load, body: body("cpu.compare(cpu.X, val)")},
	"CPY": {access: load, body: body("cpu.compare(cpu.Y, val)")},
	"BIT": {access: load, body: body("cpu.bit(val)")},
	"NOP": {access: load},

	// $EA and its undocumented copies.
	"NOP imp": {},

	// Stores.
	"STA": {access: store, body: body("cpu.Write8(oper, cpu.A)")},
	"STX": {access: store, body: body("cpu.Write8(oper, cpu.X)")},
	"STY": {access: store, body: body("cpu.Write8(oper, cpu.Y)")},

	// Read-modify-write.
	"ASL": {access: modify, body: body("val = cpu.asl(val)")},
	"LSR": {access: modify, body: body("val = cpu.lsr(val)")},
	"ROL": {access: modify, body: body("val = cpu.rol(val)")},
	"ROR": {access: modify, body: body("val = cpu.ror(val)")},
	"INC": {access: modify, body: body("cpu.setreg(&val, val+1)")},
	"DEC": {access: modify, body: body("cpu.setreg(&val, val-1)")},

	// Jumps and branches.
	"JMP": {body: body("cpu.PC = oper")},
	"BPL": {body: body("cpu.branch(oper, Negative, Negative)")},
	"BMI": {body: body("cpu.branch(oper, Negative, 0)")},
	"BVC": {body: body("cpu.branch(oper, Overflow, Overflow)")},
	"BVS": {body: body("cpu.branch(oper, Overflow, 0)")},
	"BCC": {body: body("cpu.branch(oper, Carry, Carry)")},
	"BCS": {body: body("cpu.branch(oper, Carry, 0)")},
	"BNE": {body: body("cpu.branch(oper, Zero, Zero)")},
	"BEQ": {body: body("cpu.branch(oper, Zero, 0)")},
	"RTI": {body: body("cpu.rti()")},
	"RTS": {body: body("cpu.rts()")},

	// Stack.
	"PHA": {body: body("cpu.push8(cpu.A)")},
	"PHP": {body: body("cpu.push8(uint8(cpu.P | Break | Reserved))")},
	"PLA": {body: body("cpu.pla()")},
	"PLP": {body: body("cpu.plp()")},

	// Flags.
	"CLC": {body: body("cpu.P.clearFlags(Carry)")},
	"CLD": {body: body("cpu.P.clearFlags(Decimal)")},
	"CLI": {body: body("cpu.P.clearFlags(Interrupt)")},
	"CLV": {body: body("cpu.P.clearFlags(Overflow)")},
	"SEC": {body: body("cpu.P.setFlags(Carry)")},
	"SED": {body: body("cpu.P.setFlags(Decimal)")},
	"SEI": {body: body("cpu.P.setFlags(Interrupt)")},

	// Registers.
	"TAX": {body: body("cpu.setreg(&cpu.X, cpu.A)")},
	"TAY": {body: body("cpu.setreg(&cpu.Y, cpu.A)")},
	"TSX": {body: body("cpu.setreg(&cpu.X, cpu.SP)")},
	"TXA": {body: body("cpu.setreg(&cpu.A, cpu.X)")},
	"TXS": {body: body("cpu.SP = cpu.X")},
	"TYA": {body: body("cpu.setreg(&cpu.A, cpu.Y)")},
	"INX": {body: body("cpu.setreg(&cpu.X, cpu.X+1)")},
	"INY": {body: body("cpu.setreg(&cpu.Y, cpu.Y+1)")},
	"DEX": {body: body("cpu.setreg(&cpu.X, cpu.X-1)")},
	"DEY": {body: body("cpu.setreg(&cpu.Y, cpu.Y-1)")},

	// Undocumented.
	"STP":     {undoc: true, body: body("cpu.jam()")},
	"LAX":     {access: load, undoc: true, body: body("cpu.setreg(&cpu.A, val)", "cpu.X = val")},
	"LAS":     {access: load, undoc: true, body: body("cpu.las(val)")},
	"ANC":     {access: load, undoc: true, body: body("cpu.anc(val)")},
	"ALR":     {access: load, undoc: true, body: body("cpu.alr(val)")},
	"ARR":     {access: load, undoc: true, body: body("cpu.arr(val)")},
	"ANE":     {access: load, undoc: true, body: body("cpu.ane(val)")},
	"LXA":     {access: load, undoc: true, body: body("cpu.lxa(val)")},
	"SBX":     {access: load, undoc: true, body: body("cpu.sbx(val)")},
	"SAX":     {access: store, undoc: true, body: body("cpu.Write8(oper, cpu.A&cpu.X)")},
	"SLO":     {access: modify, undoc: true, body: body("val = cpu.asl(val)", "cpu.ora(val)")},
	"RLA":     {access: modify, undoc: true, body: body("val = cpu.rol(val)", "cpu.and(val)")},
	"SRE":     {access: modify, undoc: true, body: body("val = cpu.lsr(val)", "cpu.eor(val)")},
	"RRA":     {access: modify, undoc: true, body: body("val = cpu.ror(val)", "cpu.add(val)")},
	"DCP":     {access: modify, undoc: true, body: body("val--", "cpu.compare(cpu.A, val)")},
	"ISC":     {access: modify, undoc: true, body: body("val++", "cpu.sbc(val)")},
	"SHA izy": {access: custom, undoc: true, body: body("cpu.shaIndirect()")},
	"SHA aby": {access: custom, undoc: true, body: body("cpu.sh(cpu.fetch16(), cpu.Y, cpu.X&cpu.A)")},
	"SHX":     {access: custom, undoc: true, body: body("cpu.sh(cpu.fetch16(), cpu.Y, cpu.X)")},
	"SHY":     {access: custom, undoc: true, body: body("cpu.sh(cpu.fetch16(), cpu.X, cpu.Y)")},
	"TAS":     {access: custom, undoc: true, body: body("cpu.sh(cpu.fetch16(), cpu.Y, cpu.X&cpu.A)", "cpu.SP = cpu.X & cpu.A")},
}

// NOP is only documented at $EA, while $EB is an undocumented copy of SBC
// immediate.
const (
	officialNOP = 0xEA
	extraSBC    = 0xEB
)
