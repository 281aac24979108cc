package cpu

// decoded is one entry of the opcode decode table: everything Step
// needs to execute a fetched opcode byte, replacing a 256-way switch
// with a flat lookup (SPEC_FULL.md §4.3).
type decoded struct {
	mnemonic string
	mode     addrMode
	exec     func(*CPU, addrMode)
	known    bool
}

func def(mnemonic string, mode addrMode, exec func(*CPU, addrMode)) decoded {
	return decoded{mnemonic: mnemonic, mode: mode, exec: exec, known: true}
}

// unknown is the table entry for unmapped opcode bytes: a silent NOP
// unless StrictOpcodes rejects it first in Step.
var unknown = decoded{mnemonic: "???", mode: modeImplicit, exec: opNOP, known: false}

// decodeTable maps every possible opcode byte to its decoded entry.
// buildDecodeTable first fills every slot with unknown, then
// overwrites the slots of the mapped opcodes.
var decodeTable = buildDecodeTable()

func buildDecodeTable() [256]decoded {
	var t [256]decoded
	for i := range t {
		t[i] = unknown
	}

	set := func(op uint8, mnemonic string, mode addrMode, exec func(*CPU, addrMode)) {
		t[op] = def(mnemonic, mode, exec)
	}

	set(0xa9, "LDA", modeImmediate, opLDA)
	set(0xa5, "LDA", modeZeroPage, opLDA)
	set(0xb5, "LDA", modeZeroPageX, opLDA)
	set(0xad, "LDA", modeAbsolute, opLDA)
	set(0xbd, "LDA", modeAbsoluteX, opLDA)
	set(0xb9, "LDA", modeAbsoluteY, opLDA)
	set(0xa1, "LDA", modeIndirectX, opLDA)
	set(0xb1, "LDA", modeIndirectY, opLDA)

	set(0xa2, "LDX", modeImmediate, opLDX)
	set(0xa6, "LDX", modeZeroPage, opLDX)
	set(0xb6, "LDX", modeZeroPageY, opLDX)
	set(0xae, "LDX", modeAbsolute, opLDX)
	set(0xbe, "LDX", modeAbsoluteY, opLDX)

	set(0xa0, "LDY", modeImmediate, opLDY)
	set(0xa4, "LDY", modeZeroPage, opLDY)
	set(0xb4, "LDY", modeZeroPageX, opLDY)
	set(0xac, "LDY", modeAbsolute, opLDY)
	set(0xbc, "LDY", modeAbsoluteX, opLDY)

	set(0x85, "STA", modeZeroPage, opSTA)
	set(0x95, "STA", modeZeroPageX, opSTA)
	set(0x8d, "STA", modeAbsolute, opSTA)
	set(0x9d, "STA", modeAbsoluteX, opSTA)
	set(0x99, "STA", modeAbsoluteY, opSTA)
	set(0x81, "STA", modeIndirectX, opSTA)
	set(0x91, "STA", modeIndirectY, opSTA)

	set(0x86, "STX", modeZeroPage, opSTX)
	set(0x96, "STX", modeZeroPageY, opSTX)
	set(0x8e, "STX", modeAbsolute, opSTX)

	set(0x84, "STY", modeZeroPage, opSTY)
	set(0x94, "STY", modeZeroPageX, opSTY)
	set(0x8c, "STY", modeAbsolute, opSTY)

	set(0xaa, "TAX", modeImplicit, opTAX)
	set(0xa8, "TAY", modeImplicit, opTAY)
	set(0x8a, "TXA", modeImplicit, opTXA)
	set(0x98, "TYA", modeImplicit, opTYA)
	set(0xba, "TSX", modeImplicit, opTSX)
	set(0x9a, "TXS", modeImplicit, opTXS)

	set(0x48, "PHA", modeImplicit, opPHA)
	set(0x08, "PHP", modeImplicit, opPHP)
	set(0x68, "PLA", modeImplicit, opPLA)
	set(0x28, "PLP", modeImplicit, opPLP)

	set(0x29, "AND", modeImmediate, opAND)
	set(0x25, "AND", modeZeroPage, opAND)
	set(0x35, "AND", modeZeroPageX, opAND)
	set(0x2d, "AND", modeAbsolute, opAND)
	set(0x3d, "AND", modeAbsoluteX, opAND)
	set(0x39, "AND", modeAbsoluteY, opAND)
	set(0x21, "AND", modeIndirectX, opAND)
	set(0x31, "AND", modeIndirectY, opAND)

	set(0x09, "ORA", modeImmediate, opORA)
	set(0x05, "ORA", modeZeroPage, opORA)
	set(0x15, "ORA", modeZeroPageX, opORA)
	set(0x0d, "ORA", modeAbsolute, opORA)
	set(0x1d, "ORA", modeAbsoluteX, opORA)
	set(0x19, "ORA", modeAbsoluteY, opORA)
	set(0x01, "ORA", modeIndirectX, opORA)
	set(0x11, "ORA", modeIndirectY, opORA)

	set(0x49, "EOR", modeImmediate, opEOR)
	set(0x45, "EOR", modeZeroPage, opEOR)
	set(0x55, "EOR", modeZeroPageX, opEOR)
	set(0x4d, "EOR", modeAbsolute, opEOR)
	set(0x5d, "EOR", modeAbsoluteX, opEOR)
	set(0x59, "EOR", modeAbsoluteY, opEOR)
	set(0x41, "EOR", modeIndirectX, opEOR)
	set(0x51, "EOR", modeIndirectY, opEOR)

	set(0x24, "BIT", modeZeroPage, opBIT)
	set(0x2c, "BIT", modeAbsolute, opBIT)

	set(0x69, "ADC", modeImmediate, opADC)
	set(0x65, "ADC", modeZeroPage, opADC)
	set(0x75, "ADC", modeZeroPageX, opADC)
	set(0x6d, "ADC", modeAbsolute, opADC)
	set(0x7d, "ADC", modeAbsoluteX, opADC)
	set(0x79, "ADC", modeAbsoluteY, opADC)
	set(0x61, "ADC", modeIndirectX, opADC)
	set(0x71, "ADC", modeIndirectY, opADC)

	set(0xe9, "SBC", modeImmediate, opSBC)
	set(0xe5, "SBC", modeZeroPage, opSBC)
	set(0xf5, "SBC", modeZeroPageX, opSBC)
	set(0xed, "SBC", modeAbsolute, opSBC)
	set(0xfd, "SBC", modeAbsoluteX, opSBC)
	set(0xf9, "SBC", modeAbsoluteY, opSBC)
	set(0xe1, "SBC", modeIndirectX, opSBC)
	set(0xf1, "SBC", modeIndirectY, opSBC)

	set(0xc9, "CMP", modeImmediate, opCMP)
	set(0xc5, "CMP", modeZeroPage, opCMP)
	set(0xd5, "CMP", modeZeroPageX, opCMP)
	set(0xcd, "CMP", modeAbsolute, opCMP)
	set(0xdd, "CMP", modeAbsoluteX, opCMP)
	set(0xd9, "CMP", modeAbsoluteY, opCMP)
	set(0xc1, "CMP", modeIndirectX, opCMP)
	set(0xd1, "CMP", modeIndirectY, opCMP)

	set(0xe0, "CPX", modeImmediate, opCPX)
	set(0xe4, "CPX", modeZeroPage, opCPX)
	set(0xec, "CPX", modeAbsolute, opCPX)

	set(0xc0, "CPY", modeImmediate, opCPY)
	set(0xc4, "CPY", modeZeroPage, opCPY)
	set(0xcc, "CPY", modeAbsolute, opCPY)

	set(0xe6, "INC", modeZeroPage, opINC)
	set(0xf6, "INC", modeZeroPageX, opINC)
	set(0xee, "INC", modeAbsolute, opINC)
	set(0xfe, "INC", modeAbsoluteX, opINC)

	set(0xe8, "INX", modeImplicit, opINX)
	set(0xc8, "INY", modeImplicit, opINY)

	set(0xc6, "DEC", modeZeroPage, opDEC)
	set(0xd6, "DEC", modeZeroPageX, opDEC)
	set(0xce, "DEC", modeAbsolute, opDEC)
	set(0xde, "DEC", modeAbsoluteX, opDEC)

	set(0xca, "DEX", modeImplicit, opDEX)
	set(0x88, "DEY", modeImplicit, opDEY)

	set(0x0a, "ASL", modeAccumulator, opASL)
	set(0x06, "ASL", modeZeroPage, opASL)
	set(0x16, "ASL", modeZeroPageX, opASL)
	set(0x0e, "ASL", modeAbsolute, opASL)
	set(0x1e, "ASL", modeAbsoluteX, opASL)

	set(0x4a, "LSR", modeAccumulator, opLSR)
	set(0x46, "LSR", modeZeroPage, opLSR)
	set(0x56, "LSR", modeZeroPageX, opLSR)
	set(0x4e, "LSR", modeAbsolute, opLSR)
	set(0x5e, "LSR", modeAbsoluteX, opLSR)

	set(0x2a, "ROL", modeAccumulator, opROL)
	set(0x26, "ROL", modeZeroPage, opROL)
	set(0x36, "ROL", modeZeroPageX, opROL)
	set(0x2e, "ROL", modeAbsolute, opROL)
	set(0x3e, "ROL", modeAbsoluteX, opROL)

	set(0x6a, "ROR", modeAccumulator, opROR)
	set(0x66, "ROR", modeZeroPage, opROR)
	set(0x76, "ROR", modeZeroPageX, opROR)
	set(0x6e, "ROR", modeAbsolute, opROR)
	set(0x7e, "ROR", modeAbsoluteX, opROR)

	set(0x4c, "JMP", modeAbsolute, opJMP)
	set(0x6c, "JMP", modeIndirect, opJMP)
	set(0x20, "JSR", modeAbsolute, opJSR)
	set(0x60, "RTS", modeImplicit, opRTS)
	set(0x40, "RTI", modeImplicit, opRTI)

	set(0x90, "BCC", modeRelative, opBCC)
	set(0xb0, "BCS", modeRelative, opBCS)
	set(0xf0, "BEQ", modeRelative, opBEQ)
	set(0xd0, "BNE", modeRelative, opBNE)
	set(0x30, "BMI", modeRelative, opBMI)
	set(0x10, "BPL", modeRelative, opBPL)
	set(0x50, "BVC", modeRelative, opBVC)
	set(0x70, "BVS", modeRelative, opBVS)

	set(0x18, "CLC", modeImplicit, opCLC)
	set(0x38, "SEC", modeImplicit, opSEC)
	set(0x58, "CLI", modeImplicit, opCLI)
	set(0x78, "SEI", modeImplicit, opSEI)
	set(0xd8, "CLD", modeImplicit, opCLD)
	set(0xf8, "SED", modeImplicit, opSED)
	set(0xb8, "CLV", modeImplicit, opCLV)

	set(0xea, "NOP", modeImplicit, opNOP)
	set(0x00, "BRK", modeImplicit, opBRK)

	return t
}
