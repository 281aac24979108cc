package cpu

// addrMode identifies one of the 6502 addressing modes, per
// SPEC_FULL.md §4.3.2.
type addrMode uint8

const (
	modeImplicit addrMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndirectX
	modeIndirectY
	modeRelative
)

var modeNames = [...]string{
	modeImplicit:    "implicit",
	modeAccumulator: "accumulator",
	modeImmediate:   "immediate",
	modeZeroPage:    "zeropage",
	modeZeroPageX:   "zeropage,x",
	modeZeroPageY:   "zeropage,y",
	modeAbsolute:    "absolute",
	modeAbsoluteX:   "absolute,x",
	modeAbsoluteY:   "absolute,y",
	modeIndirect:    "indirect",
	modeIndirectX:   "(indirect,x)",
	modeIndirectY:   "(indirect),y",
	modeRelative:    "relative",
}

func (m addrMode) String() string { return modeNames[m] }

// address resolves an effective address for modes that have one,
// consuming the operand bytes the mode needs from PC as it goes
// (SPEC_FULL.md §4.3.2's fetch_byte/fetch_word semantics). It must
// not be called for modeImplicit, modeAccumulator or modeImmediate.
func (c *CPU) address(mode addrMode) uint16 {
	switch mode {
	case modeZeroPage:
		return uint16(c.fetchByte())
	case modeZeroPageX:
		return uint16(c.fetchByte() + c.X)
	case modeZeroPageY:
		return uint16(c.fetchByte() + c.Y)
	case modeAbsolute:
		return c.fetchWord()
	case modeAbsoluteX:
		return c.fetchWord() + uint16(c.X)
	case modeAbsoluteY:
		return c.fetchWord() + uint16(c.Y)
	case modeIndirect:
		return c.read16(c.fetchWord())
	case modeIndirectX:
		ptr := uint16(c.fetchByte() + c.X)
		return c.read16(ptr)
	case modeIndirectY:
		ptr := uint16(c.fetchByte())
		return c.read16(ptr) + uint16(c.Y)
	default:
		panic("cpu: addressing mode has no effective address")
	}
}

// loadOperand returns the byte an instruction should operate on:
// the literal value for modeImmediate, or the memory byte at the
// mode's effective address otherwise.
func (c *CPU) loadOperand(mode addrMode) uint8 {
	if mode == modeImmediate {
		return c.fetchByte()
	}
	return c.Read(c.address(mode))
}

// branchTarget resolves a relative-mode displacement into an absolute
// target address. PC must already point at the one-byte signed
// displacement; it is consumed here.
func (c *CPU) branchTarget() uint16 {
	disp := int8(c.fetchByte())
	return uint16(int32(c.PC) + int32(disp))
}
