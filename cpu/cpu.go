// Package cpu implements the fetch-decode-execute loop for the 6502
// instruction set: registers, status flags, addressing-mode
// resolution, the arithmetic/logic kernels, stack discipline, and
// branch/jump control.
package cpu

import (
	"context"

	"github.com/bdwalton/gintendo/trace"
)

// Memory is the two-operation contract the interpreter needs from its
// backing store: total byte read and write over a 16-bit address
// space. Anything satisfying this (in particular *memory.Memory) can
// back a CPU; tests back it with a bare byte array.
type Memory interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
}

// Status register bits. This layout is NOT the hardware bit order
// (hardware: C=0, Z=1, I=2, D=3, B=4, -=5, V=6, N=7) — it matches the
// layout this interpreter's reference implementation used, preserved
// here for trace compatibility. See SPEC_FULL.md §3.
const (
	FlagCarry            uint8 = 1 << 7
	FlagZero             uint8 = 1 << 6
	FlagInterruptDisable uint8 = 1 << 5
	FlagDecimal          uint8 = 1 << 4
	FlagBreak            uint8 = 1 << 3
	FlagOverflow         uint8 = 1 << 2
	FlagNegative         uint8 = 1 << 1
	flagUnused           uint8 = 1 << 0
)

const (
	stackPage  = 0x0100
	prgBase    = 0x4020
	haltAt     = 0xffff
	initialSP  = 0xfd
	initialP   = 0x34
)

// CPU is the interpreter's full machine state.
type CPU struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16
	P       uint8

	mem Memory

	// StrictOpcodes makes Step return *UnknownOpcodeError instead of
	// silently treating an unmapped byte as NOP. Off by default,
	// matching the deterministic silent-NOP policy SPEC_FULL.md §9
	// names as the default.
	StrictOpcodes bool

	// Trace, if non-nil, is called once per executed instruction
	// with the already-formatted line (see package trace).
	Trace func(line string)
}

// New returns a CPU wired to mem and reset to its initial state.
func New(mem Memory) *CPU {
	c := &CPU{mem: mem}
	c.Reset()
	return c
}

// Reset restores the power-on register state. PC is set to the start
// of the PRG ROM window directly; this core does not consult a reset
// vector (SPEC_FULL.md §9, Open Question 1).
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = initialSP
	c.P = initialP
	c.PC = prgBase
}

// Read returns the byte at addr.
func (c *CPU) Read(addr uint16) uint8 { return c.mem.Read(addr) }

// Write stores val at addr.
func (c *CPU) Write(addr uint16, val uint8) { c.mem.Write(addr, val) }

// read16 returns the little-endian word at addr (low byte first),
// per SPEC_FULL.md §4.3.2's mem16 definition.
func (c *CPU) read16(addr uint16) uint16 {
	lo := uint16(c.Read(addr))
	hi := uint16(c.Read(addr + 1))
	return lo | hi<<8
}

func (c *CPU) fetchByte() uint8 {
	v := c.Read(c.PC)
	c.PC++
	return v
}

func (c *CPU) fetchWord() uint16 {
	lo := uint16(c.fetchByte())
	hi := uint16(c.fetchByte())
	return lo | hi<<8
}

// flagsOn sets every bit in mask.
func (c *CPU) flagsOn(mask uint8) { c.P |= mask }

// flagsOff clears every bit in mask.
func (c *CPU) flagsOff(mask uint8) { c.P &^= mask }

// flagSet reports whether every bit in mask is set.
func (c *CPU) flagSet(mask uint8) bool { return c.P&mask == mask }

// setFlag sets or clears mask according to on.
func (c *CPU) setFlag(mask uint8, on bool) {
	if on {
		c.flagsOn(mask)
	} else {
		c.flagsOff(mask)
	}
}

// basicFlags applies the "basic flags" rule from SPEC_FULL.md §4.3.3:
// Z set iff result == 0, N set from bit 7 of result.
func (c *CPU) basicFlags(result uint8) {
	c.setFlag(FlagZero, result == 0)
	c.setFlag(FlagNegative, result&0x80 != 0)
}

func (c *CPU) stackAddr() uint16 {
	return stackPage + uint16(c.SP)
}

func (c *CPU) push(val uint8) {
	c.Write(c.stackAddr(), val)
	c.SP--
}

func (c *CPU) pull() uint8 {
	c.SP++
	return c.Read(c.stackAddr())
}

func (c *CPU) pushAddr(addr uint16) {
	c.push(uint8(addr >> 8))
	c.push(uint8(addr))
}

func (c *CPU) pullAddr() uint16 {
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	return lo | hi<<8
}

// Step fetches, decodes and executes a single instruction, returning
// whether PC has reached the halt address afterward.
func (c *CPU) Step() (halted bool, err error) {
	instrPC := c.PC
	opByte := c.fetchByte()
	d := decodeTable[opByte]

	if !d.known && c.StrictOpcodes {
		return false, &UnknownOpcodeError{Opcode: opByte, PC: instrPC}
	}

	if c.Trace != nil {
		c.Trace(c.traceLine(instrPC, opByte, d))
	}

	d.exec(c, d.mode)

	return c.PC >= haltAt, nil
}

// traceLine renders the about-to-execute instruction and the
// register snapshot as it stood before execution.
func (c *CPU) traceLine(instrPC uint16, opByte uint8, d decoded) string {
	return trace.Format(trace.Line{
		PC:       instrPC,
		Opcode:   opByte,
		Mnemonic: d.mnemonic,
		Mode:     d.mode.String(),
		A:        c.A,
		X:        c.X,
		Y:        c.Y,
		SP:       c.SP,
		P:        c.P,
	})
}

// Run steps the CPU until it halts, ctx is cancelled, or (if nonzero)
// maxSteps instructions have executed.
func (c *CPU) Run(ctx context.Context, maxSteps uint64) error {
	var steps uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		halted, err := c.Step()
		if err != nil {
			return err
		}
		if halted {
			return nil
		}

		steps++
		if maxSteps != 0 && steps >= maxSteps {
			return ErrStepBudgetExceeded
		}
	}
}
