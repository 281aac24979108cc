package cpu_test

import (
	"testing"

	"github.com/bdwalton/gintendo/cpu"
	"github.com/stretchr/testify/assert"
)

type flatMemory [65536]uint8

func (m *flatMemory) Read(addr uint16) uint8       { return m[addr] }
func (m *flatMemory) Write(addr uint16, val uint8) { m[addr] = val }

func newCPU() (*cpu.CPU, *flatMemory) {
	m := &flatMemory{}
	return cpu.New(m), m
}

func TestResetState(t *testing.T) {
	c, _ := newCPU()

	assert.Equal(t, uint16(0x4020), c.PC, "PC should start at the PRG window base")
	assert.Equal(t, uint8(0xfd), c.SP)
	assert.Equal(t, uint8(0x34), c.P)
	assert.Equal(t, uint8(0), c.A)
	assert.Equal(t, uint8(0), c.X)
	assert.Equal(t, uint8(0), c.Y)
}

func TestStepAdvancesPCByInstructionLength(t *testing.T) {
	c, m := newCPU()
	m[0x4020] = 0xa9 // LDA #$42
	m[0x4021] = 0x42

	halted, err := c.Step()

	assert.NoError(t, err)
	assert.False(t, halted)
	assert.Equal(t, uint16(0x4022), c.PC)
	assert.Equal(t, uint8(0x42), c.A)
}

func TestStepHaltsAtTopOfAddressSpace(t *testing.T) {
	c, m := newCPU()
	c.PC = 0xfffe
	m[0xfffe] = 0xea // NOP

	halted, err := c.Step()

	assert.NoError(t, err)
	assert.True(t, halted)
}

func TestStepUnknownOpcodeIsSilentNOPByDefault(t *testing.T) {
	c, m := newCPU()
	m[0x4020] = 0xff // not a real 6502 opcode

	halted, err := c.Step()

	assert.NoError(t, err)
	assert.False(t, halted)
	assert.Equal(t, uint16(0x4021), c.PC)
}

func TestStepUnknownOpcodeErrorsWhenStrict(t *testing.T) {
	c, m := newCPU()
	c.StrictOpcodes = true
	m[0x4020] = 0xff

	_, err := c.Step()

	var unknown *cpu.UnknownOpcodeError
	assert.ErrorAs(t, err, &unknown)
	assert.Equal(t, uint16(0x4020), unknown.PC)
}

func TestTraceIsCalledWithFormattedLine(t *testing.T) {
	c, m := newCPU()
	m[0x4020] = 0xa9
	m[0x4021] = 0x07

	var got string
	c.Trace = func(line string) { got = line }

	_, err := c.Step()

	assert.NoError(t, err)
	assert.Contains(t, got, "LDA")
	assert.Contains(t, got, "4020")
}
