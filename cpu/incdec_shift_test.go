package cpu_test

import (
	"testing"

	"github.com/bdwalton/gintendo/cpu"
	"github.com/stretchr/testify/assert"
)

func TestINXWraps(t *testing.T) {
	c, m := newCPU()
	c.X = 0xff
	m[0x4020] = 0xe8 // INX

	c.Step()

	assert.Equal(t, uint8(0x00), c.X)
	assert.True(t, c.P&cpu.FlagZero != 0)
}

func TestDECMemory(t *testing.T) {
	c, m := newCPU()
	m[0x4020] = 0xc6 // DEC $10
	m[0x4021] = 0x10
	m[0x10] = 0x01

	c.Step()

	assert.Equal(t, uint8(0x00), m[0x10])
	assert.True(t, c.P&cpu.FlagZero != 0)
}

func TestASLAndRORRoundTrip(t *testing.T) {
	c, m := newCPU()
	c.A = 0x81
	m[0x4020] = 0x0a // ASL A
	m[0x4021] = 0x6a // ROR A

	c.Step()
	assert.Equal(t, uint8(0x02), c.A)
	assert.True(t, c.P&cpu.FlagCarry != 0, "bit 7 shifted out into carry")

	c.Step()
	assert.Equal(t, uint8(0x81), c.A, "carry rotated back into bit 7")
}

func TestROLCarriesThroughAccumulator(t *testing.T) {
	c, m := newCPU()
	c.A = 0x40
	c.P |= cpu.FlagCarry
	m[0x4020] = 0x2a // ROL A

	c.Step()

	assert.Equal(t, uint8(0x81), c.A)
	assert.False(t, c.P&cpu.FlagCarry != 0)
}

func TestLSRMemory(t *testing.T) {
	c, m := newCPU()
	m[0x4020] = 0x46 // LSR $10
	m[0x4021] = 0x10
	m[0x10] = 0x03

	c.Step()

	assert.Equal(t, uint8(0x01), m[0x10])
	assert.True(t, c.P&cpu.FlagCarry != 0)
}
