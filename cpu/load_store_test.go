package cpu_test

import (
	"testing"

	"github.com/bdwalton/gintendo/cpu"
	"github.com/stretchr/testify/assert"
)

func TestLDASetsZeroFlag(t *testing.T) {
	c, m := newCPU()
	m[0x4020] = 0xa9 // LDA #$00
	m[0x4021] = 0x00

	c.Step()

	assert.Equal(t, uint8(0), c.A)
	assert.True(t, c.P&cpu.FlagZero != 0)
	assert.True(t, c.P&cpu.FlagNegative == 0)
}

func TestLDASetsNegativeFlag(t *testing.T) {
	c, m := newCPU()
	m[0x4020] = 0xa9 // LDA #$80
	m[0x4021] = 0x80

	c.Step()

	assert.Equal(t, uint8(0x80), c.A)
	assert.True(t, c.P&cpu.FlagNegative != 0)
	assert.True(t, c.P&cpu.FlagZero == 0)
}

func TestLDAZeroPageX(t *testing.T) {
	c, m := newCPU()
	c.X = 0x05
	m[0x4020] = 0xb5 // LDA $10,X
	m[0x4021] = 0x10
	m[0x15] = 0x99

	c.Step()

	assert.Equal(t, uint8(0x99), c.A)
}

func TestLDAAbsoluteIsLittleEndian(t *testing.T) {
	c, m := newCPU()
	m[0x4020] = 0xad // LDA $1234
	m[0x4021] = 0x34
	m[0x4022] = 0x12
	m[0x1234] = 0x7e

	c.Step()

	assert.Equal(t, uint8(0x7e), c.A)
}

func TestLDAIndirectX(t *testing.T) {
	c, m := newCPU()
	c.X = 0x04
	m[0x4020] = 0xa1 // LDA ($20,X)
	m[0x4021] = 0x20
	m[0x24] = 0x00 // pointer low
	m[0x25] = 0x50 // pointer high
	m[0x5000] = 0x11

	c.Step()

	assert.Equal(t, uint8(0x11), c.A)
}

func TestLDAIndirectY(t *testing.T) {
	c, m := newCPU()
	c.Y = 0x10
	m[0x4020] = 0xb1 // LDA ($20),Y
	m[0x4021] = 0x20
	m[0x20] = 0x00 // pointer low
	m[0x21] = 0x50 // pointer high
	m[0x5010] = 0x22

	c.Step()

	assert.Equal(t, uint8(0x22), c.A)
}

func TestSTAWritesAccumulatorToAbsolute(t *testing.T) {
	c, m := newCPU()
	c.A = 0x5a
	m[0x4020] = 0x8d // STA $2000
	m[0x4021] = 0x00
	m[0x4022] = 0x20

	c.Step()

	assert.Equal(t, uint8(0x5a), m[0x2000])
}

func TestTransferRegisters(t *testing.T) {
	c, m := newCPU()
	c.A = 0x33
	m[0x4020] = 0xaa // TAX

	c.Step()

	assert.Equal(t, uint8(0x33), c.X)
}
